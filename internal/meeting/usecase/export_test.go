package usecase

import "time"

func (uc *implUseCase) SetNow(now func() time.Time) {
	uc.now = now
}
