package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"meeting-scheduler/internal/auth"
	"meeting-scheduler/internal/session"
)

// SignIn starts the authorization-code flow with a fresh state value.
func (uc *implUseCase) SignIn(ctx context.Context) (auth.SignInOutput, error) {
	state := uuid.NewString()
	return auth.SignInOutput{
		URL:   uc.provider.AuthCodeURL(state),
		State: state,
	}, nil
}

// Callback finishes the flow: it checks state, exchanges the code and builds
// the session for the signed-in user.
func (uc *implUseCase) Callback(ctx context.Context, input auth.CallbackInput) (auth.CallbackOutput, error) {
	if input.ExpectedState == "" || subtle.ConstantTimeCompare([]byte(input.State), []byte(input.ExpectedState)) != 1 {
		return auth.CallbackOutput{}, auth.ErrStateMismatch
	}
	code := strings.TrimSpace(input.Code)
	if code == "" {
		return auth.CallbackOutput{}, auth.ErrMissingCode
	}

	tok, err := uc.provider.Exchange(ctx, code)
	if err != nil {
		uc.l.Errorf(ctx, "Callback: provider.Exchange: %v", err)
		return auth.CallbackOutput{}, fmt.Errorf("%w: %v", auth.ErrExchange, err)
	}

	info, err := uc.provider.UserInfo(ctx, tok)
	if err != nil {
		uc.l.Errorf(ctx, "Callback: provider.UserInfo: %v", err)
		return auth.CallbackOutput{}, fmt.Errorf("%w: %v", auth.ErrUserInfo, err)
	}
	if info.Email == "" {
		return auth.CallbackOutput{}, fmt.Errorf("%w: no email on account", auth.ErrUserInfo)
	}

	uc.l.Infof(ctx, "Callback: signed in user=%s", info.Email)

	s := session.Session{
		UserEmail: info.Email,
		UserName:  info.Name,
	}.WithToken(tok)
	return auth.CallbackOutput{Session: s}, nil
}
