package http

import (
	"time"

	"meeting-scheduler/internal/auth"
	"meeting-scheduler/internal/session"
)

// --- Request DTOs ---

type callbackReq struct {
	Code  string `form:"code"`
	State string `form:"state"`
	Error string `form:"error"`
}

func (r callbackReq) toInput(expectedState string) auth.CallbackInput {
	return auth.CallbackInput{
		Code:          r.Code,
		State:         r.State,
		ExpectedState: expectedState,
	}
}

// --- Response DTOs ---

type userResp struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type sessionResp struct {
	User    *userResp `json:"user,omitempty"`
	Expires string    `json:"expires,omitempty"`
}

func newSessionResp(s session.Session) sessionResp {
	return sessionResp{
		User:    &userResp{Name: s.UserName, Email: s.UserEmail},
		Expires: s.ExpiresAt.UTC().Format(time.RFC3339),
	}
}
