package auth

import "meeting-scheduler/internal/session"

// --- UseCase Inputs ---

type CallbackInput struct {
	Code string
	// State is the value Google echoed back; ExpectedState is the one we issued.
	State         string
	ExpectedState string
}

// --- UseCase Outputs ---

type SignInOutput struct {
	URL   string
	State string
}

type CallbackOutput struct {
	Session session.Session
}
