package usecase

import "time"

const (
	timeLayout = time.RFC3339
	// Calendar stores whole seconds; instant starts are truncated to match.
	timeResolution = time.Second
)
