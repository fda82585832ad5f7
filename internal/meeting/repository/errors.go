package repository

import "errors"

var (
	ErrOwnerRequired  = errors.New("owner is required")
	ErrFailedToInsert = errors.New("failed to insert record")
)
