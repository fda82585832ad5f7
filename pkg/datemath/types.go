package datemath

import (
	"errors"
	"time"
)

var (
	ErrEmpty         = errors.New("empty timestamp")
	ErrInvalidFormat = errors.New("unsupported timestamp format")
)

var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}
