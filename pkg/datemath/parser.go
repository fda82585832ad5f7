package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser converts user supplied timestamps to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// Timestamps without an offset are read in that zone.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" {
		timezone = "UTC"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the zone used for offset-less timestamps.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseInstant parses an ISO-8601 timestamp. RFC3339 values keep their own
// offset; datetime-local values ("2006-01-02T15:04") are read in the parser zone.
func (p *Parser) ParseInstant(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrEmpty
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, p.location); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
}
