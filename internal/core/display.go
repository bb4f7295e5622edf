package core

import (
	"fmt"
	"time"
)

const (
	timeLayout = "15:04"
	dateLayout = "2/1/2006"
)

// Display renders timestamps for the history list in the user's zone
type Display struct {
	loc *time.Location
}

// NewDisplay creates a Display for the named IANA time zone
func NewDisplay(timezone string) (*Display, error) {
	if timezone == "" {
		return &Display{loc: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", timezone, err)
	}
	return &Display{loc: loc}, nil
}

// Time formats t as HH:MM
func (d *Display) Time(t time.Time) string {
	return t.In(d.location()).Format(timeLayout)
}

// Date formats t as D/M/YYYY
func (d *Display) Date(t time.Time) string {
	return t.In(d.location()).Format(dateLayout)
}

func (d *Display) location() *time.Location {
	if d == nil || d.loc == nil {
		return time.Local
	}
	return d.loc
}
