package core

import (
	"errors"
)

var (
	// ErrInvalidInput is returned when a number does not have 10 to 13 digits
	ErrInvalidInput = errors.New("invalid phone number")
	// ErrNumberRequired is returned when an action needs a number and none was given
	ErrNumberRequired = errors.New("phone number required")
	// ErrPersistence is returned when the history slot cannot be written
	ErrPersistence = errors.New("history persistence failed")
	// ErrSlotNotFound is returned by slots when nothing is stored under a key
	ErrSlotNotFound = errors.New("history slot not found")
	// ErrEntryNotFound is returned when a history id is unknown
	ErrEntryNotFound = errors.New("history entry not found")
	// ErrScanCancelled is returned when a scan is cancelled or superseded
	ErrScanCancelled = errors.New("scan cancelled")
	// ErrShareUnavailable is returned when no platform share capability exists
	ErrShareUnavailable = errors.New("share capability unavailable")
)

// UserMessage returns the text shown to the user for err
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return msg(keyInvalidInput)
	case errors.Is(err, ErrNumberRequired):
		return msg(keyNumberMissing)
	case errors.Is(err, ErrEntryNotFound):
		return msg(keyEntryNotFound)
	default:
		return err.Error()
	}
}
