package domain

import "errors"

var (
	// ErrInvalidTime means hour or minute is outside 0–23 / 0–59.
	ErrInvalidTime = errors.New("invalid time: hour must be 0-23, minute 0-59")
	// ErrInvalidTimezone means the timezone name does not resolve in the IANA database.
	ErrInvalidTimezone = errors.New("invalid timezone")
	// ErrPreferenceNotFound means no reminder preference is stored for the user.
	ErrPreferenceNotFound = errors.New("reminder preference not found")
)
