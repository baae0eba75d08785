package domain

import "time"

// Preference is a user's daily reminder setting: the wall-clock time and
// IANA timezone at which the tip should arrive. One row per user; a new
// Put fully replaces the previous one.
type Preference struct {
	UserID    int64
	Hour      int    // 0..23
	Minute    int    // 0..59
	Timezone  string // IANA name, e.g. "Europe/Moscow"
	CreatedAt time.Time
}

// Validate checks the time range and that the timezone resolves.
func (p *Preference) Validate() error {
	if p.Hour < 0 || p.Hour > 23 || p.Minute < 0 || p.Minute > 59 {
		return ErrInvalidTime
	}
	if _, err := time.LoadLocation(p.Timezone); err != nil {
		return ErrInvalidTimezone
	}
	return nil
}

// Location loads the preference's timezone.
func (p *Preference) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	return loc, nil
}
