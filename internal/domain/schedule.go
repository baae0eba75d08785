package domain

import "time"

// NextFire computes the next occurrence of the preference's HH:MM in its
// timezone that is strictly after now. If now is exactly at HH:MM the
// result is tomorrow, never the current instant, so a fire at the boundary
// can't double-trigger.
//
// The next instant is rebuilt from wall-clock components each time rather
// than adding a fixed 24h of elapsed duration, so DST transitions keep the
// delivery at the user's local HH:MM instead of drifting by the offset.
func NextFire(now time.Time, p *Preference) (time.Time, error) {
	loc, err := p.Location()
	if err != nil {
		return time.Time{}, err
	}

	localNow := now.In(loc)
	candidate := time.Date(
		localNow.Year(), localNow.Month(), localNow.Day(),
		p.Hour, p.Minute, 0, 0, loc,
	)
	if !candidate.After(localNow) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate, nil
}
