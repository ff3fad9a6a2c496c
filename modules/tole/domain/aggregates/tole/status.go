package tole

import "time"

type Status string

const (
	StatusActive   Status = "Active"
	StatusExpired  Status = "Expired"
	StatusDisabled Status = "Disabled"
)

// StatusAt derives the display status of t at now. Disabled wins over expired;
// a tole without an expiry date never expires.
func StatusAt(t Tole, now time.Time) Status {
	if t.AllowApp == AllowAppNo {
		return StatusDisabled
	}
	if IsExpired(t, now) {
		return StatusExpired
	}
	return StatusActive
}

func IsExpired(t Tole, now time.Time) bool {
	return !t.ExpiryDate.IsZero() && t.ExpiryDate.Before(now)
}

// ValidateExpiry accepts only dates strictly after now.
func ValidateExpiry(date, now time.Time) error {
	if date.IsZero() || !date.After(now) {
		return ErrExpiryNotInFuture
	}
	return nil
}
