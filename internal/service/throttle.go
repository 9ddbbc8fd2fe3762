package service

import (
	"math"
	"time"
)

// Organizations may change their profile at most once every 30 days.
const profileUpdateCooldownDays = 30

// profileUpdateThrottle reports whether a profile update is blocked and, if
// so, for how many more days. A nil last-change timestamp means the profile
// was never edited and the first edit is unrestricted. Elapsed time uses the
// absolute difference so clock skew can never produce a negative remainder.
func profileUpdateThrottle(lastChange *time.Time, now time.Time) (daysRemaining int, throttled bool) {
	if lastChange == nil {
		return 0, false
	}

	diff := now.Sub(*lastChange)
	if diff < 0 {
		diff = -diff
	}

	elapsedDays := int(math.Ceil(diff.Hours() / 24))
	if elapsedDays > profileUpdateCooldownDays {
		return 0, false
	}

	remaining := profileUpdateCooldownDays + 1 - elapsedDays
	if remaining < 1 {
		remaining = 1
	}

	return remaining, true
}
