package subscription

import "time"

// IsActive reports whether the subscription grants access at the given instant.
// Both checks must pass: the stored status has to be active and the end date has
// to be in the future. A lapsed record (status still active, end date passed)
// is not active even though nothing ever rewrote its status field.
func IsActive(sub *Subscription, now time.Time) bool {
	if sub == nil {
		return false
	}
	return sub.Status == StatusActive && now.Before(sub.EndsAt)
}

// DaysUntilExpiry returns the whole-day difference between the end date and
// now. Negative once expired, 0 means "expires today" and is also the fallback
// for a missing subscription.
func DaysUntilExpiry(sub *Subscription, now time.Time) int {
	if sub == nil {
		return 0
	}
	return int(sub.EndsAt.Sub(now) / (24 * time.Hour))
}

// HasFeatureAccess reports whether the subscription meets the required tier.
// Inactive subscriptions have zero entitlement regardless of plan.
func HasFeatureAccess(sub *Subscription, required Tier, now time.Time) bool {
	if !IsActive(sub, now) {
		return false
	}
	return Rank(sub.PlanID) >= Rank(required)
}

// AddMonths does calendar-month arithmetic with day-of-month clamping:
// Jan 31 + 1 month is Feb 28 (or 29), not Mar 2. Plain time.AddDate would
// normalize the overflow into the next month.
func AddMonths(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	day := t.Day()
	if last := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}
	return firstOfTarget.AddDate(0, 0, day-1)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
