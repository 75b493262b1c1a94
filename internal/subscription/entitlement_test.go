package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func activeSub(plan Tier, ends time.Time) *Subscription {
	return &Subscription{
		PlanID:   plan,
		StartsAt: now.AddDate(0, -1, 0),
		EndsAt:   ends,
		Status:   StatusActive,
	}
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		name string
		sub  *Subscription
		want bool
	}{
		{"nil subscription", nil, false},
		{"active with future end", activeSub(TierPremium, now.AddDate(0, 0, 10)), true},
		{"active but lapsed", activeSub(TierBasic, now.AddDate(0, 0, -1)), false},
		{"cancelled with future end", &Subscription{PlanID: TierPremium, EndsAt: now.AddDate(0, 0, 10), Status: StatusCancelled}, false},
		{"expired status", &Subscription{PlanID: TierPremium, EndsAt: now.AddDate(0, 0, 10), Status: StatusExpired}, false},
		{"ends exactly now", activeSub(TierBasic, now), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsActive(tt.sub, now))
		})
	}
}

func TestDaysUntilExpiry(t *testing.T) {
	assert.Equal(t, 0, DaysUntilExpiry(nil, now))
	assert.Equal(t, 10, DaysUntilExpiry(activeSub(TierPremium, now.AddDate(0, 0, 10)), now))
	assert.Equal(t, -1, DaysUntilExpiry(activeSub(TierBasic, now.Add(-36*time.Hour)), now))
	// less than a full day left still counts as "expires today"
	assert.Equal(t, 0, DaysUntilExpiry(activeSub(TierBasic, now.Add(6*time.Hour)), now))
}

func TestHasFeatureAccess(t *testing.T) {
	premium := activeSub(TierPremium, now.AddDate(0, 0, 10))

	assert.True(t, HasFeatureAccess(premium, TierBasic, now))
	assert.True(t, HasFeatureAccess(premium, TierPremium, now))
	assert.False(t, HasFeatureAccess(premium, TierEnterprise, now))

	assert.False(t, HasFeatureAccess(nil, TierBasic, now))

	lapsed := activeSub(TierBasic, now.AddDate(0, 0, -1))
	assert.False(t, HasFeatureAccess(lapsed, TierBasic, now))

	unknown := activeSub(Tier("unknown_tier"), now.AddDate(0, 0, 10))
	assert.False(t, HasFeatureAccess(unknown, TierBasic, now))
}

func TestHasFeatureAccessMonotonic(t *testing.T) {
	tiers := []Tier{TierBasic, TierPremium, TierEnterprise}
	for _, plan := range tiers {
		sub := activeSub(plan, now.AddDate(0, 0, 30))
		for i, higher := range tiers {
			if !HasFeatureAccess(sub, higher, now) {
				continue
			}
			// access at a tier implies access at every lower tier
			for _, lower := range tiers[:i] {
				assert.True(t, HasFeatureAccess(sub, lower, now),
					"plan %s grants %s but not lower tier %s", plan, higher, lower)
			}
		}
	}
}

func TestRankUnknownTier(t *testing.T) {
	assert.Equal(t, 0, Rank(Tier("gold")))
	assert.Equal(t, 1, Rank(TierBasic))
	assert.Equal(t, 2, Rank(TierPremium))
	assert.Equal(t, 3, Rank(TierEnterprise))
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"plain add", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 6, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
		{"clamp to leap february", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), 1, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"clamp to non-leap february", time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC), 1, time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)},
		{"clamp 31st to 30-day month", time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), 1, time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)},
		{"across year boundary", time.Date(2024, 10, 15, 9, 30, 0, 0, time.UTC), 12, time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.months))
		})
	}
}

func TestPlanCatalog(t *testing.T) {
	ps := Plans()
	assert.Len(t, ps, 3)

	p, ok := PlanByID(TierPremium)
	assert.True(t, ok)
	assert.Equal(t, 6, p.DurationMonths)

	_, ok = PlanByID(Tier("gold"))
	assert.False(t, ok)

	// returned slice is a copy
	ps[0].Name = "mutated"
	fresh, _ := PlanByID(TierBasic)
	assert.Equal(t, "Basic", fresh.Name)
}
