package subscription

// Static plan catalog. Commercial terms are presentation data, the entitlement
// checks only care about the tier rank.
var plans = []Plan{
	{
		ID:             TierBasic,
		Name:           "Basic",
		Price:          499,
		DurationMonths: 3,
		Features: []string{
			"Upload up to 50 products",
			"Basic customer interaction",
			"Standard support",
			"Basic analytics",
			"Email notifications",
		},
	},
	{
		ID:             TierPremium,
		Name:           "Premium",
		Price:          999,
		DurationMonths: 6,
		Popular:        true,
		Savings:        "Save ₹500",
		Features: []string{
			"Upload unlimited products",
			"Advanced customer interaction",
			"Priority support",
			"Advanced analytics & reports",
			"Push notifications",
			"Custom offers & discounts",
			"Bulk product management",
			"Customer insights",
		},
	},
	{
		ID:             TierEnterprise,
		Name:           "Enterprise",
		Price:          1799,
		DurationMonths: 12,
		Savings:        "Save ₹1200",
		Features: []string{
			"Everything in Premium",
			"Dedicated account manager",
			"24/7 priority support",
			"Advanced API access",
			"Custom integrations",
			"White-label options",
			"Multi-store management",
			"Advanced fraud protection",
		},
	},
}

// Plans returns a copy of the catalog so callers cannot mutate it.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

func PlanByID(id Tier) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
