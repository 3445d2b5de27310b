package models

// PolicyConfig holds the scoring-policy sliders and constraint toggles a
// coordinator can tune before a run. Pure input data; each field only has
// the numeric range declared on it.
type PolicyConfig struct {
	RankWeight         float64 `json:"rank_weight"`          // 0.0-1.0
	GeoMatch           int     `json:"geo_match"`            // 0-10
	PubRate            int     `json:"pub_rate"`             // 0-10
	EngagementPriority int     `json:"engagement_priority"`  // 0-10
	MaxPerPartnerDay   int     `json:"max_per_partner_per_day"`
	MaxPerPartnerWeek  int     `json:"max_per_partner_per_week"`
	PreferNormalDays   bool    `json:"prefer_normal_days"`
	EnforceBudgetHard  bool    `json:"enforce_budget_hard"`
	CooldownDays       int     `json:"cooldown_days"`
}

// DefaultPolicy mirrors the backend's documented defaults.
func DefaultPolicy() PolicyConfig {
	return PolicyConfig{
		RankWeight:         0.5,
		GeoMatch:           5,
		PubRate:            5,
		EngagementPriority: 5,
		MaxPerPartnerDay:   1,
		MaxPerPartnerWeek:  2,
		PreferNormalDays:   true,
		EnforceBudgetHard:  false,
		CooldownDays:       30,
	}
}
