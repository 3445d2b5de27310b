package models

type VehicleCounts struct {
	Available int `json:"available"`
	Total     int `json:"total"`
}

type PartnerCounts struct {
	Eligible int `json:"eligible"`
	Total    int `json:"total"`
}

type CapacityNote struct {
	Slots int    `json:"slots"`
	Notes string `json:"notes,omitempty"`
}

// Metrics is the office-level overview snapshot for one (office, week,
// min_days) query. Read-only once received.
type Metrics struct {
	Vehicles                    VehicleCounts           `json:"vehicles"`
	Partners                    PartnerCounts           `json:"partners"`
	MakesInScope                int                     `json:"makes_in_scope"`
	Capacity                    map[DayKey]CapacityNote `json:"capacity"`
	FeasibleTriplesPreCooldown  int                     `json:"feasible_triples_pre_cooldown"`
	FeasibleTriplesPostCooldown int                     `json:"feasible_triples_post_cooldown"`
	CooldownRemovedTriples      int                     `json:"cooldown_removed_triples"`
	BudgetStatus                string                  `json:"budget_status"`
}
