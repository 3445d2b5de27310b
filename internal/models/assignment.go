package models

// AssignmentRecord is one solver-produced vehicle↔partner assignment.
// Records are owned by the RunResult that produced them and are never
// mutated after receipt.
type AssignmentRecord struct {
	VIN         string  `json:"vin"`
	PersonID    int64   `json:"person_id"`
	PartnerName string  `json:"partner_name"`
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	StartDay    string  `json:"start_day"` // YYYY-MM-DD
	Score       float64 `json:"score"`     // higher is better
}

type FairnessSummary struct {
	Gini       float64        `json:"gini"`
	TierCounts map[string]int `json:"tier_counts"`
}

type CapSummary struct {
	PartnersAtDayCap  int `json:"partners_at_day_cap"`
	PartnersAtWeekCap int `json:"partners_at_week_cap"`
}

type BudgetSummary struct {
	Status string  `json:"status"`
	Used   float64 `json:"used"`
	Limit  float64 `json:"limit"`
}

// RunResult is the full payload of one optimizer call. It is replaced
// wholesale by the next call and discarded when office or week changes.
// An empty Assignments slice is a valid "no feasible schedule" outcome.
type RunResult struct {
	Status             string             `json:"status"`
	Assignments        []AssignmentRecord `json:"assignments"`
	StartsByDay        map[DayKey]int     `json:"starts_by_day"`
	Fairness           FairnessSummary    `json:"fairness_summary"`
	Caps               CapSummary         `json:"cap_summary"`
	Budget             BudgetSummary      `json:"budget_summary"`
	ObjectiveBreakdown map[string]float64 `json:"objective_breakdown"`
}

// ChainSuggestion is a backend-proposed sequence of back-to-back loans
// for a single partner.
type ChainSuggestion struct {
	ChainID    string             `json:"chain_id"`
	Links      []AssignmentRecord `json:"links"`
	TotalScore float64            `json:"total_score"`
}

// VehicleContext is the per-vehicle detail payload shown when a
// coordinator inspects a single VIN.
type VehicleContext struct {
	VIN            string             `json:"vin"`
	Make           string             `json:"make"`
	Model          string             `json:"model"`
	Tier           string             `json:"tier"`
	RecentPartners []string           `json:"recent_partners"`
	Upcoming       []AssignmentRecord `json:"upcoming"`
}

// PublicationRate is one partner×make grain of publication statistics.
type PublicationRate struct {
	PersonID    int64   `json:"partner_id"`
	PartnerName string  `json:"partner_name"`
	Make        string  `json:"make"`
	Rate        float64 `json:"rate"`
	SampleSize  int     `json:"sample_size"`
}
