package models

// RunRequest is the outbound optimizer payload. Field names are the wire
// contract with the backend; validate tags are checked by the request
// builder before dispatch, never server-side.
type RunRequest struct {
	Office             string         `json:"office" validate:"required"`
	WeekStart          string         `json:"week_start" validate:"required,datetime=2006-01-02"`
	Seed               int            `json:"seed"`
	RankWeight         float64        `json:"rank_weight" validate:"gte=0,lte=1"`
	GeoMatch           int            `json:"geo_match" validate:"gte=0,lte=10"`
	PubRate            int            `json:"pub_rate" validate:"gte=0,lte=10"`
	EngagementPriority int            `json:"engagement_priority" validate:"gte=0,lte=10"`
	MaxPerPartnerDay   int            `json:"max_per_partner_per_day" validate:"gte=0"`
	MaxPerPartnerWeek  int            `json:"max_per_partner_per_week" validate:"gte=0"`
	PreferNormalDays   bool           `json:"prefer_normal_days"`
	EnforceBudgetHard  bool           `json:"enforce_budget_hard"`
	CooldownDays       int            `json:"cooldown_days" validate:"gte=0"`
	DailyCapacities    DayCapacityMap `json:"daily_capacities" validate:"required"`
}

// ChainRequest asks the backend to suggest a loan chain for one partner.
type ChainRequest struct {
	Office     string `json:"office" validate:"required"`
	PersonID   int64  `json:"person_id" validate:"required"`
	StartDay   string `json:"start_day" validate:"required,datetime=2006-01-02"`
	Length     int    `json:"length" validate:"gte=2,lte=10"`
	MaxGapDays int    `json:"max_gap_days" validate:"gte=0"`
}
