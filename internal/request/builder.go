// Package request assembles and validates outbound optimizer payloads.
package request

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/rmoreau/loanboard/internal/capacity"
	"github.com/rmoreau/loanboard/internal/models"
)

// Seed is fixed so repeated runs with unchanged inputs are comparable.
const Seed = 42

type Builder struct {
	validate *validator.Validate
}

func NewBuilder() *Builder {
	return &Builder{validate: validator.New()}
}

// Build assembles the optimizer request from the current selection, policy
// sliders, and capacity vector. Policy scalars and the full seven-day
// capacity map pass through verbatim. A missing office or week is caught
// here and never reaches the network.
func (b *Builder) Build(office, weekStart string, policy models.PolicyConfig, vec capacity.Vector) (models.RunRequest, error) {
	req := models.RunRequest{
		Office:             office,
		WeekStart:          weekStart,
		Seed:               Seed,
		RankWeight:         policy.RankWeight,
		GeoMatch:           policy.GeoMatch,
		PubRate:            policy.PubRate,
		EngagementPriority: policy.EngagementPriority,
		MaxPerPartnerDay:   policy.MaxPerPartnerDay,
		MaxPerPartnerWeek:  policy.MaxPerPartnerWeek,
		PreferNormalDays:   policy.PreferNormalDays,
		EnforceBudgetHard:  policy.EnforceBudgetHard,
		CooldownDays:       policy.CooldownDays,
		DailyCapacities:    vec.Map(),
	}

	if err := b.validate.Struct(req); err != nil {
		return models.RunRequest{}, fmt.Errorf("invalid run request: %w", err)
	}
	return req, nil
}

// BuildChain assembles and validates a chain-suggestion request.
func (b *Builder) BuildChain(office string, personID int64, startDay string, length, maxGapDays int) (models.ChainRequest, error) {
	req := models.ChainRequest{
		Office:     office,
		PersonID:   personID,
		StartDay:   startDay,
		Length:     length,
		MaxGapDays: maxGapDays,
	}
	if err := b.validate.Struct(req); err != nil {
		return models.ChainRequest{}, fmt.Errorf("invalid chain request: %w", err)
	}
	return req, nil
}
