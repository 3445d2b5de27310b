package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/rmoreau/loanboard/internal/capacity"
	"github.com/rmoreau/loanboard/internal/models"
)

type PolicyFormModel struct {
	RankWeight string
	GeoMatch   string
	PubRate    string
	Engagement string
	MaxPerDay  string
	MaxPerWeek string
	Cooldown   string
	PreferNorm bool
	HardBudget bool
}

func policyFormFrom(p models.PolicyConfig) *PolicyFormModel {
	return &PolicyFormModel{
		RankWeight: strconv.FormatFloat(p.RankWeight, 'f', -1, 64),
		GeoMatch:   strconv.Itoa(p.GeoMatch),
		PubRate:    strconv.Itoa(p.PubRate),
		Engagement: strconv.Itoa(p.EngagementPriority),
		MaxPerDay:  strconv.Itoa(p.MaxPerPartnerDay),
		MaxPerWeek: strconv.Itoa(p.MaxPerPartnerWeek),
		Cooldown:   strconv.Itoa(p.CooldownDays),
		PreferNorm: p.PreferNormalDays,
		HardBudget: p.EnforceBudgetHard,
	}
}

// toPolicy parses the form back into a PolicyConfig. Field validators run
// before submit, so parsing here cannot fail for a completed form.
func (fm *PolicyFormModel) toPolicy() models.PolicyConfig {
	rank, _ := strconv.ParseFloat(fm.RankWeight, 64)
	geo, _ := strconv.Atoi(fm.GeoMatch)
	pub, _ := strconv.Atoi(fm.PubRate)
	eng, _ := strconv.Atoi(fm.Engagement)
	maxDay, _ := strconv.Atoi(fm.MaxPerDay)
	maxWeek, _ := strconv.Atoi(fm.MaxPerWeek)
	cooldown, _ := strconv.Atoi(fm.Cooldown)
	return models.PolicyConfig{
		RankWeight:         rank,
		GeoMatch:           geo,
		PubRate:            pub,
		EngagementPriority: eng,
		MaxPerPartnerDay:   maxDay,
		MaxPerPartnerWeek:  maxWeek,
		CooldownDays:       cooldown,
		PreferNormalDays:   fm.PreferNorm,
		EnforceBudgetHard:  fm.HardBudget,
	}
}

func validateFloatRange(lo, hi float64) func(string) error {
	return func(s string) error {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		if f < lo || f > hi {
			return fmt.Errorf("must be between %g and %g", lo, hi)
		}
		return nil
	}
}

func validateIntRange(lo, hi int) func(string) error {
	return func(s string) error {
		i, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		if i < lo || i > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

func newPolicyForm(fm *PolicyFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Rank weight (0.0-1.0)").
				Value(&fm.RankWeight).
				Validate(validateFloatRange(0, 1)),
			huh.NewInput().
				Title("Geo match (0-10)").
				Value(&fm.GeoMatch).
				Validate(validateIntRange(0, 10)),
			huh.NewInput().
				Title("Publication rate (0-10)").
				Value(&fm.PubRate).
				Validate(validateIntRange(0, 10)),
			huh.NewInput().
				Title("Engagement priority (0-10)").
				Value(&fm.Engagement).
				Validate(validateIntRange(0, 10)),
			huh.NewInput().
				Title("Max loans per partner per day").
				Value(&fm.MaxPerDay).
				Validate(validateIntRange(0, 10)),
			huh.NewInput().
				Title("Max loans per partner per week").
				Value(&fm.MaxPerWeek).
				Validate(validateIntRange(0, 20)),
			huh.NewInput().
				Title("Cooldown (days)").
				Value(&fm.Cooldown).
				Validate(validateIntRange(0, 365)),
			huh.NewConfirm().
				Title("Prefer normal days").
				Value(&fm.PreferNorm),
			huh.NewConfirm().
				Title("Enforce budget as hard constraint").
				Value(&fm.HardBudget),
		),
	).WithTheme(huh.ThemeDracula())
}

type TotalFormModel struct {
	Total string
}

func newTotalForm(fm *TotalFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Weekly slot total (0-%d)", capacity.MaxWeekTotal)).
				Description("Spread evenly over Mon-Fri; weekends zeroed").
				Value(&fm.Total).
				Validate(validateIntRange(0, capacity.MaxWeekTotal)),
		),
	).WithTheme(huh.ThemeDracula())
}
