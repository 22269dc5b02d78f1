package badge

import (
	"sort"
	"time"

	"github.com/mugshot-app/mugshot/internal/domain"
)

// valueFn selects a badge's progress value from the aggregates snapshot.
type valueFn func(domain.Aggregates) int

// valueSources maps each catalog ID to its progress-value rule. A catalog
// entry without a rule here evaluates to (0, locked).
var valueSources = map[string]valueFn{
	// first_pour displays min(visits, 1) so the progress bar caps at its
	// target, but still unlocks on the raw visit count.
	"first_pour": func(a domain.Aggregates) int {
		if a.TotalVisits > 1 {
			return 1
		}
		return a.TotalVisits
	},
	"steady_sipper":   func(a domain.Aggregates) int { return a.TotalVisits },
	"regular":         func(a domain.Aggregates) int { return a.TotalVisits },
	"weekend_warrior": func(a domain.Aggregates) int { return a.ConsecutiveWeekendsCount },
	"daily_drip_7": func(a domain.Aggregates) int {
		if a.LongestStreakDays > a.CurrentStreakDays {
			return a.LongestStreakDays
		}
		return a.CurrentStreakDays
	},
	"neighborhood_sipper": func(a domain.Aggregates) int { return a.UniqueCafeCount },
	"cafe_explorer":       func(a domain.Aggregates) int { return a.UniqueCafeCount },
	"thoughtful_sipper":   func(a domain.Aggregates) int { return a.VisitsWithNotesCount },
	"coffee_chronicler":   func(a domain.Aggregates) int { return a.VisitsWithNotesCount },
	"adventurous_palate":  func(a domain.Aggregates) int { return a.DistinctDrinkTypesCount },
	"early_bird_brew":     func(a domain.Aggregates) int { return a.EarlyMorningVisitsCount },
}

// unlockOverrides holds the badges whose unlock test differs from
// currentValue >= target. first_pour checks the raw visit count because its
// displayed value is clamped.
var unlockOverrides = map[string]func(domain.Aggregates) bool{
	"first_pour": func(a domain.Aggregates) bool { return a.TotalVisits >= 1 },
}

// Compute aggregates the visit history and evaluates the full badge catalog
// against it. This is the engine's single entry point: a total function with
// no error paths and no retained state.
func Compute(visits []domain.Visit, now time.Time, loc *time.Location) []domain.BadgeState {
	return Evaluate(Aggregate(visits, now, loc))
}

// Evaluate maps the aggregates through the catalog and returns badge states
// in board order: unlocked first, then category rank, then display name.
func Evaluate(agg domain.Aggregates) []domain.BadgeState {
	defs := Catalog()
	states := make([]domain.BadgeState, 0, len(defs))

	for _, def := range defs {
		var value int
		unlocked := false

		if fn, ok := valueSources[def.ID]; ok {
			value = fn(agg)
			if override, ok := unlockOverrides[def.ID]; ok {
				unlocked = override(agg)
			} else {
				unlocked = def.TargetValue > 0 && value >= def.TargetValue
			}
		}

		states = append(states, domain.BadgeState{
			Definition:   def,
			IsUnlocked:   unlocked,
			CurrentValue: value,
			TargetValue:  def.TargetValue,
		})
	}

	sort.SliceStable(states, func(i, j int) bool {
		a, b := states[i], states[j]
		if a.IsUnlocked != b.IsUnlocked {
			return a.IsUnlocked
		}
		if ra, rb := a.Definition.Category.SortRank(), b.Definition.Category.SortRank(); ra != rb {
			return ra < rb
		}
		return a.Definition.Name < b.Definition.Name
	})

	return states
}

// UnlockedCount returns how many of the given states are unlocked.
func UnlockedCount(states []domain.BadgeState) int {
	n := 0
	for _, s := range states {
		if s.IsUnlocked {
			n++
		}
	}
	return n
}
