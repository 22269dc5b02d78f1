package badge_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mugshot-app/mugshot/internal/app/badge"
	"github.com/mugshot-app/mugshot/internal/domain"
)

// visitAt builds a minimal visit at the given instant.
func visitAt(cafe string, at time.Time) domain.Visit {
	return domain.Visit{
		ID:        cafe + "-" + at.Format(time.RFC3339),
		CafeID:    cafe,
		CreatedAt: at,
		Drink:     domain.DrinkCoffee,
	}
}

func withNotes(v domain.Visit, notes string) domain.Visit {
	v.Notes = notes
	return v
}

func withDrink(v domain.Visit, d domain.DrinkType) domain.Visit {
	v.Drink = d
	return v
}

func TestAggregate_EmptyInput(t *testing.T) {
	agg := badge.Aggregate(nil, time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC), time.UTC)
	assert.Equal(t, domain.Aggregates{}, agg)
}

func TestAggregate_Counts(t *testing.T) {
	day := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)
	visits := []domain.Visit{
		withNotes(visitAt("blue-bottle", day), "great pour"),
		withNotes(visitAt("blue-bottle", day.Add(time.Hour)), "   "), // whitespace only — no note
		withDrink(visitAt("sey", day.Add(2*time.Hour)), domain.DrinkMatcha),
		withDrink(visitAt("sey", day.Add(3*time.Hour)), domain.DrinkMatcha),
		visitAt("la-cabra", day.Add(4*time.Hour)),
	}

	agg := badge.Aggregate(visits, day, time.UTC)

	assert.Equal(t, 5, agg.TotalVisits)
	assert.Equal(t, 3, agg.UniqueCafeCount)
	assert.Equal(t, 1, agg.VisitsWithNotesCount)
	assert.Equal(t, 2, agg.DistinctDrinkTypesCount)
}

func TestAggregate_EarlyMorningCutoff(t *testing.T) {
	day := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	visits := []domain.Visit{
		visitAt("a", day.Add(6*time.Hour)),                // 06:00 — early
		visitAt("a", day.Add(8*time.Hour+59*time.Minute)), // 08:59 — early
		visitAt("a", day.Add(9*time.Hour)),                // 09:00 — not early
		visitAt("a", day.Add(14*time.Hour)),               // 14:00 — not early
	}

	agg := badge.Aggregate(visits, day.Add(15*time.Hour), time.UTC)
	assert.Equal(t, 2, agg.EarlyMorningVisitsCount)
}

func TestAggregate_CurrentStreak_ThreeDaysEndingToday(t *testing.T) {
	now := time.Date(2025, 7, 10, 18, 0, 0, 0, time.UTC)
	visits := []domain.Visit{
		visitAt("a", now),
		visitAt("a", now.AddDate(0, 0, -1)),
		visitAt("b", now.AddDate(0, 0, -2)),
	}

	agg := badge.Aggregate(visits, now, time.UTC)
	assert.Equal(t, 3, agg.CurrentStreakDays)
	assert.Equal(t, 3, agg.LongestStreakDays)
}

func TestAggregate_CurrentStreak_GapYesterday(t *testing.T) {
	now := time.Date(2025, 7, 10, 18, 0, 0, 0, time.UTC)
	visits := []domain.Visit{
		visitAt("a", now),                   // today
		visitAt("a", now.AddDate(0, 0, -2)), // two days ago — gap at yesterday
	}

	agg := badge.Aggregate(visits, now, time.UTC)
	assert.Equal(t, 1, agg.CurrentStreakDays)
	assert.Equal(t, 1, agg.LongestStreakDays)
}

func TestAggregate_CurrentStreak_EndsYesterday(t *testing.T) {
	now := time.Date(2025, 7, 10, 8, 0, 0, 0, time.UTC)
	visits := []domain.Visit{
		visitAt("a", now.AddDate(0, 0, -1)),
		visitAt("a", now.AddDate(0, 0, -2)),
	}

	agg := badge.Aggregate(visits, now, time.UTC)
	assert.Equal(t, 2, agg.CurrentStreakDays)
}

func TestAggregate_CurrentStreak_Stale(t *testing.T) {
	now := time.Date(2025, 7, 10, 8, 0, 0, 0, time.UTC)
	visits := []domain.Visit{
		visitAt("a", now.AddDate(0, 0, -3)),
		visitAt("a", now.AddDate(0, 0, -4)),
	}

	agg := badge.Aggregate(visits, now, time.UTC)
	assert.Equal(t, 0, agg.CurrentStreakDays)
	assert.Equal(t, 2, agg.LongestStreakDays)
}

func TestAggregate_LongestVsCurrentStreak(t *testing.T) {
	// 5-day run July 1–5, 2-day run July 18–19, now = July 20 (no visit today).
	now := time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)
	var visits []domain.Visit
	for d := 1; d <= 5; d++ {
		visits = append(visits, visitAt("a", time.Date(2025, 7, d, 10, 0, 0, 0, time.UTC)))
	}
	visits = append(visits,
		visitAt("a", time.Date(2025, 7, 18, 10, 0, 0, 0, time.UTC)),
		visitAt("a", time.Date(2025, 7, 19, 10, 0, 0, 0, time.UTC)),
	)

	agg := badge.Aggregate(visits, now, time.UTC)
	assert.Equal(t, 5, agg.LongestStreakDays)
	assert.Equal(t, 2, agg.CurrentStreakDays)
}

func TestAggregate_StreakCountsDayOnce(t *testing.T) {
	now := time.Date(2025, 7, 10, 20, 0, 0, 0, time.UTC)
	visits := []domain.Visit{
		visitAt("a", now.Add(-time.Hour)),
		visitAt("b", now.Add(-4*time.Hour)),
		visitAt("c", now.Add(-8*time.Hour)),
	}

	agg := badge.Aggregate(visits, now, time.UTC)
	assert.Equal(t, 1, agg.CurrentStreakDays)
	assert.Equal(t, 1, agg.LongestStreakDays)
}

// ─── Weekend runs ───────────────────────────────────────────────────────────
// 2025-07-05, 07-12, 07-19, 07-26 are Saturdays.

func TestAggregate_WeekendUnit_SatSunCollapse(t *testing.T) {
	sat := time.Date(2025, 7, 5, 10, 0, 0, 0, time.UTC)
	sun := time.Date(2025, 7, 6, 10, 0, 0, 0, time.UTC)

	agg := badge.Aggregate([]domain.Visit{
		visitAt("a", sat),
		visitAt("a", sun),
	}, sun, time.UTC)

	assert.Equal(t, 1, agg.ConsecutiveWeekendsCount, "Sat+Sun of one week is one weekend unit")
}

func TestAggregate_ConsecutiveWeekends(t *testing.T) {
	now := time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)
	visits := []domain.Visit{
		visitAt("a", time.Date(2025, 7, 6, 10, 0, 0, 0, time.UTC)),  // Sunday, week of 07-05
		visitAt("a", time.Date(2025, 7, 12, 10, 0, 0, 0, time.UTC)), // next Saturday
	}

	agg := badge.Aggregate(visits, now, time.UTC)
	assert.Equal(t, 2, agg.ConsecutiveWeekendsCount)
}

func TestAggregate_WeekendGapResetsRun(t *testing.T) {
	now := time.Date(2025, 7, 27, 12, 0, 0, 0, time.UTC)
	visits := []domain.Visit{
		visitAt("a", time.Date(2025, 7, 5, 10, 0, 0, 0, time.UTC)),
		// week of 07-12 skipped
		visitAt("a", time.Date(2025, 7, 19, 10, 0, 0, 0, time.UTC)),
		visitAt("a", time.Date(2025, 7, 26, 10, 0, 0, 0, time.UTC)),
	}

	agg := badge.Aggregate(visits, now, time.UTC)
	assert.Equal(t, 2, agg.ConsecutiveWeekendsCount)
}

func TestAggregate_WeekdayVisitsIgnoredByWeekendRun(t *testing.T) {
	now := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)
	visits := []domain.Visit{
		visitAt("a", time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC)), // Tuesday
		visitAt("a", time.Date(2025, 7, 9, 10, 0, 0, 0, time.UTC)), // Wednesday
	}

	agg := badge.Aggregate(visits, now, time.UTC)
	assert.Equal(t, 0, agg.ConsecutiveWeekendsCount)
}

func TestAggregate_WeekendRunAcrossYearBoundary(t *testing.T) {
	// 2024-12-28 is the Saturday of ISO week 52/2024; 2025-01-04 is the
	// Saturday of ISO week 1/2025.
	now := time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC)
	visits := []domain.Visit{
		visitAt("a", time.Date(2024, 12, 28, 10, 0, 0, 0, time.UTC)),
		visitAt("a", time.Date(2025, 1, 4, 10, 0, 0, 0, time.UTC)),
	}

	agg := badge.Aggregate(visits, now, time.UTC)
	assert.Equal(t, 2, agg.ConsecutiveWeekendsCount)
}

func TestAggregate_LocalHoursFollowLocation(t *testing.T) {
	// 07:00 in New York is 11:00 or 12:00 UTC — early only in the local view.
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	at := time.Date(2025, 7, 10, 7, 0, 0, 0, ny)
	now := time.Date(2025, 7, 10, 20, 0, 0, 0, ny)
	visits := []domain.Visit{visitAt("a", at)}

	assert.Equal(t, 1, badge.Aggregate(visits, now, ny).EarlyMorningVisitsCount)
	assert.Equal(t, 0, badge.Aggregate(visits, now, time.UTC).EarlyMorningVisitsCount)
}
