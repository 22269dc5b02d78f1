// Package badge implements the Mugshot badge engine: pure functions that
// reduce a visit history into derived statistics and evaluate them against
// the fixed badge catalog. The engine keeps no state between calls — every
// evaluation is a full recomputation over the snapshot it is handed, so
// results depend only on (visits, now, location).
package badge

import (
	"sort"
	"time"

	"github.com/mugshot-app/mugshot/internal/domain"
)

// earlyMorningHour is the exclusive local-hour cutoff for an "early" visit.
const earlyMorningHour = 9

// Aggregate reduces a visit list into the statistics snapshot consumed by
// badge evaluation. The caller supplies the reference instant and location;
// visits need not be sorted. An empty list yields all-zero aggregates.
func Aggregate(visits []domain.Visit, now time.Time, loc *time.Location) domain.Aggregates {
	agg := domain.Aggregates{TotalVisits: len(visits)}

	cafes := make(map[string]struct{})
	drinks := make(map[domain.DrinkType]struct{})
	days := make(map[time.Time]struct{})

	for _, v := range visits {
		cafes[v.CafeID] = struct{}{}
		drinks[v.Drink] = struct{}{}

		local := v.CreatedAt.In(loc)
		days[startOfDay(local)] = struct{}{}

		if local.Hour() < earlyMorningHour {
			agg.EarlyMorningVisitsCount++
		}
		if v.HasNotes() {
			agg.VisitsWithNotesCount++
		}
	}

	agg.UniqueCafeCount = len(cafes)
	agg.DistinctDrinkTypesCount = len(drinks)
	agg.CurrentStreakDays = currentStreak(days, now.In(loc))
	agg.LongestStreakDays = longestStreak(days)
	agg.ConsecutiveWeekendsCount = consecutiveWeekends(visits, loc)

	return agg
}

// startOfDay truncates t to midnight in t's own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// currentStreak counts consecutive visit-days ending today or yesterday.
// If neither day has a visit the streak is 0: a streak survives overnight
// until the end of the next day, not longer.
func currentStreak(days map[time.Time]struct{}, now time.Time) int {
	if len(days) == 0 {
		return 0
	}

	today := startOfDay(now)
	yesterday := today.AddDate(0, 0, -1)

	var cursor time.Time
	switch {
	case has(days, today):
		cursor = today
	case has(days, yesterday):
		cursor = yesterday
	default:
		return 0
	}

	streak := 0
	for has(days, cursor) {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// longestStreak finds the maximum run of consecutive visit-days anywhere in
// the history.
func longestStreak(days map[time.Time]struct{}) int {
	if len(days) == 0 {
		return 0
	}

	sorted := make([]time.Time, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].AddDate(0, 0, 1).Equal(sorted[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// consecutiveWeekends finds the longest run of back-to-back weekends that
// each contain at least one visit. Saturday and Sunday of the same week are
// one weekend unit: a Sunday visit is collapsed onto the preceding Saturday
// before the weekend is identified.
func consecutiveWeekends(visits []domain.Visit, loc *time.Location) int {
	units := make(map[int]struct{})

	for _, v := range visits {
		local := v.CreatedAt.In(loc)
		switch local.Weekday() {
		case time.Saturday:
			// keep as-is
		case time.Sunday:
			local = local.AddDate(0, 0, -1)
		default:
			continue
		}
		units[weekendID(local)] = struct{}{}
	}

	if len(units) == 0 {
		return 0
	}

	ids := make([]int, 0, len(units))
	for id := range units {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	longest, run := 1, 1
	for i := 1; i < len(ids); i++ {
		if weekendsAdjacent(ids[i-1], ids[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// weekendID identifies a weekend unit as isoYear*100 + isoWeek of its
// Saturday. ISO numbering keeps late-December Saturdays in the outgoing
// year's final week.
func weekendID(saturday time.Time) int {
	year, week := saturday.ISOWeek()
	return year*100 + week
}

// weekendsAdjacent reports whether two sorted weekend IDs are exactly one
// week apart, including the rollover from a year's last week (52 or 53)
// into week 1 of the next year.
func weekendsAdjacent(a, b int) bool {
	if b == a+1 {
		return true
	}
	return b/100 == a/100+1 && a%100 >= 52 && b%100 == 1
}

func has(days map[time.Time]struct{}, d time.Time) bool {
	_, ok := days[d]
	return ok
}
