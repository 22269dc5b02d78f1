// Package domain holds the core Mugshot types: cafe visits, the derived
// visit statistics, and the badge catalog types. Everything here is a plain
// value type — no storage, no transport, no clock.
package domain

import (
	"strings"
	"time"
)

// ─── Drink Types ────────────────────────────────────────────────────────────

// DrinkType is the closed set of drinks a visit can be logged with.
type DrinkType string

const (
	DrinkCoffee       DrinkType = "coffee"
	DrinkMatcha       DrinkType = "matcha"
	DrinkHojicha      DrinkType = "hojicha"
	DrinkTea          DrinkType = "tea"
	DrinkChai         DrinkType = "chai"
	DrinkHotChocolate DrinkType = "hot_chocolate"
	DrinkOther        DrinkType = "other"
)

// AllDrinkTypes returns the full drink enumeration, in menu order.
func AllDrinkTypes() []DrinkType {
	return []DrinkType{
		DrinkCoffee, DrinkMatcha, DrinkHojicha, DrinkTea,
		DrinkChai, DrinkHotChocolate, DrinkOther,
	}
}

// Valid reports whether d is a member of the closed drink enumeration.
func (d DrinkType) Valid() bool {
	switch d {
	case DrinkCoffee, DrinkMatcha, DrinkHojicha, DrinkTea,
		DrinkChai, DrinkHotChocolate, DrinkOther:
		return true
	}
	return false
}

// ─── Visits ─────────────────────────────────────────────────────────────────

// Visit is a single logged cafe visit. The badge engine reads only ID,
// CafeID, CreatedAt, Drink, and Notes; the rest is journal content carried
// for display (ratings, captions, photo URLs).
type Visit struct {
	ID        string    `json:"id"`
	CafeID    string    `json:"cafe_id"`
	CafeName  string    `json:"cafe_name"`
	CreatedAt time.Time `json:"created_at"`
	Drink     DrinkType `json:"drink_type"`
	Rating    int       `json:"rating"` // 0 = unrated, 1–5 otherwise
	Caption   string    `json:"caption"`
	Notes     string    `json:"notes"`
	PhotoURL  string    `json:"photo_url"`
}

// HasNotes reports whether the visit carries real journal notes.
// Whitespace-only notes do not count.
func (v Visit) HasNotes() bool {
	return strings.TrimSpace(v.Notes) != ""
}

// ─── Aggregates ─────────────────────────────────────────────────────────────

// Aggregates is the derived-statistics snapshot computed fresh from a visit
// list on every badge evaluation. There is no persisted or cached state
// behind these numbers.
type Aggregates struct {
	TotalVisits              int `json:"total_visits"`
	UniqueCafeCount          int `json:"unique_cafe_count"`
	VisitsWithNotesCount     int `json:"visits_with_notes_count"`
	DistinctDrinkTypesCount  int `json:"distinct_drink_types_count"`
	EarlyMorningVisitsCount  int `json:"early_morning_visits_count"`
	CurrentStreakDays        int `json:"current_streak_days"`
	LongestStreakDays        int `json:"longest_streak_days"`
	ConsecutiveWeekendsCount int `json:"consecutive_weekends_count"`
}
