package domain

import "fmt"

// ─── Badge Categories ───────────────────────────────────────────────────────

// BadgeCategory groups badges by theme. Categories carry a fixed sort rank
// that is part of the user-facing badge ordering contract.
type BadgeCategory string

const (
	CatMilestone   BadgeCategory = "milestone"
	CatStreak      BadgeCategory = "streak"
	CatExploration BadgeCategory = "exploration"
	CatJournal     BadgeCategory = "journal"
	CatVariety     BadgeCategory = "variety"
	CatTimeOfDay   BadgeCategory = "time_of_day"
)

// SortRank returns the category's position in the badge board ordering.
// Unknown categories sort last.
func (c BadgeCategory) SortRank() int {
	switch c {
	case CatMilestone:
		return 0
	case CatStreak:
		return 1
	case CatExploration:
		return 2
	case CatJournal:
		return 3
	case CatVariety:
		return 4
	case CatTimeOfDay:
		return 5
	}
	return 6
}

// ─── Badge Definitions ──────────────────────────────────────────────────────

// BadgeDefinition is a single entry of the static badge catalog.
// Definitions are pure data — the per-badge evaluation rule lives with the
// engine, keyed by ID.
type BadgeDefinition struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    BadgeCategory `json:"category"`
	IconName    string        `json:"icon_name"`    // display-only, passed through to clients
	TargetValue int           `json:"target_value"` // 0 = no numeric target
}

// ─── Badge States ───────────────────────────────────────────────────────────

// BadgeState is the evaluated unlock state of one badge. States are
// recomputed from scratch on every evaluation.
type BadgeState struct {
	Definition   BadgeDefinition `json:"definition"`
	IsUnlocked   bool            `json:"is_unlocked"`
	CurrentValue int             `json:"current_value"`
	TargetValue  int             `json:"target_value"`
}

// Progress returns unlock progress in [0, 1]. Badges without a numeric
// target report 1.0 when unlocked and 0.0 otherwise.
func (b BadgeState) Progress() float64 {
	if b.TargetValue <= 0 {
		if b.IsUnlocked {
			return 1.0
		}
		return 0.0
	}
	p := float64(b.CurrentValue) / float64(b.TargetValue)
	if p > 1.0 {
		p = 1.0
	}
	return p
}

// ProgressText returns the display string for the badge's progress line.
func (b BadgeState) ProgressText() string {
	if b.IsUnlocked {
		return "Unlocked"
	}
	if b.TargetValue <= 0 {
		return "Locked"
	}
	return fmt.Sprintf("%d/%d", b.CurrentValue, b.TargetValue)
}
