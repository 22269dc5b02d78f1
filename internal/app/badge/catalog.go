package badge

import "github.com/mugshot-app/mugshot/internal/domain"

// Catalog returns the fixed badge catalog. Definitions are pure data; the
// matching evaluation rules live in valueSources, keyed by badge ID. Adding
// a badge means adding one entry to each.
func Catalog() []domain.BadgeDefinition {
	return []domain.BadgeDefinition{
		// ── Milestones ─────────────────────────────────────────────────
		{
			ID: "first_pour", Name: "First Pour", Category: domain.CatMilestone,
			Description: "Log your first cafe visit",
			IconName:    "cup.and.saucer.fill", TargetValue: 1,
		},
		{
			ID: "steady_sipper", Name: "Steady Sipper", Category: domain.CatMilestone,
			Description: "Log 10 cafe visits",
			IconName:    "mug.fill", TargetValue: 10,
		},
		{
			ID: "regular", Name: "The Regular", Category: domain.CatMilestone,
			Description: "Log 25 cafe visits",
			IconName:    "star.circle.fill", TargetValue: 25,
		},

		// ── Streaks ────────────────────────────────────────────────────
		{
			ID: "weekend_warrior", Name: "Weekend Warrior", Category: domain.CatStreak,
			Description: "Visit a cafe on back-to-back weekends",
			IconName:    "calendar.badge.checkmark", TargetValue: 2,
		},
		{
			ID: "daily_drip_7", Name: "Daily Drip", Category: domain.CatStreak,
			Description: "Visit a cafe 7 days in a row",
			IconName:    "flame.fill", TargetValue: 7,
		},

		// ── Exploration ────────────────────────────────────────────────
		{
			ID: "neighborhood_sipper", Name: "Neighborhood Sipper", Category: domain.CatExploration,
			Description: "Visit 3 different cafes",
			IconName:    "map.fill", TargetValue: 3,
		},
		{
			ID: "cafe_explorer", Name: "Cafe Explorer", Category: domain.CatExploration,
			Description: "Visit 10 different cafes",
			IconName:    "safari.fill", TargetValue: 10,
		},

		// ── Journaling ─────────────────────────────────────────────────
		{
			ID: "thoughtful_sipper", Name: "Thoughtful Sipper", Category: domain.CatJournal,
			Description: "Write notes on 3 visits",
			IconName:    "square.and.pencil", TargetValue: 3,
		},
		{
			ID: "coffee_chronicler", Name: "Coffee Chronicler", Category: domain.CatJournal,
			Description: "Write notes on 10 visits",
			IconName:    "book.fill", TargetValue: 10,
		},

		// ── Variety ────────────────────────────────────────────────────
		{
			ID: "adventurous_palate", Name: "Adventurous Palate", Category: domain.CatVariety,
			Description: "Try 3 different drink types",
			IconName:    "takeoutbag.and.cup.and.straw.fill", TargetValue: 3,
		},

		// ── Time of Day ────────────────────────────────────────────────
		{
			ID: "early_bird_brew", Name: "Early Bird Brew", Category: domain.CatTimeOfDay,
			Description: "Log 5 visits before 9am",
			IconName:    "sunrise.fill", TargetValue: 5,
		},
	}
}
