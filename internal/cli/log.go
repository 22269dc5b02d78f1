package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mugshot-app/mugshot/internal/daemon"
	"github.com/mugshot-app/mugshot/internal/domain"
)

var logFlags struct {
	cafe    string
	name    string
	drink   string
	rating  int
	caption string
	notes   string
	photo   string
}

func init() {
	logCmd.Flags().StringVar(&logFlags.cafe, "cafe", "", "cafe identifier (required)")
	logCmd.Flags().StringVar(&logFlags.name, "name", "", "cafe display name")
	logCmd.Flags().StringVar(&logFlags.drink, "drink", "coffee", "drink type (coffee, matcha, hojicha, tea, chai, hot_chocolate, other)")
	logCmd.Flags().IntVar(&logFlags.rating, "rating", 0, "rating 1-5 (0 = unrated)")
	logCmd.Flags().StringVar(&logFlags.caption, "caption", "", "short caption")
	logCmd.Flags().StringVar(&logFlags.notes, "notes", "", "journal notes")
	logCmd.Flags().StringVar(&logFlags.photo, "photo", "", "photo URL")
	rootCmd.AddCommand(logCmd)
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a cafe visit",
	RunE:  runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(logFlags.cafe) == "" {
		return domain.ErrMissingCafe
	}

	drink := domain.DrinkType(logFlags.drink)
	if !drink.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidDrink, logFlags.drink)
	}
	if logFlags.rating < 0 || logFlags.rating > 5 {
		return domain.ErrInvalidRating
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	visit := domain.Visit{
		ID:        uuid.NewString(),
		CafeID:    logFlags.cafe,
		CafeName:  logFlags.name,
		CreatedAt: time.Now(),
		Drink:     drink,
		Rating:    logFlags.rating,
		Caption:   logFlags.caption,
		Notes:     logFlags.notes,
		PhotoURL:  logFlags.photo,
	}

	if err := d.Store.InsertVisit(visit); err != nil {
		return err
	}

	fmt.Printf("Logged %s at %s (%s)\n", visit.Drink, visit.CafeID, visit.ID)
	return nil
}
