package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mugshot-app/mugshot/internal/app/badge"
	"github.com/mugshot-app/mugshot/internal/daemon"
)

func init() {
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(statsCmd)
}

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show the badge board",
	RunE:  runBadges,
}

func runBadges(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	visits, err := d.Store.ListVisits()
	if err != nil {
		return err
	}

	states := badge.Compute(visits, time.Now(), time.Local)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BADGE\tCATEGORY\tPROGRESS")
	for _, st := range states {
		marker := " "
		if st.IsUnlocked {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\t%s\t%s\n",
			marker,
			st.Definition.Name,
			st.Definition.Category,
			st.ProgressText(),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d of %d unlocked\n", badge.UnlockedCount(states), len(states))
	return nil
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate visit statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	visits, err := d.Store.ListVisits()
	if err != nil {
		return err
	}

	agg := badge.Aggregate(visits, time.Now(), time.Local)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total visits\t%d\n", agg.TotalVisits)
	fmt.Fprintf(w, "Unique cafes\t%d\n", agg.UniqueCafeCount)
	fmt.Fprintf(w, "Visits with notes\t%d\n", agg.VisitsWithNotesCount)
	fmt.Fprintf(w, "Drink types tried\t%d\n", agg.DistinctDrinkTypesCount)
	fmt.Fprintf(w, "Early morning visits\t%d\n", agg.EarlyMorningVisitsCount)
	fmt.Fprintf(w, "Current streak\t%d days\n", agg.CurrentStreakDays)
	fmt.Fprintf(w, "Longest streak\t%d days\n", agg.LongestStreakDays)
	fmt.Fprintf(w, "Consecutive weekends\t%d\n", agg.ConsecutiveWeekendsCount)
	return w.Flush()
}
