package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mugshot-app/mugshot/internal/daemon"
)

func init() {
	rootCmd.AddCommand(visitsCmd)
	rootCmd.AddCommand(rmCmd)
}

var visitsCmd = &cobra.Command{
	Use:     "visits",
	Aliases: []string{"ls"},
	Short:   "List logged cafe visits",
	RunE:    runVisits,
}

func runVisits(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	visits, err := d.Store.ListVisits()
	if err != nil {
		return err
	}

	if len(visits) == 0 {
		fmt.Println("No visits yet. Run 'mugshot log --cafe <id>' to record one.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCAFE\tDRINK\tRATING\tWHEN")
	for _, v := range visits {
		name := v.CafeName
		if name == "" {
			name = v.CafeID
		}
		rating := "-"
		if v.Rating > 0 {
			rating = fmt.Sprintf("%d/5", v.Rating)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			shortID(v.ID),
			name,
			v.Drink,
			rating,
			v.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return w.Flush()
}

var rmCmd = &cobra.Command{
	Use:   "rm <visit-id>",
	Short: "Delete a logged visit",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.Store.DeleteVisit(args[0]); err != nil {
		return err
	}
	fmt.Println("Deleted", args[0])
	return nil
}

// shortID trims a UUID for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
