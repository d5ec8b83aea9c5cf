package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/factdesk/factdesk/internal/links"
	"github.com/factdesk/factdesk/internal/store"
)

var checkLinksJSON bool

// checkLinksCmd represents the check-links command
var checkLinksCmd = &cobra.Command{
	Use:   "check-links",
	Short: "Verify that all evidence links are still reachable",
	Long: `Probe every evidence link in the dataset concurrently and report
dead or unreachable URLs. Exits non-zero when any link is dead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		entries, err := store.New(cfg.Store.DataFile).Load()
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}

		checker := links.NewChecker(cfg.HTTP, cfg.Concurrency.LinkCheckWorkers)
		reports := checker.CheckEntries(cmd.Context(), entries)

		if checkLinksJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(reports); err != nil {
				return err
			}
		} else {
			printLinkReports(reports)
		}

		dead := 0
		for _, r := range reports {
			if !r.Alive {
				dead++
			}
		}
		if dead > 0 {
			return fmt.Errorf("%d of %d links are dead", dead, len(reports))
		}
		fmt.Printf("All %d links are alive.\n", len(reports))
		return nil
	},
}

func printLinkReports(reports []links.Report) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ENTRY\tSTATUS\tURL\tERROR")
	for _, r := range reports {
		status := fmt.Sprintf("%d", r.StatusCode)
		if r.StatusCode == 0 {
			status = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.EntryID, status, r.URL, r.Error)
	}
	_ = w.Flush()
}

func init() {
	checkLinksCmd.Flags().BoolVar(&checkLinksJSON, "json", false, "emit reports as JSON")
	rootCmd.AddCommand(checkLinksCmd)
}
