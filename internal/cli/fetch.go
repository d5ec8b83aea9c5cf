package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/factdesk/factdesk/internal/apiclient"
	"github.com/factdesk/factdesk/internal/workflow"
)

var fetchServerURL string

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch <entry-id>",
	Short: "Run the metadata-then-download sequence for an entry",
	Long: `Drive a running server through the full video acquisition sequence
for one entry: probe the metadata, then download if the probe passes. The
updated entry is saved back to the server.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil || id < 0 {
			return fmt.Errorf("invalid entry id %q", args[0])
		}

		client := apiclient.New(fetchServerURL, 15*time.Minute)

		entries, err := client.Entries(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch dataset: %w", err)
		}
		if id >= len(entries) {
			return fmt.Errorf("entry %d not found (dataset has %d entries)", id, len(entries))
		}
		entry := &entries[id]

		ctrl := workflow.NewController(client, func(phase workflow.Phase, msg string) {
			if msg != "" {
				fmt.Fprintf(os.Stderr, "[%s] %s\n", phase, msg)
			}
		})
		if err := ctrl.Run(cmd.Context(), entry); err != nil {
			return err
		}

		if err := client.Save(cmd.Context(), entries); err != nil {
			return fmt.Errorf("save dataset: %w", err)
		}
		fmt.Printf("Entry %d: %s\n", id, entry.DrivePath)
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchServerURL, "server", "http://127.0.0.1:5000", "base URL of the running server")
	rootCmd.AddCommand(fetchCmd)
}
