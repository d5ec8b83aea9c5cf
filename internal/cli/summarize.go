package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/factdesk/factdesk/internal/llm"
	"github.com/factdesk/factdesk/internal/store"
)

// summarizeCmd represents the summarize command
var summarizeCmd = &cobra.Command{
	Use:   "summarize <entry-id>",
	Short: "Draft a summary for an entry with the configured LLM provider",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id < 0 {
			return fmt.Errorf("invalid entry id %q", args[0])
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		provider, err := llm.NewProvider(cfg.LLM)
		if err != nil {
			return err
		}
		if provider == nil {
			return fmt.Errorf("no llm provider configured; set llm.provider in the config")
		}

		entries, err := store.New(cfg.Store.DataFile).Load()
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}
		if id >= len(entries) {
			return fmt.Errorf("entry %d not found (dataset has %d entries)", id, len(entries))
		}

		resp, err := provider.Draft(cmd.Context(), llm.DraftRequest{Entry: entries[id]})
		if err != nil {
			return fmt.Errorf("draft summary: %w", err)
		}

		fmt.Println(resp.Summary)
		if verbose {
			fmt.Printf("\n(%s, %d tokens)\n", resp.Model, resp.TokensUsed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
}
