package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/factdesk/factdesk/internal/headline"
	"github.com/factdesk/factdesk/internal/media"
)

// probeCmd represents the probe command
var probeCmd = &cobra.Command{
	Use:   "probe <url>",
	Short: "Fetch video metadata for a social post URL",
	Long: `Run the metadata probe locally: duration and post text for the video
behind a social post URL, without downloading anything.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		meta, err := media.NewService(cfg.Media).Probe(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Duration: %.2fs\n", meta.Duration)
		if meta.Duration > float64(cfg.Media.MaxDurationSeconds) {
			fmt.Printf("Over the %ds download limit.\n", cfg.Media.MaxDurationSeconds)
		}
		fmt.Printf("\n%s\n", meta.SocialText)
		return nil
	},
}

// headlineCmd represents the headline command
var headlineCmd = &cobra.Command{
	Use:   "headline <url>",
	Short: "Resolve the headline for a claim-source URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		details, err := headline.NewFetcher(cfg.HTTP, cfg.Cache).Details(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if details.Headline == "" && details.Subheadline == "" {
			fmt.Println("No headline found.")
			return nil
		}
		fmt.Println(details.Headline)
		if details.Subheadline != "" {
			fmt.Println(details.Subheadline)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(headlineCmd)
}
