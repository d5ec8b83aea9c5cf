package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/factdesk/factdesk/internal/headline"
	"github.com/factdesk/factdesk/internal/media"
	"github.com/factdesk/factdesk/internal/server"
	"github.com/factdesk/factdesk/internal/store"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the curation API server",
	Long: `Start the HTTP server backing the curation workbench: dataset
persistence, claim headline lookup, video metadata probing, and video
download.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}
		if data, _ := cmd.Flags().GetString("data"); data != "" {
			cfg.Store.DataFile = data
		}

		st := store.New(cfg.Store.DataFile)
		fetcher := headline.NewFetcher(cfg.HTTP, cfg.Cache)
		svc := media.NewService(cfg.Media)

		srv := server.New(cfg.Server, st, fetcher, svc, svc, cfg.Media.MaxDurationSeconds)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		zap.S().Infof("serving dataset %s", st.Path())
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config)")
	serveCmd.Flags().String("data", "", "dataset file (default from config)")

	rootCmd.AddCommand(serveCmd)
}
