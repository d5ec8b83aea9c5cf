// Package server exposes the curation API over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/factdesk/factdesk/internal/headline"
	"github.com/factdesk/factdesk/internal/media"
	"github.com/factdesk/factdesk/internal/model"
	"github.com/factdesk/factdesk/internal/store"
)

// DetailsFetcher resolves claim-source URLs to headline details.
type DetailsFetcher interface {
	Details(ctx context.Context, rawURL string) (headline.Details, error)
}

// Server wires the dataset store, the headline fetcher, and the media service
// behind the HTTP surface.
type Server struct {
	cfg        model.ServerConfig
	store      *store.Store
	details    DetailsFetcher
	prober     media.Prober
	downloader media.Downloader
	maxSeconds int

	httpServer *http.Server
}

// New assembles a server. maxSeconds caps how long a video may be before the
// download endpoint refuses it.
func New(cfg model.ServerConfig, st *store.Store, details DetailsFetcher, prober media.Prober, downloader media.Downloader, maxSeconds int) *Server {
	s := &Server{
		cfg:        cfg,
		store:      st,
		details:    details,
		prober:     prober,
		downloader: downloader,
		maxSeconds: maxSeconds,
	}
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleDataset)
	mux.HandleFunc("POST /save", s.handleSave)
	mux.HandleFunc("POST /import", s.handleImport)
	mux.HandleFunc("GET /export", s.handleExport)
	mux.HandleFunc("POST /get_politifact_details", s.handleClaimDetails)
	mux.HandleFunc("POST /get_video_metadata", s.handleVideoMetadata)
	mux.HandleFunc("POST /download_video", s.handleDownloadVideo)
	return logRequests(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		zap.S().Infof("listening on %s", s.cfg.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	zap.S().Info("server stopped")
	return nil
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		zap.S().Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
