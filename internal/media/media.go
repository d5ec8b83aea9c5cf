// Package media wraps yt-dlp for the two-phase video workflow: a metadata
// probe first, then a duration-gated download.
package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lrstanley/go-ytdlp"
	"go.uber.org/zap"

	"github.com/factdesk/factdesk/internal/model"
)

// descriptionLimit caps how much of a post's description is carried into the
// narrative field.
const descriptionLimit = 1000

// Metadata is the outcome of a successful probe.
type Metadata struct {
	Duration   float64
	SocialText string
}

// Result is the outcome of a download attempt. Failures are encoded in the
// Success flag and Message, matching the endpoint contract.
type Result struct {
	Success   bool
	Message   string
	DrivePath string
}

// Prober fetches video metadata for a social post URL.
type Prober interface {
	Probe(ctx context.Context, url string) (*Metadata, error)
}

// Downloader downloads the video behind a social post URL, keyed by entry ID.
type Downloader interface {
	Download(ctx context.Context, url string, id int) Result
}

// Service implements Prober and Downloader on top of the yt-dlp binary.
type Service struct {
	cfg model.MediaConfig
}

// NewService creates a media service.
func NewService(cfg model.MediaConfig) *Service {
	return &Service{cfg: cfg}
}

// Probe fetches duration and narrative text for a video URL without
// downloading anything.
func (s *Service) Probe(ctx context.Context, url string) (*Metadata, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ProbeTimeout)
	defer cancel()

	cmd := ytdlp.New().
		DumpSingleJSON().
		SkipDownload().
		NoWarnings().
		IgnoreConfig()
	if s.cfg.CookiesFromBrowser != "" {
		cmd = cmd.CookiesFromBrowser(s.cfg.CookiesFromBrowser)
	}

	result, err := cmd.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("metadata fetch failed: %w", err)
	}

	info, err := result.GetExtractedInfo()
	if err != nil || len(info) == 0 {
		return nil, fmt.Errorf("parse metadata output: %w", err)
	}

	var title, description string
	var duration float64
	if info[0].Title != nil {
		title = *info[0].Title
	}
	if info[0].Description != nil {
		description = *info[0].Description
	}
	if info[0].Duration != nil {
		duration = *info[0].Duration
	}

	zap.S().Infof("metadata probe ok for %s: duration %.2fs", url, duration)
	return &Metadata{
		Duration:   duration,
		SocialText: composeSocialText(title, description),
	}, nil
}

// composeSocialText builds the narrative field from a post's title and
// description, truncating long descriptions.
func composeSocialText(title, description string) string {
	var parts []string
	if title != "" {
		parts = append(parts, "Title: "+title)
	}
	if description != "" {
		if len(description) > descriptionLimit {
			description = description[:descriptionLimit] + "..."
		}
		parts = append(parts, "Description: "+description)
	}
	if len(parts) == 0 {
		return "No title or description found."
	}
	return strings.TrimSpace(strings.Join(parts, "\n\n"))
}

// Download fetches the video and stores it as video_<id>.<ext> under the
// download directory. Partial files are removed on failure.
func (s *Service) Download(ctx context.Context, url string, id int) Result {
	if err := os.MkdirAll(s.cfg.DownloadDir, 0755); err != nil {
		return Result{Message: fmt.Sprintf("Error creating download directory: %v", err)}
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.DownloadTimeout)
	defer cancel()

	outputTemplate := filepath.Join(s.cfg.DownloadDir, fmt.Sprintf("video_%d.%%(ext)s", id))
	cmd := ytdlp.New().
		Format(s.cfg.Format).
		MergeOutputFormat(s.cfg.MergeOutputFormat).
		NoWarnings().
		IgnoreConfig().
		Output(outputTemplate)
	if s.cfg.CookiesFromBrowser != "" {
		cmd = cmd.CookiesFromBrowser(s.cfg.CookiesFromBrowser)
	}

	if _, err := cmd.Run(ctx, url); err != nil {
		zap.S().Errorf("download failed for entry %d: %v", id, err)
		removePartials(s.cfg.DownloadDir, id)
		return Result{Message: fmt.Sprintf("Download failed. Error: %v", err)}
	}

	path, ok := findDownloadedFile(s.cfg.DownloadDir, id)
	if !ok {
		return Result{Message: fmt.Sprintf("Download process finished but no final output file found for ID %d.", id)}
	}

	zap.S().Infof("download ok for entry %d: %s", id, path)
	return Result{
		Success:   true,
		Message:   fmt.Sprintf("Download successful (%s).", filepath.Base(path)),
		DrivePath: path,
	}
}

// findDownloadedFile locates the final output for an entry, skipping
// in-progress artifacts.
func findDownloadedFile(dir string, id int) (string, bool) {
	prefix := fmt.Sprintf("video_%d.", id)
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, f := range files {
		name := f.Name()
		if !strings.HasPrefix(name, prefix) || f.IsDir() {
			continue
		}
		if strings.HasSuffix(name, ".part") || strings.HasSuffix(name, ".ytdl") {
			continue
		}
		abs, err := filepath.Abs(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		return abs, true
	}
	return "", false
}

// removePartials deletes whatever a failed download left behind for an entry.
func removePartials(dir string, id int) {
	prefix := fmt.Sprintf("video_%d.", id)
	files, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, f := range files {
		if strings.HasPrefix(f.Name(), prefix) && !f.IsDir() {
			path := filepath.Join(dir, f.Name())
			if err := os.Remove(path); err != nil {
				zap.S().Warnf("could not remove partial file %s: %v", path, err)
			}
		}
	}
}
