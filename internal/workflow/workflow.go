// Package workflow drives the two-phase video acquisition sequence: probe the
// metadata first, then download only when the probe succeeds. Phase
// transitions are reported through a hook so any front end can mirror them.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/factdesk/factdesk/internal/model"
)

// Phase is a step of the acquisition sequence.
type Phase int

const (
	Idle Phase = iota
	FetchingMetadata
	MetadataFailed
	Downloading
	DownloadFailed
	DownloadOK
)

// String returns a short name for logs.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case FetchingMetadata:
		return "fetching_metadata"
	case MetadataFailed:
		return "metadata_failed"
	case Downloading:
		return "downloading"
	case DownloadFailed:
		return "download_failed"
	case DownloadOK:
		return "download_ok"
	default:
		return "unknown"
	}
}

// MetadataResponse is the decoded body of a metadata probe call.
type MetadataResponse struct {
	Success    bool    `json:"success"`
	Duration   float64 `json:"duration"`
	SocialText string  `json:"social_text"`
	Message    string  `json:"message"`
}

// DownloadResponse is the decoded body of a download call.
type DownloadResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	DrivePath string `json:"drive_path"`
}

// ServerError is a failure the server reported in a response body, as opposed
// to a transport-level failure.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string { return e.Message }

// API is the remote surface the controller drives.
type API interface {
	VideoMetadata(ctx context.Context, url string) (*MetadataResponse, error)
	DownloadVideo(ctx context.Context, url string, id int) (*DownloadResponse, error)
}

// Controller runs the acquisition sequence for one entry at a time.
type Controller struct {
	api     API
	onPhase func(Phase, string)
}

// NewController creates a controller. onPhase may be nil; when set it receives
// every phase transition with its status message.
func NewController(api API, onPhase func(Phase, string)) *Controller {
	return &Controller{api: api, onPhase: onPhase}
}

func (c *Controller) emit(p Phase, msg string) {
	if c.onPhase != nil {
		c.onPhase(p, msg)
	}
}

// Run executes the full sequence for an entry, updating its video fields in
// place. Whatever happens, the controller returns to Idle before Run exits.
// Precondition failures produce no network calls.
func (c *Controller) Run(ctx context.Context, e *model.Entry) error {
	url := strings.TrimSpace(e.SocialLink)
	if url == "" {
		msg := "Social Link URL is required."
		c.emit(MetadataFailed, msg)
		c.emit(Idle, "")
		return errors.New(msg)
	}
	if e.ID < 0 {
		msg := "Valid Entry ID is missing."
		c.emit(MetadataFailed, msg)
		c.emit(Idle, "")
		return errors.New(msg)
	}

	defer c.emit(Idle, "")

	// Starting a run invalidates whatever the last run left behind.
	e.DownloadSuccess = false
	e.DownloadMessage = ""
	e.DrivePath = ""
	e.SocialDuration = 0

	c.emit(FetchingMetadata, "Fetching video metadata...")

	meta, err := c.api.VideoMetadata(ctx, url)
	if err != nil {
		msg := metadataFailureMessage(err)
		e.DownloadSuccess = false
		e.DownloadMessage = msg
		c.emit(MetadataFailed, msg)
		return errors.New(msg)
	}
	if !meta.Success {
		reason := meta.Message
		if reason == "" {
			reason = "Unknown metadata error"
		}
		msg := fmt.Sprintf("Metadata Error: %s", reason)
		e.DownloadSuccess = false
		e.DownloadMessage = msg
		c.emit(MetadataFailed, msg)
		return errors.New(msg)
	}

	e.SocialDuration = meta.Duration
	if meta.SocialText != "" {
		e.SocialText = meta.SocialText
	}

	c.emit(Downloading, fmt.Sprintf("Metadata OK (Duration: %.2fs). Proceeding to download...", meta.Duration))

	dl, err := c.api.DownloadVideo(ctx, url, e.ID)
	if err != nil {
		msg := downloadFailureMessage(err)
		e.DownloadSuccess = false
		e.DownloadMessage = msg
		c.emit(DownloadFailed, msg)
		return errors.New(msg)
	}
	if !dl.Success {
		reason := dl.Message
		if reason == "" {
			reason = "Unknown download error"
		}
		msg := fmt.Sprintf("Download Error: %s", reason)
		e.DownloadSuccess = false
		e.DownloadMessage = msg
		c.emit(DownloadFailed, msg)
		return errors.New(msg)
	}

	msg := dl.Message
	if msg == "" {
		msg = "Download successful."
	}
	e.DownloadSuccess = true
	e.DownloadMessage = msg
	e.DrivePath = dl.DrivePath
	c.emit(DownloadOK, msg)
	return nil
}

func metadataFailureMessage(err error) string {
	var srv *ServerError
	if errors.As(err, &srv) {
		return fmt.Sprintf("Metadata Error: %s", srv.Message)
	}
	return fmt.Sprintf("Network error during metadata fetch: %v", err)
}

func downloadFailureMessage(err error) string {
	var srv *ServerError
	if errors.As(err, &srv) {
		return fmt.Sprintf("Download Error: %s", srv.Message)
	}
	return fmt.Sprintf("Network error during download: %v", err)
}

// Tone classifies an entry's stored download message for display.
type Tone int

const (
	ToneNone Tone = iota
	ToneValid
	ToneInvalid
)

// MessageTone reports how an entry's download message should read: valid when
// the last download succeeded, invalid when it failed with a reason, and no
// tone when there is nothing to show.
func MessageTone(e *model.Entry) Tone {
	if e.DownloadSuccess {
		return ToneValid
	}
	if e.DownloadMessage != "" {
		return ToneInvalid
	}
	return ToneNone
}
