package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/factdesk/factdesk/internal/model"
)

type fakeAPI struct {
	metaResp *MetadataResponse
	metaErr  error
	dlResp   *DownloadResponse
	dlErr    error

	metaCalls int
	dlCalls   int
}

func (f *fakeAPI) VideoMetadata(ctx context.Context, url string) (*MetadataResponse, error) {
	f.metaCalls++
	return f.metaResp, f.metaErr
}

func (f *fakeAPI) DownloadVideo(ctx context.Context, url string, id int) (*DownloadResponse, error) {
	f.dlCalls++
	return f.dlResp, f.dlErr
}

type phaseRecorder struct {
	phases   []Phase
	messages []string
}

func (r *phaseRecorder) record(p Phase, msg string) {
	r.phases = append(r.phases, p)
	r.messages = append(r.messages, msg)
}

func TestRun_EmptySocialLinkMakesNoRequests(t *testing.T) {
	api := &fakeAPI{}
	rec := &phaseRecorder{}
	c := NewController(api, rec.record)

	err := c.Run(context.Background(), &model.Entry{ID: 1, SocialLink: "   "})
	if err == nil || err.Error() != "Social Link URL is required." {
		t.Errorf("unexpected error: %v", err)
	}
	if api.metaCalls != 0 || api.dlCalls != 0 {
		t.Errorf("expected zero requests, got meta=%d dl=%d", api.metaCalls, api.dlCalls)
	}
	if rec.phases[len(rec.phases)-1] != Idle {
		t.Errorf("expected final phase Idle, got %v", rec.phases)
	}
}

func TestRun_MissingIDMakesNoRequests(t *testing.T) {
	api := &fakeAPI{}
	c := NewController(api, nil)

	err := c.Run(context.Background(), &model.Entry{ID: -1, SocialLink: "https://x.com/v/1"})
	if err == nil || err.Error() != "Valid Entry ID is missing." {
		t.Errorf("unexpected error: %v", err)
	}
	if api.metaCalls != 0 {
		t.Errorf("expected zero metadata requests, got %d", api.metaCalls)
	}
}

func TestRun_MetadataRejectionSkipsDownload(t *testing.T) {
	api := &fakeAPI{
		metaResp: &MetadataResponse{Success: false, Message: "too long"},
	}
	rec := &phaseRecorder{}
	c := NewController(api, rec.record)
	e := &model.Entry{ID: 2, SocialLink: "https://x.com/v/2"}

	err := c.Run(context.Background(), e)
	if err == nil || err.Error() != "Metadata Error: too long" {
		t.Errorf("unexpected error: %v", err)
	}
	if api.dlCalls != 0 {
		t.Errorf("download must not run after metadata rejection, got %d calls", api.dlCalls)
	}

	want := []Phase{FetchingMetadata, MetadataFailed, Idle}
	if len(rec.phases) != len(want) {
		t.Fatalf("phases = %v, want %v", rec.phases, want)
	}
	for i, p := range want {
		if rec.phases[i] != p {
			t.Errorf("phase[%d] = %v, want %v", i, rec.phases[i], p)
		}
	}
}

func TestRun_MetadataServerError(t *testing.T) {
	api := &fakeAPI{metaErr: &ServerError{Message: "yt-dlp exploded"}}
	c := NewController(api, nil)

	err := c.Run(context.Background(), &model.Entry{ID: 3, SocialLink: "https://x.com/v/3"})
	if err == nil || err.Error() != "Metadata Error: yt-dlp exploded" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRun_MetadataNetworkError(t *testing.T) {
	api := &fakeAPI{metaErr: errors.New("connection refused")}
	c := NewController(api, nil)

	err := c.Run(context.Background(), &model.Entry{ID: 3, SocialLink: "https://x.com/v/3"})
	if err == nil || !strings.HasPrefix(err.Error(), "Network error during metadata fetch:") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRun_HappyPath(t *testing.T) {
	api := &fakeAPI{
		metaResp: &MetadataResponse{Success: true, Duration: 725.4, SocialText: "Title: clip"},
		dlResp:   &DownloadResponse{Success: true, Message: "Download successful (video_4.mp4).", DrivePath: "/data/downloads/video_4.mp4"},
	}
	rec := &phaseRecorder{}
	c := NewController(api, rec.record)
	e := &model.Entry{ID: 4, SocialLink: "https://x.com/v/4"}

	if err := c.Run(context.Background(), e); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if e.SocialDuration != 725.4 || e.SocialText != "Title: clip" {
		t.Errorf("entry metadata not applied: %+v", e)
	}
	if !e.DownloadSuccess || e.DrivePath != "/data/downloads/video_4.mp4" {
		t.Errorf("entry download fields not applied: %+v", e)
	}

	want := []Phase{FetchingMetadata, Downloading, DownloadOK, Idle}
	for i, p := range want {
		if rec.phases[i] != p {
			t.Fatalf("phases = %v, want %v", rec.phases, want)
		}
	}
	if !strings.Contains(rec.messages[1], "725.40") {
		t.Errorf("downloading message should carry the duration, got %q", rec.messages[1])
	}
	if rec.messages[2] != "Download successful (video_4.mp4)." {
		t.Errorf("final message = %q", rec.messages[2])
	}
	if e.DownloadMessage != "Download successful (video_4.mp4)." {
		t.Errorf("stored message = %q", e.DownloadMessage)
	}
	if MessageTone(e) != ToneValid {
		t.Errorf("expected valid tone after success")
	}
}

func TestRun_MetadataFailureRecordedOnEntry(t *testing.T) {
	api := &fakeAPI{
		metaResp: &MetadataResponse{Success: false, Message: "too long"},
	}
	c := NewController(api, nil)
	e := &model.Entry{
		ID:              1,
		SocialLink:      "https://x.com/v/1",
		DownloadSuccess: true,
		DownloadMessage: "Download successful (video_1.mp4).",
		DrivePath:       "/old/video_1.mp4",
		SocialDuration:  99,
	}

	err := c.Run(context.Background(), e)
	if err == nil {
		t.Fatal("expected error")
	}
	if e.DownloadSuccess {
		t.Error("success flag from the previous run must be cleared")
	}
	if e.DrivePath != "" {
		t.Errorf("stale drive path must be cleared, got %q", e.DrivePath)
	}
	if e.SocialDuration != 0 {
		t.Errorf("stale duration must be cleared, got %v", e.SocialDuration)
	}
	if e.DownloadMessage != "Metadata Error: too long" {
		t.Errorf("failure not recorded on entry, got %q", e.DownloadMessage)
	}
	if MessageTone(e) != ToneInvalid {
		t.Error("expected invalid tone after metadata failure")
	}
}

func TestRun_StartClearsPriorVideoState(t *testing.T) {
	api := &fakeAPI{
		metaResp: &MetadataResponse{Success: true, Duration: 10},
		dlResp:   &DownloadResponse{Success: true, DrivePath: "/d/video_2.mp4"},
	}
	c := NewController(api, nil)
	e := &model.Entry{
		ID:              2,
		SocialLink:      "https://x.com/v/2",
		DownloadMessage: "Download Error: old failure",
		DrivePath:       "/old/video_2.mp4",
	}

	if err := c.Run(context.Background(), e); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if e.DrivePath != "/d/video_2.mp4" || e.SocialDuration != 10 {
		t.Errorf("entry not updated from responses: %+v", e)
	}
	if e.DownloadMessage != "Download successful." {
		t.Errorf("empty server message should fall back to the default, got %q", e.DownloadMessage)
	}
}

func TestRun_DownloadFailureRecordedOnEntry(t *testing.T) {
	api := &fakeAPI{
		metaResp: &MetadataResponse{Success: true, Duration: 12},
		dlResp:   &DownloadResponse{Success: false, Message: "Download failed. Error: 403"},
	}
	c := NewController(api, nil)
	e := &model.Entry{ID: 5, SocialLink: "https://x.com/v/5", DownloadSuccess: true}

	err := c.Run(context.Background(), e)
	if err == nil || err.Error() != "Download Error: Download failed. Error: 403" {
		t.Errorf("unexpected error: %v", err)
	}
	if e.DownloadSuccess {
		t.Error("download success flag should be cleared on failure")
	}
	if e.DownloadMessage != "Download Error: Download failed. Error: 403" {
		t.Errorf("unexpected stored message %q", e.DownloadMessage)
	}
	if MessageTone(e) != ToneInvalid {
		t.Error("expected invalid tone after failure with message")
	}
}

func TestRun_DownloadFailureWithoutMessageUsesDefault(t *testing.T) {
	api := &fakeAPI{
		metaResp: &MetadataResponse{Success: true},
		dlResp:   &DownloadResponse{Success: false},
	}
	c := NewController(api, nil)

	err := c.Run(context.Background(), &model.Entry{ID: 6, SocialLink: "https://x.com/v/6"})
	if err == nil || err.Error() != "Download Error: Unknown download error" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMessageTone_NoneWhenNothingToShow(t *testing.T) {
	if tone := MessageTone(&model.Entry{}); tone != ToneNone {
		t.Errorf("expected no tone for untouched entry, got %v", tone)
	}
}
