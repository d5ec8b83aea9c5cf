package server

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/factdesk/factdesk/internal/model"
	"github.com/factdesk/factdesk/internal/serialize"
)

const maxImportBytes = 16 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Warnf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func contentType(r *http.Request) string {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mediaType
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, out any) bool {
	if contentType(r) != "application/json" {
		writeError(w, http.StatusUnsupportedMediaType, "Request must be JSON.")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid JSON payload: %v", err))
		return false
	}
	return true
}

// handleDataset serves the full dataset, the initial state a front end renders
// from.
func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.Load()
	if err != nil {
		zap.S().Errorf("load dataset: %v", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Could not load data: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// handleSave replaces the dataset. JSON arrays are the primary format; form
// submissions using the data[i][field] convention are accepted as a fallback.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var entries []model.Entry

	switch contentType(r) {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid JSON payload: %v", err))
			return
		}
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid form payload: %v", err))
			return
		}
		entries = serialize.ParseForm(r.PostForm)
	default:
		writeError(w, http.StatusUnsupportedMediaType, "Request must be JSON or form-encoded.")
		return
	}

	saved, err := s.store.Save(entries)
	if err != nil {
		zap.S().Errorf("save dataset: %v", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Could not save data: %v", err))
		return
	}
	zap.S().Infof("saved %d entries", len(saved))
	writeJSON(w, http.StatusOK, map[string]string{"message": "Data saved successfully."})
}

// handleImport replaces the dataset from an uploaded JSON file.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid upload: %v", err))
		return
	}

	file, header, err := r.FormFile("jsonfile")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing 'jsonfile' upload.")
		return
	}
	defer func() { _ = file.Close() }()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".json") {
		writeError(w, http.StatusBadRequest, "Only .json files are accepted.")
		return
	}

	raw, err := io.ReadAll(io.LimitReader(file, maxImportBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Could not read upload: %v", err))
		return
	}

	count, err := s.store.Import(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid dataset file: %v", err))
		return
	}
	zap.S().Infof("imported %d entries from %s", count, header.Filename)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Imported %d entries.", count),
		"count":   count,
	})
}

// handleExport serves the dataset as a downloadable file.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	raw, err := s.store.Export()
	if err != nil {
		zap.S().Errorf("export dataset: %v", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Could not export data: %v", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="data.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// handleClaimDetails resolves a claim-source URL to headline details. Scrape
// failures are soft: the client gets empty fields and the curator types them
// in by hand.
func (s *Server) handleClaimDetails(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		URL string `json:"url"`
	}
	if !decodeJSONBody(w, r, &payload) {
		return
	}
	if strings.TrimSpace(payload.URL) == "" {
		writeError(w, http.StatusBadRequest, "Missing 'url' in request.")
		return
	}

	details, err := s.details.Details(r.Context(), payload.URL)
	if err != nil {
		zap.S().Warnf("claim details for %s: %v", payload.URL, err)
	}
	writeJSON(w, http.StatusOK, details)
}

// handleVideoMetadata probes a video and enforces the duration cap before any
// download is allowed.
func (s *Server) handleVideoMetadata(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		URL string `json:"url"`
	}
	if !decodeJSONBody(w, r, &payload) {
		return
	}
	if strings.TrimSpace(payload.URL) == "" {
		writeError(w, http.StatusBadRequest, "Missing 'url' in request.")
		return
	}

	meta, err := s.prober.Probe(r.Context(), payload.URL)
	if err != nil {
		zap.S().Errorf("metadata probe for %s: %v", payload.URL, err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Could not fetch metadata: %v", err))
		return
	}

	if s.maxSeconds > 0 && meta.Duration > float64(s.maxSeconds) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"message": fmt.Sprintf("Video duration (%.1fs) exceeds limit (%ds). Download aborted.", meta.Duration, s.maxSeconds),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"duration":    meta.Duration,
		"social_text": meta.SocialText,
		"message":     "Metadata fetched successfully.",
	})
}

// handleDownloadVideo downloads the video for an entry. The id may arrive as
// a number or a numeric string.
func (s *Server) handleDownloadVideo(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		URL string `json:"url"`
		ID  any    `json:"id"`
	}
	if !decodeJSONBody(w, r, &payload) {
		return
	}
	if strings.TrimSpace(payload.URL) == "" {
		writeError(w, http.StatusBadRequest, "Missing 'url' in request.")
		return
	}
	if payload.ID == nil {
		writeError(w, http.StatusBadRequest, "Invalid 'id': '<nil>'.")
		return
	}
	id, err := cast.ToIntE(payload.ID)
	if err != nil || id < 0 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid 'id': '%v'.", payload.ID))
		return
	}

	result := s.downloader.Download(r.Context(), payload.URL, id)
	if !result.Success {
		writeError(w, http.StatusInternalServerError, result.Message)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message":    result.Message,
		"drive_path": result.DrivePath,
	})
}
