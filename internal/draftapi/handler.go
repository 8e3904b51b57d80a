package draftapi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"draft-server/internal/platform/metrics"
	"draft-server/internal/timeline"

	"github.com/go-chi/chi/v5"
)

const (
	// ServiceName and ServiceVersion identify the API on the root endpoint.
	ServiceName    = "draft-server"
	ServiceVersion = "1.0.0"
)

// Handler exposes the draft API over HTTP using go-chi.
type Handler struct {
	svc     *Service
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewHandler returns a Handler over the given Service, Logger, and optional
// Metrics. Metrics may be nil to disable metric recording (e.g. in tests).
func NewHandler(svc *Service, log *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{svc: svc, log: log, metrics: m}
}

// Routes mounts every endpoint on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Root)

	r.Route("/folder", func(r chi.Router) {
		r.Post("/register", h.RegisterFolder)
		r.Get("/{folder_id}/drafts", h.ListDrafts)
	})

	r.Route("/draft", func(r chi.Router) {
		r.Post("/create", h.CreateDraft)
		r.Route("/{draft_name}", func(r chi.Router) {
			r.Post("/track/add", h.AddTrack)
			r.Post("/segment/audio", h.AddAudioSegment)
			r.Post("/segment/video", h.AddVideoSegment)
			r.Post("/segment/sticker", h.AddStickerSegment)
			r.Post("/segment/text", h.AddTextSegment)
			r.Post("/save", h.SaveDraft)
			r.Delete("/", h.CloseDraft)
		})
	})

	r.Route("/metadata", func(r chi.Router) {
		r.Get("/fonts", h.listVocabulary("fonts", timeline.Fonts))
		r.Get("/animations/intro", h.listVocabulary("animations", timeline.IntroAnimations))
		r.Get("/animations/outro", h.listVocabulary("animations", timeline.OutroAnimations))
		r.Get("/animations/text-intro", h.listVocabulary("animations", timeline.TextIntroAnimations))
		r.Get("/animations/text-outro", h.listVocabulary("animations", timeline.TextOutroAnimations))
		r.Get("/transitions", h.listVocabulary("transitions", timeline.Transitions))
		r.Get("/filters", h.listVocabulary("filters", timeline.Filters))
	})
}

// Root handles GET /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"name":        ServiceName,
		"version":     ServiceVersion,
		"description": "REST API for creating and manipulating video editing drafts",
	})
}

// RegisterFolder handles POST /folder/register.
func (h *Handler) RegisterFolder(w http.ResponseWriter, r *http.Request) {
	var req FolderRegisterRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.FolderID == "" || req.FolderPath == "" {
		h.writeError(w, invalidArgumentf("folder_id and folder_path are required"))
		return
	}

	path, err := h.svc.RegisterFolder(req.FolderID, req.FolderPath)
	if err != nil {
		h.log.Info("register folder rejected",
			slog.String("folder_id", req.FolderID),
			slog.String("error", err.Error()))
		h.writeError(w, err)
		return
	}

	h.log.Debug("folder registered",
		slog.String("folder_id", req.FolderID),
		slog.String("path", path))
	writeJSON(w, http.StatusOK, DraftResponse{
		Success: true,
		Message: "Draft folder registered successfully",
		Data:    map[string]any{"folder_id": req.FolderID, "path": req.FolderPath},
	})
}

// ListDrafts handles GET /folder/{folder_id}/drafts.
func (h *Handler) ListDrafts(w http.ResponseWriter, r *http.Request) {
	folderID := chi.URLParam(r, "folder_id")

	drafts, err := h.svc.ListDrafts(folderID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DraftResponse{
		Success: true,
		Message: fmt.Sprintf("Found %d drafts", len(drafts)),
		Data:    map[string]any{"drafts": drafts},
	})
}

// CreateDraft handles POST /draft/create.
func (h *Handler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	var req DraftCreateRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.FolderID == "" || req.DraftName == "" {
		h.writeError(w, invalidArgumentf("folder_id and draft_name are required"))
		return
	}

	width, height, err := h.svc.CreateDraft(req)
	if err != nil {
		h.log.Info("create draft failed",
			slog.String("draft_name", req.DraftName),
			slog.String("folder_id", req.FolderID),
			slog.String("error", err.Error()))
		h.writeError(w, err)
		return
	}

	h.log.Debug("draft created",
		slog.String("draft_name", req.DraftName),
		slog.Int("width", width),
		slog.Int("height", height))
	if h.metrics != nil {
		h.metrics.IncDraftsCreated()
	}
	writeJSON(w, http.StatusOK, DraftResponse{
		Success:   true,
		Message:   fmt.Sprintf("Draft '%s' created successfully", req.DraftName),
		DraftName: req.DraftName,
		Data:      map[string]any{"width": width, "height": height, "folder_id": req.FolderID},
	})
}

// AddTrack handles POST /draft/{draft_name}/track/add.
func (h *Handler) AddTrack(w http.ResponseWriter, r *http.Request) {
	draftName := chi.URLParam(r, "draft_name")

	var req TrackAddRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.svc.AddTrack(draftName, req); err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DraftResponse{
		Success:   true,
		Message:   fmt.Sprintf("Track '%s' added successfully", req.TrackType),
		DraftName: draftName,
	})
}

// AddAudioSegment handles POST /draft/{draft_name}/segment/audio.
func (h *Handler) AddAudioSegment(w http.ResponseWriter, r *http.Request) {
	var req AudioSegmentRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.addSegment(w, r, "Audio segment added successfully", func(draftName string) error {
		return h.svc.AddAudioSegment(draftName, req)
	})
}

// AddVideoSegment handles POST /draft/{draft_name}/segment/video.
func (h *Handler) AddVideoSegment(w http.ResponseWriter, r *http.Request) {
	var req VideoSegmentRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.addSegment(w, r, "Video segment added successfully", func(draftName string) error {
		return h.svc.AddVideoSegment(draftName, req)
	})
}

// AddStickerSegment handles POST /draft/{draft_name}/segment/sticker.
func (h *Handler) AddStickerSegment(w http.ResponseWriter, r *http.Request) {
	var req StickerSegmentRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.addSegment(w, r, "Sticker segment added successfully", func(draftName string) error {
		return h.svc.AddStickerSegment(draftName, req)
	})
}

// AddTextSegment handles POST /draft/{draft_name}/segment/text.
func (h *Handler) AddTextSegment(w http.ResponseWriter, r *http.Request) {
	var req TextSegmentRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.addSegment(w, r, "Text segment added successfully", func(draftName string) error {
		return h.svc.AddTextSegment(draftName, req)
	})
}

// addSegment runs one segment builder and shapes the shared response.
func (h *Handler) addSegment(w http.ResponseWriter, r *http.Request, message string, build func(draftName string) error) {
	draftName := chi.URLParam(r, "draft_name")

	if err := build(draftName); err != nil {
		h.log.Info("segment rejected",
			slog.String("draft_name", draftName),
			slog.String("error", err.Error()))
		h.writeError(w, err)
		return
	}

	h.log.Debug("segment added", slog.String("draft_name", draftName))
	if h.metrics != nil {
		h.metrics.IncSegmentsAdded()
	}
	writeJSON(w, http.StatusOK, DraftResponse{
		Success:   true,
		Message:   message,
		DraftName: draftName,
	})
}

// SaveDraft handles POST /draft/{draft_name}/save.
func (h *Handler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	draftName := chi.URLParam(r, "draft_name")

	if err := h.svc.SaveDraft(draftName); err != nil {
		h.log.Error("save draft failed",
			slog.String("draft_name", draftName),
			slog.String("error", err.Error()))
		h.writeError(w, err)
		return
	}

	h.log.Info("draft saved", slog.String("draft_name", draftName))
	writeJSON(w, http.StatusOK, DraftResponse{
		Success:   true,
		Message:   fmt.Sprintf("Draft '%s' saved successfully", draftName),
		DraftName: draftName,
	})
}

// CloseDraft handles DELETE /draft/{draft_name}.
func (h *Handler) CloseDraft(w http.ResponseWriter, r *http.Request) {
	draftName := chi.URLParam(r, "draft_name")

	if err := h.svc.CloseDraft(draftName); err != nil {
		h.writeError(w, err)
		return
	}

	h.log.Info("draft closed", slog.String("draft_name", draftName))
	writeJSON(w, http.StatusOK, DraftResponse{
		Success:   true,
		Message:   fmt.Sprintf("Draft '%s' closed successfully", draftName),
		DraftName: draftName,
	})
}

// listVocabulary returns a handler enumerating one static vocabulary under
// the given payload key.
func (h *Handler) listVocabulary(key string, vocab *timeline.Vocabulary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names := vocab.Names()
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"count":   len(names),
			key:       names,
		})
	}
}

// decode parses the JSON body into v, replying 400 on malformed input.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.log.Debug("invalid request body", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Detail: "Invalid request body: " + err.Error()})
		return false
	}
	return true
}

// writeError maps the error kind to an HTTP status and writes the error
// envelope.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(KindOf(err)), ErrorResponse{Detail: err.Error()})
}

func statusFor(kind ErrorKind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
