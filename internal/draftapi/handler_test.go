package draftapi

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"draft-server/internal/timeline"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	reg := NewRegistry()
	svc := NewService(reg, 0, 0)
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	h := NewHandler(svc, log, nil)

	r := chi.NewRouter()
	h.Routes(r)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response not valid JSON: %v\n%s", err, rec.Body.String())
	}
	return out
}

func TestHandler_scenario(t *testing.T) {
	r := newTestRouter(t)

	folderDir := t.TempDir()
	audio := filepath.Join(t.TempDir(), "song.mp3")
	if err := os.WriteFile(audio, []byte("audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	rec := doJSON(t, r, http.MethodPost, "/folder/register", map[string]any{
		"folder_id": "f1", "folder_path": folderDir,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("register folder: %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodPost, "/draft/create", map[string]any{
		"folder_id": "f1", "draft_name": "d1", "width": 1920, "height": 1080,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("create draft: %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodPost, "/draft/d1/track/add", map[string]any{
		"track_type": "audio",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("add track: %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodPost, "/draft/d1/segment/audio", map[string]any{
		"material_path": audio, "start_time": "0s", "duration": "5s", "volume": 0.6,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("add audio segment: %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodPost, "/draft/d1/save", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("save: %d %s", rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)
	if resp["success"] != true || resp["draft_name"] != "d1" {
		t.Errorf("save envelope = %v", resp)
	}

	if _, err := os.Stat(filepath.Join(folderDir, "d1", timeline.DraftContentFile)); err != nil {
		t.Errorf("saved draft missing on disk: %v", err)
	}

	// The new draft shows up in the folder listing.
	rec = doJSON(t, r, http.MethodGet, "/folder/f1/drafts", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list drafts: %d", rec.Code)
	}
	resp = decodeResponse(t, rec)
	data := resp["data"].(map[string]any)
	drafts := data["drafts"].([]any)
	if len(drafts) != 1 || drafts[0] != "d1" {
		t.Errorf("drafts = %v", drafts)
	}

	// Close drops the session but not the file.
	rec = doJSON(t, r, http.MethodDelete, "/draft/d1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("close: %d %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, r, http.MethodPost, "/draft/d1/save", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("save after close: %d", rec.Code)
	}
	if _, err := os.Stat(filepath.Join(folderDir, "d1", timeline.DraftContentFile)); err != nil {
		t.Errorf("close must not touch the on-disk draft: %v", err)
	}
}

func TestHandler_RegisterFolder_errors(t *testing.T) {
	r := newTestRouter(t)

	t.Run("missing_path", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/folder/register", map[string]any{
			"folder_id": "f1", "folder_path": filepath.Join(t.TempDir(), "missing"),
		})
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("traversal_path", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/folder/register", map[string]any{
			"folder_id": "f1", "folder_path": "../drafts",
		})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
		resp := decodeResponse(t, rec)
		if _, ok := resp["detail"]; !ok {
			t.Errorf("error envelope should carry detail: %v", resp)
		}
	})

	t.Run("missing_fields", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/folder/register", map[string]any{})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("bad_json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/folder/register", bytes.NewReader([]byte("not json")))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestHandler_CreateDraft_errors(t *testing.T) {
	r := newTestRouter(t)

	t.Run("unknown_folder", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/draft/create", map[string]any{
			"folder_id": "nope", "draft_name": "d1",
		})
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("replace_disallowed", func(t *testing.T) {
		dir := t.TempDir()
		rec := doJSON(t, r, http.MethodPost, "/folder/register", map[string]any{
			"folder_id": "f1", "folder_path": dir,
		})
		if rec.Code != http.StatusOK {
			t.Fatal(rec.Body.String())
		}
		rec = doJSON(t, r, http.MethodPost, "/draft/create", map[string]any{
			"folder_id": "f1", "draft_name": "d1",
		})
		if rec.Code != http.StatusOK {
			t.Fatal(rec.Body.String())
		}

		rec = doJSON(t, r, http.MethodPost, "/draft/create", map[string]any{
			"folder_id": "f1", "draft_name": "d1",
		})
		if rec.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", rec.Code)
		}

		rec = doJSON(t, r, http.MethodPost, "/draft/create", map[string]any{
			"folder_id": "f1", "draft_name": "d1", "allow_replace": true,
		})
		if rec.Code != http.StatusOK {
			t.Errorf("allow_replace=true should succeed, got %d", rec.Code)
		}
	})
}

func TestHandler_AddTrack_errors(t *testing.T) {
	r := newTestRouter(t)

	t.Run("unknown_draft", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/draft/ghost/track/add", map[string]any{
			"track_type": "audio",
		})
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("bad_track_type", func(t *testing.T) {
		dir := t.TempDir()
		doJSON(t, r, http.MethodPost, "/folder/register", map[string]any{"folder_id": "f1", "folder_path": dir})
		doJSON(t, r, http.MethodPost, "/draft/create", map[string]any{"folder_id": "f1", "draft_name": "d1"})

		rec := doJSON(t, r, http.MethodPost, "/draft/d1/track/add", map[string]any{
			"track_type": "subtitle",
		})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestHandler_AddSegment_errors(t *testing.T) {
	r := newTestRouter(t)

	t.Run("unknown_draft", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/draft/ghost/segment/audio", map[string]any{
			"material_path": "/tmp/a.mp3", "start_time": "0s", "duration": "5s",
		})
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("bad_color", func(t *testing.T) {
		dir := t.TempDir()
		doJSON(t, r, http.MethodPost, "/folder/register", map[string]any{"folder_id": "f1", "folder_path": dir})
		doJSON(t, r, http.MethodPost, "/draft/create", map[string]any{"folder_id": "f1", "draft_name": "d1"})
		doJSON(t, r, http.MethodPost, "/draft/d1/track/add", map[string]any{"track_type": "text"})

		rec := doJSON(t, r, http.MethodPost, "/draft/d1/segment/text", map[string]any{
			"text": "x", "start_time": "0s", "duration": "3s", "color": []float64{1.0, 1.0},
		})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}

		rec = doJSON(t, r, http.MethodPost, "/draft/d1/segment/text", map[string]any{
			"text": "x", "start_time": "0s", "duration": "3s", "color": []float64{1.0, 1.0, 0.0},
		})
		if rec.Code != http.StatusOK {
			t.Errorf("valid color should succeed, got %d %s", rec.Code, rec.Body.String())
		}
	})
}

func TestHandler_metadata(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		path  string
		key   string
		vocab *timeline.Vocabulary
	}{
		{"/metadata/fonts", "fonts", timeline.Fonts},
		{"/metadata/animations/intro", "animations", timeline.IntroAnimations},
		{"/metadata/animations/outro", "animations", timeline.OutroAnimations},
		{"/metadata/animations/text-intro", "animations", timeline.TextIntroAnimations},
		{"/metadata/animations/text-outro", "animations", timeline.TextOutroAnimations},
		{"/metadata/transitions", "transitions", timeline.Transitions},
		{"/metadata/filters", "filters", timeline.Filters},
	}

	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodGet, c.path, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			resp := decodeResponse(t, rec)
			if resp["success"] != true {
				t.Errorf("success = %v", resp["success"])
			}
			if int(resp["count"].(float64)) != c.vocab.Len() {
				t.Errorf("count = %v, want %d", resp["count"], c.vocab.Len())
			}
			names := resp[c.key].([]any)
			if len(names) != c.vocab.Len() {
				t.Errorf("%s = %d names, want %d", c.key, len(names), c.vocab.Len())
			}
		})
	}
}

func TestHandler_Root(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp["name"] != ServiceName || resp["version"] != ServiceVersion {
		t.Errorf("root = %v", resp)
	}
}
