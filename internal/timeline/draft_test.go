package timeline

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestFolder(t *testing.T) *Folder {
	t.Helper()
	f, err := NewFolder(t.TempDir())
	if err != nil {
		t.Fatalf("NewFolder: %v", err)
	}
	return f
}

func writeTestFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("media bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewFolder(t *testing.T) {
	if _, err := NewFolder(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("missing directory should fail")
	}

	file := writeTestFile(t, t.TempDir(), "plain.txt")
	if _, err := NewFolder(file); err == nil {
		t.Error("regular file should fail")
	}
}

func TestFolder_CreateDraft(t *testing.T) {
	folder := newTestFolder(t)

	d, err := folder.CreateDraft("d1", 1920, 1080, false)
	if err != nil {
		t.Fatalf("CreateDraft: %v", err)
	}
	if d.Name != "d1" || d.Width != 1920 || d.Height != 1080 {
		t.Errorf("draft = %+v", d)
	}
	if info, err := os.Stat(d.Dir); err != nil || !info.IsDir() {
		t.Errorf("draft dir not created: %v", err)
	}

	t.Run("replace_disallowed", func(t *testing.T) {
		_, err := folder.CreateDraft("d1", 1280, 720, false)
		if !errors.Is(err, ErrDraftExists) {
			t.Errorf("expected ErrDraftExists, got %v", err)
		}
	})

	t.Run("replace_allowed", func(t *testing.T) {
		stale := writeTestFile(t, d.Dir, "old.json")
		d2, err := folder.CreateDraft("d1", 1280, 720, true)
		if err != nil {
			t.Fatalf("CreateDraft replace: %v", err)
		}
		if d2.Width != 1280 {
			t.Errorf("width = %d", d2.Width)
		}
		if _, err := os.Stat(stale); !os.IsNotExist(err) {
			t.Error("replace should clear old draft contents")
		}
	})

	t.Run("bad_names", func(t *testing.T) {
		for _, name := range []string{"", "a/b", `a\b`, "../escape"} {
			if _, err := folder.CreateDraft(name, 100, 100, false); err == nil {
				t.Errorf("CreateDraft(%q) should fail", name)
			}
		}
	})
}

func TestFolder_ListDrafts(t *testing.T) {
	folder := newTestFolder(t)

	names, err := folder.ListDrafts()
	if err != nil {
		t.Fatalf("ListDrafts: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected empty, got %v", names)
	}

	for _, n := range []string{"beta", "alpha"} {
		if _, err := folder.CreateDraft(n, 1920, 1080, false); err != nil {
			t.Fatal(err)
		}
	}
	// A stray file must not show up as a draft.
	writeTestFile(t, folder.Path, "notes.txt")

	names, err = folder.ListDrafts()
	if err != nil {
		t.Fatalf("ListDrafts: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("ListDrafts = %v", names)
	}
}

func TestDraft_AddTrack(t *testing.T) {
	folder := newTestFolder(t)
	d, err := folder.CreateDraft("d1", 1920, 1080, false)
	if err != nil {
		t.Fatal(err)
	}

	track, err := d.AddTrack(TrackAudio, TrackOptions{})
	if err != nil {
		t.Fatalf("AddTrack: %v", err)
	}
	if track.Name != "audio" {
		t.Errorf("default track name = %q", track.Name)
	}

	rel := 2
	named, err := d.AddTrack(TrackVideo, TrackOptions{Name: "main", RelativeIndex: &rel})
	if err != nil {
		t.Fatalf("AddTrack named: %v", err)
	}
	if named.Name != "main" || named.RelativeIndex != 2 {
		t.Errorf("track = %+v", named)
	}

	if _, err := d.AddTrack(TrackText, TrackOptions{Name: "main"}); !errors.Is(err, ErrTrackExists) {
		t.Errorf("duplicate name: expected ErrTrackExists, got %v", err)
	}
}

func TestDraft_AddSegment(t *testing.T) {
	folder := newTestFolder(t)
	d, err := folder.CreateDraft("d1", 1920, 1080, false)
	if err != nil {
		t.Fatal(err)
	}
	audio := writeTestFile(t, t.TempDir(), "song.mp3")

	seg, err := NewAudioSegment(audio, Timerange{Start: 0, Duration: 5 * Second})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("no_suitable_track", func(t *testing.T) {
		if err := d.AddSegment(seg, ""); !errors.Is(err, ErrTrackNotFound) {
			t.Errorf("expected ErrTrackNotFound, got %v", err)
		}
	})

	if _, err := d.AddTrack(TrackAudio, TrackOptions{}); err != nil {
		t.Fatal(err)
	}

	t.Run("default_track", func(t *testing.T) {
		if err := d.AddSegment(seg, ""); err != nil {
			t.Fatalf("AddSegment: %v", err)
		}
		if len(d.Tracks[0].Segments) != 1 {
			t.Errorf("segments = %d", len(d.Tracks[0].Segments))
		}
	})

	t.Run("unknown_track_name", func(t *testing.T) {
		if err := d.AddSegment(seg, "nope"); !errors.Is(err, ErrTrackNotFound) {
			t.Errorf("expected ErrTrackNotFound, got %v", err)
		}
	})

	t.Run("kind_mismatch", func(t *testing.T) {
		if err := d.AddSegment(seg, "audio"); err != nil {
			t.Fatalf("named audio track: %v", err)
		}
		if _, err := d.AddTrack(TrackText, TrackOptions{Name: "captions"}); err != nil {
			t.Fatal(err)
		}
		if err := d.AddSegment(seg, "captions"); err == nil {
			t.Error("audio segment on text track should fail")
		}
	})
}

func TestDraft_Save(t *testing.T) {
	folder := newTestFolder(t)
	d, err := folder.CreateDraft("d1", 1920, 1080, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.AddTrack(TrackAudio, TrackOptions{}); err != nil {
		t.Fatal(err)
	}

	audio := writeTestFile(t, t.TempDir(), "song.mp3")
	seg, err := NewAudioSegment(audio, Timerange{Start: 2 * Second, Duration: 5 * Second})
	if err != nil {
		t.Fatal(err)
	}
	seg.SetVolume(0.6)
	if err := seg.AddFade("1s", "0s"); err != nil {
		t.Fatal(err)
	}
	if err := d.AddSegment(seg, ""); err != nil {
		t.Fatal(err)
	}

	if err := d.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(d.Dir, DraftContentFile))
	if err != nil {
		t.Fatalf("draft content not written: %v", err)
	}

	var content map[string]any
	if err := json.Unmarshal(data, &content); err != nil {
		t.Fatalf("draft content not valid JSON: %v", err)
	}
	if content["name"] != "d1" {
		t.Errorf("name = %v", content["name"])
	}
	if content["duration"] != float64(7*Second) {
		t.Errorf("duration = %v, want %d", content["duration"], 7*Second)
	}
}

func TestVocabulary(t *testing.T) {
	res, ok := Transitions.Find("Dissolve")
	if !ok || res.ResourceID == "" {
		t.Errorf("Find(Dissolve) = %+v, %v", res, ok)
	}

	if _, ok := Transitions.Find("dissolve"); ok {
		t.Error("lookup must be case-exact")
	}
	if _, ok := Fonts.Find("NoSuchFont"); ok {
		t.Error("unknown font should not resolve")
	}

	for _, v := range []*Vocabulary{Fonts, IntroAnimations, OutroAnimations, TextIntroAnimations, TextOutroAnimations, Transitions, Filters} {
		if v.Len() == 0 {
			t.Error("vocabulary must not be empty")
		}
		if len(v.Names()) != v.Len() {
			t.Error("Names length must match Len")
		}
	}
}
