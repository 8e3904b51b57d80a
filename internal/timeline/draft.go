package timeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// DraftContentFile is the name of the serialized draft inside its directory.
const DraftContentFile = "draft_content.json"

var (
	// ErrDraftExists is returned by Folder.CreateDraft when the draft
	// directory already exists and replacement was not allowed.
	ErrDraftExists = errors.New("draft already exists")

	// ErrTrackExists is returned when adding a track whose name is taken.
	ErrTrackExists = errors.New("track already exists")

	// ErrTrackNotFound is returned when attaching a segment to a track name
	// the draft does not have, or when no track of a suitable type exists.
	ErrTrackNotFound = errors.New("track not found")
)

// Draft is an open editing project. Segment and track mutations are
// serialized by an internal mutex so concurrent appends against the same
// draft do not corrupt the track slices.
type Draft struct {
	mu sync.Mutex

	ID     string
	Name   string
	Dir    string
	Width  int
	Height int
	Tracks []*Track
}

// AddTrack appends a new track of the given type. Track names are unique
// within a draft.
func (d *Draft) AddTrack(t TrackType, opts TrackOptions) (*Track, error) {
	track := newTrack(t, opts)

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.Tracks {
		if existing.Name == track.Name {
			return nil, fmt.Errorf("%w: %q", ErrTrackExists, track.Name)
		}
	}
	d.Tracks = append(d.Tracks, track)
	return track, nil
}

// AddSegment appends seg to the track named trackName, or to the first track
// that accepts the segment's kind when trackName is empty.
func (d *Draft) AddSegment(seg Segment, trackName string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	track, err := d.resolveTrackLocked(seg.Kind(), trackName)
	if err != nil {
		return err
	}
	track.Segments = append(track.Segments, seg)
	return nil
}

// resolveTrackLocked picks the target track for a segment of the given kind.
// Caller must hold d.mu.
func (d *Draft) resolveTrackLocked(kind TrackType, trackName string) (*Track, error) {
	if trackName != "" {
		for _, t := range d.Tracks {
			if t.Name == trackName {
				if !t.accepts(kind) {
					return nil, fmt.Errorf("track %q is %s, cannot hold %s segment", trackName, t.Type, kind)
				}
				return t, nil
			}
		}
		return nil, fmt.Errorf("%w: %q", ErrTrackNotFound, trackName)
	}

	for _, t := range d.Tracks {
		if t.accepts(kind) {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: no %s track in draft", ErrTrackNotFound, kind)
}

// Duration returns the timeline length: the latest segment end across all
// tracks.
func (d *Draft) Duration() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	var max int64
	for _, t := range d.Tracks {
		for _, s := range t.Segments {
			if end := s.Span().End(); end > max {
				max = end
			}
		}
	}
	return max
}

// Save writes the draft content file into the draft directory.
func (d *Draft) Save() error {
	content := d.render()

	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(d.Dir, DraftContentFile), data, 0o644)
}

// Serialized draft file shapes. Only fields the editor reads back are kept.
type draftContent struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Duration     int64          `json:"duration"`
	CanvasConfig canvasConfig   `json:"canvas_config"`
	Tracks       []trackContent `json:"tracks"`
}

type canvasConfig struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Ratio  float64 `json:"ratio"`
}

type trackContent struct {
	ID            string           `json:"id"`
	Type          string           `json:"type"`
	Name          string           `json:"name"`
	RelativeIndex int              `json:"relative_index"`
	Segments      []segmentContent `json:"segments"`
}

type segmentContent struct {
	ID           string             `json:"id"`
	Start        int64              `json:"start"`
	Duration     int64              `json:"duration"`
	MaterialPath string             `json:"material_path,omitempty"`
	Volume       *float64           `json:"volume,omitempty"`
	FadeIn       *int64             `json:"fade_in,omitempty"`
	FadeOut      *int64             `json:"fade_out,omitempty"`
	Clip         *ClipSettings      `json:"clip,omitempty"`
	Animation    *Resource          `json:"animation,omitempty"`
	Transition   *Resource          `json:"transition,omitempty"`
	Background   *backgroundContent `json:"background,omitempty"`
	Text         string             `json:"text,omitempty"`
	Font         *Resource          `json:"font,omitempty"`
	Size         *float64           `json:"size,omitempty"`
	Color        []float64          `json:"color,omitempty"`
	Bubble       *bubbleContent     `json:"bubble,omitempty"`
	EffectID     string             `json:"effect_id,omitempty"`
}

type backgroundContent struct {
	Style string  `json:"style"`
	Blur  float64 `json:"blur"`
}

type bubbleContent struct {
	CategoryID string `json:"category_id"`
	ResourceID string `json:"resource_id"`
}

func (d *Draft) render() draftContent {
	duration := d.Duration()

	d.mu.Lock()
	defer d.mu.Unlock()

	ratio := 0.0
	if d.Height != 0 {
		ratio = float64(d.Width) / float64(d.Height)
	}

	content := draftContent{
		ID:           d.ID,
		Name:         d.Name,
		Duration:     duration,
		CanvasConfig: canvasConfig{Width: d.Width, Height: d.Height, Ratio: ratio},
		Tracks:       make([]trackContent, 0, len(d.Tracks)),
	}

	for _, t := range d.Tracks {
		tc := trackContent{
			ID:            t.ID,
			Type:          string(t.Type),
			Name:          t.Name,
			RelativeIndex: t.RelativeIndex,
			Segments:      make([]segmentContent, 0, len(t.Segments)),
		}
		for _, s := range t.Segments {
			tc.Segments = append(tc.Segments, renderSegment(s))
		}
		content.Tracks = append(content.Tracks, tc)
	}

	return content
}

func renderSegment(s Segment) segmentContent {
	span := s.Span()

	switch seg := s.(type) {
	case *AudioSegment:
		sc := segmentContent{
			ID:           seg.ID,
			Start:        span.Start,
			Duration:     span.Duration,
			MaterialPath: seg.Material.Path,
			Volume:       &seg.Volume,
		}
		if seg.Fade != nil {
			sc.FadeIn = &seg.Fade.In
			sc.FadeOut = &seg.Fade.Out
		}
		return sc

	case *VideoSegment:
		sc := segmentContent{
			ID:           seg.ID,
			Start:        span.Start,
			Duration:     span.Duration,
			MaterialPath: seg.Material.Path,
			Clip:         seg.Clip,
			Animation:    seg.Animation,
			Transition:   seg.Transition,
		}
		if seg.Background != nil {
			sc.Background = &backgroundContent{Style: seg.Background.Style, Blur: seg.Background.Blur}
		}
		return sc

	case *TextSegment:
		sc := segmentContent{
			ID:        seg.ID,
			Start:     span.Start,
			Duration:  span.Duration,
			Text:      seg.Text,
			Font:      seg.Font,
			Clip:      seg.Clip,
			Animation: seg.Animation,
			EffectID:  seg.EffectID,
		}
		if seg.Style != nil {
			sc.Size = &seg.Style.Size
			sc.Color = seg.Style.Color[:]
		}
		if seg.Bubble != nil {
			sc.Bubble = &bubbleContent{CategoryID: seg.Bubble.CategoryID, ResourceID: seg.Bubble.ResourceID}
		}
		return sc
	}

	return segmentContent{Start: span.Start, Duration: span.Duration}
}

func newDraft(name, dir string, width, height int) *Draft {
	return &Draft{
		ID:     uuid.NewString(),
		Name:   name,
		Dir:    dir,
		Width:  width,
		Height: height,
	}
}
