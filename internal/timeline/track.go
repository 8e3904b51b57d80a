package timeline

import "github.com/google/uuid"

// TrackType identifies the kind of lane a track is.
type TrackType string

const (
	TrackAudio  TrackType = "audio"
	TrackVideo  TrackType = "video"
	TrackText   TrackType = "text"
	TrackEffect TrackType = "effect"
	TrackFilter TrackType = "filter"
)

// ParseTrackType maps a track type string to its TrackType. The second
// return is false for unknown types.
func ParseTrackType(s string) (TrackType, bool) {
	switch TrackType(s) {
	case TrackAudio, TrackVideo, TrackText, TrackEffect, TrackFilter:
		return TrackType(s), true
	}
	return "", false
}

// TrackOptions carries the optional attributes of a new track. An empty Name
// defaults to the track type string; a nil RelativeIndex keeps insertion order.
type TrackOptions struct {
	Name          string
	RelativeIndex *int
}

// Track is a typed lane of segments within a draft.
type Track struct {
	ID            string
	Type          TrackType
	Name          string
	RelativeIndex int
	Segments      []Segment
}

func newTrack(t TrackType, opts TrackOptions) *Track {
	name := opts.Name
	if name == "" {
		name = string(t)
	}
	rel := 0
	if opts.RelativeIndex != nil {
		rel = *opts.RelativeIndex
	}
	return &Track{
		ID:            uuid.NewString(),
		Type:          t,
		Name:          name,
		RelativeIndex: rel,
	}
}

// accepts reports whether a segment of the given kind may sit on this track.
func (t *Track) accepts(kind TrackType) bool {
	return t.Type == kind
}
