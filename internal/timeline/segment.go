package timeline

import "github.com/google/uuid"

// Segment is a timed unit of content placed on a track: an audio clip, a
// video/sticker clip, or a text overlay.
type Segment interface {
	// Kind returns the track type the segment belongs on.
	Kind() TrackType
	// Span returns the segment's position on the timeline.
	Span() Timerange
}

// ClipSettings bundles the visual transform modifiers of a segment.
// NewClipSettings returns the editor defaults; callers override individual
// fields before attaching the settings to a segment.
type ClipSettings struct {
	Alpha      float64 `json:"alpha"`
	Scale      float64 `json:"scale"`
	TransformY float64 `json:"transform_y"`
}

// NewClipSettings returns clip settings with the editor defaults: fully
// opaque, unscaled, centered.
func NewClipSettings() *ClipSettings {
	return &ClipSettings{Alpha: 1.0, Scale: 1.0}
}

// Fade is a pairwise fade applied to an audio segment. Either side may be
// zero-length.
type Fade struct {
	ID  string
	In  int64
	Out int64
}

// AudioSegment is an audio clip on the timeline.
type AudioSegment struct {
	ID       string
	Material *AudioMaterial
	Range    Timerange
	Volume   float64
	Fade     *Fade
}

// NewAudioSegment builds an audio segment from the file at path, placed at r.
// Volume defaults to 1.0.
func NewAudioSegment(path string, r Timerange) (*AudioSegment, error) {
	mat, err := NewAudioMaterial(path)
	if err != nil {
		return nil, err
	}
	return &AudioSegment{
		ID:       uuid.NewString(),
		Material: mat,
		Range:    r,
		Volume:   1.0,
	}, nil
}

// SetVolume sets the segment volume. Zero is a valid (muted) value.
func (s *AudioSegment) SetVolume(v float64) {
	s.Volume = v
}

// AddFade attaches a fade pair parsed from the given time expressions.
// The fade API is pairwise: both sides are always set, use "0s" to skip one.
func (s *AudioSegment) AddFade(in, out string) error {
	inUS, err := ParseExpr(in)
	if err != nil {
		return err
	}
	outUS, err := ParseExpr(out)
	if err != nil {
		return err
	}
	s.Fade = &Fade{ID: uuid.NewString(), In: inUS, Out: outUS}
	return nil
}

func (s *AudioSegment) Kind() TrackType { return TrackAudio }
func (s *AudioSegment) Span() Timerange { return s.Range }

// BackgroundFill is a named fill rendered behind a video segment that does
// not cover the whole canvas.
type BackgroundFill struct {
	Style string
	Blur  float64
}

// VideoSegment is a video, image, or sticker clip on the timeline.
type VideoSegment struct {
	ID         string
	Material   *VideoMaterial
	Range      Timerange
	Clip       *ClipSettings
	Animation  *Resource
	Transition *Resource
	Background *BackgroundFill
}

// NewVideoSegment builds a video segment from an already-constructed
// material. clip may be nil to keep the editor defaults.
func NewVideoSegment(mat *VideoMaterial, r Timerange, clip *ClipSettings) *VideoSegment {
	return &VideoSegment{
		ID:       uuid.NewString(),
		Material: mat,
		Range:    r,
		Clip:     clip,
	}
}

// NewVideoSegmentFromPath builds a video segment from the file at path.
func NewVideoSegmentFromPath(path string, r Timerange, clip *ClipSettings) (*VideoSegment, error) {
	mat, err := NewVideoMaterial(path)
	if err != nil {
		return nil, err
	}
	return NewVideoSegment(mat, r, clip), nil
}

// AddAnimation attaches an intro/outro animation resource.
func (s *VideoSegment) AddAnimation(res Resource) {
	s.Animation = &res
}

// AddTransition attaches a transition resource toward the following segment.
func (s *VideoSegment) AddTransition(res Resource) {
	s.Transition = &res
}

// AddBackgroundFill sets the fill rendered behind the segment, e.g. a "blur"
// fill with the given intensity.
func (s *VideoSegment) AddBackgroundFill(style string, blur float64) {
	s.Background = &BackgroundFill{Style: style, Blur: blur}
}

func (s *VideoSegment) Kind() TrackType { return TrackVideo }
func (s *VideoSegment) Span() Timerange { return s.Range }

// TextStyle is the character style of a text segment.
type TextStyle struct {
	Size  float64
	Color [3]float64
}

// NewTextStyle returns the editor's default style: size 8, white.
func NewTextStyle() *TextStyle {
	return &TextStyle{Size: 8.0, Color: [3]float64{1.0, 1.0, 1.0}}
}

// BubbleEffect is a text bubble overlay, addressed by category and resource id.
type BubbleEffect struct {
	CategoryID string
	ResourceID string
}

// TextOptions carries the optional construction-time attributes of a text
// segment. Nil fields keep the editor defaults.
type TextOptions struct {
	Font  *Resource
	Style *TextStyle
	Clip  *ClipSettings
}

// TextSegment is a text overlay on the timeline.
type TextSegment struct {
	ID        string
	Text      string
	Range     Timerange
	Font      *Resource
	Style     *TextStyle
	Clip      *ClipSettings
	Animation *Resource
	Bubble    *BubbleEffect
	EffectID  string
}

// NewTextSegment builds a text segment with the given content and placement.
func NewTextSegment(text string, r Timerange, opts TextOptions) *TextSegment {
	return &TextSegment{
		ID:    uuid.NewString(),
		Text:  text,
		Range: r,
		Font:  opts.Font,
		Style: opts.Style,
		Clip:  opts.Clip,
	}
}

// AddAnimation attaches a text intro/outro animation resource.
func (s *TextSegment) AddAnimation(res Resource) {
	s.Animation = &res
}

// AddBubble attaches a bubble overlay.
func (s *TextSegment) AddBubble(categoryID, resourceID string) {
	s.Bubble = &BubbleEffect{CategoryID: categoryID, ResourceID: resourceID}
}

// AddEffect attaches a decorative (flower) text effect by resource id.
func (s *TextSegment) AddEffect(resourceID string) {
	s.EffectID = resourceID
}

func (s *TextSegment) Kind() TrackType { return TrackText }
func (s *TextSegment) Span() Timerange { return s.Range }
