package draftapi

import (
	"draft-server/internal/timeline"
)

// Canvas defaults applied when a create request omits dimensions.
const (
	DefaultDraftWidth  = 1920
	DefaultDraftHeight = 1080
)

// Service translates validated requests into registry and timeline-engine
// operations. Each segment builder resolves the session first, then the
// material path, then constructs the segment and applies only the modifiers
// whose request fields are present.
type Service struct {
	reg           *Registry
	defaultWidth  int
	defaultHeight int
}

// NewService returns a Service over reg. Non-positive canvas defaults fall
// back to 1920x1080.
func NewService(reg *Registry, defaultWidth, defaultHeight int) *Service {
	if defaultWidth <= 0 {
		defaultWidth = DefaultDraftWidth
	}
	if defaultHeight <= 0 {
		defaultHeight = DefaultDraftHeight
	}
	return &Service{reg: reg, defaultWidth: defaultWidth, defaultHeight: defaultHeight}
}

// Registry exposes the underlying registry, e.g. for the metrics gauge.
func (s *Service) Registry() *Registry {
	return s.reg
}

// RegisterFolder validates the folder path, binds it to a timeline folder,
// and registers it under id (overwriting a previous registration).
// Returns the normalized absolute path.
func (s *Service) RegisterFolder(id, rawPath string) (string, error) {
	path, err := ValidatePath(rawPath, PathFolder)
	if err != nil {
		return "", err
	}

	folder, err := timeline.NewFolder(path)
	if err != nil {
		return "", internalf("register folder: %v", err)
	}

	s.reg.RegisterFolder(id, folder)
	return path, nil
}

// ListDrafts enumerates the drafts on disk in a registered folder.
func (s *Service) ListDrafts(folderID string) ([]string, error) {
	folder, err := s.reg.LookupFolder(folderID)
	if err != nil {
		return nil, err
	}

	drafts, err := folder.ListDrafts()
	if err != nil {
		return nil, internalf("list drafts: %v", err)
	}
	return drafts, nil
}

// CreateDraft creates a draft session. Zero width/height take the service
// defaults. Returns the effective dimensions.
func (s *Service) CreateDraft(req DraftCreateRequest) (width, height int, err error) {
	width, height = req.Width, req.Height
	if width == 0 {
		width = s.defaultWidth
	}
	if height == 0 {
		height = s.defaultHeight
	}

	if _, err := s.reg.CreateDraft(req.FolderID, req.DraftName, width, height, req.AllowReplace); err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

// AddTrack adds a track to an open draft.
func (s *Service) AddTrack(draftName string, req TrackAddRequest) error {
	draft, err := s.reg.LookupDraft(draftName)
	if err != nil {
		return err
	}

	trackType, ok := timeline.ParseTrackType(req.TrackType)
	if !ok {
		return invalidArgumentf("Invalid track type '%s'. Must be one of: audio, video, text, effect, filter", req.TrackType)
	}

	opts := timeline.TrackOptions{Name: req.TrackName, RelativeIndex: req.RelativeIndex}
	if _, err := draft.AddTrack(trackType, opts); err != nil {
		return internalf("add track: %v", err)
	}
	return nil
}

// AddAudioSegment appends an audio clip. Volume is passed through verbatim
// when present (explicit zero mutes). The engine's fade API is pairwise, so
// requesting either fade side applies both, substituting "0s" for the side
// not given; with neither side present no fade is applied at all.
func (s *Service) AddAudioSegment(draftName string, req AudioSegmentRequest) error {
	draft, err := s.reg.LookupDraft(draftName)
	if err != nil {
		return err
	}

	path, err := ValidatePath(req.MaterialPath, PathFile)
	if err != nil {
		return err
	}

	r, err := timeline.Trange(req.StartTime, req.Duration)
	if err != nil {
		return invalidArgumentf("%v", err)
	}

	seg, err := timeline.NewAudioSegment(path, r)
	if err != nil {
		return internalf("audio segment: %v", err)
	}

	if req.Volume != nil {
		seg.SetVolume(*req.Volume)
	}

	if req.FadeIn != nil || req.FadeOut != nil {
		fadeIn, fadeOut := "0s", "0s"
		if req.FadeIn != nil {
			fadeIn = *req.FadeIn
		}
		if req.FadeOut != nil {
			fadeOut = *req.FadeOut
		}
		if err := seg.AddFade(fadeIn, fadeOut); err != nil {
			return invalidArgumentf("%v", err)
		}
	}

	if err := draft.AddSegment(seg, req.TrackName); err != nil {
		return internalf("add segment: %v", err)
	}
	return nil
}

// AddVideoSegment appends a video/image clip. Animation and transition names
// are both resolved before either modifier is applied, so an unknown name in
// one never leaves a half-modified segment attached. A clip-settings object
// is only materialized when alpha or scale is present.
func (s *Service) AddVideoSegment(draftName string, req VideoSegmentRequest) error {
	draft, err := s.reg.LookupDraft(draftName)
	if err != nil {
		return err
	}

	path, err := ValidatePath(req.MaterialPath, PathFile)
	if err != nil {
		return err
	}

	r, err := timeline.Trange(req.StartTime, req.Duration)
	if err != nil {
		return invalidArgumentf("%v", err)
	}

	var animation, transition *timeline.Resource
	if req.AnimationType != nil {
		res, ok := timeline.IntroAnimations.Find(*req.AnimationType)
		if !ok {
			return invalidArgumentf("Invalid animation type: %s", *req.AnimationType)
		}
		animation = &res
	}
	if req.TransitionType != nil {
		res, ok := timeline.Transitions.Find(*req.TransitionType)
		if !ok {
			return invalidArgumentf("Invalid transition type: %s", *req.TransitionType)
		}
		transition = &res
	}

	var clip *timeline.ClipSettings
	if req.Alpha != nil || req.Scale != nil {
		clip = timeline.NewClipSettings()
		if req.Alpha != nil {
			clip.Alpha = *req.Alpha
		}
		if req.Scale != nil {
			clip.Scale = *req.Scale
		}
	}

	seg, err := timeline.NewVideoSegmentFromPath(path, r, clip)
	if err != nil {
		return internalf("video segment: %v", err)
	}
	if animation != nil {
		seg.AddAnimation(*animation)
	}
	if transition != nil {
		seg.AddTransition(*transition)
	}

	if err := draft.AddSegment(seg, req.TrackName); err != nil {
		return internalf("add segment: %v", err)
	}
	return nil
}

// AddStickerSegment appends a sticker/GIF clip. When the request omits a
// duration, the material's intrinsic duration is used.
func (s *Service) AddStickerSegment(draftName string, req StickerSegmentRequest) error {
	draft, err := s.reg.LookupDraft(draftName)
	if err != nil {
		return err
	}

	path, err := ValidatePath(req.MaterialPath, PathFile)
	if err != nil {
		return err
	}

	start, err := timeline.ParseExpr(req.StartTime)
	if err != nil {
		return invalidArgumentf("%v", err)
	}

	material, err := timeline.NewVideoMaterial(path)
	if err != nil {
		return internalf("sticker material: %v", err)
	}

	duration := material.Duration
	if req.Duration != nil {
		duration, err = timeline.ParseExpr(*req.Duration)
		if err != nil {
			return invalidArgumentf("%v", err)
		}
	}

	seg := timeline.NewVideoSegment(material, timeline.Timerange{Start: start, Duration: duration}, nil)
	if req.BackgroundBlur != nil {
		seg.AddBackgroundFill("blur", *req.BackgroundBlur)
	}

	if err := draft.AddSegment(seg, req.TrackName); err != nil {
		return internalf("add segment: %v", err)
	}
	return nil
}

// AddTextSegment appends a text overlay. The color tuple is checked before
// any engine call. The animation name is looked up in the text-outro
// vocabulary first, falling back to text-intro. A bubble overlay needs both
// its ids; a lone one is ignored.
func (s *Service) AddTextSegment(draftName string, req TextSegmentRequest) error {
	draft, err := s.reg.LookupDraft(draftName)
	if err != nil {
		return err
	}

	if req.Color != nil && len(req.Color) != 3 {
		return invalidArgumentf("Color must be [r, g, b] with values 0.0-1.0")
	}

	r, err := timeline.Trange(req.StartTime, req.Duration)
	if err != nil {
		return invalidArgumentf("%v", err)
	}

	opts := timeline.TextOptions{}

	if req.Size != nil || req.Color != nil {
		style := timeline.NewTextStyle()
		if req.Size != nil {
			style.Size = *req.Size
		}
		if req.Color != nil {
			style.Color = [3]float64{req.Color[0], req.Color[1], req.Color[2]}
		}
		opts.Style = style
	}

	if req.TransformY != nil {
		clip := timeline.NewClipSettings()
		clip.TransformY = *req.TransformY
		opts.Clip = clip
	}

	if req.Font != nil {
		font, ok := timeline.Fonts.Find(*req.Font)
		if !ok {
			return invalidArgumentf("Invalid font type: %s", *req.Font)
		}
		opts.Font = &font
	}

	seg := timeline.NewTextSegment(req.Text, r, opts)

	if req.AnimationType != nil {
		res, ok := timeline.TextOutroAnimations.Find(*req.AnimationType)
		if !ok {
			res, ok = timeline.TextIntroAnimations.Find(*req.AnimationType)
		}
		if !ok {
			return invalidArgumentf("Invalid text animation type: %s", *req.AnimationType)
		}
		seg.AddAnimation(res)
	}

	if req.BubbleCategoryID != nil && req.BubbleResourceID != nil {
		seg.AddBubble(*req.BubbleCategoryID, *req.BubbleResourceID)
	}

	if req.EffectResourceID != nil {
		seg.AddEffect(*req.EffectResourceID)
	}

	if err := draft.AddSegment(seg, req.TrackName); err != nil {
		return internalf("add segment: %v", err)
	}
	return nil
}

// SaveDraft persists the session to its draft directory.
func (s *Service) SaveDraft(draftName string) error {
	draft, err := s.reg.LookupDraft(draftName)
	if err != nil {
		return err
	}
	if err := draft.Save(); err != nil {
		return internalf("save draft: %v", err)
	}
	return nil
}

// CloseDraft drops the session from the registry, leaving the on-disk draft
// untouched.
func (s *Service) CloseDraft(draftName string) error {
	return s.reg.CloseDraft(draftName)
}
