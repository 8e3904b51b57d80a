package draftapi

// Request bodies. Optional fields are pointers so that an explicit zero
// (volume 0.0, size 0, transform_y 0) stays distinct from "not provided".

// FolderRegisterRequest registers a drafts folder under a caller-chosen id.
type FolderRegisterRequest struct {
	FolderID   string `json:"folder_id"`
	FolderPath string `json:"folder_path"`
}

// DraftCreateRequest creates a new draft in a registered folder.
// Width and height fall back to the service defaults when omitted.
type DraftCreateRequest struct {
	FolderID     string `json:"folder_id"`
	DraftName    string `json:"draft_name"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	AllowReplace bool   `json:"allow_replace"`
}

// TrackAddRequest adds a track to an open draft.
type TrackAddRequest struct {
	TrackType     string `json:"track_type"`
	TrackName     string `json:"track_name"`
	RelativeIndex *int   `json:"relative_index"`
}

// AudioSegmentRequest appends an audio clip to a track.
type AudioSegmentRequest struct {
	MaterialPath string   `json:"material_path"`
	StartTime    string   `json:"start_time"`
	Duration     string   `json:"duration"`
	TrackName    string   `json:"track_name"`
	Volume       *float64 `json:"volume"`
	FadeIn       *string  `json:"fade_in"`
	FadeOut      *string  `json:"fade_out"`
}

// VideoSegmentRequest appends a video/image clip to a track.
type VideoSegmentRequest struct {
	MaterialPath   string   `json:"material_path"`
	StartTime      string   `json:"start_time"`
	Duration       string   `json:"duration"`
	TrackName      string   `json:"track_name"`
	AnimationType  *string  `json:"animation_type"`
	TransitionType *string  `json:"transition_type"`
	Alpha          *float64 `json:"alpha"`
	Scale          *float64 `json:"scale"`
}

// StickerSegmentRequest appends a sticker/GIF clip to a track. When Duration
// is omitted the material's intrinsic duration is used.
type StickerSegmentRequest struct {
	MaterialPath   string   `json:"material_path"`
	StartTime      string   `json:"start_time"`
	Duration       *string  `json:"duration"`
	TrackName      string   `json:"track_name"`
	BackgroundBlur *float64 `json:"background_blur"`
}

// TextSegmentRequest appends a text overlay to a track.
type TextSegmentRequest struct {
	Text             string    `json:"text"`
	StartTime        string    `json:"start_time"`
	Duration         string    `json:"duration"`
	TrackName        string    `json:"track_name"`
	Font             *string   `json:"font"`
	Size             *float64  `json:"size"`
	Color            []float64 `json:"color"`
	TransformY       *float64  `json:"transform_y"`
	AnimationType    *string   `json:"animation_type"`
	BubbleCategoryID *string   `json:"bubble_category_id"`
	BubbleResourceID *string   `json:"bubble_resource_id"`
	EffectResourceID *string   `json:"effect_resource_id"`
}

// DraftResponse is the uniform success envelope.
type DraftResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	DraftName string         `json:"draft_name,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

// ErrorResponse is the error envelope; the status code carries the class.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
