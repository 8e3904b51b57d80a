package timeline

import (
	"image/gif"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DefaultMaterialDuration is assumed for media whose intrinsic length cannot
// be probed (anything but GIF; real length is only known after a full decode,
// which the engine does not attempt here).
const DefaultMaterialDuration = 5 * Second

// AudioMaterial references an audio file on disk.
type AudioMaterial struct {
	ID   string
	Path string
}

// NewAudioMaterial wraps the audio file at path. The path must already be
// validated; only existence is re-checked.
func NewAudioMaterial(path string) (*AudioMaterial, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return &AudioMaterial{ID: uuid.NewString(), Path: path}, nil
}

// VideoMaterial references a video, image, or GIF file on disk and carries
// its intrinsic duration.
type VideoMaterial struct {
	ID       string
	Path     string
	Duration int64
}

// NewVideoMaterial wraps the media file at path and probes its intrinsic
// duration.
func NewVideoMaterial(path string) (*VideoMaterial, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return &VideoMaterial{
		ID:       uuid.NewString(),
		Path:     path,
		Duration: probeDuration(path),
	}, nil
}

// probeDuration sums GIF frame delays for .gif files and falls back to
// DefaultMaterialDuration for everything else.
func probeDuration(path string) int64 {
	if !strings.EqualFold(filepath.Ext(path), ".gif") {
		return DefaultMaterialDuration
	}

	f, err := os.Open(path)
	if err != nil {
		return DefaultMaterialDuration
	}
	defer f.Close()

	img, err := gif.DecodeAll(f)
	if err != nil {
		return DefaultMaterialDuration
	}

	var total int64
	for _, delay := range img.Delay {
		// GIF delays are hundredths of a second.
		total += int64(delay) * 10_000
	}
	if total <= 0 {
		return DefaultMaterialDuration
	}
	return total
}
