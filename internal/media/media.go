// Package media executes core plans against real audio and image
// files using ffmpeg. The core decides what to do; this package only
// translates plans into ffmpeg invocations.
package media

import (
	"fmt"
	"log/slog"
)

// FFmpeg is the audio and image codec backend. Intermediate files go
// under tempDir.
type FFmpeg struct {
	tempDir string
	logger  *slog.Logger
}

func NewFFmpeg(tempDir string) *FFmpeg {
	return &FFmpeg{
		tempDir: tempDir,
		logger:  slog.Default().With("component", "media"),
	}
}

// secondsArg renders milliseconds as an ffmpeg seconds argument.
func secondsArg(ms int64) string {
	return fmt.Sprintf("%.3f", float64(ms)/1000)
}
