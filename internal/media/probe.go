package media

import (
	"fmt"
	"math"

	"github.com/tidwall/gjson"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ProbeDuration returns a media file's duration in milliseconds.
func (f *FFmpeg) ProbeDuration(path string) (int64, error) {
	data, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, fmt.Errorf("probing %s: %w", path, err)
	}
	return durationMs(data)
}

// ProbeDimensions returns an image or video file's pixel dimensions.
func (f *FFmpeg) ProbeDimensions(path string) (int, int, error) {
	data, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, 0, fmt.Errorf("probing %s: %w", path, err)
	}
	return dimensions(data)
}

func durationMs(probeJSON string) (int64, error) {
	duration := gjson.Get(probeJSON, "format.duration")
	if !duration.Exists() {
		return 0, fmt.Errorf("probe output has no format.duration")
	}
	return int64(math.Round(duration.Float() * 1000)), nil
}

func dimensions(probeJSON string) (int, int, error) {
	stream := gjson.Get(probeJSON, `streams.#(codec_type=="video")`)
	if !stream.Exists() {
		return 0, 0, fmt.Errorf("probe output has no video stream")
	}
	w := int(stream.Get("width").Int())
	h := int(stream.Get("height").Int())
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("probe reported dimensions %dx%d", w, h)
	}
	return w, h, nil
}
