package media

import (
	"fmt"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/dotcommander/scenecast/internal/core"
)

// RenderCrop executes a crop plan: resize to cover the target box,
// then cut the centered crop window.
func (f *FFmpeg) RenderCrop(src, dst string, plan core.CropPlan) error {
	f.logger.Debug("rendering crop plan",
		"resize", fmt.Sprintf("%dx%d", plan.ResizeWidth, plan.ResizeHeight),
		"crop", fmt.Sprintf("%dx%d+%d+%d", plan.CropWidth, plan.CropHeight, plan.CropLeft, plan.CropTop))

	err := ffmpeg.Input(src).
		Filter("scale", scaleArgs(plan)).
		Filter("crop", cropArgs(plan)).
		Output(dst, ffmpeg.KwArgs{"frames:v": 1, "q:v": 2}).
		OverWriteOutput().
		Run()
	if err != nil {
		return fmt.Errorf("ffmpeg crop: %w", err)
	}
	return nil
}

func scaleArgs(plan core.CropPlan) ffmpeg.Args {
	return ffmpeg.Args{strconv.Itoa(plan.ResizeWidth), strconv.Itoa(plan.ResizeHeight)}
}

func cropArgs(plan core.CropPlan) ffmpeg.Args {
	return ffmpeg.Args{
		strconv.Itoa(plan.CropWidth),
		strconv.Itoa(plan.CropHeight),
		strconv.Itoa(plan.CropLeft),
		strconv.Itoa(plan.CropTop),
	}
}
