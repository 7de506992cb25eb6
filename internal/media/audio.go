package media

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/dotcommander/scenecast/internal/core"
)

// ApplyFit executes a duration fit plan: trim cuts the tail, loop
// repeats the source before the final cut, identity copies the stream
// untouched.
func (f *FFmpeg) ApplyFit(src, dst string, plan core.FitPlan) error {
	f.logger.Debug("applying fit plan",
		"op", plan.Op.String(),
		"source_ms", plan.SourceMs,
		"target_ms", plan.TargetMs,
		"repeat", plan.RepeatCount)

	err := ffmpeg.Input(src, fitInputArgs(plan)).
		Output(dst, fitOutputArgs(plan)).
		OverWriteOutput().
		Run()
	if err != nil {
		return fmt.Errorf("ffmpeg fit (%s): %w", plan.Op, err)
	}
	return nil
}

func fitInputArgs(plan core.FitPlan) ffmpeg.KwArgs {
	if plan.Op == core.FitLoop {
		// -stream_loop N plays the input N+1 times.
		return ffmpeg.KwArgs{"stream_loop": plan.RepeatCount - 1}
	}
	return ffmpeg.KwArgs{}
}

func fitOutputArgs(plan core.FitPlan) ffmpeg.KwArgs {
	if plan.Op == core.FitIdentity {
		return ffmpeg.KwArgs{"c": "copy"}
	}
	return ffmpeg.KwArgs{"t": secondsArg(plan.TargetMs)}
}

// MixMusic overlays background music under a narration track. The
// music is fitted to the narration per plan.Fit, faded, gain-adjusted
// and mixed with "first" duration so the result is exactly as long as
// the voice.
func (f *FFmpeg) MixMusic(voicePath, musicPath, dst string, plan core.MixPlan) error {
	fitted := filepath.Join(f.tempDir, uuid.NewString()+"_music.wav")
	if err := f.ApplyFit(musicPath, fitted, plan.Fit); err != nil {
		return fmt.Errorf("fitting music: %w", err)
	}
	defer os.Remove(fitted)

	voice := ffmpeg.Input(voicePath)
	music := musicFilterChain(ffmpeg.Input(fitted), plan)

	err := ffmpeg.Filter([]*ffmpeg.Stream{voice, music}, "amix", ffmpeg.Args{},
		ffmpeg.KwArgs{"inputs": 2, "duration": "first", "normalize": 0}).
		Output(dst).
		OverWriteOutput().
		Run()
	if err != nil {
		return fmt.Errorf("ffmpeg mix: %w", err)
	}

	f.logger.Debug("mixed narration with music",
		"voice", voicePath,
		"music", musicPath,
		"gain_db", plan.GainDb,
		"output", dst)
	return nil
}

// musicFilterChain applies the fade envelope and gain to the fitted
// music stream. Fades are clamped to half the fitted duration: the
// plan carries them through unchanged, and a fade longer than the
// audio would make ffmpeg's fade windows overlap.
func musicFilterChain(stream *ffmpeg.Stream, plan core.MixPlan) *ffmpeg.Stream {
	fittedMs := plan.Fit.TargetMs
	fadeIn := clampFade(plan.FadeInMs, fittedMs)
	fadeOut := clampFade(plan.FadeOutMs, fittedMs)

	if fadeIn > 0 {
		stream = stream.Filter("afade", ffmpeg.Args{},
			ffmpeg.KwArgs{"t": "in", "st": "0", "d": secondsArg(fadeIn)})
	}
	if fadeOut > 0 {
		stream = stream.Filter("afade", ffmpeg.Args{},
			ffmpeg.KwArgs{"t": "out", "st": secondsArg(fittedMs - fadeOut), "d": secondsArg(fadeOut)})
	}
	return stream.Filter("volume", ffmpeg.Args{gainArg(plan.GainDb)})
}

// clampFade limits a fade to half the fitted media length.
func clampFade(fadeMs, fittedMs int64) int64 {
	if limit := fittedMs / 2; fadeMs > limit {
		return limit
	}
	return fadeMs
}

func gainArg(gainDb float64) string {
	return fmt.Sprintf("%.2fdB", gainDb)
}
