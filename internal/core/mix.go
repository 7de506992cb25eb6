package core

import (
	"fmt"
	"math"
)

// SilenceGainDb stands in for -infinity when the music volume is zero,
// so downstream arithmetic on the plan stays finite.
const SilenceGainDb = -100.0

// MixPlan describes how background music is fitted and blended under a
// narration track: the duration fit, the fade envelope, and the gain
// to apply before overlay. Like FitPlan it is inert data for the audio
// backend to execute.
//
// Fades are carried through as given; the executing backend owns
// clamping them to the fitted length.
type MixPlan struct {
	Fit       FitPlan
	FadeInMs  int64
	FadeOutMs int64
	GainDb    float64
}

// PlanMix reconciles music to the narration's duration and converts
// the linear volume level to decibel gain. Music is always fitted to
// the voice, never the reverse.
func PlanMix(voiceMs, musicMs, fadeInMs, fadeOutMs int64, musicVolume float64) (MixPlan, error) {
	if musicVolume < 0 || musicVolume > 1 {
		return MixPlan{}, fmt.Errorf("music volume %g outside [0,1]: %w", musicVolume, ErrInvalidArgument)
	}
	if fadeInMs < 0 || fadeOutMs < 0 {
		return MixPlan{}, fmt.Errorf("fade durations %dms/%dms: %w", fadeInMs, fadeOutMs, ErrInvalidArgument)
	}

	fit, err := Fit(musicMs, voiceMs)
	if err != nil {
		return MixPlan{}, fmt.Errorf("fitting music to narration: %w", err)
	}

	gainDb := SilenceGainDb
	if musicVolume > 0 {
		gainDb = 20 * math.Log10(musicVolume)
	}

	return MixPlan{
		Fit:       fit,
		FadeInMs:  fadeInMs,
		FadeOutMs: fadeOutMs,
		GainDb:    gainDb,
	}, nil
}
