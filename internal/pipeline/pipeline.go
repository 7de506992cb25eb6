// Package pipeline orchestrates the scene planners against the
// external capabilities: speech synthesis, the audio/image backends,
// and artifact storage. The planners themselves stay pure; all I/O and
// sequencing lives here.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dotcommander/scenecast/internal/assets"
	"github.com/dotcommander/scenecast/internal/config"
	"github.com/dotcommander/scenecast/internal/core"
	"github.com/dotcommander/scenecast/internal/storage"
	"github.com/dotcommander/scenecast/internal/subtitle"
	"github.com/dotcommander/scenecast/internal/tts"
)

// AudioBackend executes fit and mix plans against waveform files.
type AudioBackend interface {
	ProbeDuration(path string) (int64, error)
	ApplyFit(src, dst string, plan core.FitPlan) error
	MixMusic(voicePath, musicPath, dst string, plan core.MixPlan) error
}

// ImageBackend measures images and executes crop plans.
type ImageBackend interface {
	ProbeDimensions(path string) (int, int, error)
	RenderCrop(src, dst string, plan core.CropPlan) error
}

// Pipeline turns a script into per-scene narration audio, subtitles
// and fitted background images.
type Pipeline struct {
	cfg    config.Config
	synth  tts.Synthesizer
	audio  AudioBackend
	image  ImageBackend
	store  storage.Store
	picker *assets.Picker
	logger *slog.Logger
}

func New(cfg config.Config, synth tts.Synthesizer, audio AudioBackend, image ImageBackend, store storage.Store, picker *assets.Picker) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		synth:  synth,
		audio:  audio,
		image:  image,
		store:  store,
		picker: picker,
		logger: slog.Default().With("component", "pipeline"),
	}
}

// Result is one finished run. Scenes appear in segmentation order
// regardless of which finished first.
type Result struct {
	RunID  string       `json:"run_id"`
	Scenes []core.Scene `json:"scenes"`
}

// Run processes a whole script. Scenes are processed concurrently up
// to Limits.MaxConcurrentScenes; the first failure cancels the rest.
func (p *Pipeline) Run(ctx context.Context, script string) (*Result, error) {
	runID := uuid.NewString()
	logger := p.logger.With("run_id", runID)

	scenes, err := core.Segment(script)
	if err != nil {
		return nil, fmt.Errorf("segmenting script: %w", err)
	}
	logger.Info("script segmented", "scenes", len(scenes))

	if len(scenes) == 0 {
		logger.Warn("script produced no scenes")
		return &Result{RunID: runID}, nil
	}

	processed := make([]core.Scene, len(scenes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Limits.MaxConcurrentScenes)

	for i, sc := range scenes {
		i, sc := i, sc
		g.Go(func() error {
			out, err := p.processScene(gctx, sc)
			if err != nil {
				return err
			}
			processed[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{RunID: runID, Scenes: processed}
	if err := p.writeManifest(ctx, result); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}

	logger.Info("run complete", "scenes", len(processed))
	return result, nil
}

func (p *Pipeline) processScene(ctx context.Context, sc core.Scene) (core.Scene, error) {
	logger := p.logger.With("scene_id", sc.ID)

	// Narration first: every other artifact depends on its duration.
	voicePath := p.outPath("audio", fmt.Sprintf("scene_%03d_audio.wav", sc.ID))
	if err := p.synth.Synthesize(ctx, sc.Text, p.cfg.TTS.Language, voicePath); err != nil {
		return sc, stageErr("synthesize", sc.ID, err)
	}

	voiceMs, err := p.audio.ProbeDuration(voicePath)
	if err != nil {
		return sc, stageErr("probe narration", sc.ID, err)
	}
	sc.Duration = float64(voiceMs) / 1000
	sc.AudioRef = voicePath
	logger.Debug("narration ready", "duration_ms", voiceMs)

	if p.cfg.Subtitles.Enabled {
		if err := p.writeSubtitles(ctx, &sc); err != nil {
			return sc, err
		}
	}

	if p.cfg.Music.Enabled {
		if err := p.mixMusic(ctx, &sc, voiceMs); err != nil {
			return sc, err
		}
	}

	if err := p.fitImage(ctx, &sc); err != nil {
		return sc, err
	}

	return sc, nil
}

func (p *Pipeline) writeSubtitles(ctx context.Context, sc *core.Scene) error {
	cues, err := core.AllocateCues(sc.Text, sc.Duration, p.cfg.Subtitles.MaxCharsPerLine)
	if err != nil {
		return stageErr("allocate cues", sc.ID, err)
	}

	rel := filepath.Join("subtitles", subtitle.FileName(sc.ID))
	if err := p.store.Save(ctx, rel, subtitle.Encode(cues)); err != nil {
		return stageErr("write subtitles", sc.ID, err)
	}
	sc.SubtitleRef = filepath.Join(p.store.BaseDir(), rel)
	return nil
}

func (p *Pipeline) mixMusic(ctx context.Context, sc *core.Scene, voiceMs int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	candidates, err := assets.ListAudio(p.cfg.Paths.MusicDir)
	if err != nil {
		return stageErr("list music", sc.ID, err)
	}
	musicPath, err := p.picker.Pick(candidates)
	if err != nil {
		return stageErr("select music", sc.ID, err)
	}

	musicMs, err := p.audio.ProbeDuration(musicPath)
	if err != nil {
		return stageErr("probe music", sc.ID, err)
	}

	plan, err := core.PlanMix(voiceMs, musicMs, p.cfg.Music.FadeInMs, p.cfg.Music.FadeOutMs, p.cfg.Music.Volume)
	if err != nil {
		return stageErr("plan mix", sc.ID, err)
	}

	mixedPath := p.outPath("audio", fmt.Sprintf("scene_%03d_mixed.wav", sc.ID))
	if err := p.audio.MixMusic(sc.AudioRef, musicPath, mixedPath, plan); err != nil {
		return stageErr("mix music", sc.ID, err)
	}

	p.logger.Debug("music mixed",
		"scene_id", sc.ID,
		"music", musicPath,
		"fit", plan.Fit.Op.String(),
		"gain_db", plan.GainDb)
	sc.AudioRef = mixedPath
	return nil
}

func (p *Pipeline) fitImage(ctx context.Context, sc *core.Scene) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	candidates, err := assets.ListImages(p.cfg.Paths.ImagesDir)
	if err != nil {
		return stageErr("list images", sc.ID, err)
	}
	imagePath, err := p.picker.Pick(candidates)
	if err != nil {
		return stageErr("select image", sc.ID, err)
	}

	w, h, err := p.image.ProbeDimensions(imagePath)
	if err != nil {
		return stageErr("probe image", sc.ID, err)
	}

	plan, err := core.PlanCrop(w, h, p.cfg.Video.Width, p.cfg.Video.Height)
	if err != nil {
		return stageErr("plan crop", sc.ID, err)
	}

	ext := filepath.Ext(imagePath)
	fittedPath := p.outPath("images", fmt.Sprintf("scene_%03d_image%s", sc.ID, ext))
	if err := p.image.RenderCrop(imagePath, fittedPath, plan); err != nil {
		return stageErr("render crop", sc.ID, err)
	}
	sc.ImageRef = fittedPath
	return nil
}

func (p *Pipeline) outPath(parts ...string) string {
	return filepath.Join(append([]string{p.store.BaseDir()}, parts...)...)
}
