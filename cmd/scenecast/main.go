// Command scenecast turns a plain-text script into per-scene narration
// audio, SRT subtitles and fitted background images.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dotcommander/scenecast/internal/assets"
	"github.com/dotcommander/scenecast/internal/config"
	"github.com/dotcommander/scenecast/internal/media"
	"github.com/dotcommander/scenecast/internal/pipeline"
	"github.com/dotcommander/scenecast/internal/storage"
	"github.com/dotcommander/scenecast/internal/tts"
)

func main() {
	if err := run(); err != nil {
		slog.Error("scenecast failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		inputPath  = flag.String("input", "", "script file (.txt or .md)")
		configPath = flag.String("config", "config.yaml", "configuration file")
		outputDir  = flag.String("output", "", "output directory (overrides config)")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *inputPath == "" {
		flag.Usage()
		return fmt.Errorf("missing -input")
	}
	switch ext := strings.ToLower(filepath.Ext(*inputPath)); ext {
	case ".txt", ".md":
	default:
		return fmt.Errorf("unsupported script format %q: use .txt or .md", ext)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *outputDir != "" {
		cfg.Paths.OutputDir = *outputDir
	}

	script, err := os.ReadFile(*inputPath)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	if err := os.MkdirAll(cfg.Paths.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.MkdirAll(cfg.Paths.TempDir, 0755); err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}

	synth := tts.NewClient(cfg.TTS.APIKey, cfg.TTS.BaseURL, cfg.TTS.Model,
		tts.WithVoice(cfg.TTS.Voice),
		tts.WithSpeed(cfg.TTS.Speed),
		tts.WithRetry(cfg.Limits.MaxRetries),
		tts.WithRateLimit(cfg.Limits.RateLimit.RequestsPerMinute, cfg.Limits.RateLimit.BurstSize),
	)
	backend := media.NewFFmpeg(cfg.Paths.TempDir)
	store := storage.NewFileSystem(cfg.Paths.OutputDir)
	picker := assets.NewPicker(nil)

	p := pipeline.New(*cfg, synth, backend, backend, store, picker)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := p.Run(ctx, string(script))
	if err != nil {
		return err
	}

	slog.Info("done",
		"run_id", result.RunID,
		"scenes", len(result.Scenes),
		"manifest", filepath.Join(cfg.Paths.OutputDir, pipeline.ManifestName))
	return nil
}
