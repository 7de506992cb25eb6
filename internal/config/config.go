package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config enumerates every recognized option with an explicit default.
// It is validated once at startup and passed by value into components;
// nothing inside the pipeline looks options up at runtime.
type Config struct {
	TTS       TTSConfig      `yaml:"tts" validate:"required"`
	Subtitles SubtitleConfig `yaml:"subtitles" validate:"required"`
	Music     MusicConfig    `yaml:"music"`
	Video     VideoConfig    `yaml:"video" validate:"required"`
	Paths     PathsConfig    `yaml:"paths" validate:"required"`
	Limits    Limits         `yaml:"limits" validate:"required"`
}

type TTSConfig struct {
	APIKey   string  `yaml:"api_key" validate:"required"`
	BaseURL  string  `yaml:"base_url" validate:"omitempty,url"`
	Model    string  `yaml:"model" validate:"required"`
	Voice    string  `yaml:"voice" validate:"required"`
	Language string  `yaml:"language" validate:"required"`
	Speed    float64 `yaml:"speed" validate:"required,min=0.25,max=4"`
}

type SubtitleConfig struct {
	Enabled         bool `yaml:"enabled"`
	MaxCharsPerLine int  `yaml:"max_chars_per_line" validate:"required,min=8,max=120"`
}

type MusicConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Volume    float64 `yaml:"volume" validate:"min=0,max=1"`
	FadeInMs  int64   `yaml:"fade_in_ms" validate:"min=0"`
	FadeOutMs int64   `yaml:"fade_out_ms" validate:"min=0"`
}

type VideoConfig struct {
	Width  int `yaml:"width" validate:"required,min=16,max=7680"`
	Height int `yaml:"height" validate:"required,min=16,max=7680"`
}

type PathsConfig struct {
	MusicDir  string `yaml:"music_dir" validate:"required"`
	ImagesDir string `yaml:"images_dir" validate:"required"`
	OutputDir string `yaml:"output_dir" validate:"required"`
	TempDir   string `yaml:"temp_dir" validate:"required"`
}

type Limits struct {
	MaxConcurrentScenes int             `yaml:"max_concurrent_scenes" validate:"required,min=1,max=64"`
	MaxRetries          int             `yaml:"max_retries" validate:"min=0,max=10"`
	RateLimit           RateLimitConfig `yaml:"rate_limit" validate:"required"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" validate:"required,min=1,max=1000"`
	BurstSize         int `yaml:"burst_size" validate:"required,min=1,max=100"`
}

// Default returns the configuration used when a field (or the whole
// file) is absent. Values mirror the documented defaults: quiet music
// at a fifth of full volume with gentle fades, 40-character subtitle
// lines, full HD output.
func Default() Config {
	return Config{
		TTS: TTSConfig{
			Model:    "tts-1",
			Voice:    "alloy",
			Language: "en",
			Speed:    1.0,
		},
		Subtitles: SubtitleConfig{
			Enabled:         true,
			MaxCharsPerLine: 40,
		},
		Music: MusicConfig{
			Enabled:   true,
			Volume:    0.2,
			FadeInMs:  2000,
			FadeOutMs: 3000,
		},
		Video: VideoConfig{
			Width:  1920,
			Height: 1080,
		},
		Paths: PathsConfig{
			MusicDir:  "assets/music",
			ImagesDir: "assets/images",
			OutputDir: "output",
			TempDir:   os.TempDir(),
		},
		Limits: Limits{
			MaxConcurrentScenes: 4,
			MaxRetries:          3,
			RateLimit: RateLimitConfig{
				RequestsPerMinute: 30,
				BurstSize:         10,
			},
		},
	}
}

// Load reads configuration from path, layered over Default. A missing
// file is not an error — defaults apply. The API key may come from the
// SCENECAST_API_KEY or OPENAI_API_KEY environment variables
// (a .env file is honored).
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if cfg.TTS.APIKey == "" {
		if key := os.Getenv("SCENECAST_API_KEY"); key != "" {
			cfg.TTS.APIKey = key
		} else if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			cfg.TTS.APIKey = key
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
