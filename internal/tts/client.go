// Package tts synthesizes narration audio through an OpenAI-compatible
// speech endpoint.
package tts

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"golang.org/x/time/rate"
)

// Client is a rate-limited, retrying speech synthesis client.
type Client struct {
	api        openai.Client
	model      string
	voice      string
	speed      float64
	maxRetries int
	limiter    *rate.Limiter
	logger     *slog.Logger
}

type Option func(*Client)

func WithVoice(voice string) Option {
	return func(c *Client) {
		c.voice = voice
	}
}

func WithSpeed(speed float64) Option {
	return func(c *Client) {
		if speed > 0 {
			c.speed = speed
		}
	}
}

func WithRetry(maxRetries int) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
	}
}

func WithRateLimit(requestsPerMinute, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), burst)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(apiKey, baseURL, model string, opts ...Option) *Client {
	clientOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(baseURL))
	}

	c := &Client{
		api:        openai.NewClient(clientOpts...),
		model:      model,
		voice:      "alloy",
		speed:      1.0,
		maxRetries: 3,
		limiter:    rate.NewLimiter(rate.Limit(1), 1),
		logger:     slog.Default().With("component", "tts"),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.logger.Debug("tts client initialized",
		"model", c.model,
		"voice", c.voice,
		"speed", c.speed,
		"max_retries", c.maxRetries,
		"rate_limit", fmt.Sprintf("%v req/s", c.limiter.Limit()))
	return c
}

// Synthesize renders text as speech into outputPath (WAV). Requests
// are rate limited and retried with linear backoff; context
// cancellation interrupts both.
func (c *Client) Synthesize(ctx context.Context, text, language, outputPath string) error {
	start := time.Now()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * time.Second
			c.logger.Debug("retrying synthesis",
				"attempt", attempt,
				"backoff_seconds", backoff.Seconds())
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err := c.doSynthesize(ctx, text, outputPath)
		if err == nil {
			c.logger.Info("synthesized narration",
				"language", language,
				"text_length", len(text),
				"output", outputPath,
				"duration_ms", time.Since(start).Milliseconds())
			return nil
		}
		lastErr = err
		c.logger.Warn("synthesis attempt failed",
			"attempt", attempt,
			"error", err)

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return fmt.Errorf("synthesis failed after %d retries: %w", c.maxRetries, lastErr)
}

func (c *Client) doSynthesize(ctx context.Context, text, outputPath string) error {
	res, err := c.api.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(c.model),
		Input:          text,
		Voice:          openai.AudioSpeechNewParamsVoice(c.voice),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatWAV,
		Speed:          openai.Float(c.speed),
	})
	if err != nil {
		return fmt.Errorf("speech request: %w", err)
	}
	defer res.Body.Close()

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("creating audio directory: %w", err)
	}
	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating waveform file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, res.Body); err != nil {
		return fmt.Errorf("writing waveform: %w", err)
	}
	return nil
}
