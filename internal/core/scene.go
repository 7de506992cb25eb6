package core

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Scene is one narrated unit derived from a paragraph of source text.
//
// A scene is created by Segment with Duration zero and all refs unset.
// Duration and AudioRef are filled in once the synthesis provider has
// produced a waveform; SubtitleRef and ImageRef once the corresponding
// artifacts are persisted. ID and Text never change after creation.
type Scene struct {
	ID          int            `json:"id"`
	Text        string         `json:"text"`
	Duration    float64        `json:"duration"` // seconds; 0 means unknown
	AudioRef    string         `json:"audio,omitempty"`
	SubtitleRef string         `json:"subtitle,omitempty"`
	ImageRef    string         `json:"image,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

var (
	paragraphSep  = regexp.MustCompile(`\n\s*\n`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Segment splits raw script text into ordered scenes. Paragraphs are
// separated by blank lines; paragraphs that clean down to nothing are
// discarded and consume no ID, so IDs are always 1..N with no gaps.
func Segment(raw string) ([]Scene, error) {
	if !utf8.ValidString(raw) {
		return nil, fmt.Errorf("script is not valid UTF-8: %w", ErrInvalidInput)
	}

	var scenes []Scene
	for _, para := range paragraphSep.Split(raw, -1) {
		text := CleanText(para)
		if text == "" {
			continue
		}
		scenes = append(scenes, Scene{
			ID:       len(scenes) + 1,
			Text:     text,
			Metadata: map[string]any{},
		})
	}
	return scenes, nil
}

// CleanText collapses every whitespace run (spaces, tabs, newlines) to
// a single space and trims the ends.
func CleanText(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}
