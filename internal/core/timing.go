package core

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Cue is a single timed subtitle line. Cues for one scene form a
// contiguous, gapless sequence starting at zero: each cue's End is the
// next cue's Start, and the final End equals the scene duration.
type Cue struct {
	Start float64 // seconds
	End   float64 // seconds
	Text  string
}

type wrappedLine struct {
	text  string
	words int
}

// AllocateCues wraps scene text into subtitle lines and spreads
// totalSeconds over them proportionally to each line's word count.
//
// Time per word is computed once from the total word count; line
// durations derive from exact word counts and cues are laid end to
// start, so rounding error never accumulates across lines. Empty text
// yields an empty cue sequence rather than a division by zero.
func AllocateCues(text string, totalSeconds float64, maxCharsPerLine int) ([]Cue, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}
	if totalSeconds <= 0 {
		return nil, fmt.Errorf("total duration %gs is not positive: %w", totalSeconds, ErrInvalidArgument)
	}

	lines := wrapWords(words, maxCharsPerLine)
	timePerWord := totalSeconds / float64(len(words))

	cues := make([]Cue, 0, len(lines))
	current := 0.0
	for _, line := range lines {
		end := current + float64(line.words)*timePerWord
		cues = append(cues, Cue{Start: current, End: end, Text: line.text})
		current = end
	}
	return cues, nil
}

// wrapWords greedily packs words into lines of at most maxChars
// characters, counting one separating space per join. A single word
// longer than maxChars sits alone on its own line; words are never
// split. Character counts are in runes so multi-byte scripts wrap the
// same way they read.
func wrapWords(words []string, maxChars int) []wrappedLine {
	var lines []wrappedLine
	var current []string
	length := 0

	for _, word := range words {
		need := utf8.RuneCountInString(word)
		if len(current) > 0 {
			need++ // separating space
		}
		if len(current) > 0 && length+need > maxChars {
			lines = append(lines, wrappedLine{text: strings.Join(current, " "), words: len(current)})
			current = []string{word}
			length = utf8.RuneCountInString(word)
			continue
		}
		current = append(current, word)
		length += need
	}
	if len(current) > 0 {
		lines = append(lines, wrappedLine{text: strings.Join(current, " "), words: len(current)})
	}
	return lines
}
