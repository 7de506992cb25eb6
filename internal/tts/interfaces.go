package tts

import "context"

// Synthesizer turns scene text into a narration waveform on disk. The
// engine treats the waveform's measured duration as ground truth; a
// Synthesizer only has to produce the file.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language, outputPath string) error
}
