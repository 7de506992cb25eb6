// Package subtitle serializes timing cues into SubRip (SRT) files.
// Producing correct cue boundaries is the core's job; this package is
// only the wire format.
package subtitle

import (
	"fmt"
	"math"
	"strings"

	"github.com/dotcommander/scenecast/internal/core"
)

// Encode renders cues as an SRT document: sequential 1-based index,
// "HH:MM:SS,mmm --> HH:MM:SS,mmm" timestamp pair, line text, blank
// separator.
func Encode(cues []core.Cue) []byte {
	var b strings.Builder
	for i, cue := range cues {
		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n", Timestamp(cue.Start), Timestamp(cue.End))
		fmt.Fprintf(&b, "%s\n\n", cue.Text)
	}
	return []byte(b.String())
}

// Timestamp formats seconds as an SRT timestamp. The value is rounded
// to whole milliseconds first so 59.999 prints as 59,999 rather than
// truncating to 59,998.
func Timestamp(seconds float64) string {
	totalMs := int64(math.Round(seconds * 1000))
	hours := totalMs / 3600000
	minutes := (totalMs / 60000) % 60
	secs := (totalMs / 1000) % 60
	millis := totalMs % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// FileName is the canonical subtitle file name for a scene.
func FileName(sceneID int) string {
	return fmt.Sprintf("scene_%03d_subtitle.srt", sceneID)
}
