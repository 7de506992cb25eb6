// Package assets lists candidate media files and picks one at random.
// Selection is uniform over a sorted candidate list; the random source
// is injectable so tests can supply a deterministic sequence.
package assets

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// ErrNoCandidates indicates a directory held no files of the wanted kind.
var ErrNoCandidates = errors.New("no candidate files")

var (
	audioExts = map[string]bool{".mp3": true, ".wav": true, ".ogg": true, ".flac": true, ".m4a": true}
	imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".bmp": true, ".webp": true}
)

// ListAudio returns the sorted full paths of supported audio files in dir.
func ListAudio(dir string) ([]string, error) {
	return listByExt(dir, audioExts)
}

// ListImages returns the sorted full paths of supported image files in dir.
func ListImages(dir string) ([]string, error) {
	return listByExt(dir, imageExts)
}

func listByExt(dir string, exts map[string]bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading asset directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if exts[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Picker chooses uniformly from a candidate list. It is safe for
// concurrent use; *rand.Rand itself is not, so calls are serialized.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker returns a Picker driven by rng. A nil rng gets a
// time-seeded source.
func NewPicker(rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Picker{rng: rng}
}

// Pick returns one candidate chosen uniformly at random.
func (p *Picker) Pick(candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return candidates[p.rng.Intn(len(candidates))], nil
}
