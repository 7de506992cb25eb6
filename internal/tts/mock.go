package tts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// MockSynthesizer writes placeholder waveform files for testing. It
// records every request so tests can assert on inputs and call order.
type MockSynthesizer struct {
	mu    sync.Mutex
	Calls []MockCall
	// Fail makes Synthesize return an error for the given text.
	Fail map[string]error
}

type MockCall struct {
	Text       string
	Language   string
	OutputPath string
}

func NewMockSynthesizer() *MockSynthesizer {
	return &MockSynthesizer{Fail: map[string]error{}}
}

func (m *MockSynthesizer) Synthesize(ctx context.Context, text, language, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{Text: text, Language: language, OutputPath: outputPath})
	err := m.Fail[text]
	m.mu.Unlock()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(outputPath, []byte(fmt.Sprintf("fake-wav:%s", text)), 0644)
}

// CallCount returns how many synthesis requests were made.
func (m *MockSynthesizer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
