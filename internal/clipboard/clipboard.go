// Package clipboard provides text clipboard access for kill and yank
// operations. Clipboard I/O is the one asynchronous boundary in the
// command path: implementations may block on the host platform and
// callers await completion before reporting their result.
package clipboard

import (
	"context"
	"fmt"
	"sync"

	atotto "github.com/atotto/clipboard"
)

// Clipboard reads and writes text. A failed access propagates to the
// caller; it is never retried here.
type Clipboard interface {
	ReadText(ctx context.Context) (string, error)
	WriteText(ctx context.Context, text string) error
}

// System is the host system clipboard.
type System struct{}

// NewSystem returns a clipboard backed by the platform facilities.
func NewSystem() *System {
	return &System{}
}

// ReadText returns the current clipboard text.
func (s *System) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := atotto.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard read: %w", err)
	}
	return text, nil
}

// WriteText replaces the clipboard content with text.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}

// Memory is an in-process clipboard for tests and environments without
// a system clipboard. The zero value is ready to use.
type Memory struct {
	mu   sync.Mutex
	text string
	err  error
}

// NewMemory returns an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// ReadText returns the stored text.
func (m *Memory) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

// WriteText stores text.
func (m *Memory) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

// FailWith makes subsequent operations fail with err. Passing nil
// restores normal operation. Used to exercise failure propagation.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}
