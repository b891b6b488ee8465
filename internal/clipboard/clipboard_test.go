package clipboard

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.WriteText(ctx, "killed text"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := m.ReadText(ctx)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got != "killed text" {
		t.Errorf("expected 'killed text', got %q", got)
	}
}

func TestMemoryFailWith(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	boom := errors.New("clipboard denied")

	m.FailWith(boom)

	if err := m.WriteText(ctx, "x"); !errors.Is(err, boom) {
		t.Errorf("expected the forced error, got %v", err)
	}
	if _, err := m.ReadText(ctx); !errors.Is(err, boom) {
		t.Errorf("expected the forced error, got %v", err)
	}

	m.FailWith(nil)
	if err := m.WriteText(ctx, "x"); err != nil {
		t.Errorf("expected recovery after clearing the error, got %v", err)
	}
}

func TestMemoryHonorsContext(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := m.WriteText(ctx, "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if _, err := m.ReadText(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
