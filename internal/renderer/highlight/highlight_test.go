package highlight

import (
	"testing"

	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/search"
	"github.com/dshills/markstorm/internal/event"
)

func activeSession(index int, matches ...search.Match) search.Session {
	return search.Session{
		Active:  true,
		Query:   "q",
		Matches: matches,
		Index:   index,
	}
}

func TestComputeInactiveSession(t *testing.T) {
	if got := Compute(search.Session{Index: -1}); got != nil {
		t.Errorf("Compute(inactive) = %v, want nil", got)
	}
}

func TestComputeNoMatches(t *testing.T) {
	s := search.Session{Active: true, Query: "zzz", Index: -1}
	if got := Compute(s); got != nil {
		t.Errorf("Compute(no matches) = %v, want nil", got)
	}
}

func TestComputeTagsCurrentMatch(t *testing.T) {
	s := activeSession(1,
		search.Match{Start: 0, End: 2},
		search.Match{Start: 6, End: 8},
		search.Match{Start: 10, End: 12},
	)

	ranges := Compute(s)
	if len(ranges) != 3 {
		t.Fatalf("len(ranges) = %d, want 3", len(ranges))
	}

	wantKinds := []Kind{KindMatch, KindCurrent, KindMatch}
	for i, rng := range ranges {
		if rng.Kind != wantKinds[i] {
			t.Errorf("ranges[%d].Kind = %v, want %v", i, rng.Kind, wantKinds[i])
		}
		if rng.Start != s.Matches[i].Start || rng.End != s.Matches[i].End {
			t.Errorf("ranges[%d] = %+v, want span %+v", i, rng, s.Matches[i])
		}
	}
}

func TestKindString(t *testing.T) {
	if KindMatch.String() != "match" {
		t.Errorf("KindMatch.String() = %q", KindMatch.String())
	}
	if KindCurrent.String() != "current-match" {
		t.Errorf("KindCurrent.String() = %q", KindCurrent.String())
	}
}

func publishState(bus *event.Bus, viewID string, s search.Session, failed bool) {
	bus.Publish(event.Event{
		Topic: event.TopicSearchStateChanged,
		Payload: event.SearchStateChanged{
			ViewID:  viewID,
			Session: s,
			Failed:  failed,
		},
	})
}

func TestRendererTracksSearchState(t *testing.T) {
	bus := event.NewBus()
	r := NewRenderer("view-1")
	r.Subscribe(bus)
	defer r.Close()

	publishState(bus, "view-1", activeSession(0,
		search.Match{Start: 3, End: 5},
		search.Match{Start: 9, End: 11},
	), false)

	ranges := r.Ranges()
	if len(ranges) != 2 {
		t.Fatalf("len(Ranges()) = %d, want 2", len(ranges))
	}
	if ranges[0].Kind != KindCurrent {
		t.Errorf("ranges[0].Kind = %v, want KindCurrent", ranges[0].Kind)
	}

	// Session close clears the decorations.
	publishState(bus, "view-1", search.Session{Index: -1}, false)
	if got := r.Ranges(); got != nil {
		t.Errorf("Ranges() after close = %v, want nil", got)
	}
}

func TestRendererIgnoresOtherViews(t *testing.T) {
	bus := event.NewBus()
	r := NewRenderer("view-1")
	r.Subscribe(bus)
	defer r.Close()

	publishState(bus, "view-2", activeSession(0, search.Match{Start: 0, End: 1}), false)

	if got := r.Ranges(); got != nil {
		t.Errorf("Ranges() = %v, want nil for foreign view event", got)
	}
}

func TestRendererFailedState(t *testing.T) {
	bus := event.NewBus()
	r := NewRenderer("view-1")
	r.Subscribe(bus)
	defer r.Close()

	publishState(bus, "view-1", search.Session{Active: true, Query: "zzz", Index: -1}, true)
	if !r.Failed() {
		t.Error("Failed() = false, want true")
	}

	publishState(bus, "view-1", search.Session{Index: -1}, false)
	if r.Failed() {
		t.Error("Failed() = true after reset, want false")
	}
}

func TestRendererKindAt(t *testing.T) {
	bus := event.NewBus()
	r := NewRenderer("view-1")
	r.Subscribe(bus)
	defer r.Close()

	publishState(bus, "view-1", activeSession(1,
		search.Match{Start: 0, End: 2},
		search.Match{Start: 6, End: 8},
	), false)

	tests := []struct {
		off      buffer.ByteOffset
		wantKind Kind
		wantOK   bool
	}{
		{0, KindMatch, true},
		{1, KindMatch, true},
		{2, KindMatch, false},
		{5, KindMatch, false},
		{6, KindCurrent, true},
		{7, KindCurrent, true},
		{8, KindMatch, false},
	}

	for _, tt := range tests {
		kind, ok := r.KindAt(tt.off)
		if ok != tt.wantOK {
			t.Errorf("KindAt(%d) ok = %v, want %v", tt.off, ok, tt.wantOK)
			continue
		}
		if ok && kind != tt.wantKind {
			t.Errorf("KindAt(%d) = %v, want %v", tt.off, kind, tt.wantKind)
		}
	}
}

func TestRendererDropsRangesOnBufferChange(t *testing.T) {
	bus := event.NewBus()
	r := NewRenderer("view-1")
	r.Subscribe(bus)
	defer r.Close()

	publishState(bus, "view-1", activeSession(0, search.Match{Start: 0, End: 2}), false)
	if len(r.Ranges()) != 1 {
		t.Fatalf("len(Ranges()) = %d, want 1", len(r.Ranges()))
	}

	// A change in another view leaves the decorations alone.
	bus.Publish(event.Event{
		Topic:   event.TopicBufferChanged,
		Payload: event.BufferChanged{ViewID: "view-2", Revision: 1},
	})
	if len(r.Ranges()) != 1 {
		t.Fatal("foreign buffer change dropped the decorations")
	}

	bus.Publish(event.Event{
		Topic:   event.TopicBufferChanged,
		Payload: event.BufferChanged{ViewID: "view-1", Revision: 2},
	})
	if got := r.Ranges(); got != nil {
		t.Errorf("Ranges() after buffer change = %v, want nil", got)
	}
}

func TestRendererCloseDetaches(t *testing.T) {
	bus := event.NewBus()
	r := NewRenderer("view-1")
	r.Subscribe(bus)
	r.Close()

	publishState(bus, "view-1", activeSession(0, search.Match{Start: 0, End: 1}), false)
	if got := r.Ranges(); got != nil {
		t.Errorf("Ranges() after Close = %v, want nil", got)
	}
	if bus.SubscriberCount(event.TopicSearchStateChanged) != 0 {
		t.Error("search subscription not removed by Close")
	}
	if bus.SubscriberCount(event.TopicBufferChanged) != 0 {
		t.Error("buffer subscription not removed by Close")
	}
}
