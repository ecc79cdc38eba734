package model

import "testing"

func TestHistory_StillLife(t *testing.T) {
	e := newEngine(t, 6, 6)
	e.Populate(Block(2, 2))

	h := NewHistory(5)
	h.Record(e.Grid())

	if got := h.Period(e.Step()); got != 1 {
		t.Errorf("block Period() = %d, want 1", got)
	}
}

func TestHistory_Oscillator(t *testing.T) {
	e := newEngine(t, 5, 5)
	e.Populate(Blinker(2, 1))

	h := NewHistory(5)
	h.Record(e.Grid())
	g := e.Step()
	if got := h.Period(g); got != 0 {
		t.Errorf("after one step Period() = %d, want 0", got)
	}

	h.Record(g)
	if got := h.Period(e.Step()); got != 2 {
		t.Errorf("blinker Period() = %d, want 2", got)
	}
}

func TestHistory_Capacity(t *testing.T) {
	e := newEngine(t, 10, 10)
	e.Populate(Glider(0, 0))

	h := NewHistory(3)
	for range 6 {
		h.Record(e.Step())
	}
	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}

	h.Reset()
	if h.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", h.Len())
	}
	if got := h.Period(e.Grid()); got != 0 {
		t.Errorf("Period() on empty history = %d, want 0", got)
	}
}

func TestNewHistory_MinimumCapacity(t *testing.T) {
	h := NewHistory(0)
	var g Grid
	h.Record(g)
	h.Record(g)
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}
