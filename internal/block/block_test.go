package block

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	b, err := New("Morning run", 6.5, 1, ParseColor("#3a86ff"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID == "" {
		t.Error("expected a generated id")
	}
	if b.Start != 6.5 || b.Duration != 1 {
		t.Errorf("got start=%v duration=%v, want 6.5 and 1", b.Start, b.Duration)
	}
	if b.Locked {
		t.Error("new blocks must start unlocked")
	}
}

func TestNew_NormalizesStart(t *testing.T) {
	tests := []struct {
		start float64
		want  float64
	}{
		{25.5, 1.5},
		{-1, 23},
		{24, 0},
	}

	for _, tc := range tests {
		b, err := New("x", tc.start, 1, Color{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Start != tc.want {
			t.Errorf("New start=%v: got %v, want %v", tc.start, b.Start, tc.want)
		}
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New("", 9, 1, Color{}); err != ErrEmptyTitle {
		t.Errorf("empty title: got %v, want ErrEmptyTitle", err)
	}
	if _, err := New("x", 9, 0, Color{}); err == nil {
		t.Error("zero duration: expected error")
	}
	if _, err := New("x", 9, -0.5, Color{}); err == nil {
		t.Error("negative duration: expected error")
	}
}

func TestWraps(t *testing.T) {
	b := &Block{Start: 23, Duration: 2}
	if !b.Wraps() {
		t.Error("block 23+2h should wrap")
	}
	b = &Block{Start: 22, Duration: 2}
	if b.Wraps() {
		t.Error("block 22+2h should not wrap")
	}
}

func TestSpans(t *testing.T) {
	b := &Block{Start: 23, Duration: 2}

	spans := b.Spans(true)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans with wrap, got %d", len(spans))
	}

	spans = b.Spans(false)
	if len(spans) != 1 || spans[0].End != 24 {
		t.Fatalf("expected clamped single span without wrap, got %+v", spans)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	b, err := New("Focus", 9, 2.5, ParseColor("#ff006e"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b.Locked = true

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Block
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.ID != b.ID || got.Title != b.Title || got.Start != b.Start ||
		got.Duration != b.Duration || !got.Locked {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, *b)
	}
	if got.Color != b.Color {
		t.Errorf("color mismatch: got %+v, want %+v", got.Color, b.Color)
	}
}

func TestParseColor_Fallback(t *testing.T) {
	fallback := ParseColor(FallbackHex)
	for _, bad := range []string{"", "banana", "#12", "rgb(1,2,3)"} {
		if got := ParseColor(bad); got != fallback {
			t.Errorf("ParseColor(%q) = %+v, want fallback %+v", bad, got, fallback)
		}
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#3a86ff", "#ff006e", "#8338ec", "#ffbe0b"} {
		got := ParseColor(hex).Hex()
		if !strings.EqualFold(got, hex) {
			t.Errorf("hex round trip: got %s, want %s", got, hex)
		}
	}
}

func TestClone(t *testing.T) {
	b, _ := New("Original", 10, 1, Color{H: 210, S: 1, L: 0.61})
	c := b.Clone()
	c.Start = 12
	if b.Start != 10 {
		t.Error("mutating the clone must not touch the original")
	}
	if c.ID != b.ID {
		t.Error("clone keeps the same id")
	}
}
