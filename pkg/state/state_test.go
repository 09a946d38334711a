package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMoodForTable(t *testing.T) {
	tests := []struct {
		state State
		want  Mood
	}{
		{Idle, Neutral},
		{Listening, Neutral},
		{Thinking, Neutral},
		{Speaking, Neutral},
		{Success, Excited},
		{Error, Worried},
		{Loading, Neutral},
		{Sleeping, Sleepy},
		{Mouse, Neutral},
		{Attention, Neutral},
		{Prompt, Happy},
		{Bounce, Neutral},
		{Unknown, Neutral},
		{State(42), Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := MoodFor(tt.state); got != tt.want {
				t.Errorf("MoodFor(%v) = %v, want %v", tt.state, got, tt.want)
			}
		})
	}
}

func TestVerticalOffsetTable(t *testing.T) {
	for _, s := range append(Sequence(), Unknown, State(99)) {
		want := 0.0
		switch s {
		case Listening:
			want = -6
		case Attention:
			want = -10
		}
		if got := VerticalOffset(s); got != want {
			t.Errorf("VerticalOffset(%v) = %v, want %v", s, got, want)
		}
	}
}

func TestGestureForExactMatchOnly(t *testing.T) {
	want := map[State]Gesture{
		Success:   GestureSuccess,
		Error:     GestureError,
		Attention: GestureAttention,
		Prompt:    GesturePrompt,
		Bounce:    GestureBounce,
	}
	for _, s := range append(Sequence(), Unknown) {
		if got := GestureFor(s); got != want[s] {
			t.Errorf("GestureFor(%v) = %v, want %v", s, got, want[s])
		}
	}
}

func TestMoodScaleY(t *testing.T) {
	tests := map[Mood]float64{
		Happy:    0.85,
		Excited:  0.90,
		Neutral:  1.00,
		Sleepy:   0.60,
		Worried:  0.95,
		Mood(17): 1.00,
	}
	for m, want := range tests {
		if got := m.ScaleY(); got != want {
			t.Errorf("%v.ScaleY() = %v, want %v", m, got, want)
		}
	}
}

func TestBlinkSuppressed(t *testing.T) {
	for _, s := range Sequence() {
		want := s == Listening || s == Loading || s == Sleeping
		if got := BlinkSuppressed(s); got != want {
			t.Errorf("BlinkSuppressed(%v) = %v, want %v", s, got, want)
		}
	}
	if BlinkSuppressed(Unknown) {
		t.Error("Unknown should not suppress blinking")
	}
}

func TestParseRoundTripsEveryTag(t *testing.T) {
	for _, s := range Sequence() {
		if got := Parse(s.String()); got != s {
			t.Errorf("Parse(%q) = %v, want %v", s.String(), got, s)
		}
	}
	if got := Parse("  THINKING "); got != Thinking {
		t.Errorf("Parse is not case/space tolerant: got %v", got)
	}
	if got := Parse("dancing"); got != Unknown {
		t.Errorf("Parse(dancing) = %v, want Unknown", got)
	}
}

func TestSequenceOrder(t *testing.T) {
	want := []string{
		"idle", "listening", "thinking", "speaking", "success", "error",
		"loading", "sleeping", "mouse", "attention", "prompt", "bounce",
	}
	var got []string
	for _, s := range Sequence() {
		got = append(got, s.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sequence() mismatch (-want +got):\n%s", diff)
	}
}

func TestNextWrapsAfterBounce(t *testing.T) {
	s := Idle
	seq := Sequence()
	for i := 1; i <= len(seq); i++ {
		s = Next(s)
		if want := seq[i%len(seq)]; s != want {
			t.Fatalf("step %d: got %v, want %v", i, s, want)
		}
	}
	if Next(Unknown) != Idle {
		t.Error("Next(Unknown) should restart at Idle")
	}
}

func TestUnmarshalTextFallsBackToUnknown(t *testing.T) {
	var s State
	if err := s.UnmarshalText([]byte("nope")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != Unknown {
		t.Errorf("got %v, want Unknown", s)
	}
	if s.Valid() {
		t.Error("Unknown must not be Valid")
	}
}
