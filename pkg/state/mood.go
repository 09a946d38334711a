package state

// Mood is the emotional shading applied to the eye shape.
type Mood int

const (
	Neutral Mood = iota
	Happy
	Excited
	Sleepy
	Worried
)

var moodNames = [...]string{
	Neutral: "neutral",
	Happy:   "happy",
	Excited: "excited",
	Sleepy:  "sleepy",
	Worried: "worried",
}

// String returns the mood name.
func (m Mood) String() string {
	if m >= 0 && int(m) < len(moodNames) {
		return moodNames[m]
	}
	return "neutral"
}

// ScaleY returns the vertical scale factor applied to the pupil.
func (m Mood) ScaleY() float64 {
	switch m {
	case Happy:
		return 0.85
	case Excited:
		return 0.90
	case Sleepy:
		return 0.60
	case Worried:
		return 0.95
	default:
		return 1.0
	}
}

// MoodFor returns the mood shown in s.
func MoodFor(s State) Mood {
	switch s {
	case Success:
		return Excited
	case Prompt:
		return Happy
	case Error:
		return Worried
	case Sleeping:
		return Sleepy
	default:
		return Neutral
	}
}
