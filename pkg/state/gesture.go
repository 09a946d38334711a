package state

// Gesture names the one-shot container animation played when the face
// enters a state.
type Gesture int

const (
	GestureNone Gesture = iota
	GestureSuccess
	GestureError
	GestureAttention
	GesturePrompt
	GestureBounce
)

var gestureNames = [...]string{
	GestureNone:      "none",
	GestureSuccess:   "success",
	GestureError:     "error",
	GestureAttention: "attention",
	GesturePrompt:    "prompt",
	GestureBounce:    "bounce",
}

// String returns the gesture name.
func (g Gesture) String() string {
	if g >= 0 && int(g) < len(gestureNames) {
		return gestureNames[g]
	}
	return "none"
}

// GestureFor returns the gesture for s. Only an exact match on one of the
// five gesture states selects a gesture.
func GestureFor(s State) Gesture {
	switch s {
	case Success:
		return GestureSuccess
	case Error:
		return GestureError
	case Attention:
		return GestureAttention
	case Prompt:
		return GesturePrompt
	case Bounce:
		return GestureBounce
	default:
		return GestureNone
	}
}
