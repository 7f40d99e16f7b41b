package input

// Step holds a set of keys and axis values for a number of frames.
type Step struct {
	Frames     int
	Horizontal float32
	Vertical   float32
	Held       []Key
}

// Hold returns a Step holding the keys given for n frames with no movement.
func Hold(n int, keys ...Key) Step {
	return Step{Frames: n, Held: keys}
}

// Move returns a Step moving along the axes given for n frames while holding keys.
func Move(n int, horizontal, vertical float32, keys ...Key) Step {
	return Step{Frames: n, Horizontal: horizontal, Vertical: vertical, Held: keys}
}

// Timeline is a scripted Source. Each call to Advance moves it one frame forward; key edges are derived from
// the held sets of consecutive frames. Before the first Advance nothing is held.
type Timeline struct {
	steps []Step
	total int

	frame int
	step  Step
	prev  map[Key]bool
	held  map[Key]bool
}

// NewTimeline returns a Timeline playing the steps in order.
func NewTimeline(steps ...Step) *Timeline {
	t := &Timeline{steps: steps, frame: -1, prev: map[Key]bool{}, held: map[Key]bool{}}
	for _, s := range steps {
		t.total += max(s.Frames, 0)
	}
	return t
}

// Len returns the number of scripted frames.
func (t *Timeline) Len() int {
	return t.total
}

// Frame returns the index of the current frame, or -1 before the first Advance.
func (t *Timeline) Frame() int {
	return t.frame
}

// Advance moves to the next frame. Once the script is exhausted it releases every key and returns false.
func (t *Timeline) Advance() bool {
	t.prev, t.held = t.held, t.prev
	clear(t.held)
	t.frame++

	s, ok := t.stepAt(t.frame)
	if !ok {
		t.step = Step{}
		return false
	}
	t.step = s
	for _, k := range s.Held {
		t.held[k] = true
	}
	return true
}

func (t *Timeline) stepAt(frame int) (Step, bool) {
	for _, s := range t.steps {
		if frame < s.Frames {
			return s, true
		}
		frame -= max(s.Frames, 0)
	}
	return Step{}, false
}

func (t *Timeline) Axis(a Axis) float32 {
	if a == AxisHorizontal {
		return t.step.Horizontal
	}
	return t.step.Vertical
}

func (t *Timeline) KeyDown(k Key) bool { return t.held[k] && !t.prev[k] }
func (t *Timeline) Key(k Key) bool     { return t.held[k] }
func (t *Timeline) KeyUp(k Key) bool   { return !t.held[k] && t.prev[k] }
