package input

// Key names a physical key. Names are lower case and match the host's key naming, e.g. "space" or
// "leftshift".
type Key string

const (
	KeyNone         Key = ""
	KeySpace        Key = "space"
	KeyLeftShift    Key = "leftshift"
	KeyLeftControl  Key = "leftcontrol"
	KeyRightControl Key = "rightcontrol"
	KeyC            Key = "c"
	KeyE            Key = "e"
	KeyQ            Key = "q"
)

// Axis identifies one of the two raw movement axes.
type Axis uint8

const (
	// AxisHorizontal is strafing: -1 left, 1 right.
	AxisHorizontal Axis = iota
	// AxisVertical is forward/back: -1 back, 1 forward.
	AxisVertical
)

// Source is the input collaborator. KeyDown and KeyUp report edges that happened during the current frame;
// Key reports whether the key is held.
type Source interface {
	Axis(a Axis) float32
	KeyDown(k Key) bool
	Key(k Key) bool
	KeyUp(k Key) bool
}

// Bindings maps locomotion actions to keys.
type Bindings struct {
	Jump        Key `toml:"jump" yaml:"jump"`
	Sprint      Key `toml:"sprint" yaml:"sprint"`
	Crouch      Key `toml:"crouch" yaml:"crouch"`
	Slide       Key `toml:"slide" yaml:"slide"`
	WallRunUp   Key `toml:"wall_run_up" yaml:"wall_run_up"`
	WallRunDown Key `toml:"wall_run_down" yaml:"wall_run_down"`
}

// DefaultBindings returns the classic layout, where crouch and slide share a key and the wall climb keys
// reuse sprint and crouch.
func DefaultBindings() Bindings {
	return Bindings{
		Jump:        KeySpace,
		Sprint:      KeyLeftShift,
		Crouch:      KeyLeftControl,
		Slide:       KeyLeftControl,
		WallRunUp:   KeyLeftShift,
		WallRunDown: KeyLeftControl,
	}
}

// Button is the state of one bound key during a frame.
type Button struct {
	Down bool `toml:"down" yaml:"down"`
	Held bool `toml:"held" yaml:"held"`
	Up   bool `toml:"up" yaml:"up"`
}

// Frame is everything the locomotion controller reads from input during one frame.
type Frame struct {
	Horizontal float32 `toml:"horizontal" yaml:"horizontal"`
	Vertical   float32 `toml:"vertical" yaml:"vertical"`

	Jump      Button `toml:"jump" yaml:"jump"`
	Sprint    Button `toml:"sprint" yaml:"sprint"`
	Crouch    Button `toml:"crouch" yaml:"crouch"`
	Slide     Button `toml:"slide" yaml:"slide"`
	ClimbUp   Button `toml:"climb_up" yaml:"climb_up"`
	ClimbDown Button `toml:"climb_down" yaml:"climb_down"`
}

// Moving returns true if either movement axis is nonzero.
func (f Frame) Moving() bool {
	return f.Horizontal != 0 || f.Vertical != 0
}

// Sample reads a Frame from src using the bindings given. A nil source produces an idle frame.
func Sample(src Source, b Bindings) Frame {
	if src == nil {
		return Frame{}
	}
	button := func(k Key) Button {
		if k == KeyNone {
			return Button{}
		}
		return Button{Down: src.KeyDown(k), Held: src.Key(k), Up: src.KeyUp(k)}
	}
	return Frame{
		Horizontal: clampAxis(src.Axis(AxisHorizontal)),
		Vertical:   clampAxis(src.Axis(AxisVertical)),
		Jump:       button(b.Jump),
		Sprint:     button(b.Sprint),
		Crouch:     button(b.Crouch),
		Slide:      button(b.Slide),
		ClimbUp:    button(b.WallRunUp),
		ClimbDown:  button(b.WallRunDown),
	}
}

func clampAxis(v float32) float32 {
	if v != v {
		return 0
	}
	return min(max(v, -1), 1)
}
