package locomotion

import (
	"github.com/freerun/freerun/assert"
	"github.com/freerun/freerun/input"
	"github.com/sirupsen/logrus"
)

// ModeMachine resolves the movement state and desired speed once per frame from the mode flags, held keys
// and probe facts.
//
// Flag rules are checked first. When one matches, the posture rules are skipped except for crouching, which
// can still override the state and speed if the config allows it. When no flag is set the first matching
// posture rule decides, and the airborne row keeps the previous desired speed.
type ModeMachine struct {
	conf     *Config
	log      logrus.FieldLogger
	flags    table
	postures table
}

// NewModeMachine returns a ModeMachine using the config given.
func NewModeMachine(conf *Config, log logrus.FieldLogger) *ModeMachine {
	return &ModeMachine{
		conf:     conf,
		log:      log,
		flags:    flagRules(),
		postures: postureRules(),
	}
}

// Advance writes st.State and st.Speed.DesiredMoveSpeed for this frame.
func (m *ModeMachine) Advance(st *LocomotionState, in input.Frame, f Facts) {
	m.checkFlags(st)

	flagged := false
	for el := m.flags.Front(); el != nil; el = el.Next() {
		if el.Value.match(st, in, f) {
			m.apply(st, el.Key, el.Value, f)
			flagged = true
			break
		}
	}
	for el := m.postures.Front(); el != nil; el = el.Next() {
		if flagged && (el.Key != StateCrouching || !m.conf.CrouchOverridesFlags) {
			continue
		}
		if el.Value.match(st, in, f) {
			m.apply(st, el.Key, el.Value, f)
			break
		}
	}
}

func (m *ModeMachine) apply(st *LocomotionState, s MovementState, r rule, f Facts) {
	st.State = s
	if speed, ok := r.desired(m.conf, f); ok {
		st.Speed.DesiredMoveSpeed = speed
	}
}

// checkFlags reports a slide and a wall run being active together. Debug builds panic; release builds log
// and let wall running take precedence.
func (m *ModeMachine) checkFlags(st *LocomotionState) {
	ok := !(st.Sliding && st.WallRunning)
	assert.IsTrue(ok, "sliding and wall running are both set")
	if !ok {
		m.log.Error("sliding and wall running are both set, wall running takes precedence")
	}
}

// Precedence returns the states in the order they are considered.
func (m *ModeMachine) Precedence() []MovementState {
	states := make([]MovementState, 0, m.flags.Len()+m.postures.Len())
	for el := m.flags.Front(); el != nil; el = el.Next() {
		states = append(states, el.Key)
	}
	for el := m.postures.Front(); el != nil; el = el.Next() {
		states = append(states, el.Key)
	}
	return states
}
