package assert

import "github.com/freerun/freerun/oerror"

// IsTrue panics with an oerror built from message and args if ok is false and assertions are enabled.
// Assertions are compiled in with the freerun_debug build tag.
func IsTrue(ok bool, message string, args ...interface{}) {
	if Enabled && !ok {
		panic(oerror.New(message, args...))
	}
}
