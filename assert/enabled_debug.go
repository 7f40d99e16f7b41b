//go:build freerun_debug

package assert

// Enabled reports whether IsTrue checks its condition.
const Enabled = true
