package wheel

import "fmt"

// invariant reports a broken internal invariant. Debug builds
// (-tags tickwheel_debug) panic; release builds log and let the caller
// degrade to index 0.
func (w *Wheel) invariant(ok bool, format string, args ...any) bool {
	if ok {
		return true
	}
	msg := fmt.Sprintf(format, args...)
	if failFast {
		panic("wheel: " + msg)
	}
	w.log.Error().Msg(msg)
	return false
}
