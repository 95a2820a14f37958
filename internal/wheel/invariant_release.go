//go:build !tickwheel_debug

package wheel

const failFast = false
