// Package wheel implements an inertial scroll-wheel value selector.
//
// A Wheel owns a vertical list of discrete labels and keeps exactly one of
// them centered. Direct manipulation drives a small state machine:
//
//	Idle -> Dragging -> Releasing (momentum) -> Snapping -> Idle
//	Idle -> ScrollSettling -> Snapping -> Idle   (native wheel / trackpad)
//
// Key features:
//   - Drag follows the pointer 1:1 and reports every row boundary crossing
//   - Release velocity is a recency-weighted average over a 100ms window
//   - Momentum decays with exponential friction normalized to 60fps frames
//   - Snapping eases out (cubic) onto the nearest row boundary
//   - Loop mode renders three copies of the list and silently jumps the
//     offset by one list length so scrolling never hits an edge
//
// The package never schedules timers or goroutines. The host calls Frame on
// each animation frame while NeedsFrame reports true, and feeds pointer and
// scroll events with their timestamps, which keeps the engine deterministic
// and testable with a fake Viewport.
package wheel
