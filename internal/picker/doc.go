// Package picker composes scroll wheels into time and date editors bound to
// one externally owned canonical value.
//
// Synchronization in both directions goes through Reduce, a single state
// transition over ExternalChanged and WheelChanged events. Wheels only
// propose labels; the Composer is the sole writer of the canonical value.
package picker
