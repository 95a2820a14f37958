package wheel

import (
	"sync"
	"time"
)

// Viewport is the host-rendered scrollable surface a Wheel drives.
// The engine only reads and writes the offset and listens for native
// scroll deltas, so any host (terminal, GUI toolkit, test fake) can back it.
type Viewport interface {
	Offset() float64
	SetOffset(offset float64)
	// OnScroll registers fn for native scroll deltas and returns a function
	// that removes the registration.
	OnScroll(fn func(delta float64, at time.Time)) (unsubscribe func())
}

// MemoryViewport is an in-process Viewport. Hosts without a native scroll
// surface (such as the terminal UI) forward wheel events through EmitScroll.
type MemoryViewport struct {
	mu        sync.Mutex
	offset    float64
	nextID    int
	listeners map[int]func(float64, time.Time)
	// EchoWrites makes SetOffset emit a scroll event the way browser
	// scroll containers do. Used to exercise feedback guards.
	EchoWrites bool
}

// NewMemoryViewport creates an empty viewport at offset 0.
func NewMemoryViewport() *MemoryViewport {
	return &MemoryViewport{listeners: make(map[int]func(float64, time.Time))}
}

// Offset returns the current offset.
func (v *MemoryViewport) Offset() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.offset
}

// SetOffset moves the viewport.
func (v *MemoryViewport) SetOffset(offset float64) {
	v.mu.Lock()
	delta := offset - v.offset
	v.offset = offset
	echo := v.EchoWrites && delta != 0
	v.mu.Unlock()

	if echo {
		v.EmitScroll(delta, time.Time{})
	}
}

// OnScroll registers a scroll listener.
func (v *MemoryViewport) OnScroll(fn func(delta float64, at time.Time)) func() {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++
	v.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.listeners, id)
			v.mu.Unlock()
		})
	}
}

// EmitScroll delivers a native scroll delta to every listener.
func (v *MemoryViewport) EmitScroll(delta float64, at time.Time) {
	v.mu.Lock()
	fns := make([]func(float64, time.Time), 0, len(v.listeners))
	for _, fn := range v.listeners {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(delta, at)
	}
}

// Listeners returns the number of registered scroll listeners.
func (v *MemoryViewport) Listeners() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}
