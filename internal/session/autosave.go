// ABOUTME: Debounced auto-save for the editing surface
// ABOUTME: Coalesces bursts of content changes into a single deferred write

package session

import (
	"sync"
	"time"
)

// DefaultAutoSaveInterval matches the editor's quiet period before a
// pending change is flushed.
const DefaultAutoSaveInterval = 3 * time.Second

// AutoSaver debounces content-change events. Each Note (re)starts the
// timer; only the last pending content is flushed when the quiet
// period elapses. Cancel drops a pending flush without writing, so no
// disk write races a deliberate cancel.
type AutoSaver struct {
	interval time.Duration
	save     func(content string)

	mu      sync.Mutex
	timer   *time.Timer
	pending string
	armed   bool
}

// NewAutoSaver creates an AutoSaver that calls save with the final
// content of a burst. A non-positive interval falls back to the
// default.
func NewAutoSaver(interval time.Duration, save func(content string)) *AutoSaver {
	if interval <= 0 {
		interval = DefaultAutoSaveInterval
	}
	return &AutoSaver{interval: interval, save: save}
}

// Note records a content change and restarts the debounce timer. A
// note arriving before the timer elapses implicitly cancels the
// previous pending save.
func (a *AutoSaver) Note(content string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.pending = content
	a.armed = true
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.interval, a.flush)
}

// Cancel stops any pending save without flushing. Used when the
// editing session ends; navigating away must not trigger a final
// write.
func (a *AutoSaver) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.armed = false
	a.pending = ""
}

func (a *AutoSaver) flush() {
	a.mu.Lock()
	if !a.armed {
		// Cancel won the race against the timer firing
		a.mu.Unlock()
		return
	}
	content := a.pending
	a.armed = false
	a.pending = ""
	a.mu.Unlock()

	// Save outside the lock so a slow write never blocks new notes
	a.save(content)
}
