// Package overlay models full-screen overlays and the page scroll-lock
// they hold while visible.
//
// The server builds a lock and splash per page render and reads them to
// decide whether the page starts with the intro shown and scrolling
// suspended. The browser then holds the lock for the splash's visible
// lifetime through the body's scroll-locked class, which is removed when
// the intro-dismissed event fires after POST /intro/dismiss.
package overlay

import "sync"

// ScrollLock suspends page scrolling while at least one holder has it.
type ScrollLock struct {
	mu      sync.Mutex
	holders int
}

// Acquire takes the lock and returns its release function. Calling the
// release function more than once has no further effect.
func (l *ScrollLock) Acquire() (release func()) {
	l.mu.Lock()
	l.holders++
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			l.holders--
			l.mu.Unlock()
		})
	}
}

// Locked reports whether any holder still has the lock.
func (l *ScrollLock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holders > 0
}

// Splash is the intro overlay. It holds the scroll lock for exactly as
// long as it is visible.
type Splash struct {
	mu      sync.Mutex
	lock    *ScrollLock
	release func()
}

// NewSplash returns a hidden splash bound to lock.
func NewSplash(lock *ScrollLock) *Splash {
	return &Splash{lock: lock}
}

// Show makes the splash visible. Showing a visible splash does nothing.
func (s *Splash) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.release != nil {
		return
	}
	s.release = s.lock.Acquire()
}

// Dismiss hides the splash and releases the scroll lock. It is safe to
// call on every exit path, including when the splash was never shown.
func (s *Splash) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.release == nil {
		return
	}
	s.release()
	s.release = nil
}

// Visible reports whether the splash is showing.
func (s *Splash) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.release != nil
}
