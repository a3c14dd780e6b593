// Package typing implements the hero banner's typing effect: a state
// machine that types out each phrase of a fixed cycle one character at a
// time, pauses, erases it, and moves on to the next phrase forever.
//
// The animator owns its own scheduling. At most one tick is pending at
// any time and ticks never overlap; readers pull the current text with
// Text or receive pushed updates from Subscribe.
package typing

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrInvalidConfiguration is returned by Start when the phrase cycle is
// empty or an interval is not positive.
var ErrInvalidConfiguration = errors.New("invalid typing configuration")

// Mode is the animator's current phase.
type Mode string

const (
	ModeTyping       Mode = "typing"
	ModePausedAtFull Mode = "paused_at_full"
	ModeDeleting     Mode = "deleting"
)

// Config holds the tick cadence for each phase.
type Config struct {
	TypingInterval   time.Duration
	DeletingInterval time.Duration
	PauseAtFull      time.Duration
}

// DefaultConfig returns the cadence the hero banner ships with.
func DefaultConfig() Config {
	return Config{
		TypingInterval:   100 * time.Millisecond,
		DeletingInterval: 50 * time.Millisecond,
		PauseAtFull:      2 * time.Second,
	}
}

// Validate reports ErrInvalidConfiguration for any non-positive interval.
func (c Config) Validate() error {
	if c.TypingInterval <= 0 {
		return fmt.Errorf("%w: typing interval must be positive, got %s", ErrInvalidConfiguration, c.TypingInterval)
	}
	if c.DeletingInterval <= 0 {
		return fmt.Errorf("%w: deleting interval must be positive, got %s", ErrInvalidConfiguration, c.DeletingInterval)
	}
	if c.PauseAtFull <= 0 {
		return fmt.Errorf("%w: pause must be positive, got %s", ErrInvalidConfiguration, c.PauseAtFull)
	}
	return nil
}

// State is a snapshot of the animator's position in the cycle.
type State struct {
	Index   int
	Visible int
	Mode    Mode
}

// Animator cycles through a phrase list, typing and deleting each phrase.
type Animator struct {
	mu          sync.Mutex
	scheduler   Scheduler
	phrases     [][]rune
	config      Config
	state       State
	running     bool
	generation  uint64
	timer       Timer
	subscribers []chan string
}

// New creates an idle animator. A nil scheduler uses the wall clock.
func New(scheduler Scheduler) *Animator {
	if scheduler == nil {
		scheduler = ClockScheduler()
	}
	return &Animator{scheduler: scheduler, state: State{Mode: ModeTyping}}
}

// Start begins the cycle at the first phrase with nothing visible. A
// running animator is restarted. On error the animator is left exactly
// as it was.
func (a *Animator) Start(phrases []string, config Config) error {
	if len(phrases) == 0 {
		return fmt.Errorf("%w: phrase cycle is empty", ErrInvalidConfiguration)
	}
	if err := config.Validate(); err != nil {
		return err
	}

	cycle := make([][]rune, len(phrases))
	for i, phrase := range phrases {
		cycle[i] = []rune(phrase)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.cancelLocked()
	a.phrases = cycle
	a.config = config
	a.state = State{Mode: ModeTyping}
	a.running = true
	a.scheduleLocked(config.TypingInterval)
	a.emitLocked("")
	return nil
}

// Stop cancels the pending tick. It is safe to call repeatedly.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running {
		return
	}
	a.cancelLocked()
	a.running = false
}

// Close stops the animator and closes every subscriber channel.
func (a *Animator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancelLocked()
	a.running = false
	for _, ch := range a.subscribers {
		close(ch)
	}
	a.subscribers = nil
}

// Text returns the visible prefix of the active phrase.
func (a *Animator) Text() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.textLocked()
}

// State returns a snapshot of the current position.
func (a *Animator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Running reports whether a tick is scheduled.
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// Subscribe returns a channel that receives the display text every time
// it changes. Sends never block; a full channel misses the update.
func (a *Animator) Subscribe(buffer int) <-chan string {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan string, buffer)
	a.mu.Lock()
	a.subscribers = append(a.subscribers, ch)
	a.mu.Unlock()
	return ch
}

func (a *Animator) tick(generation uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	// A timer that fired while Stop or Start held the lock is stale.
	if !a.running || generation != a.generation {
		return
	}
	a.timer = nil

	phrase := a.phrases[a.state.Index]
	before := a.state.Visible
	var next time.Duration

	switch a.state.Mode {
	case ModeTyping:
		if a.state.Visible < len(phrase) {
			a.state.Visible++
			next = a.config.TypingInterval
		} else {
			a.state.Mode = ModePausedAtFull
			next = a.config.PauseAtFull
		}
	case ModePausedAtFull:
		a.state.Mode = ModeDeleting
		next = a.config.DeletingInterval
	case ModeDeleting:
		if a.state.Visible > 0 {
			a.state.Visible--
			next = a.config.DeletingInterval
		} else {
			a.state.Index = (a.state.Index + 1) % len(a.phrases)
			a.state.Mode = ModeTyping
			next = a.config.TypingInterval
		}
	}

	a.scheduleLocked(next)
	if a.state.Visible != before {
		a.emitLocked(a.textLocked())
	}
}

func (a *Animator) scheduleLocked(d time.Duration) {
	generation := a.generation
	a.timer = a.scheduler.AfterFunc(d, func() { a.tick(generation) })
}

func (a *Animator) cancelLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.generation++
}

func (a *Animator) textLocked() string {
	if len(a.phrases) == 0 {
		return ""
	}
	return string(a.phrases[a.state.Index][:a.state.Visible])
}

func (a *Animator) emitLocked(text string) {
	for _, ch := range a.subscribers {
		select {
		case ch <- text:
		default:
		}
	}
}
