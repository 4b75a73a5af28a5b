// Package spin runs the scripted spin choreography: a spinning overlay,
// a loss message after a fixed delay, and an auto-close that clears the
// table. The outcome is not derived from anything; the delays are the
// whole script.
package spin

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Fixed delays for the loss sequence, measured from the trigger.
const (
	DefaultLossDelay  = 7500 * time.Millisecond
	DefaultCloseDelay = 18 * time.Second
)

// Phase is the overlay state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSpinning
	PhaseLost
)

func (p Phase) String() string {
	return [...]string{"idle", "spinning", "lost"}[p]
}

// Event is delivered to the notify callback as the sequence advances.
type Event int

const (
	// EventLoss fires when the loss message should appear.
	EventLoss Event = iota
	// EventClosed fires when the overlay auto-closes and the table
	// should be cleared.
	EventClosed
)

func (e Event) String() string {
	return [...]string{"loss", "closed"}[e]
}

// Sequencer owns the overlay timer chain. At most one chain is active
// at a time: triggering while a chain is pending cancels it first, so
// two loss sequences can never overlap. The clock is injected so tests
// drive time explicitly.
type Sequencer struct {
	clock      quartz.Clock
	logger     *log.Logger
	lossDelay  time.Duration
	closeDelay time.Duration
	notify     func(Event)

	mu         sync.Mutex
	phase      Phase
	generation uint64
	lossTimer  *quartz.Timer
	closeTimer *quartz.Timer
}

// New creates a sequencer. The notify callback is invoked from timer
// goroutines as the chain advances; it must not block.
func New(clock quartz.Clock, logger *log.Logger, lossDelay, closeDelay time.Duration, notify func(Event)) *Sequencer {
	return &Sequencer{
		clock:      clock,
		logger:     logger.WithPrefix("spin"),
		lossDelay:  lossDelay,
		closeDelay: closeDelay,
		notify:     notify,
	}
}

// Trigger starts the loss sequence, cancelling any pending chain first.
func (s *Sequencer) Trigger() {
	s.mu.Lock()
	s.stopTimersLocked()
	s.generation++
	gen := s.generation
	s.phase = PhaseSpinning

	s.lossTimer = s.clock.AfterFunc(s.lossDelay, func() {
		s.advance(gen, PhaseLost, EventLoss)
	})
	s.closeTimer = s.clock.AfterFunc(s.closeDelay, func() {
		s.advance(gen, PhaseIdle, EventClosed)
	})
	s.mu.Unlock()

	s.logger.Debug("spin triggered", "lossDelay", s.lossDelay, "closeDelay", s.closeDelay)
}

// Cancel stops any pending chain and returns the overlay to idle
// without firing events.
func (s *Sequencer) Cancel() {
	s.mu.Lock()
	s.stopTimersLocked()
	s.generation++
	s.phase = PhaseIdle
	s.mu.Unlock()
}

// Phase returns the current overlay phase.
func (s *Sequencer) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// advance moves to the next phase if the firing timer still belongs to
// the live chain. A stale generation means the chain was cancelled or
// restarted after the timer was scheduled but before it fired.
func (s *Sequencer) advance(gen uint64, phase Phase, event Event) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	s.phase = phase
	s.mu.Unlock()

	s.logger.Debug("spin sequence advanced", "phase", phase, "event", event)
	if s.notify != nil {
		s.notify(event)
	}
}

func (s *Sequencer) stopTimersLocked() {
	if s.lossTimer != nil {
		s.lossTimer.Stop()
		s.lossTimer = nil
	}
	if s.closeTimer != nil {
		s.closeTimer.Stop()
		s.closeTimer = nil
	}
}
