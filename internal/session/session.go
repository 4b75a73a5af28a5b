// Package session drives the betting-table interaction: it owns the
// ledger for one widget instance and turns discrete input events into
// ledger mutations through a small explicit state machine.
package session

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/foxeronthepath/roulette/internal/layout"
	"github.com/foxeronthepath/roulette/internal/ledger"
)

// ErrChipNotInPalette indicates a chip value outside the selectable
// palette was offered. Palette membership is a selection-UI concern;
// the ledger itself accepts any positive value.
var ErrChipNotInPalette = errors.New("session: chip not in palette")

// Mode is the input state of the widget.
type Mode int

const (
	// ModeIdle means no chip is selected; the widget is awaiting a
	// chip-select event.
	ModeIdle Mode = iota
	// ModeChipArmed means a chip is selected and the next cell click
	// places it.
	ModeChipArmed
	// ModeToggle is the legacy fallback: clicking a cell with no chip
	// armed and no bet on it highlights the cell instead of betting.
	// Clicking it again returns to idle.
	ModeToggle
)

func (m Mode) String() string {
	return [...]string{"idle", "chip-armed", "toggle"}[m]
}

// Outcome reports what a cell click did.
type Outcome int

const (
	OutcomePlaced Outcome = iota
	OutcomeToggledOn
	OutcomeToggledOff
	OutcomeIgnored
)

func (o Outcome) String() string {
	return [...]string{"placed", "toggled-on", "toggled-off", "ignored"}[o]
}

// DefaultPalette is the selectable chip row.
var DefaultPalette = []int{1, 5, 10, 25, 50, 100, 500, 1000}

// Session holds the interaction state for one widget instance: the
// owned ledger, the armed chip, the toggle highlight, and the cells
// seen so far. Events are delivered one at a time and each runs to
// completion; the session needs no locking.
type Session struct {
	ledger  *ledger.Ledger
	logger  *log.Logger
	palette []int

	mode    Mode
	armed   int // armed chip value, 0 when none
	toggled layout.CellID

	cells map[layout.CellID]layout.Cell
}

// New creates a session with its own empty ledger and the default
// chip palette.
func New(logger *log.Logger) *Session {
	return &Session{
		ledger:  ledger.New(),
		logger:  logger.WithPrefix("session"),
		palette: DefaultPalette,
		cells:   make(map[layout.CellID]layout.Cell),
	}
}

// Palette returns the selectable chip values in display order.
func (s *Session) Palette() []int {
	return s.palette
}

// Mode returns the current input mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// ArmedChip returns the currently selected chip value, 0 when none.
func (s *Session) ArmedChip() int {
	return s.armed
}

// ToggledCell returns the highlighted cell id in toggle mode, empty
// otherwise.
func (s *Session) ToggledCell() layout.CellID {
	return s.toggled
}

// SelectChip arms a chip from the palette. Selecting a chip leaves
// toggle mode and drops any highlight.
func (s *Session) SelectChip(value int) error {
	if !s.inPalette(value) {
		return ErrChipNotInPalette
	}
	s.armed = value
	s.toggled = ""
	s.mode = ModeChipArmed
	s.logger.Debug("chip armed", "value", value)
	return nil
}

// DisarmChip drops the chip selection and returns to idle.
func (s *Session) DisarmChip() {
	s.armed = 0
	if s.mode == ModeChipArmed {
		s.mode = ModeIdle
	}
}

// ClickCell handles a click on a betting cell. With a chip armed the
// chip is placed and the chip stays armed for further placements. With
// no chip armed, a cell that already holds a bet is ignored, and a cell
// without one toggles its highlight (the legacy fallback interaction).
func (s *Session) ClickCell(cell layout.Cell) (Outcome, error) {
	s.cells[cell.ID] = cell

	if s.mode == ModeChipArmed {
		entry, err := s.ledger.Place(cell.ID, s.armed)
		if err != nil {
			return OutcomeIgnored, err
		}
		s.logger.Debug("chip placed", "cell", cell.ID, "value", s.armed, "total", entry.Total)
		return OutcomePlaced, nil
	}

	if s.ledger.Amount(cell.ID) > 0 {
		return OutcomeIgnored, nil
	}

	if s.mode == ModeToggle && s.toggled == cell.ID {
		s.toggled = ""
		s.mode = ModeIdle
		return OutcomeToggledOff, nil
	}
	s.toggled = cell.ID
	s.mode = ModeToggle
	return OutcomeToggledOn, nil
}

// ClearCell removes the bet on one cell.
func (s *Session) ClearCell(cell layout.CellID) {
	s.ledger.ClearCell(cell)
}

// Clear removes every bet and any toggle highlight. The armed chip, if
// any, stays armed: clearing wipes wagers, not the chip selection.
func (s *Session) Clear() {
	s.ledger.ClearAll()
	s.toggled = ""
	if s.mode == ModeToggle {
		s.mode = ModeIdle
	}
	s.logger.Debug("table cleared")
}

// Amount returns the amount wagered on a cell.
func (s *Session) Amount(cell layout.CellID) int {
	return s.ledger.Amount(cell)
}

// Total returns the grand total wagered across all cells.
func (s *Session) Total() int {
	return s.ledger.TotalWagered()
}

// Summary derives one descriptor per bet, in first-bet-first order.
// Descriptors are rebuilt from the ledger on every call.
func (s *Session) Summary() []layout.Descriptor {
	entries := s.ledger.Entries()
	summary := make([]layout.Descriptor, 0, len(entries))
	for _, entry := range entries {
		summary = append(summary, layout.Describe(s.cells[entry.Cell], entry.Total))
	}
	return summary
}

func (s *Session) inPalette(value int) bool {
	for _, v := range s.palette {
		if v == value {
			return true
		}
	}
	return false
}
