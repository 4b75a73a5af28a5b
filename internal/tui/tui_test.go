package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foxeronthepath/roulette/internal/layout"
	"github.com/foxeronthepath/roulette/internal/session"
	"github.com/foxeronthepath/roulette/internal/spin"
)

func newTestModel(t *testing.T) (*Model, *quartz.Mock) {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	mockClock := quartz.NewMock(t)
	sess := session.New(logger)
	m := NewModel(sess, mockClock, logger, Options{ShowOdds: true, TestMode: true})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, mockClock
}

func press(m *Model, key string) {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEscape}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m.Update(msg)
}

// pumpSpinEvent waits for the next sequencer event and feeds it through
// Update, the way the Bubble Tea runtime would.
func pumpSpinEvent(t *testing.T, m *Model) {
	t.Helper()
	cmd := m.listenForSpin()
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		m.Update(msg)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for spin event")
	}
}

func TestChipSelectionAndPlacement(t *testing.T) {
	m, _ := newTestModel(t)

	// Key "4" arms the fourth palette chip (25).
	press(m, "4")
	assert.Equal(t, 25, m.session.ArmedChip())

	// Cursor starts on pocket 0; place two chips there.
	press(m, "enter")
	press(m, "enter")
	assert.Equal(t, 50, m.session.Amount(layout.PocketCell(0).ID))
	assert.Equal(t, 50, m.session.Total())

	captured := m.GetCapturedLog()
	require.NotEmpty(t, captured)
	assert.Contains(t, captured[0], "armed chip 25")
	assert.Contains(t, captured[1], "placed pocket-0")
}

func TestCursorNavigationBounds(t *testing.T) {
	m, _ := newTestModel(t)

	// Moving up from the top stays put.
	press(m, "k")
	assert.Equal(t, 0, m.cursor)

	press(m, "j") // +3
	press(m, "l") // +1
	assert.Equal(t, 4, m.cursor)

	// Drive far past the end; cursor clamps to the last outside bet.
	for i := 0; i < 100; i++ {
		press(m, "j")
	}
	assert.Equal(t, len(m.cells)-1, m.cursor)
}

func TestEscapeClearsAllBets(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "2")
	press(m, "enter")
	press(m, "j")
	press(m, "enter")
	require.Equal(t, 10, m.session.Total())

	press(m, "esc")
	assert.Zero(t, m.session.Total())
	assert.Empty(t, m.session.Summary())

	// The "c" clear action behaves identically.
	press(m, "enter")
	require.Equal(t, 5, m.session.Total())
	press(m, "c")
	assert.Zero(t, m.session.Total())
}

func TestClearSingleCell(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "6") // 100 chip
	press(m, "enter")
	press(m, "l")
	press(m, "enter")
	require.Equal(t, 200, m.session.Total())

	press(m, "x")
	assert.Equal(t, 100, m.session.Total())
	assert.Equal(t, 100, m.session.Amount(layout.PocketCell(0).ID))
}

func TestToggleFallbackThroughKeys(t *testing.T) {
	m, _ := newTestModel(t)

	// No chip armed: enter on an empty cell toggles its highlight.
	press(m, "enter")
	assert.Equal(t, session.ModeToggle, m.session.Mode())
	assert.Equal(t, layout.PocketCell(0).ID, m.session.ToggledCell())

	press(m, "enter")
	assert.Equal(t, session.ModeIdle, m.session.Mode())
}

func TestViewShowsBetsAndTotal(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "8") // 1000 chip
	press(m, "enter")
	press(m, "enter")

	view := m.View()
	assert.Contains(t, view, "Total $2000")
	assert.Contains(t, view, "35:1")
	assert.Contains(t, view, "2000")
}

func TestRenderStackGlyphs(t *testing.T) {
	m, _ := newTestModel(t)

	// 10001 renders one plate and one chip.
	rendered := m.renderStack(10001)
	assert.Equal(t, 1, strings.Count(rendered, plateGlyph))
	assert.Equal(t, 1, strings.Count(rendered, chipGlyph))
	assert.Contains(t, rendered, "10001")

	// 1786 decomposes into 8 chips; the cell shows 5 and collapses the
	// rest into a count.
	rendered = m.renderStack(1786)
	assert.Equal(t, maxStackGlyphs, strings.Count(rendered, chipGlyph))
	assert.Contains(t, rendered, "+3")
}

func TestSpinSequenceThroughWidget(t *testing.T) {
	m, mockClock := newTestModel(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	press(m, "5") // 50 chip
	press(m, "enter")
	require.Equal(t, 50, m.session.Total())

	press(m, "s")
	assert.Equal(t, spin.PhaseSpinning, m.SpinPhase())
	assert.Contains(t, m.View(), "SPINNING")

	// Bets are frozen while the overlay is up.
	press(m, "enter")
	assert.Equal(t, 50, m.session.Total())

	mockClock.Advance(spin.DefaultLossDelay).MustWait(ctx)
	pumpSpinEvent(t, m)
	assert.Equal(t, spin.PhaseLost, m.SpinPhase())
	view := m.View()
	assert.Contains(t, view, "YOU LOSE")
	assert.Contains(t, view, "$50")

	mockClock.Advance(spin.DefaultCloseDelay - spin.DefaultLossDelay).MustWait(ctx)
	pumpSpinEvent(t, m)
	assert.Equal(t, spin.PhaseIdle, m.SpinPhase())
	assert.Zero(t, m.session.Total())
	assert.Contains(t, m.View(), "Total $0")
}

func TestRespinRestartsScript(t *testing.T) {
	m, mockClock := newTestModel(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	press(m, "s")
	mockClock.Advance(5 * time.Second).MustWait(ctx)

	// A second trigger during a pending chain restarts it; the old
	// loss deadline passes without an event.
	press(m, "s")
	mockClock.Advance(3 * time.Second).MustWait(ctx)
	assert.Equal(t, spin.PhaseSpinning, m.SpinPhase())

	mockClock.Advance(spin.DefaultLossDelay - 3*time.Second).MustWait(ctx)
	pumpSpinEvent(t, m)
	assert.Equal(t, spin.PhaseLost, m.SpinPhase())
}

func TestCapturedLogOnlyInTestMode(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	sess := session.New(logger)
	m := NewModel(sess, quartz.NewMock(t), logger, Options{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.False(t, m.IsTestMode())
	press(m, "1")
	assert.Nil(t, m.GetCapturedLog())
}
