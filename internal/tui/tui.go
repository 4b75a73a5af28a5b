package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/foxeronthepath/roulette/internal/layout"
	"github.com/foxeronthepath/roulette/internal/session"
	"github.com/foxeronthepath/roulette/internal/spin"
	"github.com/foxeronthepath/roulette/internal/stack"
)

const (
	chipGlyph  = "●"
	plateGlyph = "▆"

	// maxStackGlyphs caps how many stack elements a cell draws before
	// collapsing the rest into a count.
	maxStackGlyphs = 5

	pocketCellWidth  = 12
	outsideCellWidth = 9
	sidebarWidth     = 26
)

// Model is the Bubble Tea model for the betting-table widget
type Model struct {
	session *session.Session
	seq     *spin.Sequencer
	logger  *log.Logger

	// UI components
	summary viewport.Model

	// Navigable cells: pocket 0, pockets 1-36, then outside bets
	cells  []layout.Cell
	cursor int

	// Amount on the table when the last spin was triggered; shown in
	// the loss message
	lostAmount int

	spinEvents chan spin.Event

	showOdds bool

	// Dimensions
	width    int
	height   int
	quitting bool

	// Test mode
	testMode    bool
	capturedLog []string
}

// spinEventMsg carries a sequencer event into the update loop
type spinEventMsg spin.Event

// Options configures the widget model. Zero delays fall back to the
// scripted defaults.
type Options struct {
	LossDelay  time.Duration
	CloseDelay time.Duration
	ShowOdds   bool
	TestMode   bool
}

// NewModel creates the widget model. The sequencer clock is injected so
// tests drive the overlay timers explicitly.
func NewModel(sess *session.Session, clock quartz.Clock, logger *log.Logger, opts Options) *Model {
	vp := viewport.New(sidebarWidth, 5)
	vp.SetContent("")

	cells := make([]layout.Cell, 0, 49)
	cells = append(cells, layout.Pockets()...)
	cells = append(cells, layout.OutsideBets()...)

	m := &Model{
		session:     sess,
		logger:      logger.WithPrefix("tui"),
		summary:     vp,
		cells:       cells,
		spinEvents:  make(chan spin.Event, 8),
		showOdds:    opts.ShowOdds,
		testMode:    opts.TestMode,
		capturedLog: []string{},
	}

	lossDelay := spin.DefaultLossDelay
	if opts.LossDelay > 0 {
		lossDelay = opts.LossDelay
	}
	closeDelay := spin.DefaultCloseDelay
	if opts.CloseDelay > 0 {
		closeDelay = opts.CloseDelay
	}

	m.seq = spin.New(clock, logger, lossDelay, closeDelay, func(e spin.Event) {
		m.spinEvents <- e
	})

	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return m.listenForSpin()
}

// listenForSpin returns a command that waits for the next sequencer event
func (m *Model) listenForSpin() tea.Cmd {
	return func() tea.Msg {
		return spinEventMsg(<-m.spinEvents)
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.summary.Width = sidebarWidth
		if h := m.height - 8; h > 3 {
			m.summary.Height = h
		}

	case spinEventMsg:
		return m.handleSpinEvent(spin.Event(msg))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.summary, cmd = m.summary.Update(msg)
	return m, cmd
}

func (m *Model) handleSpinEvent(event spin.Event) (tea.Model, tea.Cmd) {
	switch event {
	case spin.EventLoss:
		m.record(fmt.Sprintf("lost %d", m.lostAmount))
	case spin.EventClosed:
		m.session.Clear()
		m.record("table cleared")
	}
	return m, m.listenForSpin()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// While the overlay is up only quitting and re-spinning make sense;
	// everything else waits for the sequence to close.
	if m.seq.Phase() != spin.PhaseIdle {
		switch key {
		case "ctrl+c", "q":
			return m.quit()
		case "s":
			m.triggerSpin()
		}
		return m, nil
	}

	switch key {
	case "ctrl+c", "q":
		return m.quit()

	case "esc", "c":
		// Escape and the clear action are the same trigger.
		m.session.Clear()
		m.record("cleared all bets")

	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "up", "k":
		m.moveCursor(-3)
	case "down", "j":
		m.moveCursor(3)

	case "1", "2", "3", "4", "5", "6", "7", "8":
		m.selectChip(int(key[0] - '1'))

	case "0":
		m.session.DisarmChip()
		m.record("chip disarmed")

	case "enter", " ":
		m.clickCell()

	case "x":
		cell := m.cells[m.cursor]
		m.session.ClearCell(cell.ID)
		m.record(fmt.Sprintf("cleared %s", cell.ID))

	case "s":
		m.triggerSpin()
	}

	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.seq.Cancel()
	return m, tea.Sequence(tea.ClearScreen, tea.Quit)
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 {
		next = 0
	}
	if next > len(m.cells)-1 {
		next = len(m.cells) - 1
	}
	m.cursor = next
}

func (m *Model) selectChip(index int) {
	palette := m.session.Palette()
	if index < 0 || index >= len(palette) {
		return
	}
	if err := m.session.SelectChip(palette[index]); err != nil {
		m.logger.Warn("chip selection rejected", "error", err)
		return
	}
	m.record(fmt.Sprintf("armed chip %d", palette[index]))
}

func (m *Model) clickCell() {
	cell := m.cells[m.cursor]
	outcome, err := m.session.ClickCell(cell)
	if err != nil {
		m.logger.Warn("placement rejected", "cell", cell.ID, "error", err)
		m.record(fmt.Sprintf("rejected placement on %s", cell.ID))
		return
	}
	m.record(fmt.Sprintf("%s %s", outcome, cell.ID))
}

func (m *Model) triggerSpin() {
	m.lostAmount = m.session.Total()
	m.seq.Trigger()
	m.record(fmt.Sprintf("spin triggered with %d on the table", m.lostAmount))
}

// record captures an action line in test mode and always logs it.
func (m *Model) record(line string) {
	m.logger.Debug(line)
	if m.testMode {
		m.capturedLog = append(m.capturedLog, line)
	}
}

// View renders the widget
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if phase := m.seq.Phase(); phase != spin.PhaseIdle {
		return m.renderOverlay(phase)
	}

	title := TitleStyle.Render(" ♦ Roulette ♦ ")
	chips := m.renderChipRow()
	table := m.renderTable()

	m.summary.SetContent(m.renderSummary())
	sidebar := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(sidebarWidth).
		Render(m.summary.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, table, " ", sidebar)

	help := HelpStyle.Render(
		"←↓↑→ move • 1-8 chip • 0 disarm • Enter place • x clear cell • Esc clear • s spin • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", chips, "", body, help)
}

// renderChipRow renders the selectable chip palette with the armed chip
// highlighted
func (m *Model) renderChipRow() string {
	var chips []string
	armed := m.session.ArmedChip()
	for i, value := range m.session.Palette() {
		label := fmt.Sprintf("%d:%s%d", i+1, chipGlyph, value)
		style := DenomStyle(value, false)
		if value == armed {
			style = CursorStyle
		}
		chips = append(chips, style.Render("["+label+"]"))
	}
	return "Chips: " + strings.Join(chips, " ")
}

// renderTable renders the zero row, the 12x3 pocket grid, and the
// outside-bet rows
func (m *Model) renderTable() string {
	var rows []string

	rows = append(rows, m.renderCell(0, pocketCellWidth*3))

	for r := 0; r < 12; r++ {
		var row []string
		for c := 0; c < 3; c++ {
			row = append(row, m.renderCell(3*r+c+1, pocketCellWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	// Outside bets in two rows of six, following the cell order.
	for _, span := range [][2]int{{37, 43}, {43, 49}} {
		var row []string
		for i := span[0]; i < span[1]; i++ {
			row = append(row, m.renderCell(i, outsideCellWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCell renders one betting cell at the given display width
func (m *Model) renderCell(index, width int) string {
	cell := m.cells[index]

	content := cell.Label
	if amount := m.session.Amount(cell.ID); amount > 0 {
		content = fmt.Sprintf("%s %s", cell.Label, m.renderStack(amount))
	}

	style := m.cellStyle(index, cell)
	return style.Width(width).MaxHeight(1).Render(" " + content)
}

// cellStyle picks the style for a cell: cursor and toggle highlights
// win over membership highlighting, which wins over the base color.
func (m *Model) cellStyle(index int, cell layout.Cell) lipgloss.Style {
	if index == m.cursor {
		return CursorStyle
	}
	if cell.ID == m.session.ToggledCell() {
		return ToggledStyle
	}
	if cell.IsPocket && m.cursorCovers(cell.Pocket) {
		return MemberStyle
	}

	if !cell.IsPocket {
		return OutsideCellStyle
	}
	switch layout.ColorOf(cell.Pocket) {
	case layout.Red:
		return RedCellStyle
	case layout.Black:
		return BlackCellStyle
	default:
		return GreenCellStyle
	}
}

// cursorCovers reports whether the outside bet under the cursor covers
// the given pocket.
func (m *Model) cursorCovers(pocket int) bool {
	under := m.cells[m.cursor]
	if under.IsPocket {
		return false
	}
	for _, member := range layout.Members(under.Category) {
		if member == pocket {
			return true
		}
	}
	return false
}

// renderStack draws the canonical chip stack for an amount: plate
// glyph first, then chips, collapsed past maxStackGlyphs. The stack is
// recomputed from the total on every render.
func (m *Model) renderStack(amount int) string {
	denoms := stack.Decompose(amount)

	var b strings.Builder
	for i, d := range denoms {
		if i == maxStackGlyphs {
			b.WriteString(fmt.Sprintf("+%d", len(denoms)-maxStackGlyphs))
			break
		}
		glyph := chipGlyph
		if d.Plate {
			glyph = plateGlyph
		}
		b.WriteString(DenomStyle(d.Value, d.Plate).Render(glyph))
	}

	return fmt.Sprintf("%s %d", b.String(), amount)
}

// renderSummary builds the sidebar: one line per bet plus the grand
// total, rebuilt from the ledger on every render
func (m *Model) renderSummary() string {
	var b strings.Builder
	b.WriteString(SummaryHeaderStyle.Render("Bets"))
	b.WriteString("\n")

	summary := m.session.Summary()
	if len(summary) == 0 {
		b.WriteString(HelpStyle.Render("none yet"))
		b.WriteString("\n")
	}
	for _, d := range summary {
		if m.showOdds {
			b.WriteString(fmt.Sprintf("%-7s %-4s $%d\n", d.Label, d.Odds, d.Amount))
		} else {
			b.WriteString(fmt.Sprintf("%-7s $%d\n", d.Label, d.Amount))
		}
	}

	b.WriteString("\n")
	b.WriteString(TotalStyle.Render(fmt.Sprintf("Total $%d", m.session.Total())))
	return b.String()
}

// renderOverlay draws the scripted spin overlay centered on the screen
func (m *Model) renderOverlay(phase spin.Phase) string {
	var content string
	switch phase {
	case spin.PhaseSpinning:
		content = fmt.Sprintf("SPINNING . . .\n\nno more bets ($%d down)", m.lostAmount)
	case spin.PhaseLost:
		content = LoseStyle.Render("YOU LOSE") + fmt.Sprintf("\n\n$%d swept away", m.lostAmount)
	}

	box := OverlayStyle.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// SpinPhase exposes the overlay phase for the main loop and tests.
func (m *Model) SpinPhase() spin.Phase {
	return m.seq.Phase()
}

// IsTestMode returns whether the model is in test mode
func (m *Model) IsTestMode() bool {
	return m.testMode
}

// GetCapturedLog returns the captured action log (test mode only)
func (m *Model) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}
