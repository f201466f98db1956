package sim

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"rcpower/internal/battery"
)

// teaProgram abstracts bubbletea.Program for testing.
type teaProgram interface {
	Send(tea.Msg)
}

// logMsg carries a log line for the viewport.
type logMsg struct{ line string }

// sampleMsg carries one sample row for the table.
type sampleMsg struct{ battery.SampleRow }

// statusMsg carries a run status update.
type statusMsg struct{ Status }

// setControlsMsg registers pause/resume/reset callbacks.
type setControlsMsg struct {
	toggle func()
	reset  func()
}

const maxTableRows = 500

// TUIWriter renders the battery monitor using a bubbletea TUI.
type TUIWriter struct {
	program    teaProgram
	done       chan struct{}
	sendSignal atomic.Bool
}

// NewTUIWriter starts a bubbletea program and returns a TUIWriter.
func NewTUIWriter(cfg battery.Config) *TUIWriter {
	w := &TUIWriter{done: make(chan struct{})}
	w.sendSignal.Store(true)
	m := newTUIModel(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	w.program = p
	go func() {
		_, _ = p.Run()
		close(w.done)
		if w.sendSignal.Load() {
			if proc, err := os.FindProcess(os.Getpid()); err == nil {
				_ = proc.Signal(os.Interrupt)
			}
		}
	}()
	return w
}

// Write implements SampleWriter.
func (w *TUIWriter) Write(row battery.SampleRow) error {
	eta := fmt.Sprintf("%seta=%.1fmin%s", colorMagenta, row.ETAMin, colorReset)
	if row.ETAMin >= battery.ETASentinel {
		eta = fmt.Sprintf("%seta=--%s", colorGray, colorReset)
	}
	line := fmt.Sprintf("%s[%s]%s %st=%.1fs%s %sI=%.2fA%s %sused=%.1fmAh%s %srem=%.1fmAh%s %s",
		colorGray, row.Timestamp.Format(time.RFC3339), colorReset,
		colorBlue, row.TimeS, colorReset,
		colorYellow, row.CurrentA, colorReset,
		colorCyan, row.ConsumedmAh, colorReset,
		colorGreen, row.RemainingmAh, colorReset,
		eta)
	w.program.Send(logMsg{line: line})
	w.program.Send(sampleMsg{row})
	return nil
}

// WriteBatch outputs multiple sample rows.
func (w *TUIWriter) WriteBatch(rows []battery.SampleRow) error {
	for _, r := range rows {
		_ = w.Write(r)
	}
	return nil
}

// WriteStatus implements StatusWriter.
func (w *TUIWriter) WriteStatus(st Status) error {
	w.program.Send(statusMsg{st})
	return nil
}

// SetControls registers the pause/resume toggle and reset callbacks
// bound to the monitor keys.
func (w *TUIWriter) SetControls(toggle, reset func()) {
	w.program.Send(setControlsMsg{toggle: toggle, reset: reset})
}

// Close shuts down the TUI program and waits for cleanup.
func (w *TUIWriter) Close() error {
	w.sendSignal.Store(false)
	if w.program != nil {
		w.program.Send(tea.Quit())
	}
	if w.done != nil {
		<-w.done
	}
	return nil
}

type tuiModel struct {
	cfg        battery.Config
	table      table.Model
	vp         viewport.Model
	logs       []string
	status     Status
	autoscroll bool
	help       bool
	width      int
	height     int
	toggle     func()
	reset      func()
}

func newTUIModel(cfg battery.Config) tuiModel {
	cols := []table.Column{
		{Title: "Time (s)", Width: 10},
		{Title: "Current (A)", Width: 12},
		{Title: "Consumed (mAh)", Width: 15},
		{Title: "Remaining (mAh)", Width: 16},
		{Title: "Est. Flight (min)", Width: 17},
	}
	t := table.New(table.WithColumns(cols), table.WithHeight(12))
	vp := viewport.New(0, 0)
	return tuiModel{
		cfg:        cfg,
		table:      t,
		vp:         vp,
		autoscroll: true,
	}
}

func (m tuiModel) Init() tea.Cmd { return nil }

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.updateViewportHeight()
		m.refreshViewport()
	case tea.KeyMsg:
		if m.help {
			switch msg.String() {
			case "?", "h", "esc":
				m.help = false
			}
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.toggle != nil {
				go m.toggle()
			}
			return m, nil
		case "r":
			if m.reset != nil {
				go m.reset()
			}
			m.table.SetRows(nil)
			m.logs = nil
			m.refreshViewport()
			return m, nil
		case "s":
			m.autoscroll = !m.autoscroll
			if m.autoscroll {
				m.vp.GotoBottom()
			}
			return m, nil
		case "h", "?":
			m.help = !m.help
			return m, nil
		}
		if !m.autoscroll {
			switch msg.String() {
			case "j", "down":
				m.vp.LineDown(1)
			case "k", "up":
				m.vp.LineUp(1)
			case "pgdown", "ctrl+n":
				m.vp.LineDown(10)
			case "pgup", "ctrl+p":
				m.vp.LineUp(10)
			default:
				var cmd tea.Cmd
				m.vp, cmd = m.vp.Update(msg)
				return m, cmd
			}
		}
	case setControlsMsg:
		m.toggle = msg.toggle
		m.reset = msg.reset
	case sampleMsg:
		rows := append(m.table.Rows(), table.Row(FormatRecord(msg.SampleRow)))
		if len(rows) > maxTableRows {
			rows = rows[len(rows)-maxTableRows:]
		}
		m.table.SetRows(rows)
		m.table.GotoBottom()
	case statusMsg:
		m.status = msg.Status
	case logMsg:
		m.logs = append(m.logs, msg.line)
		m.refreshViewport()
	}
	return m, nil
}

func (m *tuiModel) updateViewportHeight() {
	headerHeight := m.table.Height() + 4
	h := m.height - headerHeight - 4
	if h < 3 {
		h = 3
	}
	m.vp.Height = h
}

func (m *tuiModel) refreshViewport() {
	m.vp.SetContent(strings.Join(m.logs, "\n"))
	if m.autoscroll {
		m.vp.GotoBottom()
	}
}

func (m tuiModel) View() string {
	if m.help {
		return m.renderHelp()
	}
	divider := strings.Repeat("─", max(m.width, 1))
	sections := []string{
		m.renderHeader(),
		divider,
		m.table.View(),
		divider,
		m.vp.View(),
		divider,
		m.renderBottom(),
	}
	return strings.Join(sections, "\n")
}

func (m tuiModel) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Render("Battery Monitor (coulomb counting)")
	cfg := fmt.Sprintf("capacity=%.0fmAh reserve=%t effective=%.0fmAh sampling=%.2fs duration=%.0fs current=[%.2f, %.2f]A",
		m.cfg.CapacitymAh, m.cfg.UseReserveRule, m.cfg.EffectiveCapacitymAh(),
		m.cfg.SamplingIntervalS, m.cfg.DurationS, m.cfg.CurrentMinA, m.cfg.CurrentMaxA)
	return title + "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(cfg) + "\n" + m.renderGauge()
}

// renderGauge draws remaining capacity as a bar across the full width.
func (m tuiModel) renderGauge() string {
	width := m.width - 2
	if width < 10 {
		width = 10
	}
	pct := 0.0
	if m.status.EffectiveCapacitymAh > 0 {
		pct = m.status.RemainingmAh / m.status.EffectiveCapacitymAh
	}
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	color := lipgloss.Color("10")
	switch {
	case pct <= 0.05:
		color = lipgloss.Color("9")
	case pct <= 0.2:
		color = lipgloss.Color("11")
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("[%s] %.0f%%", bar, pct*100)
}

func (m tuiModel) renderBottom() string {
	phaseColor := lipgloss.Color("10")
	switch m.status.Phase {
	case PhasePaused:
		phaseColor = lipgloss.Color("11")
	case PhaseStopped:
		phaseColor = lipgloss.Color("9")
	}
	phase := lipgloss.NewStyle().Foreground(phaseColor).Render(string(m.status.Phase))
	scrollColor := lipgloss.Color("10")
	if !m.autoscroll {
		scrollColor = lipgloss.Color("9")
	}
	scrollIndicator := lipgloss.NewStyle().Foreground(scrollColor).Render("●")
	state := fmt.Sprintf("%sSTATE%s %st=%.1fs%s %sused=%.1fmAh%s %srem=%.1fmAh%s %ssamples=%d%s",
		colorBlue, colorReset,
		colorYellow, m.status.ElapsedTotalS, colorReset,
		colorCyan, m.status.ConsumedmAh, colorReset,
		colorGreen, m.status.RemainingmAh, colorReset,
		colorMagenta, m.status.Samples, colorReset)
	line := fmt.Sprintf("%s | phase %s | Scroll %s | space pause/resume, r reset, s scroll, h help, q quit", state, phase, scrollIndicator)
	if m.status.Signal != battery.SignalNone {
		sig := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(string(m.status.Signal))
		line = fmt.Sprintf("%s | signal %s", line, sig)
	}
	return line
}

func (m tuiModel) renderHelp() string {
	text := strings.Join([]string{
		"Battery Monitor keys",
		"",
		"space  pause or resume the run (state is kept across pauses)",
		"r      reset to the pre-start condition and start over",
		"s      toggle autoscroll of the sample log",
		"j/k    scroll the log when autoscroll is off",
		"h, ?   toggle this help",
		"q      quit",
		"",
		"The monitor integrates a random current draw over each sampling",
		"interval (coulomb counting). With the 80% reserve rule enabled only",
		"80% of nominal capacity is usable. The run stops when the configured",
		"duration is reached or the effective capacity is depleted.",
	}, "\n")
	if m.width > 10 {
		text = wordwrap.String(text, m.width-2)
	}
	return text
}
