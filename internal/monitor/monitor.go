// Package monitor implements the live `watch` view using BubbleTea: the
// current CPU temperature with a real-time sparkline, running statistics
// and minute tick marks, polled once per second.
package monitor

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/luki/cputemp/internal/chart"
	"github.com/luki/cputemp/internal/history"
	"github.com/luki/cputemp/internal/session"
	"github.com/luki/cputemp/internal/unit"
)

const (
	pollInterval = 1 * time.Second
	historySize  = 600 // 10 minutes at 1s interval

	// CPU guidance thresholds, in Celsius; converted for display.
	warmCelsius = 80.0
	hotCelsius  = 95.0
)

// ── Messages ─────────────────────────────────────────────────────────

type tickMsg time.Time

type readingMsg struct {
	celsius float64
	time    time.Time
}

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// ── Model ────────────────────────────────────────────────────────────

// Model is the BubbleTea model for the live monitor.
type Model struct {
	src       session.Sampler
	unit      unit.Unit
	source    string // display name of the thermal zone file
	hist      *history.Buffer
	err       error
	width     int
	height    int
	lastPoll  time.Time
	startTime time.Time
	paused    bool
}

// New creates the initial model watching the given sampler.
func New(src session.Sampler, u unit.Unit, sourcePath string) Model {
	return Model{
		src:       src,
		unit:      u,
		source:    sourcePath,
		hist:      history.NewBuffer(historySize),
		startTime: time.Now(),
	}
}

// Run launches the watch TUI and blocks until it exits.
func Run(src session.Sampler, u unit.Unit, sourcePath string) error {
	p := tea.NewProgram(New(src, u, sourcePath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ── Commands ─────────────────────────────────────────────────────────

func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) pollCmd() tea.Cmd {
	return func() tea.Msg {
		v, err := m.src.Sample()
		if err != nil {
			return errMsg{err}
		}
		return readingMsg{celsius: v, time: time.Now()}
	}
}

// ── Init / Update ────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.pollCmd(), tickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if m.paused {
			return m, tickCmd()
		}
		return m, tea.Batch(m.pollCmd(), tickCmd())

	case readingMsg:
		m.err = nil
		m.lastPoll = msg.time
		m.hist.Push(m.unit.FromCelsius(msg.celsius), msg.time)

	case errMsg:
		m.err = msg.err
	}

	return m, nil
}

// ── Color palette ────────────────────────────────────────────────────

var (
	colorTitleBg  = lipgloss.Color("17")
	colorTitleFg  = lipgloss.Color("51")
	colorBorder   = lipgloss.Color("62")
	colorLabel    = lipgloss.Color("252")
	colorDim      = lipgloss.Color("240")
	colorFooterBg = lipgloss.Color("235")
	colorCrit     = lipgloss.Color("196")
	colorPaused   = lipgloss.Color("196")
)

// ── View ─────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "  Initializing..."
	}

	contentWidth := m.width - 2
	if contentWidth < 40 {
		contentWidth = 40
	}

	var sections []string

	sections = append(sections, m.renderTitleBar(contentWidth))

	if m.err != nil {
		errBox := lipgloss.NewStyle().
			Foreground(colorCrit).
			Bold(true).
			Width(contentWidth).
			Padding(0, 1).
			Render(fmt.Sprintf(" ERROR: %v", m.err))
		sections = append(sections, errBox)
	}

	if len(m.hist.Points) == 0 {
		waiting := lipgloss.NewStyle().
			Foreground(colorDim).
			Width(contentWidth).
			Align(lipgloss.Center).
			Padding(2, 0).
			Render("Waiting for sensor data...")
		sections = append(sections, waiting)
	} else {
		sections = append(sections, m.renderPanel(contentWidth))
	}

	sections = append(sections, m.renderFooter(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitleBar(width int) string {
	logo := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorTitleFg).
		Render("CPU TEMPERATURE")

	var statusParts []string

	uptime := lipgloss.NewStyle().
		Foreground(colorDim).
		Render(fmt.Sprintf("up %s", fmtDuration(time.Since(m.startTime))))
	statusParts = append(statusParts, uptime)

	if !m.lastPoll.IsZero() {
		ts := lipgloss.NewStyle().
			Foreground(colorDim).
			Render(m.lastPoll.Format("15:04:05"))
		statusParts = append(statusParts, ts)
	}

	if m.paused {
		p := lipgloss.NewStyle().
			Foreground(colorPaused).
			Bold(true).
			Render("PAUSED")
		statusParts = append(statusParts, p)
	}

	sep := lipgloss.NewStyle().Foreground(colorDim).Render(" │ ")
	right := strings.Join(statusParts, sep)

	gap := width - lipgloss.Width(logo) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	filler := strings.Repeat(" ", gap)

	return lipgloss.NewStyle().
		Background(colorTitleBg).
		Width(width).
		Padding(0, 1).
		Render(logo + filler + right)
}

func (m Model) renderPanel(totalWidth int) string {
	innerWidth := totalWidth - 4
	if innerWidth < 30 {
		innerWidth = 30
	}

	chartWidth := innerWidth - 40
	if chartWidth < 15 {
		chartWidth = 15
	}
	if chartWidth > 140 {
		chartWidth = 140
	}

	labelW := 10
	tempW := 9

	warm := m.unit.FromCelsius(warmCelsius)
	hot := m.unit.FromCelsius(hotCelsius)

	var rows []string

	source := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238")).
		Render(m.source)
	rows = append(rows, source)

	rangeMin := math.Max(m.unit.FromCelsius(0), m.hist.Min-5)
	rangeMax := m.hist.Peak + 5
	if hot > rangeMax {
		rangeMax = hot + 5
	}

	label := lipgloss.NewStyle().
		Foreground(colorLabel).
		Width(labelW).
		Render("CPU Temp")

	temp := lipgloss.NewStyle().
		Width(tempW).
		Align(lipgloss.Right).
		Render(chart.RenderTempValue(m.hist.Last(), warm, hot, m.unit.Symbol()))

	pts := m.hist.LastNPoints(chartWidth)
	spark := chart.RenderSparklinePoints(pts, chartWidth, rangeMin, rangeMax, warm, hot)
	frameL := lipgloss.NewStyle().Foreground(colorBorder).Render("▕")
	frameR := lipgloss.NewStyle().Foreground(colorBorder).Render("▏")

	dimS := lipgloss.NewStyle().Foreground(colorDim)
	valS := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	statsText := dimS.Render(" avg") + valS.Render(fmt.Sprintf("%6.1f", m.hist.Avg())) +
		dimS.Render(" lo") + valS.Render(fmt.Sprintf("%6.1f", m.hist.Min)) +
		dimS.Render(" pk") + valS.Render(fmt.Sprintf("%6.1f", m.hist.Peak))

	rows = append(rows, label+" "+temp+" "+frameL+spark+frameR+statsText)

	timeline := chart.RenderTimeline(pts, chartWidth)
	if strings.TrimSpace(timeline) != "" {
		pad := strings.Repeat(" ", labelW+tempW+2)
		rows = append(rows, pad+" "+timeline)
	}

	panelContent := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(totalWidth).
		Render(panelContent)
}

func (m Model) renderFooter(width int) string {
	dimS := lipgloss.NewStyle().Foreground(colorDim)
	keyS := lipgloss.NewStyle().Foreground(colorLabel)

	keys := dimS.Render("q") + keyS.Render(":quit") +
		dimS.Render("  p") + keyS.Render(":pause")

	return lipgloss.NewStyle().
		Background(colorFooterBg).
		Width(width).
		Padding(0, 1).
		Render(keys)
}

func fmtDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}
