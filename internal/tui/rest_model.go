package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/ironlog/ironlog/internal/timer"
)

// RestModel renders a live rest-interval countdown. The actual countdown
// logic lives in the timer state machine; this model just ticks it every
// 200ms and draws whatever it reports.
type RestModel struct {
	width  int
	height int

	countdown *timer.Timer
	total     int
	remaining int
	bar       progress.Model

	expired bool
	skipped bool
}

// restTickMsg fires on the sub-second countdown cadence.
type restTickMsg struct{}

const restTickInterval = 200 * time.Millisecond

func NewRestModel(seconds int) RestModel {
	t := timer.New(nil)
	t.Start(time.Duration(seconds) * time.Second)

	return RestModel{
		countdown: t,
		total:     seconds,
		remaining: seconds,
		bar:       progress.New(progress.WithDefaultGradient()),
	}
}

func (m RestModel) Init() tea.Cmd {
	return tea.Tick(restTickInterval, func(t time.Time) tea.Msg {
		return restTickMsg{}
	})
}

func (m RestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case restTickMsg:
		remaining, expired := m.countdown.Tick()
		if expired {
			m.expired = true
			m.remaining = 0
			return m, tea.Quit
		}
		m.remaining = remaining
		return m, tea.Tick(restTickInterval, func(t time.Time) tea.Msg {
			return restTickMsg{}
		})

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S", "esc", "q", "ctrl+c":
			// Skip: straight to idle, no expiry notification.
			m.countdown.Cancel()
			m.skipped = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m RestModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	elapsed := 0.0
	if m.total > 0 {
		elapsed = float64(m.total-m.remaining) / float64(m.total)
	}

	barWidth := m.width - 8
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth < 10 {
		barWidth = 10
	}
	m.bar.Width = barWidth

	barStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(m.width)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render("⏲  REST"),
		"",
		clockStyle.Render(FormatClock(m.remaining)),
		"",
		barStyle.Render(m.bar.ViewAs(elapsed)),
		"",
		helpStyle.Render("s/esc/q skip rest"),
	)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// FormatClock renders seconds as m:ss, the way the timer overlay shows it.
func FormatClock(sec int) string {
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}

// RunRestTimer runs the countdown full-screen and reports whether it ran
// to expiry (false means the user skipped). On expiry it rings the
// terminal bell when sound is enabled.
func RunRestTimer(seconds int, sound bool) (bool, error) {
	p := tea.NewProgram(NewRestModel(seconds), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m := finalModel.(RestModel)
	if m.expired {
		if sound {
			fmt.Print("\a")
		}
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s\n", green("Rest finished!"))
	}
	return m.expired, nil
}

// ProgressBar renders a static completion bar for plain (non-TUI) output.
func ProgressBar(percent int, width int) string {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = width
	return bar.ViewAs(float64(percent) / 100)
}
