package tui

import (
	"fmt"
	"strings"
	"time"

	"photodater/internal/domain"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseScanning Phase = iota
	PhaseConfirm
	PhaseExecuting
	PhaseDone
	PhaseError
)

// Messages for the TUI
type (
	ScanProgressMsg struct {
		Current int
		Total   int
	}
	PlanReadyMsg struct {
		Plan domain.MovePlan
	}
	MoveProgressMsg struct {
		Current int
		Total   int
		File    string
	}
	MoveDoneMsg struct {
		Moved int
	}
	ErrorMsg struct {
		Err error
	}
	ConfirmMsg struct{ Confirmed bool }
	tickMsg    time.Time
)

// ExecuteMoveFunc starts the planned moves. It runs them in a goroutine
// and sends progress/done messages back into the program.
type ExecuteMoveFunc func(plan domain.MovePlan) tea.Cmd

// Config for the TUI
type Config struct {
	Directory   string
	DryRun      bool
	ExecuteMove ExecuteMoveFunc
}

// Model is the main TUI model
type Model struct {
	config           Config
	Phase            Phase
	Plan             domain.MovePlan
	spinner          spinner.Model
	progress         progress.Model
	scanCurrent      int
	scanTotal        int
	moveProgress     int
	moveTotal        int
	currentFile      string
	moved            int
	confirmSelection bool // true = yes, false = no
	Err              error
	Quitting         bool
	width            int
	height           int
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:           cfg,
		Phase:            PhaseScanning,
		spinner:          s,
		progress:         p,
		confirmSelection: false, // default to No
		width:            80,
		height:           24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "left", "h", "y", "Y":
			if m.Phase == PhaseConfirm {
				m.confirmSelection = true
			}
		case "right", "l", "n", "N":
			if m.Phase == PhaseConfirm {
				m.confirmSelection = false
			}
		case "enter":
			if m.Phase == PhaseConfirm {
				return m, func() tea.Msg {
					return ConfirmMsg{Confirmed: m.confirmSelection}
				}
			}
			if m.Phase == PhaseDone || m.Phase == PhaseError {
				return m, tea.Quit
			}
		}

	case ScanProgressMsg:
		m.scanCurrent = msg.Current
		m.scanTotal = msg.Total
		return m, nil

	case PlanReadyMsg:
		m.Plan = msg.Plan
		if m.config.DryRun || len(m.Plan.Steps) == 0 {
			m.Phase = PhaseDone
		} else {
			m.Phase = PhaseConfirm
		}
		return m, nil

	case ConfirmMsg:
		if !msg.Confirmed {
			m.Quitting = true
			return m, tea.Quit
		}
		m.Phase = PhaseExecuting
		if m.config.ExecuteMove != nil {
			return m, tea.Batch(tickCmd(), m.config.ExecuteMove(m.Plan))
		}
		return m, nil

	case MoveProgressMsg:
		m.moveProgress = msg.Current
		m.moveTotal = msg.Total
		m.currentFile = msg.File
		return m, nil

	case MoveDoneMsg:
		m.Phase = PhaseDone
		m.moved = msg.Moved
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseScanning || m.Phase == PhaseExecuting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case tickMsg:
		if m.Phase == PhaseExecuting {
			var cmds []tea.Cmd
			if m.moveTotal > 0 {
				cmds = append(cmds, m.progress.SetPercent(float64(m.moveProgress)/float64(m.moveTotal)))
			}
			cmds = append(cmds, tickCmd(), m.spinner.Tick)
			return m, tea.Batch(cmds...)
		}
	}

	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseScanning:
		b.WriteString(m.renderScanning())
	case PhaseConfirm:
		b.WriteString(m.renderPreview())
		b.WriteString("\n")
		b.WriteString(m.renderConfirmPrompt())
	case PhaseExecuting:
		b.WriteString(m.renderPreview())
		b.WriteString("\n")
		b.WriteString(m.renderExecution())
	case PhaseDone:
		b.WriteString(m.renderPreview())
		if !m.config.DryRun && m.moved > 0 {
			b.WriteString("\n")
			b.WriteString(m.renderCompletion())
		}
		if m.config.DryRun {
			b.WriteString("\n")
			b.WriteString(highlightBoxStyle.Render("🔍 Dry Run - No files were moved"))
		}
	case PhaseError:
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("📂 photodater")
	subtitle := subtitleStyle.Render("Move photos into per-day directories")

	dim := lipgloss.NewStyle().Foreground(dimTextColor)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		dim.Render(fmt.Sprintf("%s Directory: %s", iconFolder, m.config.Directory)),
	)
}

func (m Model) renderScanning() string {
	if m.scanTotal > 0 {
		percent := float64(m.scanCurrent) / float64(m.scanTotal)
		countStyle := lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
		percentStyle := lipgloss.NewStyle().Foreground(dimTextColor)

		return fmt.Sprintf("%s Scanning photos...\n\n  %s\n  %s %s",
			m.spinner.View(),
			m.progress.ViewAs(percent),
			countStyle.Render(fmt.Sprintf("%d/%d", m.scanCurrent, m.scanTotal)),
			percentStyle.Render(fmt.Sprintf("(%.0f%%)", percent*100)),
		)
	}
	return fmt.Sprintf("%s Scanning photos...", m.spinner.View())
}

func (m Model) renderPreview() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Planned Moves"))
	b.WriteString("\n\n")

	if len(m.Plan.Steps) == 0 {
		dim := lipgloss.NewStyle().Foreground(dimTextColor)
		b.WriteString(dim.Render("  Nothing to move"))
		b.WriteString("\n")
	} else {
		for _, line := range formatMoveList(m.Plan.Steps, 6) {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderSummary())

	return b.String()
}

func (m Model) renderSummary() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Summary"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s  %d\n", statLabelStyle.Render("Files to move:"), len(m.Plan.Steps)))
	b.WriteString(fmt.Sprintf("  %s  %d\n", statLabelStyle.Render("Day directories:"), len(m.Plan.Dirs)))
	if len(m.Plan.Skipped) > 0 {
		dim := lipgloss.NewStyle().Foreground(dimTextColor)
		b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Skipped (no date):"),
			dim.Render(fmt.Sprintf("%s %d", iconSkipped, len(m.Plan.Skipped)))))
	}

	return b.String()
}

func (m Model) renderConfirmPrompt() string {
	prompt := confirmPromptStyle.Render(fmt.Sprintf("Move %d files into %d directories?", len(m.Plan.Steps), len(m.Plan.Dirs)))

	var yesBtn, noBtn string
	if m.confirmSelection {
		yesBtn = highlightBoxStyle.
			Background(lipgloss.Color("#2D5A27")).
			Render(" Yes ")
		noBtn = boxStyle.Render(" No ")
	} else {
		yesBtn = boxStyle.Render(" Yes ")
		noBtn = highlightBoxStyle.
			Background(lipgloss.Color("#5A2727")).
			Render(" No ")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, yesBtn, "  ", noBtn)

	return lipgloss.JoinVertical(lipgloss.Left, prompt, "", buttons)
}

func (m Model) renderExecution() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Moving Files"))
	b.WriteString("\n\n")

	percent := 0.0
	if m.moveTotal > 0 {
		percent = float64(m.moveProgress) / float64(m.moveTotal)
	}

	b.WriteString(fmt.Sprintf("  %s Moving...\n\n", m.spinner.View()))
	b.WriteString(fmt.Sprintf("  %s\n", m.progress.ViewAs(percent)))

	countStyle := lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	percentStyle := lipgloss.NewStyle().Foreground(dimTextColor)

	b.WriteString(fmt.Sprintf("  %s %s\n",
		countStyle.Render(fmt.Sprintf("%d/%d files", m.moveProgress, m.moveTotal)),
		percentStyle.Render(fmt.Sprintf("(%.0f%%)", percent*100)),
	))

	if m.currentFile != "" {
		b.WriteString(fmt.Sprintf("\n  %s %s\n",
			iconArrow,
			fileNameStyle.Render(m.currentFile),
		))
	}

	return b.String()
}

func (m Model) renderCompletion() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Move Complete"))
	b.WriteString("\n\n")

	icon := successStyle.Render(iconSuccess)
	b.WriteString(fmt.Sprintf("  %s %s\n\n", icon, successStyle.Render("All files moved!")))
	b.WriteString(fmt.Sprintf("  %s  %d\n", statLabelStyle.Render("Files moved:"), m.moved))
	b.WriteString(fmt.Sprintf("  %s  %d\n", statLabelStyle.Render("Day directories:"), len(m.Plan.Dirs)))

	return b.String()
}

func (m Model) renderError() string {
	icon := errorStyle.Render(iconError)
	msg := errorStyle.Render(fmt.Sprintf("Error: %s", m.Err.Error()))

	return highlightBoxStyle.
		BorderForeground(errorColor).
		Render(fmt.Sprintf("%s %s", icon, msg))
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseScanning:
		help = "Press q to quit"
	case PhaseConfirm:
		help = "← → or y/n to select • Enter to confirm • q to quit"
	case PhaseExecuting:
		help = "Moving files... Please wait"
	case PhaseDone:
		help = "Press Enter to exit"
	case PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}

// formatMoveList formats planned moves for display, truncating the middle.
func formatMoveList(steps []domain.MoveStep, maxItems int) []string {
	if len(steps) == 0 {
		return []string{}
	}

	format := func(step domain.MoveStep) string {
		name := fileNameStyle.Render(step.Entry.Name)
		day := dateStyle.Render(domain.DateOf(step.Entry.TakenAt).String() + "/")
		return fmt.Sprintf("%s %s  %s %s", iconMove, name, iconArrow, day)
	}

	if len(steps) <= maxItems {
		lines := make([]string, 0, len(steps))
		for _, step := range steps {
			lines = append(lines, format(step))
		}
		return lines
	}

	half := maxItems / 2
	lines := make([]string, 0, maxItems+1)
	for _, step := range steps[:half] {
		lines = append(lines, format(step))
	}
	dim := lipgloss.NewStyle().Foreground(dimTextColor)
	lines = append(lines, dim.Render(fmt.Sprintf("... %d more files ...", len(steps)-maxItems)))
	for _, step := range steps[len(steps)-half:] {
		lines = append(lines, format(step))
	}
	return lines
}
