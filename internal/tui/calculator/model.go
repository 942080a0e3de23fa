// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     calculator
// Description: Main Bubbletea model for the interactive calculator shell
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

// Package calculator implements the interactive calculator shell as a
// Bubbletea TUI. The shell owns the session history and the recovery policy:
// every failure the calculation core raises is presented to the user and the
// input loop continues.
package calculator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/gcalc/internal/calculation"
	"github.com/msto63/gcalc/internal/core/calcerr"
	"github.com/msto63/gcalc/internal/core/log"
	"github.com/msto63/gcalc/internal/history"
)

// Config holds calculator shell configuration.
type Config struct {
	Prompt       string
	Welcome      string
	NoColor      bool
	HistoryLimit int

	// Registry defaults to calculation.Default() when nil.
	Registry *calculation.Registry

	// Logger defaults to a discard logger so nothing bleeds into the TUI.
	Logger *log.Logger
}

// Model is the main Bubbletea model for the calculator shell.
type Model struct {
	// State
	width  int
	height int
	ready  bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Session state
	registry   *calculation.Registry
	history    *history.Store
	transcript []string
	prompt     string
	noColor    bool

	logger *log.Logger
}

// New creates a new calculator shell model.
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "<operation> <num1> <num2>  |  help, history, clear, exit"
	ti.Prompt = cfg.Prompt
	if ti.Prompt == "" {
		ti.Prompt = ">> "
	}
	ti.Focus()
	ti.CharLimit = 256

	registry := cfg.Registry
	if registry == nil {
		registry = calculation.Default()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Discard()
	}

	welcome := cfg.Welcome
	if welcome == "" {
		welcome = "Welcome to the gCalc interactive calculator!"
	}

	m := Model{
		input:    ti,
		registry: registry,
		history:  history.NewStore(cfg.HistoryLimit),
		prompt:   ti.Prompt,
		noColor:  cfg.NoColor,
		logger:   logger.WithName("shell"),
	}

	m.pushSystem(welcome)
	m.pushSystem("Type 'help' for instructions or 'exit' to quit.")

	return m
}

// Run starts the calculator shell and blocks until the user exits.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlL:
			m.transcript = nil
			m.refreshViewport()
			return m, nil
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			return m.handleLine(line)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 5
		viewportHeight := msg.Height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - 8
		m.refreshViewport()
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleLine processes one submitted input line.
func (m Model) handleLine(raw string) (tea.Model, tea.Cmd) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return m, nil
	}

	m.pushEcho(trimmed)

	switch parseCommand(trimmed) {
	case commandHelp:
		m.pushSystem(helpText(m.registry.Names()))
		m.refreshViewport()
		return m, nil

	case commandHistory:
		m.pushHistory()
		m.refreshViewport()
		return m, nil

	case commandClear:
		m.transcript = nil
		m.refreshViewport()
		return m, nil

	case commandExit:
		m.pushSystem("Exiting calculator. Goodbye!")
		m.refreshViewport()
		return m, tea.Quit
	}

	m.evaluate(trimmed)
	m.refreshViewport()
	return m, nil
}

// evaluate parses a calculation line, runs it via the registry and records
// the outcome. All core failures are recoverable here: they are printed and
// the loop continues.
func (m *Model) evaluate(line string) {
	op, a, b, err := parseLine(line)
	if err != nil {
		m.pushError(err)
		m.pushSystem("Type 'help' for more information.")
		return
	}

	calc, err := m.registry.Create(op, a, b)
	if err != nil {
		m.logger.Warn("operation rejected", log.Fields{"operation": op})
		m.pushError(err)
		m.pushSystem("Type 'help' to see the list of supported operations.")
		return
	}

	desc, err := calc.Describe()
	if err != nil {
		m.logger.Warn("calculation failed", log.Fields{"calculation": calc.String(), "error": err})
		m.pushError(err)
		if calcerr.HasCode(err, calcerr.CodeDivisionByZero) {
			m.pushSystem("Please enter a non-zero divisor.")
		}
		return
	}

	m.history.Append(calc, desc)
	m.logger.Info("calculation executed", log.Fields{"calculation": desc})
	m.pushResult("Result: " + desc)
}

// pushEcho records the user's input line in the transcript.
func (m *Model) pushEcho(line string) {
	m.transcript = append(m.transcript, m.style(PromptStyle, m.prompt+line))
}

// pushResult records a successful result line.
func (m *Model) pushResult(line string) {
	m.transcript = append(m.transcript, m.style(ResultStyle, line))
}

// pushError records a failure. The error's own wording is preserved since
// users and tests match on it.
func (m *Model) pushError(err error) {
	msg := err.Error()
	var ce *calcerr.Error
	if errors.As(err, &ce) {
		msg = ce.Message()
	}
	m.transcript = append(m.transcript, m.style(ErrorStyle, msg))
}

// pushSystem records an informational line.
func (m *Model) pushSystem(line string) {
	m.transcript = append(m.transcript, m.style(SystemStyle, line))
}

// pushHistory renders the session history into the transcript.
func (m *Model) pushHistory() {
	entries := m.history.Entries()
	if len(entries) == 0 {
		m.pushSystem("No calculations performed yet.")
		return
	}

	m.pushSystem("Calculation History:")
	for i, entry := range entries {
		m.pushSystem(fmt.Sprintf("%d. %s", i+1, entry.Description))
	}
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

// style applies a lipgloss style unless color output is disabled.
func (m *Model) style(s interface{ Render(...string) string }, line string) string {
	if m.noColor {
		return line
	}
	return s.Render(line)
}

// View renders the shell.
func (m Model) View() string {
	if !m.ready {
		return "Starting gCalc..."
	}

	header := LogoStyle.Render(Logo) + " " + SubHeaderStyle.Render("interactive calculator")
	if m.noColor {
		header = Logo + " interactive calculator"
	}

	transcript := TranscriptPanelStyle.Width(m.width - 2).Render(m.viewport.View())
	input := InputStyle.Width(m.width - 2).Render(m.input.View())

	help := HelpStyle.Render(strings.Join([]string{
		RenderKeyHint("Enter", "evaluate"),
		RenderKeyHint("Ctrl+L", "clear"),
		RenderKeyHint("Ctrl+C", "exit"),
	}, "  "))
	if m.noColor {
		help = "Enter evaluate  Ctrl+L clear  Ctrl+C exit"
	}

	return strings.Join([]string{header, transcript, input, help}, "\n")
}

// helpText builds the usage text shown for the help command.
func helpText(operations []string) string {
	var b strings.Builder

	b.WriteString("Calculator Help\n")
	b.WriteString("---------------\n")
	b.WriteString("Usage:\n")
	b.WriteString("    <operation> <number1> <number2>\n")
	b.WriteString("    Supported operations: ")
	b.WriteString(strings.Join(operations, ", "))
	b.WriteString("\n\n")
	b.WriteString("Special commands:\n")
	b.WriteString("    help      Display this help message.\n")
	b.WriteString("    history   Show the history of calculations.\n")
	b.WriteString("    clear     Clear the transcript.\n")
	b.WriteString("    exit      Exit the calculator.\n\n")
	b.WriteString("Examples:\n")
	b.WriteString("    add 10 5\n")
	b.WriteString("    subtract 15.5 3.2\n")
	b.WriteString("    multiply 7 8\n")
	b.WriteString("    divide 20 4")

	return b.String()
}
