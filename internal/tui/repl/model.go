// ============================================================================
// minidecl - Declaration Lexer & Parser
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model for the interactive declaration REPL
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package repl

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	mdwlog "github.com/msto63/minidecl/foundation/core/log"
	"github.com/msto63/minidecl/foundation/decl"
	mdwstringx "github.com/msto63/minidecl/foundation/utils/stringx"
	"github.com/msto63/minidecl/internal/render"
	"github.com/msto63/minidecl/internal/tui"
	"github.com/msto63/minidecl/pkg/core/version"
)

// Config holds REPL configuration
type Config struct {
	Engine      decl.Options
	Logger      *mdwlog.Logger
	Prompt      string
	HistorySize int
	Color       bool
	ShowTokens  bool
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Prompt:      "decl> ",
		HistorySize: 100,
		Color:       true,
	}
}

// Model is the main Bubbletea model for the REPL
type Model struct {
	// State
	width      int
	height     int
	ready      bool
	showTokens bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Session
	sessionID   string
	engine      *decl.Engine
	renderer    *render.Renderer
	logger      *mdwlog.Logger
	history     []Entry
	historySize int
	submitted   int
}

// New creates a new REPL model with its own session ID
func New(cfg Config) (Model, error) {
	if cfg.Logger == nil {
		cfg.Logger = mdwlog.GetDefault()
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = DefaultConfig().HistorySize
	}

	sessionID := uuid.NewString()
	logger := cfg.Logger.WithName("repl").WithCorrelationID(sessionID)

	engineOpts := cfg.Engine
	engineOpts.Logger = logger
	engine, err := decl.New(engineOpts)
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Prompt = mdwstringx.FirstNonBlank(cfg.Prompt, DefaultConfig().Prompt)
	ti.Placeholder = "int result = 10 + 20;"
	ti.CharLimit = charLimit(engineOpts)
	ti.Focus()

	logger.Info("REPL session started")

	return Model{
		input:       ti,
		sessionID:   sessionID,
		engine:      engine,
		renderer:    render.New(cfg.Color),
		logger:      logger,
		historySize: cfg.HistorySize,
		showTokens:  cfg.ShowTokens,
	}, nil
}

func charLimit(opts decl.Options) int {
	if opts.MaxInputLength > 0 {
		return opts.MaxInputLength
	}
	return decl.DefaultMaxInputLength
}

// SessionID returns the correlation ID of this session
func (m Model) SessionID() string {
	return m.sessionID
}

// History returns the retained entries, oldest first
func (m Model) History() []Entry {
	out := make([]Entry, len(m.history))
	copy(out, m.history)
	return out
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.logger.Info("REPL session ended", mdwlog.Fields{"statements": m.submitted})
			return m, tea.Quit

		case tea.KeyEnter:
			return m.submit()

		case tea.KeyCtrlL:
			m.history = nil
			m.updateViewportContent()
			return m, nil

		case tea.KeyCtrlT:
			m.showTokens = !m.showTokens
			return m, nil

		case tea.KeyPgUp, tea.KeyPgDown:
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2 // Title + blank line
		footerHeight := 3 // Input + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - lipgloss.Width(m.input.Prompt) - 1
		m.updateViewportContent()

	case parsedMsg:
		m.record(msg)
		m.updateViewportContent()
		if m.ready {
			m.viewport.GotoBottom()
		}
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit takes the input line and schedules parsing it
func (m Model) submit() (tea.Model, tea.Cmd) {
	source := m.input.Value()
	if mdwstringx.IsBlank(source) {
		return m, nil
	}

	m.input.SetValue("")
	m.submitted++

	engine := m.engine
	return m, func() tea.Msg {
		result, err := engine.Parse(source)
		return parsedMsg{input: source, result: result, err: err}
	}
}

// record renders a parse outcome into the bounded history
func (m *Model) record(msg parsedMsg) {
	var out strings.Builder

	if m.showTokens && msg.result != nil {
		out.WriteString(m.renderer.Tokens(msg.result.Tokens))
	}

	entry := Entry{Input: msg.input, OK: msg.err == nil}
	if msg.err != nil {
		out.WriteString(m.renderer.Error(msg.input, msg.err))
	} else {
		out.WriteString(m.renderer.Tree(msg.result.Root))
	}
	entry.Output = out.String()

	m.history = append(m.history, entry)
	if over := len(m.history) - m.historySize; over > 0 {
		m.history = append([]Entry(nil), m.history[over:]...)
	}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Starting REPL..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderHeader() string {
	title := tui.RenderTitle("minidecl " + version.REPL)
	session := tui.SubtitleStyle.Render("session " + m.sessionID[:8])

	tokens := ""
	if m.showTokens {
		tokens = "  " + tui.SuccessMessageStyle.Render("[tokens]")
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", session, tokens)
}

func (m Model) renderHelpBar() string {
	items := []string{
		tui.RenderKeyHint("Enter", "parse"),
		tui.RenderKeyHint("Ctrl+T", "tokens"),
		tui.RenderKeyHint("Ctrl+L", "clear"),
		tui.RenderKeyHint("PgUp/PgDn", "scroll"),
		tui.RenderKeyHint("Esc", "quit"),
	}
	return strings.Join(items, "  ")
}

// updateViewportContent renders the history into the viewport
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}

	var content strings.Builder
	for _, entry := range m.history {
		content.WriteString(tui.InputEchoStyle.Render(m.input.Prompt + entry.Input))
		content.WriteString("\n")
		content.WriteString(entry.Output)
		content.WriteString("\n")
	}

	if len(m.history) == 0 {
		content.WriteString(tui.RenderHelp(fmt.Sprintf("Type a declaration such as %q and press Enter.", "int x = 1 + 2;")))
	}

	m.viewport.SetContent(content.String())
}

// Run starts the REPL TUI
func Run(cfg Config) error {
	model, err := New(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
