// Command grafo is an interactive terminal workbench for weighted
// graphs: build or load a graph, then query connectivity, shortest
// paths, spanning trees, flows, matchings and grid routes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grafo-dev/grafo/internal/config"
	"github.com/grafo-dev/grafo/internal/logging"
	"github.com/grafo-dev/grafo/internal/repl"
)

type focus int

const (
	focusPrompt focus = iota
	focusViewport
)

type model struct {
	prompt   textinput.Model
	viewport viewport.Model
	focus    focus
	session  *repl.Session
	history  []string
	status   string
	errText  string
	width    int
	height   int
	ready    bool
	accent   lipgloss.Style
	errStyle lipgloss.Style
	faint    lipgloss.Style
}

func initialModel(cfg config.Config, session *repl.Session) model {
	ti := textinput.New()
	ti.Placeholder = "type a command, e.g. create 5 undirected"
	ti.Prompt = "grafo> "
	ti.Focus()

	return model{
		prompt:   ti,
		focus:    focusPrompt,
		session:  session,
		status:   "no graph yet — type 'help' for commands",
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.AccentColor)).Bold(true),
		errStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		faint:    lipgloss.NewStyle().Faint(true),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 2 // prompt + divider
		footerHeight := 1 // status bar
		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, viewportHeight)
			m.ready = true
			m.viewport.SetContent(strings.Join(m.history, "\n"))
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}
		m.prompt.Width = m.width - len(m.prompt.Prompt) - 2
		return m, nil
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyTab:
		return m.toggleFocus(), nil
	}

	if m.focus == focusPrompt {
		if msg.Type == tea.KeyEnter {
			return m.submit()
		}
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	// Viewport focused: plain keys scroll the output history.
	if msg.String() == "q" {
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// submit evaluates the prompt's line in the session and appends the
// exchange to the scrollback.
func (m model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.prompt.Value())
	if line == "" {
		return m, nil
	}
	m.prompt.SetValue("")

	out, err := m.session.Eval(line)
	if errors.Is(err, repl.ErrExit) {
		return m, tea.Quit
	}

	m.history = append(m.history, m.accent.Render("grafo> ")+line)
	if err != nil {
		m.errText = err.Error()
		m.history = append(m.history, m.errStyle.Render(err.Error()))
	} else {
		m.errText = ""
		if out != "" {
			m.history = append(m.history, out)
		}
	}
	m.status = m.graphStatus()

	if m.ready {
		m.viewport.SetContent(strings.Join(m.history, "\n"))
		m.viewport.GotoBottom()
	}
	return m, nil
}

func (m model) graphStatus() string {
	g := m.session.Graph()
	if g == nil {
		return "no graph yet — type 'help' for commands"
	}
	mode := "undirected"
	if g.Directed() {
		mode = "directed"
	}
	return fmt.Sprintf("%s | %d vertices | %d edges", mode, g.VertexCount(), g.EdgeCount())
}

func (m model) toggleFocus() model {
	if m.focus == focusPrompt {
		m.focus = focusViewport
		m.prompt.Blur()
	} else {
		m.focus = focusPrompt
		m.prompt.Focus()
	}
	return m
}

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	promptStyle := lipgloss.NewStyle().Padding(0, 1).Width(m.width)
	if m.focus == focusPrompt {
		promptStyle = promptStyle.Bold(true)
	}
	b.WriteString(promptStyle.Render(m.prompt.View()))
	b.WriteByte('\n')

	b.WriteString(strings.Repeat("─", m.width))
	b.WriteByte('\n')

	b.WriteString(m.viewport.View())
	b.WriteByte('\n')

	b.WriteString(m.statusBarView())

	return b.String()
}

func (m model) statusBarView() string {
	style := lipgloss.NewStyle().Width(m.width).Padding(0, 1)

	if m.errText != "" {
		return style.Foreground(lipgloss.Color("9")).Render("Error: " + m.errText)
	}

	scroll := fmt.Sprintf("%d%%", int(m.viewport.ScrollPercent()*100))
	return style.Render(m.status + "  " + m.faint.Render(scroll))
}

func main() {
	configPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// The terminal belongs to the TUI, so logs go to a file or nowhere.
	log := logging.Nop()
	if path := os.Getenv("GRAFO_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		log = logging.New(cfg.Log.Format, cfg.Log.Level, f)
	}

	session := repl.NewSession(cfg, log)
	p := tea.NewProgram(
		initialModel(cfg, session),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
