// Package term provides the interactive TUI for the EMBER application store
// terminal. This file contains model construction and the backend tea.Cmds.
package term

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"

	"github.com/zyphonz/ember/cmd/ember/ui"
	"github.com/zyphonz/ember/internal/browser"
	"github.com/zyphonz/ember/internal/history"
	"github.com/zyphonz/ember/internal/logging"
	"github.com/zyphonz/ember/internal/store"
)

const (
	appVersion = "v0.1 indev"
	promptText = "[ember@terminal] ~/store $ "

	placeholderCommand  = "Type command..."
	placeholderResponse = "Enter response..."

	// Remote calls share one deadline; the UI stays responsive either way.
	requestTimeout = 30 * time.Second
)

// InitTerm creates the initial model for the terminal.
func InitTerm(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = placeholderCommand
	ti.Focus()
	ti.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	styles := ui.NewStyles(ui.ThemeByName(opts.Config.Theme))
	sp.Style = styles.Spinner

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// Degrade to plain text output.
		renderer = nil
	}

	sessionID := uuid.NewString()
	logging.Session("session %s starting", sessionID)

	return Model{
		textinput: ti,
		spinner:   sp,
		styles:    styles,
		renderer:  renderer,
		history:   []Entry{{Output: welcomeText(), Markdown: true, Time: time.Now()}},
		nav:       history.New(),
		inputMode: InputModeNormal,
		sessionID: sessionID,
		store:     opts.Store,
		auth:      opts.Auth,
		cfg:       opts.Config,
		isBooting: true,
	}
}

// Init starts the spinner, cursor blink, and the initial catalog load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.loadCatalog())
}

// =============================================================================
// SCROLLBACK HELPERS
// =============================================================================

// appendOutput records a command and its pre-styled output in the
// scrollback.
func (m *Model) appendOutput(command, output string) {
	m.history = append(m.history, Entry{Command: command, Output: output, Time: time.Now()})
	m.refreshViewport()
}

// appendMarkdown records a command whose output is markdown destined for
// the glamour renderer.
func (m *Model) appendMarkdown(command, output string) {
	m.history = append(m.history, Entry{Command: command, Output: output, Markdown: true, Time: time.Now()})
	m.refreshViewport()
}

// appendSystem records output with no command echo (boot lines, wizard
// prompts, async results).
func (m *Model) appendSystem(output string) {
	m.appendOutput("", output)
}

// refreshViewport re-renders the scrollback and pins the view to the bottom.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
}

// =============================================================================
// BACKEND COMMANDS
// =============================================================================

// loadCatalog fetches the remote document once at startup.
func (m Model) loadCatalog() tea.Cmd {
	st := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		doc, err := st.Load(ctx)
		return bootCompleteMsg{doc: doc, err: err}
	}
}

// saveCatalog pushes a snapshot of the current catalog to the remote store.
// The outcome rides along so the completion line can describe the mutation.
func (m Model) saveCatalog(outcome saveOutcome) tea.Cmd {
	st := m.store
	doc := store.FromCatalog(&m.catalog)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := st.Save(ctx, doc)
		return saveResultMsg{outcome: outcome, err: err}
	}
}

// openLink launches a URL in the default browser. Success is silent; the
// command handler already printed the "Opening ..." line.
func openLink(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.OpenURL(url); err != nil {
			return linkErrMsg{url: url, err: err}
		}
		return nil
	}
}

// welcomeText is the banner shown before the catalog finishes loading.
func welcomeText() string {
	return "**EMBER " + appVersion + " - Application Store Terminal**\n\n" +
		"Loading applications from database...\n\n" +
		"Type 'help' to see available commands.\n\n" +
		"Use arrow keys to navigate command history."
}
