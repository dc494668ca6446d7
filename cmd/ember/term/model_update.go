// Package term provides the interactive TUI for the EMBER application store
// terminal. This file contains the Update loop and input routing.
package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zyphonz/ember/internal/logging"
)

// Update handles all tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.KeyMsg:
		model, cmd, handled := m.handleKeyPress(msg)
		if handled {
			return model, cmd
		}
		m = model

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2
		footerHeight := 3
		vpHeight := msg.Height - headerHeight - footerHeight
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.textinput.Width = msg.Width - len(promptText) - 2
		m.refreshViewport()

	case spinner.TickMsg:
		if m.isBooting || m.isLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case bootCompleteMsg:
		m.isBooting = false
		if msg.err != nil {
			m.err = msg.err
			logging.Boot("catalog load failed: %v", msg.err)
			m.appendSystem(m.styles.Error.Render(fmt.Sprintf("Failed to load database: %v", msg.err)))
			m.refreshViewport()
			break
		}
		m.catalog = msg.doc.ToCatalog()
		logging.Boot("catalog loaded: %d applications, %d categories", m.catalog.Len(), len(m.catalog.Categories))
		if m.catalog.Len() > 0 {
			m.appendSystem(m.styles.Success.Render(fmt.Sprintf(
				"Database loaded: %d applications, %d categories",
				m.catalog.Len(), len(m.catalog.Categories))))
		}
		m.refreshViewport()

	case saveResultMsg:
		m.isLoading = false
		m.statusMessage = ""
		switch {
		case msg.err != nil && !msg.outcome.cleared:
			m.appendSystem(m.styles.Error.Render("Failed to save application to database"))
		case msg.err != nil:
			m.appendSystem(m.styles.Error.Render(fmt.Sprintf("Failed to save to database: %v", msg.err)))
		case msg.outcome.cleared:
			m.appendSystem(m.styles.Warning.Render("All data cleared from database"))
		default:
			m.appendSystem(m.styles.Success.Render(
				fmt.Sprintf("Application '%s' added successfully!", msg.outcome.appName)))
		}

	case linkErrMsg:
		m.appendSystem(m.styles.Error.Render(fmt.Sprintf("Failed to open %s: %v", msg.url, msg.err)))
	}

	// Forward remaining messages. Keys belong to the textinput; the
	// viewport's own bindings would otherwise swallow letters like j/k.
	var tiCmd, vpCmd tea.Cmd
	m.textinput, tiCmd = m.textinput.Update(msg)
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		m.viewport, vpCmd = m.viewport.Update(msg)
	}
	cmds = append(cmds, tiCmd, vpCmd)

	return m, tea.Batch(cmds...)
}

// handleSubmit processes an entered line. Every non-blank line is recorded
// in the command recall buffer, including wizard and credential responses.
func (m Model) handleSubmit() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.textinput.Value())
	if raw == "" && m.inputMode != InputModeWizard {
		// An empty line is meaningful only inside the wizard, where it
		// skips the optional link step.
		return m, nil
	}

	m.nav.Record(raw)
	m.textinput.Reset()

	logging.Command("[%s] mode=%d input=%q", m.sessionID, m.inputMode, raw)

	switch m.inputMode {
	case InputModeLogin:
		return m.handleLoginInput(raw)
	case InputModeWizard:
		return m.handleWizardInput(raw)
	default:
		return m.handleCommand(raw)
	}
}
