// Package term provides the interactive TUI for the EMBER application store
// terminal. This file contains keyboard input handling.
package term

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zyphonz/ember/internal/logging"
)

// handleKeyPress processes key messages. Returns handled=false to let the
// caller forward the key to the textinput.
func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.Type {

	case tea.KeyCtrlC, tea.KeyEsc:
		logging.Session("session %s quitting", m.sessionID)
		logging.CloseAll()
		return m, tea.Quit, true

	case tea.KeyEnter:
		// Submits are queued behind the boot screen; a save in flight does
		// not block further commands.
		if m.isBooting {
			return m, nil, true
		}
		model, cmd := m.handleSubmit()
		return model, cmd, true

	case tea.KeyUp:
		if line, ok := m.nav.Prev(); ok {
			m.textinput.SetValue(line)
			m.textinput.CursorEnd()
		}
		return m, nil, true

	case tea.KeyDown:
		if line, ok := m.nav.Next(); ok {
			m.textinput.SetValue(line)
			m.textinput.CursorEnd()
		}
		return m, nil, true

	case tea.KeyPgUp, tea.KeyPgDown:
		// Scrollback paging goes to the viewport.
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd, true
	}

	return m, nil, false
}
