// Package term provides the interactive TUI for the EMBER application store
// terminal. This file contains view rendering.
package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the full terminal frame.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.isBooting {
		return m.bootView()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.promptView())
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) bootView() string {
	content := fmt.Sprintf("%s EMBER LOADING...\n\n%s",
		m.spinner.View(),
		m.styles.Muted.Render("Fetching application database"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		m.styles.Title.Render(content))
}

func (m Model) headerView() string {
	title := m.styles.Header.Render("EMBER " + appVersion)
	badge := ""
	if m.devLoggedIn {
		badge = " " + m.styles.Badge.Render("DEV")
	}
	status := ""
	if m.isLoading {
		status = "  " + m.spinner.View() + " " + m.styles.Muted.Render(m.statusMessage)
	}
	return title + badge + status
}

func (m Model) promptView() string {
	return m.styles.Prompt.Render(promptText) + m.textinput.View()
}

func (m Model) footerView() string {
	hints := "enter: run · ↑/↓: history · pgup/pgdn: scroll · esc: quit"
	return m.styles.RenderDivider(m.width) + "\n" + m.styles.Footer.Render(hints)
}

// renderHistory produces the scrollback content. Command entries echo the
// prompt; system entries render output only.
func (m Model) renderHistory() string {
	var b strings.Builder
	for _, entry := range m.history {
		if entry.Command != "" {
			b.WriteString(m.styles.Prompt.Render(promptText))
			b.WriteString(m.styles.UserInput.Render(entry.Command))
			b.WriteString("\n")
		}
		if entry.Output != "" {
			if entry.Markdown {
				b.WriteString(m.safeRenderMarkdown(entry.Output))
			} else {
				b.WriteString(entry.Output)
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// safeRenderMarkdown renders markdown through glamour, falling back to the
// raw text if the renderer is unavailable or panics on odd input.
func (m Model) safeRenderMarkdown(content string) (out string) {
	if m.renderer == nil {
		return content
	}
	defer func() {
		if r := recover(); r != nil {
			out = content
		}
	}()
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n") + "\n"
}
