// Package term provides the interactive TUI for the EMBER application store
// terminal. This file contains the add-application wizard and the developer
// login flow. Both consume whole input lines; a line like "clear" is an
// answer here, never a command.
package term

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zyphonz/ember/internal/catalog"
	"github.com/zyphonz/ember/internal/logging"
)

// handleLoginInput consumes the "username password" line.
func (m Model) handleLoginInput(raw string) (Model, tea.Cmd) {
	m.inputMode = InputModeNormal
	m.textinput.Placeholder = placeholderCommand

	var username, password string
	fields := strings.Fields(raw)
	if len(fields) > 0 {
		username = fields[0]
	}
	if len(fields) > 1 {
		password = fields[1]
	}

	if m.auth.Authenticate(username, password) {
		m.devLoggedIn = true
		logging.Session("[%s] developer login", m.sessionID)
		m.appendSystem(m.styles.Success.Render("Developer login successful!"))
	} else {
		logging.Session("[%s] developer login rejected for %q", m.sessionID, username)
		m.appendSystem(m.styles.Error.Render("Invalid credentials"))
	}
	return m, nil
}

// handleWizardInput consumes one wizard answer and advances the step. An
// invalid rating re-prompts without advancing.
func (m Model) handleWizardInput(raw string) (Model, tea.Cmd) {
	w := m.wizard

	switch w.Step {

	case StepName:
		w.Draft.Name = raw
		w.Step = StepDescription
		m.appendSystem(m.styles.Info.Render("Enter application description:"))

	case StepDescription:
		w.Draft.Description = raw
		w.Step = StepRating
		m.appendSystem(m.styles.Info.Render("Enter rating (0-10):"))

	case StepRating:
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil || !catalog.ValidRating(rating) {
			m.appendSystem(m.styles.Error.Render("Invalid rating. Please enter a number between 0 and 10:"))
			return m, nil
		}
		w.Draft.Rating = rating
		w.Step = StepPrice
		m.appendSystem(m.styles.Info.Render("Enter price (e.g., $0.00):"))

	case StepPrice:
		w.Draft.Price = raw
		w.Step = StepLink
		m.appendSystem(m.styles.Info.Render("Enter link URL (optional, press enter to skip):"))

	case StepLink:
		w.Draft.Link = raw
		w.Step = StepTags
		m.appendSystem(m.styles.Info.Render("Enter tags (comma-separated):"))

	case StepTags:
		w.Draft.Tags = catalog.NormalizeTags(raw)
		return m.completeWizard()
	}

	return m, nil
}

// completeWizard finalizes the draft, appends it to the catalog, and kicks
// off the remote save. The success or failure line arrives with the save
// result.
func (m Model) completeWizard() (Model, tea.Cmd) {
	draft := m.wizard.Draft
	draft.ID = time.Now().UnixMilli()
	if draft.Price == "" {
		draft.Price = "$0.00"
	}
	if draft.Tags == nil {
		draft.Tags = []string{}
	}

	m.catalog.Append(draft)
	logging.Command("[%s] wizard created application %q (id=%d)", m.sessionID, draft.Name, draft.ID)

	m.wizard = nil
	m.inputMode = InputModeNormal
	m.textinput.Placeholder = placeholderCommand

	m.isLoading = true
	m.statusMessage = fmt.Sprintf("Saving '%s'...", draft.Name)
	return m, tea.Batch(m.spinner.Tick, m.saveCatalog(saveOutcome{appName: draft.Name}))
}
