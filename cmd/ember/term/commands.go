// Package term provides the interactive TUI for the EMBER application store
// terminal. This file contains command dispatch and output rendering.
package term

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zyphonz/ember/internal/catalog"
	"github.com/zyphonz/ember/internal/logging"
	"github.com/zyphonz/ember/internal/store"
)

const (
	downloadTarURL = "https://github.com/zyphonzz/ember/raw/refs/heads/main/ember_local.tar.gz"
	downloadZipURL = "https://github.com/zyphonzz/ember/raw/refs/heads/main/ember_local.zip"

	exportFilename = "ember-data.json"
)

// handleCommand dispatches a normal-mode input line.
func (m Model) handleCommand(raw string) (Model, tea.Cmd) {
	cmd := parseLine(raw)
	logging.Command("[%s] verb=%d args=%v", m.sessionID, cmd.Verb, cmd.Args)

	switch cmd.Verb {

	case VerbHelp:
		m.appendMarkdown(raw, m.helpText())

	case VerbList:
		m.appendMarkdown(raw, renderApplicationList(m.catalog.Applications))

	case VerbCategories:
		m.appendMarkdown(raw, categoriesText(m.catalog.Categories))

	case VerbStats:
		m.appendMarkdown(raw, statsText(catalog.Summarize(m.catalog.Applications, m.catalog.Categories)))

	case VerbFilter:
		if len(cmd.Args) == 0 {
			return m.commandNotFound(raw)
		}
		filtered := catalog.Filter(m.catalog.Applications, cmd.Args[0])
		m.appendMarkdown(raw, renderApplicationList(filtered))

	case VerbSearch:
		if len(cmd.Args) == 0 {
			return m.commandNotFound(raw)
		}
		filtered := catalog.Search(m.catalog.Applications, strings.Join(cmd.Args, " "))
		m.appendMarkdown(raw, renderApplicationList(filtered))

	case VerbShow:
		if len(cmd.Args) == 0 {
			return m.commandNotFound(raw)
		}
		name := strings.Join(cmd.Args, " ")
		app, ok := catalog.Find(m.catalog.Applications, name)
		if !ok {
			m.appendOutput(raw, m.styles.Error.Render("Application not found: "+name))
			break
		}
		m.appendMarkdown(raw, renderAppDetails(app))

	case VerbOpen:
		if len(cmd.Args) == 0 {
			return m.commandNotFound(raw)
		}
		return m.handleOpen(raw, strings.Join(cmd.Args, " "))

	case VerbCopy:
		if len(cmd.Args) == 0 {
			return m.commandNotFound(raw)
		}
		return m.handleCopy(raw, strings.Join(cmd.Args, " "))

	case VerbDownload:
		m.appendMarkdown(raw, downloadText())
		return m, tea.Batch(openLink(downloadTarURL), openLink(downloadZipURL))

	case VerbNeofetch:
		m.appendMarkdown(raw, m.neofetchText())

	case VerbClear:
		m.history = nil
		m.refreshViewport()

	case VerbDev:
		return m.handleDev(raw, cmd.Args)

	default:
		return m.commandNotFound(raw)
	}

	return m, nil
}

// commandNotFound prints the standard unknown-command line.
func (m Model) commandNotFound(raw string) (Model, tea.Cmd) {
	m.appendOutput(raw, m.styles.Error.Render(
		fmt.Sprintf("Command not found: %s. Type 'help' for available commands.", raw)))
	return m, nil
}

// handleOpen resolves an application and launches its link.
func (m Model) handleOpen(raw, name string) (Model, tea.Cmd) {
	app, ok := catalog.Find(m.catalog.Applications, name)
	switch {
	case ok && app.HasLink():
		m.appendOutput(raw, m.styles.Success.Render(fmt.Sprintf("Opening %s...", app.Name)))
		return m, openLink(app.Link)
	case ok:
		m.appendOutput(raw, m.styles.Error.Render("No link available for "+app.Name))
	default:
		m.appendOutput(raw, m.styles.Error.Render("Application not found: "+name))
	}
	return m, nil
}

// handleCopy puts an application's link on the system clipboard.
func (m Model) handleCopy(raw, name string) (Model, tea.Cmd) {
	app, ok := catalog.Find(m.catalog.Applications, name)
	switch {
	case ok && app.HasLink():
		if err := clipboard.WriteAll(app.Link); err != nil {
			m.appendOutput(raw, m.styles.Error.Render(fmt.Sprintf("Clipboard unavailable: %v", err)))
			break
		}
		m.appendOutput(raw, m.styles.Success.Render(fmt.Sprintf("Link for %s copied to clipboard", app.Name)))
	case ok:
		m.appendOutput(raw, m.styles.Error.Render("No link available for "+app.Name))
	default:
		m.appendOutput(raw, m.styles.Error.Render("Application not found: "+name))
	}
	return m, nil
}

// handleDev routes the dev subcommands. Everything except login sits behind
// the credential gate.
func (m Model) handleDev(raw string, args []string) (Model, tea.Cmd) {
	if len(args) > 0 && args[0] == "login" {
		m.appendOutput(raw, m.styles.Warning.Render("Developer Authentication Required")+
			"\n"+m.styles.Body.Render("Enter credentials (username password):"))
		m.inputMode = InputModeLogin
		m.textinput.Placeholder = placeholderResponse
		return m, nil
	}

	if !m.devLoggedIn {
		m.appendOutput(raw, m.styles.Error.Render("Access denied. Use 'dev login' first."))
		return m, nil
	}

	if len(args) == 0 {
		return m.commandNotFound(raw)
	}

	switch args[0] {

	case "add":
		m.appendOutput(raw, m.styles.Success.Render("Starting application creation wizard..."))
		m.inputMode = InputModeWizard
		m.wizard = NewWizard()
		m.textinput.Placeholder = placeholderResponse
		m.appendSystem(m.styles.Info.Render("Enter application name:"))
		return m, nil

	case "logout":
		m.devLoggedIn = false
		logging.Session("[%s] developer logout", m.sessionID)
		m.appendOutput(raw, m.styles.Success.Render("Logged out from developer panel"))
		return m, nil

	case "export":
		doc := store.FromCatalog(&m.catalog)
		if err := store.WriteExport(exportFilename, doc); err != nil {
			m.appendOutput(raw, m.styles.Error.Render(fmt.Sprintf("Export failed: %v", err)))
			return m, nil
		}
		m.appendOutput(raw, m.styles.Success.Render("Data exported to "+exportFilename))
		return m, nil

	case "clear":
		m.catalog.Clear()
		m.appendOutput(raw, m.styles.Muted.Render("Clearing all data from database..."))
		m.isLoading = true
		m.statusMessage = "Saving..."
		return m, tea.Batch(m.spinner.Tick, m.saveCatalog(saveOutcome{cleared: true}))

	default:
		return m.commandNotFound(raw)
	}
}

// =============================================================================
// OUTPUT RENDERERS
// =============================================================================

func (m Model) helpText() string {
	var sb strings.Builder
	sb.WriteString("**EMBER " + appVersion + " - Available Commands:**\n\n")
	sb.WriteString("- `list` or `ls` - Show all applications\n")
	sb.WriteString("- `filter <category>` - Filter apps by category\n")
	sb.WriteString("- `search <query>` - Search applications\n")
	sb.WriteString("- `show <app_name>` - Show detailed app info\n")
	sb.WriteString("- `open <app_name>` - Open application link\n")
	sb.WriteString("- `copy <app_name>` - Copy application link to clipboard\n")
	sb.WriteString("- `categories` - List all categories\n")
	sb.WriteString("- `stats` - Show database statistics\n")
	sb.WriteString("- `download` - Download EMBER local files\n\n")
	sb.WriteString("**Developer Commands:**\n\n")
	sb.WriteString("- `dev login` - Access developer panel\n")
	sb.WriteString("- `dev add` - Add new application (requires login)\n")
	sb.WriteString("- `dev export` - Export all data (requires login)\n")
	sb.WriteString("- `dev clear` - Clear all data (requires login)\n")
	sb.WriteString("- `dev logout` - Logout from developer panel\n\n")
	sb.WriteString("**System Commands:**\n\n")
	sb.WriteString("- `clear` - Clear terminal\n")
	sb.WriteString("- `neofetch` - Show system info\n")
	return sb.String()
}

// renderApplicationList renders the shared list layout used by list, filter,
// and search.
func renderApplicationList(apps []catalog.Application) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**Applications (%d found):**\n\n", len(apps)))
	if len(apps) == 0 {
		sb.WriteString("No applications found\n")
		return sb.String()
	}
	for _, app := range apps {
		sb.WriteString(fmt.Sprintf("- **%s** ★%g/10 %s\n", app.Name, app.Rating, app.Price))
		if app.Description != "" {
			sb.WriteString("  " + app.Description + "\n")
		}
		if len(app.Tags) > 0 {
			upper := make([]string, len(app.Tags))
			for i, t := range app.Tags {
				upper[i] = strings.ToUpper(t)
			}
			sb.WriteString("  " + strings.Join(upper, " · ") + "\n")
		}
	}
	return sb.String()
}

func renderAppDetails(app catalog.Application) string {
	link := app.Link
	if !app.HasLink() {
		link = "No link available"
	}
	var sb strings.Builder
	sb.WriteString("**Application Details:**\n\n")
	sb.WriteString("- **Name:** " + app.Name + "\n")
	sb.WriteString("- **Description:** " + app.Description + "\n")
	sb.WriteString(fmt.Sprintf("- **Rating:** ★%g/10\n", app.Rating))
	sb.WriteString("- **Price:** " + app.Price + "\n")
	sb.WriteString("- **Link:** " + link + "\n")
	sb.WriteString("- **Tags:** " + strings.Join(app.Tags, ", ") + "\n")
	return sb.String()
}

func categoriesText(categories []string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**Available Categories (%d):**\n\n", len(categories)))
	for _, cat := range categories {
		sb.WriteString("- " + cat + "\n")
	}
	return sb.String()
}

func statsText(s catalog.Stats) string {
	var sb strings.Builder
	sb.WriteString("**EMBER Database Statistics:**\n\n")
	sb.WriteString(fmt.Sprintf("- Total Applications: %d\n", s.Total))
	sb.WriteString(fmt.Sprintf("- Categories: %d\n", s.Categories))
	sb.WriteString(fmt.Sprintf("- Free Apps: %d\n", s.Free))
	sb.WriteString(fmt.Sprintf("- Premium Apps: %d\n", s.Premium))
	sb.WriteString(fmt.Sprintf("- Average Rating: %.1f/10\n", s.AvgRating))
	return sb.String()
}

func downloadText() string {
	var sb strings.Builder
	sb.WriteString("**EMBER Local Download:**\n\n")
	sb.WriteString("Downloading ember_local.zip and ember_local.tar.gz...\n\n")
	sb.WriteString(downloadTarURL + "\n\n")
	sb.WriteString(downloadZipURL + "\n\n")
	sb.WriteString("Supports: Linux, Windows (Mac coming soon)\n")
	return sb.String()
}

// neofetchText renders the flame logo beside the system summary. A fenced
// block keeps the alignment out of glamour's reflow.
func (m Model) neofetchText() string {
	art := []string{
		`     ███████    `,
		`   ███████████  `,
		`  █████████████ `,
		`  █████████████ `,
		`  █████████████ `,
		`   ███████████  `,
		`     ███████    `,
	}
	mode := "User Mode"
	if m.devLoggedIn {
		mode = "Developer Mode"
	}
	info := []string{
		"OS: EMBER Terminal",
		"Version: " + appVersion,
		"Shell: ember-cli",
		fmt.Sprintf("Apps: %d installed", m.catalog.Len()),
		fmt.Sprintf("Categories: %d available", len(m.catalog.Categories)),
		"Status: " + mode,
		"Memory: Coffee/Coffee",
	}

	var sb strings.Builder
	sb.WriteString("```\n")
	for i, line := range art {
		sb.WriteString(line)
		if i < len(info) {
			sb.WriteString("  " + info[i])
		}
		sb.WriteString("\n")
	}
	sb.WriteString("```\n")
	return sb.String()
}
