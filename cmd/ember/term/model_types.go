// Package term provides the interactive TUI for the EMBER application store
// terminal. This file contains the core model, state enums, and tea messages.
package term

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"github.com/zyphonz/ember/cmd/ember/ui"
	"github.com/zyphonz/ember/internal/auth"
	"github.com/zyphonz/ember/internal/catalog"
	"github.com/zyphonz/ember/internal/config"
	"github.com/zyphonz/ember/internal/history"
	"github.com/zyphonz/ember/internal/store"
)

// =============================================================================
// STATE ENUMS
// =============================================================================

// InputMode represents the current input handling state. A single state
// machine instead of scattered awaiting* flags: a submitted line is routed
// to exactly one handler.
type InputMode int

const (
	InputModeNormal InputMode = iota // Default: parse as a command
	InputModeLogin                   // Awaiting "username password" credentials
	InputModeWizard                  // Add-application wizard active
)

// WizardStep is the current question in the add-application wizard.
type WizardStep int

const (
	StepName WizardStep = iota
	StepDescription
	StepRating
	StepPrice
	StepLink
	StepTags
)

// WizardState tracks the in-progress application draft.
type WizardState struct {
	Step  WizardStep
	Draft catalog.Application
}

// NewWizard starts a fresh wizard at the name step.
func NewWizard() *WizardState {
	return &WizardState{Step: StepName}
}

// =============================================================================
// CORE TYPES
// =============================================================================

// Entry is a single scrollback record: the echoed command line plus the
// output it produced. A system entry has an empty Command and renders
// without a prompt echo. Markdown entries go through glamour; plain entries
// are already styled and render as-is.
type Entry struct {
	Command  string
	Output   string
	Markdown bool
	Time     time.Time
}

// Options holds the injected dependencies for the terminal.
type Options struct {
	Config config.Config
	Store  store.Store
	Auth   auth.Authenticator
}

// Model is the main model for the interactive terminal.
type Model struct {
	// UI Components
	textinput textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model
	styles    ui.Styles
	renderer  *glamour.TermRenderer

	// Scrollback
	history []Entry

	// Command recall
	nav *history.Navigator

	// Session State
	inputMode   InputMode
	wizard      *WizardState
	devLoggedIn bool
	sessionID   string

	// Catalog
	catalog catalog.Catalog

	// Backend
	store store.Store
	auth  auth.Authenticator
	cfg   config.Config

	// Status
	isBooting     bool
	isLoading     bool
	statusMessage string
	err           error
	width         int
	height        int
	ready         bool
}

// saveOutcome describes the mutation whose save completed, so the result
// line can name it.
type saveOutcome struct {
	appName string
	cleared bool
}

// Messages for tea updates
type (
	// bootCompleteMsg carries the initial catalog load.
	bootCompleteMsg struct {
		doc *store.Document
		err error
	}

	// saveResultMsg reports a completed remote save after a mutation.
	saveResultMsg struct {
		outcome saveOutcome
		err     error
	}

	// linkErrMsg reports a failed browser launch.
	linkErrMsg struct {
		url string
		err error
	}
)
