// Package ui provides the visual styling for the EMBER terminal.
// The palette follows the store's flame branding with dark/light support;
// dark is the default since EMBER is a terminal-native application.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Dark Mode Colors (Default)
	DarkBackground = lipgloss.Color("#0a0a0a") // near-black terminal
	DarkForeground = lipgloss.Color("#d1d5db") // gray-300
	DarkPrimary    = lipgloss.Color("#4ade80") // terminal green
	DarkAccent     = lipgloss.Color("#60a5fa") // link blue
	DarkSecondary  = lipgloss.Color("#1f2937") // panel gray
	DarkMuted      = lipgloss.Color("#9ca3af") // gray-400
	DarkBorder     = lipgloss.Color("#374151")
	DarkCard       = lipgloss.Color("#111827")

	// Light Mode Colors
	LightBackground = lipgloss.Color("#f9fafb")
	LightForeground = lipgloss.Color("#111827")
	LightPrimary    = lipgloss.Color("#16a34a") // green, darkened for contrast
	LightAccent     = lipgloss.Color("#2563eb")
	LightSecondary  = lipgloss.Color("#e5e7eb")
	LightMuted      = lipgloss.Color("#6b7280")
	LightBorder     = lipgloss.Color("#d1d5db")
	LightCard       = lipgloss.Color("#ffffff")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#f87171") // red
	Success     = lipgloss.Color("#4ade80") // green
	Warning     = lipgloss.Color("#facc15") // yellow
	Info        = lipgloss.Color("#60a5fa") // blue
	Flame       = lipgloss.Color("#fb923c") // orange, neofetch art
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// ThemeByName maps a config/env theme name to a Theme. Unknown names fall
// back to auto-detection.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme auto-detects from the terminal, defaulting to dark mode.
func DetectTheme() Theme {
	if v := os.Getenv("EMBER_THEME"); v != "" {
		switch strings.ToLower(v) {
		case "light":
			return LightTheme()
		case "dark":
			return DarkTheme()
		}
	}

	// COLORFGBG is "foreground;background"; a high background index means
	// a light terminal.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if bgIdx == 7 || bgIdx >= 9 {
					return LightTheme()
				}
			}
		}
	}

	return DarkTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	App     lipgloss.Style
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Interactive
	Prompt    lipgloss.Style
	UserInput lipgloss.Style
	Output    lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Components
	Spinner lipgloss.Style
	Divider lipgloss.Style
	Badge   lipgloss.Style
	Link    lipgloss.Style
	Flame   lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		App: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Padding(0, 1).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Content: lipgloss.NewStyle().
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		UserInput: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Output: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Primary),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Badge: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#0a0a0a")).
			Padding(0, 1).
			Bold(true),

		Link: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Underline(true),

		Flame: lipgloss.NewStyle().
			Foreground(Flame).
			Bold(true),
	}
}

// DefaultStyles returns styles with the auto-detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	return s.Divider.Render(strings.Repeat("─", width))
}
