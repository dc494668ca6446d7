package term

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestLogin_SuccessAndFailure(t *testing.T) {
	t.Parallel()
	m := NewTestModel(t)

	m, _ = typeLine(t, m, "dev login")
	if m.inputMode != InputModeLogin {
		t.Fatal("dev login should enter credential mode")
	}
	if !strings.Contains(lastOutput(t, m), "Developer Authentication Required") {
		t.Errorf("missing auth prompt: %q", lastOutput(t, m))
	}

	m, _ = typeLine(t, m, "zyphonz wrongpass")
	if m.devLoggedIn {
		t.Error("wrong password must not log in")
	}
	if m.inputMode != InputModeNormal {
		t.Error("a rejected login should return to normal mode")
	}
	if !strings.Contains(lastOutput(t, m), "Invalid credentials") {
		t.Errorf("unexpected output %q", lastOutput(t, m))
	}

	m, _ = typeLine(t, m, "dev login")
	m, _ = typeLine(t, m, "zyphonz Cookie113!")
	if !m.devLoggedIn {
		t.Fatal("valid credentials should log in")
	}
	if !strings.Contains(lastOutput(t, m), "Developer login successful!") {
		t.Errorf("unexpected output %q", lastOutput(t, m))
	}
}

func TestLogin_SingleTokenIsRejected(t *testing.T) {
	t.Parallel()
	m := NewTestModel(t)
	m, _ = typeLine(t, m, "dev login")
	m, _ = typeLine(t, m, "zyphonz")
	if m.devLoggedIn {
		t.Error("a lone username must not log in")
	}
}

func TestWizard_EndToEnd(t *testing.T) {
	t.Parallel()
	fs := &fakeStore{}
	m := NewTestModel(t, WithStore(fs))

	// Full session: authenticate, then create an application.
	m, _ = typeLine(t, m, "dev login")
	m, _ = typeLine(t, m, "zyphonz Cookie113!")
	m, _ = typeLine(t, m, "dev add")

	if m.inputMode != InputModeWizard {
		t.Fatal("dev add should start the wizard")
	}
	if !strings.Contains(lastOutput(t, m), "Enter application name:") {
		t.Errorf("missing first prompt: %q", lastOutput(t, m))
	}

	steps := []struct {
		answer     string
		nextPrompt string
	}{
		{"TestApp", "Enter application description:"},
		{"A test app", "Enter rating (0-10):"},
		{"9", "Enter price (e.g., $0.00):"},
		{"$1.99", "Enter link URL (optional, press enter to skip):"},
		{"", "Enter tags (comma-separated):"},
	}
	for _, step := range steps {
		m, _ = typeLine(t, m, step.answer)
		if !strings.Contains(lastOutput(t, m), step.nextPrompt) {
			t.Fatalf("after %q expected prompt %q, got %q", step.answer, step.nextPrompt, lastOutput(t, m))
		}
	}

	var cmd tea.Cmd
	m, cmd = typeLine(t, m, "alpha, Beta ,, gamma")
	m = drain(t, m, cmd)

	if m.inputMode != InputModeNormal || m.wizard != nil {
		t.Error("wizard state should be gone after completion")
	}
	if m.catalog.Len() != 1 {
		t.Fatalf("catalog length = %d, want 1", m.catalog.Len())
	}

	app := m.catalog.Applications[0]
	if app.Name != "TestApp" || app.Description != "A test app" {
		t.Errorf("wrong draft fields: %+v", app)
	}
	if app.Rating != 9 {
		t.Errorf("rating = %v, want 9", app.Rating)
	}
	if app.Price != "$1.99" {
		t.Errorf("price = %q, want $1.99", app.Price)
	}
	if app.HasLink() {
		t.Errorf("skipped link should stay empty, got %q", app.Link)
	}
	if app.ID == 0 {
		t.Error("completed application needs a timestamp id")
	}
	want := []string{"alpha", "beta", "gamma"}
	if len(app.Tags) != len(want) {
		t.Fatalf("tags = %v, want %v", app.Tags, want)
	}
	for i := range want {
		if app.Tags[i] != want[i] {
			t.Errorf("tags = %v, want %v", app.Tags, want)
		}
	}

	if fs.saveCount() != 1 {
		t.Errorf("wizard completion should save once, saved %d times", fs.saveCount())
	}
	if !strings.Contains(lastOutput(t, m), "Application 'TestApp' added successfully!") {
		t.Errorf("unexpected output %q", lastOutput(t, m))
	}
}

func TestWizard_InvalidRatingReprompts(t *testing.T) {
	t.Parallel()
	m := NewTestModel(t, WithDevLoggedIn())

	m, _ = typeLine(t, m, "dev add")
	m, _ = typeLine(t, m, "App")
	m, _ = typeLine(t, m, "desc")

	for _, bad := range []string{"15", "-1", "abc"} {
		m, _ = typeLine(t, m, bad)
		if !strings.Contains(lastOutput(t, m), "Invalid rating. Please enter a number between 0 and 10:") {
			t.Errorf("rating %q should re-prompt, got %q", bad, lastOutput(t, m))
		}
		if m.wizard.Step != StepRating {
			t.Errorf("rating %q must not advance the wizard", bad)
		}
	}

	// Fractional ratings are fine.
	m, _ = typeLine(t, m, "7.5")
	if m.wizard.Step != StepPrice {
		t.Error("rating 7.5 should advance to the price step")
	}
	if m.wizard.Draft.Rating != 7.5 {
		t.Errorf("rating = %v, want 7.5", m.wizard.Draft.Rating)
	}
}

func TestWizard_ConsumesCommandLookalikes(t *testing.T) {
	t.Parallel()
	m := NewTestModel(t, WithDevLoggedIn())

	m, _ = typeLine(t, m, "dev add")
	m, _ = typeLine(t, m, "clear")

	if m.inputMode != InputModeWizard {
		t.Fatal("typing clear inside the wizard must stay in the wizard")
	}
	if m.wizard.Draft.Name != "clear" {
		t.Errorf("wizard should take %q as the name, got %q", "clear", m.wizard.Draft.Name)
	}
	if len(m.history) == 0 {
		t.Error("scrollback should survive a clear typed inside the wizard")
	}
}

func TestWizard_EmptyPriceDefaults(t *testing.T) {
	t.Parallel()
	fs := &fakeStore{}
	m := NewTestModel(t, WithStore(fs), WithDevLoggedIn())

	m, _ = typeLine(t, m, "dev add")
	answers := []string{"Freebie", "", "0", "", "", ""}
	var cmd tea.Cmd
	for _, a := range answers {
		m, cmd = typeLine(t, m, a)
	}
	m = drain(t, m, cmd)

	if m.catalog.Len() != 1 {
		t.Fatalf("catalog length = %d, want 1", m.catalog.Len())
	}
	app := m.catalog.Applications[0]
	if app.Price != "$0.00" {
		t.Errorf("empty price should default to $0.00, got %q", app.Price)
	}
	if app.Tags == nil || len(app.Tags) != 0 {
		t.Errorf("empty tags should be an empty list, got %#v", app.Tags)
	}
}
