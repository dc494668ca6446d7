package term

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdate_EmptyInputIsIgnored(t *testing.T) {
	t.Parallel()
	m := NewTestModel(t)
	before := len(m.history)

	m, _ = typeLine(t, m, "   ")

	if len(m.history) != before {
		t.Error("blank input should not produce scrollback entries")
	}
	if m.nav.Len() != 0 {
		t.Error("blank input should not enter command history")
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	m := NewTestModel(t)

	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("key %v should produce a command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %v should quit", key)
		}
	}
}

func TestUpdate_EnterIgnoredWhileBooting(t *testing.T) {
	t.Parallel()
	m := NewTestModel(t)
	m.isBooting = true
	before := len(m.history)

	m, _ = typeLine(t, m, "help")

	if len(m.history) != before {
		t.Error("input during boot should be ignored")
	}
}

func TestUpdate_BootErrorIsVisible(t *testing.T) {
	t.Parallel()
	m := NewTestModel(t)
	m.isBooting = true

	next, _ := m.Update(bootCompleteMsg{err: errors.New("connection refused")})
	m = next.(Model)

	if m.isBooting {
		t.Error("boot must finish even on load failure")
	}
	if !strings.Contains(lastOutput(t, m), "Failed to load database") {
		t.Errorf("expected load failure line, got %q", lastOutput(t, m))
	}
	if m.catalog.Len() != 0 {
		t.Error("failed load should leave an empty catalog")
	}
}

func TestHistoryRecall_UpDown(t *testing.T) {
	t.Parallel()
	m := NewTestModel(t, WithCatalog(testCatalog()))

	m, _ = typeLine(t, m, "help")
	m, _ = typeLine(t, m, "list")
	m, _ = typeLine(t, m, "stats")

	up := func() {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
		m = next.(Model)
	}
	down := func() {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(Model)
	}

	up()
	if got := m.textinput.Value(); got != "stats" {
		t.Errorf("first Up = %q, want stats", got)
	}
	up()
	if got := m.textinput.Value(); got != "list" {
		t.Errorf("second Up = %q, want list", got)
	}
	up()
	up() // clamped at oldest
	if got := m.textinput.Value(); got != "help" {
		t.Errorf("Up past oldest = %q, want help", got)
	}

	down()
	down()
	if got := m.textinput.Value(); got != "stats" {
		t.Errorf("walked forward = %q, want stats", got)
	}
	down() // past newest: sentinel clears the input
	if got := m.textinput.Value(); got != "" {
		t.Errorf("Down past newest should clear input, got %q", got)
	}

	down()
	if got := m.textinput.Value(); got != "" {
		t.Errorf("Down while idle should be a no-op, got %q", got)
	}
}

func TestHistoryRecall_WizardLinesAreRecorded(t *testing.T) {
	t.Parallel()
	m := NewTestModel(t, WithDevLoggedIn())

	m, _ = typeLine(t, m, "dev add")
	m, _ = typeLine(t, m, "SomeApp")

	lines := m.nav.Lines()
	if len(lines) != 2 || lines[1] != "SomeApp" {
		t.Errorf("wizard answers should enter command history, got %v", lines)
	}
}

func TestUpdate_SaveFailureSurfaces(t *testing.T) {
	t.Parallel()
	fs := &fakeStore{saveErr: errors.New("boom")}
	m := NewTestModel(t, WithStore(fs), WithDevLoggedIn())

	m, _ = typeLine(t, m, "dev add")
	for _, answer := range []string{"App", "desc", "5", "$1.00", "", "a,b"} {
		var cmd tea.Cmd
		m, cmd = typeLine(t, m, answer)
		m = drain(t, m, cmd)
	}

	if !strings.Contains(lastOutput(t, m), "Failed to save application to database") {
		t.Errorf("expected save failure line, got %q", lastOutput(t, m))
	}
	// The in-memory mutation survives the failed save.
	if m.catalog.Len() != 1 {
		t.Errorf("catalog length = %d, want 1", m.catalog.Len())
	}
}
