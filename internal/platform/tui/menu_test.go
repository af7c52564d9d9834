package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-shark/internal/core"
	_ "github.com/vovakirdan/flappy-shark/internal/games/flappy"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestMenuListsProfiles(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	ids := make([]string, 0, len(m.games))
	for _, g := range m.games {
		ids = append(ids, g.ID)
	}
	want := []string{"classic", "endless", "shark"}
	if len(ids) != len(want) {
		t.Fatalf("profiles = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("profile %d = %q, want %q", i, ids[i], want[i])
		}
	}

	row := profileRow(m.games[0])
	if row[2] != "1" || row[3] != "exit" {
		t.Errorf("classic row = %v", row)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() != "endless" {
		t.Errorf("Selected = %q, want endless", m.Selected())
	}
	if !isQuit(cmd) {
		t.Error("selecting should leave the menu")
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	m, cmd := updateMenu(t, m, runeKey('q'))
	if !m.IsQuitting() || !isQuit(cmd) {
		t.Error("q should quit the menu")
	}
	if m.Selected() != "" {
		t.Error("nothing should be selected after quitting")
	}
}

func TestMenuResizeKeepsCursor(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateMenu(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.table.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", m.table.Cursor())
	}
	if m.Config().ScreenW != 100 {
		t.Errorf("config width = %d, want 100", m.Config().ScreenW)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText = %q", got)
	}
}
