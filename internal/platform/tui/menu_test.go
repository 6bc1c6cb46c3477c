package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crawlcore/internal/core"
	"github.com/vovakirdan/crawlcore/internal/storage"
)

func press(m tea.Model, msg tea.KeyMsg) tea.Model {
	next, _ := m.Update(msg)
	return next
}

func TestMenuSelect(t *testing.T) {
	var m tea.Model = NewMenuModel(core.DefaultConfig())
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	menu := m.(MenuModel)
	if menu.Selected() == nil {
		t.Fatal("Selected() = nil after enter")
	}
	// Scenarios are listed by ID.
	if got := menu.Selected().ID; got != "hall" {
		t.Errorf("Selected().ID = %q, expected hall", got)
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	var m tea.Model = NewMenuModel(core.DefaultConfig())
	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	for i := 0; i < 5; i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.(MenuModel).Selected().ID; got != "hall" {
		t.Errorf("Selected().ID = %q, expected hall", got)
	}
}

func TestMenuViewAndResize(t *testing.T) {
	var m tea.Model = NewMenuModel(core.DefaultConfig())
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	menu := m.(MenuModel)
	if menu.Config().ScreenW != 120 || menu.Config().ScreenH != 40 {
		t.Errorf("Config() = %+v, expected 120x40", menu.Config())
	}
	view := menu.View()
	for _, want := range []string{"The Crypt", "Select a scenario"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestMenuHistoryAndQuit(t *testing.T) {
	m := press(NewMenuModel(core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.(MenuModel).WantsHistory() {
		t.Error("tab should open the history")
	}

	m = press(NewMenuModel(core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.(MenuModel).IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty when quitting")
	}
}

func TestHistoryShowsSessions(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	ended := time.Date(2026, 3, 4, 5, 6, 0, 0, time.UTC)
	for i, player := range []string{"ana", "bo"} {
		_, err := store.SaveSession(storage.Session{
			ID:        storage.NewSessionID(),
			Scenario:  "hall",
			Origin:    "ssh",
			Player:    player,
			Ticks:     int64(100 * (i + 1)),
			StartedAt: ended.Add(-time.Minute),
			EndedAt:   ended.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveSession() error: %v", err)
		}
	}

	var m tea.Model = NewHistoryModel(store, 100, 30)
	if got := len(m.(HistoryModel).Sessions()); got != 0 {
		t.Errorf("crypt sessions = %d, expected 0", got)
	}
	if !strings.Contains(m.View(), "No sessions recorded yet") {
		t.Error("View() should say there are no sessions")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	sessions := m.(HistoryModel).Sessions()
	if len(sessions) != 2 {
		t.Fatalf("hall sessions = %d, expected 2", len(sessions))
	}
	if sessions[0].Player != "bo" {
		t.Errorf("first session player = %q, expected the newest (bo)", sessions[0].Player)
	}
	if !strings.Contains(m.View(), "HISTORY - Hall") {
		t.Errorf("View() title does not name the scenario:\n%s", m.View())
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := len(m.(HistoryModel).Sessions()); got != 0 {
		t.Errorf("after shift+tab sessions = %d, expected 0", got)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.(HistoryModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, 60, 20)
	if len(m.Sessions()) != 0 {
		t.Error("history without a store should be empty")
	}
	if m.View() == "" {
		t.Error("View() should render")
	}
}
