package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crawlcore/internal/core"
	"github.com/vovakirdan/crawlcore/internal/storage"
)

func TestSessionModelFlow(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.Open(filepath.Join(dir, "history.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	var m tea.Model = NewSessionModel(SessionModelOptions{
		Store:      store,
		Config:     core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 18},
		Player:     "ana",
		JournalDir: filepath.Join(dir, "journals"),
	})

	// Enter on the first entry starts the crypt.
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sm := m.(SessionModel)
	if sm.stage != stagePlay || sm.play == nil {
		t.Fatalf("stage = %v, expected play", sm.stage)
	}
	if cmd == nil {
		t.Error("starting play should schedule a tick")
	}
	id := sm.play.session.ID

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	sm = m.(SessionModel)
	if sm.stage != stageMenu || sm.quitting {
		t.Fatalf("stage = %v quitting = %v, expected menu", sm.stage, sm.quitting)
	}

	saved, err := store.SessionByID(id)
	if err != nil {
		t.Fatalf("SessionByID() error: %v", err)
	}
	if saved.Origin != "ssh" || saved.Player != "ana" {
		t.Errorf("saved = %+v, expected an ssh session of ana", saved)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	sm = m.(SessionModel)
	if sm.stage != stageHistory {
		t.Fatalf("stage = %v, expected history", sm.stage)
	}
	if got := len(sm.history.Sessions()); got != 1 {
		t.Errorf("history shows %d sessions, expected 1", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.(SessionModel).stage != stageMenu {
		t.Fatal("esc should return to the menu")
	}

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the connection")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestSessionModelStaleTick(t *testing.T) {
	var m tea.Model = NewSessionModel(SessionModelOptions{
		Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 18},
	})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	first := m.(SessionModel).play.session
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// A tick scheduled by the first session must not drive the second.
	if _, cmd := m.Update(TickMsg{Session: first.ID}); cmd != nil {
		t.Error("stale tick should not schedule another tick")
	}
	if got := m.(SessionModel).play.session.Engine.GameTime(); got != 0 {
		t.Errorf("GameTime() = %d, expected 0", got)
	}
}
