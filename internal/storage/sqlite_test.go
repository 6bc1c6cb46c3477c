package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveSessionAndLookup(t *testing.T) {
	store := openTemp(t)

	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	in := Session{
		Scenario:  "hall",
		Origin:    "ssh",
		Player:    "halk",
		Seed:      42,
		Ticks:     900,
		Commands:  37,
		Champions: 2,
		FinalX:    3,
		FinalY:    7,
		FinalDir:  "east",
		Journal:   "/tmp/j.jsonl.zst",
		StartedAt: started,
		EndedAt:   started.Add(50 * time.Second),
	}
	id, err := store.SaveSession(in)
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveSession() id %q is not a uuid: %v", id, err)
	}

	got, err := store.SessionByID(id)
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	in.ID = id
	if got.Scenario != in.Scenario || got.Player != in.Player || got.Seed != in.Seed ||
		got.Ticks != in.Ticks || got.Commands != in.Commands || got.FinalDir != in.FinalDir ||
		got.FinalX != in.FinalX || got.FinalY != in.FinalY || got.Journal != in.Journal {
		t.Errorf("SessionByID() = %+v, expected %+v", *got, in)
	}
	if !got.StartedAt.Equal(in.StartedAt) || !got.EndedAt.Equal(in.EndedAt) {
		t.Errorf("times = %v..%v, expected %v..%v", got.StartedAt, got.EndedAt, in.StartedAt, in.EndedAt)
	}
	if got.Duration() != 50*time.Second {
		t.Errorf("Duration() = %v, expected 50s", got.Duration())
	}
}

func TestSessionByIDMissing(t *testing.T) {
	store := openTemp(t)
	if _, err := store.SessionByID(NewSessionID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("SessionByID() error = %v, expected ErrNotFound", err)
	}
}

func TestSaveSessionDefaults(t *testing.T) {
	store := openTemp(t)
	id, err := store.SaveSession(Session{ID: "fixed", Scenario: "hall"})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if id != "fixed" {
		t.Errorf("SaveSession() = %q, expected the given id", id)
	}
	got, err := store.SessionByID(id)
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if got.Origin != "local" {
		t.Errorf("Origin = %q, expected local", got.Origin)
	}
	if got.EndedAt.IsZero() || got.StartedAt.IsZero() {
		t.Error("timestamps should default to now")
	}

	if _, err := store.SaveSession(Session{ID: "fixed", Scenario: "hall"}); err == nil {
		t.Error("duplicate id should fail")
	}
}

func TestRecentSessions(t *testing.T) {
	store := openTemp(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, sc := range []string{"hall", "hall", "crypt", "hall"} {
		_, err := store.SaveSession(Session{
			Scenario: sc,
			Ticks:    int64(i * 100),
			EndedAt:  base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	tests := []struct {
		name     string
		scenario string
		limit    int
		ticks    []int64
	}{
		{"all scenarios", "", 10, []int64{300, 200, 100, 0}},
		{"one scenario", "hall", 10, []int64{300, 100, 0}},
		{"limited", "hall", 2, []int64{300, 100}},
		{"default limit", "crypt", 0, []int64{200}},
		{"unknown scenario", "moon", 10, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.RecentSessions(tt.scenario, tt.limit)
			if err != nil {
				t.Fatalf("RecentSessions() failed: %v", err)
			}
			if len(got) != len(tt.ticks) {
				t.Fatalf("len = %d, expected %d", len(got), len(tt.ticks))
			}
			for i, s := range got {
				if s.Ticks != tt.ticks[i] {
					t.Errorf("[%d].Ticks = %d, expected %d", i, s.Ticks, tt.ticks[i])
				}
			}
		})
	}
}

func TestClearSessions(t *testing.T) {
	store := openTemp(t)
	store.SaveSession(Session{Scenario: "hall"})
	store.SaveSession(Session{Scenario: "crypt"})

	if err := store.ClearSessions("hall"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	if got, _ := store.RecentSessions("hall", 10); len(got) != 0 {
		t.Errorf("hall sessions = %d, expected 0", len(got))
	}
	if got, _ := store.RecentSessions("crypt", 10); len(got) != 1 {
		t.Errorf("crypt sessions = %d, expected 1", len(got))
	}
}

func TestAllScenarioStats(t *testing.T) {
	store := openTemp(t)
	last := time.Date(2026, 5, 5, 12, 0, 0, 0, time.UTC)
	store.SaveSession(Session{Scenario: "hall", Ticks: 100, Commands: 10, EndedAt: last.Add(-time.Hour)})
	store.SaveSession(Session{Scenario: "hall", Ticks: 300, Commands: 20, EndedAt: last})
	store.SaveSession(Session{Scenario: "crypt", Ticks: 50, Commands: 1, EndedAt: last})

	stats, err := store.AllScenarioStats()
	if err != nil {
		t.Fatalf("AllScenarioStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, expected 2", len(stats))
	}
	hall := stats["hall"]
	if hall.Sessions != 2 || hall.TotalTicks != 400 || hall.LongestRun != 300 || hall.AvgCommands != 15 {
		t.Errorf("hall stats = %+v", *hall)
	}
	if !hall.LastPlayed.Equal(last) {
		t.Errorf("LastPlayed = %v, expected %v", hall.LastPlayed, last)
	}
}
