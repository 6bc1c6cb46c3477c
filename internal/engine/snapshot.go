package engine

import "github.com/vovakirdan/crawlcore/internal/party"

// Snapshot captures the observable game state for determinism tests and
// replay verification. Snapshots are comparable with ==.
type Snapshot struct {
	Tick      int64                      `json:"tick"`
	X         int                        `json:"x"`
	Y         int                        `json:"y"`
	Dir       string                     `json:"dir"`
	Champions int                        `json:"champions"`
	Leader    int                        `json:"leader"`
	Holding   bool                       `json:"holding"`
	Context   string                     `json:"context"`
	Inventory int                        `json:"inventory"`
	Names     [party.MaxChampions]string `json:"names"`
	Loads     [party.MaxChampions]int    `json:"loads"`
	Pending   int                        `json:"pending_events"`
}

// Snapshot returns the current game snapshot.
func (e *Engine) Snapshot() Snapshot {
	p := e.party
	s := Snapshot{
		Tick:      e.gameTime,
		X:         p.X,
		Y:         p.Y,
		Dir:       p.Dir.String(),
		Champions: p.Count,
		Leader:    p.Leader,
		Holding:   !p.LeaderEmptyHanded(),
		Context:   e.ctx.String(),
		Inventory: e.Inventory(),
	}
	for i := 0; i < p.Count; i++ {
		s.Names[i] = p.Champions[i].Name
		s.Loads[i] = p.Champions[i].Load
	}
	if e.timeline != nil {
		s.Pending = e.timeline.Len()
	}
	return s
}
