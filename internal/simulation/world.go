package simulation

import (
	"sync"

	"github.com/jssohel603-bot/football-game/internal/input"
	"github.com/jssohel603-bot/football-game/internal/shared/types"
)

// World wraps a Match for hosts whose input arrives on other goroutines.
// Key events land in a Keyboard and are sampled once at the start of Tick.
type World struct {
	mu    sync.RWMutex
	match *Match
	keys  *input.Keyboard
}

// NewWorld creates a world with kickoff positions.
func NewWorld(opts Options) (*World, error) {
	m, err := NewMatch(opts)
	if err != nil {
		return nil, err
	}
	return &World{match: m, keys: input.NewKeyboard()}, nil
}

// ApplyKey records a key transition for the next tick.
func (w *World) ApplyKey(k input.Key, down bool) {
	if down {
		w.keys.Down(k)
		return
	}
	w.keys.Up(k)
}

// ReleaseKeys drops every held key, used when the input source goes away.
func (w *World) ReleaseKeys() {
	w.keys.Reset()
}

// Tick advances the match by one frame.
func (w *World) Tick() []types.GameplayEvent {
	frame := w.keys.Snapshot()

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.match.Step(frame)
}

// Snapshot returns a deep copy of state for safe replication.
func (w *World) Snapshot() types.MatchSnapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.match.Snapshot()
}

// Score returns the current tally.
func (w *World) Score() types.ScoreState {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.match.Score()
}
