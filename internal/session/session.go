package session

import (
	"sync"
	"time"

	"github.com/jssohel603-bot/football-game/internal/input"
	"github.com/jssohel603-bot/football-game/internal/shared/types"
	"github.com/jssohel603-bot/football-game/internal/simulation"
)

// Session is one independent match driven by a single connection.
type Session struct {
	ID        string
	CreatedAt time.Time

	world *simulation.World

	mu      sync.Mutex
	pending []types.GameplayEvent
	updates chan types.MatchSnapshot
	closed  bool
}

func newSession(id string, world *simulation.World, buffer int) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		world:     world,
		updates:   make(chan types.MatchSnapshot, buffer),
	}
}

// ApplyKey forwards a key transition to the match.
func (s *Session) ApplyKey(k input.Key, down bool) {
	s.world.ApplyKey(k, down)
}

// ReleaseKeys drops held keys, used when the connection goes away.
func (s *Session) ReleaseKeys() {
	s.world.ReleaseKeys()
}

// Snapshot returns the current match state without pending events.
func (s *Session) Snapshot() types.MatchSnapshot {
	return s.world.Snapshot()
}

// Updates delivers broadcast snapshots. The channel is closed when the
// session is removed.
func (s *Session) Updates() <-chan types.MatchSnapshot {
	return s.updates
}

// Summary describes the session for listings.
func (s *Session) Summary() types.SessionSummary {
	snap := s.world.Snapshot()
	return types.SessionSummary{
		SessionID: s.ID,
		CreatedAt: s.CreatedAt.Unix(),
		Tick:      snap.Tick,
		Score:     snap.Score,
		ScoreLine: snap.ScoreLine,
	}
}

func (s *Session) tick() []types.GameplayEvent {
	events := s.world.Tick()
	if len(events) > 0 {
		s.mu.Lock()
		s.pending = append(s.pending, events...)
		s.mu.Unlock()
	}
	return events
}

// publish pushes a snapshot carrying every event raised since the previous
// publish. A slow consumer drops the snapshot, the events wait for the next one.
func (s *Session) publish() bool {
	snap := s.world.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	snap.Events = s.pending
	select {
	case s.updates <- snap:
		s.pending = nil
		return true
	default:
		return false
	}
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.updates)
}
