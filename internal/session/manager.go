package session

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jssohel603-bot/football-game/internal/shared/logger"
	"github.com/jssohel603-bot/football-game/internal/shared/types"
	"github.com/jssohel603-bot/football-game/internal/simulation"
)

// ErrFull is returned by Create when MaxSessions matches are running.
var ErrFull = errors.New("session limit reached")

// Recorder receives per-tick measurements. metrics.MatchMetricsCollector
// satisfies it.
type Recorder interface {
	RecordTick(d time.Duration)
	RecordEvents(events []types.GameplayEvent)
	SetActiveSessions(n int)
}

// Options configures a Manager.
type Options struct {
	Match          simulation.Options
	MaxSessions    int
	BroadcastEvery int
	UpdateBuffer   int
	Recorder       Recorder
	Logger         *logger.Logger
}

// Manager owns every running match and advances them from one goroutine.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	opts  Options
	ticks uint64
}

func NewManager(opts Options) *Manager {
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = 64
	}
	if opts.BroadcastEvery <= 0 {
		opts.BroadcastEvery = 1
	}
	if opts.UpdateBuffer <= 0 {
		opts.UpdateBuffer = 8
	}
	if opts.Logger == nil {
		opts.Logger = logger.New("session")
	}
	return &Manager{
		sessions: make(map[string]*Session),
		opts:     opts,
	}
}

// Create starts a new match at kickoff.
func (m *Manager) Create() (*Session, error) {
	world, err := simulation.NewWorld(m.opts.Match)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if len(m.sessions) >= m.opts.MaxSessions {
		m.mu.Unlock()
		return nil, ErrFull
	}
	s := newSession(uuid.NewString(), world, m.opts.UpdateBuffer)
	m.sessions[s.ID] = s
	n := len(m.sessions)
	m.mu.Unlock()

	m.setActive(n)
	m.opts.Logger.Info("session created", "session", s.ID, "active", n)
	return s, nil
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Remove stops a match and closes its update channel.
func (m *Manager) Remove(id string) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	n := len(m.sessions)
	m.mu.Unlock()

	if !ok {
		return false
	}
	s.close()
	m.setActive(n)
	m.opts.Logger.Info("session removed", "session", id, "score", s.Summary().ScoreLine)
	return true
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// List returns summaries of running sessions, oldest first.
func (m *Manager) List() []types.SessionSummary {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].CreatedAt.Equal(sessions[j].CreatedAt) {
			return sessions[i].ID < sessions[j].ID
		}
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	out := make([]types.SessionSummary, len(sessions))
	for i, s := range sessions {
		out[i] = s.Summary()
	}
	return out
}

// Run continuously ticks every session until ctx is cancelled, then
// closes all of them.
func (m *Manager) Run(ctx context.Context, cadence time.Duration) {
	if cadence <= 0 {
		cadence = time.Second / 60
	}

	ticker := time.NewTicker(cadence)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.closeAll()
			return
		case <-ticker.C:
			m.Step()
		}
	}
}

// Step advances every session by one tick and broadcasts when due.
func (m *Manager) Step() {
	start := time.Now()

	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	m.ticks++
	broadcast := m.ticks%uint64(m.opts.BroadcastEvery) == 0
	for _, s := range sessions {
		events := s.tick()
		if m.opts.Recorder != nil && len(events) > 0 {
			m.opts.Recorder.RecordEvents(events)
		}
		for _, ev := range events {
			if ev.Type == types.EventGoal {
				m.opts.Logger.Info("goal", "session", s.ID, "team", ev.Team, "tick", ev.Tick)
			}
		}
		if broadcast && !s.publish() {
			m.opts.Logger.Debug("dropped state broadcast", "session", s.ID)
		}
	}

	if m.opts.Recorder != nil {
		m.opts.Recorder.RecordTick(time.Since(start))
	}
}

func (m *Manager) closeAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
	m.setActive(0)
}

func (m *Manager) setActive(n int) {
	if m.opts.Recorder != nil {
		m.opts.Recorder.SetActiveSessions(n)
	}
}
