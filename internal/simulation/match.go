package simulation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jssohel603-bot/football-game/internal/field"
	"github.com/jssohel603-bot/football-game/internal/geom"
	"github.com/jssohel603-bot/football-game/internal/input"
	"github.com/jssohel603-bot/football-game/internal/shared/types"
)

// Options configures a new match.
type Options struct {
	Field      field.Field
	HumanTeam  types.Team
	TeamALabel string
	TeamBLabel string
	// Seed for the shot jitter. Zero picks a time-based seed.
	Seed int64
	// Autopilot hands the controlled player to the AI as well.
	Autopilot bool
}

// Match owns every entity of one game. It is not safe for concurrent use;
// World adds locking for hosts that need it.
type Match struct {
	field      field.Field
	players    []*Player
	ball       Ball
	score      types.ScoreState
	controlled *Player
	humanTeam  types.Team
	labels     map[types.Team]string
	autopilot  bool
	tick       uint64
	events     []types.GameplayEvent
	rng        *rand.Rand
}

// NewMatch builds both rosters and performs the opening kickoff.
func NewMatch(opts Options) (*Match, error) {
	if opts.Field == (field.Field{}) {
		opts.Field = field.Default()
	}
	if opts.HumanTeam == "" {
		opts.HumanTeam = types.TeamA
	}
	if !opts.HumanTeam.Valid() {
		return nil, fmt.Errorf("unknown human team %q", opts.HumanTeam)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := &Match{
		field:     opts.Field,
		humanTeam: opts.HumanTeam,
		labels: map[types.Team]string{
			types.TeamA: labelOr(opts.TeamALabel, types.TeamA),
			types.TeamB: labelOr(opts.TeamBLabel, types.TeamB),
		},
		autopilot: opts.Autopilot,
		rng:       rand.New(rand.NewSource(seed)),
	}
	m.players = append(m.players, NewRoster(opts.Field, types.TeamA)...)
	m.players = append(m.players, NewRoster(opts.Field, types.TeamB)...)
	m.kickoff(types.ReasonStart)
	return m, nil
}

func labelOr(label string, team types.Team) string {
	if label != "" {
		return label
	}
	return defaultTeamLabel + " " + string(team)
}

// Step advances the match by one tick using the given input snapshot and
// returns the events raised during the tick.
func (m *Match) Step(frame input.Frame) []types.GameplayEvent {
	m.tick++
	m.events = nil

	if frame.Triggered(input.KeyReset) {
		m.kickoff(types.ReasonManual)
		return m.events
	}
	if frame.Triggered(input.KeySwitch) {
		m.SwitchControl()
	}
	m.moveControlled(frame)
	if frame.Triggered(input.KeyPass) {
		m.Pass()
	}
	if frame.Triggered(input.KeyShoot) {
		m.Shoot()
	}

	m.runAI()
	m.clampPlayers()

	m.resolvePlayerBall()
	m.integrateBall()
	m.bounceBall()
	m.detectGoal()
	return m.events
}

// Kickoff resets ball and players to their starting layout. The score is kept.
func (m *Match) Kickoff() {
	m.kickoff(types.ReasonManual)
}

func (m *Match) kickoff(reason string) {
	center := m.field.Center()
	m.ball = Ball{Position: center}

	for _, p := range m.players {
		p.Position = p.Start()
		p.Velocity = geom.Vec2{}
	}

	m.controlled = nil
	best := 0.0
	for _, p := range m.players {
		if p.Team != m.humanTeam || p.IsGoalkeeper() {
			continue
		}
		d := geom.Distance(p.Position, center)
		if m.controlled == nil || d < best {
			m.controlled, best = p, d
		}
	}

	m.emit(types.GameplayEvent{Type: types.EventKickoff, Reason: reason})
}

func (m *Match) emit(ev types.GameplayEvent) {
	ev.Tick = m.tick
	m.events = append(m.events, ev)
}

func (m *Match) Field() field.Field {
	return m.field
}

func (m *Match) Score() types.ScoreState {
	return m.score
}

func (m *Match) Tick() uint64 {
	return m.tick
}

// ScoreLine renders "<labelA> <scoreA> - <scoreB> <labelB>".
func (m *Match) ScoreLine() string {
	return FormatScore(m.labels[types.TeamA], m.labels[types.TeamB], m.score)
}

// FormatScore renders a score line for the given labels.
func FormatScore(labelA, labelB string, s types.ScoreState) string {
	return fmt.Sprintf("%s %d - %d %s", labelA, s.A, s.B, labelB)
}

// Snapshot returns a copy of the match safe for replication.
func (m *Match) Snapshot() types.MatchSnapshot {
	players := make([]types.PlayerState, len(m.players))
	for i, p := range m.players {
		players[i] = types.PlayerState{
			ID:         p.ID,
			Team:       p.Team,
			Number:     p.Number,
			Goalkeeper: p.IsGoalkeeper(),
			Controlled: p == m.controlled,
			Position:   p.Position,
			Velocity:   p.Velocity,
			Color:      p.Color,
		}
	}

	events := make([]types.GameplayEvent, len(m.events))
	copy(events, m.events)

	controlledID := ""
	if m.controlled != nil {
		controlledID = m.controlled.ID
	}

	return types.MatchSnapshot{
		Tick:    m.tick,
		Phase:   types.PhasePlaying,
		Players: players,
		Ball: types.BallState{
			Position: m.ball.Position,
			Velocity: m.ball.Velocity,
			Radius:   BallRadius,
		},
		Score:        m.score,
		ScoreLine:    m.ScoreLine(),
		ControlledID: controlledID,
		Events:       events,
	}
}
