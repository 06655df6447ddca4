package types

import "github.com/jssohel603-bot/football-game/internal/geom"

// Team identifies one side of the match. Team A defends the left goal.
type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
)

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == TeamB {
		return TeamA
	}
	return TeamB
}

// Valid reports whether t is one of the two teams.
func (t Team) Valid() bool {
	return t == TeamA || t == TeamB
}

// PlayerState is the replicated state of one player.
type PlayerState struct {
	ID         string    `json:"id" msgpack:"id"`
	Team       Team      `json:"team" msgpack:"team"`
	Number     int       `json:"number" msgpack:"number"`
	Goalkeeper bool      `json:"goalkeeper" msgpack:"goalkeeper"`
	Controlled bool      `json:"controlled" msgpack:"controlled"`
	Position   geom.Vec2 `json:"position" msgpack:"position"`
	Velocity   geom.Vec2 `json:"velocity" msgpack:"velocity"`
	Color      string    `json:"color" msgpack:"color"`
}

// BallState is the replicated state of the ball.
type BallState struct {
	Position geom.Vec2 `json:"position" msgpack:"position"`
	Velocity geom.Vec2 `json:"velocity" msgpack:"velocity"`
	Radius   float64   `json:"radius" msgpack:"radius"`
}

// ScoreState tracks goals per team.
type ScoreState struct {
	A int `json:"a" msgpack:"a"`
	B int `json:"b" msgpack:"b"`
}

// For returns the goals scored by team.
func (s ScoreState) For(team Team) int {
	if team == TeamB {
		return s.B
	}
	return s.A
}

// Phase is the match phase. Kickoff is a reset action, not a phase.
type Phase string

const PhasePlaying Phase = "playing"

// MatchSnapshot is a point-in-time copy of a match, safe to hand to
// renderers and the wire.
type MatchSnapshot struct {
	Tick         uint64          `json:"tick" msgpack:"tick"`
	Phase        Phase           `json:"phase" msgpack:"phase"`
	Players      []PlayerState   `json:"players" msgpack:"players"`
	Ball         BallState       `json:"ball" msgpack:"ball"`
	Score        ScoreState      `json:"score" msgpack:"score"`
	ScoreLine    string          `json:"score_line" msgpack:"score_line"`
	ControlledID string          `json:"controlled_id" msgpack:"controlled_id"`
	Events       []GameplayEvent `json:"events,omitempty" msgpack:"events,omitempty"`
}

// Event types emitted by the match.
const (
	EventKickoff = "kickoff"
	EventGoal    = "goal"
	EventPass    = "pass"
	EventShot    = "shot"
	EventSwitch  = "switch"
)

// Kickoff reasons.
const (
	ReasonStart  = "start"
	ReasonGoal   = "goal"
	ReasonManual = "manual"
)

// GameplayEvent tracks state changes worth UI feedback.
type GameplayEvent struct {
	Type     string `json:"type" msgpack:"type"`
	PlayerID string `json:"player_id,omitempty" msgpack:"player_id,omitempty"`
	Team     Team   `json:"team,omitempty" msgpack:"team,omitempty"`
	Reason   string `json:"reason,omitempty" msgpack:"reason,omitempty"`
	Tick     uint64 `json:"tick" msgpack:"tick"`
}

// ClientEnvelope is sent from client to server.
type ClientEnvelope struct {
	Type string `json:"type" msgpack:"type"` // key|ping
	Key  string `json:"key,omitempty" msgpack:"key,omitempty"`
	Down bool   `json:"down,omitempty" msgpack:"down,omitempty"`
}

// ServerEnvelope is sent from server to client.
type ServerEnvelope struct {
	Type      string         `json:"type" msgpack:"type"` // welcome|state|pong|error
	SessionID string         `json:"session_id,omitempty" msgpack:"session_id,omitempty"`
	Tick      uint64         `json:"tick,omitempty" msgpack:"tick,omitempty"`
	State     *MatchSnapshot `json:"state,omitempty" msgpack:"state,omitempty"`
	ServerMS  int64          `json:"server_ms,omitempty" msgpack:"server_ms,omitempty"`
	Message   string         `json:"message,omitempty" msgpack:"message,omitempty"`
}

// SessionSummary describes a running session for the HTTP listing.
type SessionSummary struct {
	SessionID string     `json:"session_id"`
	CreatedAt int64      `json:"created_at"`
	Tick      uint64     `json:"tick"`
	Score     ScoreState `json:"score"`
	ScoreLine string     `json:"score_line"`
}
