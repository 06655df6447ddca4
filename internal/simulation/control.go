package simulation

import (
	"github.com/jssohel603-bot/football-game/internal/geom"
	"github.com/jssohel603-bot/football-game/internal/input"
	"github.com/jssohel603-bot/football-game/internal/shared/types"
)

// moveControlled sets the controlled player's per-axis velocity from the
// held arrow keys and moves it.
func (m *Match) moveControlled(frame input.Frame) {
	p := m.controlled
	if p == nil || m.autopilot {
		return
	}
	dx, dy := frame.Axis()
	p.Velocity = geom.V(dx*PlayerSpeed, dy*PlayerSpeed)
	p.Position = p.Position.Add(p.Velocity)
}

// SwitchControl hands control to the player of either team nearest the
// ball. Ties go to the earlier roster entry.
func (m *Match) SwitchControl() {
	var nearest *Player
	best := 0.0
	for _, p := range m.players {
		d := geom.Distance(p.Position, m.ball.Position)
		if nearest == nil || d < best {
			nearest, best = p, d
		}
	}
	if nearest == nil {
		return
	}
	if m.controlled != nil && m.controlled != nearest {
		m.controlled.Velocity = geom.Vec2{}
	}
	m.controlled = nearest
	m.emit(types.GameplayEvent{Type: types.EventSwitch, PlayerID: nearest.ID, Team: nearest.Team})
}

// Pass sends the ball toward the controlled player's nearest teammate. It
// does nothing unless the controlled player is within ProximityRadius of the
// ball.
func (m *Match) Pass() bool {
	p := m.controlled
	if !m.canPlayBall(p) {
		return false
	}

	var mate *Player
	best := 0.0
	for _, q := range m.players {
		if q == p || q.Team != p.Team {
			continue
		}
		d := geom.Distance(p.Position, q.Position)
		if mate == nil || d < best {
			mate, best = q, d
		}
	}
	if mate == nil {
		return false
	}

	dir, _ := geom.Direction(m.ball.Position, mate.Position)
	m.ball.Velocity = dir.Scale(PassSpeed)
	m.emit(types.GameplayEvent{Type: types.EventPass, PlayerID: p.ID, Team: p.Team})
	return true
}

// Shoot drives the ball at the opposing goal mouth with a random vertical
// offset. Same proximity rule as Pass.
func (m *Match) Shoot() bool {
	p := m.controlled
	if !m.canPlayBall(p) {
		return false
	}

	side := SideOf(p.Team).Opposite()
	jitter := m.field.GoalHeight() * ShotJitterRatio
	offset := (m.rng.Float64()*2 - 1) * jitter
	target := geom.V(m.field.GoalLine(side), m.field.Center().Y+offset)

	dir, _ := geom.Direction(m.ball.Position, target)
	m.ball.Velocity = dir.Scale(ShotSpeed)
	m.emit(types.GameplayEvent{Type: types.EventShot, PlayerID: p.ID, Team: p.Team})
	return true
}

func (m *Match) canPlayBall(p *Player) bool {
	if p == nil {
		return false
	}
	return geom.Distance(p.Position, m.ball.Position) <= ProximityRadius
}
