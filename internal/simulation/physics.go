package simulation

import (
	"github.com/jssohel603-bot/football-game/internal/field"
	"github.com/jssohel603-bot/football-game/internal/geom"
	"github.com/jssohel603-bot/football-game/internal/shared/types"
)

func (m *Match) clampPlayers() {
	for _, p := range m.players {
		p.Position = m.field.ClampToField(p.Position, PlayerRadius)
	}
}

// resolvePlayerBall pushes the ball out of every overlapping player in roster
// order and kicks it along the contact normal. Returns whether any contact
// happened.
func (m *Match) resolvePlayerBall() bool {
	contact := PlayerRadius + BallRadius
	hit := false
	for _, p := range m.players {
		n, dist := geom.Direction(p.Position, m.ball.Position)
		if dist >= contact {
			continue
		}
		hit = true
		m.ball.Position = p.Position.Add(n.Scale(contact + CollisionSlop))
		m.ball.Velocity = m.ball.Velocity.Add(n.Scale(KickImpulse))
	}
	return hit
}

func (m *Match) integrateBall() {
	m.ball.Position = m.ball.Position.Add(m.ball.Velocity)
	m.ball.Velocity = m.ball.Velocity.Scale(Friction)
	if m.ball.Velocity.Mag() < StopSpeed {
		m.ball.Velocity = geom.Vec2{}
	}
}

// bounceBall reflects the ball off the touchlines and goal lines. The goal
// mouth is open: no reflection on a short side inside the goal band.
func (m *Match) bounceBall() {
	b := m.field.Bounds()
	pos, vel := m.ball.Position, m.ball.Velocity

	if pos.Y-BallRadius < b.Top {
		pos.Y = b.Top + BallRadius
		vel.Y = -vel.Y * Restitution
	}
	if pos.Y+BallRadius > b.Bottom {
		pos.Y = b.Bottom - BallRadius
		vel.Y = -vel.Y * Restitution
	}
	if !m.field.InGoalBand(pos.Y) {
		if pos.X-BallRadius < b.Left {
			pos.X = b.Left + BallRadius
			vel.X = -vel.X * Restitution
		}
		if pos.X+BallRadius > b.Right {
			pos.X = b.Right - BallRadius
			vel.X = -vel.X * Restitution
		}
	}

	m.ball.Position, m.ball.Velocity = pos, vel
}

// detectGoal credits the team attacking the goal the ball crossed and
// restarts play.
func (m *Match) detectGoal() bool {
	for _, side := range []field.Side{field.Left, field.Right} {
		if !m.field.IsInGoal(m.ball.Position, BallRadius, side) {
			continue
		}
		scorer := types.TeamB
		if side == field.Right {
			scorer = types.TeamA
		}
		if scorer == types.TeamA {
			m.score.A++
		} else {
			m.score.B++
		}
		m.emit(types.GameplayEvent{Type: types.EventGoal, Team: scorer})
		m.kickoff(types.ReasonGoal)
		return true
	}
	return false
}
