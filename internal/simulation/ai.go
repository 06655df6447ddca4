package simulation

import (
	"sort"

	"github.com/jssohel603-bot/football-game/internal/geom"
	"github.com/jssohel603-bot/football-game/internal/shared/types"
)

// SelectChasers returns the n players nearest to ball, nearest first. Equal
// distances keep roster order, so the result is deterministic.
func SelectChasers(players []*Player, ball geom.Vec2, n int) []*Player {
	if n > len(players) {
		n = len(players)
	}
	if n <= 0 {
		return nil
	}

	ranked := make([]*Player, len(players))
	copy(ranked, players)
	dist := make(map[*Player]float64, len(ranked))
	for _, p := range ranked {
		dist[p] = geom.Distance(p.Position, ball)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return dist[ranked[i]] < dist[ranked[j]]
	})
	return ranked[:n]
}

// aiOutfield returns the team's outfield players not driven by the human,
// in roster order.
func (m *Match) aiOutfield(team types.Team) []*Player {
	out := make([]*Player, 0, PlayersPerTeam-1)
	for _, p := range m.players {
		if p.Team != team || m.isHumanDriven(p) {
			continue
		}
		if _, ok := p.Role.(Outfield); ok {
			out = append(out, p)
		}
	}
	return out
}

func (m *Match) runAI() {
	ball := m.ball.Position

	for _, team := range []types.Team{types.TeamA, types.TeamB} {
		candidates := m.aiOutfield(team)
		chasing := make(map[*Player]bool, ChaserCount)
		for _, p := range SelectChasers(candidates, ball, ChaserCount) {
			chasing[p] = true
		}

		for _, p := range candidates {
			home := p.Role.(Outfield).Home
			prev := p.Position
			switch {
			case chasing[p]:
				dir, _ := geom.Direction(p.Position, ball)
				p.Position = p.Position.Add(dir.Scale(AISpeed))
			case geom.Distance(p.Position, home) > HomeEpsilon:
				p.Position = geom.StepToward(p.Position, home, ReturnSpeed)
			}
			p.Velocity = p.Position.Sub(prev)
		}
	}

	for _, p := range m.players {
		keeper, ok := p.Role.(Goalkeeper)
		if !ok || m.isHumanDriven(p) {
			continue
		}
		m.followBall(p, keeper)
	}
}

// followBall keeps the goalkeeper on its line and tracks the ball inside
// a band around the vertical centre.
func (m *Match) followBall(p *Player, keeper Goalkeeper) {
	cy := m.field.Center().Y
	targetY := geom.Clamp(m.ball.Position.Y, cy-KeeperBandHalf, cy+KeeperBandHalf)
	prev := p.Position
	dy := geom.Clamp(targetY-p.Position.Y, -KeeperSpeed, KeeperSpeed)
	p.Position = geom.V(keeper.Anchor.X, p.Position.Y+dy)
	p.Velocity = p.Position.Sub(prev)
}

func (m *Match) isHumanDriven(p *Player) bool {
	return p == m.controlled && !m.autopilot
}
