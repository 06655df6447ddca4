package simulation

import (
	"fmt"

	"github.com/jssohel603-bot/football-game/internal/field"
	"github.com/jssohel603-bot/football-game/internal/geom"
	"github.com/jssohel603-bot/football-game/internal/shared/types"
)

// Role is either Goalkeeper or Outfield.
type Role interface {
	isRole()
}

// Goalkeeper is pinned to Anchor's x and follows the ball vertically.
type Goalkeeper struct {
	Anchor geom.Vec2
}

// Outfield players return to Home when not chasing and on every kickoff.
type Outfield struct {
	Home geom.Vec2
}

func (Goalkeeper) isRole() {}
func (Outfield) isRole()   {}

// Player is one of the 22 units on the pitch.
type Player struct {
	ID       string
	Team     types.Team
	Number   int
	Role     Role
	Position geom.Vec2
	Velocity geom.Vec2
	Color    string
}

func (p *Player) IsGoalkeeper() bool {
	_, ok := p.Role.(Goalkeeper)
	return ok
}

// Start returns the kickoff position for the player's role.
func (p *Player) Start() geom.Vec2 {
	switch r := p.Role.(type) {
	case Goalkeeper:
		return r.Anchor
	case Outfield:
		return r.Home
	}
	return p.Position
}

// Ball is the single match ball.
type Ball struct {
	Position geom.Vec2
	Velocity geom.Vec2
}

// SideOf returns the goal a team defends.
func SideOf(team types.Team) field.Side {
	if team == types.TeamB {
		return field.Right
	}
	return field.Left
}

// NewRoster builds the fixed 11-player lineup for team: a goalkeeper, a
// two-column grid of four rows and two forwards. Team B mirrors team A.
func NewRoster(f field.Field, team types.Team) []*Player {
	b := f.Bounds()
	side := SideOf(team)

	// x measured as a fraction of the width from the team's own goal line
	at := func(depth, row float64) geom.Vec2 {
		x := b.Left + depth*b.Width()
		if side == field.Right {
			x = b.Right - depth*b.Width()
		}
		return geom.V(x, b.Top+row*b.Height())
	}

	color, keeperColor := colorTeamA, colorKeeperA
	if team == types.TeamB {
		color, keeperColor = colorTeamB, colorKeeperB
	}

	anchorX := f.GoalLine(side) + KeeperLineOffset
	if side == field.Right {
		anchorX = f.GoalLine(side) - KeeperLineOffset
	}
	anchor := geom.V(anchorX, f.Center().Y)

	roster := make([]*Player, 0, PlayersPerTeam)
	roster = append(roster, &Player{
		ID:       playerID(team, 0),
		Team:     team,
		Number:   0,
		Role:     Goalkeeper{Anchor: anchor},
		Position: anchor,
		Color:    keeperColor,
	})

	homes := make([]geom.Vec2, 0, PlayersPerTeam-1)
	for _, row := range gridRows {
		homes = append(homes, at(defenceDepth, row))
	}
	for _, row := range gridRows {
		homes = append(homes, at(midfieldDepth, row))
	}
	for _, row := range forwardRows {
		homes = append(homes, at(forwardDepth, row))
	}

	for i, home := range homes {
		n := i + 1
		roster = append(roster, &Player{
			ID:       playerID(team, n),
			Team:     team,
			Number:   n,
			Role:     Outfield{Home: home},
			Position: home,
			Color:    color,
		})
	}
	return roster
}

func playerID(team types.Team, n int) string {
	return fmt.Sprintf("%s%d", team, n)
}
