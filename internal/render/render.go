package render

import (
	"github.com/jssohel603-bot/football-game/internal/field"
	"github.com/jssohel603-bot/football-game/internal/geom"
	"github.com/jssohel603-bot/football-game/internal/shared/types"
	"github.com/jssohel603-bot/football-game/internal/simulation"
)

// Surface is the set of 2D primitives a frontend provides. Colours are
// "#rrggbb" strings.
type Surface interface {
	FillRect(r geom.Rect, color string)
	StrokeRect(r geom.Rect, color string, width float64)
	FillCircle(center geom.Vec2, radius float64, color string)
	StrokeCircle(center geom.Vec2, radius float64, color string, width float64)
	Line(from, to geom.Vec2, color string, width float64)
}

const (
	GrassColor      = "#2e7d32"
	LineColor       = "#ffffff"
	GoalColor       = "#e5e7eb"
	BallColor       = "#fafafa"
	BallOutline     = "#111827"
	ControlledColor = "#ffeb3b"

	lineWidth       = 2
	centreCircleR   = 60
	controlledWidth = 3
)

// Draw paints one frame: pitch, markings, goals, players then the ball.
func Draw(s Surface, f field.Field, snap types.MatchSnapshot) {
	drawPitch(s, f)

	for _, p := range snap.Players {
		s.FillCircle(p.Position, simulation.PlayerRadius, p.Color)
		if p.Controlled {
			s.StrokeCircle(p.Position, simulation.PlayerRadius+2, ControlledColor, controlledWidth)
		}
	}

	r := snap.Ball.Radius
	if r <= 0 {
		r = simulation.BallRadius
	}
	s.FillCircle(snap.Ball.Position, r, BallColor)
	s.StrokeCircle(snap.Ball.Position, r, BallOutline, 1)
}

func drawPitch(s Surface, f field.Field) {
	b := f.Bounds()
	c := f.Center()

	s.FillRect(b, GrassColor)
	s.StrokeRect(b, LineColor, lineWidth)
	s.Line(geom.V(c.X, b.Top), geom.V(c.X, b.Bottom), LineColor, lineWidth)
	s.StrokeCircle(c, centreCircleR, LineColor, lineWidth)
	s.FillCircle(c, 3, LineColor)

	for _, side := range []field.Side{field.Left, field.Right} {
		s.StrokeRect(f.PenaltyBox(side), LineColor, lineWidth)
		goal := f.GoalMouth(side)
		s.FillRect(goal, GoalColor)
		s.StrokeRect(goal, LineColor, lineWidth)
	}
}
