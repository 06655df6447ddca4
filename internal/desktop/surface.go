package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/jssohel603-bot/football-game/internal/geom"
	"github.com/jssohel603-bot/football-game/internal/render"
)

// Surface draws render primitives onto an ebiten image.
type Surface struct {
	dst *ebiten.Image
}

func NewSurface(dst *ebiten.Image) *Surface {
	return &Surface{dst: dst}
}

func (s *Surface) FillRect(r geom.Rect, color string) {
	vector.DrawFilledRect(s.dst, float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()),
		render.ColorOf(color), false)
}

func (s *Surface) StrokeRect(r geom.Rect, color string, width float64) {
	vector.StrokeRect(s.dst, float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()),
		float32(width), render.ColorOf(color), false)
}

func (s *Surface) FillCircle(c geom.Vec2, radius float64, color string) {
	vector.DrawFilledCircle(s.dst, float32(c.X), float32(c.Y), float32(radius), render.ColorOf(color), true)
}

func (s *Surface) StrokeCircle(c geom.Vec2, radius float64, color string, width float64) {
	vector.StrokeCircle(s.dst, float32(c.X), float32(c.Y), float32(radius), float32(width), render.ColorOf(color), true)
}

func (s *Surface) Line(from, to geom.Vec2, color string, width float64) {
	vector.StrokeLine(s.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y),
		float32(width), render.ColorOf(color), true)
}
