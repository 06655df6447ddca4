package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jssohel603-bot/football-game/internal/field"
	"github.com/jssohel603-bot/football-game/internal/geom"
	"github.com/jssohel603-bot/football-game/internal/shared/types"
	"github.com/jssohel603-bot/football-game/internal/simulation"
)

type call struct {
	op     string
	color  string
	center geom.Vec2
	radius float64
	rect   geom.Rect
}

type recordingSurface struct {
	calls []call
}

func (r *recordingSurface) FillRect(rect geom.Rect, c string) {
	r.calls = append(r.calls, call{op: "fillRect", color: c, rect: rect})
}

func (r *recordingSurface) StrokeRect(rect geom.Rect, c string, _ float64) {
	r.calls = append(r.calls, call{op: "strokeRect", color: c, rect: rect})
}

func (r *recordingSurface) FillCircle(center geom.Vec2, radius float64, c string) {
	r.calls = append(r.calls, call{op: "fillCircle", color: c, center: center, radius: radius})
}

func (r *recordingSurface) StrokeCircle(center geom.Vec2, radius float64, c string, _ float64) {
	r.calls = append(r.calls, call{op: "strokeCircle", color: c, center: center, radius: radius})
}

func (r *recordingSurface) Line(from, to geom.Vec2, c string, _ float64) {
	r.calls = append(r.calls, call{op: "line", color: c, center: from})
}

func (r *recordingSurface) count(op, c string) int {
	n := 0
	for _, cl := range r.calls {
		if cl.op == op && (c == "" || cl.color == c) {
			n++
		}
	}
	return n
}

func TestDrawPaintsEveryEntity(t *testing.T) {
	// Arrange
	m, err := simulation.NewMatch(simulation.Options{Seed: 1})
	require.NoError(t, err)
	snap := m.Snapshot()
	surface := &recordingSurface{}

	// Act
	Draw(surface, m.Field(), snap)

	// Assert
	require.NotEmpty(t, surface.calls)
	first := surface.calls[0]
	assert.Equal(t, "fillRect", first.op)
	assert.Equal(t, GrassColor, first.color)
	assert.Equal(t, m.Field().Bounds(), first.rect)

	players := 0
	for _, p := range snap.Players {
		for _, cl := range surface.calls {
			if cl.op == "fillCircle" && cl.center == p.Position && cl.color == p.Color {
				players++
				break
			}
		}
	}
	assert.Equal(t, len(snap.Players), players)
	assert.Equal(t, 1, surface.count("strokeCircle", ControlledColor))
	assert.Equal(t, 2, surface.count("fillRect", GoalColor))
	assert.Equal(t, 1, surface.count("line", LineColor))

	last := surface.calls[len(surface.calls)-1]
	assert.Equal(t, snap.Ball.Position, last.center, "ball is drawn on top")
}

func TestKeepersUseDistinctColours(t *testing.T) {
	m, err := simulation.NewMatch(simulation.Options{Seed: 1})
	require.NoError(t, err)

	outfield := map[string]bool{}
	keepers := map[string]bool{}
	for _, p := range m.Snapshot().Players {
		if p.Goalkeeper {
			keepers[p.Color] = true
		} else {
			outfield[p.Color] = true
		}
	}
	assert.Len(t, keepers, 2)
	assert.Len(t, outfield, 2)
	for c := range keepers {
		assert.False(t, outfield[c], "keeper colour %s reused by outfield", c)
	}
}

func TestDrawPenaltyBoxesOnBothSides(t *testing.T) {
	f := field.Default()
	surface := &recordingSurface{}
	Draw(surface, f, types.MatchSnapshot{})

	boxes := 0
	for _, cl := range surface.calls {
		if cl.op == "strokeRect" && (cl.rect == f.PenaltyBox(field.Left) || cl.rect == f.PenaltyBox(field.Right)) {
			boxes++
		}
	}
	assert.Equal(t, 2, boxes)
}

type sink struct {
	writes []string
}

func (s *sink) SetText(text string) { s.writes = append(s.writes, text) }

func TestScoreboardWritesOnlyOnChange(t *testing.T) {
	out := &sink{}
	board := NewScoreboard(out)

	assert.True(t, board.Update("Red 0 - 0 Blue"))
	assert.False(t, board.Update("Red 0 - 0 Blue"))
	assert.True(t, board.Update("Red 1 - 0 Blue"))
	assert.Equal(t, []string{"Red 0 - 0 Blue", "Red 1 - 0 Blue"}, out.writes)
	assert.Equal(t, "Red 1 - 0 Blue", board.Text())
}

func TestScoreboardShowsFirstLineEvenWhenEmpty(t *testing.T) {
	out := &sink{}
	board := NewScoreboard(out)
	assert.True(t, board.Update(""))
	assert.Equal(t, []string{""}, out.writes)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#d62828")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xd6, G: 0x28, B: 0x28, A: 0xff}, c)

	c, err = ParseHex("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	_, err = ParseHex("#12345")
	assert.Error(t, err)
	_, err = ParseHex("#zzzzzz")
	assert.Error(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, B: 0xff, A: 0xff}, ColorOf("nope"))
}
