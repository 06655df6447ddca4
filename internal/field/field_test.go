package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jssohel603-bot/football-game/internal/geom"
)

func TestNewRejectsInvalidGeometry(t *testing.T) {
	_, err := New(geom.Rect{Left: 100, Top: 0, Right: 50, Bottom: 100}, 10, 5, 0, 0)
	assert.Error(t, err)

	_, err = New(geom.Rect{Left: 0, Top: 100, Right: 100, Bottom: 100}, 10, 5, 0, 0)
	assert.Error(t, err)

	_, err = New(geom.Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}, 100, 5, 0, 0)
	assert.Error(t, err)
}

func TestDefaultField(t *testing.T) {
	f := Default()
	assert.Equal(t, geom.V(500, 300), f.Center())
	assert.Equal(t, DefaultGoalHeight, f.GoalHeight())
}

func TestIsInsideAndClamp(t *testing.T) {
	f := Default()
	assert.True(t, f.IsInsideField(geom.V(52, 52), 12))
	assert.False(t, f.IsInsideField(geom.V(45, 300), 12))

	p := f.ClampToField(geom.V(0, 1000), 12)
	assert.Equal(t, geom.V(52, 548), p)
	assert.True(t, f.IsInsideField(p, 12))
}

func TestGoalMouth(t *testing.T) {
	f := Default()
	left := f.GoalMouth(Left)
	assert.Equal(t, geom.Rect{Left: 16, Top: 230, Right: 40, Bottom: 370}, left)

	right := f.GoalMouth(Right)
	assert.Equal(t, 960.0, right.Left)
	assert.Equal(t, 984.0, right.Right)
}

func TestPenaltyBoxIsInsideField(t *testing.T) {
	f := Default()
	for _, side := range []Side{Left, Right} {
		box := f.PenaltyBox(side)
		require.True(t, f.IsInsideField(geom.V(box.Left, box.Top), 0), side.String())
		require.True(t, f.IsInsideField(geom.V(box.Right, box.Bottom), 0), side.String())
	}
}

func TestIsInGoal(t *testing.T) {
	f := Default()
	const r = 8.0

	assert.True(t, f.IsInGoal(geom.V(47, 300), r, Left))
	assert.False(t, f.IsInGoal(geom.V(48, 300), r, Left), "touching the line is not a crossing")
	assert.False(t, f.IsInGoal(geom.V(47, 300), r, Right))

	assert.True(t, f.IsInGoal(geom.V(953, 369), r, Right))
	assert.False(t, f.IsInGoal(geom.V(953, 370), r, Right), "outside the goal band")
	assert.False(t, f.IsInGoal(geom.V(20, 100), r, Left))
}

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, Right, Left.Opposite())
	assert.Equal(t, Left, Right.Opposite())
}
