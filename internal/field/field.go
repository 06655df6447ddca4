package field

import (
	"fmt"
	"math"

	"github.com/jssohel603-bot/football-game/internal/geom"
)

// Side identifies one of the two short sides of the pitch.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Opposite returns the other short side.
func (s Side) Opposite() Side {
	if s == Right {
		return Left
	}
	return Right
}

const (
	DefaultLeft       = 40.0
	DefaultTop        = 40.0
	DefaultRight      = 960.0
	DefaultBottom     = 560.0
	DefaultGoalHeight = 140.0
	DefaultGoalDepth  = 24.0
	DefaultBoxDepth   = 130.0
	DefaultBoxHeight  = 300.0
)

// Field is the immutable pitch geometry. Penalty boxes are cosmetic.
type Field struct {
	bounds     geom.Rect
	goalHeight float64
	goalDepth  float64
	boxDepth   float64
	boxHeight  float64
}

// New validates the geometry and builds a Field.
func New(bounds geom.Rect, goalHeight, goalDepth, boxDepth, boxHeight float64) (Field, error) {
	if bounds.Left >= bounds.Right {
		return Field{}, fmt.Errorf("field left %.1f must be less than right %.1f", bounds.Left, bounds.Right)
	}
	if bounds.Top >= bounds.Bottom {
		return Field{}, fmt.Errorf("field top %.1f must be less than bottom %.1f", bounds.Top, bounds.Bottom)
	}
	if goalHeight <= 0 || goalHeight >= bounds.Height() {
		return Field{}, fmt.Errorf("goal height %.1f must be within (0, %.1f)", goalHeight, bounds.Height())
	}
	if goalDepth <= 0 {
		return Field{}, fmt.Errorf("goal depth %.1f must be positive", goalDepth)
	}
	return Field{
		bounds:     bounds,
		goalHeight: goalHeight,
		goalDepth:  goalDepth,
		boxDepth:   boxDepth,
		boxHeight:  boxHeight,
	}, nil
}

// Default returns the standard pitch.
func Default() Field {
	f, err := New(
		geom.Rect{Left: DefaultLeft, Top: DefaultTop, Right: DefaultRight, Bottom: DefaultBottom},
		DefaultGoalHeight, DefaultGoalDepth, DefaultBoxDepth, DefaultBoxHeight,
	)
	if err != nil {
		panic(err)
	}
	return f
}

func (f Field) Bounds() geom.Rect {
	return f.bounds
}

func (f Field) Center() geom.Vec2 {
	return f.bounds.Center()
}

func (f Field) GoalHeight() float64 {
	return f.goalHeight
}

// GoalLine returns the x coordinate of the goal line on the given side.
func (f Field) GoalLine(side Side) float64 {
	if side == Right {
		return f.bounds.Right
	}
	return f.bounds.Left
}

// InGoalBand reports whether y lies strictly within half the goal height
// of the vertical centre.
func (f Field) InGoalBand(y float64) bool {
	return math.Abs(y-f.Center().Y) < f.goalHeight/2
}

// IsInsideField reports whether p lies inside the pitch shrunk by margin.
func (f Field) IsInsideField(p geom.Vec2, margin float64) bool {
	return p.X >= f.bounds.Left+margin && p.X <= f.bounds.Right-margin &&
		p.Y >= f.bounds.Top+margin && p.Y <= f.bounds.Bottom-margin
}

// ClampToField pulls p inside the pitch shrunk by margin.
func (f Field) ClampToField(p geom.Vec2, margin float64) geom.Vec2 {
	return geom.Vec2{
		X: geom.Clamp(p.X, f.bounds.Left+margin, f.bounds.Right-margin),
		Y: geom.Clamp(p.Y, f.bounds.Top+margin, f.bounds.Bottom-margin),
	}
}

// GoalMouth is the goal rectangle behind the goal line of the given side.
func (f Field) GoalMouth(side Side) geom.Rect {
	cy := f.Center().Y
	r := geom.Rect{Top: cy - f.goalHeight/2, Bottom: cy + f.goalHeight/2}
	if side == Right {
		r.Left = f.bounds.Right
		r.Right = f.bounds.Right + f.goalDepth
	} else {
		r.Left = f.bounds.Left - f.goalDepth
		r.Right = f.bounds.Left
	}
	return r
}

// PenaltyBox is the cosmetic box in front of the goal on the given side.
func (f Field) PenaltyBox(side Side) geom.Rect {
	cy := f.Center().Y
	r := geom.Rect{Top: cy - f.boxHeight/2, Bottom: cy + f.boxHeight/2}
	if side == Right {
		r.Left = f.bounds.Right - f.boxDepth
		r.Right = f.bounds.Right
	} else {
		r.Left = f.bounds.Left
		r.Right = f.bounds.Left + f.boxDepth
	}
	return r
}

// IsInGoal reports whether the ball boundary has crossed the goal line on
// side while its centre is within the goal band. Goal depth is not checked.
func (f Field) IsInGoal(ball geom.Vec2, radius float64, side Side) bool {
	if !f.InGoalBand(ball.Y) {
		return false
	}
	if side == Right {
		return ball.X+radius > f.bounds.Right
	}
	return ball.X-radius < f.bounds.Left
}
