package geom

import "math"

// Vec2 is a point or displacement on the pitch plane.
type Vec2 struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

func (a Vec2) Scale(f float64) Vec2 {
	return Vec2{X: a.X * f, Y: a.Y * f}
}

func (a Vec2) Mag() float64 {
	return math.Hypot(a.X, a.Y)
}

func (a Vec2) IsZero() bool {
	return a.X == 0 && a.Y == 0
}

// Normalize returns the unit vector of a. A zero vector is divided by 1
// and therefore stays zero.
func (a Vec2) Normalize() Vec2 {
	return a.Scale(1 / minDivisor(a.Mag()))
}

// Rect is an axis-aligned rectangle given by its edges.
type Rect struct {
	Left   float64 `json:"left" msgpack:"left"`
	Top    float64 `json:"top" msgpack:"top"`
	Right  float64 `json:"right" msgpack:"right"`
	Bottom float64 `json:"bottom" msgpack:"bottom"`
}

func (r Rect) Width() float64 {
	return r.Right - r.Left
}

func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Clamp limits v to [minV, maxV].
func Clamp(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Mag()
}

// Direction returns the unit vector from `from` toward `to` together with
// the true distance. Coincident points yield a zero direction.
func Direction(from, to Vec2) (Vec2, float64) {
	d := to.Sub(from)
	dist := d.Mag()
	return d.Scale(1 / minDivisor(dist)), dist
}

// StepToward moves from `pos` toward `target` by at most `step`.
func StepToward(pos, target Vec2, step float64) Vec2 {
	dir, dist := Direction(pos, target)
	if dist <= step {
		return target
	}
	return pos.Add(dir.Scale(step))
}

func minDivisor(d float64) float64 {
	if d == 0 {
		return 1
	}
	return d
}
