package bunnymesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Winding is the vertex order that makes a face point outwards.
type Winding int

const (
	CounterClockwise Winding = iota
	Clockwise
)

func (w Winding) String() string {
	if w == Clockwise {
		return "cw"
	}
	return "ccw"
}

// ParseWinding accepts "ccw" or "cw"; the empty string means ccw.
func ParseWinding(s string) (Winding, error) {
	switch s {
	case "", "ccw":
		return CounterClockwise, nil
	case "cw":
		return Clockwise, nil
	}
	return CounterClockwise, fmt.Errorf("unknown winding %q (want \"ccw\" or \"cw\")", s)
}

// Face is a triangle, referencing vertices by index.
type Face [3]int

// crossNormal returns the unnormalized normal of the triangle v0 v1 v2.
// Its length is twice the triangle's area.
func crossNormal(v0, v1, v2 mgl64.Vec3, winding Winding) mgl64.Vec3 {
	u := v1.Sub(v0)
	v := v2.Sub(v1)
	n := u.Cross(v)
	if winding == Clockwise {
		return n.Mul(-1)
	}
	return n
}

// normalize scales v to unit length. A zero vector stays zero.
func normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}
