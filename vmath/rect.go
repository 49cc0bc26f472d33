package vmath

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrDegenerateDirection is returned when a zero direction is projected onto a rectangle
var ErrDegenerateDirection = errors.New("vmath: zero direction has no rectangle intersection")

// Edge names the side of a rectangle hit by a projected ray
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeRight
	EdgeBottom
	EdgeTop
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeTop:
		return "top"
	default:
		return "none"
	}
}

// ProjectOntoBoundingRect casts a ray from the origin along dir and returns where it leaves the
// rectangle [lo, hi], together with the edge crossed
// The rectangle must contain the origin; a tie between edges resolves to the vertical (x) edge
func ProjectOntoBoundingRect(dir, lo, hi mgl64.Vec2) (mgl64.Vec2, Edge, error) {
	var (
		tx, ty       float64
		hasX, hasY   bool
		edgeX, edgeY Edge
	)

	switch {
	case dir.X() > 0:
		tx, hasX, edgeX = hi.X()/dir.X(), true, EdgeRight
	case dir.X() < 0:
		tx, hasX, edgeX = lo.X()/dir.X(), true, EdgeLeft
	}

	switch {
	case dir.Y() > 0:
		ty, hasY, edgeY = hi.Y()/dir.Y(), true, EdgeTop
	case dir.Y() < 0:
		ty, hasY, edgeY = lo.Y()/dir.Y(), true, EdgeBottom
	}

	switch {
	case hasX && hasY:
		if ty < tx {
			return dir.Mul(ty), edgeY, nil
		}
		return dir.Mul(tx), edgeX, nil
	case hasX:
		return dir.Mul(tx), edgeX, nil
	case hasY:
		return dir.Mul(ty), edgeY, nil
	default:
		return mgl64.Vec2{}, EdgeNone, ErrDegenerateDirection
	}
}

// PointInRect reports whether p lies within [lo, hi], edges inclusive
func PointInRect(p, lo, hi mgl64.Vec2) bool {
	return p.X() >= lo.X() && p.X() <= hi.X() && p.Y() >= lo.Y() && p.Y() <= hi.Y()
}
