package interact

// Point is a position in absolute pixel space. The Y axis grows downward,
// as on screen.
type Point struct {
	X, Y float64
}

// Dim is a width/height pair in pixels.
type Dim struct {
	W, H float64
}

// Add offsets a point by dx and dy.
func (p Point) Add(dx, dy float64) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Shrink removes amount from every edge of a dimension.
func (d Dim) Shrink(amount float64) Dim {
	return Dim{d.W - 2.0*amount, d.H - 2.0*amount}
}

// IsOver reports whether p lies within the axis-aligned rectangle at pos
// with the given dimensions, inclusive of edges.
func IsOver(pos Point, dim Dim, p Point) bool {
	return p.X >= pos.X && p.X <= pos.X+dim.W &&
		p.Y >= pos.Y && p.Y <= pos.Y+dim.H
}

// Corner identifies the quadrant of a container a point falls in. It is
// used to anchor overlay labels away from the container edge nearest the
// cursor.
type Corner uint8

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// CornerOf classifies p into one of the four quadrants of the container at
// pos with the given dimensions.
func CornerOf(pos Point, p Point, dim Dim) Corner {
	left := p.X <= pos.X+dim.W/2.0
	top := p.Y <= pos.Y+dim.H/2.0
	switch {
	case left && top:
		return TopLeft
	case top:
		return TopRight
	case left:
		return BottomLeft
	default:
		return BottomRight
	}
}

// NearestPoint scans candidates for the one closest to target by squared
// Euclidean distance. When a candidate lies within radius of the target the
// scan short-circuits and that candidate is returned as an exact hit;
// otherwise hit is -1. closest is always the index of the nearest candidate,
// or -1 when candidates is empty. The split lets a caller distinguish
// "pointer captured a point" from "pointer merely near a point".
func NearestPoint(candidates []Point, target Point, radius float64) (hit, closest int) {
	hit, closest = -1, -1
	closestDist := 0.0
	for i, c := range candidates {
		dx := target.X - c.X
		dy := target.Y - c.Y
		dist := dx*dx + dy*dy
		if dist <= radius*radius {
			return i, i
		}
		if closest == -1 || dist < closestDist {
			closestDist = dist
			closest = i
		}
	}
	return hit, closest
}
