package types

import "unicode"

// Direction is one of the four cardinal headings.
type Direction int

const (
	NONE Direction = iota
	UP
	LEFT
	DOWN
	RIGHT
)

// ToPoint converts a Direction to its unit velocity vector.
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case LEFT:
		return Point{X: -1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse heading. NONE has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case LEFT:
		return RIGHT
	case DOWN:
		return UP
	case RIGHT:
		return LEFT
	default:
		return NONE
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case LEFT:
		return "left"
	case DOWN:
		return "down"
	case RIGHT:
		return "right"
	default:
		return "none"
	}
}

// DirectionFromPoint interprets a velocity vector as a heading.
func DirectionFromPoint(v Point) Direction {
	switch {
	case v.Y < 0:
		return UP
	case v.X < 0:
		return LEFT
	case v.Y > 0:
		return DOWN
	case v.X > 0:
		return RIGHT
	default:
		return NONE
	}
}

// DirectionFromKey maps the w/a/s/d keys (either case) to a heading.
// Any other key reports false.
func DirectionFromKey(r rune) (Direction, bool) {
	switch unicode.ToLower(r) {
	case 'w':
		return UP, true
	case 'a':
		return LEFT, true
	case 's':
		return DOWN, true
	case 'd':
		return RIGHT, true
	default:
		return NONE, false
	}
}
