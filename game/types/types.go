package types

// Grid represents the canvas bounds in pixels
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies on the canvas.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Point is a cell position in pixel units. Simulation points are always
// multiples of the current scale.
type Point struct {
	X, Y int
}

// Add returns p translated by d scaled by n.
func (p Point) Add(d Point, n int) Point {
	return Point{X: p.X + d.X*n, Y: p.Y + d.Y*n}
}

// Phase selects which update path the game loop runs.
type Phase int

const (
	Menu Phase = iota
	Running
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Menu:
		return "menu"
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	BoardFull
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case BoardFull:
		return "board_full"
	default:
		return "none"
	}
}
