package types

// Point is a single cell on the game grid.
type Point struct {
	X, Y int
}

// Add returns p offset by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Neg returns the opposite vector.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Cardinal direction vectors. Y grows downward, matching screen coordinates.
var (
	DirUp    = Point{X: 0, Y: -1}
	DirDown  = Point{X: 0, Y: 1}
	DirLeft  = Point{X: -1, Y: 0}
	DirRight = Point{X: 1, Y: 0}
)

// Grid represents the game grid dimensions. The topology is toroidal:
// leaving one edge re-enters at the opposite edge.
type Grid struct {
	Width  int
	Height int
}

// Wrap maps a position one step outside the grid back onto it.
func (g Grid) Wrap(p Point) Point {
	if p.X > g.Width-1 {
		p.X = 0
	} else if p.X < 0 {
		p.X = g.Width - 1
	}
	if p.Y > g.Height-1 {
		p.Y = 0
	} else if p.Y < 0 {
		p.Y = g.Height - 1
	}
	return p
}

// Delta returns the shortest vector from b to a on the torus, so that
// two cells adjacent across a seam still yield a unit vector.
func (g Grid) Delta(a, b Point) Point {
	d := Point{X: a.X - b.X, Y: a.Y - b.Y}
	if d.X > g.Width/2 {
		d.X -= g.Width
	} else if d.X < -g.Width/2 {
		d.X += g.Width
	}
	if d.Y > g.Height/2 {
		d.Y -= g.Height
	} else if d.Y < -g.Height/2 {
		d.Y += g.Height
	}
	return d
}

type Color struct {
	R, G, B uint8
}

// Game constants
const (
	GridWidth  = 35
	GridHeight = 35
	CellSize   = 20 // Cell edge in pixels at the default window size

	StartX      = 17
	StartY      = 17
	StartLength = 5
	StartSpeed  = 150 // Milliseconds per step; lower = faster
	FoodCount   = 1
)

var (
	ColorBackground = Color{R: 10, G: 10, B: 10}
	ColorSnake      = Color{R: 0, G: 228, B: 48}
	ColorFood       = Color{R: 230, G: 41, B: 55}
)
