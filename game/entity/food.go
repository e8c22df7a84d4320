package entity

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"

	"torus-snake/game/types"
)

// ErrGridFull is returned when no free cell could be found for food
// placement. With a bounded number of attempts this is the explicit
// replacement for the original rules' unbounded retry.
var ErrGridFull = errors.New("no free cell for food placement")

// placementAttempts bounds Generate's rejection sampling per call,
// expressed as a multiple of the grid area.
const placementAttempts = 8

// Food occupies a single grid cell. It is placed once at game start and
// re-placed in the same slot each time it is eaten.
type Food struct {
	pos types.Point
}

func NewFood() *Food {
	return &Food{}
}

// Generate samples random cells until one misses the snake's body, then
// moves the food there. Sampling rounds rather than truncates, which
// halves the weight of the two edge columns and rows; the skew is kept
// for compatibility with the original rules.
func (f *Food) Generate(rng *rand.Rand, grid types.Grid, snake *Snake) error {
	for attempts := 0; attempts < grid.Width*grid.Height*placementAttempts; attempts++ {
		p := types.Point{
			X: int(math.Round(rng.Float64() * float64(grid.Width-1))),
			Y: int(math.Round(rng.Float64() * float64(grid.Height-1))),
		}
		if !snake.Occupies(p) {
			f.pos = p
			return nil
		}
	}
	return ErrGridFull
}

// Place moves the food to a fixed cell, bypassing random placement.
func (f *Food) Place(p types.Point) {
	f.pos = p
}

func (f *Food) Position() types.Point {
	return f.pos
}
