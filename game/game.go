package game

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"torus-snake/game/entity"
	"torus-snake/game/types"
)

// Game aggregates the snake, the food slots and the session score, and
// drives one simulation step per host tick.
type Game struct {
	ID   string
	Grid types.Grid

	snake    *entity.Snake
	foods    []*entity.Food
	score    int
	recorded bool // score already pushed to stats for this life
	rng      *rand.Rand
	stats    Stats
}

// NewGame builds a game on the default grid with the default snake start
// configuration and freshly placed food.
func NewGame(rng *rand.Rand) (*Game, error) {
	gameUUID := uuid.New().String()
	g := &Game{
		ID:   gameUUID,
		Grid: types.Grid{Width: types.GridWidth, Height: types.GridHeight},
		rng:  rng,
		stats: Stats{
			SessionID: gameUUID,
		},
	}

	g.snake = entity.NewSnake(entity.Config{
		Grid:   g.Grid,
		Start:  types.Point{X: types.StartX, Y: types.StartY},
		Length: types.StartLength,
		Speed:  types.StartSpeed,
	})

	g.foods = make([]*entity.Food, types.FoodCount)
	for i := range g.foods {
		g.foods[i] = entity.NewFood()
		if err := g.foods[i].Generate(g.rng, g.Grid, g.snake); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Tick runs one driver step: advance the snake if its step timer is due,
// then resolve food collisions. Eating grows the snake, bumps the score
// and relocates the food in place. Once the snake is dead the score is
// recorded and gameplay updates stop until Reset.
func (g *Game) Tick(now time.Time) error {
	if g.snake.Dead() {
		if !g.recorded {
			g.stats.Record(g.score)
			g.recorded = true
		}
		return nil
	}

	g.snake.Tick(now)

	for _, food := range g.foods {
		if !g.snake.HasCollided(food) {
			continue
		}
		g.score++
		g.snake.Grow()
		if err := food.Generate(g.rng, g.Grid, g.snake); err != nil {
			return err
		}
	}
	return nil
}

// HandleKey forwards a raw key code to the snake. Codes without a
// direction binding are ignored.
func (g *Game) HandleKey(code int32) {
	g.snake.SetDirection(code)
}

// Reset respawns the snake from its start configuration, clears the
// score and places new food.
func (g *Game) Reset() error {
	g.snake.Reset()
	g.score = 0
	g.recorded = false
	for _, food := range g.foods {
		if err := food.Generate(g.rng, g.Grid, g.snake); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Foods() []*entity.Food {
	return g.foods
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Over() bool {
	return g.snake.Dead()
}

func (g *Game) Stats() *Stats {
	return &g.stats
}
