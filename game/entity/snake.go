package entity

import (
	"time"

	"torus-snake/game/types"
)

// Config is the start configuration a snake respawns from.
type Config struct {
	Grid   types.Grid
	Start  types.Point
	Length int
	Speed  int // Milliseconds between steps; lower = faster
}

// Snake owns its body segments, heading and alive state. Body index 0 is
// the head, the last index is the tail; the order is both the rendering
// order and the movement propagation order.
type Snake struct {
	cfg       Config
	body      []types.Point
	direction types.Point
	speed     int
	dead      bool
	lastMove  time.Time
}

func NewSnake(cfg Config) *Snake {
	s := &Snake{cfg: cfg}
	s.spawn()
	return s
}

// spawn builds the initial body as a horizontal line with the head at the
// start position and the tail extending left, heading right.
func (s *Snake) spawn() {
	s.body = make([]types.Point, s.cfg.Length)
	for k := 0; k < s.cfg.Length; k++ {
		s.body[k] = s.cfg.Grid.Wrap(types.Point{X: s.cfg.Start.X - k, Y: s.cfg.Start.Y})
	}
	s.direction = types.DirRight
	s.speed = s.cfg.Speed
	s.lastMove = time.Time{}
}

// Move advances the head one cell in the current direction, wrapping at
// the grid edges, and shifts every segment onto the position of the one
// ahead of it so the body trails the head's path exactly one step behind.
//
// The self-collision check compares the new head against each segment's
// position before the shift, not after. Running into a cell the tail is
// about to vacate therefore still kills the snake; the collision resolves
// one tick late by design of the original rules.
func (s *Snake) Move() {
	if s.dead {
		return
	}
	newHead := s.cfg.Grid.Wrap(s.body[0].Add(s.direction))
	for i := len(s.body) - 1; i > 0; i-- {
		if s.body[i] == newHead {
			s.dead = true
		}
		s.body[i] = s.body[i-1]
	}
	s.body[0] = newHead
}

// Tick advances the simulation if enough wall-clock time has passed since
// the last step. The first call only seeds the accumulator, so the render
// rate stays decoupled from the simulation rate.
func (s *Snake) Tick(now time.Time) {
	if s.dead {
		return
	}
	if s.lastMove.IsZero() {
		s.lastMove = now
		return
	}
	if now.Sub(s.lastMove) >= time.Duration(s.speed)*time.Millisecond {
		s.Move()
		s.lastMove = now
	}
}

// Grow appends one segment past the current tail, continuing the tail's
// heading by one cell, and speeds the snake up by one step.
func (s *Snake) Grow() {
	tail := s.body[len(s.body)-1]
	ext := s.direction.Neg()
	if len(s.body) > 1 {
		ext = s.cfg.Grid.Delta(tail, s.body[len(s.body)-2])
	}
	s.body = append(s.body, s.cfg.Grid.Wrap(tail.Add(ext)))
	if s.speed > 0 {
		s.speed--
	}
}

// HasCollided reports whether the head occupies the food's cell.
func (s *Snake) HasCollided(f *Food) bool {
	return s.body[0] == f.Position()
}

// SetDirection maps a raw key code to a cardinal direction and applies it.
// Unknown codes are ignored. A change that would reverse the snake onto
// its own neck is rejected; the heading is taken from the head and first
// body segment rather than the direction field, so a turn queued before
// the next step commits cannot sneak in a 180.
func (s *Snake) SetDirection(code int32) {
	dir, ok := DirectionForKey(code)
	if !ok {
		return
	}
	if len(s.body) > 1 {
		heading := s.cfg.Grid.Delta(s.body[0], s.body[1])
		if dir == heading.Neg() {
			return
		}
	}
	s.direction = dir
}

// Reset clears the dead flag and respawns the snake at its start
// configuration. This is the only way back from the dead state.
func (s *Snake) Reset() {
	s.dead = false
	s.spawn()
}

// Occupies reports whether any body segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Body returns a copy of the body segments, head first.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

func (s *Snake) Head() types.Point {
	return s.body[0]
}

func (s *Snake) Direction() types.Point {
	return s.direction
}

func (s *Snake) Speed() int {
	return s.speed
}

func (s *Snake) Dead() bool {
	return s.dead
}
