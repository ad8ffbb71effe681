package entity

import (
	"canvas-snake/game/types"
)

// Snake holds the body and heading of the player snake. Body[0] is the head.
type Snake struct {
	Body     []types.Point
	Velocity types.Point
	grow     bool
	lastTail *types.Point
}

// NewSnake builds a snake whose head sits at head and whose remaining
// length-1 segments trail behind it on the negative x axis.
func NewSnake(head types.Point, length, scale int) *Snake {
	s := &Snake{
		Body:     []types.Point{head},
		Velocity: types.RIGHT.ToPoint(), // Start moving right
	}
	for i := 1; i < length; i++ {
		s.Body = append(s.Body, types.Point{X: head.X - scale*i, Y: head.Y})
	}
	return s
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// SetDirection changes the heading unless dir would reverse the snake onto
// its own neck.
func (s *Snake) SetDirection(dir types.Direction) {
	if dir == types.NONE {
		return
	}
	v := dir.ToPoint()
	if v.X == -s.Velocity.X && v.Y == -s.Velocity.Y {
		return
	}
	s.Velocity = v
}

// Advance moves every segment into the cell of the one ahead of it, walking
// from the tail so nothing is overwritten before it is read, then steps the
// head by velocity*scale.
func (s *Snake) Advance(scale int) {
	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i] = s.Body[i-1]
	}
	s.Body[0] = s.Body[0].Add(s.Velocity, scale)
}

// RememberTail records the current tail cell for a later ApplyGrowth.
func (s *Snake) RememberTail() {
	tail := s.GetTail()
	s.lastTail = &tail
}

// LastTail returns the recorded tail cell, if any.
func (s *Snake) LastTail() (types.Point, bool) {
	if s.lastTail == nil {
		return types.Point{}, false
	}
	return *s.lastTail, true
}

// ScheduleGrowth marks the snake to grow on the next ApplyGrowth.
func (s *Snake) ScheduleGrowth() {
	s.grow = true
}

func (s *Snake) GrowthPending() bool {
	return s.grow
}

// ApplyGrowth appends a segment at the remembered tail cell when growth is
// pending. It reports whether the body grew.
func (s *Snake) ApplyGrowth() bool {
	if !s.grow {
		return false
	}
	s.grow = false
	tail, ok := s.LastTail()
	if !ok {
		return false
	}
	s.Body = append(s.Body, tail)
	return true
}
