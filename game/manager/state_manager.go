package manager

import (
	"canvas-snake/game/types"
)

// StateManager is the state block shared by the controller and the
// simulation: phase, score, cell scale and the last pressed direction.
// It is passed explicitly instead of living in a package variable.
type StateManager struct {
	grid         types.Grid
	baseScale    int
	phase        types.Phase
	score        int
	scale        int
	directionKey types.Direction
}

func NewStateManager(grid types.Grid, baseScale int) *StateManager {
	return &StateManager{
		grid:      grid,
		baseScale: baseScale,
		phase:     types.Menu,
		scale:     baseScale,
	}
}

// ResetData restores score, direction key and scale to their defaults.
func (sm *StateManager) ResetData() {
	sm.score = 0
	sm.directionKey = types.NONE
	sm.scale = sm.baseScale
}

func (sm *StateManager) Grid() types.Grid {
	return sm.grid
}

func (sm *StateManager) Phase() types.Phase {
	return sm.phase
}

func (sm *StateManager) SetPhase(p types.Phase) {
	sm.phase = p
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) IncrementScore() {
	sm.score++
}

func (sm *StateManager) ResetScore() {
	sm.score = 0
}

func (sm *StateManager) Scale() int {
	return sm.scale
}

func (sm *StateManager) BaseScale() int {
	return sm.baseScale
}

// ReduceScale shrinks the cell size by the difficulty's reduction.
func (sm *StateManager) ReduceScale(by int) {
	sm.scale -= by
}

func (sm *StateManager) DirectionKey() types.Direction {
	return sm.directionKey
}

// SetDirectionKey stores the latest direction pressed. Earlier presses since
// the last tick are overwritten.
func (sm *StateManager) SetDirectionKey(d types.Direction) {
	sm.directionKey = d
}

func (sm *StateManager) ClearDirectionKey() {
	sm.directionKey = types.NONE
}
