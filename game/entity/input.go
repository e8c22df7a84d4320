package entity

import "torus-snake/game/types"

// Key codes as raylib delivers them (GLFW values). Arrows and WASD are
// aliases for the four cardinal directions; everything else is ignored.
const (
	KeyRight = 262
	KeyLeft  = 263
	KeyDown  = 264
	KeyUp    = 265
	KeyA     = 65
	KeyD     = 68
	KeyS     = 83
	KeyW     = 87
)

var keyDirections = map[int32]types.Point{
	KeyUp:    types.DirUp,
	KeyW:     types.DirUp,
	KeyDown:  types.DirDown,
	KeyS:     types.DirDown,
	KeyLeft:  types.DirLeft,
	KeyA:     types.DirLeft,
	KeyRight: types.DirRight,
	KeyD:     types.DirRight,
}

// DirectionForKey maps a raw key code to a cardinal direction vector.
// The second return is false for codes with no binding.
func DirectionForKey(code int32) (types.Point, bool) {
	dir, ok := keyDirections[code]
	return dir, ok
}
