package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"canvas-snake/game"
	"canvas-snake/game/types"
)

var (
	background   = rl.NewColor(0x11, 0x11, 0x11, 255)
	segmentFill  = rl.NewColor(231, 231, 231, 255)
	segmentEdge  = rl.Black
	frameLine    = rl.NewColor(0x1d, 0x1d, 0x1d, 255)
	scoreColor   = rl.White
	scoreFontPx  = int32(20)
	foodGlowNear = greenAlpha(.04)
	foodGlowFar  = greenAlpha(.015)
)

// greenAlpha is the food green at the given opacity.
func greenAlpha(a float32) rl.Color {
	return rl.NewColor(100, 255, 100, uint8(a*255+0.5))
}

// Renderer draws the game into a window. Ticks paint into an off-screen
// texture that keeps its contents between ticks; every window frame shows
// that texture, or a menu/game over screen drawn on top of a cleared window.
type Renderer struct {
	width      int32
	height     int32
	canvas     rl.RenderTexture2D
	difficulty int32
}

// NewRenderer must be called after the window is created.
func NewRenderer(width, height int) *Renderer {
	r := &Renderer{
		width:  int32(width),
		height: int32(height),
		canvas: rl.LoadRenderTexture(int32(width), int32(height)),
	}
	rl.BeginTextureMode(r.canvas)
	rl.ClearBackground(background)
	rl.EndTextureMode()
	return r
}

// Unload releases the canvas texture.
func (r *Renderer) Unload() {
	rl.UnloadRenderTexture(r.canvas)
}

// Clear starts a tick: subsequent drawing goes to the canvas.
func (r *Renderer) Clear() {
	rl.BeginTextureMode(r.canvas)
	rl.ClearBackground(background)
}

// Flush ends the tick started by Clear.
func (r *Renderer) Flush() {
	rl.EndTextureMode()
}

// DrawFood paints the food cell with a faint halo: the four orthogonal
// neighbours first, then the diagonal ones even fainter.
func (r *Renderer) DrawFood(food types.Point, scale int) {
	s := int32(scale)
	x, y := int32(food.X), int32(food.Y)

	rl.DrawRectangle(x, y, s, s, greenAlpha(.8))

	rl.DrawRectangle(x-s, y, s, s, foodGlowNear)
	rl.DrawRectangle(x+s, y, s, s, foodGlowNear)
	rl.DrawRectangle(x, y-s, s, s, foodGlowNear)
	rl.DrawRectangle(x, y+s, s, s, foodGlowNear)

	rl.DrawRectangle(x-s, y-s, s, s, foodGlowFar)
	rl.DrawRectangle(x-s, y+s, s, s, foodGlowFar)
	rl.DrawRectangle(x+s, y-s, s, s, foodGlowFar)
	rl.DrawRectangle(x+s, y+s, s, s, foodGlowFar)
}

// DrawSegments paints every body cell as an outlined square.
func (r *Renderer) DrawSegments(body []types.Point, scale int) {
	s := int32(scale)
	for _, p := range body {
		rl.DrawRectangle(int32(p.X), int32(p.Y), s, s, segmentFill)
		rl.DrawRectangleLines(int32(p.X), int32(p.Y), s, s, segmentEdge)
	}
}

// DrawScore paints the score overlay in the top left corner.
func (r *Renderer) DrawScore(score int) {
	rl.DrawText(fmt.Sprintf("Score: %d", score), 50, 50, scoreFontPx, scoreColor)
}

// Draw renders one window frame for the controller's phase and returns the
// button pressed during it, if any.
func (r *Renderer) Draw(c *game.Controller) (game.Action, string) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(background)

	action := game.NoAction
	switch c.Phase() {
	case types.Menu:
		action = r.drawMenu(c.Difficulties())
	case types.Running:
		// Render textures are stored upside down.
		src := rl.Rectangle{X: 0, Y: 0, Width: float32(r.width), Height: -float32(r.height)}
		rl.DrawTextureRec(r.canvas.Texture, src, rl.Vector2{}, rl.White)
	case types.GameOver:
		action = r.drawGameOver(c)
	}

	return action, r.selectedDifficulty(c.Difficulties())
}

func (r *Renderer) selectedDifficulty(ds []game.Difficulty) string {
	if len(ds) == 0 {
		return ""
	}
	if int(r.difficulty) >= len(ds) || r.difficulty < 0 {
		r.difficulty = 0
	}
	return ds[r.difficulty].Name
}
