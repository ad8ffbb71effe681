package ui

import (
	"fmt"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"canvas-snake/game"
)

type polygon struct {
	alpha  float32
	points []rl.Vector2
}

func pt(x, y float32) rl.Vector2 {
	return rl.Vector2{X: x, Y: y}
}

// Isometric cube on the menu screen, faces first, then its glow.
var menuCube = []polygon{
	{.65, []rl.Vector2{pt(900, 300), pt(1000, 350), pt(1000, 450), pt(900, 400)}},
	{.8, []rl.Vector2{pt(900, 300), pt(1000, 250), pt(1100, 300), pt(1000, 350)}},
	{.5, []rl.Vector2{pt(1000, 350), pt(1100, 300), pt(1100, 400), pt(1000, 450)}},

	{.04, []rl.Vector2{pt(1000, 450), pt(1100, 500), pt(1200, 450), pt(1100, 400)}},
	{.04, []rl.Vector2{pt(1000, 450), pt(900, 500), pt(800, 450), pt(900, 400)}},
	{.04, []rl.Vector2{pt(900, 400), pt(800, 350), pt(900, 300)}},
	{.04, []rl.Vector2{pt(1100, 400), pt(1200, 350), pt(1100, 300)}},

	{.014, []rl.Vector2{pt(1100, 400), pt(1200, 450), pt(1300, 400), pt(1200, 350)}},
	{.014, []rl.Vector2{pt(1000, 450), pt(1100, 500), pt(1000, 550), pt(900, 500)}},
	{.014, []rl.Vector2{pt(900, 400), pt(800, 450), pt(700, 400), pt(800, 350)}},
}

// Open frame lines around the menu box.
var menuFrame = [][]rl.Vector2{
	{pt(100, 120), pt(520, 120), pt(520, 340), pt(220, 340)},
	{pt(280, 100), pt(540, 100), pt(540, 640), pt(1400, 640), pt(1500, 580)},
}

// fillTriangle draws a triangle regardless of vertex order. raylib only
// fills triangles wound counter-clockwise on screen.
func fillTriangle(a, b, c rl.Vector2, color rl.Color) {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if cross > 0 {
		b, c = c, b
	}
	rl.DrawTriangle(a, b, c, color)
}

// fillPolygon fans a convex polygon into triangles.
func fillPolygon(points []rl.Vector2, color rl.Color) {
	for i := 1; i+1 < len(points); i++ {
		fillTriangle(points[0], points[i], points[i+1], color)
	}
}

func drawPolyline(points []rl.Vector2, color rl.Color) {
	for i := 1; i < len(points); i++ {
		rl.DrawLineV(points[i-1], points[i], color)
	}
}

func (r *Renderer) drawMenu(difficulties []game.Difficulty) game.Action {
	for _, p := range menuCube {
		fillPolygon(p.points, greenAlpha(p.alpha))
	}
	for _, line := range menuFrame {
		drawPolyline(line, frameLine)
	}

	rl.DrawText("SNAKE", 140, 160, 60, rl.White)
	rl.DrawText("W A S D to steer", 140, 240, 20, rl.Gray)

	labels := make([]string, len(difficulties))
	for i, d := range difficulties {
		labels[i] = strings.ToUpper(d.Name)
	}
	const toggleW, toggleH = 100, 36
	r.difficulty = gui.ToggleGroup(
		rl.Rectangle{X: 140, Y: 400, Width: toggleW, Height: toggleH},
		strings.Join(labels, ";"),
		r.difficulty,
	)

	if gui.Button(rl.Rectangle{X: 140, Y: 470, Width: 200, Height: 48}, "START") {
		return game.StartAction
	}
	return game.NoAction
}

func (r *Renderer) drawGameOver(c *game.Controller) game.Action {
	panelW, panelH := int32(520), int32(380)
	x := (r.width - panelW) / 2
	y := (r.height - panelH) / 2

	rl.DrawRectangle(x, y, panelW, panelH, rl.NewColor(0x1d, 0x1d, 0x1d, 255))
	rl.DrawRectangleLines(x, y, panelW, panelH, greenAlpha(.65))

	title := "GAME OVER"
	rl.DrawText(title, x+(panelW-rl.MeasureText(title, 48))/2, y+30, 48, rl.White)

	score := fmt.Sprintf("Score: %d", c.Score())
	rl.DrawText(score, x+(panelW-rl.MeasureText(score, 32))/2, y+100, 32, greenAlpha(.8))

	stats := c.Stats()
	lines := []string{
		fmt.Sprintf("Best this session: %d", stats.HighScore()),
		fmt.Sprintf("Average: %.1f   Median: %.1f", stats.AverageScore(), stats.MedianScore()),
		fmt.Sprintf("Rounds played: %d", stats.RoundsPlayed()),
	}
	for i, line := range lines {
		rl.DrawText(line, x+40, y+160+int32(i)*28, 20, rl.LightGray)
	}

	bx := float32(x + 40)
	by := float32(y + panelH - 80)
	if gui.Button(rl.Rectangle{X: bx, Y: by, Width: 200, Height: 48}, "PLAY AGAIN") {
		return game.PlayAgainAction
	}
	if gui.Button(rl.Rectangle{X: bx + 240, Y: by, Width: 200, Height: 48}, "MENU") {
		return game.MenuAction
	}
	return game.NoAction
}

// PollKeys forwards every character typed since the last frame.
func PollKeys(c *game.Controller) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		c.PressKey(rune(ch))
	}
}
