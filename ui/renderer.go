package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"torus-snake/game"
	"torus-snake/game/types"
)

const borderPadding = 10 // Padding around game area

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func rlColor(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rlColor(types.ColorBackground))

	fontSize := int32(r.screenHeight / 30)

	// Calculate available space for grid after border padding and the
	// score line above it
	availableWidth := r.screenWidth - (borderPadding * 2)
	availableHeight := r.screenHeight - (borderPadding * 3) - fontSize

	// Calculate cell size based on available space and grid dimensions
	cellW := availableWidth / int32(g.Grid.Width)
	cellH := availableHeight / int32(g.Grid.Height)
	r.cellSize = min(cellW, cellH)

	r.totalGridWidth = r.cellSize * int32(g.Grid.Width)
	r.totalGridHeight = r.cellSize * int32(g.Grid.Height)

	r.offsetX = borderPadding
	r.offsetY = borderPadding*2 + fontSize

	// Draw grid background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)

	r.drawSnake(g)

	for _, food := range g.Foods() {
		p := food.Position()
		rl.DrawRectangle(
			r.offsetX+int32(p.X)*r.cellSize,
			r.offsetY+int32(p.Y)*r.cellSize,
			r.cellSize, r.cellSize, rlColor(types.ColorFood))
	}

	scoreText := fmt.Sprintf("Score: %d  High: %d", g.Score(), g.Stats().HighScore)
	rl.DrawText(scoreText, borderPadding, borderPadding, fontSize, rl.White)

	if g.Over() {
		gameOverText := "Game Over! Press R to restart"
		textWidth := rl.MeasureText(gameOverText, fontSize)
		rl.DrawText(gameOverText,
			r.offsetX+(r.totalGridWidth-textWidth)/2,
			r.offsetY+r.totalGridHeight/2,
			fontSize, rl.Yellow)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawSnake(g *game.Game) {
	body := g.Snake().Body()
	direction := g.Snake().Direction()
	snakeColor := types.ColorSnake

	for j, p := range body {
		color := rlColor(snakeColor)
		if j == 0 { // Head
			color = rl.Color{
				R: uint8(min(int32(float32(snakeColor.R)*1.3), 255)),
				G: uint8(min(int32(float32(snakeColor.G)*1.3), 255)),
				B: uint8(min(int32(float32(snakeColor.B)*1.3), 255)),
				A: 255,
			}
			// Draw direction indicator
			headX := r.offsetX + int32(p.X)*r.cellSize
			headY := r.offsetY + int32(p.Y)*r.cellSize
			halfCell := r.cellSize / 2
			if direction.X > 0 { // Right
				rl.DrawTriangle(
					rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
					rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
					rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
					rl.Yellow)
			} else if direction.X < 0 { // Left
				rl.DrawTriangle(
					rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
					rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
					rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
					rl.Yellow)
			} else if direction.Y > 0 { // Down
				rl.DrawTriangle(
					rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
					rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
					rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
					rl.Yellow)
			} else { // Up
				rl.DrawTriangle(
					rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
					rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
					rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
					rl.Yellow)
			}
		} else if j == len(body)-1 { // Tail
			color = rl.White
		}
		rl.DrawRectangle(
			r.offsetX+int32(p.X)*r.cellSize,
			r.offsetY+int32(p.Y)*r.cellSize,
			r.cellSize, r.cellSize, color)
	}
}
