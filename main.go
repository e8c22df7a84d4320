package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"

	"torus-snake/game"
	"torus-snake/game/types"
	"torus-snake/ui"
)

const statsFile = "data/gamestats.json"

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Food placement RNG seed")
	flag.Parse()

	rl.InitWindow(
		int32(types.GridWidth*types.CellSize+40),
		int32(types.GridHeight*types.CellSize+80),
		"Torus Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	rng := rand.New(rand.NewSource(*seed))
	g, err := game.NewGame(rng)
	if err != nil {
		fmt.Fprintln(os.Stderr, "starting game:", err)
		os.Exit(1)
	}

	os.MkdirAll(filepath.Dir(statsFile), 0755)
	g.Stats().Load(statsFile)

	renderer := ui.NewRenderer()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsKeyPressed(rl.KeyR) && g.Over() {
			if err := g.Reset(); err != nil {
				fmt.Fprintln(os.Stderr, "resetting game:", err)
				break
			}
		}
		for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
			g.HandleKey(key)
		}

		if err := g.Tick(time.Now()); err != nil {
			// The board has no free cell left for food; treat it as the
			// end of the run.
			fmt.Println("game finished:", err)
			break
		}

		renderer.Draw(g)
	}

	if err := g.Stats().Save(statsFile); err != nil {
		fmt.Fprintln(os.Stderr, "saving stats:", err)
	}
}
