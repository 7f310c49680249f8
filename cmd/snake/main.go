package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gulbrand/rusty-the-snake/pkg/config"
	"github.com/gulbrand/rusty-the-snake/pkg/driver"
	"github.com/gulbrand/rusty-the-snake/pkg/game"
	"github.com/gulbrand/rusty-the-snake/pkg/input"
	"github.com/gulbrand/rusty-the-snake/pkg/renderer"
)

func main() {
	width := flag.Int("width", config.StandardWidth, "board width in cells")
	height := flag.Int("height", config.StandardHeight, "board height in cells")
	seed := flag.Int64("seed", 0, "random seed for fruit placement (0 = time based)")
	record := flag.String("record", "", "write every frame as JSON lines to this file")
	logFile := flag.String("log", "snake.log", "log file (the terminal is used for the board)")
	flag.Parse()

	// The board owns stdout, so logs go to a file
	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Fatalf("Error opening log file: %v", err)
	}
	defer f.Close()
	logger := log.New(f, "snake: ", log.LstdFlags)

	rules := config.DefaultRules()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}
	// Each round draws its own source so a seeded session replays identically
	factory := func() (*game.Game, error) {
		return game.NewGameWithRules(*width, *height, rules, rand.New(rand.NewSource(rng.Int63())))
	}

	render := renderer.NewTerminalRenderer(os.Stdout)
	targets := renderer.Tee{render}
	if *record != "" {
		out, err := os.Create(*record)
		if err != nil {
			log.Fatalf("Error creating recording: %v", err)
		}
		rec := renderer.NewRecorder(out, logger)
		defer func() {
			if err := rec.Close(); err != nil {
				logger.Printf("Error closing recording: %v", err)
			}
			if n := rec.Dropped(); n > 0 {
				logger.Printf("Recording dropped %d frames", n)
			}
		}()
		targets = append(targets, rec)
	}

	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		fmt.Println("Error opening keyboard:", err)
		return
	}
	defer inputHandler.Stop()

	render.HideCursor()
	defer render.ShowCursor()

	loop := driver.New(factory, targets, logger)
	if err := loop.Run(context.Background(), inputHandler.Commands()); err != nil {
		logger.Printf("Game stopped: %v", err)
		fmt.Println("\n  Error:", err)
		return
	}
	fmt.Println("\n  Thanks for playing! 👋")
}
