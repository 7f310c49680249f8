package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
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
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	rules := config.DefaultRules()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}
	factory := func() (*game.Game, error) {
		return game.NewGameWithRules(*width, *height, rules, rand.New(rand.NewSource(rng.Int63())))
	}

	// Logging would corrupt the screen
	loop := driver.New(factory, renderer.NewScreenRenderer(screen), log.New(io.Discard, "", 0))
	err = loop.Run(context.Background(), input.PollScreen(screen))
	screen.Fini()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Game stopped: %v\n", err)
		os.Exit(1)
	}
}
