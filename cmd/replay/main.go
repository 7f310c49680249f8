package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gulbrand/rusty-the-snake/pkg/renderer"
)

// Replays a recording made with `snake -record` in the terminal
func main() {
	speed := flag.Float64("speed", 1.0, "playback speed multiplier")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: replay [-speed N] recording.jsonl")
		os.Exit(2)
	}
	if *speed <= 0 {
		log.Fatalf("speed must be positive, got %v", *speed)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error opening recording: %v", err)
	}
	defer f.Close()

	render := renderer.NewTerminalRenderer(os.Stdout)
	render.HideCursor()
	defer render.ShowCursor()

	var last time.Time
	frames := 0
	err = renderer.ReadFrames(f, func(frame renderer.Frame) error {
		if !last.IsZero() {
			if gap := frame.Time.Sub(last); gap > 0 {
				time.Sleep(time.Duration(float64(gap) / *speed))
			}
		}
		last = frame.Time
		frames++
		return render.Render(frame.State)
	})
	if err != nil {
		log.Printf("Replay stopped after %d frames: %v", frames, err)
		return
	}
	fmt.Printf("\n  📼 Replayed %d frames\n", frames)
}
