package renderer

import "github.com/gulbrand/rusty-the-snake/pkg/game"

// Target is anything that can draw or store a snapshot
type Target interface {
	Render(game.GameState) error
}

// Tee renders to every target in order, stopping at the first error
type Tee []Target

func (t Tee) Render(s game.GameState) error {
	for _, target := range t {
		if err := target.Render(s); err != nil {
			return err
		}
	}
	return nil
}
