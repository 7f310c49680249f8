package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/gulbrand/rusty-the-snake/pkg/game"
)

// FromTcell maps a tcell key event to a command
func FromTcell(ev *tcell.EventKey) (Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return Turn(game.Up), true
	case tcell.KeyDown:
		return Turn(game.Down), true
	case tcell.KeyLeft:
		return Turn(game.Left), true
	case tcell.KeyRight:
		return Turn(game.Right), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Action: ActionQuit}, true
	case tcell.KeyRune:
		return fromChar(ev.Rune())
	}
	return Command{}, false
}

// PollScreen forwards key events from screen until it is finalized, then
// closes the returned channel.
func PollScreen(screen tcell.Screen) <-chan Command {
	out := make(chan Command)
	go func() {
		defer close(out)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			if cmd, ok := FromTcell(key); ok {
				out <- cmd
			}
		}
	}()
	return out
}
