package input

import (
	"github.com/eiannone/keyboard"
	"github.com/gulbrand/rusty-the-snake/pkg/game"
)

// KeyboardHandler handles keyboard input
type KeyboardHandler struct {
	commands chan Command
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		commands: make(chan Command),
	}
}

// Start begins listening for keyboard input. The command channel is closed
// when the keyboard stops delivering keys.
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		defer close(h.commands)
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			if cmd, ok := ParseKey(KeyInput{Char: char, Key: key}); ok {
				h.commands <- cmd
			}
		}
	}()

	return nil
}

// Stop stops the keyboard handler
func (h *KeyboardHandler) Stop() {
	keyboard.Close()
}

// Commands returns the command channel
func (h *KeyboardHandler) Commands() <-chan Command {
	return h.commands
}

// ParseKey maps arrow keys, WASD and the control letters to a command
func ParseKey(in KeyInput) (Command, bool) {
	switch in.Key {
	case keyboard.KeyArrowUp:
		return Turn(game.Up), true
	case keyboard.KeyArrowDown:
		return Turn(game.Down), true
	case keyboard.KeyArrowLeft:
		return Turn(game.Left), true
	case keyboard.KeyArrowRight:
		return Turn(game.Right), true
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Command{Action: ActionQuit}, true
	case keyboard.KeySpace:
		return Command{Action: ActionPause}, true
	}

	return fromChar(in.Char)
}
