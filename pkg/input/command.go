package input

import "github.com/gulbrand/rusty-the-snake/pkg/game"

// Action is what a key press or client message asks the driver to do
type Action int

const (
	ActionNone Action = iota
	ActionTurn
	ActionPause
	ActionRestart
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionTurn:
		return "turn"
	case ActionPause:
		return "pause"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Command is a single player intent. Dir is only set for ActionTurn.
type Command struct {
	Action Action
	Dir    game.Direction
}

// Turn builds a turn command
func Turn(d game.Direction) Command {
	return Command{Action: ActionTurn, Dir: d}
}

// ParseAction maps a websocket action string to a command
func ParseAction(action string) (Command, bool) {
	if d, ok := game.ParseDirection(action); ok {
		return Turn(d), true
	}

	switch action {
	case "pause":
		return Command{Action: ActionPause}, true
	case "restart":
		return Command{Action: ActionRestart}, true
	case "quit":
		return Command{Action: ActionQuit}, true
	}
	return Command{}, false
}

// fromChar handles the letter bindings shared by every keyboard backend
func fromChar(char rune) (Command, bool) {
	switch char {
	case 'w', 'W':
		return Turn(game.Up), true
	case 's', 'S':
		return Turn(game.Down), true
	case 'a', 'A':
		return Turn(game.Left), true
	case 'd', 'D':
		return Turn(game.Right), true
	case 'p', 'P', ' ':
		return Command{Action: ActionPause}, true
	case 'r', 'R':
		return Command{Action: ActionRestart}, true
	case 'q', 'Q':
		return Command{Action: ActionQuit}, true
	}
	return Command{}, false
}
