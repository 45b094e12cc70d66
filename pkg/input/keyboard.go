package input

import (
	"github.com/eiannone/keyboard"
	"github.com/trytobebee/snake_classic/pkg/game"
)

// KeyboardHandler handles keyboard input
type KeyboardHandler struct {
	inputChan chan KeyInput
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan KeyInput),
	}
}

// Start begins listening for keyboard input
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			h.inputChan <- KeyInput{Char: char, Key: key}
		}
	}()

	return nil
}

// Stop stops the keyboard handler
func (h *KeyboardHandler) Stop() {
	keyboard.Close()
}

// GetInputChan returns the input channel
func (h *KeyboardHandler) GetInputChan() <-chan KeyInput {
	return h.inputChan
}

// ParseDirection parses a key input into a direction
func ParseDirection(input KeyInput) (dir game.Direction, isValid bool) {
	// Handle arrow keys
	switch input.Key {
	case keyboard.KeyArrowUp:
		return game.Up, true
	case keyboard.KeyArrowDown:
		return game.Down, true
	case keyboard.KeyArrowLeft:
		return game.Left, true
	case keyboard.KeyArrowRight:
		return game.Right, true
	}

	// Handle WASD keys
	switch input.Char {
	case 'w', 'W':
		return game.Up, true
	case 's', 'S':
		return game.Down, true
	case 'a', 'A':
		return game.Left, true
	case 'd', 'D':
		return game.Right, true
	}

	return 0, false
}

// ParseCommand maps a key to a session command. Quit is not a command;
// check IsQuit first.
func ParseCommand(input KeyInput) (game.Command, bool) {
	if dir, ok := ParseDirection(input); ok {
		return game.Steer(dir), true
	}

	switch {
	case IsPlayAgain(input):
		return game.Command{Kind: game.CmdRestart}, true
	case IsReset(input):
		return game.Command{Kind: game.CmdReset}, true
	case IsPause(input):
		return game.Command{Kind: game.CmdPause}, true
	case IsAutoPlay(input):
		return game.Command{Kind: game.CmdAutoPlay}, true
	}
	return game.Command{}, false
}

// IsQuit checks if the input is a quit command
func IsQuit(input KeyInput) bool {
	return input.Char == 'q' || input.Char == 'Q' || input.Key == keyboard.KeyCtrlC || input.Key == keyboard.KeyEsc
}

// IsPlayAgain checks for space or enter, which start a fresh game or
// clear a finished one
func IsPlayAgain(input KeyInput) bool {
	return input.Char == ' ' || input.Key == keyboard.KeySpace || input.Key == keyboard.KeyEnter
}

// IsReset checks if the input is a reset command
func IsReset(input KeyInput) bool {
	return input.Char == 'r' || input.Char == 'R'
}

// IsPause checks if the input is a pause command
func IsPause(input KeyInput) bool {
	return input.Char == 'p' || input.Char == 'P'
}

// IsAutoPlay checks if the input toggles the autopilot
func IsAutoPlay(input KeyInput) bool {
	return input.Char == 'o' || input.Char == 'O'
}
