package observer

import (
	"encoding/json"

	"github.com/taharazashaikh97/galli/internal/input"
)

var actionNames = map[string]input.Action{
	"forward":    input.ActionMoveForward,
	"backward":   input.ActionMoveBackward,
	"left":       input.ActionMoveLeft,
	"right":      input.ActionMoveRight,
	"jump":       input.ActionJump,
	"sprint":     input.ActionSprint,
	"flashlight": input.ActionToggleFlashlight,
}

// handleInput parses a client frame and, if it is an input message, installs
// it as the pending state for the next tick. Held actions replace the previous
// set; look deltas accumulate until consumed.
func (s *Server) handleInput(raw []byte) {
	var msg InputMsg
	if err := json.Unmarshal(raw, &msg); err != nil || msg.Type != MsgInput {
		return
	}

	var actions [input.ActionCount]bool
	for _, name := range msg.Actions {
		if a, ok := actionNames[name]; ok {
			actions[a] = true
		}
	}

	s.inputMu.Lock()
	s.lastInput.Actions = actions
	s.lastInput.YawDelta += msg.YawDelta
	s.lastInput.PitchDelta += msg.PitchDelta
	s.inputMu.Unlock()
}
