package components

import (
	cfg "github.com/automoto/dustdemons/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
	InputTouch
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method

	// Pointer tap (mouse click or touch) released this frame, in screen space
	Tapped bool
	TapX   float64
	TapY   float64
}

var Input = donburi.NewComponentType[InputData]()
