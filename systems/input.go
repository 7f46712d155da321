package systems

import (
	"strings"

	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var gamepadIDs []ebiten.GamepadID
var touchIDs []ebiten.TouchID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE any system that reads actions or taps.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Tapped = false

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	analogLeft, analogRight, analogUp, analogDown, analogGpID := getAnalogStickState(gamepadIDs)

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge analog stick into directional actions
	if analogLeft {
		input.Current[cfg.ActionMoveLeft] = true
		input.Current[cfg.ActionMenuLeft] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	if analogRight {
		input.Current[cfg.ActionMoveRight] = true
		input.Current[cfg.ActionMenuRight] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	if analogUp {
		input.Current[cfg.ActionMenuUp] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	if analogDown {
		input.Current[cfg.ActionMenuDown] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}

	tapped := pollTap(input)

	switch {
	case tapped:
		input.LastInputMethod = components.InputTouch
	case gamepadUsed:
		input.LastInputMethod = getControllerType(activeGamepadID)
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

// pollTap records the first mouse click or touch that started this frame.
func pollTap(input *components.InputData) bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		input.Tapped = true
		input.TapX, input.TapY = float64(x), float64(y)
		return true
	}

	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		input.Tapped = true
		input.TapX, input.TapY = float64(x), float64(y)
		return true
	}
	return false
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left analog stick from all gamepads
// Returns directional states based on deadzone threshold and the active gamepad ID
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// ConsumeTap returns the tap position once; later readers this frame see no tap.
func ConsumeTap(input *components.InputData) (x, y float64, ok bool) {
	if !input.Tapped {
		return 0, 0, false
	}
	input.Tapped = false
	return input.TapX, input.TapY, true
}
