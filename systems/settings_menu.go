package systems

import (
	"fmt"

	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// UpdateSettingsMenu handles settings navigation and value changes.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	input := getOrCreateInput(e)

	if !settings.IsOpen {
		// M mutes from any screen
		if GetAction(input, cfg.ActionMute).JustPressed {
			toggleMute(e, settings)
			SaveCurrentSettings(settings)
		}
		return
	}

	// Handle controls screen separately
	if settings.ShowingControls {
		_, _, tapped := ConsumeTap(input)
		if GetAction(input, cfg.ActionMenuBack).JustPressed ||
			GetAction(input, cfg.ActionMenuSelect).JustPressed ||
			tapped {
			settings.ShowingControls = false
			PlaySFX(e, cfg.SoundMenuSelect)
		}
		return
	}

	// Navigate up
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		navigateUp(settings)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}

	// Navigate down
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		navigateDown(settings)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}

	// Adjust value left
	if GetAction(input, cfg.ActionMenuLeft).JustPressed {
		adjustValue(e, settings, -1)
	}

	// Adjust value right
	if GetAction(input, cfg.ActionMenuRight).JustPressed {
		adjustValue(e, settings, +1)
	}

	// Select/Enter - for toggles and Back button
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		handleSelect(e, settings)
		return
	}

	// Tapping a row selects it and acts like Enter, or steps a value to the right
	if x, y, ok := ConsumeTap(input); ok {
		if opt, hit := settingsOptionAt(settings, x, y); hit {
			settings.SelectedOption = opt
			switch opt {
			case components.SettingsOptMusicVolume, components.SettingsOptSFXVolume, components.SettingsOptResolution:
				adjustValue(e, settings, +1)
			default:
				handleSelect(e, settings)
			}
			return
		}
	}

	// B/Circle or Escape to go back
	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		closeSettings(e, settings)
	}
}

// navigateUp moves selection up, skipping hidden options
func navigateUp(s *components.SettingsMenuData) {
	for {
		s.SelectedOption = components.SettingsMenuOption(
			(int(s.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions,
		)
		if !isOptionHidden(s, s.SelectedOption) {
			break
		}
	}
}

// navigateDown moves selection down, skipping hidden options
func navigateDown(s *components.SettingsMenuData) {
	for {
		s.SelectedOption = components.SettingsMenuOption(
			(int(s.SelectedOption) + 1) % numSettingsOptions,
		)
		if !isOptionHidden(s, s.SelectedOption) {
			break
		}
	}
}

// isOptionHidden returns true if the option should be hidden
func isOptionHidden(s *components.SettingsMenuData, opt components.SettingsMenuOption) bool {
	// Hide resolution when fullscreen is enabled
	if opt == components.SettingsOptResolution && s.Fullscreen {
		return true
	}
	return false
}

// adjustValue changes the value for the selected option
func adjustValue(e *ecs.ECS, s *components.SettingsMenuData, direction int) {
	switch s.SelectedOption {
	case components.SettingsOptMusicVolume:
		s.MusicVolume = adjustVolumeStep(s.MusicVolume, direction)
		if !s.Muted {
			SetMusicVolume(e, s.MusicVolume)
		}
		PlaySFX(e, cfg.SoundMenuNavigate)

	case components.SettingsOptSFXVolume:
		s.SFXVolume = adjustVolumeStep(s.SFXVolume, direction)
		if !s.Muted {
			SetSFXVolume(e, s.SFXVolume)
		}
		// Play preview sound
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptMute:
		toggleMute(e, s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptFullscreen:
		toggleFullscreen(s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptResolution:
		cycleResolution(s, direction)
		PlaySFX(e, cfg.SoundMenuNavigate)

	case components.SettingsOptCRT:
		toggleCRT(s)
		PlaySFX(e, cfg.SoundMenuSelect)
	}
}

// adjustVolumeStep adjusts volume by stepping through predefined values
func adjustVolumeStep(current float64, direction int) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	currentIdx := findClosestStepIndex(current, steps)
	newIdx := currentIdx + direction
	if newIdx < 0 {
		newIdx = 0
	}
	if newIdx >= len(steps) {
		newIdx = len(steps) - 1
	}
	return steps[newIdx]
}

// findClosestStepIndex finds the closest step index for a volume value
func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0 // Start with a large difference
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

// toggleMute toggles the mute state
func toggleMute(e *ecs.ECS, s *components.SettingsMenuData) {
	s.Muted = !s.Muted
	if s.Muted {
		// Store current volumes and set to 0
		s.PreMuteMusicVol = s.MusicVolume
		s.PreMuteSFXVol = s.SFXVolume
		SetMusicVolume(e, 0)
		SetSFXVolume(e, 0)
	} else {
		// Restore volumes
		SetMusicVolume(e, s.MusicVolume)
		SetSFXVolume(e, s.SFXVolume)
	}
}

// toggleCRT toggles the scanline overlay
func toggleCRT(s *components.SettingsMenuData) {
	s.CRT = !s.CRT
	cfg.CRT.Enabled = s.CRT
}

// toggleFullscreen toggles fullscreen mode
func toggleFullscreen(s *components.SettingsMenuData) {
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
}

// cycleResolution cycles through available resolutions
func cycleResolution(s *components.SettingsMenuData, direction int) {
	numResolutions := len(cfg.SettingsMenu.Resolutions)
	s.ResolutionIndex = (s.ResolutionIndex + direction + numResolutions) % numResolutions

	// Apply the resolution
	res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
}

// handleSelect handles the select/enter action
func handleSelect(e *ecs.ECS, s *components.SettingsMenuData) {
	switch s.SelectedOption {
	case components.SettingsOptMute:
		toggleMute(e, s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptFullscreen:
		toggleFullscreen(s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptCRT:
		toggleCRT(s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptControls:
		s.ShowingControls = true
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptBack:
		closeSettings(e, s)
	}
}

// closeSettings closes the settings menu and saves settings
func closeSettings(e *ecs.ECS, s *components.SettingsMenuData) {
	s.IsOpen = false
	PlaySFX(e, cfg.SoundMenuSelect)
	SaveCurrentSettings(s)
}

// Settings layout
const (
	settingsItemHeight = 24.0
	settingsItemGap    = 14.0
)

// settingsRows returns the visible options with the rect each one occupies
func settingsRows(s *components.SettingsMenuData, width, height float64) ([]components.SettingsMenuOption, []rect) {
	var opts []components.SettingsMenuOption
	for opt := components.SettingsOptMusicVolume; opt <= components.SettingsOptBack; opt++ {
		if !isOptionHidden(s, opt) {
			opts = append(opts, opt)
		}
	}

	total := float64(len(opts)) * (settingsItemHeight + settingsItemGap)
	startY := (height-total)/2 + 10
	rows := make([]rect, len(opts))
	for i := range opts {
		y := startY + float64(i)*(settingsItemHeight+settingsItemGap)
		rows[i] = rect{X: 0, Y: y, W: width, H: settingsItemHeight + settingsItemGap}
	}
	return opts, rows
}

// settingsOptionAt maps a tap to the option row under it
func settingsOptionAt(s *components.SettingsMenuData, x, y float64) (components.SettingsMenuOption, bool) {
	opts, rows := settingsRows(s, float64(cfg.C.Width), float64(cfg.C.Height))
	for i, r := range rows {
		if r.contains(x, y) {
			return opts[i], true
		}
	}
	return 0, false
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)

	if !settings.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	fillRect(screen, rect{W: width, H: height}, cfg.Menu.BackgroundColor)

	if settings.ShowingControls {
		drawControlsScreen(e, screen, width, height)
		return
	}

	fontFace := fonts.MonoBold.Get()
	titleFont := fonts.Title.Get()

	drawTextCentered(screen, "SETTINGS", titleFont, width/2, 70, cfg.Menu.TitleColor)

	opts, rows := settingsRows(settings, width, height)
	for i, opt := range opts {
		y := rows[i].Y

		textColor := cfg.Menu.TextColorNormal
		if opt == settings.SelectedOption {
			textColor = cfg.Menu.TextColorSelected
		}

		label, value := getOptionDisplay(settings, opt)

		labelX := int(width/2) - 150
		text.Draw(screen, label, fontFace, labelX, int(y+settingsItemHeight), textColor)

		if value != "" {
			valueX := int(width/2) + 150 - fonts.Width(fontFace, value)
			text.Draw(screen, value, fontFace, valueX, int(y+settingsItemHeight), textColor)
		}
	}

	input := getOrCreateInput(e)
	hint := getSettingsHint(input.LastInputMethod)
	drawTextCentered(screen, hint, fonts.Small.Get(), width/2, height-16, cfg.Menu.TextColorMuted)
}

// drawControlsScreen renders the controls/button mapping screen
func drawControlsScreen(e *ecs.ECS, screen *ebiten.Image, width, height float64) {
	input := getOrCreateInput(e)
	fontFace := fonts.Mono.Get()

	drawTextCentered(screen, "CONTROLS", fonts.Title.Get(), width/2, 70, cfg.Menu.TitleColor)

	mappings := getControlMappings(input.LastInputMethod)

	startY := 130.0
	lineHeight := 28.0
	labelX := int(width/2) - 150

	for i, mapping := range mappings {
		y := int(startY + float64(i)*lineHeight)
		text.Draw(screen, mapping.Action, fontFace, labelX, y, cfg.Menu.TextColorNormal)
		valueX := int(width/2) + 150 - fonts.Width(fontFace, mapping.Button)
		text.Draw(screen, mapping.Button, fontFace, valueX, y, cfg.Menu.TextColorSelected)
	}

	hint := getBackHint(input.LastInputMethod)
	drawTextCentered(screen, hint, fonts.Small.Get(), width/2, height-16, cfg.Menu.TextColorMuted)
}

// controlMapping represents a single control mapping entry
type controlMapping struct {
	Action string
	Button string
}

// getControlMappings returns control mappings for the given input method
func getControlMappings(method components.InputMethod) []controlMapping {
	switch method {
	case components.InputPlayStation:
		return []controlMapping{
			{"Move ship", "Left Stick / D-Pad"},
			{"Fire", "Cross"},
			{"Vortex", "Triangle"},
			{"Share result", "Square"},
			{"Abort", "Options"},
		}
	case components.InputXbox:
		return []controlMapping{
			{"Move ship", "Left Stick / D-Pad"},
			{"Fire", "A"},
			{"Vortex", "Y"},
			{"Share result", "X"},
			{"Abort", "Start"},
		}
	case components.InputTouch:
		return []controlMapping{
			{"Move ship", "Tap empty space"},
			{"Shoot demon", "Tap demon"},
			{"Vortex", "Tap VORTEX"},
			{"Abort", "Tap ABORT"},
		}
	default: // Keyboard
		return []controlMapping{
			{"Move ship", "Arrows / A D"},
			{"Fire", "Space / Z"},
			{"Vortex", "V / X"},
			{"Shoot demon", "Click"},
			{"Share result", "S"},
			{"Mute", "M"},
			{"Abort", "Esc"},
		}
	}
}

// getSettingsHint returns the appropriate hint for settings menu
func getSettingsHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate  Cross: Select  Circle: Back"
	case components.InputXbox:
		return "D-Pad: Navigate  A: Select  B: Back"
	case components.InputTouch:
		return "Tap an option to change it"
	}
	return "Arrows: Navigate/Change  Enter: Select  Esc: Back"
}

// getBackHint returns the hint for going back
func getBackHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation, components.InputXbox:
		return "Press any button to go back"
	case components.InputTouch:
		return "Tap to go back"
	}
	return "Press Enter or Esc to go back"
}

// getOptionDisplay returns the label and value display for an option
func getOptionDisplay(s *components.SettingsMenuData, opt components.SettingsMenuOption) (string, string) {
	switch opt {
	case components.SettingsOptMusicVolume:
		return "Music", formatVolumeBar(s.MusicVolume)
	case components.SettingsOptSFXVolume:
		return "SFX", formatVolumeBar(s.SFXVolume)
	case components.SettingsOptMute:
		return "Mute", formatToggle(s.Muted)
	case components.SettingsOptFullscreen:
		return "Fullscreen", formatToggle(s.Fullscreen)
	case components.SettingsOptResolution:
		if s.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
			return "Window", cfg.SettingsMenu.Resolutions[s.ResolutionIndex].Label
		}
		return "Window", "Unknown"
	case components.SettingsOptCRT:
		return "CRT Filter", formatToggle(s.CRT)
	case components.SettingsOptControls:
		return "Controls", ">"
	case components.SettingsOptBack:
		return "< Back", ""
	default:
		return "", ""
	}
}

// formatVolumeBar creates a visual volume bar
func formatVolumeBar(volume float64) string {
	percentage := int(volume * 100)
	filled := int(volume * 10)
	bar := ""
	for i := 0; i < 10; i++ {
		if i < filled {
			bar += "|"
		} else {
			bar += "."
		}
	}
	return fmt.Sprintf("[%s] %d%%", bar, percentage)
}

// formatToggle formats a boolean as On/Off
func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))

		components.SettingsMenu.SetValue(ent, components.SettingsMenuData{
			IsOpen:          false,
			SelectedOption:  components.SettingsOptMusicVolume,
			MusicVolume:     savedMusicVolume,
			SFXVolume:       savedSFXVolume,
			Muted:           savedMuted,
			Fullscreen:      ebiten.IsFullscreen(),
			ResolutionIndex: savedResolutionIndex,
			CRT:             cfg.CRT.Enabled,
			PreMuteMusicVol: savedMusicVolume,
			PreMuteSFXVol:   savedSFXVolume,
		})
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}

// OpenSettings opens the settings menu
func OpenSettings(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true
	settings.SelectedOption = components.SettingsOptMusicVolume
	settings.Fullscreen = ebiten.IsFullscreen()
	settings.CRT = cfg.CRT.Enabled
	if !settings.Muted {
		settings.MusicVolume = GetMusicVolume()
		settings.SFXVolume = GetSFXVolume()
	}
}

// IsSettingsOpen returns true if the settings menu is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	settings := GetOrCreateSettingsMenu(e)
	return settings.IsOpen
}
