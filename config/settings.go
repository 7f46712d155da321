package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsMenuConfig contains settings screen configuration
type SettingsMenuConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	VolumeSteps            []float64
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		Resolutions: []Resolution{
			{Width: 360, Height: 640, Label: "360 x 640"},
			{Width: 540, Height: 960, Label: "540 x 960"},
			{Width: 720, Height: 1280, Label: "720 x 1280"},
		},
		DefaultResolutionIndex: 1,
		VolumeSteps:            []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}
