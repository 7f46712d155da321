package config

import (
	"image/color"
	"time"

	"github.com/automoto/dustdemons/arcade"
	"github.com/yohamta/donburi/ecs"
)

// Render layers. Renderers within a layer draw in the order they are added.
const (
	Default ecs.LayerID = iota // HUD, modals and screen overlays
	World                      // map, demons, ship and juice; shaken as one image
)

// ShipConfig contains hero ship values
type ShipConfig struct {
	Width        float64
	Height       float64
	BottomMargin float64
	MoveSeconds  float32 // tween duration toward a tap
	BeamWidth    float64 // column checked when firing from the keyboard
}

// EnemySpriteConfig contains on-screen enemy dimensions
type EnemySpriteConfig struct {
	NormalSize float64
	BossSize   float64
	LabelGap   float64
}

// EffectsConfig contains "juice" timings
type EffectsConfig struct {
	FlashDuration        time.Duration
	FlashAlpha           float64
	GlitchDuration       time.Duration
	FloatingTextDuration time.Duration
	FloatingTextRise     float64
	FloatingTextScale    float64 // popups spring up to this scale
	FloatingTextPop      time.Duration
	FloatingTextFadeAt   float64 // fraction of the lifetime before fading starts
	ParticleCount        int
	ParticleSpread       float64
	ParticleDuration     time.Duration
	ParticleSize         float64
	LootDuration         time.Duration
	LootTargetX          float64
	LootTargetY          float64
	ComboAnnounceAt      int // show "COMBO X{n}!" from this combo upward
	ShakeIntensity       float64
	ShakeFrames          int
	HealthBarFrames      int // boss health bar stays visible this long after a hit
	BeamFrames           int
}

// CRTConfig contains the scanline/flicker overlay values
type CRTConfig struct {
	Enabled       bool
	ScanlineGap   int // one dark line every ScanlineGap pixels
	ScanlineAlpha uint8
	DustCount     int
	FlickerMin    float64
	FlickerLow    float64 // white overlay opacity at flicker 0
	FlickerHigh   float64 // and at flicker 1
	VignetteAlpha float64
}

// HUDConfig contains in-game HUD layout values
type HUDConfig struct {
	Margin        float64
	TopMargin     float64
	VortexWidth   float64
	VortexHeight  float64
	ScoreDigits   int
	AbortBottom   float64 // ABORT button sits this far above the bottom edge
	ButtonHeight  float64
	ModalWidth    float64
	ModalHeight   float64
	ModalPadding  float64
	ModalBorder   float64
	ResultTitleY  float64
	ResultLineGap float64
}

// WalletConfig contains collaborator endpoints and timings
type WalletConfig struct {
	RPCEndpoint    string
	Cluster        string
	RequestTimeout time.Duration
	BurnDelay      time.Duration
	AppName        string
	AppURI         string
	DustThreshold  float64 // holdings below this amount are dust
}

// HistoryConfig contains persistence limits
type HistoryConfig struct {
	MaxBurnRecords int
}

// HunterConfig describes one selectable ship
type HunterConfig struct {
	ID      string
	Name    string
	Weapon  string
	Ability string
	Perk    string
	Color   color.RGBA
	Shape   ShipShape
}

// ShipShape selects how a hunter ship is drawn
type ShipShape int

const (
	ShipArrow ShipShape = iota
	ShipDiamond
	ShipSaucer
	ShipCrystal
)

// DimensionConfig describes one selectable map
type DimensionConfig struct {
	ID      string
	Name    string
	MapFile string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Arcade arcade.Config
var Ship ShipConfig
var EnemySprite EnemySpriteConfig
var Effects EffectsConfig
var HUD HUDConfig
var CRT CRTConfig
var Wallet WalletConfig
var History HistoryConfig
var Hunters []HunterConfig
var Dimensions []DimensionConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool   // Skip home and character select, start a mission right away
	DebugWallet  bool   // Connect the mock wallet instead of a real address
	Address      string // Wallet address used when not in debug mode
	ShowHitBoxes bool   // Outline demon hit boxes
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Violet       = color.RGBA{R: 139, G: 92, B: 246, A: 255}
	DeepPurple   = color.RGBA{R: 91, G: 33, B: 182, A: 255}
	Orchid       = color.RGBA{R: 168, G: 85, B: 247, A: 255}
	Gray         = color.RGBA{R: 102, G: 102, B: 102, A: 255}
	DarkGray     = color.RGBA{R: 51, G: 51, B: 51, A: 255}
	LightGray    = color.RGBA{R: 170, G: 170, B: 170, A: 255}
	Panel        = color.RGBA{R: 17, G: 17, B: 17, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 230}
	GlitchTint   = color.RGBA{R: 255, G: 0, B: 255, A: 51}
	BurnRed      = color.RGBA{R: 185, G: 28, B: 28, A: 255}
)

func init() {
	C = &Config{
		Width:  360,
		Height: 640,
		TPS:    60,
	}

	Arcade = arcade.DefaultConfig()

	Ship = ShipConfig{
		Width:        110,
		Height:       110,
		BottomMargin: 50,
		MoveSeconds:  0.45,
		BeamWidth:    40,
	}

	EnemySprite = EnemySpriteConfig{
		NormalSize: 40,
		BossSize:   80,
		LabelGap:   5,
	}

	Effects = EffectsConfig{
		FlashDuration:        100 * time.Millisecond,
		FlashAlpha:           0.4,
		GlitchDuration:       200 * time.Millisecond,
		FloatingTextDuration: 1000 * time.Millisecond,
		FloatingTextRise:     50,
		FloatingTextScale:    1.2,
		FloatingTextPop:      400 * time.Millisecond,
		FloatingTextFadeAt:   0.6,
		ParticleCount:        8,
		ParticleSpread:       150,
		ParticleDuration:     600 * time.Millisecond,
		ParticleSize:         4,
		LootDuration:         800 * time.Millisecond,
		LootTargetX:          50,
		LootTargetY:          50,
		ComboAnnounceAt:      3,
		ShakeIntensity:       6,
		ShakeFrames:          15,
		HealthBarFrames:      90,
		BeamFrames:           6,
	}

	CRT = CRTConfig{
		Enabled:       true,
		ScanlineGap:   5,
		ScanlineAlpha: 38,
		DustCount:     15,
		FlickerMin:    0.8,
		FlickerLow:    0.03,
		FlickerHigh:   0.08,
		VignetteAlpha: 0.4,
	}

	HUD = HUDConfig{
		Margin:        20,
		TopMargin:     40,
		VortexWidth:   110,
		VortexHeight:  22,
		ScoreDigits:   6,
		AbortBottom:   100,
		ButtonHeight:  36,
		ModalWidth:    300,
		ModalHeight:   300,
		ModalPadding:  20,
		ModalBorder:   4,
		ResultTitleY:  90,
		ResultLineGap: 28,
	}

	Wallet = WalletConfig{
		RPCEndpoint:    "https://api.devnet.solana.com",
		Cluster:        "devnet",
		RequestTimeout: 10 * time.Second,
		BurnDelay:      2 * time.Second,
		AppName:        "Dust Demons",
		AppURI:         "https://dustdemons.xyz",
		DustThreshold:  1,
	}

	History = HistoryConfig{
		MaxBurnRecords: 20,
	}

	Hunters = []HunterConfig{
		{
			ID: "hunter", Name: "YIELD HUNTER", Weapon: "Jup-Beam x2", Ability: "SOL_RENT_RECLAIMER",
			Perk:  "Detects hidden SOL rent locked in dormant accounts. +10% yield on reclaimed rent.",
			Color: Violet, Shape: ShipArrow,
		},
		{
			ID: "lord", Name: "DEMON LORD", Weapon: "Void Railgun", Ability: "HACKATHON_OVERRIDE",
			Perk:  "Instantly burns rugpull tokens. 2x XP multiplier for any verified burn.",
			Color: Red, Shape: ShipDiamond,
		},
		{
			// no ability: shown as CORE_SYSTEM
			ID: "collector", Name: "DUST COLLECTOR", Weapon: "Vacuum 3000",
			Perk:  "Automatically sweeps tokens worth < 0.01 SOL. Infinite scanning range.",
			Color: Green, Shape: ShipSaucer,
		},
		{
			ID: "prophet", Name: "MARKET PROPHET", Weapon: "Crystal Glitch", Ability: "PRECOGNITION",
			Perk:  "Shows Jupiter Price API v3 delta before swap. 100% swap slip protection.",
			Color: Yellow, Shape: ShipCrystal,
		},
	}

	Dimensions = []DimensionConfig{
		{ID: "GRAVEYARD", Name: "THE GRAVEYARD", MapFile: "dimensions/graveyard.tmx"},
		{ID: "CORE", Name: "THE CORE", MapFile: "dimensions/core.tmx"},
		{ID: "VOID", Name: "THE VOID", MapFile: "dimensions/void.tmx"},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:    false,
		DebugWallet: false,
	}
}

// HunterByID returns the hunter with the given id, falling back to the first one
func HunterByID(id string) HunterConfig {
	for _, h := range Hunters {
		if h.ID == id {
			return h
		}
	}
	return Hunters[0]
}

// DimensionByID returns the dimension with the given id, falling back to the first one
func DimensionByID(id string) DimensionConfig {
	for _, d := range Dimensions {
		if d.ID == id {
			return d
		}
	}
	return Dimensions[0]
}
