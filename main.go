package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/dustdemons/assets"
	"github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/fonts"
	"github.com/automoto/dustdemons/scenes"
	"github.com/automoto/dustdemons/systems"
	"github.com/automoto/dustdemons/wallet"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFont(fonts.Mono, gomono.TTF)
	fonts.LoadFontWithSize(fonts.MonoBold, gomonobold.TTF, 16)
	fonts.LoadFontWithSize(fonts.Title, gomonobold.TTF, 28)
	fonts.LoadFontWithSize(fonts.Small, gomono.TTF, 11)

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = debugMission(g)
	} else {
		g.scene = scenes.NewHomeScene(g, nil)
	}

	return g
}

// debugMission drops straight into the first dimension with the mock wallet
func debugMission(g *Game) Scene {
	session := wallet.Session{Address: wallet.DebugAddress, Cluster: config.Wallet.Cluster}
	hunter := config.Hunters[0]
	choice := config.Dimensions[0]
	d, err := assets.LoadDimension(choice.ID, choice.MapFile)
	if err != nil {
		log.Fatalf("Failed to load dimension %s: %v", choice.ID, err)
	}
	return scenes.NewGameplayScene(g, systems.MissionSetup{
		Session:   session,
		Assets:    wallet.MockAssets(),
		Hunter:    hunter,
		Dimension: d,
	})
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "TOML file overriding the built-in tuning")
	flag.BoolVar(&config.Debug.DebugWallet, "debug-wallet", config.Debug.DebugWallet, "Connect the mock wallet with demo assets")
	flag.StringVar(&config.Debug.Address, "wallet", config.Debug.Address, "Wallet address to scan")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "Start a mission right away with the mock wallet")
	flag.BoolVar(&config.Debug.ShowHitBoxes, "hitboxes", config.Debug.ShowHitBoxes, "Outline demon hit boxes")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if config.Debug.Address == "" && !config.Debug.DebugWallet {
		log.Printf("Warning: No -wallet address given, using the mock wallet")
		config.Debug.DebugWallet = true
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Wallet.AppName)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	systems.InitWallet(nil, nil, nil)
	assets.MustLoadDimensions()

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
