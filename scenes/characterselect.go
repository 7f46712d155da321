package scenes

import (
	"log"
	"sync"

	"github.com/automoto/dustdemons/assets"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/systems"
	"github.com/automoto/dustdemons/ui"
	"github.com/automoto/dustdemons/wallet"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CharacterSelectScene picks the hunter and dimension using ebitenui
type CharacterSelectScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	selectUI     *ui.CharacterSelectUI
	session      wallet.Session
	assets       []wallet.Asset
	once         sync.Once
	frames       int

	engage       *systems.MissionSetup
	shouldGoBack bool
}

// NewCharacterSelectScene creates the character select scene for a scanned wallet
func NewCharacterSelectScene(sc SceneChanger, session wallet.Session, assets []wallet.Asset) *CharacterSelectScene {
	return &CharacterSelectScene{sceneChanger: sc, session: session, assets: assets}
}

func (cs *CharacterSelectScene) Update() {
	cs.once.Do(cs.configure)
	cs.frames++

	// Update ECS for audio and keyboard navigation
	cs.ecs.Update()

	// Update ebitenui
	cs.selectUI.Update()

	// Handle scene transitions
	if cs.engage != nil {
		systems.FadeOutMusic(cs.ecs)
		cs.sceneChanger.ChangeScene(NewGameplayScene(cs.sceneChanger, *cs.engage))
		return
	}
	if cs.shouldGoBack {
		cs.sceneChanger.ChangeScene(NewHomeScene(cs.sceneChanger, &cs.session))
		return
	}
}

func (cs *CharacterSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if cs.ecs == nil {
		return
	}

	// Draw ebitenui, then the ship into the space it leaves free
	cs.selectUI.UI.Draw(screen)
	systems.DrawHunterPreview(screen, cs.selectUI.SelectedHunter(), cs.selectUI.PreviewRect(), cs.frames)
	cs.ecs.Draw(screen)
}

func (cs *CharacterSelectScene) configure() {
	cs.ecs = ecs.NewECS(donburi.NewWorld())

	cs.selectUI = ui.NewCharacterSelectUI(cs.onEngage, func() { cs.shouldGoBack = true })

	// Audio system
	cs.ecs.AddSystem(systems.UpdateAudio)

	cs.ecs.AddSystem(systems.UpdateInput)
	cs.ecs.AddSystem(systems.NewUpdateCharacterSelect(cs.selectUI))
	cs.ecs.AddSystem(systems.UpdateCRT)

	cs.ecs.AddRenderer(cfg.Default, systems.DrawCRT)

	// Continue playing the home drone
	systems.PlayMusic(cs.ecs)
}

func (cs *CharacterSelectScene) onEngage(hunter cfg.HunterConfig, choice cfg.DimensionConfig) {
	d, err := assets.LoadDimension(choice.ID, choice.MapFile)
	if err != nil {
		log.Printf("Warning: Could not load dimension %s: %v", choice.ID, err)
		return
	}
	cs.engage = &systems.MissionSetup{
		Session:   cs.session,
		Assets:    cs.assets,
		Hunter:    hunter,
		Dimension: d,
	}
}
