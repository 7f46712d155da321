package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/systems"
	"github.com/automoto/dustdemons/wallet"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// HomeScene is the title screen with wallet connect and settings
type HomeScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *wallet.Session
	once         sync.Once
}

// NewHomeScene creates the home screen. A non-nil session skips the connect step.
func NewHomeScene(sc SceneChanger, session *wallet.Session) *HomeScene {
	return &HomeScene{sceneChanger: sc, session: session}
}

func (hs *HomeScene) Update() {
	hs.once.Do(hs.configure)
	hs.ecs.Update()
}

func (hs *HomeScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if hs.ecs == nil {
		return
	}
	hs.ecs.Draw(screen)
}

func (hs *HomeScene) configure() {
	hs.ecs = ecs.NewECS(donburi.NewWorld())

	createCharacterSelect := func(session wallet.Session, assets []wallet.Asset) interface{} {
		return NewCharacterSelectScene(hs.sceneChanger, session, assets)
	}

	// Audio system (runs first to initialize audio context)
	hs.ecs.AddSystem(systems.UpdateAudio)

	hs.ecs.AddSystem(systems.UpdateInput)
	hs.ecs.AddSystem(systems.NewUpdateHome(hs.sceneChanger, createCharacterSelect))
	hs.ecs.AddSystem(systems.UpdateSettingsMenu)
	hs.ecs.AddSystem(systems.UpdateCRT)

	// Renderers (settings draws on top of home)
	hs.ecs.AddRenderer(cfg.Default, systems.DrawHome)
	hs.ecs.AddRenderer(cfg.Default, systems.DrawSettingsMenu)
	hs.ecs.AddRenderer(cfg.Default, systems.DrawCRT)

	if hs.session != nil {
		systems.SetHomeSession(hs.ecs, hs.session)
	}

	systems.PlayMusic(hs.ecs)
}
