package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameplayScene runs one mission: the arcade loop, targeting and the exorcism modal
type GameplayScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	setup        systems.MissionSetup
	world        *ebiten.Image // offscreen world layer, translated by the screen shake
	once         sync.Once
}

// NewGameplayScene creates a mission scene for the chosen hunter and dimension
func NewGameplayScene(sc SceneChanger, setup systems.MissionSetup) *GameplayScene {
	return &GameplayScene{sceneChanger: sc, setup: setup}
}

func (gs *GameplayScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	m, ok := systems.GetMission(gs.ecs)
	if !ok {
		return
	}
	switch m.Outcome {
	case components.MissionAborted:
		systems.FadeOutMusic(gs.ecs)
		session := m.Session
		gs.sceneChanger.ChangeScene(NewHomeScene(gs.sceneChanger, &session))
	case components.MissionBurned:
		if m.Result != nil {
			gs.sceneChanger.ChangeScene(NewResultScene(gs.sceneChanger, *m.Result, m.Session))
		}
	}
}

func (gs *GameplayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}

	bounds := screen.Bounds()
	if gs.world == nil || gs.world.Bounds() != bounds {
		gs.world = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}
	gs.world.Clear()
	gs.ecs.DrawLayer(cfg.World, gs.world)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(systems.ShakeOffset(gs.ecs))
	screen.DrawImage(gs.world, op)

	gs.ecs.DrawLayer(cfg.Default, screen)
}

func (gs *GameplayScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even while the modal is open)
	gs.ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	gs.ecs.AddSystem(systems.UpdateInput)

	// Targeting reads taps before the modal can claim them
	gs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateShip))
	gs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTargeting))
	gs.ecs.AddSystem(systems.UpdateExorcism)
	gs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMission))

	// Juice keeps animating behind the modal
	gs.ecs.AddSystem(systems.UpdateEffects)
	gs.ecs.AddSystem(systems.UpdateCRT)

	// World layer
	gs.ecs.AddRenderer(cfg.World, systems.DrawDimension)
	gs.ecs.AddRenderer(cfg.World, systems.DrawEnemies)
	if cfg.Debug.ShowHitBoxes {
		gs.ecs.AddRenderer(cfg.World, systems.DrawEnemyHitBoxes)
	}
	gs.ecs.AddRenderer(cfg.World, systems.DrawShip)
	gs.ecs.AddRenderer(cfg.World, systems.DrawEffects)

	// Screen layer
	gs.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawFlash)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawGlitch)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawExorcism)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawCRT)

	systems.StartMission(gs.ecs, gs.setup)
	systems.PlayMusic(gs.ecs)
}
