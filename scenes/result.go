package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/systems"
	"github.com/automoto/dustdemons/wallet"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResultScene shows the certificate of exorcism after a confirmed burn
type ResultScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	result       components.ResultData
	session      wallet.Session
	once         sync.Once
}

// NewResultScene creates the result screen for a burn
func NewResultScene(sc SceneChanger, result components.ResultData, session wallet.Session) *ResultScene {
	return &ResultScene{sceneChanger: sc, result: result, session: session}
}

func (rs *ResultScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
}

func (rs *ResultScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *ResultScene) configure() {
	rs.ecs = ecs.NewECS(donburi.NewWorld())

	createHome := func() interface{} {
		return NewHomeScene(rs.sceneChanger, &rs.session)
	}

	// Audio system
	rs.ecs.AddSystem(systems.UpdateAudio)

	rs.ecs.AddSystem(systems.UpdateInput)
	rs.ecs.AddSystem(systems.NewUpdateResult(rs.sceneChanger, createHome))
	rs.ecs.AddSystem(systems.UpdateCRT)

	rs.ecs.AddRenderer(cfg.Default, systems.DrawResult)
	rs.ecs.AddRenderer(cfg.Default, systems.DrawCRT)

	systems.SetResult(rs.ecs, rs.result)
}
