package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var (
	vortexIdle      = color.RGBA{R: 51, G: 51, B: 51, A: 255}
	vortexIdleEdge  = cfg.Gray
	vortexChargeBar = color.NRGBA{R: 255, G: 255, A: 77}
	hudShadow       = color.RGBA{A: 204}
)

// vortexButton is the tappable charge meter at the top center
func vortexButton(width float64) rect {
	return centeredRect(width, cfg.HUD.TopMargin-cfg.HUD.VortexHeight/2-4, cfg.HUD.VortexWidth, cfg.HUD.VortexHeight)
}

// abortButton sits above the bottom edge, over the ship lane
func abortButton(width, height float64) rect {
	return centeredRect(width, height-cfg.HUD.AbortBottom-cfg.HUD.ButtonHeight, width*0.6, cfg.HUD.ButtonHeight)
}

// DrawHUD renders score, combo, vortex meter, pilot and the abort button
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	m, ok := GetMission(e)
	if !ok {
		return
	}
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	small := fonts.Small.Get()
	bold := fonts.MonoBold.Get()
	run := m.Loop.Run()

	margin := int(cfg.HUD.Margin)
	baseline := int(cfg.HUD.TopMargin)

	drawShadowed(screen, "SCORE: "+scoreLabel(m.Score), small, margin, baseline, cfg.White)
	if run.Combo > 1 {
		drawShadowed(screen, fmt.Sprintf("COMBO X%d!", run.Combo), small, margin, baseline+16, cfg.Yellow)
	}

	pilot := "PILOT: " + m.Hunter.Name
	drawShadowed(screen, pilot, small, int(width)-margin-fonts.Width(small, pilot), baseline+16, cfg.Violet)

	drawVortexMeter(screen, vortexButton(width), run.Charge, m.Loop.VortexReady())

	abort := abortButton(width, height)
	drawButton(screen, abort, "ABORT", bold, withAlpha(cfg.Menu.PanelColor, 0.7), withAlpha(cfg.Red, 0.7), withAlpha(cfg.White, 0.7))
}

func drawVortexMeter(screen *ebiten.Image, r rect, charge int, ready bool) {
	fill, edge := color.Color(vortexIdle), color.Color(vortexIdleEdge)
	if ready {
		fill, edge = cfg.Violet, cfg.Yellow
	}
	fillRect(screen, r, fill)

	ratio := float64(charge) / float64(cfg.Arcade.ChargeMax)
	if ratio > 1 {
		ratio = 1
	}
	fillRect(screen, rect{X: r.X, Y: r.Y, W: r.W * ratio, H: r.H}, vortexChargeBar)
	strokeRect(screen, r, 2, edge)

	small := fonts.Small.Get()
	label := fmt.Sprintf("VORTEX: %d%%", charge)
	ascent := small.Metrics().Ascent.Ceil()
	drawTextCentered(screen, label, small, r.X+r.W/2, r.Y+(r.H+float64(ascent))/2-1, cfg.White)
}

// drawShadowed draws HUD text with a 2px drop shadow
func drawShadowed(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	text.Draw(screen, s, face, x+2, y+2, hudShadow)
	text.Draw(screen, s, face, x, y, clr)
}
