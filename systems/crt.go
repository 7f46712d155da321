package systems

import (
	"image/color"
	"math/rand/v2"

	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var (
	dustGreen  = color.NRGBA{G: 255, A: 255}
	dustViolet = color.NRGBA{R: 139, G: 92, B: 246, A: 255}
)

// newFlickerCycle runs 0.9 -> 1 -> FlickerMin -> 0.9
func newFlickerCycle() *gween.Sequence {
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0.9, 1, 0.1, ease.Linear),
		gween.New(1, float32(cfg.CRT.FlickerMin), 0.15, ease.Linear),
		gween.New(float32(cfg.CRT.FlickerMin), 0.9, 0.05, ease.Linear),
	)
	return seq
}

// UpdateCRT advances the flicker cycle, restarting it when it ends
func UpdateCRT(e *ecs.ECS) {
	crt := GetOrCreateCRT(e)
	crt.Frame++
	v, _, done := crt.Cycle.Update(1 / float32(cfg.C.TPS))
	crt.Flicker = float64(v)
	if done {
		crt.Cycle.Reset()
	}
}

// DrawCRT renders dust, scanlines, flicker and vignette over the whole frame
func DrawCRT(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.CRT.Enabled {
		return
	}
	crt := GetOrCreateCRT(e)
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	for _, d := range crt.Dust {
		clr := dustViolet
		if d.Green {
			clr = dustGreen
		}
		clr.A = uint8(255 * d.Alpha)
		fillRect(screen, rect{X: d.X * width, Y: d.Y * height, W: d.Size, H: d.Size}, clr)
	}

	if gap := cfg.CRT.ScanlineGap; gap > 0 {
		line := color.RGBA{A: cfg.CRT.ScanlineAlpha}
		for y := 0; y < int(height); y += gap {
			fillRect(screen, rect{Y: float64(y), W: width, H: 1}, line)
		}
	}

	flicker := cfg.CRT.FlickerLow + (cfg.CRT.FlickerHigh-cfg.CRT.FlickerLow)*crt.Flicker
	fillRect(screen, rect{W: width, H: height}, withAlpha(cfg.White, flicker))

	fillGradient(screen, rect{W: width, H: height}, color.Transparent, color.RGBA{A: uint8(255 * cfg.CRT.VignetteAlpha)})
}

// GetOrCreateCRT returns the singleton CRT component, creating if needed.
// Dust positions are fractions of the screen so they survive a resize.
func GetOrCreateCRT(e *ecs.ECS) *components.CRTData {
	if _, ok := components.CRT.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.CRT))
		dust := make([]components.CRTDust, cfg.CRT.DustCount)
		for i := range dust {
			dust[i] = components.CRTDust{
				X:     rand.Float64(),
				Y:     rand.Float64(),
				Size:  rand.Float64()*4 + 2,
				Alpha: rand.Float64()*0.5 + 0.1,
				Green: rand.Float64() > 0.5,
			}
		}
		components.CRT.SetValue(ent, components.CRTData{
			Flicker: 1,
			Cycle:   newFlickerCycle(),
			Dust:    dust,
		})
	}

	ent, _ := components.CRT.First(e.World)
	return components.CRT.Get(ent)
}
