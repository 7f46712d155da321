package systems

import (
	"image"
	"math"

	cfg "github.com/automoto/dustdemons/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// HunterPicker is the character select surface driven by keyboard and gamepad
type HunterPicker interface {
	Selection() (hunter, dimension int)
	SelectHunter(i int)
	SelectDimension(i int)
	Engage()
	Back()
}

// NewUpdateCharacterSelect creates the keyboard/gamepad navigation system for
// the character select screen. Pointer input is handled by the widgets.
func NewUpdateCharacterSelect(picker HunterPicker) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		hunter, dimension := picker.Selection()

		switch {
		case GetAction(input, cfg.ActionMenuLeft).JustPressed:
			PlaySFX(e, cfg.SoundMenuNavigate)
			picker.SelectHunter(hunter - 1)
		case GetAction(input, cfg.ActionMenuRight).JustPressed:
			PlaySFX(e, cfg.SoundMenuNavigate)
			picker.SelectHunter(hunter + 1)
		case GetAction(input, cfg.ActionMenuUp).JustPressed:
			PlaySFX(e, cfg.SoundMenuNavigate)
			picker.SelectDimension(dimension - 1)
		case GetAction(input, cfg.ActionMenuDown).JustPressed:
			PlaySFX(e, cfg.SoundMenuNavigate)
			picker.SelectDimension(dimension + 1)
		case GetAction(input, cfg.ActionMenuSelect).JustPressed:
			PlaySFX(e, cfg.SoundMenuSelect)
			picker.Engage()
		case GetAction(input, cfg.ActionMenuBack).JustPressed:
			picker.Back()
		}
	}
}

// DrawHunterPreview draws the hunter's ship hovering inside r
func DrawHunterPreview(screen *ebiten.Image, hunter cfg.HunterConfig, r image.Rectangle, frame int) {
	if r.Empty() {
		return
	}
	size := math.Min(float64(r.Dx()), float64(r.Dy())) * 0.8
	bob := math.Sin(float64(frame)/float64(cfg.C.TPS)*math.Pi) * 4
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y)/2 + bob

	fillCircle(screen, cx, cy, size*0.6, withAlpha(hunter.Color, 0.15))
	drawHull(screen, hunter.Shape, cx, cy, size, size, hunter.Color)
}
