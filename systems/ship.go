package systems

import (
	"image/color"

	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// GetShip returns the hunter's ship if one exists
func GetShip(e *ecs.ECS) (*components.ShipData, bool) {
	entry, ok := components.Ship.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Ship.Get(entry), true
}

// MoveShip starts a springy flight toward x
func MoveShip(e *ecs.ECS, x float64) {
	ship, ok := GetShip(e)
	if !ok {
		return
	}
	ship.Target = clampShipX(x)
	ship.Tween = gween.New(float32(ship.X), float32(ship.Target), cfg.Ship.MoveSeconds, ease.OutBack)
}

// UpdateShip handles keyboard steering and advances the flight tween
func UpdateShip(e *ecs.ECS) {
	ship, ok := GetShip(e)
	if !ok {
		return
	}
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMoveLeft).JustPressed {
		MoveShip(e, ship.Target-cfg.Input.KeyboardStep)
	}
	if GetAction(input, cfg.ActionMoveRight).JustPressed {
		MoveShip(e, ship.Target+cfg.Input.KeyboardStep)
	}

	if ship.Tween != nil {
		x, done := ship.Tween.Update(1 / float32(cfg.C.TPS))
		ship.X = float64(x)
		if done {
			ship.X = ship.Target
			ship.Tween = nil
		}
	}
	if ship.BeamTTL > 0 {
		ship.BeamTTL--
	}
}

// DrawShip renders the hunter's ship and its fire beam
func DrawShip(e *ecs.ECS, screen *ebiten.Image) {
	ship, ok := GetShip(e)
	if !ok {
		return
	}

	top := ship.Y - cfg.Ship.Height/2
	if ship.BeamTTL > 0 {
		alpha := float64(ship.BeamTTL) / float64(cfg.Effects.BeamFrames)
		beam := withAlpha(ship.Hunter.Color, alpha)
		vector.StrokeLine(screen, float32(ship.X), float32(top), float32(ship.X), float32(ship.BeamTop), 4, beam, true)
		vector.StrokeLine(screen, float32(ship.X), float32(top), float32(ship.X), float32(ship.BeamTop), 1.5, withAlpha(cfg.White, alpha), true)
	}

	drawHull(screen, ship.Hunter.Shape, ship.X, ship.Y, cfg.Ship.Width, cfg.Ship.Height, ship.Hunter.Color)
}

// drawHull draws one of the four hunter silhouettes centered on (cx, cy).
// Character select reuses it for its previews.
func drawHull(screen *ebiten.Image, shape cfg.ShipShape, cx, cy, w, h float64, body color.RGBA) {
	hw, hh := w/2, h/2
	trim := withAlpha(cfg.White, 0.8)

	switch shape {
	case cfg.ShipDiamond:
		fillPolygon(screen, body, cx, cy-hh, cx+hw*0.7, cy, cx, cy+hh*0.8, cx-hw*0.7, cy)
		fillPolygon(screen, trim, cx, cy-hh*0.4, cx+hw*0.2, cy, cx, cy+hh*0.3, cx-hw*0.2, cy)
	case cfg.ShipSaucer:
		fillPolygon(screen, body, cx-hw, cy+hh*0.1, cx-hw*0.5, cy-hh*0.2, cx+hw*0.5, cy-hh*0.2, cx+hw, cy+hh*0.1, cx+hw*0.5, cy+hh*0.35, cx-hw*0.5, cy+hh*0.35)
		fillCircle(screen, cx, cy-hh*0.2, hw*0.3, trim)
		for i := -2; i <= 2; i++ {
			fillCircle(screen, cx+float64(i)*hw*0.35, cy+hh*0.1, 3, cfg.Yellow)
		}
	case cfg.ShipCrystal:
		fillPolygon(screen, body, cx, cy-hh, cx+hw*0.45, cy-hh*0.2, cx+hw*0.3, cy+hh*0.7, cx-hw*0.3, cy+hh*0.7, cx-hw*0.45, cy-hh*0.2)
		fillPolygon(screen, trim, cx, cy-hh*0.7, cx+hw*0.15, cy-hh*0.2, cx, cy+hh*0.4, cx-hw*0.15, cy-hh*0.2)
	default:
		fillPolygon(screen, body, cx, cy-hh, cx+hw, cy+hh*0.6, cx+hw*0.3, cy+hh*0.3, cx, cy+hh*0.7, cx-hw*0.3, cy+hh*0.3, cx-hw, cy+hh*0.6)
		fillPolygon(screen, trim, cx, cy-hh*0.5, cx+hw*0.15, cy, cx-hw*0.15, cy)
	}

	// engine glow
	fillCircle(screen, cx, cy+hh*0.75, hw*0.12, withAlpha(cfg.Yellow, 0.9))
}
