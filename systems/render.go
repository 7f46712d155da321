package systems

import (
	"image/color"

	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/fonts"
	"github.com/automoto/dustdemons/shared/dimension"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var (
	labelBackground = color.RGBA{A: 204}
	ghostBody       = color.RGBA{R: 230, G: 230, B: 255, A: 255}
	demonBody       = color.RGBA{R: 120, G: 10, B: 10, A: 255}
)

// DrawDimension renders the selected map: gradient, props, then the tint
func DrawDimension(e *ecs.ECS, screen *ebiten.Image) {
	m, ok := GetMission(e)
	if !ok {
		return
	}
	bounds := screen.Bounds()
	full := rect{W: float64(bounds.Dx()), H: float64(bounds.Dy())}

	d := m.Dimension
	if d == nil {
		fillRect(screen, full, color.Black)
		return
	}

	fillGradient(screen, full, d.Top, d.Bottom)
	for _, p := range d.Props {
		drawProp(screen, p)
	}
	if d.Overlay.A > 0 {
		fillRect(screen, full, nrgba(d.Overlay))
	}
}

// drawProp draws one decorative map object by kind. Unknown kinds fall back
// to their bounding shape.
func drawProp(screen *ebiten.Image, p dimension.Prop) {
	clr := nrgba(p.Color)
	cx, cy := p.X+p.W/2, p.Y+p.H/2

	switch p.Kind {
	case "skull":
		fillEllipse(screen, cx, cy-p.H*0.08, p.W/2, p.H*0.42, clr)
		fillRect(screen, rect{X: cx - p.W*0.25, Y: cy + p.H*0.25, W: p.W * 0.5, H: p.H * 0.25}, clr)
		socket := color.NRGBA{A: clr.A}
		fillCircle(screen, cx-p.W*0.18, cy-p.H*0.05, p.W*0.12, socket)
		fillCircle(screen, cx+p.W*0.18, cy-p.H*0.05, p.W*0.12, socket)
	case "grave":
		fillCircle(screen, cx, p.Y+p.W/2, p.W/2, clr)
		fillRect(screen, rect{X: p.X, Y: p.Y + p.W/2, W: p.W, H: p.H - p.W/2}, clr)
	case "bolt":
		fillPolygon(screen, clr,
			p.X+p.W*0.6, p.Y,
			p.X+p.W*0.1, p.Y+p.H*0.55,
			p.X+p.W*0.45, p.Y+p.H*0.55,
			p.X+p.W*0.3, p.Y+p.H,
			p.X+p.W*0.9, p.Y+p.H*0.4,
			p.X+p.W*0.55, p.Y+p.H*0.4,
		)
	case "star":
		fillPolygon(screen, clr, cx, p.Y, cx+p.W*0.15, cy, cx, p.Y+p.H, cx-p.W*0.15, cy)
		fillPolygon(screen, clr, p.X, cy, cx, cy-p.H*0.15, p.X+p.W, cy, cx, cy+p.H*0.15)
	case "ghost":
		drawGhost(screen, cx, cy, p.H, clr)
	default:
		if p.Ellipse {
			fillEllipse(screen, cx, cy, p.W/2, p.H/2, clr)
			return
		}
		fillRect(screen, rect{X: p.X, Y: p.Y, W: p.W, H: p.H}, clr)
	}
}

func fillEllipse(screen *ebiten.Image, cx, cy, rx, ry float64, clr color.Color) {
	var path vector.Path
	path.MoveTo(float32(cx+rx), float32(cy))
	const steps = 24
	for i := 1; i < steps; i++ {
		x, y := ellipsePoint(cx, cy, rx, ry, i, steps)
		path.LineTo(float32(x), float32(y))
	}
	path.Close()
	fillPath(screen, &path, clr)
}

// DrawEnemies renders every live demon with its token label, topmost last
func DrawEnemies(e *ecs.ECS, screen *ebiten.Image) {
	m, ok := GetMission(e)
	if !ok {
		return
	}
	small := fonts.Small.Get()

	for _, v := range m.Loop.Enemies() {
		entry, ok := spriteEntry(e, m, v.ID)
		if !ok {
			continue
		}
		sprite := components.EnemySprite.Get(entry)
		obj := sprite.Object
		cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2

		if sprite.Boss {
			drawDemon(screen, cx, cy, obj.H, demonBody, cfg.Yellow)
		} else {
			drawGhost(screen, cx, cy, obj.H, ghostBody)
		}
		drawEnemyLabel(screen, sprite.Label, cx, obj.Y+obj.H+cfg.EnemySprite.LabelGap, small)

		if sprite.HitTimer > 0 {
			drawEnemyHealth(screen, obj.X, obj.Y-8, obj.W, v.Health, v.MaxHealth)
		}
	}
}

func drawEnemyLabel(screen *ebiten.Image, label string, cx, top float64, face font.Face) {
	if label == "" {
		return
	}
	w := float64(fonts.Width(face, label)) + 6
	h := float64(face.Metrics().Height.Ceil()) + 2
	fillRect(screen, rect{X: cx - w/2, Y: top, W: w, H: h}, labelBackground)
	drawTextCentered(screen, label, face, cx, top+float64(face.Metrics().Ascent.Ceil())+1, cfg.Green)
}

// drawEnemyHealth draws the boss health bar shown after a hit
func drawEnemyHealth(screen *ebiten.Image, x, y, w float64, current, maxHealth int) {
	if maxHealth <= 0 {
		return
	}
	const barHeight = 4.0
	fillRect(screen, rect{X: x, Y: y, W: w, H: barHeight}, cfg.Red)
	fillRect(screen, rect{X: x, Y: y, W: w * float64(current) / float64(maxHealth), H: barHeight}, cfg.Green)
}

// DrawEnemyHitBoxes outlines every hit box; wired to the debug flag
func DrawEnemyHitBoxes(e *ecs.ECS, screen *ebiten.Image) {
	components.EnemySprite.Each(e.World, func(entry *donburi.Entry) {
		o := components.EnemySprite.Get(entry).Object
		strokeRect(screen, rect{X: o.X, Y: o.Y, W: o.W, H: o.H}, 1, cfg.Green)
	})
}
