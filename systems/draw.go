package systems

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/automoto/dustdemons/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// rect is a screen-space area used both for drawing and tap hit tests
type rect struct {
	X, Y, W, H float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// centeredRect returns a w x h rect horizontally centered on the screen at y
func centeredRect(screenWidth, y, w, h float64) rect {
	return rect{X: (screenWidth - w) / 2, Y: y, W: w, H: h}
}

func fillRect(screen *ebiten.Image, r rect, clr color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(screen *ebiten.Image, r rect, width float32, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, clr, false)
}

// drawTextCentered draws s with its baseline at y, centered on cx
func drawTextCentered(screen *ebiten.Image, s string, face font.Face, cx, y float64, clr color.Color) {
	x := int(cx) - fonts.Width(face, s)/2
	text.Draw(screen, s, face, x, int(y), clr)
}

// drawButton draws a filled, bordered button with a centered label
func drawButton(screen *ebiten.Image, r rect, label string, face font.Face, fill, border, textColor color.Color) {
	fillRect(screen, r, fill)
	strokeRect(screen, r, 2, border)
	ascent := face.Metrics().Ascent.Ceil()
	drawTextCentered(screen, label, face, r.X+r.W/2, r.Y+(r.H+float64(ascent))/2-2, textColor)
}

// wrapText splits s into lines no wider than maxWidth, breaking at spaces
func wrapText(face font.Face, s string, maxWidth float64) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && float64(fonts.Width(face, candidate)) > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// withAlpha scales a color's alpha by a in [0, 1]
func withAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	// premultiplied
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// nrgba converts a straight-alpha color literal such as a map tint
func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func fillCircle(screen *ebiten.Image, cx, cy, r float64, clr color.Color) {
	vector.FillCircle(screen, float32(cx), float32(cy), float32(r), clr, true)
}

func strokeCircle(screen *ebiten.Image, cx, cy, r float64, width float32, clr color.Color) {
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), width, clr, true)
}

var (
	whiteSubImage *ebiten.Image
	polyVs        []ebiten.Vertex
	polyIs        []uint16
)

// white returns the 1x1 source image for vertex-colored triangles
func white() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// fillPolygon fills the closed shape through pts, given as x0, y0, x1, y1, ...
func fillPolygon(screen *ebiten.Image, clr color.Color, pts ...float64) {
	if len(pts) < 6 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0]), float32(pts[1]))
	for i := 2; i+1 < len(pts); i += 2 {
		path.LineTo(float32(pts[i]), float32(pts[i+1]))
	}
	path.Close()
	fillPath(screen, &path, clr)
}

func fillPath(screen *ebiten.Image, path *vector.Path, clr color.Color) {
	polyVs, polyIs = path.AppendVerticesAndIndicesForFilling(polyVs[:0], polyIs[:0])
	r, g, b, a := clr.RGBA()
	for i := range polyVs {
		polyVs[i].SrcX = 1
		polyVs[i].SrcY = 1
		polyVs[i].ColorR = float32(r) / 0xffff
		polyVs[i].ColorG = float32(g) / 0xffff
		polyVs[i].ColorB = float32(b) / 0xffff
		polyVs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(polyVs, polyIs, white(), &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		FillRule:       ebiten.FillRuleNonZero,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

// ellipsePoint returns point i of n around an ellipse, starting at angle zero
func ellipsePoint(cx, cy, rx, ry float64, i, n int) (float64, float64) {
	angle := 2 * math.Pi * float64(i) / float64(n)
	return cx + math.Cos(angle)*rx, cy + math.Sin(angle)*ry
}

// fillGradient fills r with a vertical gradient from top to bottom
func fillGradient(screen *ebiten.Image, r rect, top, bottom color.Color) {
	vertex := func(x, y float64, c color.Color) ebiten.Vertex {
		cr, cg, cb, ca := c.RGBA()
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: float32(cr) / 0xffff,
			ColorG: float32(cg) / 0xffff,
			ColorB: float32(cb) / 0xffff,
			ColorA: float32(ca) / 0xffff,
		}
	}
	vs := []ebiten.Vertex{
		vertex(r.X, r.Y, top),
		vertex(r.X+r.W, r.Y, top),
		vertex(r.X, r.Y+r.H, bottom),
		vertex(r.X+r.W, r.Y+r.H, bottom),
	}
	screen.DrawTriangles(vs, []uint16{0, 1, 2, 1, 2, 3}, white(), &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

// drawGhost draws a sheet ghost of height size centered on (cx, cy)
func drawGhost(screen *ebiten.Image, cx, cy, size float64, body color.Color) {
	r := size * 0.4
	top := cy - size/2 + r
	fillCircle(screen, cx, top, r, body)
	fillRect(screen, rect{X: cx - r, Y: top, W: 2 * r, H: size/2 - r*0.25}, body)

	// ragged hem
	hem := cy + size/2 - r*0.25
	for i := 0; i < 3; i++ {
		x := cx - r + r/3 + float64(i)*2*r/3
		fillPolygon(screen, body, x-r/3, hem-1, x+r/3, hem-1, x, hem+r*0.35)
	}

	eye := r * 0.22
	fillCircle(screen, cx-r*0.38, top, eye, color.Black)
	fillCircle(screen, cx+r*0.38, top, eye, color.Black)
}

// drawDemon draws a horned demon head of height size centered on (cx, cy)
func drawDemon(screen *ebiten.Image, cx, cy, size float64, body, eyes color.Color) {
	r := size * 0.38
	headY := cy + size*0.08
	fillPolygon(screen, body, cx-r*0.9, headY-r*0.4, cx-r*1.15, cy-size/2, cx-r*0.35, headY-r*0.85)
	fillPolygon(screen, body, cx+r*0.9, headY-r*0.4, cx+r*1.15, cy-size/2, cx+r*0.35, headY-r*0.85)
	fillCircle(screen, cx, headY, r, body)

	eye := r * 0.28
	fillPolygon(screen, eyes, cx-r*0.7, headY-r*0.3, cx-r*0.15, headY-r*0.05, cx-r*0.6, headY+eye*0.6)
	fillPolygon(screen, eyes, cx+r*0.7, headY-r*0.3, cx+r*0.15, headY-r*0.05, cx+r*0.6, headY+eye*0.6)
	fillRect(screen, rect{X: cx - r*0.45, Y: headY + r*0.45, W: r * 0.9, H: r * 0.12}, eyes)
}
