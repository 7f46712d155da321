package systems

import (
	"testing"

	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"
)

func onScreen(t *testing.T, name string, r rect) {
	t.Helper()
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	assert.GreaterOrEqual(t, r.X, 0.0, name)
	assert.GreaterOrEqual(t, r.Y, 0.0, name)
	assert.LessOrEqual(t, r.X+r.W, w, name)
	assert.LessOrEqual(t, r.Y+r.H, h, name)
}

func TestLayoutsFitScreen(t *testing.T) {
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)

	ex := layoutExorcism(w, h)
	onScreen(t, "exorcism panel", ex.Panel)
	onScreen(t, "burn", ex.Burn)
	onScreen(t, "spare", ex.Spare)

	res := layoutResult(w, h)
	onScreen(t, "card", res.Card)
	onScreen(t, "share", res.Share)
	onScreen(t, "done", res.Done)
	assert.Greater(t, res.Done.Y, res.Share.Y+res.Share.H)

	onScreen(t, "vortex", vortexButton(w))
	onScreen(t, "abort", abortButton(w, h))

	for i, r := range homeButtons(w) {
		onScreen(t, homeOptionLabel(components.HomeOption(i), &components.HomeData{}), r)
	}
}

func TestRectContains(t *testing.T) {
	r := rect{X: 10, Y: 10, W: 20, H: 10}
	assert.True(t, r.contains(10, 10))
	assert.True(t, r.contains(29, 19))
	assert.False(t, r.contains(30, 15))
	assert.False(t, r.contains(15, 9))
}

func TestWrapText(t *testing.T) {
	face := basicfont.Face7x13

	assert.Equal(t, []string{"AAA BBB", "CCC"}, wrapText(face, "AAA BBB CCC", 50))
	assert.Equal(t, []string{"AAAAAAAAAA"}, wrapText(face, "AAAAAAAAAA", 20), "a long word stays whole")
	assert.Empty(t, wrapText(face, "   ", 50))
}

func TestClampShipX(t *testing.T) {
	half := cfg.Ship.Width / 2
	assert.Equal(t, half, clampShipX(-40))
	assert.Equal(t, float64(cfg.C.Width)-half, clampShipX(1000))
	assert.Equal(t, 180.0, clampShipX(180))
}

func TestShortSignature(t *testing.T) {
	assert.Equal(t, "SIG123", shortSignature("SIG123"))
	assert.Equal(t, "MOCK_SIG...ABCDEF", shortSignature("MOCK_SIGNATURE_0123456789ABCDEF"))
}

func TestWithAlpha(t *testing.T) {
	c := withAlpha(cfg.White, 0.5)
	assert.Equal(t, uint8(127), c.A)
	assert.Equal(t, c.A, c.R, "premultiplied")
}
