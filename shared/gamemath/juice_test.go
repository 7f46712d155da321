package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerpAndClamp(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, 50.0, Lerp(100, 50, 1))
	assert.Equal(t, 0.0, Clamp(-3, 0, 1))
	assert.Equal(t, 1.0, Clamp(3, 0, 1))
	assert.Equal(t, 0.25, Clamp(0.25, 0, 1))
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0.5, Progress(50, 100))
	assert.Equal(t, 1.0, Progress(150, 100))
	assert.Equal(t, 0.0, Progress(-1, 100))
	assert.Equal(t, 1.0, Progress(0, 0))
}

func TestBurstOffset(t *testing.T) {
	dx, dy := BurstOffset(0, 8, 150)
	assert.InDelta(t, 150, dx, 1e-9)
	assert.InDelta(t, 0, dy, 1e-9)

	dx, dy = BurstOffset(2, 8, 150)
	assert.InDelta(t, 0, dx, 1e-9)
	assert.InDelta(t, 150, dy, 1e-9)

	dx, dy = BurstOffset(4, 8, 150)
	assert.InDelta(t, -150, dx, 1e-9)
	assert.InDelta(t, 0, dy, 1e-9)

	dx, dy = BurstOffset(1, 0, 150)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestFadeOut(t *testing.T) {
	assert.Equal(t, 1.0, FadeOut(0.3, 0.6))
	assert.InDelta(t, 0.5, FadeOut(0.8, 0.6), 1e-9)
	assert.Equal(t, 0.0, FadeOut(1, 0.6))
	assert.Equal(t, 1.0, FadeOut(0.9, 1))
}

func TestCenterX(t *testing.T) {
	assert.Equal(t, 125.0, CenterX(180, 110, 360))
	assert.Equal(t, 0.0, CenterX(10, 110, 360))
	assert.Equal(t, 250.0, CenterX(355, 110, 360))
	assert.Equal(t, 0.0, CenterX(50, 400, 360))
}
