package synth

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(buf []byte, frame, channel int) int16 {
	return int16(binary.LittleEndian.Uint16(buf[frame*bytesPerFrame+channel*2:]))
}

func TestRenderLength(t *testing.T) {
	buf := Render(Tone{StartHz: 440, EndHz: 440, Seconds: 0.5, Volume: 1}, 44100)
	assert.Len(t, buf, 22050*bytesPerFrame)
}

func TestRenderEmpty(t *testing.T) {
	assert.Nil(t, Render(Tone{StartHz: 440, Seconds: 0}, 44100))
	assert.Nil(t, Render(Tone{StartHz: 440, Seconds: 1}, 0))
}

func TestRenderStereoAndBounded(t *testing.T) {
	buf := Render(Tone{StartHz: 880, EndHz: 110, Seconds: 0.1, Square: 0.5, Noise: 0.4, Volume: 2}, 8000)
	require.NotEmpty(t, buf)

	peak := 0
	for i := 0; i < len(buf)/bytesPerFrame; i++ {
		l, r := sample(buf, i, 0), sample(buf, i, 1)
		assert.Equal(t, l, r)
		if a := int(math.Abs(float64(l))); a > peak {
			peak = a
		}
	}
	assert.Greater(t, peak, 0)
	assert.LessOrEqual(t, peak, math.MaxInt16)
}

func TestRenderDecays(t *testing.T) {
	buf := Render(Tone{StartHz: 200, EndHz: 200, Seconds: 1, Square: 1, Volume: 1}, 1000)
	first := math.Abs(float64(sample(buf, 1, 0)))
	last := math.Abs(float64(sample(buf, 998, 0)))
	assert.Greater(t, first, last)
}

func TestRenderDeterministic(t *testing.T) {
	tone := Tone{StartHz: 300, EndHz: 30, Seconds: 0.2, Noise: 0.8, Volume: 0.5}
	assert.Equal(t, Render(tone, 22050), Render(tone, 22050))
}

func TestRenderSustain(t *testing.T) {
	buf := Render(Tone{StartHz: 200, EndHz: 200, Seconds: 1, Square: 1, Volume: 0.5, Sustain: true}, 1000)
	first := math.Abs(float64(sample(buf, 1, 0)))
	last := math.Abs(float64(sample(buf, 998, 0)))
	assert.Equal(t, first, last)
}
