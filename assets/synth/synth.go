// Package synth renders the short procedural sound effects the game uses in
// place of recorded samples. Output is 16-bit little-endian stereo PCM, the
// format ebiten's audio players consume.
package synth

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
)

// Tone describes one effect: a square/sine blend sweeping from StartHz to
// EndHz with a linear decay.
type Tone struct {
	StartHz float64
	EndHz   float64
	Seconds float64
	Square  float64 // 0 = pure sine, 1 = pure square
	Noise   float64 // white noise mix
	Volume  float64
	Sustain bool // hold full volume instead of decaying, for loops
}

const bytesPerFrame = 4 // 2 channels * 16 bit

// Render synthesizes the tone at sampleRate. The noise source is seeded so
// the same tone always renders the same bytes.
func Render(t Tone, sampleRate int) []byte {
	if sampleRate <= 0 || t.Seconds <= 0 {
		return nil
	}
	frames := int(t.Seconds * float64(sampleRate))
	out := make([]byte, frames*bytesPerFrame)
	noise := rand.New(rand.NewPCG(uint64(t.StartHz), uint64(t.EndHz)))
	vol := clamp(t.Volume, 0, 1)

	phase := 0.0
	for i := 0; i < frames; i++ {
		p := float64(i) / float64(frames)
		freq := t.StartHz + (t.EndHz-t.StartHz)*p
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		sine := math.Sin(2 * math.Pi * phase)
		square := 1.0
		if phase >= 0.5 {
			square = -1
		}
		v := sine*(1-t.Square) + square*t.Square
		if t.Noise > 0 {
			v = v*(1-t.Noise) + (noise.Float64()*2-1)*t.Noise
		}
		if t.Sustain {
			v *= vol
		} else {
			v *= vol * (1 - p)
		}

		s := int16(clamp(v, -1, 1) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame+2:], uint16(s))
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
