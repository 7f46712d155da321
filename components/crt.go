package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CRTDust is one glowing speck of the CRT overlay
type CRTDust struct {
	X, Y  float64
	Size  float64
	Alpha float64
	Green bool // otherwise violet
}

// CRTData drives the scanline and flicker overlay drawn over every scene
type CRTData struct {
	Frame   int
	Flicker float64 // 0.8 - 1.0
	Cycle   *gween.Sequence
	Dust    []CRTDust
}

var CRT = donburi.NewComponentType[CRTData]()
