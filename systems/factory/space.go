package factory

import (
	"github.com/automoto/dustdemons/tags"
	"github.com/solarlune/resolv"
)

// CreateSpace builds the hit-test space with the permanent cursor and beam
// probes already added. The beam is a full-height column beamWidth wide.
func CreateSpace(width, height, cellWidth, cellHeight int, beamWidth float64) (*resolv.Space, *resolv.Object, *resolv.Object) {
	space := resolv.NewSpace(width, height, cellWidth, cellHeight)

	cursor := resolv.NewObject(0, 0, 1, 1, tags.ResolvCursor)
	beam := resolv.NewObject(0, 0, beamWidth, float64(height), tags.ResolvBeam)
	space.Add(cursor, beam)

	return space, cursor, beam
}
