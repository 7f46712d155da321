package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/automoto/dustdemons/shared/dimension"
)

//go:embed all:dimensions
var dimensionFS embed.FS

var (
	loadOnce   sync.Once
	dimensions map[string]*dimension.Dimension
	dimOrder   []string
	loadErr    error
)

// DimensionFS exposes the embedded maps.
func DimensionFS() fs.FS {
	return dimensionFS
}

// LoadDimensions parses every embedded dimension map once.
func LoadDimensions() error {
	loadOnce.Do(func() {
		dimensions, dimOrder, loadErr = dimension.LoadAll(dimensionFS, "dimensions")
	})
	return loadErr
}

// MustLoadDimensions panics if the embedded maps are broken.
func MustLoadDimensions() {
	if err := LoadDimensions(); err != nil {
		panic(fmt.Sprintf("Failed to load dimensions: %v", err))
	}
}

// GetDimension returns a parsed dimension by ID.
func GetDimension(id string) (*dimension.Dimension, bool) {
	if err := LoadDimensions(); err != nil {
		return nil, false
	}
	d, ok := dimensions[id]
	return d, ok
}

// DimensionIDs lists the embedded dimensions in file order.
func DimensionIDs() []string {
	if err := LoadDimensions(); err != nil {
		return nil
	}
	return append([]string(nil), dimOrder...)
}

// LoadDimension returns the dimension for a configured ID, parsing mapFile
// from the embedded maps when the ID is unknown.
func LoadDimension(id, mapFile string) (*dimension.Dimension, error) {
	if d, ok := GetDimension(id); ok {
		return d, nil
	}
	return dimension.Load(dimensionFS, mapFile)
}
