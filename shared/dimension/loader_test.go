package dimension

import (
	"image/color"
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBundledDimensions(t *testing.T) {
	dims, ids, err := LoadAll(os.DirFS("../../assets"), "dimensions")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"GRAVEYARD", "CORE", "VOID"}, ids)

	g := dims["GRAVEYARD"]
	require.NotNil(t, g)
	assert.Equal(t, "THE GRAVEYARD", g.Name)
	assert.Equal(t, 360, g.Width)
	assert.Equal(t, 640, g.Height)
	assert.Equal(t, color.RGBA{A: 255}, g.Top)
	assert.Equal(t, color.RGBA{R: 0x2d, G: 0x00, B: 0x4d, A: 255}, g.Bottom)
	assert.Equal(t, color.RGBA{R: 0x5b, G: 0x21, B: 0xb6, A: 0x1a}, g.Overlay)

	require.NotEmpty(t, g.Props)
	assert.Equal(t, "skull", g.Props[0].Kind)
	assert.True(t, g.Props[0].Ellipse)
	for i := 1; i < len(g.Props); i++ {
		assert.LessOrEqual(t, g.Props[i-1].Y, g.Props[i].Y)
	}

	assert.Equal(t, "THE VOID", dims["VOID"].Name)
	assert.Equal(t, "THE CORE", dims["CORE"].Name)
}

func mapFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return fsys
}

func TestLoadDefaultsFromFileName(t *testing.T) {
	fsys := mapFS(map[string]string{
		"maps/ashes.tmx": `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="3" tilewidth="10" tileheight="10" infinite="0">
</map>`,
	})

	d, err := Load(fsys, "maps/ashes.tmx")
	require.NoError(t, err)
	assert.Equal(t, "ASHES", d.ID)
	assert.Equal(t, "ASHES", d.Name)
	assert.Equal(t, 20, d.Width)
	assert.Equal(t, 30, d.Height)
	assert.Empty(t, d.Props)
}

func TestLoadRejectsBadColor(t *testing.T) {
	fsys := mapFS(map[string]string{
		"maps/bad.tmx": `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="3" tilewidth="10" tileheight="10" infinite="0">
 <properties>
  <property name="topColor" value="#zz0000"/>
 </properties>
</map>`,
	})

	_, err := Load(fsys, "maps/bad.tmx")
	assert.Error(t, err)
}

func TestLoadAllErrors(t *testing.T) {
	_, _, err := LoadAll(fstest.MapFS{}, "maps")
	assert.Error(t, err)

	_, err = Load(fstest.MapFS{}, "maps/missing.tmx")
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#fff", color.RGBA{R: 255, G: 255, B: 255, A: 255}, true},
		{"#2d004d", color.RGBA{R: 0x2d, B: 0x4d, A: 255}, true},
		{"#80ff00ff", color.RGBA{R: 255, B: 255, A: 0x80}, true},
		{"123456", color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}, true},
		{"#12345", color.RGBA{}, false},
		{"", color.RGBA{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
