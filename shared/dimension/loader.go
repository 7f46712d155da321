package dimension

import (
	"fmt"
	"image/color"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// (game) or fstest.MapFS (tests).
func Load(fsys fs.FS, tmxPath string) (*Dimension, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	stem := strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
	d := &Dimension{
		ID:     strings.ToUpper(stem),
		Name:   strings.ToUpper(stem),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
		Top:    color.RGBA{A: 255},
		Bottom: color.RGBA{A: 255},
	}

	if levelMap.Properties != nil {
		props := levelMap.Properties
		if id := props.GetString("id"); id != "" {
			d.ID = id
		}
		if name := props.GetString("name"); name != "" {
			d.Name = name
		}
		if d.Top, err = propColor(props.GetString("topColor"), d.Top); err != nil {
			return nil, fmt.Errorf("%s topColor: %w", tmxPath, err)
		}
		if d.Bottom, err = propColor(props.GetString("bottomColor"), d.Bottom); err != nil {
			return nil, fmt.Errorf("%s bottomColor: %w", tmxPath, err)
		}
		if d.Overlay, err = propColor(props.GetString("overlayColor"), d.Overlay); err != nil {
			return nil, fmt.Errorf("%s overlayColor: %w", tmxPath, err)
		}
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "Props" {
			continue
		}
		for _, o := range og.Objects {
			kind := o.Class
			if kind == "" {
				kind = o.Type //nolint:staticcheck // TMX uses type= attribute
			}
			c, err := propColor(o.Properties.GetString("color"), color.RGBA{R: 255, G: 255, B: 255, A: 26})
			if err != nil {
				return nil, fmt.Errorf("%s prop %d color: %w", tmxPath, o.ID, err)
			}
			d.Props = append(d.Props, Prop{
				Kind:    kind,
				X:       o.X,
				Y:       o.Y,
				W:       o.Width,
				H:       o.Height,
				Ellipse: len(o.Ellipses) > 0,
				Color:   c,
			})
		}
	}

	// Draw back to front
	sort.SliceStable(d.Props, func(i, j int) bool {
		return d.Props[i].Y < d.Props[j].Y
	})

	return d, nil
}

// LoadAll discovers all .tmx files in dir within fsys and returns them keyed
// by dimension ID plus the IDs in file order.
func LoadAll(fsys fs.FS, dir string) (map[string]*Dimension, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	dims := make(map[string]*Dimension, len(matches))
	ids := make([]string, 0, len(matches))
	for _, path := range matches {
		d, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		if _, dup := dims[d.ID]; dup {
			return nil, nil, fmt.Errorf("duplicate dimension id %q in %s", d.ID, path)
		}
		dims[d.ID] = d
		ids = append(ids, d.ID)
	}
	return dims, ids, nil
}

// ParseColor accepts #rgb, #rrggbb and Tiled's #aarrggbb.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex = "ff" + hex
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

func propColor(s string, fallback color.RGBA) (color.RGBA, error) {
	if s == "" {
		return fallback, nil
	}
	return ParseColor(s)
}
