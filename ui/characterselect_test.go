package ui

import (
	"testing"

	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/fonts"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/gofont/gomono"
)

func TestAbilityName(t *testing.T) {
	assert.Equal(t, "SOL_RENT_RECLAIMER", AbilityName(cfg.HunterByID("hunter")))
	assert.Equal(t, "CORE_SYSTEM", AbilityName(cfg.HunterByID("collector")))
}

func TestWrapIndex(t *testing.T) {
	assert.Equal(t, 3, wrapIndex(-1, 4))
	assert.Equal(t, 0, wrapIndex(4, 4))
	assert.Equal(t, 2, wrapIndex(2, 4))
	assert.Equal(t, 0, wrapIndex(5, 0))
}

func TestSelectionLabel(t *testing.T) {
	assert.Equal(t, "> VOID <", selectionLabel("VOID", true))
	assert.Equal(t, "VOID", selectionLabel("VOID", false))
}

func TestWrapLinesFitsPerkPanel(t *testing.T) {
	fonts.LoadFont(fonts.Mono, gomono.TTF)
	face := fonts.UIFace(fonts.Mono, 10)

	for _, h := range cfg.Hunters {
		lines := wrapLines(h.Perk, face, perkWidth)
		assert.NotEmpty(t, lines, h.Name)
		assert.LessOrEqual(t, len(lines), perkLines, h.Name)
	}
	assert.Empty(t, wrapLines("", face, perkWidth))
}

func TestSelectionCallbacks(t *testing.T) {
	var gotHunter cfg.HunterConfig
	var gotDimension cfg.DimensionConfig
	back := false

	csu := &CharacterSelectUI{
		OnEngage: func(h cfg.HunterConfig, d cfg.DimensionConfig) { gotHunter, gotDimension = h, d },
		OnBack:   func() { back = true },
	}
	csu.SelectHunter(-1)
	csu.SelectDimension(4)
	csu.Engage()
	csu.Back()

	assert.Equal(t, cfg.Hunters[len(cfg.Hunters)-1].ID, gotHunter.ID)
	assert.Equal(t, cfg.Dimensions[1].ID, gotDimension.ID)
	assert.True(t, back)

	hunter, dimension := csu.Selection()
	assert.Equal(t, len(cfg.Hunters)-1, hunter)
	assert.Equal(t, 1, dimension)
}
