package config

import "image/color"

// MenuConfig contains home and settings screen values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	PanelColor        color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TextColorMuted    color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	Footer            string
}

// ModalConfig contains the exorcism confirmation and result card values
type ModalConfig struct {
	OverlayColor    color.RGBA
	BorderColor     color.RGBA
	BurningColor    color.RGBA
	InfoBoxColor    color.RGBA
	TokenColor      color.RGBA
	RentColor       color.RGBA
	ButtonColor     color.RGBA
	CertificateGold color.RGBA
	ShareColor      color.RGBA
	RentEstimate    string
}

var Menu MenuConfig
var Modal ModalConfig

func init() {
	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 0, G: 0, B: 0, A: 255},
		PanelColor:        Panel,
		TitleColor:        Orchid,
		TextColorNormal:   White,
		TextColorSelected: Yellow,
		TextColorMuted:    Gray,
		TitleY:            90,
		MenuStartY:        330,
		MenuItemHeight:    36,
		MenuItemGap:       14,
		Footer:            "SOL*P9 MONOLITH HACKATHON.EXE",
	}

	Modal = ModalConfig{
		OverlayColor:    BlackOverlay,
		BorderColor:     Red,
		BurningColor:    Yellow,
		InfoBoxColor:    color.RGBA{R: 10, G: 10, B: 10, A: 255},
		TokenColor:      Green,
		RentColor:       Violet,
		ButtonColor:     BurnRed,
		CertificateGold: Yellow,
		ShareColor:      color.RGBA{R: 29, G: 155, B: 240, A: 255},
		RentEstimate:    "RECLAIMING ~0.002 SOL",
	}
}
