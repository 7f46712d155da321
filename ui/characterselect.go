package ui

import (
	"fmt"
	goimage "image"
	"image/color"
	"strings"

	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	perkLines     = 3
	perkWidth     = 280.0
	previewHeight = 96
)

// CharacterSelectUI holds the ebitenui interface for picking a hunter and a dimension
type CharacterSelectUI struct {
	UI *ebitenui.UI

	Hunter    int // index into cfg.Hunters
	Dimension int // index into cfg.Dimensions

	// Callbacks
	OnEngage func(hunter cfg.HunterConfig, dimension cfg.DimensionConfig)
	OnBack   func()

	// Widget references for updates
	hunterButtons    []*widget.Button
	dimensionButtons []*widget.Button
	nameLabel        *widget.Label
	weaponLabel      *widget.Label
	abilityLabel     *widget.Label
	perkLabels       [perkLines]*widget.Label
	preview          *widget.Container

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// Initialization tracking
	initialized bool
}

// NewCharacterSelectUI creates the hunter and dimension picker
func NewCharacterSelectUI(onEngage func(cfg.HunterConfig, cfg.DimensionConfig), onBack func()) *CharacterSelectUI {
	csu := &CharacterSelectUI{
		OnEngage: onEngage,
		OnBack:   onBack,
	}

	csu.titleFace = fonts.UIFace(fonts.MonoBold, 18)
	csu.normalFace = fonts.UIFace(fonts.MonoBold, 12)
	csu.smallFace = fonts.UIFace(fonts.Mono, 10)
	csu.buildUI()

	return csu
}

func (csu *CharacterSelectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("SELECT YOUR HUNTER", &csu.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TextColorSelected,
		}),
	))

	contentContainer.AddChild(csu.buildHunterGrid())

	// Ship preview is drawn by the scene into this reserved space
	csu.preview = widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(int(perkWidth), previewHeight)),
	)
	contentContainer.AddChild(csu.preview)

	contentContainer.AddChild(csu.buildInfoPanel())

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("SELECT DIMENSION", &csu.normalFace, &widget.LabelColor{
			Idle: cfg.Menu.TextColorNormal,
		}),
	))
	contentContainer.AddChild(csu.buildDimensionRow())
	contentContainer.AddChild(csu.buildActionRow())

	rootContainer.AddChild(contentContainer)
	csu.UI = &ebitenui.UI{Container: rootContainer}
}

// buildHunterGrid lays the hunters out two per row
func (csu *CharacterSelectUI) buildHunterGrid() *widget.Container {
	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	csu.hunterButtons = make([]*widget.Button, len(cfg.Hunters))
	var row *widget.Container
	for i, h := range cfg.Hunters {
		if i%2 == 0 {
			row = widget.NewContainer(
				widget.ContainerOpts.Layout(widget.NewRowLayout(
					widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
					widget.RowLayoutOpts.Spacing(6),
				)),
			)
			grid.AddChild(row)
		}

		index := i
		csu.hunterButtons[i] = widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 36)),
			widget.ButtonOpts.Image(buttonImage(h.Color)),
			widget.ButtonOpts.Text(h.Name, &csu.smallFace, buttonTextColor()),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				csu.SelectHunter(index)
			}),
		)
		row.AddChild(csu.hunterButtons[i])
	}

	return grid
}

func (csu *CharacterSelectUI) buildInfoPanel() *widget.Container {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(int(perkWidth)+16, 0)),
	)

	csu.nameLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &csu.normalFace, &widget.LabelColor{Idle: cfg.White}),
	)
	panel.AddChild(csu.nameLabel)

	csu.weaponLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &csu.smallFace, &widget.LabelColor{Idle: cfg.LightGray}),
	)
	panel.AddChild(csu.weaponLabel)

	csu.abilityLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &csu.smallFace, &widget.LabelColor{Idle: cfg.Violet}),
	)
	panel.AddChild(csu.abilityLabel)

	for i := range csu.perkLabels {
		csu.perkLabels[i] = widget.NewLabel(
			widget.LabelOpts.Text("", &csu.smallFace, &widget.LabelColor{Idle: cfg.Yellow}),
		)
		panel.AddChild(csu.perkLabels[i])
	}

	return panel
}

func (csu *CharacterSelectUI) buildDimensionRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	csu.dimensionButtons = make([]*widget.Button, len(cfg.Dimensions))
	for i, d := range cfg.Dimensions {
		index := i
		csu.dimensionButtons[i] = widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(92, 30)),
			widget.ButtonOpts.Image(buttonImage(cfg.DeepPurple)),
			widget.ButtonOpts.Text(d.ID, &csu.smallFace, buttonTextColor()),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				csu.SelectDimension(index)
			}),
		)
		row.AddChild(csu.dimensionButtons[i])
	}

	return row
}

func (csu *CharacterSelectUI) buildActionRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 36)),
		widget.ButtonOpts.Image(buttonImage(cfg.DarkGray)),
		widget.ButtonOpts.Text("BACK", &csu.normalFace, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			csu.Back()
		}),
	)
	row.AddChild(backButton)

	engageButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(170, 36)),
		widget.ButtonOpts.Image(buttonImage(cfg.BurnRed)),
		widget.ButtonOpts.Text("ENGAGE", &csu.normalFace, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			csu.Engage()
		}),
	)
	row.AddChild(engageButton)

	return row
}

// SelectHunter picks a hunter by index, wrapping out-of-range values
func (csu *CharacterSelectUI) SelectHunter(i int) {
	csu.Hunter = wrapIndex(i, len(cfg.Hunters))
	csu.UpdateUI()
}

// SelectDimension picks a dimension by index, wrapping out-of-range values
func (csu *CharacterSelectUI) SelectDimension(i int) {
	csu.Dimension = wrapIndex(i, len(cfg.Dimensions))
	csu.UpdateUI()
}

// Engage reports the current choice
func (csu *CharacterSelectUI) Engage() {
	if csu.OnEngage != nil {
		csu.OnEngage(csu.SelectedHunter(), csu.SelectedDimension())
	}
}

func (csu *CharacterSelectUI) Back() {
	if csu.OnBack != nil {
		csu.OnBack()
	}
}

// Selection returns the hunter and dimension indices
func (csu *CharacterSelectUI) Selection() (hunter, dimension int) {
	return csu.Hunter, csu.Dimension
}

func (csu *CharacterSelectUI) SelectedHunter() cfg.HunterConfig {
	return cfg.Hunters[csu.Hunter]
}

func (csu *CharacterSelectUI) SelectedDimension() cfg.DimensionConfig {
	return cfg.Dimensions[csu.Dimension]
}

// PreviewRect is the area left free for the ship preview, valid after the
// first layout pass.
func (csu *CharacterSelectUI) PreviewRect() goimage.Rectangle {
	return csu.preview.GetWidget().Rect
}

// UpdateUI refreshes labels and selection markers from the current choice
func (csu *CharacterSelectUI) UpdateUI() {
	h := csu.SelectedHunter()

	for i, b := range csu.hunterButtons {
		if b == nil {
			continue
		}
		if textWidget := b.Text(); textWidget != nil {
			textWidget.Label = selectionLabel(cfg.Hunters[i].Name, i == csu.Hunter)
		}
	}
	for i, b := range csu.dimensionButtons {
		if b == nil {
			continue
		}
		if textWidget := b.Text(); textWidget != nil {
			textWidget.Label = selectionLabel(cfg.Dimensions[i].ID, i == csu.Dimension)
		}
	}

	if csu.nameLabel != nil {
		csu.nameLabel.Label = h.Name
	}
	if csu.weaponLabel != nil {
		csu.weaponLabel.Label = "WEAPON: " + h.Weapon
	}
	if csu.abilityLabel != nil {
		csu.abilityLabel.Label = "ABILITY: " + AbilityName(h)
	}

	if csu.perkLabels[0] == nil {
		return
	}
	lines := wrapLines(strings.ToUpper(h.Perk), csu.smallFace, perkWidth)
	for i, l := range csu.perkLabels {
		l.Label = ""
		if i < len(lines) {
			l.Label = lines[i]
		}
	}
}

// Update calls the UI's Update method
func (csu *CharacterSelectUI) Update() {
	csu.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !csu.initialized {
		csu.initialized = true
		csu.UpdateUI()
	}
}

// AbilityName returns the hunter's ability, CORE_SYSTEM when it has none
func AbilityName(h cfg.HunterConfig) string {
	if h.Ability == "" {
		return "CORE_SYSTEM"
	}
	return h.Ability
}

func selectionLabel(name string, selected bool) string {
	if selected {
		return fmt.Sprintf("> %s <", name)
	}
	return name
}

func wrapIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// wrapLines breaks s into lines no wider than maxWidth
func wrapLines(s string, face text.Face, maxWidth float64) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && text.Advance(candidate, face) > maxWidth {
			lines = append(lines, line)
			candidate = word
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func buttonImage(base color.RGBA) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(shade(base, 0.55)),
		Hover:    image.NewNineSliceColor(shade(base, 0.75)),
		Pressed:  image.NewNineSliceColor(shade(base, 0.4)),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     color.RGBA{255, 255, 255, 255},
		Hover:    color.RGBA{255, 255, 0, 255},
		Pressed:  color.RGBA{200, 200, 200, 255},
		Disabled: color.RGBA{100, 100, 100, 255},
	}
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: 255,
	}
}
