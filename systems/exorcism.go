package systems

import (
	"log"

	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/fonts"
	"github.com/automoto/dustdemons/shared/records"
	"github.com/automoto/dustdemons/wallet"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// exorcismLayout holds the modal's rects for drawing and tap hit tests
type exorcismLayout struct {
	Panel, Info, Burn, Spare rect
}

func layoutExorcism(width, height float64) exorcismLayout {
	const panelHeight = 320.0
	pad := cfg.HUD.ModalPadding
	panel := rect{X: pad, Y: (height - panelHeight) / 2, W: width - 2*pad, H: panelHeight}
	inner := panel.W - 2*pad
	return exorcismLayout{
		Panel: panel,
		Info:  rect{X: panel.X + pad, Y: panel.Y + 60, W: inner, H: 100},
		Burn:  rect{X: panel.X + pad, Y: panel.Y + 215, W: inner, H: 40},
		Spare: centeredRect(width, panel.Y+268, 160, 30),
	}
}

// UpdateExorcism opens the burn confirmation for each queued kill and runs
// the disposal. The loop stays paused while the modal is open.
func UpdateExorcism(e *ecs.ECS) {
	m, ok := GetMission(e)
	if !ok || m.Outcome != components.MissionRunning {
		return
	}
	ex := GetOrCreateExorcism(e)

	if !ex.Open {
		if len(m.Kills) > 0 {
			openExorcism(m, ex)
		}
		// Input that caused the kill must not also answer the modal
		return
	}
	ex.Frames++

	if ex.Job != nil {
		switch ex.Job.Outcome() {
		case wallet.OutcomePending:
			return
		case wallet.OutcomeSuccess:
			receipt, _ := ex.Job.Result()
			PlaySFX(e, cfg.SoundBurn)
			asset := ex.Asset
			*ex = components.ExorcismData{}
			finishMission(e, m, asset, receipt)
			return
		case wallet.OutcomeFailure:
			_, err := ex.Job.Result()
			log.Printf("Warning: Burn of %s failed: %v", ex.Asset.Name, err)
			ex.Err = err
			ex.Job = nil
		}
	}

	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionMenuUp).JustPressed || GetAction(input, cfg.ActionMenuDown).JustPressed ||
		GetAction(input, cfg.ActionMenuLeft).JustPressed || GetAction(input, cfg.ActionMenuRight).JustPressed {
		PlaySFX(e, cfg.SoundMenuNavigate)
		if ex.Selected == components.ExorcismBurn {
			ex.Selected = components.ExorcismSpare
		} else {
			ex.Selected = components.ExorcismBurn
		}
	}

	selected := GetAction(input, cfg.ActionMenuSelect).JustPressed
	if x, y, ok := ConsumeTap(input); ok {
		layout := layoutExorcism(float64(cfg.C.Width), float64(cfg.C.Height))
		switch {
		case layout.Burn.contains(x, y):
			ex.Selected, selected = components.ExorcismBurn, true
		case layout.Spare.contains(x, y):
			ex.Selected, selected = components.ExorcismSpare, true
		}
	}

	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		spareDemon(m, ex)
		return
	}
	if !selected {
		return
	}

	PlaySFX(e, cfg.SoundMenuSelect)
	switch ex.Selected {
	case components.ExorcismBurn:
		ex.Err = nil
		ex.Job = BurnAsset(m.Session, ex.Asset)
	case components.ExorcismSpare:
		spareDemon(m, ex)
	}
}

func openExorcism(m *components.MissionData, ex *components.ExorcismData) {
	k := m.Kills[0]
	m.Kills = m.Kills[1:]

	asset, ok := wallet.Find(m.Assets, k.Asset.ID)
	if !ok {
		asset = wallet.Asset{ID: k.Asset.ID, Name: k.Asset.Name, Amount: k.Asset.Quantity}
	}

	m.Loop.SetPaused(true)
	*ex = components.ExorcismData{
		Open:     true,
		Kill:     k,
		Asset:    asset,
		Selected: components.ExorcismBurn,
	}
}

// spareDemon closes the modal and resumes the hunt
func spareDemon(m *components.MissionData, ex *components.ExorcismData) {
	log.Printf("[exorcism] spared %s", ex.Asset.Name)
	*ex = components.ExorcismData{}
	m.Loop.SetPaused(false)
}

// DrawExorcism renders the burn confirmation modal
func DrawExorcism(e *ecs.ECS, screen *ebiten.Image) {
	ex := GetOrCreateExorcism(e)
	if !ex.Open {
		return
	}
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	layout := layoutExorcism(width, height)

	fillRect(screen, rect{W: width, H: height}, cfg.Modal.OverlayColor)

	title := fonts.Title.Get()
	bold := fonts.MonoBold.Get()
	small := fonts.Small.Get()
	burning := ex.Burning()

	// Impact text springs in above the panel
	seconds := float32(ex.Frames) / float32(cfg.C.TPS)
	pop := cfg.Effects.FloatingTextPop.Seconds()
	if seconds > float32(pop) {
		seconds = float32(pop)
	}
	scale := float64(ease.OutBack(seconds, 0, float32(cfg.Effects.FloatingTextScale), float32(pop)))
	impact, impactColor := "TARGET LOCKED", cfg.Modal.BorderColor
	if burning {
		impact, impactColor = "EXORCISING...", cfg.Modal.BurningColor
	}
	drawImpactText(screen, impact, bold, width/2, layout.Panel.Y-24, scale, impactColor, 1)

	fillRect(screen, layout.Panel, cfg.Menu.PanelColor)
	strokeRect(screen, layout.Panel, float32(cfg.HUD.ModalBorder), cfg.Modal.BorderColor)

	heading, headingColor := "DEMON DETECTED", cfg.Modal.BorderColor
	if burning {
		heading, headingColor = "CHANNELING SOL", cfg.Modal.BurningColor
	}
	drawTextCentered(screen, heading, bold, width/2, layout.Panel.Y+40, headingColor)

	info := layout.Info
	fillRect(screen, info, cfg.Modal.InfoBoxColor)
	strokeRect(screen, info, 1, cfg.DarkGray)
	drawTextCentered(screen, ex.Asset.Name, title, width/2, info.Y+38, cfg.Modal.TokenColor)
	drawTextCentered(screen, records.FormatAmount(ex.Asset.Amount)+" TOKENS", small, width/2, info.Y+62, cfg.LightGray)
	drawTextCentered(screen, cfg.Modal.RentEstimate, small, width/2, info.Y+84, cfg.Modal.RentColor)

	if burning {
		drawTextCentered(screen, "COMMUNICATING WITH BLOCKCHAIN...", small, width/2, layout.Burn.Y+24, cfg.LightGray)
		return
	}

	drawTextCentered(screen, "PURGE THIS FILTH FROM THE MONOLITH?", small, width/2, layout.Panel.Y+195, cfg.White)

	burnBorder, spareColor := cfg.Modal.ButtonColor, cfg.LightGray
	switch ex.Selected {
	case components.ExorcismBurn:
		burnBorder = cfg.Menu.TextColorSelected
	case components.ExorcismSpare:
		spareColor = cfg.Menu.TextColorSelected
	}
	drawButton(screen, layout.Burn, "EXORCISE (BURN)", bold, cfg.Modal.ButtonColor, burnBorder, cfg.White)
	ascent := small.Metrics().Ascent.Ceil()
	drawTextCentered(screen, "SPARE DEMON", small, width/2, layout.Spare.Y+(layout.Spare.H+float64(ascent))/2, spareColor)

	if ex.Err != nil {
		drawTextCentered(screen, "BURN FAILED - TRY AGAIN", small, width/2, layout.Panel.Y+layout.Panel.H+20, cfg.Red)
	}
}

// WithGameplayChecks wraps a system to skip execution while the exorcism
// modal is open or after the mission has ended.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if ex := GetOrCreateExorcism(e); ex.Open {
			return
		}
		if m, ok := GetMission(e); ok && m.Outcome != components.MissionRunning {
			return
		}
		system(e)
	}
}

// GetOrCreateExorcism returns the singleton Exorcism component, creating if needed.
func GetOrCreateExorcism(e *ecs.ECS) *components.ExorcismData {
	if _, ok := components.Exorcism.First(e.World); !ok {
		e.World.Create(components.Exorcism)
	}

	ent, _ := components.Exorcism.First(e.World)
	return components.Exorcism.Get(ent)
}
