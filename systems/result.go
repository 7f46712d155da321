package systems

import (
	"image/color"
	"log"
	"strconv"
	"time"

	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/fonts"
	"github.com/automoto/dustdemons/shared/records"
	"github.com/automoto/dustdemons/wallet"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const numResultOptions = int(components.ResultDone) + 1

// resultLayout holds the certificate and button rects
type resultLayout struct {
	Card, Share, Done rect
}

func layoutResult(width, height float64) resultLayout {
	const cardHeight = 380.0
	pad := cfg.HUD.ModalPadding
	top := (height - cardHeight - 2*cfg.HUD.ButtonHeight - 50) / 2
	card := rect{X: pad, Y: top, W: width - 2*pad, H: cardHeight}
	return resultLayout{
		Card:  card,
		Share: rect{X: pad, Y: card.Y + card.H + 30, W: card.W, H: cfg.HUD.ButtonHeight + 4},
		Done:  rect{X: pad, Y: card.Y + card.H + 44 + cfg.HUD.ButtonHeight, W: card.W, H: cfg.HUD.ButtonHeight + 4},
	}
}

// NewUpdateResult creates the certificate screen system. createHome builds the
// scene RETURN TO BASE goes back to.
func NewUpdateResult(sceneChanger SceneChanger, createHome func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		res, ok := GetResult(e)
		if !ok {
			return
		}
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuUp).JustPressed || GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			res.Selected = components.ResultOption((int(res.Selected) + 1) % numResultOptions)
		}

		selected := GetAction(input, cfg.ActionMenuSelect).JustPressed
		if x, y, ok := ConsumeTap(input); ok {
			layout := layoutResult(float64(cfg.C.Width), float64(cfg.C.Height))
			switch {
			case layout.Share.contains(x, y):
				res.Selected, selected = components.ResultShare, true
			case layout.Done.contains(x, y):
				res.Selected, selected = components.ResultDone, true
			}
		}
		if GetAction(input, cfg.ActionShare).JustPressed {
			res.Selected, selected = components.ResultShare, true
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			res.Selected, selected = components.ResultDone, true
		}
		if !selected {
			return
		}

		PlaySFX(e, cfg.SoundMenuSelect)
		switch res.Selected {
		case components.ResultShare:
			shareResult(res)
		case components.ResultDone:
			sceneChanger.ChangeScene(createHome())
		}
	}
}

// shareResult hands the brag text to the share target: the save store, so a
// companion app or the player can pick it up, and the log.
func shareResult(res *components.ResultData) {
	SaveShareText(res.ShareText)
	log.Printf("[share] %s", res.ShareText)
	res.Shared = true
}

// DrawResult renders the certificate of exorcism
func DrawResult(e *ecs.ECS, screen *ebiten.Image) {
	res, ok := GetResult(e)
	if !ok {
		return
	}
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	layout := layoutResult(width, height)
	card := layout.Card
	cx := width / 2

	fillRect(screen, rect{W: width, H: height}, cfg.Menu.BackgroundColor)
	fillRect(screen, card, cfg.Menu.PanelColor)
	strokeRect(screen, card, float32(cfg.HUD.ModalBorder), cfg.Modal.CertificateGold)

	title := fonts.Title.Get()
	bold := fonts.MonoBold.Get()
	mono := fonts.Mono.Get()
	small := fonts.Small.Get()

	drawAward(screen, cx, card.Y+50, cfg.Modal.CertificateGold)
	drawTextCentered(screen, "CERTIFICATE OF EXORCISM", bold, cx, card.Y+110, cfg.Modal.CertificateGold)
	fillRect(screen, rect{X: card.X + 20, Y: card.Y + 126, W: card.W - 40, H: 2}, cfg.DarkGray)

	y := card.Y + 150
	for _, line := range wrapText(small, "THIS CERTIFIES THAT THE MONOLITH HAS BEEN PURGED OF:", card.W-40) {
		drawTextCentered(screen, line, small, cx, y, cfg.LightGray)
		y += 16
	}

	token := records.FormatAmount(res.Asset.Amount) + " $" + res.Asset.Name
	drawTextCentered(screen, token, title, cx, y+28, cfg.Modal.TokenColor)

	statsY := y + 70
	drawLabelValue(screen, card, statsY, "PURGE SCORE:", strconv.Itoa(res.Score), mono)
	best := strconv.Itoa(res.Best)
	if res.NewBest {
		best = "NEW BEST!"
	}
	drawLabelValue(screen, card, statsY+22, "BEST PURGE:", best, mono)
	if res.Hunter != "" {
		drawLabelValue(screen, card, statsY+44, "PILOT:", res.Hunter, small)
	}
	if res.Receipt.Signature != "" {
		drawTextCentered(screen, "SIG "+shortSignature(res.Receipt.Signature), small, cx, card.Y+card.H-40, cfg.Gray)
	}
	drawTextCentered(screen, "DUST DEMON HUNTERS • 2026", small, cx, card.Y+card.H-18, cfg.Gray)

	shareLabel := "FLEX ON X"
	if res.Shared {
		shareLabel = "FLEXED!"
	}
	shareBorder, doneBorder := cfg.White, cfg.White
	if res.Selected == components.ResultShare {
		shareBorder = cfg.Menu.TextColorSelected
	} else {
		doneBorder = cfg.Menu.TextColorSelected
	}
	drawButton(screen, layout.Share, shareLabel, bold, cfg.Modal.ShareColor, shareBorder, cfg.White)
	drawButton(screen, layout.Done, "RETURN TO BASE", bold, cfg.DeepPurple, doneBorder, cfg.White)
}

// drawLabelValue draws a label on the left and its value right-aligned
func drawLabelValue(screen *ebiten.Image, card rect, y float64, label, value string, face font.Face) {
	left := int(card.X + 24)
	right := int(card.X+card.W-24) - fonts.Width(face, value)
	drawShadowed(screen, label, face, left, int(y), cfg.White)
	drawShadowed(screen, value, face, right, int(y), cfg.Yellow)
}

// drawAward draws a rosette medal centered on (cx, cy)
func drawAward(screen *ebiten.Image, cx, cy float64, clr color.RGBA) {
	fillPolygon(screen, cfg.Red, cx-14, cy+8, cx-4, cy+8, cx-10, cy+34, cx-18, cy+28)
	fillPolygon(screen, cfg.Red, cx+14, cy+8, cx+4, cy+8, cx+10, cy+34, cx+18, cy+28)
	fillCircle(screen, cx, cy, 20, clr)
	strokeCircle(screen, cx, cy, 14, 2, cfg.Menu.PanelColor)
}

func shortSignature(sig string) string {
	if len(sig) <= 16 {
		return sig
	}
	return sig[:8] + "..." + sig[len(sig)-6:]
}

// burnRecord captures a confirmed burn for the profile history
func burnRecord(m *components.MissionData, asset wallet.Asset, receipt wallet.Receipt, score int) records.BurnRecord {
	return records.BurnRecord{
		Address:   m.Session.Address,
		Token:     asset.Name,
		Mint:      asset.Mint,
		Amount:    asset.Amount,
		Score:     score,
		Signature: receipt.Signature,
		Hunter:    m.Hunter.Name,
		Dimension: dimensionName(m.Dimension),
		Time:      time.Now(),
	}
}

func shareText(asset wallet.Asset, score int) string {
	return records.ShareText(asset.Amount, asset.Name, score)
}

// GetResult returns the result singleton if this world shows a certificate
func GetResult(e *ecs.ECS) (*components.ResultData, bool) {
	entry, ok := components.Result.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Result.Get(entry), true
}

// SetResult stores the certificate the result scene shows
func SetResult(e *ecs.ECS, data components.ResultData) {
	if _, ok := components.Result.First(e.World); !ok {
		e.World.Create(components.Result)
	}
	entry, _ := components.Result.First(e.World)
	components.Result.SetValue(entry, data)
}
