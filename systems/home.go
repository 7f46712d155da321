package systems

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/fonts"
	"github.com/automoto/dustdemons/wallet"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Home layout
const (
	homeButtonWidth = 260.0
	numHomeOptions  = int(components.HomeExit) + 1
)

// NewUpdateHome creates the home screen system. createCharacterSelect is
// called once the wallet is connected and its assets are scanned.
func NewUpdateHome(sceneChanger SceneChanger, createCharacterSelect func(wallet.Session, []wallet.Asset) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		home := GetOrCreateHome(e)
		home.Frames++

		pollConnect(e, home)
		if assets, ok := pollScan(e, home); ok {
			FadeOutMusic(e)
			sceneChanger.ChangeScene(createCharacterSelect(*home.Session, assets))
			return
		}

		// Skip home input if settings is open or a job is running
		if IsSettingsOpen(e) || home.Scanning() || home.Connect != nil {
			return
		}

		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			home.Selected = components.HomeOption((int(home.Selected) - 1 + numHomeOptions) % numHomeOptions)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			home.Selected = components.HomeOption((int(home.Selected) + 1) % numHomeOptions)
		}

		selected := GetAction(input, cfg.ActionMenuSelect).JustPressed
		if x, y, ok := ConsumeTap(input); ok {
			for i, r := range homeButtons(float64(cfg.C.Width)) {
				if r.contains(x, y) {
					home.Selected = components.HomeOption(i)
					selected = true
				}
			}
		}

		if selected {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch home.Selected {
			case components.HomeConnect:
				startHomeAction(home)
			case components.HomeSettings:
				OpenSettings(e)
			case components.HomeExit:
				os.Exit(0)
			}
		}

		// Allow back/escape to exit
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// startHomeAction connects the wallet, or starts the asset scan once connected
func startHomeAction(home *components.HomeData) {
	if home.Session == nil {
		home.Status = "AWAITING WALLET..."
		home.Connect = ConnectWallet()
		return
	}
	home.Status = ""
	home.Scan = ScanAssets(*home.Session)
}

func pollConnect(e *ecs.ECS, home *components.HomeData) {
	if home.Connect == nil || home.Connect.Outcome() == wallet.OutcomePending {
		return
	}
	session, err := home.Connect.Result()
	home.Connect = nil
	if err != nil {
		log.Printf("Warning: Wallet connection failed: %v", err)
		home.Status = "CONNECTION FAILED"
		return
	}
	home.Session = &session
	home.Status = ""
	PlaySFX(e, cfg.SoundMenuSelect)
}

// pollScan returns the assets once the scan has succeeded
func pollScan(e *ecs.ECS, home *components.HomeData) ([]wallet.Asset, bool) {
	if home.Scan == nil || home.Scan.Outcome() == wallet.OutcomePending {
		return nil, false
	}
	assets, err := home.Scan.Result()
	home.Scan = nil
	if err != nil {
		log.Printf("Warning: Asset scan failed: %v", err)
		home.Status = "SCAN FAILED - TRY AGAIN"
		return nil, false
	}
	return assets, true
}

// homeButtons returns the button rects in HomeOption order
func homeButtons(width float64) []rect {
	buttons := make([]rect, numHomeOptions)
	for i := range buttons {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)
		buttons[i] = centeredRect(width, y, homeButtonWidth, cfg.Menu.MenuItemHeight)
	}
	return buttons
}

// DrawHome renders the home screen
func DrawHome(e *ecs.ECS, screen *ebiten.Image) {
	home := GetOrCreateHome(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	fillRect(screen, rect{W: width, H: height}, cfg.Menu.BackgroundColor)

	small := fonts.Small.Get()
	bold := fonts.MonoBold.Get()

	if home.Scanning() {
		drawSpinner(screen, width/2, height/2-30, home.Frames)
		drawTextCentered(screen, "SCANNING MONOLITH...", bold, width/2, height/2+20, cfg.Menu.TextColorNormal)
		return
	}

	drawTextCentered(screen, "DUST DEMONS", fonts.Title.Get(), width/2, cfg.Menu.TitleY+60, cfg.Menu.TextColorNormal)

	// Floating ghost, 4 second bob
	bob := (math.Sin(float64(home.Frames)/float64(cfg.C.TPS)*math.Pi/2) - 1) * 7.5
	drawGhost(screen, width/2, cfg.Menu.TitleY+120+bob, 40, cfg.Orchid)

	if home.Session != nil {
		drawTextCentered(screen, "[ UPLINK ACTIVE ]", bold, width/2, cfg.Menu.MenuStartY-40, cfg.Green)
		drawTextCentered(screen, home.Session.ShortAddress(), small, width/2, cfg.Menu.MenuStartY-18, cfg.LightGray)
	}

	for i, r := range homeButtons(width) {
		opt := components.HomeOption(i)
		label := homeOptionLabel(opt, home)

		border := cfg.DeepPurple
		textColor := cfg.Menu.TextColorNormal
		if opt == home.Selected {
			border = cfg.Menu.TextColorSelected
			textColor = cfg.Menu.TextColorSelected
		}
		// The connect button pulses until a wallet is attached
		if opt == components.HomeConnect && home.Session == nil {
			pulse := 0.05 * (1 - math.Cos(float64(home.Frames)/float64(cfg.C.TPS)*math.Pi))
			r = rect{X: r.X - r.W*pulse/2, Y: r.Y - r.H*pulse/2, W: r.W * (1 + pulse), H: r.H * (1 + pulse)}
		}
		drawButton(screen, r, label, bold, cfg.Menu.PanelColor, border, textColor)
	}

	statusY := cfg.Menu.MenuStartY + float64(numHomeOptions)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap) + 10
	if home.Status != "" {
		drawTextCentered(screen, home.Status, small, width/2, statusY, cfg.Yellow)
	}
	if home.Best > 0 {
		best := fmt.Sprintf("BEST PURGE: %0*d", cfg.HUD.ScoreDigits, home.Best)
		drawTextCentered(screen, best, small, width/2, statusY+22, cfg.Violet)
	}

	drawTextCentered(screen, cfg.Menu.Footer, small, width/2, height-40, cfg.Menu.TextColorMuted)
}

func homeOptionLabel(opt components.HomeOption, home *components.HomeData) string {
	switch opt {
	case components.HomeConnect:
		if home.Session == nil {
			return "CONNECT WALLET"
		}
		return "START MISSION"
	case components.HomeSettings:
		return "SETTINGS"
	case components.HomeExit:
		return "EXIT"
	default:
		return ""
	}
}

// drawSpinner draws eight dots with a rotating highlight
func drawSpinner(screen *ebiten.Image, cx, cy float64, frame int) {
	const dots = 8
	lead := (frame / 6) % dots
	for i := 0; i < dots; i++ {
		angle := 2 * math.Pi * float64(i) / dots
		x := cx + math.Cos(angle)*18
		y := cy + math.Sin(angle)*18
		clr := cfg.DarkGray
		if i == lead {
			clr = cfg.DeepPurple
		}
		fillCircle(screen, x, y, 4, clr)
	}
}

// GetOrCreateHome returns the singleton Home component, creating if needed
func GetOrCreateHome(e *ecs.ECS) *components.HomeData {
	if _, ok := components.Home.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Home))
		components.Home.SetValue(ent, components.HomeData{
			Selected: components.HomeConnect,
			Best:     Profile().BestScore,
		})
	}

	ent, _ := components.Home.First(e.World)
	return components.Home.Get(ent)
}

// SetHomeSession carries an existing session back to the home screen so the
// player doesn't reconnect after every mission.
func SetHomeSession(e *ecs.ECS, session *wallet.Session) {
	home := GetOrCreateHome(e)
	home.Session = session
}
