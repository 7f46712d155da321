package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/shared/records"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume     float64 `json:"musicVolume"`
	SFXVolume       float64 `json:"sfxVolume"`
	Muted           bool    `json:"muted"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
	CRT             bool    `json:"crt"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// profile is the cached best score and burn history
var profile *records.Profile

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "dustdemons",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the SettingsMenuData component
func SaveCurrentSettings(s *components.SettingsMenuData) {
	saved := &SavedSettings{
		MusicVolume:     s.MusicVolume,
		SFXVolume:       s.SFXVolume,
		Muted:           s.Muted,
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
		CRT:             s.CRT,
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference
// Used during initial game startup before scenes are created
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	globalMusicVolume = saved.MusicVolume
	globalSFXVolume = saved.SFXVolume
	savedMuted = saved.Muted

	if saved.Muted {
		globalMusicVolume = 0
		globalSFXVolume = 0
	}
	savedMusicVolume = saved.MusicVolume
	savedSFXVolume = saved.SFXVolume

	cfg.CRT.Enabled = saved.CRT

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
		savedResolutionIndex = saved.ResolutionIndex
	}
}

// Values restored at startup that the settings menu starts from
var (
	savedMuted           bool
	savedMusicVolume     = cfg.Audio.DefaultMusicVol
	savedSFXVolume       = cfg.Audio.DefaultSFXVol
	savedResolutionIndex = cfg.SettingsMenu.DefaultResolutionIndex
)

// Profile returns the persisted best score and burn history. Without storage
// it is an in-memory profile for this run.
func Profile() *records.Profile {
	if profile != nil {
		return profile
	}
	profile = &records.Profile{}
	if !gdataInitialized || gdataManager == nil {
		return profile
	}

	p, err := records.Load(gdataManager)
	if err != nil {
		log.Printf("Warning: Could not load profile: %v", err)
		return profile
	}
	profile = p
	return profile
}

// RecordBurn stores a confirmed burn and reports whether it set a new best score
func RecordBurn(r records.BurnRecord) bool {
	p := Profile()
	newBest := p.Record(r, cfg.History.MaxBurnRecords)
	saveProfile(p)
	return newBest
}

// ObserveScore keeps the best score of a run that ended without a burn
func ObserveScore(score int) {
	p := Profile()
	if p.Observe(score) {
		saveProfile(p)
	}
}

func saveProfile(p *records.Profile) {
	if !gdataInitialized || gdataManager == nil {
		return
	}
	if err := records.Save(gdataManager, p); err != nil {
		log.Printf("Warning: Could not save profile: %v", err)
	}
}

// SaveShareText keeps the latest brag text where a companion share target can
// read it
func SaveShareText(text string) {
	if !gdataInitialized || gdataManager == nil {
		return
	}
	if err := gdataManager.SaveItem("share", []byte(text)); err != nil {
		log.Printf("Warning: Could not save share text: %v", err)
	}
}
