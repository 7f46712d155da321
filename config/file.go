package config

import (
	"fmt"
	"log"
	"time"

	"github.com/BurntSushi/toml"
)

// File is the on-disk override layout. Zero values leave the built-in
// defaults untouched.
type File struct {
	Arcade struct {
		SpawnIntervalMs int     `toml:"spawn_interval_ms"`
		FallMinMs       int     `toml:"fall_min_ms"`
		FallMaxMs       int     `toml:"fall_max_ms"`
		ComboWindowMs   int     `toml:"combo_window_ms"`
		MaxMultiplier   int     `toml:"max_multiplier"`
		KillPoints      int     `toml:"kill_points"`
		VortexPoints    int     `toml:"vortex_points"`
		BossRoll        float64 `toml:"boss_roll"`
	} `toml:"arcade"`
	Wallet struct {
		RPCEndpoint      string  `toml:"rpc_endpoint"`
		Cluster          string  `toml:"cluster"`
		Address          string  `toml:"address"`
		RequestTimeoutMs int     `toml:"request_timeout_ms"`
		BurnDelayMs      int     `toml:"burn_delay_ms"`
		DustThreshold    float64 `toml:"dust_threshold"`
	} `toml:"wallet"`
	Audio struct {
		MusicVolume *float64 `toml:"music_volume"`
		SFXVolume   *float64 `toml:"sfx_volume"`
	} `toml:"audio"`
}

// LoadFile decodes a TOML override file and applies it to the globals.
func LoadFile(path string) error {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("Warning: unknown config key %q in %s", key.String(), path)
	}
	f.Apply()
	return nil
}

// Apply copies every non-zero override onto the globals.
func (f *File) Apply() {
	setMs(&Arcade.SpawnInterval, f.Arcade.SpawnIntervalMs)
	setMs(&Arcade.FallMin, f.Arcade.FallMinMs)
	setMs(&Arcade.FallMax, f.Arcade.FallMaxMs)
	setMs(&Arcade.ComboWindow, f.Arcade.ComboWindowMs)
	setInt(&Arcade.MaxMultiplier, f.Arcade.MaxMultiplier)
	setInt(&Arcade.KillPoints, f.Arcade.KillPoints)
	setInt(&Arcade.VortexPoints, f.Arcade.VortexPoints)
	if f.Arcade.BossRoll > 0 {
		Arcade.BossRoll = f.Arcade.BossRoll
	}
	if Arcade.FallMax < Arcade.FallMin {
		log.Printf("Warning: fall_max_ms below fall_min_ms, using %v for both", Arcade.FallMin)
		Arcade.FallMax = Arcade.FallMin
	}

	if f.Wallet.RPCEndpoint != "" {
		Wallet.RPCEndpoint = f.Wallet.RPCEndpoint
	}
	if f.Wallet.Cluster != "" {
		Wallet.Cluster = f.Wallet.Cluster
	}
	if f.Wallet.Address != "" {
		Debug.Address = f.Wallet.Address
	}
	setMs(&Wallet.RequestTimeout, f.Wallet.RequestTimeoutMs)
	setMs(&Wallet.BurnDelay, f.Wallet.BurnDelayMs)
	if f.Wallet.DustThreshold > 0 {
		Wallet.DustThreshold = f.Wallet.DustThreshold
	}

	if f.Audio.MusicVolume != nil {
		Audio.DefaultMusicVol = clampVolume(*f.Audio.MusicVolume)
	}
	if f.Audio.SFXVolume != nil {
		Audio.DefaultSFXVol = clampVolume(*f.Audio.SFXVolume)
	}
}

func setMs(dst *time.Duration, ms int) {
	if ms > 0 {
		*dst = time.Duration(ms) * time.Millisecond
	}
}

func setInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

func clampVolume(v float64) float64 {
	return max(0, min(1, v))
}
