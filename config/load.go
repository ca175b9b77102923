package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// file mirrors the sections of an override file. Each section points at
// the live configuration instance so keys absent from the file keep
// their defaults.
type file struct {
	Window  *Config        `yaml:"window"`
	Player  *PlayerConfig  `yaml:"player"`
	Combat  *CombatConfig  `yaml:"combat"`
	Hazard  *HazardConfig  `yaml:"hazard"`
	Overlay *OverlayConfig `yaml:"overlay"`
	HUD     *HUDConfig     `yaml:"hud"`
	Debug   *DebugConfig   `yaml:"debug"`
}

// Load merges the YAML file at path over the current configuration.
// An empty path is a no-op.
func Load(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Parse(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Parse merges YAML data over the current configuration and validates
// the result.
func Parse(data []byte) error {
	doc := file{
		Window:  C,
		Player:  &Player,
		Combat:  &Combat,
		Hazard:  &Hazard,
		Overlay: &Overlay,
		HUD:     &HUD,
		Debug:   &Debug,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if err := validate(); err != nil {
		return err
	}
	return bindDebugKeys()
}

func validate() error {
	var errs []error
	if C.Width <= 0 || C.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", C.Width, C.Height))
	}
	if C.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window.tps must be positive, got %d", C.TPS))
	}
	if Player.Health <= 0 {
		errs = append(errs, fmt.Errorf("player.health must be positive, got %d", Player.Health))
	}
	if Combat.DamageQueueCapacity <= 0 {
		errs = append(errs, fmt.Errorf("combat.damageQueueCapacity must be positive, got %d", Combat.DamageQueueCapacity))
	}
	if Overlay.PulseTime <= 0 {
		errs = append(errs, fmt.Errorf("overlay.pulseTime must be positive, got %v", Overlay.PulseTime))
	}
	return errors.Join(errs...)
}
