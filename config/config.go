package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Combat
	Health int `yaml:"health"`

	// Lives
	StartingLives      int `yaml:"startingLives"`
	RespawnDelayFrames int `yaml:"respawnDelayFrames"` // frames the player is absent between death and respawn
	DeathFrames        int `yaml:"deathFrames"`        // death sequence length before the entity is removed

	// Spawn position
	SpawnX float64 `yaml:"spawnX"`
	SpawnY float64 `yaml:"spawnY"`

	// Physics
	Friction float64 `yaml:"friction"`
	MaxSpeed float64 `yaml:"maxSpeed"`

	// Dimensions
	CollisionWidth  int `yaml:"collisionWidth"`
	CollisionHeight int `yaml:"collisionHeight"`
}

// CombatConfig contains damage intake configuration values
type CombatConfig struct {
	// Maximum number of damage events accepted in a single frame.
	// Events pushed past this are dropped.
	DamageQueueCapacity int `yaml:"damageQueueCapacity"`

	// Damage dealt by the debug hurt key
	DebugHurtAmount int `yaml:"debugHurtAmount"`

	// Flash effects (frames)
	DamageFlashFrames int `yaml:"damageFlashFrames"` // red flash when taking damage
}

// HazardConfig contains hazard zone configuration
type HazardConfig struct {
	Damage         int     `yaml:"damage"`
	KnockbackForce float64 `yaml:"knockbackForce"`
	CooldownFrames int     `yaml:"cooldownFrames"` // frames between two hits from the same hazard
}

// OverlayConfig contains the debug mode indicator configuration
type OverlayConfig struct {
	Text      string  `yaml:"text"`
	Right     float64 `yaml:"right"` // offset from the right screen edge
	Top       float64 `yaml:"top"`
	Padding   float64 `yaml:"padding"`
	FontSize  float64 `yaml:"fontSize"`
	PulseTime float32 `yaml:"pulseTime"` // seconds for one half of the background pulse

	BackgroundColor color.RGBA `yaml:"-"`
	TextColor       color.RGBA `yaml:"-"`
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	BarWidth    float64 `yaml:"barWidth"`
	BarHeight   float64 `yaml:"barHeight"`
	Margin      float64 `yaml:"margin"`
	LivesMargin float64 `yaml:"livesMargin"`
	LifeSize    float64 `yaml:"lifeSize"`

	BarBgColor color.RGBA `yaml:"-"`
	BarFgColor color.RGBA `yaml:"-"`
	LifeColor  color.RGBA `yaml:"-"`
}

// PauseConfig contains pause overlay configuration
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// GameOverConfig contains game over screen configuration
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	TitleY          float64
	HintY           float64
	Title           string
	Hint            string
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	// ImmortalKey is the ebiten key name (e.g. "F1") bound to the
	// immortality toggle.
	ImmortalKey string `yaml:"immortalKey"`
	// HurtKey is the ebiten key name bound to the debug hurt action.
	HurtKey string `yaml:"hurtKey"`
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Combat CombatConfig
var Hazard HazardConfig
var Overlay OverlayConfig
var HUD HUDConfig
var Pause PauseConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	DebugRed     = color.RGBA{R: 204, G: 0, B: 0, A: 128}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	HealthGreen  = color.RGBA{R: 40, G: 220, B: 40, A: 255}
	HazardOrange = color.RGBA{R: 255, G: 140, B: 0, A: 160}
	PlayerBlue   = color.RGBA{R: 0, G: 100, B: 255, A: 255}
)

func init() {
	Defaults()
}

// Defaults resets every configuration instance to its built-in values.
func Defaults() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Player = PlayerConfig{
		Health: 100,

		StartingLives:      3,
		RespawnDelayFrames: 45,
		DeathFrames:        60,

		SpawnX: 80,
		SpawnY: 280,

		Friction: 0.5,
		MaxSpeed: 6.0,

		CollisionWidth:  16,
		CollisionHeight: 40,
	}

	Combat = CombatConfig{
		DamageQueueCapacity: 64,
		DebugHurtAmount:     10,
		DamageFlashFrames:   8,
	}

	Hazard = HazardConfig{
		Damage:         15,
		KnockbackForce: 6.0,
		CooldownFrames: 30,
	}

	// Overlay Config
	Overlay = OverlayConfig{
		Text:            "DEBUG MODE: IMMORTAL",
		Right:           10,
		Top:             10,
		Padding:         6,
		FontSize:        16,
		PulseTime:       0.75,
		BackgroundColor: DebugRed,
		TextColor:       White,
	}

	HUD = HUDConfig{
		BarWidth:    130,
		BarHeight:   13,
		Margin:      10,
		LivesMargin: 5,
		LifeSize:    8,
		BarBgColor:  DarkGray,
		BarFgColor:  HealthGreen,
		LifeColor:   LightRed,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
		Hint:         "Esc: Resume",
	}

	GameOver = GameOverConfig{
		BackgroundColor: color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:      LightRed,
		TextColor:       White,
		TitleY:          140,
		HintY:           200,
		Title:           "GAME OVER",
		Hint:            "Enter: Retry",
	}

	Debug = DebugConfig{
		ImmortalKey: "F1",
		HurtKey:     "H",
	}

	Input = defaultInput()
}
