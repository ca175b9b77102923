package config

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionPause
	ActionMenuSelect
	ActionToggleImmortal
	ActionDebugHurt
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func defaultInput() InputConfig {
	return InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			// Debug actions are keyboard only
			ActionToggleImmortal: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			ActionDebugHurt: {
				Keys: []ebiten.Key{ebiten.KeyH},
			},
		},
	}
}

// ParseKey resolves an ebiten key name such as "F1" or "H".
// Matching is case-insensitive.
func ParseKey(name string) (ebiten.Key, error) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// bindDebugKeys rebinds the debug actions to the keys named in Debug.
func bindDebugKeys() error {
	immortal, err := ParseKey(Debug.ImmortalKey)
	if err != nil {
		return fmt.Errorf("debug.immortalKey: %w", err)
	}
	hurt, err := ParseKey(Debug.HurtKey)
	if err != nil {
		return fmt.Errorf("debug.hurtKey: %w", err)
	}

	Input.Bindings[ActionToggleImmortal] = InputBinding{Keys: []ebiten.Key{immortal}}
	Input.Bindings[ActionDebugHurt] = InputBinding{Keys: []ebiten.Key{hurt}}
	return nil
}
