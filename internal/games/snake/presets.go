package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// DefaultPreset is the preset used when none is named.
const DefaultPreset = "classic"

func init() {
	registry.Register("classic", func() registry.Preset {
		return registry.Preset{
			Title:       "Classic",
			Description: "20x20 board, 30 points to win",
			Config:      config.DefaultSnakeConfig(),
		}
	})

	registry.Register("small", func() registry.Preset {
		cfg := config.DefaultSnakeConfig()
		cfg.Board.Size = 10
		cfg.Scoring.WinningScore = 15
		return registry.Preset{
			Title:       "Small",
			Description: "10x10 board, 15 points to win",
			Config:      cfg,
		}
	})

	registry.Register("large", func() registry.Preset {
		cfg := config.DefaultSnakeConfig()
		cfg.Board.Size = 30
		cfg.Timing.TickIntervalMs = 120
		cfg.Scoring.WinningScore = 60
		return registry.Preset{
			Title:       "Large",
			Description: "30x30 board, faster ticks, 60 points to win",
			Config:      cfg,
		}
	})
}

// PresetRules builds the rules of a registered preset.
func PresetRules(id string) (Rules, registry.Preset, error) {
	p, err := registry.Create(id)
	if err != nil {
		return Rules{}, registry.Preset{}, err
	}
	r, err := NewRules(p.Config)
	if err != nil {
		return Rules{}, registry.Preset{}, err
	}
	return r, p, nil
}
