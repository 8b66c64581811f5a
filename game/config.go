package game

import (
	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/systems"
)

// OptionsFromConfig maps the loaded configuration onto backdrop options.
func OptionsFromConfig(cfg *config.Config, seed int64) Options {
	palette := make(systems.Palette, len(cfg.Field.Palette))
	for i, s := range cfg.Field.Palette {
		palette[i] = systems.Swatch{
			Name:   s.Name,
			Color:  cfg.Derived.Palette[i],
			Weight: s.Weight,
		}
	}

	return Options{
		Seed: seed,
		Field: systems.FieldParams{
			Count:       cfg.Field.Count,
			Velocity:    systems.Range(cfg.Field.Velocity),
			Radius:      systems.Range(cfg.Field.Radius),
			RadiusFloor: cfg.Field.RadiusFloor,
			Opacity:     systems.Range(cfg.Field.Opacity),
			Palette:     palette,
		},
		Links: systems.LinkParams{
			Threshold: cfg.Links.Threshold,
			BaseAlpha: cfg.Links.BaseAlpha,
		},
		UseGrid:   cfg.Links.UseGrid,
		LineWidth: cfg.Links.LineWidth,
		LinkColor: cfg.Derived.LinkColor,
	}
}
