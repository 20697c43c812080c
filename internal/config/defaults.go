package config

import (
	_ "embed"
)

//go:embed defaults/clony.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors
// defaults/clony.yaml and is used if the embedded file cannot be parsed.
func DefaultConfig() GameConfig {
	return GameConfig{
		Physics: Physics{
			Gravity:      0.072,
			JumpImpulse:  -0.8,
			MaxFallSpeed: 3.0,
		},
		Obstacles: Obstacles{
			BaseStep:    1.0,
			PipeWidth:   3,
			Spacing:     25,
			GapHeight:   8,
			Margin:      2,
			MaxGapShift: 5,
		},
		Avatar: Avatar{
			ColumnDivisor: 4,
		},
		Levels: Levels{
			PointsPerLevel: 30,
			BannerTicks:    60,
			Speed:          []float64{1.0, 1.5, 2.0, 2.5, 3.0},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
