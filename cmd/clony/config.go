package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clony-bird/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration the game would run with, after the config
search order and --difficulty have been applied. The output is valid YAML
and can be used as a starting point for --config.

Search order:
  --config <path>
  ~/.clony/config.yaml
  ./configs/clony.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, src, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", src)
	_, err = out.Write(data)
	return err
}

// loadGameConfig loads the config and applies the difficulty preset.
func loadGameConfig(path, difficulty string) (config.GameConfig, config.Source, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.GameConfig{}, "", err
	}

	cfg, src, err := config.Load(path)
	if err != nil {
		return cfg, src, err
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, src, fmt.Errorf("config (%s, %s): %w", src, preset, err)
	}
	return cfg, src, nil
}
