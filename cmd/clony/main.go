// clony is Clony Bird, a Flappy Bird-style game played in the terminal.
//
// Usage:
//
//	clony            - Play
//	clony config     - Print the effective configuration as YAML
//
// Flags:
//
//	--fps <rate>             - Tick rate (default: 20)
//	--seed <value>           - RNG seed for reproducible pipe gaps
//	--config <path>          - Game config YAML
//	--difficulty <preset>    - easy, normal or hard
//	--renderer <tea|tcell>   - Terminal frontend (default: tea)
//	--sound                  - Play sound effects
//	--log <path>             - Write logs to a file
//	--log-level <level>      - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string

	// Play flags
	flagFPS      int
	flagSeed     int64
	flagRenderer string
	flagSound    bool
	flagVolume   float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clony",
	Short: "Clony Bird - steer through the pipes in your terminal",
	Long: `Clony Bird is a Flappy Bird-style game for the terminal.
Fly through the gaps between pipes; every 30 pipes the level goes up
and the pipes move faster. There are five levels.

Controls:
  Space/W    - Start, jump
  P          - Pause
  R          - Restart (after game over)
  Q/Esc      - Quit

Examples:
  clony
  clony --difficulty easy
  clony --renderer tcell --sound
  clony --seed 42 --log clony.log --log-level debug
  clony config > my-clony.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.Flags().IntVar(&flagFPS, "fps", 20, "Tick rate (ticks per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagRenderer, "renderer", rendererTea, "Terminal frontend: tea, tcell")
	rootCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	rootCmd.Flags().Float64Var(&flagVolume, "volume", 0.3, "Sound effect volume (0-1)")

	rootCmd.AddCommand(configCmd)
}
