// doodle is a terminal platformer: jump from platform to platform and watch
// the market cap climb.
//
// Usage:
//
//	doodle            - Play the game
//	doodle scores     - Show run history
//	doodle serve      - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Frame cap (default: from config)
//	--seed <value>      - Level seed for reproducible runs
//	--config <path>     - Custom game config YAML
//	--db <path>         - Run history database (default: in-memory)
//	--log <path>        - Write logs to a file
//	--mute              - Start with sound off
//	--no-audio-device   - Never open the audio device
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-doodle/internal/storage"
)

var (
	// Global flags
	flagFPS           int
	flagSeed          int64
	flagConfig        string
	flagDBPath        string
	flagLogPath       string
	flagMute          bool
	flagNoAudioDevice bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "doodle",
	Short: "Doodle - a market cap platformer in your terminal",
	Long: `Doodle is a terminal platformer. Bounce from platform to platform,
climb as high as you can and push the market cap past the last milestone.

Controls:
  Left/A, Right/D  - Steer
  Click ♫ or M     - Toggle sound
  Enter            - Restart (after game over or win)
  Esc/Ctrl+C       - Quit
  Ctrl+S           - Save a text screenshot

Examples:
  doodle
  doodle --seed 42 --fps 30
  doodle --db ~/.doodle/runs.db
  doodle scores --db ~/.doodle/runs.db
  doodle serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame cap (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Level seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.MemoryPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	rootCmd.PersistentFlags().BoolVar(&flagNoAudioDevice, "no-audio-device", false, "Never open the audio device")

	// Add subcommands
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
