// shuriken is the Shuriken Workshop: a terminal arcade game where a row
// of ninjas hurls shurikens skyward and a slotted paddle keeps them from
// falling back onto their owners.
//
// Usage:
//
//	shuriken play            - Play in the local terminal
//	shuriken serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Path to custom game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/ImTheSquid/shuriken-workshop/internal/games/workshop"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shuriken",
	Short: "Shuriken Workshop - block the falling shurikens",
	Long: `Shuriken Workshop is a terminal arcade game. A row of ninjas hurls
shurikens straight up; gravity brings every one of them back down. Slide
your paddle between the columns and block them before they land: each
save speeds up the next throw, each miss costs a life.

Available commands:
  play     - Play in the local terminal
  serve    - Start SSH server for remote play

Examples:
  shuriken play
  shuriken play --difficulty hard
  shuriken play --seed 42
  shuriken serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
