package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ImTheSquid/shuriken-workshop/internal/core"
	"github.com/ImTheSquid/shuriken-workshop/internal/games/workshop"
	"github.com/ImTheSquid/shuriken-workshop/internal/platform/tui"
	"github.com/ImTheSquid/shuriken-workshop/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a session in the current terminal.

Controls:
  A/Left     - Move paddle left
  D/Right    - Move paddle right
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty presets:
  easy   - More lives, slower throws
  normal - The standard workshop
  hard   - Fewer lives, faster throws

Examples:
  shuriken play
  shuriken play --difficulty easy
  shuriken play --seed 42
  shuriken play --config ./my-workshop.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	workshop.SetConfigPath(flagConfig)
	workshop.SetDifficultyPreset(flagDifficulty)

	// Create game instance
	game, err := registry.Create("workshop")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Run the game
	summary, runErr := tui.Run(game, cfg)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if summary.Ended {
		fmt.Printf("GAME OVER! You blocked %d shuriken(s)\n", summary.Blocked)
	}
}
