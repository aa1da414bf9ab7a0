package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long: `Shows the level-1 settings of every difficulty for the effective
configuration (see --config).`,
	Args: cobra.NoArgs,
	Run:  runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	fmt.Println("Difficulty presets:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-6s  %5s  %6s  %6s  %6s  %7s\n", "Name", "Ships", "Ship", "Shot", "Enemy", "Speedup")
	fmt.Printf("  %-6s  %5s  %6s  %6s  %6s  %7s\n", "----", "-----", "----", "----", "-----", "-------")

	for _, d := range config.Difficulties() {
		s := cfg.SettingsFor(d, 1)
		fmt.Printf("  %-6s  %5d  %6.0f  %6.0f  %6.0f  %7.2f\n",
			d, s.ShipLimit, s.ShipSpeed, s.ProjectileSpeed, s.EnemySpeed, s.SpeedupRatio)
	}

	fmt.Println()
	fmt.Println("Speeds are world units per second; a 1200x800 world is scaled to the terminal.")
	fmt.Println("Run 'invaders play --difficulty <name>' to start directly.")
}
