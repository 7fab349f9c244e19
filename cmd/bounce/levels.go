package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce/internal/games/breakout"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Preview the built-in levels",
	Long: `Prints every built-in level. █ marks a destructible brick,
▒ a reflective one.`,
	Run: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	for i, level := range breakout.BuiltinLevels() {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s (%s, %dx%d)\n\n", level.Name, level.ID, level.Width(), level.Height())
		fmt.Print(level.Preview())
	}
}
