package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/erika-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows a list of all modes registered in the arcade.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "ID", "Title", "Race")
	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "--", "-----", "----")

	for _, g := range games {
		race := "no"
		if g.Race {
			race = "yes"
		}
		fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, g.ID, g.Title, race)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a mode, or add --race for two players.")
}
