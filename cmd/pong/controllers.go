package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-pong/internal/registry"
)

var controllersCmd = &cobra.Command{
	Use:   "controllers",
	Short: "List all available paddle controllers",
	Long:  `Shows every controller that can be assigned with --left and --right.`,
	Run:   runControllers,
}

func runControllers(cmd *cobra.Command, args []string) {
	controllers := registry.List()

	if len(controllers) == 0 {
		fmt.Println("No controllers available.")
		return
	}

	fmt.Println("Available controllers:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, c := range controllers {
		if len(c.Name) > maxNameLen {
			maxNameLen = len(c.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, c := range controllers {
		fmt.Printf("  %-*s  %s\n", maxNameLen, c.Name, c.Description)
	}

	fmt.Println()
	fmt.Println("Run 'pong play --left <name> --right <name>' to pick players.")
}
