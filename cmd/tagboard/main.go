// cmd/tagboard/main.go
//
// This is the entry point for the tagboard widget.
// When you run `tagboard` from any directory, this is what executes.
//
// Flow:
// 1. Initialize the .tagboard folder (config.yaml + logs)
// 2. Launch the TUI

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/tagboard/internal/config"
	"github.com/kingrea/tagboard/internal/tui"
)

func main() {
	// The current working directory is the "project" we're tagging in
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitTagboardDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .tagboard directory: %v\n", err)
		os.Exit(1)
	}

	app, err := tui.NewApp(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting tagboard: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(), // Use alternate screen buffer (like vim does)
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
