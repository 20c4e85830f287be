package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// processingStyle for the muted "Processing:" prefix
	processingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// letterStyle for the section label being processed
	letterStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// createdStyle for the final confirmation line
	createdStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

// printProgress writes one "Processing:  <label>" line per section.
// The double space after the colon matches the historical output.
func printProgress(w io.Writer, label string) {
	fmt.Fprintf(w, "%s  %s\n", processingStyle.Render("Processing:"), letterStyle.Render(label))
}

// printCreated confirms the written output path.
func printCreated(w io.Writer, path string) {
	fmt.Fprintf(w, "%s  %s\n", createdStyle.Render("Document created:"), path)
}
