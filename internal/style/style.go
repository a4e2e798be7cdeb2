// Package style centralizes the lipgloss styles buddy uses for
// terminal output.
package style

import "github.com/charmbracelet/lipgloss"

var (
	// Info marks informational diagnostic lines forwarded from Bazel.
	Info = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// Created highlights the verb in scaffolding success lines.
	Created = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// Error highlights user-facing error prefixes.
	Error = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
