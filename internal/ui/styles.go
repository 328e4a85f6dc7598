/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package ui holds terminal output styling shared by the commands.
package ui

import (
	"os"

	"charm.land/lipgloss/v2"
)

// Styles contains the styles for rendering command output
type Styles struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Subtle  lipgloss.Style
	Bold    lipgloss.Style

	// Whether colours are enabled
	UseColour bool
}

// NewStyles creates styles, honouring NO_COLOR
func NewStyles() *Styles {
	useColour := os.Getenv("NO_COLOR") == ""
	return newStyles(useColour)
}

func newStyles(useColour bool) *Styles {
	s := &Styles{UseColour: useColour}
	if !useColour {
		plain := lipgloss.NewStyle()
		s.Success, s.Warning, s.Error, s.Subtle, s.Bold = plain, plain, plain, plain, plain
		return s
	}

	s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	s.Subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	s.Bold = lipgloss.NewStyle().Bold(true)
	return s
}
