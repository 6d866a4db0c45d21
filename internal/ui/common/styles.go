// Package common provides shared styles and utilities for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"
)

// Icon constants
const (
	CourtIcon = "🏓"
	QueueIcon = "📋"
)

// Lipgloss Styles - shared across all tabs
var (
	DocStyle    = lipgloss.NewStyle().Margin(1, 2)
	TitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	PromptStyle = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	WarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	InfoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	HintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	ActiveTab   = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Underline(true)
	InactiveTab = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
