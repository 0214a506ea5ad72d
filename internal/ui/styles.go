// Package ui provides terminal styling for sidekick CLI output.
// Uses the Ayu color theme with adaptive light/dark mode support.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Ayu theme color palette
var (
	ColorPass = lipgloss.AdaptiveColor{
		Light: "#86b300", // ayu light bright green
		Dark:  "#c2d94c", // ayu dark bright green
	}
	ColorWarn = lipgloss.AdaptiveColor{
		Light: "#f2ae49", // ayu light bright yellow
		Dark:  "#ffb454", // ayu dark bright yellow
	}
	ColorFail = lipgloss.AdaptiveColor{
		Light: "#f07171", // ayu light bright red
		Dark:  "#f07178", // ayu dark bright red
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#828c99", // ayu light muted
		Dark:  "#6c7680", // ayu dark muted
	}
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#399ee6", // ayu light bright blue
		Dark:  "#59c2ff", // ayu dark bright blue
	}
)

var (
	KeyStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	StatusStyle = lipgloss.NewStyle().Foreground(ColorWarn)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorPass)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	FailStyle   = lipgloss.NewStyle().Foreground(ColorFail)
)

// Tree branch glyphs for hierarchy display. Linked issues get a wavy
// connector to distinguish them from parent/child edges.
const (
	TreeChild  = "├─ "
	TreeLinked = "├~> "
	TreeIndent = "  "
)

// IsTTY reports whether stdout is a terminal. Styling is disabled when
// output is piped.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// RenderKey renders an issue key with accent styling when stdout is a
// terminal, plain otherwise.
func RenderKey(s string) string {
	if !IsTTY() {
		return s
	}
	return KeyStyle.Render(s)
}

// RenderStatus renders a status name.
func RenderStatus(s string) string {
	if !IsTTY() {
		return s
	}
	return StatusStyle.Render(s)
}

// RenderLabels renders a label list.
func RenderLabels(s string) string {
	if !IsTTY() {
		return s
	}
	return LabelStyle.Render(s)
}

// RenderMuted renders secondary text in muted gray.
func RenderMuted(s string) string {
	if !IsTTY() {
		return s
	}
	return MutedStyle.Render(s)
}

// RenderFail renders error text in red.
func RenderFail(s string) string {
	if !IsTTY() {
		return s
	}
	return FailStyle.Render(s)
}
