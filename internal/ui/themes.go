// Package ui holds the terminal color themes shared by the CLI output.
package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for UI output.
// Each ANSI field contains the escape code for the corresponding category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Underline is the escape code for underlined text.
	Underline string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or -no-color is provided.
	NoColorTheme = Theme{Name: "none"}

	// currentTheme is the active theme used throughout the application.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TableStyles holds the lipgloss styles used to render the report table.
type TableStyles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Best   lipgloss.Style
}

// GetTableStyles returns the table styles matching the active theme.
// With colors disabled, the styles render plain text.
func GetTableStyles() TableStyles {
	themeMutex.RLock()
	noColor := currentTheme.Name == "none"
	themeMutex.RUnlock()

	if noColor {
		plain := lipgloss.NewStyle()
		return TableStyles{Title: plain, Header: plain, Cell: plain, Best: plain}
	}
	return TableStyles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Header: lipgloss.NewStyle().Bold(true).Underline(true),
		Cell:   lipgloss.NewStyle(),
		Best:   lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
	}
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/) for
// accessibility. If noColor is true or NO_COLOR is set, colors are disabled.
//
// Parameters:
//   - noColor: If true, disables all color output regardless of environment.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	// Any non-empty value disables colors (per no-color.org spec).
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}

// ColorPrimary returns the active theme's primary escape code.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSuccess returns the active theme's success escape code.
func ColorSuccess() string { return GetCurrentTheme().Success }

// ColorWarning returns the active theme's warning escape code.
func ColorWarning() string { return GetCurrentTheme().Warning }

// ColorError returns the active theme's error escape code.
func ColorError() string { return GetCurrentTheme().Error }

// ColorUnderline returns the active theme's underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the active theme's reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }
