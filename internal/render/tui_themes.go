package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/gjson"
)

// TUITheme defines the color scheme for the widget interface
type TUITheme struct {
	Name        string
	Description string

	// Base colors
	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color

	// Text colors
	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color
}

// Built-in TUI themes
var (
	// TokyoNightTheme is the default dark theme based on Tokyo Night color scheme
	TokyoNightTheme = TUITheme{
		Name:        "tokyonight",
		Description: "Tokyo Night - Dark theme with blue accents",

		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#24283b"),
		Border:     lipgloss.Color("#414868"),

		Primary:   lipgloss.Color("#7aa2f7"),
		Secondary: lipgloss.Color("#9ece6a"),
		Accent:    lipgloss.Color("#bb9af7"),
		Warning:   lipgloss.Color("#e0af68"),
		Error:     lipgloss.Color("#f7768e"),

		Text:     lipgloss.Color("#c0caf5"),
		TextDim:  lipgloss.Color("#565f89"),
		TextMute: lipgloss.Color("#3b4261"),
	}

	// CatppuccinMochaTheme is based on Catppuccin Mocha palette
	CatppuccinMochaTheme = TUITheme{
		Name:        "catppuccin",
		Description: "Catppuccin Mocha - Warm dark theme with pastel colors",

		Background: lipgloss.Color("#1e1e2e"),
		Surface:    lipgloss.Color("#313244"),
		Border:     lipgloss.Color("#45475a"),

		Primary:   lipgloss.Color("#89b4fa"), // Blue
		Secondary: lipgloss.Color("#a6e3a1"), // Green
		Accent:    lipgloss.Color("#cba6f7"), // Mauve
		Warning:   lipgloss.Color("#f9e2af"), // Yellow
		Error:     lipgloss.Color("#f38ba8"), // Red

		Text:     lipgloss.Color("#cdd6f4"),
		TextDim:  lipgloss.Color("#6c7086"),
		TextMute: lipgloss.Color("#45475a"),
	}

	// NordTheme is based on the Nord color palette
	NordTheme = TUITheme{
		Name:        "nord",
		Description: "Nord - Arctic-inspired theme with cool tones",

		Background: lipgloss.Color("#2e3440"),
		Surface:    lipgloss.Color("#3b4252"),
		Border:     lipgloss.Color("#4c566a"),

		Primary:   lipgloss.Color("#88c0d0"), // Frost
		Secondary: lipgloss.Color("#a3be8c"), // Aurora green
		Accent:    lipgloss.Color("#b48ead"), // Aurora purple
		Warning:   lipgloss.Color("#ebcb8b"), // Aurora yellow
		Error:     lipgloss.Color("#bf616a"), // Aurora red

		Text:     lipgloss.Color("#eceff4"),
		TextDim:  lipgloss.Color("#7b88a1"),
		TextMute: lipgloss.Color("#4c566a"),
	}
)

// currentTUITheme holds the currently active TUI theme
var currentTUITheme = TokyoNightTheme

// GetTUITheme returns the currently active TUI theme
func GetTUITheme() TUITheme {
	return currentTUITheme
}

// SetTUITheme sets the active TUI theme by name. A name ending in ".json"
// is treated as a path to a custom theme file.
func SetTUITheme(name string) bool {
	if strings.HasSuffix(name, ".json") {
		theme, err := LoadTUIThemeFile(name)
		if err != nil {
			return false
		}
		currentTUITheme = theme
		return true
	}

	theme, ok := GetTUIThemeByName(name)
	if !ok {
		return false
	}
	currentTUITheme = theme
	return true
}

// GetTUIThemeByName returns a built-in theme by name
func GetTUIThemeByName(name string) (TUITheme, bool) {
	for _, theme := range AvailableTUIThemes() {
		if theme.Name == name {
			return theme, true
		}
	}
	return TUITheme{}, false
}

// AvailableTUIThemes returns all built-in TUI themes
func AvailableTUIThemes() []TUITheme {
	return []TUITheme{
		TokyoNightTheme,
		CatppuccinMochaTheme,
		NordTheme,
	}
}

// TUIThemeNames returns the names of all built-in themes
func TUIThemeNames() []string {
	themes := AvailableTUIThemes()
	names := make([]string, len(themes))
	for i, theme := range themes {
		names[i] = theme.Name
	}
	return names
}

// LoadTUIThemeFile loads a custom theme from a JSON file. Colors live
// under a "colors" object keyed by the lower-cased field name; any key the
// file omits keeps the default theme's value, so partial themes are fine.
func LoadTUIThemeFile(path string) (TUITheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TUITheme{}, fmt.Errorf("failed to read theme file: %w", err)
	}

	if !gjson.ValidBytes(data) {
		return TUITheme{}, fmt.Errorf("invalid theme file %s: not valid JSON", path)
	}

	theme := TokyoNightTheme
	theme.Name = strings.TrimSuffix(filepath.Base(path), ".json")
	theme.Description = "Custom theme loaded from " + path

	if v := gjson.GetBytes(data, "name"); v.Exists() {
		theme.Name = v.String()
	}
	if v := gjson.GetBytes(data, "description"); v.Exists() {
		theme.Description = v.String()
	}

	assign := func(dst *lipgloss.Color, key string) {
		if v := gjson.GetBytes(data, "colors."+key); v.Exists() {
			*dst = lipgloss.Color(v.String())
		}
	}

	assign(&theme.Background, "background")
	assign(&theme.Surface, "surface")
	assign(&theme.Border, "border")
	assign(&theme.Primary, "primary")
	assign(&theme.Secondary, "secondary")
	assign(&theme.Accent, "accent")
	assign(&theme.Warning, "warning")
	assign(&theme.Error, "error")
	assign(&theme.Text, "text")
	assign(&theme.TextDim, "text_dim")
	assign(&theme.TextMute, "text_mute")

	return theme, nil
}
