// Package widget implements the embeddable AI Assistant chat widget: a
// rotating tip carousel that switches into a canned-response chat view.
package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zos-apps/assistant/internal/render"
)

// Color variables (updated from theme)
var (
	colorBorder lipgloss.Color

	colorPrimary   lipgloss.Color
	colorSecondary lipgloss.Color
	colorAccent    lipgloss.Color

	colorText     lipgloss.Color
	colorTextDim  lipgloss.Color
	colorTextMute lipgloss.Color
)

// Style variables (rebuilt when theme changes)
var (
	// Chat header panel
	headerStyle lipgloss.Style

	// Assistant display name
	titleStyle lipgloss.Style

	// Model reference / secondary identity line
	subtitleStyle lipgloss.Style

	// Hint text
	hintStyle lipgloss.Style

	// Messages area panel
	messagesAreaStyle lipgloss.Style

	// User message bubble and label
	userBubbleStyle lipgloss.Style
	userLabelStyle  lipgloss.Style

	// Assistant message bubble and label
	assistantBubbleStyle lipgloss.Style
	assistantLabelStyle  lipgloss.Style

	// Message timestamp
	timestampStyle lipgloss.Style

	// Tip bubble, normal and mid-crossfade
	tipBubbleStyle     lipgloss.Style
	tipBubbleFadeStyle lipgloss.Style

	// Avatar badges
	badgeSmallStyle lipgloss.Style
	badgeLargeStyle lipgloss.Style

	// Input area panel and label
	inputPanelStyle lipgloss.Style
	inputLabelStyle lipgloss.Style

	// Typing indicator
	typingStyle lipgloss.Style

	// Status bar
	statusBarStyle         lipgloss.Style
	statusKeyStyle         lipgloss.Style
	statusKeyDisabledStyle lipgloss.Style
	statusDescStyle        lipgloss.Style
)

// init loads the default theme on package initialization
func init() {
	UpdateTheme()
}

// UpdateTheme refreshes all styles based on the current TUI theme
func UpdateTheme() {
	theme := render.GetTUITheme()

	colorBorder = theme.Border
	colorPrimary = theme.Primary
	colorSecondary = theme.Secondary
	colorAccent = theme.Accent
	colorText = theme.Text
	colorTextDim = theme.TextDim
	colorTextMute = theme.TextMute

	rebuildStyles()
}

// rebuildStyles creates all lipgloss styles with current color values
func rebuildStyles() {
	headerStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 2).
		MarginBottom(1)

	titleStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	hintStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Italic(true)

	messagesAreaStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1)

	userBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorSecondary).
		Padding(0, 1).
		MarginLeft(4)

	userLabelStyle = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Bold(true).
		MarginLeft(4)

	assistantBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Foreground(colorText).
		Padding(0, 1).
		MarginRight(4)

	assistantLabelStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	timestampStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	tipBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Foreground(colorText).
		Padding(0, 2).
		MarginTop(1)

	tipBubbleFadeStyle = tipBubbleStyle.
		BorderForeground(colorTextMute).
		Foreground(colorTextMute)

	badgeSmallStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	badgeLargeStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Foreground(colorAccent).
		Bold(true).
		Padding(0, 2)

	inputPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		MarginTop(1)

	inputLabelStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		MarginRight(1)

	typingStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		MarginTop(1)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Bold(true)

	statusKeyDisabledStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	statusDescStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)
}
