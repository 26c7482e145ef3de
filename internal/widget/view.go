package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders whichever of the two layouts is active.
func (m Model) View() string {
	if !m.ready {
		return typingStyle.Render("  Initializing...")
	}

	if m.view == viewChat {
		return m.viewChat()
	}
	return m.viewTips()
}

// viewTips renders the idle layout: a large avatar badge with the rotating
// tip bubble beside it.
func (m Model) viewTips() string {
	contentWidth := m.width - 4

	badge := m.opts.Avatar.Render(AvatarLarge)
	name := titleStyle.Render(m.opts.Name)

	identity := []string{name}
	if m.opts.ModelRef != "" {
		identity = append(identity, subtitleStyle.Render(m.opts.ModelRef))
	}
	card := lipgloss.JoinHorizontal(
		lipgloss.Center,
		badge,
		"  ",
		lipgloss.JoinVertical(lipgloss.Left, identity...),
	)

	sections := []string{card}

	if m.bubbleShown {
		tip := m.opts.Tips[m.tipIndex]
		line := tip.Text
		if tip.Icon != "" {
			line = tip.Icon + "  " + line
		}
		style := tipBubbleStyle
		if m.animating {
			// Dimmed phase of the crossfade.
			style = tipBubbleFadeStyle
		}
		sections = append(sections, style.MaxWidth(contentWidth).Render(line))
	}

	sections = append(sections, m.tipsStatusBar(contentWidth))

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Center the card vertically in the available space.
	topPadding := (m.height - lipgloss.Height(body)) / 2
	if topPadding < 0 {
		topPadding = 0
	}
	return strings.Repeat("\n", topPadding) + lipgloss.NewStyle().Padding(0, 2).Render(body)
}

// viewChat renders the conversation layout: header, message viewport,
// typing indicator, input and status bar.
func (m Model) viewChat() string {
	contentWidth := m.width - 4

	var sections []string

	headerContent := lipgloss.JoinHorizontal(
		lipgloss.Center,
		m.opts.Avatar.Render(AvatarSmall),
		" ",
		titleStyle.Render(m.opts.Name),
	)
	if m.opts.ModelRef != "" {
		headerContent = lipgloss.JoinHorizontal(
			lipgloss.Center,
			headerContent,
			hintStyle.Render("  •  "),
			subtitleStyle.Render(m.opts.ModelRef),
		)
	}
	sections = append(sections, headerStyle.Width(contentWidth).Render(headerContent))

	messagesPanel := messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(m.viewport.View())
	sections = append(sections, messagesPanel)

	if m.typing {
		indicator := m.spinner.View() + typingStyle.Render(" "+m.opts.Name+" is typing...")
		sections = append(sections, indicator)
	}

	inputContent := lipgloss.JoinVertical(
		lipgloss.Left,
		inputLabelStyle.Render("You"),
		m.input.View(),
	)
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(inputContent))

	sections = append(sections, m.chatStatusBar(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) tipsStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Chat"},
		{"Ctrl+B", "Toggle tips"},
		{"Q", "Quit"},
	}
	return renderShortcuts(shortcuts, width)
}

func (m Model) chatStatusBar(width int) string {
	sendStyle := statusKeyStyle
	if strings.TrimSpace(m.input.Value()) == "" {
		// Affordance only: enter on an empty buffer is a no-op regardless.
		sendStyle = statusKeyDisabledStyle
	}

	items := []string{
		sendStyle.Render("Enter") + statusDescStyle.Render(" Send"),
		statusKeyStyle.Render("Esc") + statusDescStyle.Render(" Back"),
		statusKeyStyle.Render("Ctrl+Y") + statusDescStyle.Render(" Copy reply"),
		statusKeyStyle.Render("↑↓") + statusDescStyle.Render(" Scroll"),
	}

	bar := strings.Join(items, "  │  ")
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

func renderShortcuts(shortcuts []struct{ key, desc string }, width int) string {
	var items []string
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}
	bar := strings.Join(items, "  │  ")
	return statusBarStyle.Width(width).Render(bar)
}
