package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	dimColor       = lipgloss.Color("7")
	accentColor    = lipgloss.Color("12")
	successColor   = lipgloss.Color("10")
	warningColor   = lipgloss.Color("11")
	dangerColor    = lipgloss.Color("9")
	highlightColor = lipgloss.Color("13")
	borderColor    = lipgloss.Color("8")

	// User message style
	UserStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)
	// NO .Background() = transparent!

	// Assistant message style
	AssistantStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	DimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	TitleStyle = lipgloss.NewStyle().
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(highlightColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(dangerColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)
)

// Section box flavours for structured replies.
type boxKind int

const (
	boxInfo boxKind = iota
	boxWarning
	boxDanger
)

func boxColor(kind boxKind) lipgloss.Color {
	switch kind {
	case boxWarning:
		return warningColor
	case boxDanger:
		return dangerColor
	default:
		return accentColor
	}
}

// sectionBox frames a rendered section body with a coloured rounded border
// and the section title on top.
func sectionBox(kind boxKind, title, body string, width int) string {
	color := boxColor(kind)
	heading := lipgloss.NewStyle().Foreground(color).Bold(true).Render(title)

	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Width(inner).
		Render(heading + "\n" + body)
}

// FormatFooter formats a footer string with alternating keys and descriptions.
// Usage: FormatFooter("Tab", "Next", "Esc", "Close")
func FormatFooter(parts ...string) string {
	descStyle := lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	var result []string
	for i := 0; i < len(parts); i += 2 {
		if i+1 < len(parts) {
			result = append(result, parts[i]+" "+descStyle.Render(parts[i+1]))
		}
	}
	return strings.Join(result, "  ")
}
