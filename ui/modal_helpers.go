package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ModalType determines the color and styling of a modal
type ModalType int

const (
	ModalTypeInfo ModalType = iota
	ModalTypeWarning
	ModalTypeError
)

func modalTitleColor(t ModalType) lipgloss.Color {
	switch t {
	case ModalTypeWarning:
		return warningColor
	case ModalTypeError:
		return dangerColor
	default:
		return accentColor
	}
}

func modalWidthFor(desired, width int) int {
	if desired == 0 {
		desired = 60
	}
	if width < desired+10 {
		desired = width - 10
	}
	if desired < 20 {
		desired = 20
	}
	return desired
}

// RenderAcknowledgeModal renders a centered message dismissed with Enter.
func RenderAcknowledgeModal(title, message string, modalType ModalType, width, height int) string {
	modalWidth := modalWidthFor(60, width)

	lineStyle := lipgloss.NewStyle().Width(modalWidth).Align(lipgloss.Center)
	var lines []string
	for _, line := range strings.Split(wrapText(message, modalWidth-4), "\n") {
		lines = append(lines, lineStyle.Render(line))
	}

	return RenderThreeSectionModal(title, lines, "Tekan Enter untuk menutup", modalType, modalWidth, width, height)
}

// RenderThreeSectionModal renders a borderless modal:
// Title (no border) → Message (BorderTop) → Footer (BorderTop).
// messageLines are pre-formatted; top and bottom padding is added here.
// desiredWidth 0 means the default of 60.
func RenderThreeSectionModal(title string, messageLines []string, footer string, modalType ModalType, desiredWidth, width, height int) string {
	modalWidth := modalWidthFor(desiredWidth, width)

	// centered by hand; runewidth counts wide glyphs correctly
	titleWidth := runewidth.StringWidth(title)
	leftPad := max(0, (modalWidth-titleWidth)/2)
	rightPad := max(0, modalWidth-titleWidth-leftPad)
	titleSection := lipgloss.NewStyle().
		Bold(true).
		Foreground(modalTitleColor(modalType)).
		Render(strings.Repeat(" ", leftPad) + title + strings.Repeat(" ", rightPad))

	blank := strings.Repeat(" ", modalWidth)
	contentLines := make([]string, 0, len(messageLines)+2)
	contentLines = append(contentLines, blank)
	contentLines = append(contentLines, messageLines...)
	contentLines = append(contentLines, blank)

	divider := lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(dimColor).
		Width(modalWidth)

	messageSection := divider.Render(strings.Join(contentLines, "\n"))
	footerSection := divider.
		Foreground(dimColor).
		Align(lipgloss.Center).
		Render(footer)

	content := strings.Join([]string{titleSection, messageSection, footerSection}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
