package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ASCIIArt = `
 ___ _                  
/ __(_)__ _ __ _ __ _   
\__ \ / _' / _' / _' |  
|___/_\__,_\__, \__,_|  
           |___/        `

var Features = []string{
	"Asisten kesiapsiagaan bencana di terminal",
	"Now Action: langkah 10 menit pertama",
	"Preparedness Plan: rencana siaga rumah tangga",
	"Gemini + Groq, dengan fallback otomatis",
}

func renderAboutModal(a AppView, width, height int, version, license string) string {
	var sb strings.Builder

	asciiStyle := lipgloss.NewStyle().
		Foreground(successColor).
		Bold(true)

	for _, line := range strings.Split(strings.TrimPrefix(ASCIIArt, "\n"), "\n") {
		sb.WriteString(asciiStyle.Render(line))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")

	featureStyle := lipgloss.NewStyle().
		Foreground(dimColor)

	for _, feature := range Features {
		sb.WriteString(featureStyle.Render("• " + feature))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")

	labelStyle := lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(dimColor)

	sb.WriteString(labelStyle.Render("Version: "))
	sb.WriteString(valueStyle.Render(version))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("License: "))
	sb.WriteString(valueStyle.Render(license))
	sb.WriteString("\n\n")

	sb.WriteString(ErrorStyle.Render("Bukan pengganti layanan darurat resmi. Darurat: 112."))
	sb.WriteString("\n\n")

	sb.WriteString(featureStyle.Render(fmt.Sprintf("Tekan %s atau %s untuk menutup", a.kb.DisplayActionKey("close"), a.kb.DisplayActionKey("about"))))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, boxStyle.Render(sb.String()))
}
