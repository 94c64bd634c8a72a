package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (a AppView) renderHelpModal(width, height int) string {
	kb := a.kb

	green := lipgloss.NewStyle().
		Bold(true).
		Foreground(successColor)

	title := green.Render(AppName + " - Pintasan Keyboard")

	blue := lipgloss.NewStyle().Foreground(accentColor)

	chatActions := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Chat"),
		fmt.Sprintf("• %-13s Kirim pesan", kb.DisplayActionKey("send")),
		"• Alt+Enter     Baris baru",
		fmt.Sprintf("• %-13s Salin pesan cepat", kb.DisplayActionKey("copy_quick")),
		fmt.Sprintf("• %-13s Ganti provider", kb.DisplayActionKey("cycle_provider")),
		fmt.Sprintf("• %-13s Ganti mode", kb.DisplayActionKey("cycle_mode")),
		fmt.Sprintf("• %-13s Bersihkan chat", kb.DisplayActionKey("clear_chat")),
		fmt.Sprintf("• %-13s Gulir ke atas", kb.DisplayActionKey("scroll_up")),
		fmt.Sprintf("• %-13s Gulir ke bawah", kb.DisplayActionKey("scroll_down")),
	)

	globalActions := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Umum"),
		fmt.Sprintf("• %-13s Pengaturan", kb.DisplayActionKey("settings")),
		fmt.Sprintf("• %-13s Tentang", kb.DisplayActionKey("about")),
		fmt.Sprintf("• %-13s Bantuan ini", kb.DisplayActionKey("help")),
		fmt.Sprintf("• %-13s Keluar", kb.DisplayActionKey("quit")),
	)

	settingsActions := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Pengaturan"),
		"• ↑/↓           Pilih baris",
		"• ←/→           Ubah nilai",
		"• Enter         Edit / jalankan",
		fmt.Sprintf("• %-13s Simpan key", kb.DisplayActionKey("settings_save")),
		fmt.Sprintf("• %-13s Tes key", kb.DisplayActionKey("test_keys")),
		fmt.Sprintf("• %-13s Tutup", kb.DisplayActionKey("close")),
	)

	tips := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Catatan"),
		"• API key hanya disimpan di memori",
		"• Darurat nyata: hubungi 112",
	)

	column1 := lipgloss.JoinVertical(
		lipgloss.Left,
		chatActions,
		"",
		tips,
	)

	column2 := lipgloss.JoinVertical(
		lipgloss.Left,
		globalActions,
		"",
		settingsActions,
	)

	columnStyle := lipgloss.NewStyle().Width(38).PaddingLeft(4)

	twoColumns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(column1),
		"  ",
		columnStyle.Render(column2),
	)

	footer := lipgloss.NewStyle().
		Foreground(dimColor).
		Render(fmt.Sprintf("Tekan %s atau %s untuk menutup", kb.DisplayActionKey("help"), kb.DisplayActionKey("close")))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		twoColumns,
		"",
		footer,
	)

	boxWidth := 86
	if width < boxWidth+4 {
		boxWidth = width - 4
	}
	helpBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2).
		Width(boxWidth)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox.Render(content),
	)
}
