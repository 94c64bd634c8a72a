package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"

	"siaga/config"
	"siaga/model"
	"siaga/provider"
)

type SettingFieldType int

const (
	SettingTypeProvider SettingFieldType = iota
	SettingTypeMode
	SettingTypeStyle
	SettingTypeTemperature
	SettingTypeGeminiModel
	SettingTypeGroqModel
	SettingTypeGeminiKey
	SettingTypeGroqKey
	SettingTypeSaveKeys
	SettingTypeTestKeys
	SettingTypeForgetKeys
	SettingTypeClearChat
)

var settingsOrder = []SettingFieldType{
	SettingTypeProvider,
	SettingTypeMode,
	SettingTypeStyle,
	SettingTypeTemperature,
	SettingTypeGeminiModel,
	SettingTypeGroqModel,
	SettingTypeGeminiKey,
	SettingTypeGroqKey,
	SettingTypeSaveKeys,
	SettingTypeTestKeys,
	SettingTypeForgetKeys,
	SettingTypeClearChat,
}

type SettingFieldValidation int

const (
	FieldValidationNone SettingFieldValidation = iota
	FieldValidationPending
	FieldValidationSuccess
	FieldValidationError
)

// SettingsState holds the settings panel. Session settings change as soon as
// a value is picked; API keys only change on "Save keys".
type SettingsState struct {
	visible  bool
	selected int
	editing  bool

	modelInput    textinput.Model
	suggestions   []string
	suggestionIdx int

	geminiKey textinput.Model
	groqKey   textinput.Model

	validation map[string]SettingFieldValidation // providerID → ping state
	pingErrors map[string]string

	status    string
	statusErr bool
}

func newPasswordInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 256
	ti.Prompt = ""
	return ti
}

func NewSettingsState() SettingsState {
	mi := textinput.New()
	mi.Prompt = ""
	mi.CharLimit = 128

	return SettingsState{
		modelInput: mi,
		geminiKey:  newPasswordInput("GOOGLE_API_KEY"),
		groqKey:    newPasswordInput("GROQ_API_KEY"),
		validation: make(map[string]SettingFieldValidation),
		pingErrors: make(map[string]string),
	}
}

func (s SettingsState) current() SettingFieldType {
	return settingsOrder[s.selected]
}

func (a *AppView) openSettings() {
	a.settings.visible = true
	a.settings.editing = false
	a.settings.status = ""
}

func (a *AppView) closeSettings() {
	a.settings.visible = false
	a.settings.editing = false
	a.settings.modelInput.Blur()
	a.settings.geminiKey.Blur()
	a.settings.groqKey.Blur()
}

func (a *AppView) setStatus(msg string, isErr bool) {
	a.settings.status = msg
	a.settings.statusErr = isErr
}

// handleSettingsKey processes a key press while the settings panel is open.
func (a *AppView) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	if a.settings.editing {
		return a.handleSettingsEditKey(msg)
	}

	key := msg.String()
	switch {
	case a.kb.Matches("close", key):
		a.closeSettings()
		return nil
	case a.kb.Matches("settings_save", key):
		a.saveKeys()
		return nil
	case a.kb.Matches("test_keys", key):
		return a.testKeys()
	case key == "down" || key == "j" || a.kb.Matches("settings_next", key):
		a.settings.selected = (a.settings.selected + 1) % len(settingsOrder)
	case key == "up" || key == "k" || a.kb.Matches("settings_prev", key):
		a.settings.selected = (a.settings.selected - 1 + len(settingsOrder)) % len(settingsOrder)
	case key == "left" || key == "h":
		a.adjustSetting(-1)
	case key == "right" || key == "l" || key == " ":
		a.adjustSetting(1)
	case key == "enter":
		return a.activateSetting()
	}
	return nil
}

// adjustSetting cycles enums or steps the temperature. dir is +1 or -1.
func (a *AppView) adjustSetting(dir int) {
	st := &a.session.Settings
	switch a.settings.current() {
	case SettingTypeProvider:
		st.Selection = cycleSelection(st.Selection, dir)
	case SettingTypeMode:
		st.Mode = st.Mode.Next()
		a.invalidateRendered()
	case SettingTypeStyle:
		st.Style = st.Style.Next()
	case SettingTypeTemperature:
		st.Temperature = stepTemperature(st.Temperature, dir)
	default:
		return
	}
	config.Debugf("[UI] Settings changed: selection=%s mode=%s style=%s temp=%.2f", st.Selection, st.Mode, st.Style, st.Temperature)
}

func cycleSelection(s model.Selection, dir int) model.Selection {
	if dir >= 0 {
		return s.Next()
	}
	// two steps forward is one step back in a cycle of three
	return s.Next().Next()
}

// stepTemperature moves t by one TemperatureStep, snapped to the step grid
// and kept in range.
func stepTemperature(t float64, dir int) float64 {
	steps := math.Round(t/model.TemperatureStep) + float64(dir)
	next := math.Round(steps*model.TemperatureStep*100) / 100
	return model.ClampTemperature(next)
}

func (a *AppView) activateSetting() tea.Cmd {
	switch a.settings.current() {
	case SettingTypeProvider, SettingTypeMode, SettingTypeStyle, SettingTypeTemperature:
		a.adjustSetting(1)
	case SettingTypeGeminiModel:
		a.startModelEdit(a.session.Settings.GeminiModel, config.ProviderGemini)
		return textinput.Blink
	case SettingTypeGroqModel:
		a.startModelEdit(a.session.Settings.GroqModel, config.ProviderGroq)
		return textinput.Blink
	case SettingTypeGeminiKey:
		a.settings.editing = true
		return a.settings.geminiKey.Focus()
	case SettingTypeGroqKey:
		a.settings.editing = true
		return a.settings.groqKey.Focus()
	case SettingTypeSaveKeys:
		a.saveKeys()
	case SettingTypeTestKeys:
		return a.testKeys()
	case SettingTypeForgetKeys:
		a.forgetKeys()
	case SettingTypeClearChat:
		if a.busy {
			a.setStatus("Tunggu jawaban selesai sebelum membersihkan chat.", true)
			return nil
		}
		a.clearChat()
		a.setStatus("Chat dibersihkan.", false)
	}
	return nil
}

func (a *AppView) startModelEdit(current, providerID string) {
	a.settings.editing = true
	a.settings.modelInput.SetValue(current)
	a.settings.modelInput.CursorEnd()
	a.settings.modelInput.Focus()
	a.settings.suggestions = modelSuggestions("", config.KnownModels(providerID))
	a.settings.suggestionIdx = -1
}

// modelSuggestions filters the known model list with fuzzy matching. An empty
// query returns the whole list.
func modelSuggestions(query string, catalog []string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return catalog
	}
	matches := fuzzy.Find(query, catalog)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = catalog[m.Index]
	}
	return out
}

func (a *AppView) handleSettingsEditKey(msg tea.KeyMsg) tea.Cmd {
	field := a.settings.current()
	isModel := field == SettingTypeGeminiModel || field == SettingTypeGroqModel

	switch msg.String() {
	case "esc":
		a.settings.editing = false
		a.settings.modelInput.Blur()
		a.settings.geminiKey.Blur()
		a.settings.groqKey.Blur()
		return nil
	case "enter":
		if isModel {
			a.commitModelEdit(field)
		}
		a.settings.editing = false
		a.settings.geminiKey.Blur()
		a.settings.groqKey.Blur()
		return nil
	case "down":
		if isModel && len(a.settings.suggestions) > 0 {
			a.settings.suggestionIdx = (a.settings.suggestionIdx + 1) % len(a.settings.suggestions)
			return nil
		}
	case "up":
		if isModel && len(a.settings.suggestions) > 0 {
			if a.settings.suggestionIdx <= 0 {
				a.settings.suggestionIdx = len(a.settings.suggestions)
			}
			a.settings.suggestionIdx--
			return nil
		}
	}

	var cmd tea.Cmd
	switch field {
	case SettingTypeGeminiKey:
		a.settings.geminiKey, cmd = a.settings.geminiKey.Update(msg)
	case SettingTypeGroqKey:
		a.settings.groqKey, cmd = a.settings.groqKey.Update(msg)
	default:
		a.settings.modelInput, cmd = a.settings.modelInput.Update(msg)
		providerID := config.ProviderGemini
		if field == SettingTypeGroqModel {
			providerID = config.ProviderGroq
		}
		a.settings.suggestions = modelSuggestions(a.settings.modelInput.Value(), config.KnownModels(providerID))
		a.settings.suggestionIdx = -1
	}
	return cmd
}

// commitModelEdit applies the highlighted suggestion, or the typed value when
// none is highlighted. A blank value keeps the previous model.
func (a *AppView) commitModelEdit(field SettingFieldType) {
	value := strings.TrimSpace(a.settings.modelInput.Value())
	if i := a.settings.suggestionIdx; i >= 0 && i < len(a.settings.suggestions) {
		value = a.settings.suggestions[i]
	}
	a.settings.modelInput.Blur()
	if value == "" {
		return
	}

	if field == SettingTypeGeminiModel {
		a.session.Settings.GeminiModel = value
		a.settings.validation[config.ProviderGemini] = FieldValidationNone
	} else {
		a.session.Settings.GroqModel = value
		a.settings.validation[config.ProviderGroq] = FieldValidationNone
	}
	config.Debugf("[UI] Model set: gemini=%s groq=%s", a.session.Settings.GeminiModel, a.session.Settings.GroqModel)
}

// saveKeys moves typed keys into the in-memory credential store. Empty inputs
// leave the existing key untouched.
func (a *AppView) saveKeys() {
	store := a.cfg.CredentialStore
	var saved []string
	if store.Set(config.ProviderGemini, a.settings.geminiKey.Value()) {
		saved = append(saved, "Gemini")
		a.settings.validation[config.ProviderGemini] = FieldValidationNone
	}
	if store.Set(config.ProviderGroq, a.settings.groqKey.Value()) {
		saved = append(saved, "Groq")
		a.settings.validation[config.ProviderGroq] = FieldValidationNone
	}
	a.settings.geminiKey.SetValue("")
	a.settings.groqKey.SetValue("")

	if len(saved) == 0 {
		a.setStatus("Tidak ada key baru untuk disimpan.", false)
		return
	}
	config.Debugf("[UI] Session keys saved for %s", strings.Join(saved, ", "))
	a.setStatus("Key tersimpan untuk sesi ini: "+strings.Join(saved, ", "), false)
}

// forgetKeys drops keys saved in this session. Keys from the environment
// still apply afterwards.
func (a *AppView) forgetKeys() {
	for _, id := range []string{config.ProviderGemini, config.ProviderGroq} {
		a.cfg.CredentialStore.Delete(id)
		a.settings.validation[id] = FieldValidationNone
	}
	config.Debugf("[UI] Session keys forgotten")
	a.setStatus("Key sesi dihapus dari memori.", false)
}

// testKeys pings every provider that currently has a key.
func (a *AppView) testKeys() tea.Cmd {
	store := a.cfg.CredentialStore
	var cmds []tea.Cmd
	for _, id := range []string{config.ProviderGemini, config.ProviderGroq} {
		key := store.Get(id)
		if key == "" {
			continue
		}
		a.settings.validation[id] = FieldValidationPending
		delete(a.settings.pingErrors, id)
		cmds = append(cmds, provider.PingProvider(id, a.cfg.BaseURL(id), key, a.modelFor(id)))
	}
	if len(cmds) == 0 {
		a.setStatus("Belum ada API key. Isi key lalu Save keys.", true)
		return nil
	}
	a.setStatus("Menguji key...", false)
	return tea.Batch(cmds...)
}

func (a *AppView) modelFor(providerID string) string {
	if providerID == config.ProviderGemini {
		return a.session.Settings.GeminiModel
	}
	return a.session.Settings.GroqModel
}

func (a *AppView) handlePingResult(msg provider.PingProviderMsg) {
	name := config.GetProviderDisplayName(msg.ProviderID)
	if msg.Valid {
		a.settings.validation[msg.ProviderID] = FieldValidationSuccess
		a.setStatus(name+" OK.", false)
		return
	}
	a.settings.validation[msg.ProviderID] = FieldValidationError
	errMsg := "unknown error"
	if msg.Err != nil {
		errMsg = msg.Err.Error()
	}
	a.settings.pingErrors[msg.ProviderID] = errMsg
	a.setStatus(name+" gagal: "+errMsg, true)
}

func (a AppView) renderSettings() string {
	panelWidth := 72
	if a.width < panelWidth+6 {
		panelWidth = a.width - 6
	}
	labelWidth := 16
	valueWidth := panelWidth - labelWidth - 4

	st := a.session.Settings
	store := a.cfg.CredentialStore

	var rows []string
	for i, field := range settingsOrder {
		label, value := a.settingRow(field, st, store)

		cursor := "  "
		labelStyle := lipgloss.NewStyle()
		if i == a.settings.selected {
			cursor = SelectedStyle.Render("> ")
			labelStyle = SelectedStyle
		}

		padded := label + strings.Repeat(" ", max(0, labelWidth-runewidth.StringWidth(label)))
		line := cursor + labelStyle.Render(padded) + " " + value
		if field == SettingTypeGeminiKey || field == SettingTypeSaveKeys || field == SettingTypeClearChat {
			rows = append(rows, "")
		}
		rows = append(rows, line)

		if i == a.settings.selected && a.settings.editing && (field == SettingTypeGeminiModel || field == SettingTypeGroqModel) {
			rows = append(rows, a.renderSuggestions(labelWidth+3, valueWidth)...)
		}
	}

	if a.settings.status != "" {
		style := SuccessStyle
		if a.settings.statusErr {
			style = ErrorStyle
		}
		rows = append(rows, "", style.Render(wrapText(a.settings.status, panelWidth-4)))
	}

	footer := FormatFooter("↑/↓", "Pilih", "←/→", "Ubah", "Enter", "Edit", a.kb.DisplayActionKey("settings_save"), "Save keys", a.kb.DisplayActionKey("test_keys"), "Test", "Esc", "Tutup")
	if a.settings.editing {
		footer = FormatFooter("Enter", "Simpan", "↑/↓", "Saran", "Esc", "Batal")
	}

	return RenderThreeSectionModal("Pengaturan", rows, footer, ModalTypeInfo, panelWidth, a.width, a.height)
}

func (a AppView) settingRow(field SettingFieldType, st model.Settings, store *config.CredentialStore) (string, string) {
	editingThis := a.settings.editing && settingsOrder[a.settings.selected] == field

	switch field {
	case SettingTypeProvider:
		return "Provider", "‹ " + st.Selection.DisplayName() + " ›"
	case SettingTypeMode:
		return "Mode", "‹ " + st.Mode.DisplayName() + " ›"
	case SettingTypeStyle:
		return "Gaya bahasa", "‹ " + st.Style.DisplayName() + " ›"
	case SettingTypeTemperature:
		return "Temperature", fmt.Sprintf("‹ %.2f ›", st.Temperature)
	case SettingTypeGeminiModel:
		if editingThis {
			return "Gemini model", a.settings.modelInput.View()
		}
		return "Gemini model", truncate(st.GeminiModel, 48) + a.validationBadge(config.ProviderGemini)
	case SettingTypeGroqModel:
		if editingThis {
			return "Groq model", a.settings.modelInput.View()
		}
		return "Groq model", truncate(st.GroqModel, 48) + a.validationBadge(config.ProviderGroq)
	case SettingTypeGeminiKey:
		return "Gemini key", a.keyValue(a.settings.geminiKey, editingThis, store.Source(config.ProviderGemini))
	case SettingTypeGroqKey:
		return "Groq key", a.keyValue(a.settings.groqKey, editingThis, store.Source(config.ProviderGroq))
	case SettingTypeSaveKeys:
		return "[ Save keys ]", DimStyle.Render("simpan di memori (tidak ditulis ke disk)")
	case SettingTypeTestKeys:
		return "[ Test keys ]", DimStyle.Render("cek koneksi provider")
	case SettingTypeForgetKeys:
		return "[ Forget keys ]", DimStyle.Render("hapus key sesi (env tetap dipakai)")
	case SettingTypeClearChat:
		return "[ Clear chat ]", DimStyle.Render("hapus riwayat percakapan")
	}
	return "", ""
}

func (a AppView) keyValue(input textinput.Model, editing bool, source string) string {
	if editing || input.Value() != "" {
		return input.View()
	}
	if source == "" {
		return ErrorStyle.Render("belum diatur")
	}
	if source == "session" {
		return SuccessStyle.Render("••••••") + DimStyle.Render(" (sesi)")
	}
	return SuccessStyle.Render("••••••") + DimStyle.Render(" ("+source+")")
}

func (a AppView) validationBadge(providerID string) string {
	switch a.settings.validation[providerID] {
	case FieldValidationPending:
		return " " + a.loadingSpinner.View()
	case FieldValidationSuccess:
		return SuccessStyle.Render(" ✓")
	case FieldValidationError:
		return ErrorStyle.Render(" ✗")
	default:
		return ""
	}
}

func (a AppView) renderSuggestions(indent, width int) []string {
	const maxShown = 6
	var lines []string
	pad := strings.Repeat(" ", indent)
	for i, s := range a.settings.suggestions {
		if i >= maxShown {
			lines = append(lines, pad+DimStyle.Render(fmt.Sprintf("… %d lagi", len(a.settings.suggestions)-maxShown)))
			break
		}
		text := truncate(s, width)
		if i == a.settings.suggestionIdx {
			lines = append(lines, pad+HighlightStyle.Render("› "+text))
		} else {
			lines = append(lines, pad+DimStyle.Render("  "+text))
		}
	}
	return lines
}
