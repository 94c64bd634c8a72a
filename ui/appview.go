package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"siaga/chat"
	"siaga/config"
	"siaga/model"
)

const AppName = "Siaga"

type AppView struct {
	// Session state and services
	session *model.Session
	cfg     *config.Config
	kb      *config.KeyBindingsConfig
	svc     *chat.Service

	// UI Components
	viewport viewport.Model
	textarea textarea.Model

	// Window state
	width  int
	height int
	ready  bool

	// A turn is in flight; input is ignored until it completes
	busy bool

	// Loading spinner (bubbles/spinner)
	loadingSpinner spinner.Model

	showHelp  bool
	showAbout bool

	settings SettingsState

	// Acknowledge modal (warnings/errors requiring only acknowledgement)
	showAcknowledgeModal  bool
	acknowledgeModalTitle string
	acknowledgeModalMsg   string
	acknowledgeModalType  ModalType

	// One-line notice in the status bar, cleared by flashTickMsg
	flash      string
	flashIsErr bool

	version string
	license string
}

func NewAppView(cfg *config.Config, kb *config.KeyBindingsConfig, svc *chat.Service, session *model.Session, version, license string) AppView {
	if kb == nil {
		kb = config.DefaultKeybindings()
	}

	ta := textarea.New()
	ta.Placeholder = "Ceritakan situasimu... (Enter untuk kirim)"
	ta.Focus()
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.SetWidth(80)

	// Alt+Enter for newline, Enter alone sends (handled separately)
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))

	ta.SetPromptFunc(2, func(lineIdx int) string {
		if lineIdx == 0 {
			return "> "
		}
		return "| "
	})

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(successColor)

	return AppView{
		session:        session,
		cfg:            cfg,
		kb:             kb,
		svc:            svc,
		textarea:       ta,
		viewport:       viewport.New(0, 0),
		loadingSpinner: sp,
		settings:       NewSettingsState(),
		version:        version,
		license:        license,
	}
}

func (a AppView) Init() tea.Cmd {
	// rendering waits for WindowSizeMsg so the width is known
	return textarea.Blink
}

func (a AppView) View() string {
	if !a.ready {
		return "Memuat " + AppName + "..."
	}

	// Modal layers, top first
	if a.showAcknowledgeModal {
		return RenderAcknowledgeModal(
			a.acknowledgeModalTitle,
			a.acknowledgeModalMsg,
			a.acknowledgeModalType,
			a.width,
			a.height,
		)
	}

	if a.showHelp {
		return a.renderHelpModal(a.width, a.height)
	}

	if a.settings.visible {
		return a.renderSettings()
	}

	if a.showAbout {
		return renderAboutModal(a, a.width, a.height, a.version, a.license)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		a.renderTitle(),
		"",
		a.viewport.View(),
		a.textarea.View(),
		a.renderStatusBar(),
	)
}

// renderTitle shows "Siaga - Mode | Provider".
func (a AppView) renderTitle() string {
	st := a.session.Settings
	appText := AssistantStyle.Render(AppName)
	modeText := TitleStyle.Render(" - " + st.Mode.DisplayName())
	providerText := UserStyle.Render(" | " + st.Selection.DisplayName())

	lastUsed := ""
	if !a.session.LastUsed.IsZero() {
		lastUsed = DimStyle.Render(fmt.Sprintf(" (terakhir: %s · %s)", a.session.LastUsed.Provider, a.session.LastUsed.Model))
	}

	return appText + modeText + providerText + lastUsed
}

func (a AppView) renderStatusBar() string {
	if a.flash != "" {
		if a.flashIsErr {
			return ErrorStyle.Render(truncate(a.flash, a.width))
		}
		return SuccessStyle.Render(truncate(a.flash, a.width))
	}

	descStyle := lipgloss.NewStyle().Foreground(successColor).Bold(true)
	parts := []struct{ action, label string }{
		{"send", "Kirim"},
		{"settings", "Pengaturan"},
		{"cycle_provider", "Provider"},
		{"cycle_mode", "Mode"},
		{"copy_quick", "Salin"},
		{"clear_chat", "Bersihkan"},
		{"help", "Bantuan"},
		{"quit", "Keluar"},
	}
	var items []string
	for _, p := range parts {
		items = append(items, a.kb.DisplayActionKey(p.action)+" "+descStyle.Render(p.label))
	}
	return StatusStyle.Render(strings.Join(items, "  "))
}

// layout sizes the viewport and input to the window.
func (a *AppView) layout() {
	// title (1), separator (1), textarea (3), status bar (1)
	viewportHeight := a.height - 6
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	a.viewport.Width = a.width
	a.viewport.Height = viewportHeight
	a.textarea.SetWidth(a.width)
}

func (a *AppView) showAcknowledge(title, msg string, kind ModalType) {
	a.showAcknowledgeModal = true
	a.acknowledgeModalTitle = title
	a.acknowledgeModalMsg = msg
	a.acknowledgeModalType = kind
}

// WithNotice opens the acknowledge modal on the first frame, e.g. for a
// startup warning.
func (a AppView) WithNotice(title, msg string) AppView {
	a.showAcknowledge(title, msg, ModalTypeWarning)
	return a
}

// Session exposes the session for the entry point and tests.
func (a AppView) Session() *model.Session {
	return a.session
}
