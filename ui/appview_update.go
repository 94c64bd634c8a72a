package ui

import (
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"siaga/config"
	"siaga/model"
	"siaga/prompt"
	"siaga/sections"
)

const flashDuration = 3 * time.Second

var errNothingToCopy = errors.New("belum ada jawaban untuk disalin")

func (a AppView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		taCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		a.ready = true

		// section boxes depend on the width
		a.invalidateRendered()
		a.updateViewportContent(true)
		return a, nil

	case tea.KeyMsg:
		// ctrl+c always quits, whatever the keybinding file says
		if msg.String() == "ctrl+c" || (!a.settings.editing && a.kb.Matches("quit", msg.String())) {
			config.Debugf("[UI] Quit requested")
			return a, tea.Quit
		}
		return a.handleKey(msg)

	case spinner.TickMsg:
		if !a.busy && !a.anyPingPending() {
			return a, nil
		}
		var cmd tea.Cmd
		a.loadingSpinner, cmd = a.loadingSpinner.Update(msg)
		if a.busy {
			a.updateViewportContent(true)
		}
		return a, cmd

	case turnCompleteMsg:
		if msg.SessionID != a.session.ID {
			return a, nil
		}
		a.svc.Apply(a.session, msg.Result)
		a.busy = false
		a.textarea.Focus()
		if msg.Result.OK() {
			config.Debugf("[UI] Turn answered by %s/%s in %s", msg.Result.Provider, msg.Result.Model, formatDuration(msg.Result.Elapsed))
		} else {
			config.Debugf("[UI] Turn failed after %s: %v", formatDuration(msg.Result.Elapsed), msg.Result.Err)
		}
		a.updateViewportContent(true)
		return a, textarea.Blink

	case clipboardCopiedMsg:
		if msg.Err != nil {
			return a, a.setFlash("Gagal menyalin: "+msg.Err.Error(), true)
		}
		what := "Jawaban"
		if msg.What == "quick message" {
			what = "Pesan cepat"
		}
		return a, a.setFlash(what+" disalin ke clipboard.", false)

	case pingProviderMsg:
		a.handlePingResult(msg)
		return a, nil

	case flashTickMsg:
		a.flash = ""
		a.flashIsErr = false
		return a, nil
	}

	if !a.busy && !a.settings.visible {
		a.textarea, taCmd = a.textarea.Update(msg)
	}
	a.viewport, vpCmd = a.viewport.Update(msg)
	return a, tea.Batch(taCmd, vpCmd)
}

func (a AppView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if a.showAcknowledgeModal {
		if key == "enter" || a.kb.Matches("close", key) {
			a.showAcknowledgeModal = false
		}
		return a, nil
	}

	if a.showHelp {
		if a.kb.Matches("help", key) || a.kb.Matches("close", key) {
			a.showHelp = false
		}
		return a, nil
	}

	if a.showAbout {
		if a.kb.Matches("about", key) || a.kb.Matches("close", key) {
			a.showAbout = false
		}
		return a, nil
	}

	if a.settings.visible {
		cmd := a.handleSettingsKey(msg)
		if a.settings.visible {
			return a, tea.Batch(cmd, a.spinnerIfPinging())
		}
		a.updateViewportContent(false)
		return a, cmd
	}

	switch {
	case a.kb.Matches("help", key):
		a.showHelp = true
		return a, nil

	case a.kb.Matches("about", key):
		a.showAbout = true
		return a, nil

	case a.kb.Matches("settings", key):
		a.openSettings()
		return a, nil

	case a.kb.Matches("cycle_provider", key):
		a.session.Settings.Selection = a.session.Settings.Selection.Next()
		config.Debugf("[UI] Provider selection: %s", a.session.Settings.Selection)
		return a, a.setFlash("Provider: "+a.session.Settings.Selection.DisplayName(), false)

	case a.kb.Matches("cycle_mode", key):
		a.session.Settings.Mode = a.session.Settings.Mode.Next()
		a.invalidateRendered()
		a.updateViewportContent(false)
		config.Debugf("[UI] Mode: %s", a.session.Settings.Mode)
		return a, a.setFlash("Mode: "+a.session.Settings.Mode.DisplayName(), false)

	case a.kb.Matches("clear_chat", key):
		if a.busy {
			return a, a.setFlash("Tunggu jawaban selesai sebelum membersihkan chat.", true)
		}
		a.clearChat()
		return a, a.setFlash("Chat dibersihkan.", false)

	case a.kb.Matches("copy_quick", key):
		return a, a.copyLatest()

	case a.kb.Matches("scroll_up", key):
		a.viewport.HalfPageUp()
		return a, nil

	case a.kb.Matches("scroll_down", key):
		a.viewport.HalfPageDown()
		return a, nil

	case a.kb.Matches("send", key):
		return a.send()
	}

	if a.busy {
		return a, nil
	}
	var cmd tea.Cmd
	a.textarea, cmd = a.textarea.Update(msg)
	return a, cmd
}

// send starts a turn for the textarea content. Blank input is ignored.
func (a AppView) send() (tea.Model, tea.Cmd) {
	if a.busy {
		return a, nil
	}

	req, ok := a.svc.Begin(a.session, a.cfg.CredentialStore, a.textarea.Value())
	if !ok {
		return a, nil
	}

	a.textarea.Reset()
	a.textarea.Blur()
	a.busy = true
	a.updateViewportContent(true)

	return a, tea.Batch(
		a.svc.SendTurn(a.session.ID, req),
		a.loadingSpinner.Tick,
	)
}

func (a *AppView) clearChat() {
	a.session.Reset()
	a.updateViewportContent(true)
	config.Debugf("[UI] Chat cleared")
}

// latestCopyText picks what copy_quick puts on the clipboard: the quick
// message section of the newest reply, or the whole reply when it has none.
func latestCopyText(sess *model.Session) (text, what string, ok bool) {
	msg, found := sess.LastAssistant()
	if !found {
		return "", "", false
	}
	if sess.Settings.Mode == model.ModeNowAction {
		res := sections.Extract(msg.Content, sess.Settings.Mode)
		if s, ok := res.Get(prompt.SectionMessage); ok && s.Body != "" {
			return s.Body, "quick message", true
		}
	}
	return msg.Content, "reply", true
}

func (a AppView) copyLatest() tea.Cmd {
	text, what, ok := latestCopyText(a.session)
	return func() tea.Msg {
		if !ok {
			return model.ClipboardCopiedMsg{Err: errNothingToCopy}
		}
		return model.ClipboardCopiedMsg{What: what, Err: clipboard.WriteAll(text)}
	}
}

func (a *AppView) setFlash(text string, isErr bool) tea.Cmd {
	a.flash = text
	a.flashIsErr = isErr
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return model.FlashTickMsg{}
	})
}

func (a AppView) anyPingPending() bool {
	for _, v := range a.settings.validation {
		if v == FieldValidationPending {
			return true
		}
	}
	return false
}

func (a AppView) spinnerIfPinging() tea.Cmd {
	if a.anyPingPending() && !a.busy {
		return a.loadingSpinner.Tick
	}
	return nil
}
