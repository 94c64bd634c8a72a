// Package chat runs conversation turns: it records the user's message,
// composes the instruction for the session's mode and style, routes the
// request and records whatever comes back.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"siaga/config"
	"siaga/model"
	"siaga/prompt"
	"siaga/provider"
)

// Router is the part of provider.Router the service needs.
type Router interface {
	Route(ctx context.Context, req provider.Request) (*provider.Result, error)
}

// Service runs conversation turns for a session.
type Service struct {
	router  Router
	timeout time.Duration
	now     func() time.Time
}

// NewService creates a turn service. timeout bounds a whole turn including
// a fallback attempt; zero means no bound beyond the per-call timeouts.
func NewService(router Router, timeout time.Duration) *Service {
	return &Service{
		router:  router,
		timeout: timeout,
		now:     time.Now,
	}
}

// Begin appends the user's text to the session and builds the request for it.
// The request carries a snapshot of creds, not creds itself.
// Blank input is ignored and reported with ok=false.
func (s *Service) Begin(sess *model.Session, creds provider.Credentials, text string) (provider.Request, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return provider.Request{}, false
	}

	sess.Append(model.RoleUser, text)

	st := sess.Settings
	messages := make([]model.Message, 0, len(sess.History)+1)
	messages = append(messages, model.Message{
		Role:      model.RoleSystem,
		Content:   prompt.Compose(st.Mode, st.Style),
		Timestamp: s.now(),
	})
	messages = append(messages, sess.History...)

	config.Debugf("[Chat] Turn %d: selection=%s mode=%s style=%s temp=%.2f",
		len(sess.History), st.Selection, st.Mode, st.Style, st.Temperature)

	return provider.Request{
		Selection:   st.Selection,
		Credentials: provider.SnapshotCredentials(creds),
		Messages:    messages,
		GeminiModel: st.GeminiModel,
		GroqModel:   st.GroqModel,
		Temperature: st.Temperature,
	}, true
}

// Complete routes a request built by Begin. It does not touch the session, so
// it is safe to run off the UI goroutine.
func (s *Service) Complete(ctx context.Context, req provider.Request) model.TurnResult {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := s.now()
	res, err := s.router.Route(ctx, req)
	elapsed := s.now().Sub(start)

	if err != nil {
		config.Debugf("[Chat] Turn failed after %v: %v", elapsed, err)
		return model.TurnResult{
			Reply:   FailureReply(req.Selection, err),
			Err:     err,
			Elapsed: elapsed,
		}
	}

	return model.TurnResult{
		Reply:    res.Text,
		Provider: res.Provider,
		Model:    res.Model,
		Elapsed:  elapsed,
	}
}

// Apply records a finished turn in the session. The reply is stored raw.
func (s *Service) Apply(sess *model.Session, res model.TurnResult) {
	sess.Append(model.RoleAssistant, res.Reply)
	if res.OK() {
		sess.LastUsed = model.LastUsed{Provider: res.Provider, Model: res.Model}
	}
}

// RunTurn performs a whole turn synchronously. ok is false when the input was
// blank and nothing happened.
func (s *Service) RunTurn(ctx context.Context, sess *model.Session, creds provider.Credentials, text string) (model.TurnResult, bool) {
	req, ok := s.Begin(sess, creds, text)
	if !ok {
		return model.TurnResult{}, false
	}
	res := s.Complete(ctx, req)
	s.Apply(sess, res)
	return res, true
}

// SendTurn wraps Complete as a bubbletea command.
func (s *Service) SendTurn(sessionID string, req provider.Request) tea.Cmd {
	return func() tea.Msg {
		return model.TurnCompleteMsg{
			SessionID: sessionID,
			Result:    s.Complete(context.Background(), req),
		}
	}
}

// FailureReply is the assistant message shown in place of a reply when a turn
// fails. It names the selection, the error kind and how to recover.
func FailureReply(selection model.Selection, err error) string {
	return fmt.Sprintf(
		"Maaf, terjadi error saat memanggil model.\n\n"+
			"- Provider: **%s**\n"+
			"- Detail: `%s: %v`\n\n"+
			"Cek API key di settings, atau ganti Provider ke Groq / Auto.",
		selection.DisplayName(), provider.Kind(err), err,
	)
}
