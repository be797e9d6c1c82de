package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todoterm/internal/apperr"
	"todoterm/internal/nav"
)

type signInScreen struct {
	deps   Deps
	email  textinput.Model
	pass   textinput.Model
	focus  int
	reveal bool
	busy   bool
	errMsg string
	note   string // success notice carried over from sign-up
}

func newSignInScreen(deps Deps) signInScreen {
	email := textinput.New()
	email.Prompt = "> "
	email.Placeholder = "Email"
	email.CharLimit = 200
	email.Focus()

	pass := textinput.New()
	pass.Prompt = "> "
	pass.Placeholder = "Password"
	pass.CharLimit = 200
	pass.EchoMode = textinput.EchoPassword

	return signInScreen{deps: deps, email: email, pass: pass}
}

func (s signInScreen) update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case signedInMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = apperr.UserMessage(msg.Err)
			return s, nil
		}
		// Stack reset: back from Home must never land on SignIn.
		return s, func() tea.Msg { return navResetMsg{Screen: nav.Home} }

	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return navPopMsg{} }
		case "tab", "shift+tab", "up", "down":
			s.focus = 1 - s.focus
			s.syncFocus()
			return s, nil
		case "ctrl+r":
			s.reveal = !s.reveal
			if s.reveal {
				s.pass.EchoMode = textinput.EchoNormal
			} else {
				s.pass.EchoMode = textinput.EchoPassword
			}
			return s, nil
		case "enter":
			return s.submit()
		}
	}

	var cmd tea.Cmd
	if s.focus == 0 {
		s.email, cmd = s.email.Update(msg)
	} else {
		s.pass, cmd = s.pass.Update(msg)
	}
	return s, cmd
}

func (s signInScreen) submit() (screenModel, tea.Cmd) {
	form := signInForm{
		Email:    strings.TrimSpace(s.email.Value()),
		Password: s.pass.Value(),
	}
	if err := form.check(); err != nil {
		s.errMsg = apperr.UserMessage(err)
		return s, nil
	}
	s.errMsg = ""
	s.note = ""
	s.busy = true
	deps := s.deps
	return s, func() tea.Msg {
		return signedInMsg{Err: deps.Auth.SignIn(context.Background(), form.Email, form.Password)}
	}
}

func (s *signInScreen) syncFocus() {
	if s.focus == 0 {
		s.email.Focus()
		s.pass.Blur()
	} else {
		s.email.Blur()
		s.pass.Focus()
	}
}

func (s signInScreen) view(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sign in"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Email") + "\n" + s.email.View() + "\n")
	b.WriteString(labelStyle.Render("Password") + "\n" + s.pass.View() + "\n")
	if s.busy {
		b.WriteString("\n" + subtleStyle.Render("Signing in..."))
	}
	b.WriteString(info(s.note))
	b.WriteString(notice(s.errMsg))
	b.WriteString("\n" + helpStyle.Render("enter submit · tab switch · ctrl+r show password · esc back"))
	return b.String()
}
