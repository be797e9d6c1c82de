package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todoterm/internal/apperr"
	"todoterm/internal/nav"
)

type signUpScreen struct {
	deps   Deps
	inputs []textinput.Model // full name, email, password, confirm
	focus  int
	busy   bool
	errMsg string
}

func newSignUpScreen(deps Deps) signUpScreen {
	mk := func(placeholder string, secret bool) textinput.Model {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = placeholder
		ti.CharLimit = 200
		if secret {
			ti.EchoMode = textinput.EchoPassword
		}
		return ti
	}
	inputs := []textinput.Model{
		mk("Full Name", false),
		mk("Email", false),
		mk("Password", true),
		mk("Confirm Password", true),
	}
	inputs[0].Focus()
	return signUpScreen{deps: deps, inputs: inputs}
}

func (s signUpScreen) update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case signedUpMsg:
		s.busy = false
		if msg.Err != nil {
			// Failure keeps the user here with a surfaced error.
			s.errMsg = apperr.UserMessage(msg.Err)
			return s, nil
		}
		return s, func() tea.Msg {
			return navReplaceMsg{Screen: nav.SignIn, Notice: "Account created. Sign in to continue."}
		}

	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return navPopMsg{} }
		case "tab", "down":
			s.focus = (s.focus + 1) % len(s.inputs)
			s.syncFocus()
			return s, nil
		case "shift+tab", "up":
			s.focus = (s.focus + len(s.inputs) - 1) % len(s.inputs)
			s.syncFocus()
			return s, nil
		case "enter":
			return s.submit()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s signUpScreen) submit() (screenModel, tea.Cmd) {
	form := signUpForm{
		FullName: strings.TrimSpace(s.inputs[0].Value()),
		Email:    strings.TrimSpace(s.inputs[1].Value()),
		Password: s.inputs[2].Value(),
		Confirm:  s.inputs[3].Value(),
	}
	if err := form.check(); err != nil {
		s.errMsg = apperr.UserMessage(err)
		return s, nil
	}
	s.errMsg = ""
	s.busy = true
	deps := s.deps
	return s, func() tea.Msg {
		return signedUpMsg{Err: deps.Auth.SignUp(context.Background(), form.FullName, form.Email, form.Password)}
	}
}

func (s *signUpScreen) syncFocus() {
	for i := range s.inputs {
		if i == s.focus {
			s.inputs[i].Focus()
		} else {
			s.inputs[i].Blur()
		}
	}
}

func (s signUpScreen) view(width int) string {
	labels := []string{"Full Name", "Email", "Password", "Confirm Password"}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sign up"))
	b.WriteString("\n\n")
	for i, in := range s.inputs {
		b.WriteString(labelStyle.Render(labels[i]) + "\n" + in.View() + "\n")
	}
	if s.busy {
		b.WriteString("\n" + subtleStyle.Render("Creating account..."))
	}
	b.WriteString(notice(s.errMsg))
	b.WriteString("\n" + helpStyle.Render("enter submit · tab next field · esc back"))
	return b.String()
}
