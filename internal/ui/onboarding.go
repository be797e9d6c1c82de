package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"todoterm/internal/nav"
	"todoterm/internal/session"
)

// onboardingScreen is the initial screen for every cold start. The session
// verdict only changes the hint it shows, not where the stack begins.
type onboardingScreen struct {
	verdict session.Verdict
	cursor  int // 0 = sign in, 1 = sign up
}

func newOnboardingScreen(v session.Verdict) onboardingScreen {
	return onboardingScreen{verdict: v}
}

func (s onboardingScreen) update(msg tea.Msg) (screenModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch key.String() {
	case "up", "k", "down", "j", "tab":
		s.cursor = 1 - s.cursor
	case "enter":
		if s.cursor == 0 {
			return s, func() tea.Msg { return navPushMsg{Screen: nav.SignIn} }
		}
		return s, func() tea.Msg { return navPushMsg{Screen: nav.SignUp} }
	case "q":
		return s, tea.Quit
	}
	return s, nil
}

func (s onboardingScreen) view(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("TO DO LIST"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Your tasks, one terminal away."))
	b.WriteString("\n\n")

	choices := []string{"Sign in", "Sign up"}
	for i, c := range choices {
		prefix := "  "
		if i == s.cursor {
			prefix = selectedStyle.Render("> ")
		}
		b.WriteString(prefix + c + "\n")
	}

	if s.verdict == session.Authenticated {
		b.WriteString("\n" + accentStyle.Render("A session is already stored; sign in to continue."))
	}
	b.WriteString("\n" + helpStyle.Render("enter select · tab switch · q quit"))
	return b.String()
}
