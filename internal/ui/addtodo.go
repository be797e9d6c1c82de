package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todoterm/internal/apperr"
	"todoterm/internal/model"
	"todoterm/internal/nav"
	"todoterm/internal/picker"
)

type addTodoScreen struct {
	deps   Deps
	gen    uint64
	mode   nav.AddMode
	inputs []textinput.Model // title, description, deadline[, image path]
	focus  int
	busy   bool
	errMsg string
}

func newAddTodoScreen(deps Deps, f nav.Frame) addTodoScreen {
	mk := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = placeholder
		ti.CharLimit = 400
		return ti
	}
	inputs := []textinput.Model{
		mk("Title"),
		mk("Description"),
		mk("Deadline (YYYY-MM-DD, empty for none)"),
	}
	if f.Params.AddMode == nav.ModeImage {
		inputs = append(inputs, mk("Image path (empty for none)"))
	}
	inputs[0].Focus()
	return addTodoScreen{deps: deps, gen: f.Gen, mode: f.Params.AddMode, inputs: inputs}
}

func (s addTodoScreen) update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case todoSavedMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = apperr.UserMessage(msg.Err)
			return s, nil
		}
		// The pop is sequenced after the create response; Home refetches
		// on re-entry and observes the new record.
		return s, func() tea.Msg { return navPopMsg{} }

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

func (s addTodoScreen) submit() (screenModel, tea.Cmd) {
	fields := model.Fields{
		Title:       strings.TrimSpace(s.inputs[0].Value()),
		Description: strings.TrimSpace(s.inputs[1].Value()),
	}

	dr := s.deps.DatePicker.Pick(strings.TrimSpace(s.inputs[2].Value()))
	switch dr.Outcome {
	case picker.Failed:
		s.errMsg = "Invalid deadline: " + dr.Reason.Error()
		return s, nil
	case picker.Selected:
		fields.Deadline = dr.Date
	}

	if s.mode == nav.ModeImage {
		ir := s.deps.ImagePicker.Pick(strings.TrimSpace(s.inputs[3].Value()))
		switch ir.Outcome {
		case picker.Failed:
			s.errMsg = "Image: " + ir.Reason.Error()
			return s, nil
		case picker.Selected:
			fields.Attachment = ir.Ref
		}
	}

	s.errMsg = ""
	s.busy = true
	deps, gen := s.deps, s.gen
	return s, func() tea.Msg {
		_, err := deps.Repo.Create(context.Background(), fields)
		return todoSavedMsg{Gen: gen, Err: err}
	}
}

func (s *addTodoScreen) syncFocus() {
	for i := range s.inputs {
		if i == s.focus {
			s.inputs[i].Focus()
		} else {
			s.inputs[i].Blur()
		}
	}
}

func (s addTodoScreen) view(width int) string {
	header := "Add New Todo"
	if s.mode == nav.ModeImage {
		header = "Add Todo with Image"
	}
	labels := []string{"Title", "Description", "Deadline"}
	if s.mode == nav.ModeImage {
		labels = append(labels, "Image")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")
	for i, in := range s.inputs {
		b.WriteString(labelStyle.Render(labels[i]) + "\n" + in.View() + "\n")
	}
	if s.busy {
		b.WriteString("\n" + subtleStyle.Render("Saving..."))
	}
	b.WriteString(notice(s.errMsg))
	b.WriteString("\n" + helpStyle.Render("enter save · tab next field · esc cancel"))
	return b.String()
}
