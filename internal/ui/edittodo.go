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

// editScreen fetches the current record, pre-fills every field, and saves
// with full-replace semantics: whatever is in the fields at save time is
// exactly what the record becomes. Clearing a field clears it remotely.
type editScreen struct {
	deps    Deps
	gen     uint64
	id      string
	inputs  []textinput.Model // title, description, deadline, image ref
	focus   int
	loading bool
	busy    bool
	errMsg  string
}

func newEditScreen(deps Deps, f nav.Frame) editScreen {
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
		mk("Image path (empty for none)"),
	}
	inputs[0].Focus()
	return editScreen{deps: deps, gen: f.Gen, id: f.Params.TodoID, inputs: inputs, loading: true}
}

func (s editScreen) fetch() tea.Cmd {
	deps, gen, id := s.deps, s.gen, s.id
	return func() tea.Msg {
		t, err := deps.Repo.Get(context.Background(), id)
		return todoLoadedMsg{Gen: gen, Todo: t, Err: err}
	}
}

func (s editScreen) update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case todoLoadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = apperr.UserMessage(msg.Err)
			return s, nil
		}
		s.inputs[0].SetValue(msg.Todo.Title)
		s.inputs[1].SetValue(msg.Todo.Description)
		s.inputs[2].SetValue(msg.Todo.Deadline)
		s.inputs[3].SetValue(strings.TrimPrefix(msg.Todo.Attachment, "file://"))
		s.inputs[0].CursorEnd()
		return s, nil

	case todoSavedMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = apperr.UserMessage(msg.Err)
			return s, nil
		}
		// Save lands back on Home; the pop is sequenced after the
		// update response is observed.
		return s, func() tea.Msg { return navPopToMsg{Screen: nav.Home} }

	case tea.KeyMsg:
		if s.busy || s.loading {
			if msg.String() == "esc" {
				return s, func() tea.Msg { return navPopMsg{} }
			}
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

func (s editScreen) submit() (screenModel, tea.Cmd) {
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

	ir := s.deps.ImagePicker.Pick(strings.TrimSpace(s.inputs[3].Value()))
	switch ir.Outcome {
	case picker.Failed:
		s.errMsg = "Image: " + ir.Reason.Error()
		return s, nil
	case picker.Selected:
		fields.Attachment = ir.Ref
	}

	s.errMsg = ""
	s.busy = true
	deps, gen, id := s.deps, s.gen, s.id
	return s, func() tea.Msg {
		return todoSavedMsg{Gen: gen, Err: deps.Repo.Update(context.Background(), id, fields)}
	}
}

func (s *editScreen) syncFocus() {
	for i := range s.inputs {
		if i == s.focus {
			s.inputs[i].Focus()
		} else {
			s.inputs[i].Blur()
		}
	}
}

func (s editScreen) view(width int) string {
	labels := []string{"Title", "Description", "Deadline", "Image"}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Edit Todo"))
	b.WriteString("\n\n")
	if s.loading {
		b.WriteString(subtleStyle.Render("Loading..."))
	} else {
		for i, in := range s.inputs {
			b.WriteString(labelStyle.Render(labels[i]) + "\n" + in.View() + "\n")
		}
	}
	if s.busy {
		b.WriteString("\n" + subtleStyle.Render("Saving..."))
	}
	b.WriteString(notice(s.errMsg))
	b.WriteString("\n" + helpStyle.Render("enter save · tab next field · esc cancel"))
	return b.String()
}
