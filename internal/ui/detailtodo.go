package ui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"todoterm/internal/apperr"
	"todoterm/internal/model"
	"todoterm/internal/nav"
)

type detailScreen struct {
	deps       Deps
	gen        uint64
	id         string
	todo       model.Todo
	loading    bool
	busy       bool
	confirming bool
	errMsg     string
}

func newDetailScreen(deps Deps, f nav.Frame) detailScreen {
	return detailScreen{deps: deps, gen: f.Gen, id: f.Params.TodoID, loading: true}
}

// fetch gets a fresh copy on every entry. A record edited on the screen
// above must show its new fields when we land back here.
func (s detailScreen) fetch() tea.Cmd {
	deps, gen, id := s.deps, s.gen, s.id
	return func() tea.Msg {
		t, err := deps.Repo.Get(context.Background(), id)
		return todoLoadedMsg{Gen: gen, Todo: t, Err: err}
	}
}

func (s detailScreen) update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case todoLoadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = apperr.UserMessage(msg.Err)
			return s, nil
		}
		s.todo = msg.Todo
		s.errMsg = ""
		return s, nil

	case todoDeletedMsg:
		s.busy = false
		// A concurrent delete already removed the record; from this
		// screen's point of view the delete succeeded either way.
		if msg.Err != nil && !errors.Is(msg.Err, apperr.ErrNotFound) {
			s.errMsg = apperr.UserMessage(msg.Err)
			return s, nil
		}
		return s, func() tea.Msg { return navPopToMsg{Screen: nav.Home} }

	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		if s.confirming {
			switch msg.String() {
			case "y", "enter":
				s.confirming = false
				s.busy = true
				deps, gen, id := s.deps, s.gen, s.id
				return s, func() tea.Msg {
					return todoDeletedMsg{Gen: gen, Err: deps.Repo.Delete(context.Background(), id)}
				}
			case "n", "esc":
				s.confirming = false
				return s, nil
			}
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return navPopMsg{} }
		case "e":
			if s.loading || s.errMsg != "" {
				return s, nil
			}
			id := s.id
			return s, func() tea.Msg {
				return navPushMsg{Screen: nav.EditTodo, Params: nav.Params{TodoID: id}}
			}
		case "d":
			if s.loading || s.errMsg != "" {
				return s, nil
			}
			s.confirming = true
			return s, nil
		}
	}
	return s, nil
}

func (s detailScreen) view(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Todo Detail"))
	b.WriteString("\n\n")

	switch {
	case s.loading:
		b.WriteString(subtleStyle.Render("Loading..."))
	case s.errMsg != "":
		b.WriteString(errorStyle.Render("✖ " + s.errMsg))
	default:
		b.WriteString(labelStyle.Render("Title") + "\n  " + s.todo.Title + "\n")
		desc := s.todo.Description
		if desc == "" {
			desc = subtleStyle.Render("(none)")
		}
		b.WriteString(labelStyle.Render("Description") + "\n  " + desc + "\n")
		b.WriteString(labelStyle.Render("Status") + "\n  " + pendingStyle.Render(s.todo.Status) + "\n")
		if s.todo.Deadline != "" {
			b.WriteString(labelStyle.Render("Deadline") + "\n  " + s.todo.Deadline + "\n")
		}
		if s.todo.HasAttachment() {
			b.WriteString(labelStyle.Render("Image") + "\n  " + accentStyle.Render(s.todo.Attachment) + "\n")
		}
	}

	if s.confirming {
		b.WriteString("\n" + modalStyle.Render("Are you sure you want to delete this todo?\n"+
			helpStyle.Render("y delete · n keep")))
	}
	if s.busy {
		b.WriteString("\n" + subtleStyle.Render("Deleting..."))
	}
	b.WriteString("\n" + helpStyle.Render("e edit · d delete · esc back"))
	return b.String()
}
