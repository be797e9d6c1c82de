package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"todoterm/internal/apperr"
	"todoterm/internal/model"
	"todoterm/internal/nav"
)

// todoItem adapts a model.Todo to bubbles/list.Item.
type todoItem struct{ t model.Todo }

func (i todoItem) Title() string       { return i.t.Title }
func (i todoItem) Description() string { return i.t.Description }
func (i todoItem) FilterValue() string { return i.t.Title }

// todoDelegate renders one todo as a compact two-line entry:
// title, then description with the optional deadline and attachment marker.
type todoDelegate struct{}

func (d todoDelegate) Height() int                               { return 2 }
func (d todoDelegate) Spacing() int                              { return 0 }
func (d todoDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d todoDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(todoItem)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	title := it.t.Title
	meta := it.t.Description
	if it.t.Deadline != "" {
		if meta != "" {
			meta += "  "
		}
		meta += pendingStyle.Render("due " + it.t.Deadline)
	}
	if it.t.HasAttachment() {
		meta += accentStyle.Render(" ⌘")
	}
	if meta == "" {
		meta = subtleStyle.Render("(no description)")
	}
	fmt.Fprintf(w, "%s%s\n   %s\n", prefix, title, meta)
}

type homeScreen struct {
	deps    Deps
	gen     uint64
	list    list.Model
	loaded  bool
	loading bool
	errMsg  string
}

func newHomeScreen(deps Deps, gen uint64) homeScreen {
	l := list.New(nil, todoDelegate{}, 0, 0)
	l.Title = titleStyle.Render("TO DO LIST")
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")
	l.SetSize(60, 14)
	return homeScreen{deps: deps, gen: gen, list: l, loading: true}
}

// fetch re-lists from the remote store. Home fetches on every entry to this
// frame, not just the first: another screen's create, update or delete may
// have changed remote state in between.
func (s homeScreen) fetch() tea.Cmd {
	deps, gen := s.deps, s.gen
	return func() tea.Msg {
		todos, err := deps.Repo.List(context.Background())
		return todosLoadedMsg{Gen: gen, Todos: todos, Err: err}
	}
}

func (s homeScreen) update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case todosLoadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.loaded = false
			s.errMsg = apperr.UserMessage(msg.Err)
			return s, nil
		}
		s.loaded = true
		s.errMsg = ""
		items := make([]list.Item, 0, len(msg.Todos))
		for _, t := range msg.Todos {
			items = append(items, todoItem{t: t})
		}
		s.list.SetItems(items)
		return s, nil

	case tea.WindowSizeMsg:
		s.list.SetSize(msg.Width-6, msg.Height-8)
		return s, nil

	case tea.KeyMsg:
		if s.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q":
			return s, tea.Quit
		case "esc":
			// Home is the bottom frame after the sign-in reset; the
			// pop request is rejected upstream and nothing happens.
			return s, func() tea.Msg { return navPopMsg{} }
		case "r":
			s.loading = true
			s.errMsg = ""
			return s, s.fetch()
		case "a":
			return s, func() tea.Msg {
				return navPushMsg{Screen: nav.AddTodo, Params: nav.Params{AddMode: nav.ModeText}}
			}
		case "i":
			return s, func() tea.Msg {
				return navPushMsg{Screen: nav.AddTodo, Params: nav.Params{AddMode: nav.ModeImage}}
			}
		case "enter":
			if it, ok := s.list.SelectedItem().(todoItem); ok {
				id := it.t.ID
				return s, func() tea.Msg {
					return navPushMsg{Screen: nav.DetailTodo, Params: nav.Params{TodoID: id}}
				}
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s homeScreen) view(width int) string {
	var b strings.Builder
	switch {
	case s.loading:
		b.WriteString(titleStyle.Render("TO DO LIST") + "\n\n")
		b.WriteString(subtleStyle.Render("Loading todos..."))
	case s.errMsg != "":
		b.WriteString(titleStyle.Render("TO DO LIST") + "\n\n")
		b.WriteString(errorStyle.Render("✖ " + s.errMsg))
		b.WriteString("\n" + subtleStyle.Render("Press r to retry."))
	default:
		b.WriteString(s.list.View())
	}
	b.WriteString("\n" + helpStyle.Render("enter open · a add · i add with image · r refresh · q quit"))
	return b.String()
}
