// Package ui is the bubbletea front end: one App model that renders the top
// navigation frame and seven screen models behind it. Screens never touch
// the router or each other; they emit navigation request messages and the
// app applies the transition.
package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"todoterm/internal/nav"
	"todoterm/internal/picker"
	"todoterm/internal/session"
	"todoterm/internal/todo"
)

// AuthClient is the authentication collaborator the sign-in/sign-up screens
// call. Satisfied by api.Client.
type AuthClient interface {
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, fullName, email, password string) error
}

// Deps bundles the collaborators every screen may need.
type Deps struct {
	Repo        *todo.Repository
	Auth        AuthClient
	Resolver    *session.Resolver
	DatePicker  picker.DatePicker
	ImagePicker picker.ImagePicker
	Log         zerolog.Logger
}

// screenModel is what each screen implements. update returns the replacement
// screen value plus any command, mirroring the bubbletea Model contract.
type screenModel interface {
	update(msg tea.Msg) (screenModel, tea.Cmd)
	view(width int) string
}

// App owns the router and the live screen model for the top frame.
type App struct {
	deps   Deps
	router *nav.Router
	screen screenModel
	width  int
	height int
}

func NewApp(deps Deps) App {
	return App{deps: deps, router: nav.New(), width: 80, height: 24}
}

// Init kicks off the single session resolution. Until the verdict message
// arrives the view stays blank; no navigable UI may render on an Unknown
// verdict.
func (a App) Init() tea.Cmd {
	return func() tea.Msg {
		return verdictMsg{Verdict: a.deps.Resolver.Resolve(context.Background())}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case verdictMsg:
		if err := a.router.Start(msg.Verdict); err != nil {
			a.deps.Log.Error().Err(err).Msg("router start")
			return a, tea.Quit
		}
		frame, _ := a.router.Current()
		return a.enter(frame, "")

	case navPushMsg:
		frame, err := a.router.Push(msg.Screen, msg.Params)
		if err != nil {
			a.deps.Log.Warn().Err(err).Msg("push rejected")
			return a, nil
		}
		return a.enter(frame, "")

	case navPopMsg:
		frame, err := a.router.Pop()
		if err != nil {
			// Back on the bottom frame is a no-op, not a crash.
			if !errors.Is(err, nav.ErrBottomOfStack) {
				a.deps.Log.Warn().Err(err).Msg("pop rejected")
			}
			return a, nil
		}
		return a.enter(frame, "")

	case navPopToMsg:
		frame, err := a.router.PopTo(msg.Screen)
		if err != nil {
			a.deps.Log.Warn().Err(err).Msg("pop-to rejected")
			return a, nil
		}
		return a.enter(frame, "")

	case navResetMsg:
		frame := a.router.Reset(msg.Screen, msg.Params)
		return a.enter(frame, "")

	case navReplaceMsg:
		frame, err := a.router.ReplaceTop(msg.Screen, msg.Params)
		if err != nil {
			a.deps.Log.Warn().Err(err).Msg("replace rejected")
			return a, nil
		}
		return a.enter(frame, msg.Notice)
	}

	// Liveness guard: a response for a frame that is no longer on top
	// belongs to a popped screen and is discarded.
	if fm, ok := msg.(framed); ok {
		cur, err := a.router.Current()
		if err != nil || fm.frameGen() != cur.Gen {
			a.deps.Log.Debug().Uint64("gen", fm.frameGen()).Msg("dropping stale response")
			return a, nil
		}
	}

	if a.screen == nil {
		return a, nil
	}
	var cmd tea.Cmd
	a.screen, cmd = a.screen.update(msg)
	return a, cmd
}

// enter builds the screen model for a frame and fires its entry command.
// Screens that show remote state fetch on every entry, re-entries included:
// remote state may have changed through another screen in between.
func (a App) enter(f nav.Frame, note string) (App, tea.Cmd) {
	switch f.Screen {
	case nav.Onboarding:
		a.screen = newOnboardingScreen(a.router.Verdict())
	case nav.SignIn:
		s := newSignInScreen(a.deps)
		s.note = note
		a.screen = s
	case nav.SignUp:
		a.screen = newSignUpScreen(a.deps)
	case nav.Home:
		s := newHomeScreen(a.deps, f.Gen)
		a.screen = s
		return a, s.fetch()
	case nav.AddTodo:
		a.screen = newAddTodoScreen(a.deps, f)
	case nav.DetailTodo:
		s := newDetailScreen(a.deps, f)
		a.screen = s
		return a, s.fetch()
	case nav.EditTodo:
		s := newEditScreen(a.deps, f)
		a.screen = s
		return a, s.fetch()
	}
	return a, nil
}

func (a App) View() string {
	if !a.router.Started() || a.screen == nil {
		return ""
	}
	inner := a.screen.view(a.width - 4)
	return panelStyle.Render(inner)
}
