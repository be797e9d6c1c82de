package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoterm/internal/session"
)

func TestRouterStart(t *testing.T) {
	r := New()
	assert.False(t, r.Started())

	_, err := r.Current()
	assert.ErrorIs(t, err, ErrNotStarted)

	require.Error(t, r.Start(session.Unknown), "unknown verdict must not seed the stack")
	assert.False(t, r.Started())

	require.NoError(t, r.Start(session.Authenticated))
	cur, err := r.Current()
	require.NoError(t, err)
	assert.Equal(t, Onboarding, cur.Screen, "initial screen is Onboarding regardless of verdict")
	assert.Equal(t, session.Authenticated, r.Verdict())
}

func TestPushLegality(t *testing.T) {
	cases := []struct {
		name  string
		stack []Screen
		to    Screen
		ok    bool
	}{
		{"onboarding to signin", []Screen{Onboarding}, SignIn, true},
		{"onboarding to signup", []Screen{Onboarding}, SignUp, true},
		{"onboarding straight to home", []Screen{Onboarding}, Home, false},
		{"home to addtodo", []Screen{Home}, AddTodo, true},
		{"home to detail", []Screen{Home}, DetailTodo, true},
		{"home to edit directly", []Screen{Home}, EditTodo, false},
		{"detail to edit", []Screen{Home, DetailTodo}, EditTodo, true},
		{"signin to signup", []Screen{Onboarding, SignIn}, SignUp, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := routerWith(t, tc.stack...)
			_, err := r.Push(tc.to, Params{})
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrIllegalTransition)
			}
		})
	}
}

func TestPushPopRestoresHome(t *testing.T) {
	r := routerWith(t, Home)
	home, err := r.Current()
	require.NoError(t, err)

	_, err = r.Push(AddTodo, Params{AddMode: ModeImage})
	require.NoError(t, err)
	cur, err := r.Current()
	require.NoError(t, err)
	assert.Equal(t, AddTodo, cur.Screen)
	assert.Equal(t, ModeImage, cur.Params.AddMode)

	back, err := r.Pop()
	require.NoError(t, err)
	assert.Equal(t, Home, back.Screen)
	assert.Equal(t, home.Params, back.Params, "frame params survive the round trip")
	assert.NotEqual(t, home.Gen, back.Gen, "re-entry gets a fresh generation so the list refetches")
	assert.Equal(t, 1, r.Depth())
}

func TestResetClearsBackStack(t *testing.T) {
	r := New()
	require.NoError(t, r.Start(session.Unauthenticated))
	_, err := r.Push(SignIn, Params{})
	require.NoError(t, err)

	f := r.Reset(Home, Params{})
	assert.Equal(t, Home, f.Screen)
	assert.Equal(t, 1, r.Depth())

	// Back from Home after the sign-in reset is a rejected no-op.
	_, err = r.Pop()
	assert.ErrorIs(t, err, ErrBottomOfStack)
	cur, err := r.Current()
	require.NoError(t, err)
	assert.Equal(t, Home, cur.Screen)
}

func TestReplaceTop(t *testing.T) {
	r := routerWith(t, Onboarding, SignUp)

	f, err := r.ReplaceTop(SignIn, Params{})
	require.NoError(t, err)
	assert.Equal(t, SignIn, f.Screen)
	assert.Equal(t, 2, r.Depth(), "replace keeps the depth")

	back, err := r.Pop()
	require.NoError(t, err)
	assert.Equal(t, Onboarding, back.Screen)
}

func TestPopTo(t *testing.T) {
	r := routerWith(t, Home, DetailTodo, EditTodo)

	f, err := r.PopTo(Home)
	require.NoError(t, err)
	assert.Equal(t, Home, f.Screen)
	assert.Equal(t, 1, r.Depth())

	// Home is not below itself anymore.
	_, err = r.PopTo(Home)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestParamsImmutableOnRePush(t *testing.T) {
	r := routerWith(t, Home)
	first, err := r.Push(DetailTodo, Params{TodoID: "a"})
	require.NoError(t, err)

	_, err = r.Pop()
	require.NoError(t, err)
	second, err := r.Push(DetailTodo, Params{TodoID: "b"})
	require.NoError(t, err)

	assert.Equal(t, "a", first.Params.TodoID)
	assert.Equal(t, "b", second.Params.TodoID)
	assert.NotEqual(t, first.Gen, second.Gen)
}

// routerWith builds a router whose stack is exactly screens, bypassing the
// legality table so tests can stage arbitrary positions.
func routerWith(t *testing.T, screens ...Screen) *Router {
	t.Helper()
	r := New()
	require.NoError(t, r.Start(session.Unauthenticated))
	r.frames = r.frames[:0]
	for _, s := range screens {
		r.frames = append(r.frames, Frame{Screen: s, Gen: r.gen()})
	}
	return r
}
