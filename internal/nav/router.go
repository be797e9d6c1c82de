// Package nav models screen navigation as an explicit stack of frames with
// push, pop and reset as the only mutators, so transition legality is
// testable without a UI harness.
package nav

import (
	"errors"
	"fmt"

	"todoterm/internal/session"
)

// Screen names a navigable state.
type Screen string

const (
	Onboarding Screen = "onboarding"
	SignIn     Screen = "signin"
	SignUp     Screen = "signup"
	Home       Screen = "home"
	AddTodo    Screen = "addtodo"
	EditTodo   Screen = "edittodo"
	DetailTodo Screen = "detailtodo"
)

// AddMode hints AddTodo whether the image affordance is shown.
type AddMode string

const (
	ModeText  AddMode = "text"
	ModeImage AddMode = "image"
)

// Params is the typed parameter bag carried by a frame. Immutable once
// pushed: a screen that needs fresh params is re-pushed, not mutated.
type Params struct {
	TodoID  string
	AddMode AddMode
}

// Frame is one entry in the screen stack.
type Frame struct {
	Screen Screen
	Params Params
	// Gen distinguishes re-entries to the same screen so late responses
	// from a popped frame can be discarded.
	Gen uint64
}

var (
	ErrNotStarted        = errors.New("router not started")
	ErrBottomOfStack     = errors.New("cannot pop the last frame")
	ErrIllegalTransition = errors.New("illegal transition")
)

// legal lists, per source screen, which screens may be pushed on top of it.
var legal = map[Screen][]Screen{
	Onboarding: {SignIn, SignUp},
	SignUp:     {SignIn},
	Home:       {AddTodo, DetailTodo},
	DetailTodo: {EditTodo},
}

// Router owns stack order and depth. Screens never mutate the stack
// directly; they request transitions through these methods.
type Router struct {
	frames  []Frame
	verdict session.Verdict
	nextGen uint64
}

// New returns an unstarted router. While the session verdict is Unknown the
// stack stays empty and nothing navigable may render.
func New() *Router {
	return &Router{verdict: session.Unknown}
}

// Start seeds the stack once the session verdict is resolved. The initial
// screen is Onboarding regardless of verdict; the verdict only changes which
// affordances Onboarding offers. Starting with Unknown is rejected.
func (r *Router) Start(v session.Verdict) error {
	if v == session.Unknown {
		return fmt.Errorf("start: verdict still unknown")
	}
	r.verdict = v
	r.frames = []Frame{{Screen: Onboarding, Gen: r.gen()}}
	return nil
}

// Started reports whether the initial frame has been seeded.
func (r *Router) Started() bool { return len(r.frames) > 0 }

// Verdict returns the session verdict the router was started with.
func (r *Router) Verdict() session.Verdict { return r.verdict }

// Current returns the top frame.
func (r *Router) Current() (Frame, error) {
	if len(r.frames) == 0 {
		return Frame{}, ErrNotStarted
	}
	return r.frames[len(r.frames)-1], nil
}

// Depth returns the stack depth.
func (r *Router) Depth() int { return len(r.frames) }

// Push adds a frame on top of the stack if the transition is legal from the
// current screen.
func (r *Router) Push(s Screen, p Params) (Frame, error) {
	cur, err := r.Current()
	if err != nil {
		return Frame{}, err
	}
	if !allowed(cur.Screen, s) {
		return Frame{}, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, cur.Screen, s)
	}
	f := Frame{Screen: s, Params: p, Gen: r.gen()}
	r.frames = append(r.frames, f)
	return f, nil
}

// Pop removes the top frame and returns the newly exposed one, with a fresh
// generation so re-entered screens can refetch. Popping the last frame is a
// rejected no-op.
func (r *Router) Pop() (Frame, error) {
	if len(r.frames) == 0 {
		return Frame{}, ErrNotStarted
	}
	if len(r.frames) == 1 {
		return Frame{}, ErrBottomOfStack
	}
	r.frames = r.frames[:len(r.frames)-1]
	top := &r.frames[len(r.frames)-1]
	top.Gen = r.gen()
	return *top, nil
}

// PopTo pops frames until s is on top and returns it with a fresh
// generation. Rejected when s is not in the stack; popping zero frames (s
// already on top) is also rejected, same as Pop on the bottom frame.
func (r *Router) PopTo(s Screen) (Frame, error) {
	if len(r.frames) == 0 {
		return Frame{}, ErrNotStarted
	}
	for i := len(r.frames) - 2; i >= 0; i-- {
		if r.frames[i].Screen == s {
			r.frames = r.frames[:i+1]
			top := &r.frames[len(r.frames)-1]
			top.Gen = r.gen()
			return *top, nil
		}
	}
	return Frame{}, fmt.Errorf("%w: %s not below the top", ErrIllegalTransition, s)
}

// Reset discards the entire back-stack and replaces it with a single frame.
// Used by SignIn -> Home so back-navigation from Home never lands on SignIn.
func (r *Router) Reset(s Screen, p Params) Frame {
	f := Frame{Screen: s, Params: p, Gen: r.gen()}
	r.frames = []Frame{f}
	return f
}

// ReplaceTop swaps the top frame for another screen at the same depth. Used
// by SignUp -> SignIn on successful account creation.
func (r *Router) ReplaceTop(s Screen, p Params) (Frame, error) {
	cur, err := r.Current()
	if err != nil {
		return Frame{}, err
	}
	if !allowed(cur.Screen, s) {
		return Frame{}, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, cur.Screen, s)
	}
	f := Frame{Screen: s, Params: p, Gen: r.gen()}
	r.frames[len(r.frames)-1] = f
	return f, nil
}

func (r *Router) gen() uint64 {
	r.nextGen++
	return r.nextGen
}

func allowed(from, to Screen) bool {
	for _, s := range legal[from] {
		if s == to {
			return true
		}
	}
	return false
}
