package ui

import (
	"todoterm/internal/model"
	"todoterm/internal/nav"
	"todoterm/internal/session"
)

// --- Tea messages ---

// verdictMsg delivers the one-shot session resolution that unblocks the
// router.
type verdictMsg struct{ Verdict session.Verdict }

// framed is implemented by every message carrying remote data for a specific
// frame. The app discards messages whose generation no longer matches the top
// frame, so responses arriving after a pop are safely dropped.
type framed interface{ frameGen() uint64 }

type todosLoadedMsg struct {
	Gen   uint64
	Todos []model.Todo
	Err   error
}

func (m todosLoadedMsg) frameGen() uint64 { return m.Gen }

type todoLoadedMsg struct {
	Gen  uint64
	Todo model.Todo
	Err  error
}

func (m todoLoadedMsg) frameGen() uint64 { return m.Gen }

type todoSavedMsg struct {
	Gen uint64
	Err error
}

func (m todoSavedMsg) frameGen() uint64 { return m.Gen }

type todoDeletedMsg struct {
	Gen uint64
	Err error
}

func (m todoDeletedMsg) frameGen() uint64 { return m.Gen }

type signedInMsg struct{ Err error }

type signedUpMsg struct{ Err error }

// --- Navigation requests ---
//
// Screens never touch the router; they emit one of these and the app applies
// the transition.

type navPushMsg struct {
	Screen nav.Screen
	Params nav.Params
}

type navPopMsg struct{}

type navPopToMsg struct{ Screen nav.Screen }

type navResetMsg struct {
	Screen nav.Screen
	Params nav.Params
}

type navReplaceMsg struct {
	Screen nav.Screen
	Params nav.Params
	Notice string
}
