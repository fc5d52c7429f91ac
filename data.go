package main

import (
	"context"
	"sync"

	"quiz-client/board"
	"quiz-client/config"
	"quiz-client/game"
	qnet "quiz-client/quiz_net"
	w "quiz-client/window"
)

type UIElement struct {
	dirty     bool
	component w.RGComponent
}

type UIStore struct {
	Board    UIElement
	Nickname UIElement
}

func (store *UIStore) SetDirty() {
	store.Board.dirty = true
	store.Nickname.dirty = true
}

type ProgCtx struct {
	Config *config.Config

	Board      *board.Board
	BoardMutex sync.RWMutex

	NetHandler *qnet.NetHandler
	Loop       *game.Loop
	Inputs     chan<- game.UserInputEvent // Render -> Game
	Cancel     context.CancelFunc
	DoneChan   chan error // Game -> Main (to signal shutdown)

	UI    UIStore
	Popup PopupManager
}
