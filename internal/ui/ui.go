// Package ui is the tview front end. It owns no game logic: clicks are
// translated by the board state machine and everything authoritative
// comes back from the service.
package ui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"chessdesk/internal/api"
	"chessdesk/internal/board"
)

// replyDelay paces the display of the computer's reply. Cosmetic only.
const replyDelay = 300 * time.Millisecond

type UI struct {
	App     *tview.Application
	Pages   *tview.Pages
	Board   *tview.Table
	Status  *tview.TextView
	History *tview.TextView

	client *api.Client
	state  *board.State
}

// New builds the application layout around the given api client.
func New(client *api.Client) *UI {
	ui := &UI{
		App:    tview.NewApplication(),
		client: client,
		state:  board.NewState(),
	}

	ui.Board = tview.NewTable()
	ui.Board.SetSelectable(true, true)
	ui.Board.Select(0, 1)
	ui.Board.SetSelectedFunc(ui.onSquareSelected)
	// Escape abandons the game and returns to the side picker. The reset
	// bumps the game generation, so a pending reply timer dies with it.
	ui.Board.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			ui.state.Reset()
			ui.render()
			ui.Pages.SwitchToPage("menu")
		}
	})

	ui.Status = tview.NewTextView()
	ui.Status.SetTextAlign(tview.AlignCenter)

	ui.History = tview.NewTextView()
	ui.History.SetBorder(true)
	ui.History.SetTitle(" Moves ")

	gameLayout := tview.NewGrid().
		SetRows(3, -1).
		SetColumns(-1, 22, 26, -1).
		AddItem(ui.Status, 0, 0, 1, 4, 0, 0, false).
		AddItem(ui.Board, 1, 1, 1, 1, 0, 0, true).
		AddItem(ui.History, 1, 2, 1, 1, 0, 0, false)

	menu := tview.NewModal().
		SetText("chessdesk\n\nPlay chess against the computer.").
		AddButtons([]string{"Play as White", "Play as Black", "Quit"}).
		SetDoneFunc(func(index int, label string) {
			switch index {
			case 0:
				ui.StartNewGame("white")
			case 1:
				ui.StartNewGame("black")
			default:
				ui.App.Stop()
			}
		})

	ui.Pages = tview.NewPages().
		AddPage("menu", menu, true, true).
		AddPage("game", gameLayout, true, false)

	ui.App.SetRoot(ui.Pages, true).EnableMouse(true)
	return ui
}

// Run starts the event loop and blocks until the application stops.
func (ui *UI) Run() error {
	return ui.App.Run()
}

// StartNewGame asks the service for a fresh session and switches to the
// board once the opening snapshot arrives.
func (ui *UI) StartNewGame(color string) {
	go func() {
		resp, err := ui.client.NewGame(board.DefaultGameID, color)
		ui.App.QueueUpdateDraw(func() {
			if err != nil {
				log.Printf("new game: %v", err)
				ui.showAlert(fmt.Sprintf("New game failed: %v", err))
				return
			}
			ui.state.StartGame(color, resp)
			ui.Pages.SwitchToPage("game")
			ui.render()
		})
	}()
}

// onSquareSelected feeds a board click through the state machine.
func (ui *UI) onSquareSelected(row, col int) {
	pos, ok := ui.cellPosition(row, col)
	if !ok {
		return
	}
	action, from := ui.state.HandleSquareClick(pos)
	switch action {
	case board.ActionSelect:
		ui.render()
		ui.fetchLegalMoves(pos, ui.state.SelectionGen())
	case board.ActionDeselect:
		ui.render()
	case board.ActionMove:
		ui.submitMove(from, pos)
	}
}

// fetchLegalMoves loads highlight targets for a fresh selection. The
// generation keys the response to that selection; a click issued in the
// meantime makes the result a no-op.
func (ui *UI) fetchLegalMoves(from string, gen int) {
	go func() {
		moves, err := ui.client.LegalMoves(board.DefaultGameID, from)
		ui.App.QueueUpdateDraw(func() {
			if err != nil {
				log.Printf("legal moves for %s: %v", from, err)
				return
			}
			if ui.state.ApplyLegalMoves(gen, moves) {
				ui.render()
			}
		})
	}()
}

// submitMove sends the move and applies the resulting snapshot. A
// rejection pops the server's reason; a transport failure lands in the
// status line.
func (ui *UI) submitMove(from, to string) {
	go func() {
		resp, err := ui.client.Move(board.DefaultGameID, from, to)
		ui.App.QueueUpdateDraw(func() {
			var rejected *api.RejectedError
			if errors.As(err, &rejected) {
				ui.state.ClearSelection()
				ui.render()
				ui.showAlert(rejected.Reason)
				return
			}
			if err != nil {
				log.Printf("move %s%s: %v", from, to, err)
				ui.state.ClearSelection()
				ui.render()
				ui.showStatusError(fmt.Sprintf("Move failed: %v", err))
				return
			}

			ui.state.ApplyMoveResult(from, to, resp)
			ui.render()

			if ui.state.ReplyPending() {
				gen := ui.state.GameGen()
				time.AfterFunc(replyDelay, func() {
					ui.App.QueueUpdateDraw(func() {
						if ui.state.RecordReply(gen) {
							ui.render()
						}
					})
				})
			}
		})
	}()
}

// showAlert blocks the board behind a modal carrying the server's error.
func (ui *UI) showAlert(msg string) {
	modal := tview.NewModal().
		SetText(msg).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(index int, label string) {
			ui.Pages.RemovePage("alert")
		})
	ui.Pages.AddPage("alert", modal, true, true)
}

func (ui *UI) showStatusError(msg string) {
	ui.Status.SetText(msg)
	ui.Status.SetBackgroundColor(tcell.ColorDarkRed)
}
