package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/notnil/chess"

	"chessdesk/internal/game"
)

type gameReply struct {
	Success       bool                  `json:"success"`
	GameID        string                `json:"game_id"`
	Board         [8][8]*game.PieceView `json:"board"`
	CurrentPlayer string                `json:"current_player"`
	GameOver      bool                  `json:"game_over"`
	InCheck       bool                  `json:"in_check"`
	Winner        string                `json:"winner"`
	ComputerMove  *game.MovePair        `json:"computer_move"`
	Error         string                `json:"error"`
}

func postJSON(t *testing.T, fn func(w *httptest.ResponseRecorder)) gameReply {
	t.Helper()
	w := httptest.NewRecorder()
	fn(w)
	var resp gameReply
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func TestHandleNewGameAsWhite(t *testing.T) {
	h := NewHandler(game.NewHub())

	resp := postJSON(t, func(w *httptest.ResponseRecorder) {
		req := httptest.NewRequest("POST", "/api/new_game", strings.NewReader(`{"game_id":"default","human_color":"white"}`))
		h.HandleNewGame(w, req)
	})

	if !resp.Success {
		t.Fatalf("expected success, got error %q", resp.Error)
	}
	if resp.GameID != "default" {
		t.Fatalf("expected the requested game id back, got %q", resp.GameID)
	}
	if resp.ComputerMove != nil {
		t.Fatalf("white moves first; no computer move expected, got %+v", resp.ComputerMove)
	}
	if resp.CurrentPlayer != "white" {
		t.Fatalf("expected white to move, got %s", resp.CurrentPlayer)
	}
	if p := resp.Board[6][4]; p == nil || p.Type != "pawn" || p.Color != "white" {
		t.Fatalf("e2 should hold a white pawn, got %+v", p)
	}
}

func TestHandleNewGameAsBlack(t *testing.T) {
	h := NewHandler(game.NewHub())

	resp := postJSON(t, func(w *httptest.ResponseRecorder) {
		req := httptest.NewRequest("POST", "/api/new_game", strings.NewReader(`{"game_id":"default","human_color":"black"}`))
		h.HandleNewGame(w, req)
	})

	if !resp.Success {
		t.Fatalf("expected success, got error %q", resp.Error)
	}
	if resp.ComputerMove == nil {
		t.Fatalf("computer plays the opening move when the human is black")
	}
	if resp.CurrentPlayer != "black" {
		t.Fatalf("human to move after the opening reply, got %s", resp.CurrentPlayer)
	}
}

func TestHandleNewGameMintsID(t *testing.T) {
	h := NewHandler(game.NewHub())

	resp := postJSON(t, func(w *httptest.ResponseRecorder) {
		req := httptest.NewRequest("POST", "/api/new_game", strings.NewReader(`{"human_color":"white"}`))
		h.HandleNewGame(w, req)
	})

	if resp.GameID == "" {
		t.Fatalf("expected a minted game id for an empty request id")
	}
	if _, ok := h.Hub.Get(resp.GameID); !ok {
		t.Fatalf("minted id should resolve to a session")
	}
}

func TestHandleLegalMovesUnknownGame(t *testing.T) {
	h := NewHandler(game.NewHub())

	req := httptest.NewRequest("POST", "/api/legal_moves", strings.NewReader(`{"game_id":"nope","from":"e2"}`))
	w := httptest.NewRecorder()
	h.HandleLegalMoves(w, req)

	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["success"].(bool) {
		t.Fatalf("expected failure for unknown game")
	}
	if resp["error"] != "Game not found" {
		t.Fatalf("expected 'Game not found', got %q", resp["error"])
	}
}

func TestHandleLegalMoves(t *testing.T) {
	hub := game.NewHub()
	h := NewHandler(hub)
	hub.Create("g1", chess.White)

	req := httptest.NewRequest("POST", "/api/legal_moves", strings.NewReader(`{"game_id":"g1","from":"e2"}`))
	w := httptest.NewRecorder()
	h.HandleLegalMoves(w, req)

	var resp struct {
		Success    bool     `json:"success"`
		LegalMoves []string `json:"legal_moves"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success")
	}
	if len(resp.LegalMoves) != 2 {
		t.Fatalf("expected e3 and e4, got %v", resp.LegalMoves)
	}
}

func TestHandleLegalMovesBadPosition(t *testing.T) {
	hub := game.NewHub()
	h := NewHandler(hub)
	hub.Create("g1", chess.White)

	req := httptest.NewRequest("POST", "/api/legal_moves", strings.NewReader(`{"game_id":"g1","from":"e99"}`))
	w := httptest.NewRecorder()
	h.HandleLegalMoves(w, req)

	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["success"].(bool) {
		t.Fatalf("expected failure for malformed position")
	}
	if resp["error"] != "Position must be in format like 'e4'" {
		t.Fatalf("unexpected error string %q", resp["error"])
	}
}

func TestHandleMoveSuccess(t *testing.T) {
	hub := game.NewHub()
	h := NewHandler(hub)
	hub.Create("g1", chess.White)

	resp := postJSON(t, func(w *httptest.ResponseRecorder) {
		req := httptest.NewRequest("POST", "/api/move", strings.NewReader(`{"game_id":"g1","from":"e2","to":"e4"}`))
		h.HandleMove(w, req)
	})

	if !resp.Success {
		t.Fatalf("expected move to succeed, got %q", resp.Error)
	}
	if resp.Board[6][4] != nil {
		t.Fatalf("e2 should be empty after the move")
	}
	if p := resp.Board[4][4]; p == nil || p.Type != "pawn" || p.Color != "white" {
		t.Fatalf("e4 should hold the white pawn, got %+v", p)
	}
	if resp.ComputerMove == nil {
		t.Fatalf("expected a computer reply")
	}
	if resp.CurrentPlayer != "white" {
		t.Fatalf("back to the human after the reply, got %s", resp.CurrentPlayer)
	}
}

func TestHandleMoveInvalid(t *testing.T) {
	hub := game.NewHub()
	h := NewHandler(hub)
	hub.Create("g1", chess.White)

	resp := postJSON(t, func(w *httptest.ResponseRecorder) {
		req := httptest.NewRequest("POST", "/api/move", strings.NewReader(`{"game_id":"g1","from":"e2","to":"e5"}`))
		h.HandleMove(w, req)
	})

	if resp.Success {
		t.Fatalf("expected rejection for e2e5")
	}
	if resp.Error != "Invalid move" {
		t.Fatalf("expected 'Invalid move', got %q", resp.Error)
	}
}

func TestHandleMoveUnknownGame(t *testing.T) {
	h := NewHandler(game.NewHub())

	resp := postJSON(t, func(w *httptest.ResponseRecorder) {
		req := httptest.NewRequest("POST", "/api/move", strings.NewReader(`{"game_id":"nope","from":"e2","to":"e4"}`))
		h.HandleMove(w, req)
	})

	if resp.Success || resp.Error != "Game not found" {
		t.Fatalf("expected 'Game not found', got success=%v error=%q", resp.Success, resp.Error)
	}
}
