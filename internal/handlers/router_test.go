package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chessdesk/internal/game"
)

// Full flow through the router: new game as white, query legal moves for
// a pawn, play one of them.
func TestRouterGameFlow(t *testing.T) {
	h := NewHandler(game.NewHub())
	r := NewRouter(h)

	do := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", path, strings.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := do("/api/new_game", `{"game_id":"default","human_color":"white"}`)
	var start gameReply
	if err := json.NewDecoder(w.Body).Decode(&start); err != nil {
		t.Fatalf("decode new_game: %v", err)
	}
	if !start.Success || start.ComputerMove != nil {
		t.Fatalf("white opening should succeed with no computer move")
	}

	w = do("/api/legal_moves", `{"game_id":"default","from":"e2"}`)
	var legal struct {
		Success    bool     `json:"success"`
		LegalMoves []string `json:"legal_moves"`
	}
	if err := json.NewDecoder(w.Body).Decode(&legal); err != nil {
		t.Fatalf("decode legal_moves: %v", err)
	}
	if !legal.Success || len(legal.LegalMoves) != 2 {
		t.Fatalf("expected two pawn destinations, got %v", legal.LegalMoves)
	}

	w = do("/api/move", `{"game_id":"default","from":"e2","to":"`+legal.LegalMoves[1]+`"}`)
	var moved gameReply
	if err := json.NewDecoder(w.Body).Decode(&moved); err != nil {
		t.Fatalf("decode move: %v", err)
	}
	if !moved.Success {
		t.Fatalf("move rejected: %q", moved.Error)
	}
	if moved.ComputerMove == nil {
		t.Fatalf("expected a computer reply in the move response")
	}
}

func TestRouterRejectsGet(t *testing.T) {
	h := NewHandler(game.NewHub())
	r := NewRouter(h)

	req := httptest.NewRequest("GET", "/api/new_game", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for GET, got %d", w.Code)
	}
}
