package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/notnil/chess"

	"chessdesk/internal/game"
	"chessdesk/internal/logging"
)

// Handler contains dependencies for HTTP handlers.
type Handler struct {
	Hub *game.Hub
}

// NewHandler creates a new handler instance.
func NewHandler(hub *game.Hub) *Handler {
	return &Handler{Hub: hub}
}

// snapshotResponse merges a snapshot into the common success envelope.
func snapshotResponse(gameID string, snap game.Snapshot, reply *game.MovePair) map[string]any {
	return map[string]any{
		"success":        true,
		"game_id":        gameID,
		"board":          snap.Board,
		"current_player": snap.CurrentPlayer,
		"game_over":      snap.GameOver,
		"in_check":       snap.InCheck,
		"winner":         snap.Winner,
		"computer_move":  reply,
	}
}

func writeFailure(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusOK, map[string]any{"success": false, "error": msg})
}

// HandleNewGame resets or creates a session and, when the computer owns
// the opening move, plays it before responding.
func (h *Handler) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	var req game.NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "bad json"})
		return
	}

	id := req.GameID
	if id == "" {
		id = uuid.NewString()
	}

	humanColor := chess.Black
	if req.HumanColor == "white" {
		humanColor = chess.White
	}

	s := h.Hub.Create(id, humanColor)
	logging.Debugf("new game %s, human plays %s", id, req.HumanColor)

	var reply *game.MovePair
	if s.ComputerTurn() {
		reply = s.PlayComputerMove()
	}

	WriteJSON(w, http.StatusOK, snapshotResponse(id, s.State(), reply))
}

// HandleLegalMoves returns the destinations for the piece on the
// requested square.
func (h *Handler) HandleLegalMoves(w http.ResponseWriter, r *http.Request) {
	var req game.LegalMovesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "bad json"})
		return
	}

	s, ok := h.Hub.Get(req.GameID)
	if !ok {
		writeFailure(w, "Game not found")
		return
	}

	from, err := game.ParsePosition(req.From)
	if err != nil {
		writeFailure(w, err.Error())
		return
	}

	s.Touch()
	WriteJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"legal_moves": s.LegalMovesFrom(from),
	})
}

// HandleMove applies the human move and then the computer's reply.
func (h *Handler) HandleMove(w http.ResponseWriter, r *http.Request) {
	var req game.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "bad json"})
		return
	}

	s, ok := h.Hub.Get(req.GameID)
	if !ok {
		writeFailure(w, "Game not found")
		return
	}

	from, err := game.ParsePosition(req.From)
	if err != nil {
		writeFailure(w, err.Error())
		return
	}
	if _, err := game.ParsePosition(req.To); err != nil {
		writeFailure(w, err.Error())
		return
	}

	uci := req.From + req.To
	uci = appendPromotionIfPawn(s, from, uci)

	s.Touch()

	if err := s.MakeMove(uci); err != nil {
		logging.Debugf("move %s rejected: %v", uci, err)
		writeFailure(w, "Invalid move")
		return
	}

	var reply *game.MovePair
	if s.ComputerTurn() {
		reply = s.PlayComputerMove()
	}

	WriteJSON(w, http.StatusOK, snapshotResponse(req.GameID, s.State(), reply))
}
