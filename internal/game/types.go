package game

import (
	"sync"
	"time"

	"github.com/notnil/chess"
)

// Hub manages all active chess sessions.
type Hub struct {
	Mu       sync.Mutex
	Sessions map[string]*Session
}

// Session is a single human-vs-computer game. The embedded chess.Game is
// the source of truth; clients only ever see snapshots of it.
type Session struct {
	Mu         sync.Mutex
	g          *chess.Game
	HumanColor chess.Color
	LastSeen   time.Time
}

// PieceView is one occupied board cell as sent over the wire.
type PieceView struct {
	Type   string `json:"type"`
	Color  string `json:"color"`
	Symbol string `json:"symbol"`
}

// BoardView is the full board matrix, row 0 = rank 8. Empty squares are null.
type BoardView [8][8]*PieceView

// MovePair is a from/to square pair in algebraic coordinates.
type MovePair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Snapshot is the authoritative game state included in every response.
type Snapshot struct {
	Board         BoardView `json:"board"`
	CurrentPlayer string    `json:"current_player"`
	GameOver      bool      `json:"game_over"`
	InCheck       bool      `json:"in_check"`
	Winner        string    `json:"winner,omitempty"`
}

// NewGameRequest asks for a fresh session.
type NewGameRequest struct {
	GameID     string `json:"game_id"`
	HumanColor string `json:"human_color"`
}

// LegalMovesRequest asks for the destinations of the piece on From.
type LegalMovesRequest struct {
	GameID string `json:"game_id"`
	From   string `json:"from"`
}

// MoveRequest submits a move in algebraic coordinates.
type MoveRequest struct {
	GameID string `json:"game_id"`
	From   string `json:"from"`
	To     string `json:"to"`
}
