package api

// Piece is one occupied board cell as returned by the service.
type Piece struct {
	Type   string `json:"type"`
	Color  string `json:"color"`
	Symbol string `json:"symbol"`
}

// Board is the 8x8 board matrix, row 0 = rank 8. Empty squares are nil.
type Board [8][8]*Piece

// MovePair is a from/to square pair in algebraic coordinates.
type MovePair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// GameResponse is the snapshot envelope returned by new_game and move.
type GameResponse struct {
	Success       bool      `json:"success"`
	GameID        string    `json:"game_id"`
	Board         Board     `json:"board"`
	CurrentPlayer string    `json:"current_player"`
	GameOver      bool      `json:"game_over"`
	InCheck       bool      `json:"in_check"`
	Winner        string    `json:"winner"`
	ComputerMove  *MovePair `json:"computer_move"`
	Error         string    `json:"error"`
}

type legalMovesResponse struct {
	Success    bool     `json:"success"`
	LegalMoves []string `json:"legal_moves"`
	Error      string   `json:"error"`
}

// RejectedError carries the server's reason for refusing a request,
// verbatim, so the UI can show it to the player.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return e.Reason
}
