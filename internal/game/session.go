package game

import (
	"time"

	"github.com/notnil/chess"

	"chessdesk/internal/logging"
)

// Touch updates the last seen timestamp for a session.
func (s *Session) Touch() {
	s.Mu.Lock()
	s.LastSeen = time.Now()
	s.Mu.Unlock()
}

// SnapshotLocked builds the wire snapshot (must be called with lock held).
func (s *Session) SnapshotLocked() Snapshot {
	pos := s.g.Position()
	board := pos.Board()

	var view BoardView
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := board.Piece(squareAt(row, col))
			if p == chess.NoPiece {
				continue
			}
			view[row][col] = &PieceView{
				Type:   pieceTypeName(p.Type()),
				Color:  colorName(p.Color()),
				Symbol: p.String(),
			}
		}
	}

	snap := Snapshot{
		Board:         view,
		CurrentPlayer: colorName(pos.Turn()),
		GameOver:      s.g.Outcome() != chess.NoOutcome,
		InCheck:       s.inCheckLocked(),
	}
	switch s.g.Outcome() {
	case chess.WhiteWon:
		snap.Winner = "white"
	case chess.BlackWon:
		snap.Winner = "black"
	case chess.Draw:
		snap.Winner = "draw"
	}
	return snap
}

// State returns the current wire snapshot.
func (s *Session) State() Snapshot {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.SnapshotLocked()
}

// inCheckLocked reports whether the side to move is in check. The last
// move played carries the Check tag when it gave check.
func (s *Session) inCheckLocked() bool {
	moves := s.g.Moves()
	if len(moves) == 0 {
		return false
	}
	return moves[len(moves)-1].HasTag(chess.Check)
}

// MakeMove attempts a UCI move and returns the engine's error verbatim.
func (s *Session) MakeMove(uci string) error {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.g.MoveStr(uci)
}

// LegalMovesFrom returns the destination squares reachable from the given
// origin. Promotion variants collapse to a single destination.
func (s *Session) LegalMovesFrom(from chess.Square) []string {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	seen := make(map[string]bool)
	out := make([]string, 0, 8)
	for _, m := range s.g.ValidMoves() {
		if m.S1() != from {
			continue
		}
		to := m.S2().String()
		if seen[to] {
			continue
		}
		seen[to] = true
		out = append(out, to)
	}
	return out
}

// IsPawnAt reports whether the square holds a pawn.
func (s *Session) IsPawnAt(sq chess.Square) bool {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	p := s.g.Position().Board().Piece(sq)
	return p != chess.NoPiece && p.Type() == chess.Pawn
}

// GameOver reports whether the game has ended.
func (s *Session) GameOver() bool {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.g.Outcome() != chess.NoOutcome
}

// ComputerTurn reports whether the computer owns the move.
func (s *Session) ComputerTurn() bool {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.g.Outcome() == chess.NoOutcome && s.g.Position().Turn() != s.HumanColor
}

// PlayComputerMove picks and applies a reply for the computer side.
// Returns nil when the computer has no move (game already decided).
func (s *Session) PlayComputerMove() *MovePair {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	if s.g.Outcome() != chess.NoOutcome || s.g.Position().Turn() == s.HumanColor {
		return nil
	}
	m := pickReply(s.g.ValidMoves())
	if m == nil {
		return nil
	}
	if err := s.g.Move(m); err != nil {
		logging.Debugf("computer move %s rejected: %v", m, err)
		return nil
	}
	return &MovePair{From: m.S1().String(), To: m.S2().String()}
}
