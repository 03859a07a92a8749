package game

import (
	"math/rand"

	"github.com/notnil/chess"
)

// pickReply chooses the computer's reply. Deliberately a uniform pick:
// move legality lives in the chess library and this service does no
// search or evaluation of its own.
func pickReply(moves []*chess.Move) *chess.Move {
	if len(moves) == 0 {
		return nil
	}
	return moves[rand.Intn(len(moves))]
}
