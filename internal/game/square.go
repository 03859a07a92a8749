package game

import (
	"errors"

	"github.com/notnil/chess"
)

// ErrBadPositionFormat is returned for positions that are not two characters.
var ErrBadPositionFormat = errors.New("Position must be in format like 'e4'")

// ErrPositionOutOfRange is returned for positions outside a1-h8.
var ErrPositionOutOfRange = errors.New("Position must be valid (a1-h8)")

// ParsePosition converts an algebraic coordinate like "e4" to a square.
// A1 is square 0, so the square index is rank*8+file.
func ParsePosition(pos string) (chess.Square, error) {
	if len(pos) != 2 {
		return chess.NoSquare, ErrBadPositionFormat
	}
	file := int(pos[0]) - 'a'
	rank := int(pos[1]) - '1'
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return chess.NoSquare, ErrPositionOutOfRange
	}
	return chess.Square(rank*8 + file), nil
}

// squareAt returns the square for a board matrix cell, where row 0 is rank 8.
func squareAt(row, col int) chess.Square {
	return chess.Square((7-row)*8 + col)
}

// colorName maps a chess color to its wire value.
func colorName(c chess.Color) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName maps a piece type to its wire value.
func pieceTypeName(t chess.PieceType) string {
	switch t {
	case chess.King:
		return "king"
	case chess.Queen:
		return "queen"
	case chess.Rook:
		return "rook"
	case chess.Bishop:
		return "bishop"
	case chess.Knight:
		return "knight"
	default:
		return "pawn"
	}
}
