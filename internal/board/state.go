// Package board holds the client-side view of a game: the last snapshot
// received from the service, the current selection, and the move log.
// It is pure state so the terminal front end stays thin.
package board

import (
	"errors"
	"fmt"

	"chessdesk/internal/api"
)

// DefaultGameID is the single well-known session the client plays in.
const DefaultGameID = "default"

// Tone is the background cue that accompanies the status line.
type Tone int

const (
	ToneIdle Tone = iota
	ToneTurn
	ToneThinking
	ToneCheck
	ToneOver
)

// Action is the decision made for a square click.
type Action int

const (
	ActionNone Action = iota
	ActionSelect
	ActionDeselect
	ActionMove
)

// MoveEntry is one line of the move log.
type MoveEntry struct {
	Mover string
	From  string
	To    string
}

func (e MoveEntry) String() string {
	return fmt.Sprintf("%s: %s → %s", e.Mover, e.From, e.To)
}

// State owns everything the client knows about the current game. All
// methods must be called from the UI event goroutine; network
// completions are queued onto it by the caller.
type State struct {
	Game     *api.GameResponse
	Color    string
	Selected string
	Legal    []string
	Moves    []MoveEntry

	selectionGen int
	gameGen      int
	replyPending bool
}

// NewState creates an empty client state.
func NewState() *State {
	return &State{}
}

// Reset discards the current game.
func (s *State) Reset() {
	s.Game = nil
	s.Color = ""
	s.Moves = nil
	s.replyPending = false
	s.clearSelection()
	s.gameGen++
}

// StartGame installs the opening snapshot. A computer opening move (the
// human chose black) is logged right away.
func (s *State) StartGame(color string, resp *api.GameResponse) {
	s.gameGen++
	s.replyPending = false
	s.Color = color
	s.Game = resp
	s.Moves = nil
	s.clearSelection()
	if resp.ComputerMove != nil {
		s.Moves = append(s.Moves, MoveEntry{Mover: "Computer", From: resp.ComputerMove.From, To: resp.ComputerMove.To})
	}
}

// GameGen identifies the current game; delayed callbacks compare against
// it so a new game invalidates them.
func (s *State) GameGen() int {
	return s.gameGen
}

// SelectionGen identifies the current selection; legal-move responses
// carry it so stale ones are discarded.
func (s *State) SelectionGen() int {
	return s.selectionGen
}

// HumanTurn reports whether the human owns the move.
func (s *State) HumanTurn() bool {
	return s.Game != nil && !s.Game.GameOver && s.Game.CurrentPlayer == s.Color
}

// PieceAt returns the piece on the given square, or nil.
func (s *State) PieceAt(pos string) *api.Piece {
	if s.Game == nil {
		return nil
	}
	row, col, err := ParsePosition(pos)
	if err != nil {
		return nil
	}
	return s.Game.Board[row][col]
}

// HandleSquareClick decides what a click on pos means. For ActionMove
// the returned string is the origin square.
func (s *State) HandleSquareClick(pos string) (Action, string) {
	if s.Game == nil || s.Game.GameOver {
		return ActionNone, ""
	}
	if !s.HumanTurn() {
		return ActionNone, ""
	}
	if s.Selected != "" && pos == s.Selected {
		s.ClearSelection()
		return ActionDeselect, ""
	}
	if s.Selected != "" {
		return ActionMove, s.Selected
	}
	p := s.PieceAt(pos)
	if p != nil && p.Color == s.Color {
		s.Selected = pos
		s.Legal = nil
		s.selectionGen++
		return ActionSelect, pos
	}
	return ActionNone, ""
}

// ApplyLegalMoves installs highlight targets if the response still
// belongs to the current selection.
func (s *State) ApplyLegalMoves(gen int, moves []string) bool {
	if gen != s.selectionGen || s.Selected == "" {
		return false
	}
	s.Legal = moves
	return true
}

// ClearSelection resets the selection and invalidates any legal-move
// request still in flight. Idempotent.
func (s *State) ClearSelection() {
	s.clearSelection()
	s.selectionGen++
}

func (s *State) clearSelection() {
	s.Selected = ""
	s.Legal = nil
}

// IsSelected reports whether pos is the selected square.
func (s *State) IsSelected(pos string) bool {
	return s.Selected != "" && pos == s.Selected
}

// IsLegalTarget reports whether pos is a highlighted destination.
func (s *State) IsLegalTarget(pos string) bool {
	for _, m := range s.Legal {
		if m == pos {
			return true
		}
	}
	return false
}

// IsCaptureTarget reports whether pos is a destination holding an enemy
// piece.
func (s *State) IsCaptureTarget(pos string) bool {
	if !s.IsLegalTarget(pos) {
		return false
	}
	p := s.PieceAt(pos)
	return p != nil && p.Color != s.Color
}

// ApplyMoveResult installs the post-move snapshot and logs the human
// move. A computer reply in the response is held back until RecordReply
// so the front end can pace its display.
func (s *State) ApplyMoveResult(from, to string, resp *api.GameResponse) {
	s.ClearSelection()
	s.Game = resp
	s.Moves = append(s.Moves, MoveEntry{Mover: "You", From: from, To: to})
	s.replyPending = resp.ComputerMove != nil
}

// ReplyPending reports whether a computer reply is waiting to be shown.
func (s *State) ReplyPending() bool {
	return s.replyPending
}

// RecordReply logs the held-back computer reply. It refuses when the
// game generation moved on, so a timer from a previous game is a no-op.
func (s *State) RecordReply(gen int) bool {
	if gen != s.gameGen || !s.replyPending {
		return false
	}
	s.replyPending = false
	if s.Game == nil || s.Game.ComputerMove == nil {
		return false
	}
	s.Moves = append(s.Moves, MoveEntry{Mover: "Computer", From: s.Game.ComputerMove.From, To: s.Game.ComputerMove.To})
	return true
}

// Status derives the status line and its tone. Game over wins over
// check, check over the turn indicator.
func (s *State) Status() (string, Tone) {
	if s.Game == nil {
		return "Choose a side to begin", ToneIdle
	}
	if s.replyPending {
		return "Computer is thinking...", ToneThinking
	}
	if s.Game.GameOver {
		switch s.Game.Winner {
		case "draw":
			return "Game Over - Draw!", ToneOver
		case s.Color:
			return "Game Over - You win!", ToneOver
		default:
			return "Game Over - Computer wins!", ToneOver
		}
	}
	if s.Game.InCheck {
		if s.Game.CurrentPlayer == s.Color {
			return "You are in check!", ToneCheck
		}
		return "Computer is in check!", ToneCheck
	}
	if s.Game.CurrentPlayer == s.Color {
		return "Your turn", ToneTurn
	}
	return "Computer is thinking...", ToneThinking
}

var errBadPosition = errors.New("position out of range")

// PositionToString maps a board matrix cell to algebraic notation:
// column letter 'a'+col, rank 8-row.
func PositionToString(row, col int) string {
	return string([]byte{byte('a' + col), byte('0' + 8 - row)})
}

// ParsePosition maps algebraic notation back to a board matrix cell.
func ParsePosition(pos string) (row, col int, err error) {
	if len(pos) != 2 {
		return 0, 0, errBadPosition
	}
	col = int(pos[0]) - 'a'
	row = 8 - (int(pos[1]) - '0')
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return 0, 0, errBadPosition
	}
	return row, col, nil
}
