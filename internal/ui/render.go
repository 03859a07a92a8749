package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"chessdesk/internal/board"
)

const numrows = 8

// cellPosition maps a table cell to its algebraic coordinate. Column 0
// holds rank labels and row 8 holds file labels; the board flips when
// the human plays black.
func (ui *UI) cellPosition(row, col int) (string, bool) {
	if row < 0 || row >= numrows || col < 1 || col > numrows {
		return "", false
	}
	mrow := row
	if ui.state.Color == "black" {
		mrow = numrows - row - 1
	}
	return board.PositionToString(mrow, col-1), true
}

// squareColor picks the cell background: selection beats capture beats
// plain legal target beats the checker pattern.
func (ui *UI) squareColor(pos string, row, col int) tcell.Color {
	if ui.state.IsSelected(pos) {
		return tcell.ColorYellow
	}
	if ui.state.IsCaptureTarget(pos) {
		return tcell.ColorRed
	}
	if ui.state.IsLegalTarget(pos) {
		return tcell.ColorDarkCyan
	}
	if (row+col)%2 == 0 {
		return tcell.ColorBlue
	}
	return tcell.ColorGreen
}

func (ui *UI) render() {
	ui.renderBoard()
	ui.renderStatus()
	ui.renderHistory()
}

// renderBoard rebuilds all cells from the current snapshot. No diffing;
// the grid is 64 squares plus labels.
func (ui *UI) renderBoard() {
	ui.Board.Clear()
	flip := ui.state.Color == "black"

	for r := 0; r <= numrows; r++ {
		for c := 0; c <= numrows; c++ {
			if c == 0 && r < numrows {
				rank := numrows - r
				if flip {
					rank = r + 1
				}
				cell := tview.NewTableCell(fmt.Sprintf("%d", rank)).
					SetAlign(tview.AlignCenter).
					SetSelectable(false)
				ui.Board.SetCell(r, c, cell)
				continue
			}
			if r == numrows {
				if c == 0 {
					continue
				}
				cell := tview.NewTableCell(fmt.Sprintf(" %c", 'a'+c-1)).
					SetAlign(tview.AlignCenter).
					SetSelectable(false)
				ui.Board.SetCell(r, c, cell)
				continue
			}

			pos, _ := ui.cellPosition(r, c)
			text := "  "
			if p := ui.state.PieceAt(pos); p != nil {
				text = fmt.Sprintf(" %s", p.Symbol)
			}
			cell := tview.NewTableCell(text).
				SetAlign(tview.AlignCenter).
				SetBackgroundColor(ui.squareColor(pos, r, c))
			ui.Board.SetCell(r, c, cell)
		}
	}
}

func (ui *UI) renderStatus() {
	text, tone := ui.state.Status()
	ui.Status.SetText(text)
	ui.Status.SetBackgroundColor(toneColor(tone))
}

func toneColor(t board.Tone) tcell.Color {
	switch t {
	case board.ToneTurn:
		return tcell.ColorDarkGreen
	case board.ToneThinking:
		return tcell.ColorDarkBlue
	case board.ToneCheck:
		return tcell.ColorOrangeRed
	case board.ToneOver:
		return tcell.ColorDarkMagenta
	default:
		return tcell.ColorDefault
	}
}

func (ui *UI) renderHistory() {
	var b strings.Builder
	for _, e := range ui.state.Moves {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	ui.History.SetText(b.String())
	ui.History.ScrollToEnd()
}
