package tictactoe

// Evaluator scores a terminal state as a full win/loss/tie value and a
// non-terminal state by counting open lines still available to each
// player, positive favouring X (player Zero). It implements
// minimax.Evaluator[State] structurally.
type Evaluator struct{}

// Value returns +1000/-1000 for a decided terminal state, 0 for a drawn
// terminal state, and otherwise the difference between the number of
// lines X could still complete and the number O could still complete.
func (Evaluator) Value(s State) float32 {
	if s.IsTerminal() {
		switch s.winner() {
		case X:
			return 1000
		case O:
			return -1000
		default:
			return 0
		}
	}

	var xLines, oLines int
	for _, line := range lines {
		var x, o int
		for _, rc := range line {
			switch s.board[rc[0]][rc[1]] {
			case X:
				x++
			case O:
				o++
			}
		}
		if o == 0 {
			xLines++
		}
		if x == 0 {
			oLines++
		}
	}
	return float32(xLines - oLines)
}
