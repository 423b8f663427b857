// Package tictactoe implements classic 3x3 tic-tac-toe as a rules.Rules
// instance: X (player Zero) moves first, O (player One) follows, three in
// a row wins.
package tictactoe

import (
	"fmt"

	"github.com/kaelari/gamesearch/pkg/rules"
)

// Cell is the occupant of a board square.
type Cell int8

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

func cellFor(p rules.Player) Cell {
	if p == rules.PlayerZero {
		return X
	}
	return O
}

// Move places a mark at (Row, Col), 0 <= Row, Col < 3.
type Move struct {
	Row, Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// State is a 3x3 board plus whose turn it is. Value semantics come for
// free: the board is a fixed-size array, so assignment already makes an
// independent copy.
type State struct {
	board [3][3]Cell
	next  rules.Player
}

// InitialState returns an empty board with X (player Zero) to move.
func InitialState() State {
	return State{next: rules.PlayerZero}
}

// At returns the occupant of (row, col).
func (s State) At(row, col int) Cell { return s.board[row][col] }

// NextPlayer is the player to move.
func (s State) NextPlayer() rules.Player { return s.next }

// IncomingPlayer is the opponent of NextPlayer.
func (s State) IncomingPlayer() rules.Player { return s.next.Opponent() }

var lines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// winner returns the occupying Cell of a completed line, or Empty if
// there is none.
func (s State) winner() Cell {
	for _, line := range lines {
		a := s.board[line[0][0]][line[0][1]]
		if a == Empty {
			continue
		}
		b := s.board[line[1][0]][line[1][1]]
		c := s.board[line[2][0]][line[2][1]]
		if a == b && b == c {
			return a
		}
	}
	return Empty
}

func (s State) full() bool {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if s.board[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

// IsTerminal reports whether a line is complete or the board is full.
func (s State) IsTerminal() bool {
	return s.winner() != Empty || s.full()
}

// Actions enumerates every empty square. Undefined on a terminal state.
func (s State) Actions() []Move {
	moves := make([]Move, 0, 9)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if s.board[r][c] == Empty {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// Reward is defined only once IsTerminal is true: X win => (1,0), O win
// => (0,1), a full board with no winner => (0.5,0.5).
func (s State) Reward() rules.Reward {
	switch s.winner() {
	case X:
		return rules.Win(rules.PlayerZero)
	case O:
		return rules.Win(rules.PlayerOne)
	default:
		return rules.Tie()
	}
}

// Rules implements rules.Rules[State, Move].
type Rules struct{}

// Play rejects (panics — a precondition violation) a move onto an
// occupied cell; identical inputs always yield the identical output.
func (Rules) Play(s State, m Move) State {
	if s.board[m.Row][m.Col] != Empty {
		panic(fmt.Sprintf("tictactoe: Play: cell %v is not empty", m))
	}
	s.board[m.Row][m.Col] = cellFor(s.next)
	s.next = s.next.Opponent()
	return s
}

// String renders the board as three rows of three characters, for
// logging and debug tooltips.
func (s State) String() string {
	out := ""
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out += s.board[r][c].String()
		}
		if r < 2 {
			out += "/"
		}
	}
	return out
}
