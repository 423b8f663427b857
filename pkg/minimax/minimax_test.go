package minimax

import (
	"testing"

	"github.com/kaelari/gamesearch/games/tictactoe"
)

func TestNewPanicsOnNonPositiveDepth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for depth < 1")
		}
	}()
	New[tictactoe.State, tictactoe.Move](tictactoe.Rules{}, 0, tictactoe.Evaluator{})
}

func TestDetermineNextMovePanicsOnTerminalState(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a terminal state")
		}
	}()
	r := tictactoe.Rules{}
	s := tictactoe.InitialState()
	moves := []tictactoe.Move{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 0, Col: 2}}
	for _, m := range moves {
		s = r.Play(s, m)
	}
	agent := New[tictactoe.State, tictactoe.Move](r, 3, tictactoe.Evaluator{})
	agent.DetermineNextMove(s)
}

func TestMinimaxTakesTheImmediateWin(t *testing.T) {
	r := tictactoe.Rules{}
	s := tictactoe.InitialState()
	setup := []tictactoe.Move{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}
	for _, m := range setup {
		s = r.Play(s, m)
	}

	agent := New[tictactoe.State, tictactoe.Move](r, 4, tictactoe.Evaluator{})
	move := agent.DetermineNextMove(s)
	if move != (tictactoe.Move{Row: 0, Col: 2}) {
		t.Fatalf("DetermineNextMove = %v, want the winning move (0,2)", move)
	}
}

func TestMinimaxBlocksOpponentWin(t *testing.T) {
	// O has two in a row on row 1 and is about to win; X must block at (1,2).
	r := tictactoe.Rules{}
	s := tictactoe.InitialState()
	setup := []tictactoe.Move{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 1, Col: 1}}
	for _, m := range setup {
		s = r.Play(s, m)
	}
	// X: (0,0),(2,0); O: (1,0),(1,1). X to move, must block (1,2).
	agent := New[tictactoe.State, tictactoe.Move](r, 4, tictactoe.Evaluator{})
	move := agent.DetermineNextMove(s)
	if move != (tictactoe.Move{Row: 1, Col: 2}) {
		t.Fatalf("DetermineNextMove = %v, want the blocking move (1,2)", move)
	}
}

func TestDepthOneFallsBackToEvaluator(t *testing.T) {
	// With depth 1, minimax should still pick the immediate win when one
	// exists, since the win is visible one ply deep.
	r := tictactoe.Rules{}
	s := tictactoe.InitialState()
	setup := []tictactoe.Move{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}
	for _, m := range setup {
		s = r.Play(s, m)
	}
	agent := New[tictactoe.State, tictactoe.Move](r, 1, tictactoe.Evaluator{})
	move := agent.DetermineNextMove(s)
	if move != (tictactoe.Move{Row: 0, Col: 2}) {
		t.Fatalf("DetermineNextMove at depth 1 = %v, want the winning move (0,2)", move)
	}
}
