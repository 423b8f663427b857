package hexxagon

import (
	"testing"

	"github.com/kaelari/gamesearch/pkg/hexgrid"
	"github.com/kaelari/gamesearch/pkg/rules"
)

func TestInitialStateLayout(t *testing.T) {
	s := InitialState()
	if s.NextPlayer() != rules.PlayerZero {
		t.Fatal("Rubies (player zero) must move first")
	}

	rubies, pearls := s.Scores()
	if rubies != 3 || pearls != 3 {
		t.Fatalf("initial scores = (%d,%d), want (3,3)", rubies, pearls)
	}

	blocked := []hexgrid.Vector{{Q: 0, R: -1}, {Q: 1, R: 0}, {Q: -1, R: 1}}
	for _, v := range blocked {
		if s.At(v) != CellBlocked {
			t.Errorf("At(%v) = %v, want CellBlocked", v, s.At(v))
		}
	}

	rubiesCells := []hexgrid.Vector{{Q: -4, R: 0}, {Q: 4, R: -4}, {Q: 0, R: 4}}
	for _, v := range rubiesCells {
		if s.At(v) != CellRubies {
			t.Errorf("At(%v) = %v, want CellRubies", v, s.At(v))
		}
	}

	pearlsCells := []hexgrid.Vector{{Q: 0, R: -4}, {Q: -4, R: 4}, {Q: 4, R: 0}}
	for _, v := range pearlsCells {
		if s.At(v) != CellPearls {
			t.Errorf("At(%v) = %v, want CellPearls", v, s.At(v))
		}
	}
}

func TestInitialStateNotTerminal(t *testing.T) {
	s := InitialState()
	if s.IsTerminal() {
		t.Fatal("initial state must not be terminal")
	}
	if len(s.Actions()) == 0 {
		t.Fatal("initial state must have legal actions")
	}
}

func TestActionsAreAllLegalMoves(t *testing.T) {
	s := InitialState()
	for _, m := range s.Actions() {
		dist := m.To.Sub(m.From).Length()
		if dist < 1 || dist > 2 {
			t.Errorf("action %v has distance %d, want 1 or 2", m, dist)
		}
		if s.At(m.From) != CellRubies {
			t.Errorf("action %v does not originate from a Rubies piece", m)
		}
		if s.At(m.To) != CellEmpty {
			t.Errorf("action %v targets non-empty cell %v", m, m.To)
		}
	}
}

func TestStepDuplicatesPieceWithoutClearingSource(t *testing.T) {
	r := Rules{}
	s := InitialState()
	from := hexgrid.Vector{Q: -4, R: 0}
	to := from.Add(hexgrid.Direction(0))

	next := r.Play(s, Move{From: from, To: to})
	if next.At(from) != CellRubies {
		t.Fatalf("a step (distance 1) must not clear the source cell")
	}
	if next.At(to) != CellRubies {
		t.Fatalf("destination of a step must hold the mover's piece")
	}
	rubies, _ := next.Scores()
	if rubies != 4 {
		t.Fatalf("a step must increase the mover's piece count, got %d want 4", rubies)
	}
}

func TestJumpClearsSourceCell(t *testing.T) {
	r := Rules{}
	s := InitialState()
	from := hexgrid.Vector{Q: -4, R: 0}
	to := from.Add(hexgrid.Direction(0).Scale(2))

	next := r.Play(s, Move{From: from, To: to})
	if next.At(from) != CellEmpty {
		t.Fatalf("a jump (distance 2) must clear the source cell")
	}
	if next.At(to) != CellRubies {
		t.Fatalf("destination of a jump must hold the mover's piece")
	}
	rubies, _ := next.Scores()
	if rubies != 3 {
		t.Fatalf("a jump must not change the mover's piece count, got %d want 3", rubies)
	}
}

func TestPlayTogglesNextPlayer(t *testing.T) {
	r := Rules{}
	s := InitialState()
	m := s.Actions()[0]
	next := r.Play(s, m)
	if next.NextPlayer() == s.NextPlayer() {
		t.Fatal("Play must toggle the player to move")
	}
}

func TestPlayIllegalMovePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an illegal move")
		}
	}()
	r := Rules{}
	s := InitialState()
	// Source cell is empty: illegal.
	r.Play(s, Move{From: hexgrid.Vector{Q: 0, R: 0}, To: hexgrid.Vector{Q: 0, R: 1}})
}

func TestOriginalStateUnmutatedAfterPlay(t *testing.T) {
	r := Rules{}
	s := InitialState()
	m := s.Actions()[0]
	before, _ := s.Scores()
	r.Play(s, m)
	after, _ := s.Scores()
	if before != after {
		t.Fatal("Play must not mutate its input state")
	}
}

func TestContagionCapture(t *testing.T) {
	r := Rules{}

	// Hand-build a minimal position: one Rubies piece one step from an
	// empty cell, with a Pearls piece adjacent to that empty cell, so
	// stepping in should flip the Pearls piece.
	grid := hexgrid.NewFillGrid(5, CellEmpty)
	from := hexgrid.Vector{Q: 0, R: 0}
	to := from.Add(hexgrid.Direction(0))
	pearlAt := to.Add(hexgrid.Direction(2))
	grid.Set(from, CellRubies)
	grid.Set(pearlAt, CellPearls)

	s := State{grid: grid, next: rules.PlayerZero}

	next := r.Play(s, Move{From: from, To: to})
	if owner, occupied := next.At(pearlAt).Owner(); !occupied || owner != rules.PlayerZero {
		t.Fatalf("Pearls piece adjacent to the destination should have been captured, cell = %v", next.At(pearlAt))
	}
}
