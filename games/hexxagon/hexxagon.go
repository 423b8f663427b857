// Package hexxagon implements Hexxagon, a hex-board contagion game: pieces
// step or jump to an empty cell and capture every adjacent opponent
// piece, played on a radius-5 board between Rubies (player Zero) and
// Pearls (player One).
package hexxagon

import (
	"fmt"

	"github.com/kaelari/gamesearch/pkg/hexgrid"
	"github.com/kaelari/gamesearch/pkg/rules"
)

// BoardRadius is the fixed radius of a Hexxagon board.
const BoardRadius = 5

// Cell is the occupant of a hex.
type Cell int8

const (
	CellEmpty Cell = iota
	CellBlocked
	CellRubies
	CellPearls
)

func (c Cell) String() string {
	switch c {
	case CellBlocked:
		return "#"
	case CellRubies:
		return "R"
	case CellPearls:
		return "P"
	default:
		return "."
	}
}

// Owner reports the occupying player, if any.
func (c Cell) Owner() (rules.Player, bool) {
	switch c {
	case CellRubies:
		return rules.PlayerZero, true
	case CellPearls:
		return rules.PlayerOne, true
	default:
		return 0, false
	}
}

func cellFor(p rules.Player) Cell {
	if p == rules.PlayerZero {
		return CellRubies
	}
	return CellPearls
}

// Move is a (src, dst) axial pair: step if hex-distance 1, jump if 2.
type Move struct {
	From, To hexgrid.Vector
}

func (m Move) String() string {
	return fmt.Sprintf("%v->%v", m.From, m.To)
}

// State is a radius-5 hex grid of cells plus whose turn it is.
type State struct {
	grid *hexgrid.Grid[Cell]
	next rules.Player
}

// InitialState returns the exact starting position: three blocked cells
// at the centre, three Rubies and three Pearls pieces symmetric about
// them, Rubies to move first.
func InitialState() State {
	grid := hexgrid.NewFillGrid(BoardRadius, CellEmpty)
	grid.Set(hexgrid.Vector{Q: 0, R: -1}, CellBlocked)
	grid.Set(hexgrid.Vector{Q: 1, R: 0}, CellBlocked)
	grid.Set(hexgrid.Vector{Q: -1, R: 1}, CellBlocked)

	grid.Set(hexgrid.Vector{Q: -4, R: 0}, CellRubies)
	grid.Set(hexgrid.Vector{Q: 4, R: -4}, CellRubies)
	grid.Set(hexgrid.Vector{Q: 0, R: 4}, CellRubies)

	grid.Set(hexgrid.Vector{Q: 0, R: -4}, CellPearls)
	grid.Set(hexgrid.Vector{Q: -4, R: 4}, CellPearls)
	grid.Set(hexgrid.Vector{Q: 4, R: 0}, CellPearls)

	return State{grid: grid, next: rules.PlayerZero}
}

// At returns the cell at v, or CellEmpty for an out-of-bounds coordinate
// (callers that care about bounds should use the grid directly).
func (s State) At(v hexgrid.Vector) Cell {
	c, _ := s.grid.Get(v)
	return c
}

// NextPlayer is the player to move.
func (s State) NextPlayer() rules.Player { return s.next }

// IncomingPlayer is the opponent of NextPlayer.
func (s State) IncomingPlayer() rules.Player { return s.next.Opponent() }

// Scores returns the current Rubies and Pearls piece counts.
func (s State) Scores() (rubies, pearls int) {
	s.grid.ForEach(func(_ hexgrid.Vector, c Cell) {
		switch c {
		case CellRubies:
			rubies++
		case CellPearls:
			pearls++
		}
	})
	return rubies, pearls
}

// candidateOffsets is the fixed set of 18 vectors at hex distance 1 or 2
// from the origin — every reachable step or jump destination.
var candidateOffsets = buildCandidateOffsets()

func buildCandidateOffsets() []hexgrid.Vector {
	offsets := append([]hexgrid.Vector{}, hexgrid.Ring(hexgrid.Vector{}, 1)...)
	return append(offsets, hexgrid.Ring(hexgrid.Vector{}, 2)...)
}

// Actions enumerates every legal (src, dst) pair for the player to move:
// src occupied by that player, dst within the 18 candidate offsets,
// in bounds, and Empty. Undefined on a terminal state.
func (s State) Actions() []Move {
	var moves []Move
	s.grid.ForEach(func(src hexgrid.Vector, c Cell) {
		owner, occupied := c.Owner()
		if !occupied || owner != s.next {
			return
		}
		for _, off := range candidateOffsets {
			dst := src.Add(off)
			if cell, ok := s.grid.Get(dst); ok && cell == CellEmpty {
				moves = append(moves, Move{From: src, To: dst})
			}
		}
	})
	return moves
}

// canReach reports whether player p has a piece within hex-distance 2 of
// some Empty cell, by walking rings of radius 1 and 2 around every Empty
// cell looking for one of p's pieces.
func (s State) canReach(p rules.Player) bool {
	found := false
	s.grid.ForEach(func(v hexgrid.Vector, c Cell) {
		if found || c != CellEmpty {
			return
		}
		for _, radius := range [2]int{1, 2} {
			for _, nb := range hexgrid.Ring(v, radius) {
				cell, ok := s.grid.Get(nb)
				if !ok {
					continue
				}
				if owner, occupied := cell.Owner(); occupied && owner == p {
					found = true
					return
				}
			}
		}
	})
	return found
}

// IsTerminal reports whether the player to move has no empty cell
// reachable within hex-distance 2 of any of their pieces. The game ends
// immediately in that case — it does not pass the turn to check whether
// the opponent can still move.
func (s State) IsTerminal() bool {
	return !s.canReach(s.next)
}

// Reward is defined only once IsTerminal is true: the player with more
// pieces wins; equal counts tie.
func (s State) Reward() rules.Reward {
	rubies, pearls := s.Scores()
	switch {
	case rubies > pearls:
		return rules.Win(rules.PlayerZero)
	case pearls > rubies:
		return rules.Win(rules.PlayerOne)
	default:
		return rules.Tie()
	}
}

// String renders the board's occupied cell counts, for debug tooltips.
func (s State) String() string {
	rubies, pearls := s.Scores()
	return fmt.Sprintf("Hexxagon{next:%v rubies:%d pearls:%d}", s.next, rubies, pearls)
}

// moveResult is the outcome of applying a single move: Success or Fail,
// per the error-handling design (precondition failures are programming
// errors, not recoverable conditions — callers that only ever pass
// actions from Actions() never observe Fail).
type moveResult int

const (
	moveSuccess moveResult = iota
	moveFail
)

// playerMove applies (from, to) for the player to move, mutating s in
// place. s must already be an independent clone — Rules.Play is the only
// caller, and it clones before invoking this.
func (s *State) playerMove(from, to hexgrid.Vector) moveResult {
	dist := to.Sub(from).Length()
	if dist < 1 || dist > 2 {
		return moveFail
	}

	fromCell, ok := s.grid.Get(from)
	if !ok {
		return moveFail
	}
	toCell, ok := s.grid.Get(to)
	if !ok {
		return moveFail
	}

	owner, occupied := fromCell.Owner()
	if !occupied || owner != s.next {
		return moveFail
	}
	if toCell != CellEmpty {
		return moveFail
	}

	mover := cellFor(s.next)
	s.grid.Set(to, mover)
	if dist == 2 {
		s.grid.Set(from, CellEmpty)
	}

	opponent := s.next.Opponent()
	for _, nb := range hexgrid.Ring(to, 1) {
		cell, ok := s.grid.Get(nb)
		if !ok {
			continue
		}
		if nbOwner, occ := cell.Owner(); occ && nbOwner == opponent {
			s.grid.Set(nb, mover)
		}
	}

	s.next = s.next.Opponent()
	return moveSuccess
}

// Rules implements rules.Rules[State, Move].
type Rules struct{}

// Play clones the board, applies m via playerMove, and panics if m was
// illegal — a precondition violation, since Actions() never produces an
// illegal move.
func (Rules) Play(s State, m Move) State {
	next := State{grid: s.grid.Clone(), next: s.next}
	if next.playerMove(m.From, m.To) == moveFail {
		panic(fmt.Sprintf("hexxagon: Play: illegal move %v", m))
	}
	return next
}
