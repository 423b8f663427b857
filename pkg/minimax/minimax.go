// Package minimax implements a generic depth-limited alpha-beta search
// driven by a pluggable heuristic evaluator, over the same rules
// abstraction the mcts package uses. The recursion is stateless: no tree
// is retained between calls.
package minimax

import (
	"math"

	"github.com/kaelari/gamesearch/pkg/rules"
)

// Evaluator scores a non-terminal (or terminal) state. Player Zero always
// maximises, regardless of which named player in a given game corresponds
// to Zero. Value must be finite for every state reachable within the
// configured depth from any legal position.
type Evaluator[S any] interface {
	Value(state S) float32
}

// Agent runs depth-limited alpha-beta minimax over S/A, scoring leaves
// with eval. It implements rules.Agent[S, A].
type Agent[S rules.State[A], A comparable] struct {
	rules rules.Rules[S, A]
	depth int
	eval  Evaluator[S]
}

// New builds a minimax agent with the given search depth (>= 1) and
// evaluator.
func New[S rules.State[A], A comparable](r rules.Rules[S, A], depth int, eval Evaluator[S]) *Agent[S, A] {
	if depth < 1 {
		panic("minimax: depth must be >= 1")
	}
	return &Agent[S, A]{rules: r, depth: depth, eval: eval}
}

// Name identifies this agent, no behavioural meaning.
func (a *Agent[S, A]) Name() string { return "Minimax" }

// DetermineNextMove enumerates root actions, scores each resulting state
// at the configured depth, and returns the argmax if the root player is
// maximising (Zero) or the argmin otherwise (One). Ties go to the first
// action encountered in enumeration order.
func (a *Agent[S, A]) DetermineNextMove(state S) A {
	if state.IsTerminal() {
		panic("minimax: DetermineNextMove called on a terminal state")
	}

	maximizing := state.NextPlayer() == rules.PlayerZero
	actions := state.Actions()

	var best A
	bestSet := false
	bestValue := float32(math.Inf(1))
	if maximizing {
		bestValue = float32(math.Inf(-1))
	}

	alpha := float32(math.Inf(-1))
	beta := float32(math.Inf(1))

	for _, action := range actions {
		child := a.rules.Play(state, action)
		value := a.value(child, a.depth, alpha, beta, !maximizing)

		if !bestSet {
			best, bestValue, bestSet = action, value, true
			continue
		}
		if maximizing && value > bestValue {
			best, bestValue = action, value
		} else if !maximizing && value < bestValue {
			best, bestValue = action, value
		}

		if maximizing {
			alpha = max32(alpha, bestValue)
		} else {
			beta = min32(beta, bestValue)
		}
	}

	return best
}

// value is the alpha-beta minimax recursion: eval at depth 0 or a
// terminal state, otherwise the max/min over children with the usual
// alpha/beta cutoff.
func (a *Agent[S, A]) value(state S, depth int, alpha, beta float32, maximizing bool) float32 {
	if depth == 0 || state.IsTerminal() {
		return a.eval.Value(state)
	}

	if maximizing {
		v := float32(math.Inf(-1))
		for _, action := range state.Actions() {
			child := a.rules.Play(state, action)
			v = max32(v, a.value(child, depth-1, alpha, beta, false))
			alpha = max32(alpha, v)
			if v >= beta {
				break
			}
		}
		return v
	}

	v := float32(math.Inf(1))
	for _, action := range state.Actions() {
		child := a.rules.Play(state, action)
		v = min32(v, a.value(child, depth-1, alpha, beta, true))
		beta = min32(beta, v)
		if v <= alpha {
			break
		}
	}
	return v
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
