// Package random implements a rules.Agent that picks uniformly among the
// legal actions of the current state, with no search at all — a baseline
// opponent for benchmarking the search agents against.
package random

import (
	"math/rand"
	"time"

	"github.com/kaelari/gamesearch/pkg/rules"
)

// Agent implements rules.Agent[S, A] by choosing uniformly at random
// among state.Actions().
type Agent[S rules.State[A], A comparable] struct {
	rand *rand.Rand
}

// New builds a random agent. If rng is nil, a time-seeded generator is
// used; pass a seeded *rand.Rand for reproducible decisions.
func New[S rules.State[A], A comparable](rng *rand.Rand) *Agent[S, A] {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Agent[S, A]{rand: rng}
}

// Name identifies this agent, no behavioural meaning.
func (a *Agent[S, A]) Name() string { return "Random" }

// DetermineNextMove panics if called on a terminal state, otherwise
// returns a uniformly random legal action.
func (a *Agent[S, A]) DetermineNextMove(state S) A {
	if state.IsTerminal() {
		panic("random: DetermineNextMove called on a terminal state")
	}
	actions := state.Actions()
	return actions[a.rand.Intn(len(actions))]
}
