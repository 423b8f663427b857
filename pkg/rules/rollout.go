package rules

import "math/rand"

// RandomRollout walks uniformly random legal actions from state until
// terminality, returning the resulting reward vector. The caller's rules
// must guarantee finite games; this helper does not impose a ply limit.
func RandomRollout[S State[A], A comparable](r Rules[S, A], state S, rng *rand.Rand) Reward {
	for !state.IsTerminal() {
		actions := state.Actions()
		if len(actions) == 0 {
			panic("rules: RandomRollout reached a non-terminal state with no legal actions")
		}
		state = r.Play(state, actions[rng.Intn(len(actions))])
	}
	return state.Reward()
}
