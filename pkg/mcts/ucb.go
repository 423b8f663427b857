package mcts

import (
	"math"

	"github.com/kaelari/gamesearch/pkg/rules"
)

// ExplorationParam is the fixed UCB1 exploration constant C.
const ExplorationParam = 1.0

// ucb1 scores child from the given player's perspective. Every child is
// created with an immediate rollout+backup, so child.visits is never 0
// at scoring time.
func ucb1[S rules.State[A], A comparable](parent, child *Node[S, A], player rules.Player) float64 {
	n := float64(child.visits)
	p := float64(parent.visits)
	w := child.rewards.For(player)
	return w/n + ExplorationParam*math.Sqrt(2*math.Log(p)/n)
}
