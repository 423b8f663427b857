// Package mcts implements a generic Monte Carlo Tree Search agent: UCB1
// tree policy over a pluggable rules.Rules, with random rollouts. The
// search is single-threaded and synchronous; a fresh tree is built for
// every decision and discarded once the move is chosen.
package mcts

import (
	"math/rand"
	"time"

	"github.com/kaelari/gamesearch/pkg/rules"
)

// Agent runs MCTS over S/A using r as the transition function. It
// implements rules.Agent[S, A].
type Agent[S rules.State[A], A comparable] struct {
	rules rules.Rules[S, A]
	stop  StopCondition
	rand  *rand.Rand

	nextID int
	root   *Node[S, A]
}

// New builds an MCTS agent. If rng is nil, a time-seeded generator is
// used; pass a seeded *rand.Rand for reproducible decisions.
func New[S rules.State[A], A comparable](r rules.Rules[S, A], stop StopCondition, rng *rand.Rand) *Agent[S, A] {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Agent[S, A]{rules: r, stop: stop, rand: rng}
}

// Name identifies this agent, no behavioural meaning.
func (a *Agent[S, A]) Name() string { return "MCTS" }

// Tree returns the root of the tree built by the most recent
// DetermineNextMove call, for introspection/visualisation only. The tree
// is exclusively owned by the agent; callers must treat it read-only and
// must not retain it across the next search, which discards it.
func (a *Agent[S, A]) Tree() *Node[S, A] { return a.root }

// DetermineNextMove builds a fresh tree rooted at state, runs iterations
// until the configured StopCondition fires, and returns the root's best
// child action by UCB1 (see bestAction on the selection policy).
func (a *Agent[S, A]) DetermineNextMove(state S) A {
	if state.IsTerminal() {
		panic("mcts: DetermineNextMove called on a terminal state")
	}

	a.nextID = 0
	root := a.newNode(nil, state)
	a.root = root

	switch a.stop.kind {
	case byIterations:
		for i := 0; i < a.stop.iterations; i++ {
			a.iterate(root)
		}
	case byTime:
		deadline := time.Now().Add(a.stop.duration)
		a.iterate(root)
		for time.Now().Before(deadline) {
			a.iterate(root)
		}
	}

	return a.bestAction(root)
}

func (a *Agent[S, A]) newNode(parent *Node[S, A], state S) *Node[S, A] {
	n := &Node[S, A]{
		id:       a.nextID,
		state:    state,
		children: make(map[A]*Node[S, A]),
		parent:   parent,
	}
	a.nextID++
	if state.IsTerminal() {
		n.fullyExpanded = true
	}
	return n
}

// iterate runs one Selection -> Expansion -> Rollout -> Backup cycle.
func (a *Agent[S, A]) iterate(root *Node[S, A]) {
	node := a.selection(root)
	child := a.expansion(node)
	reward := rules.RandomRollout(a.rules, child.state, a.rand)
	a.backup(child, reward)
}

// selection descends from root while the current node is non-terminal and
// fully expanded, choosing the max-UCB1 child at each step (ties broken
// uniformly at random). Returns the node where descent stopped.
func (a *Agent[S, A]) selection(root *Node[S, A]) *Node[S, A] {
	node := root
	for !node.state.IsTerminal() && node.fullyExpanded {
		node = a.selectChild(node)
	}
	return node
}

func (a *Agent[S, A]) selectChild(parent *Node[S, A]) *Node[S, A] {
	player := parent.state.NextPlayer()
	var best []*Node[S, A]
	bestScore := 0.0
	first := true
	for _, child := range parent.children {
		score := ucb1(parent, child, player)
		switch {
		case first || score > bestScore:
			best = best[:0]
			best = append(best, child)
			bestScore = score
			first = false
		case score == bestScore:
			best = append(best, child)
		}
	}
	return best[a.rand.Intn(len(best))]
}

// expansion creates one new child under node for a uniformly-randomly
// chosen untried action, or returns node unchanged if it is terminal.
func (a *Agent[S, A]) expansion(node *Node[S, A]) *Node[S, A] {
	if node.state.IsTerminal() {
		return node
	}

	actions := node.state.Actions()
	untried := make([]A, 0, len(actions))
	for _, action := range actions {
		if _, ok := node.children[action]; !ok {
			untried = append(untried, action)
		}
	}

	action := untried[a.rand.Intn(len(untried))]
	childState := a.rules.Play(node.state, action)
	child := a.newNode(node, childState)
	node.children[action] = child

	if len(node.children) == len(actions) {
		node.fullyExpanded = true
	}
	return child
}

// backup adds reward to node's rewards and increments its visits, then
// walks parent links to the root doing the same.
func (a *Agent[S, A]) backup(node *Node[S, A], reward rules.Reward) {
	for n := node; n != nil; n = n.parent {
		n.rewards.Add(reward)
		n.visits++
	}
}

// bestAction picks the root's child with the maximum UCB1 score from the
// root player's perspective, ties broken uniformly at random. This
// re-applies the exploration term to the final move too, rather than
// choosing by raw visit count.
func (a *Agent[S, A]) bestAction(root *Node[S, A]) A {
	player := root.state.NextPlayer()
	var best []A
	bestScore := 0.0
	first := true
	for action, child := range root.children {
		score := ucb1(root, child, player)
		switch {
		case first || score > bestScore:
			best = best[:0]
			best = append(best, action)
			bestScore = score
			first = false
		case score == bestScore:
			best = append(best, action)
		}
	}
	return best[a.rand.Intn(len(best))]
}
