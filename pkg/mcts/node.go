package mcts

import "github.com/kaelari/gamesearch/pkg/rules"

// Node is one vertex of a search tree: the game state it represents, the
// cumulative rewards and visit count backed up into it, its children
// keyed by the action that produced each, and a weak (non-owning) link to
// its parent used only during backup.
type Node[S rules.State[A], A comparable] struct {
	id            int
	state         S
	rewards       rules.Reward
	visits        int
	children      map[A]*Node[S, A]
	parent        *Node[S, A]
	fullyExpanded bool
}

// ID is a monotonic integer, unique within the tree that produced it —
// it carries no meaning across separate searches.
func (n *Node[S, A]) ID() int { return n.id }

// State returns the game state at this node.
func (n *Node[S, A]) State() S { return n.state }

// Rewards returns the cumulative reward vector backed up into this node.
func (n *Node[S, A]) Rewards() rules.Reward { return n.rewards }

// Visits returns the number of times this node has been visited.
func (n *Node[S, A]) Visits() int { return n.visits }

// Children returns the node's children keyed by the action that produced
// each. The returned map must not be mutated by callers.
func (n *Node[S, A]) Children() map[A]*Node[S, A] { return n.children }

// Parent returns the node's parent, or nil at the root.
func (n *Node[S, A]) Parent() *Node[S, A] { return n.parent }

// FullyExpanded reports whether every legal action at this node already
// has a child.
func (n *Node[S, A]) FullyExpanded() bool { return n.fullyExpanded }
