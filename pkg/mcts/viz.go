package mcts

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
	"github.com/kaelari/gamesearch/pkg/rules"
)

const graphName = "mcts_tree"

// ExportDOT renders a finished tree (as returned by Agent.Tree) to the
// GraphViz DOT language: one subgraph per depth with rank=same, node
// labels "{W0}Win/{N}Sim ({ucb1:.1})", tooltips set to the debug-printed
// state, edges labelled by the action they carry, fully-expanded nodes
// drawn with a thick outline, and terminal states filled green (player
// Zero wins), red (player One wins) or yellow (tie).
func ExportDOT[S rules.State[A], A comparable](root *Node[S, A]) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}
	if err := g.SetStrict(true); err != nil {
		return "", err
	}

	levels := groupByDepth(root)
	for depth := 0; depth < len(levels); depth++ {
		sub := fmt.Sprintf("depth_%d", depth)
		if err := g.AddSubGraph(graphName, sub, map[string]string{"rank": "same"}); err != nil {
			return "", err
		}
		for _, n := range levels[depth] {
			if err := g.AddNode(sub, nodeName(n), nodeAttrs(n)); err != nil {
				return "", err
			}
		}
	}

	for depth := range levels {
		for _, n := range levels[depth] {
			for action, child := range n.children {
				attrs := map[string]string{"label": fmt.Sprintf("%q", fmt.Sprintf("%v", action))}
				if err := g.AddEdge(nodeName(n), nodeName(child), true, attrs); err != nil {
					return "", err
				}
			}
		}
	}

	return g.String(), nil
}

func nodeName[S rules.State[A], A comparable](n *Node[S, A]) string {
	return fmt.Sprintf("state_%d", n.id)
}

func nodeAttrs[S rules.State[A], A comparable](n *Node[S, A]) map[string]string {
	label := fmt.Sprintf("%gWin/%dSim (%.1f)", n.rewards.R0, n.visits, parentRelativeUCB1(n))
	attrs := map[string]string{
		"label":   fmt.Sprintf("%q", label),
		"tooltip": fmt.Sprintf("%q", fmt.Sprintf("%+v", n.state)),
	}
	if n.fullyExpanded {
		attrs["penwidth"] = "3"
	}
	if n.state.IsTerminal() {
		reward := n.state.Reward()
		attrs["style"] = "filled"
		switch {
		case reward.R0 > reward.R1:
			attrs["fillcolor"] = "greenyellow"
		case reward.R1 > reward.R0:
			attrs["fillcolor"] = "red"
		default:
			attrs["fillcolor"] = "yellow"
		}
	}
	return attrs
}

// parentRelativeUCB1 is n's UCB1 score as a child of its parent, computed
// from the tree's current visit counts and from the parent's own
// NextPlayer perspective.
// Zero at the root, which has no parent to score it.
func parentRelativeUCB1[S rules.State[A], A comparable](n *Node[S, A]) float64 {
	if n.parent == nil {
		return 0
	}
	return ucb1(n.parent, n, n.parent.state.NextPlayer())
}

// groupByDepth performs a BFS over the tree, returning one slice of nodes
// per depth level (levels[0] holds just the root).
func groupByDepth[S rules.State[A], A comparable](root *Node[S, A]) [][]*Node[S, A] {
	levels := [][]*Node[S, A]{{root}}
	frontier := []*Node[S, A]{root}
	for len(frontier) > 0 {
		var next []*Node[S, A]
		for _, n := range frontier {
			for _, child := range n.children {
				next = append(next, child)
			}
		}
		if len(next) == 0 {
			break
		}
		levels = append(levels, next)
		frontier = next
	}
	return levels
}
