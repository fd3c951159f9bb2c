// Package nav implements the rotary/directional focus-navigation engine:
// document-order rotate search within focus areas and geometric nudge search
// across areas and windows. All functions operate on a read-only snapshot
// supplied by the tree provider and hold no state between queries.
package nav

import (
	"errors"

	"github.com/mj1618/rotary-nav/internal/model"
)

// ErrMalformedTree is returned when a traversal detects a cycle or exceeds
// the depth bound. Callers degrade to "no target found" rather than crash.
var ErrMalformedTree = errors.New("malformed node tree")

// maxDepth bounds traversal recursion. Real accessibility trees are a few
// dozen levels deep; anything past this indicates a corrupt snapshot.
const maxDepth = 256

// Order selects the DFS visit order.
type Order int

const (
	// PreOrder visits a node before its children (document order).
	PreOrder Order = iota

	// PostOrder visits a node after its children.
	PostOrder
)

// WalkOptions configures a traversal.
type WalkOptions struct {
	Order Order

	// Reverse walks children last-to-first, producing reverse document order.
	Reverse bool

	// Prune stops descent into a subtree. The pruned node itself is still
	// visited; its descendants are not.
	Prune func(*model.Node) bool
}

// Walk runs a depth-first traversal of the subtree rooted at root, calling
// visit for each node. visit returning false terminates the walk early.
// Every unpruned node is visited exactly once. A tree with a back-edge is
// reported as ErrMalformedTree instead of looping.
func Walk(root *model.Node, opts WalkOptions, visit func(*model.Node) bool) error {
	if root == nil {
		return nil
	}
	seen := make(map[*model.Node]bool)
	_, err := walk(root, opts, visit, seen, 0)
	return err
}

// walk returns false as its first result when visit asked to stop.
func walk(n *model.Node, opts WalkOptions, visit func(*model.Node) bool, seen map[*model.Node]bool, depth int) (bool, error) {
	if seen[n] || depth > maxDepth {
		return false, ErrMalformedTree
	}
	seen[n] = true

	if opts.Order == PreOrder {
		if !visit(n) {
			return false, nil
		}
	}

	if opts.Prune == nil || !opts.Prune(n) {
		children := n.Children
		for i := range children {
			c := children[i]
			if opts.Reverse {
				c = children[len(children)-1-i]
			}
			cont, err := walk(c, opts, visit, seen, depth+1)
			if err != nil {
				return false, err
			}
			if !cont {
				return false, nil
			}
		}
	}

	if opts.Order == PostOrder {
		if !visit(n) {
			return false, nil
		}
	}
	return true, nil
}
