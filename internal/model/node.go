package model

import "sort"

// AreaMeta is the optional metadata a focus-area node carries. All target
// fields are node IDs resolved against the query's snapshot, so a dangling
// ID degrades to "no target" rather than a dangling pointer.
type AreaMeta struct {
	// DefaultFocus is the ID of the node that should receive focus when this
	// area is entered, if it is still focusable at resolution time.
	DefaultFocus string

	// Wrap makes rotate search cycle from one end of the area to the other
	// instead of stopping at the boundary.
	Wrap bool

	// Nudge maps a direction to an explicit author-specified target node ID,
	// overriding geometric search for that direction.
	Nudge map[Direction]string
}

// Override returns the explicit nudge target ID for a direction, or "".
func (m *AreaMeta) Override(dir Direction) string {
	if m == nil || m.Nudge == nil {
		return ""
	}
	return m.Nudge[dir]
}

// Node is one element of a window's accessibility tree. Nodes are created by
// the tree provider for a single navigation query and are read-only: the
// navigation core never mutates a node and never retains one past the query.
type Node struct {
	// ID is the provider-assigned handle, unique within one snapshot.
	ID string

	Role   RoleTag
	Bounds Rect

	Focusable bool
	Enabled   bool
	Visible   bool

	// Area is set only on RoleFocusArea nodes.
	Area *AreaMeta

	Children []*Node

	parent *Node
	window *Window
}

// Parent returns the node's parent, or nil at a window root.
func (n *Node) Parent() *Node { return n.parent }

// Window returns the window this node belongs to.
func (n *Node) Window() *Window { return n.window }

// IsDescendantOf reports whether n is a strict descendant of ancestor.
func (n *Node) IsDescendantOf(ancestor *Node) bool {
	if n == nil || ancestor == nil {
		return false
	}
	for p := n.parent; p != nil; p = p.parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// Window is one top-level surface in the snapshot. Windows are totally
// ordered by Layer: a higher layer is more recent/foreground and wins
// tie-breaks during nudge search.
type Window struct {
	ID     string
	Bounds Rect

	// HUN marks the transient heads-up-notification window, which has
	// special nudge entry/escape rules.
	HUN bool

	Layer int

	Root *Node
}

// Link populates parent and window back-pointers throughout the window's
// tree. Providers call this once after building a snapshot; the pointers are
// lookup-only and carry no ownership.
func (w *Window) Link() {
	if w.Root == nil {
		return
	}
	var link func(n, parent *Node)
	link = func(n, parent *Node) {
		n.parent = parent
		n.window = w
		for _, c := range n.Children {
			link(c, n)
		}
	}
	link(w.Root, nil)
}

// FindByID searches the window's tree for a node with the given ID.
// Returns nil if not found.
func (w *Window) FindByID(id string) *Node {
	if w.Root == nil || id == "" {
		return nil
	}
	var find func(n *Node) *Node
	find = func(n *Node) *Node {
		if n.ID == id {
			return n
		}
		for _, c := range n.Children {
			if found := find(c); found != nil {
				return found
			}
		}
		return nil
	}
	return find(w.Root)
}

// Index maps node IDs to nodes across a set of windows, built once per
// navigation query so override and default-focus IDs resolve in O(1).
type Index map[string]*Node

// BuildIndex collects every node of every window into an ID index. On
// duplicate IDs the node in the higher-layer window wins, matching the
// window-priority tie-break used elsewhere.
func BuildIndex(windows []*Window) Index {
	idx := make(Index)
	byLayerAsc := make([]*Window, len(windows))
	copy(byLayerAsc, windows)
	sort.SliceStable(byLayerAsc, func(i, j int) bool {
		return byLayerAsc[i].Layer < byLayerAsc[j].Layer
	})
	for _, w := range byLayerAsc {
		if w.Root == nil {
			continue
		}
		var walk func(n *Node)
		walk = func(n *Node) {
			if n.ID != "" {
				idx[n.ID] = n
			}
			for _, c := range n.Children {
				walk(c)
			}
		}
		walk(w.Root)
	}
	return idx
}

// SortWindows returns the windows ordered foreground-first (highest layer
// first). The input slice is not modified.
func SortWindows(windows []*Window) []*Window {
	sorted := make([]*Window, len(windows))
	copy(sorted, windows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Layer > sorted[j].Layer
	})
	return sorted
}
