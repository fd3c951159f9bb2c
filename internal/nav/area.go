package nav

import "github.com/mj1618/rotary-nav/internal/model"

// EnclosingArea returns the nearest ancestor of n tagged as a focus area.
// When no tagged ancestor exists the window root acts as an implicit area.
// Returns nil only if n is detached from any window.
func EnclosingArea(n *model.Node) *model.Node {
	if n == nil {
		return nil
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if IsFocusArea(p) {
			return p
		}
	}
	if w := n.Window(); w != nil {
		return w.Root
	}
	return nil
}

// AreasInWindow returns the window's focus areas in document order. A window
// with no tagged areas contributes its root as the single implicit area.
func AreasInWindow(w *model.Window) []*model.Node {
	if w == nil || w.Root == nil {
		return nil
	}
	var areas []*model.Node
	err := Walk(w.Root, WalkOptions{Order: PreOrder}, func(n *model.Node) bool {
		if IsFocusArea(n) {
			areas = append(areas, n)
		}
		return true
	})
	if err != nil {
		return nil
	}
	if len(areas) == 0 {
		areas = append(areas, w.Root)
	}
	return areas
}

// pruneForeignAreas stops descent into focus areas nested inside area:
// their contents belong to the nested area, not to this one.
func pruneForeignAreas(area *model.Node) func(*model.Node) bool {
	return func(n *model.Node) bool {
		return n != area && IsFocusArea(n)
	}
}

// FirstFocusable returns the first node inside area, in document order, that
// can take focus. A focusable scrollable container is itself eligible as an
// atomic unit and wins over its children; a non-focusable one is entered,
// since its currently materialized children are part of the layout.
func FirstFocusable(area *model.Node) *model.Node {
	return firstFocusable(area, false)
}

// LastFocusable is FirstFocusable in reverse document order.
func LastFocusable(area *model.Node) *model.Node {
	return firstFocusable(area, true)
}

func firstFocusable(area *model.Node, reverse bool) *model.Node {
	if area == nil {
		return nil
	}
	var found *model.Node
	err := Walk(area, WalkOptions{
		Order:   PreOrder,
		Reverse: reverse,
		Prune:   pruneForeignAreas(area),
	}, func(n *model.Node) bool {
		if n != area && CanTakeFocus(n) {
			found = n
			return false
		}
		return true
	})
	if err != nil {
		return nil
	}
	return found
}

// DefaultFocus resolves the node that should receive focus when area is
// entered: the area's declared default-focus target when it is still
// focusable, otherwise the first focusable descendant.
func DefaultFocus(area *model.Node, idx model.Index) *model.Node {
	if area == nil {
		return nil
	}
	if IsFocusArea(area) && area.Area != nil && area.Area.DefaultFocus != "" {
		if target := idx[area.Area.DefaultFocus]; CanTakeFocus(target) {
			return target
		}
	}
	return FirstFocusable(area)
}

// NudgeOverride returns the area's explicit nudge target for a direction, or
// nil when none is declared or the declared ID no longer resolves.
func NudgeOverride(area *model.Node, dir model.Direction, idx model.Index) *model.Node {
	if area == nil || !IsFocusArea(area) {
		return nil
	}
	id := area.Area.Override(dir)
	if id == "" {
		return nil
	}
	return idx[id]
}
