package nav

import "github.com/mj1618/rotary-nav/internal/model"

// RotateResult is the outcome of a rotate search. Advanced < requested count
// means the search hit the area boundary without wrap; Target is nil when no
// step at all was possible.
type RotateResult struct {
	Target   *model.Node
	Advanced int
}

// FindRotateTarget advances up to count focusable stops from source in the
// given document-order direction, staying within source's enclosing focus
// area. Scrollable containers not holding the source are single atomic
// stops; once focus is inside one, rotation proceeds item-by-item among the
// container's currently materialized children. When the area's wrap flag is
// set, a search that hits the boundary continues once from the opposite end.
func FindRotateTarget(source *model.Node, dir model.RotateDirection, count int) RotateResult {
	if source == nil || count <= 0 {
		return RotateResult{}
	}
	area := EnclosingArea(source)
	if area == nil {
		return RotateResult{}
	}

	before, after, ok := rotateStops(area, source)
	if !ok {
		return RotateResult{}
	}

	// Order candidates outward from the source, appending the far side once
	// when wrap-around is enabled.
	var seq []*model.Node
	if dir == model.RotateForward {
		seq = append(seq, after...)
		if areaWraps(area) {
			seq = append(seq, before...)
		}
	} else {
		seq = append(seq, reverseNodes(before)...)
		if areaWraps(area) {
			seq = append(seq, reverseNodes(after)...)
		}
	}

	if len(seq) == 0 {
		return RotateResult{}
	}
	advanced := count
	if advanced > len(seq) {
		advanced = len(seq)
	}
	return RotateResult{Target: seq[advanced-1], Advanced: advanced}
}

// areaWraps reports whether the area's rotate search cycles around.
func areaWraps(area *model.Node) bool {
	return IsFocusArea(area) && area.Area != nil && area.Area.Wrap
}

// rotateStops collects the area's focusable stops in document order, split
// into those before and after the source. The source itself is never a stop.
// ok is false when the source was not found in the area or the tree is
// malformed.
func rotateStops(area, source *model.Node) (before, after []*model.Node, ok bool) {
	sourceSeen := false
	pruneForeign := pruneForeignAreas(area)

	err := Walk(area, WalkOptions{
		Order: PreOrder,
		Prune: func(n *model.Node) bool {
			if pruneForeign(n) {
				return true
			}
			// A scrollable container is atomic unless the source lives
			// inside it: then its materialized items traverse normally.
			if IsScrollable(n) && !source.IsDescendantOf(n) {
				return true
			}
			return false
		},
	}, func(n *model.Node) bool {
		if n == source {
			sourceSeen = true
			return true
		}
		stop := candidateStop(n, area, source)
		if stop == nil {
			return true
		}
		if sourceSeen {
			after = append(after, stop)
		} else {
			before = append(before, stop)
		}
		return true
	})
	if err != nil || !sourceSeen {
		return nil, nil, false
	}
	return before, after, true
}

// candidateStop maps a visited node to the rotate stop it contributes, or
// nil. An atomic scrollable container that is not itself focusable
// contributes its first reachable focusable point instead.
func candidateStop(n, area, source *model.Node) *model.Node {
	if n == area {
		return nil
	}
	if IsScrollable(n) {
		if source.IsDescendantOf(n) {
			// Focus is inside: the container's items are the stops, not
			// the container itself.
			return nil
		}
		if CanTakeFocus(n) {
			return n
		}
		return FirstFocusable(n)
	}
	if CanTakeFocus(n) {
		return n
	}
	return nil
}

// reverseNodes returns a reversed copy of nodes.
func reverseNodes(nodes []*model.Node) []*model.Node {
	out := make([]*model.Node, len(nodes))
	for i, n := range nodes {
		out[len(nodes)-1-i] = n
	}
	return out
}
