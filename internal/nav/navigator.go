package nav

import (
	"fmt"
	"log"

	"github.com/mj1618/rotary-nav/internal/model"
	"github.com/mj1618/rotary-nav/internal/platform"
)

// Navigator is the façade the input-event shell talks to. It owns the
// caller-confirmed "currently focused" and "last touched" node IDs, the only
// state carried between queries, and acquires a fresh snapshot from the
// provider for every query. Not safe for concurrent use; the shell
// serializes input events.
type Navigator struct {
	src   platform.Source
	rules HUNRules

	// hunBounds, when non-empty, recognizes an unflagged HUN window by its
	// window bounds.
	hunBounds model.Rect

	focusedID     string
	lastTouchedID string
}

// New creates a Navigator over the given tree source.
func New(src platform.Source, rules HUNRules) *Navigator {
	return &Navigator{src: src, rules: rules}
}

// SetHUNBounds configures geometric HUN recognition for providers that do
// not flag the HUN window themselves.
func (nv *Navigator) SetHUNBounds(r model.Rect) { nv.hunBounds = r }

// SetLastTouched records the node last touched by direct interaction, used
// as a fallback when focus is unknown.
func (nv *Navigator) SetLastTouched(id string) { nv.lastTouchedID = id }

// FocusedID returns the navigator's notion of the currently focused node.
func (nv *Navigator) FocusedID() string { return nv.focusedID }

// query is one borrowed snapshot. Nothing in it survives past the call that
// acquired it.
type query struct {
	windows []*model.Window
	idx     model.Index
}

func (nv *Navigator) acquire() (*query, error) {
	windows, err := nv.src.ListWindows()
	if err != nil {
		return nil, fmt.Errorf("list windows: %w", err)
	}
	if !nv.hunBounds.Empty() {
		for _, w := range windows {
			if !w.HUN && w.Bounds == nv.hunBounds {
				w.HUN = true
			}
		}
	}
	return &query{windows: windows, idx: model.BuildIndex(windows)}, nil
}

// resolveSource walks the fallback chain for the node a search starts from:
// provider-reported system focus, then the last node this navigator focused,
// then the last touched node. Each candidate must still be focusable in the
// fresh snapshot; stale or parked focus falls through. Returns nil when the
// whole chain comes up empty.
func (nv *Navigator) resolveSource(q *query) *model.Node {
	for _, id := range []string{nv.src.FocusedNodeID(), nv.focusedID, nv.lastTouchedID} {
		if id == "" {
			continue
		}
		n := q.idx[id]
		if n == nil {
			log.Printf("rotary-nav: node %q not in current snapshot, falling back", id)
			continue
		}
		if CanTakeFocus(n) {
			return n
		}
	}
	return nil
}

// initialTarget picks the node focus should land on when nothing is focused:
// the default focusable of the first area of the topmost window, preferring
// non-HUN windows over the transient HUN.
func (nv *Navigator) initialTarget(q *query) *model.Node {
	sorted := model.SortWindows(q.windows)
	for _, hun := range []bool{false, true} {
		for _, w := range sorted {
			if w.HUN != hun {
				continue
			}
			for _, area := range AreasInWindow(w) {
				if t := DefaultFocus(area, q.idx); t != nil {
					return t
				}
			}
		}
	}
	return nil
}

// InitFocus resolves an initial focus target when none is known. It returns
// the chosen node and whether applying it would change the provider's
// current focus; a nil node means nothing in the snapshot can take focus.
func (nv *Navigator) InitFocus() (target *model.Node, changed bool, err error) {
	q, err := nv.acquire()
	if err != nil {
		return nil, false, err
	}

	currentID := nv.src.FocusedNodeID()
	target = nv.resolveSource(q)
	if target == nil {
		target = nv.initialTarget(q)
	}
	if target == nil {
		return nil, false, nil
	}
	nv.focusedID = target.ID
	return target, target.ID != currentID, nil
}

// Rotate advances focus by count steps in document order. A nil target means
// the event was not consumed; the recorded focus state is left untouched.
// When focus is unknown the rotate lands on the initial target instead,
// reported with Advanced 0.
func (nv *Navigator) Rotate(dir model.RotateDirection, count int) (RotateResult, error) {
	q, err := nv.acquire()
	if err != nil {
		return RotateResult{}, err
	}

	source := nv.resolveSource(q)
	if source == nil {
		if t := nv.initialTarget(q); t != nil {
			nv.focusedID = t.ID
			return RotateResult{Target: t}, nil
		}
		return RotateResult{}, nil
	}

	res := FindRotateTarget(source, dir, count)
	if res.Target != nil {
		nv.focusedID = res.Target.ID
	}
	return res, nil
}

// Nudge moves focus in a geometric direction. A nil target means the event
// was not consumed; the recorded focus state is left untouched. When focus
// is unknown the nudge lands on the initial target instead.
func (nv *Navigator) Nudge(dir model.Direction) (*model.Node, error) {
	q, err := nv.acquire()
	if err != nil {
		return nil, err
	}

	source := nv.resolveSource(q)
	if source == nil {
		if t := nv.initialTarget(q); t != nil {
			nv.focusedID = t.ID
			return t, nil
		}
		return nil, nil
	}

	target := FindNudgeTarget(q.windows, source, EnclosingArea(source), dir, nv.rules, q.idx)
	if target != nil {
		nv.focusedID = target.ID
	}
	return target, nil
}
