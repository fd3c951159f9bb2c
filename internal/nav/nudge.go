package nav

import "github.com/mj1618/rotary-nav/internal/model"

// HUNRules captures the heads-up-notification window behavior derived from
// static configuration: the one direction that escapes the HUN from inside,
// and the one direction that enters it from outside (up when docked top,
// down when docked bottom).
type HUNRules struct {
	Escape model.Direction
	Entry  model.Direction
}

// FindNudgeTarget returns the node that should receive focus for a
// directional nudge, or nil when the nudge is a no-op. Precedence: explicit
// per-direction override on the source area, then HUN entry/escape rules,
// then geometric nearest-area search. A selected focus area is resolved to a
// concrete node via DefaultFocus before being returned.
func FindNudgeTarget(windows []*model.Window, source, sourceArea *model.Node, dir model.Direction, rules HUNRules, idx model.Index) *model.Node {
	if source == nil || len(windows) == 0 {
		return nil
	}

	if target := resolveOverride(sourceArea, dir, idx); target != nil {
		return target
	}

	srcWin := source.Window()
	inHUN := srcWin != nil && srcWin.HUN

	eligible := windows
	switch {
	case inHUN && dir == rules.Escape:
		// The escape direction bypasses the HUN entirely.
		eligible = filterWindows(windows, func(w *model.Window) bool { return !w.HUN })
	case inHUN:
		// Any other direction stays inside the HUN.
		eligible = []*model.Window{srcWin}
	case dir == rules.Entry:
		// Entering the HUN takes priority over same-window candidates.
		huns := filterWindows(windows, func(w *model.Window) bool { return w.HUN && w != srcWin })
		if area := bestAreaInDirection(huns, source, sourceArea, dir); area != nil {
			return DefaultFocus(area, idx)
		}
	}

	area := bestAreaInDirection(eligible, source, sourceArea, dir)
	if area == nil {
		return nil
	}
	return DefaultFocus(area, idx)
}

// resolveOverride applies the source area's explicit nudge target for dir.
// An override pointing at a focus area resolves to that area's default
// focusable; a stale or unfocusable override is ignored so the search can
// fall through to geometry.
func resolveOverride(sourceArea *model.Node, dir model.Direction, idx model.Index) *model.Node {
	override := NudgeOverride(sourceArea, dir, idx)
	if override == nil {
		return nil
	}
	if IsFocusArea(override) {
		return DefaultFocus(override, idx)
	}
	if CanTakeFocus(override) {
		return override
	}
	return nil
}

// bestAreaInDirection runs the geometric nearest-area search over the given
// windows, excluding the source area. Windows are scanned foreground-first
// and areas in document order, so score ties resolve to the higher layer,
// then the earlier area.
func bestAreaInDirection(windows []*model.Window, source, sourceArea *model.Node, dir model.Direction) *model.Node {
	var best *model.Node
	bestScore := 0
	for _, w := range model.SortWindows(windows) {
		for _, area := range AreasInWindow(w) {
			if area == sourceArea || area.Bounds.Empty() {
				continue
			}
			if !inDirection(source.Bounds, area.Bounds, dir) {
				continue
			}
			if FirstFocusable(area) == nil {
				continue
			}
			score := nudgeScore(source.Bounds, area.Bounds, dir)
			if best == nil || score < bestScore {
				best = area
				bestScore = score
			}
		}
	}
	return best
}

// inDirection reports whether the candidate rect lies in the given direction
// from the source rect, comparing centers.
func inDirection(src, dst model.Rect, dir model.Direction) bool {
	sx, sy := src.Center()
	dx, dy := dst.Center()
	switch dir {
	case model.DirUp:
		return dy < sy
	case model.DirDown:
		return dy > sy
	case model.DirLeft:
		return dx < sx
	case model.DirRight:
		return dx > sx
	}
	return false
}

// nudgeScore ranks a candidate: the gap between the facing edges along the
// nudge axis, plus twice the cross-axis center offset so aligned areas beat
// marginally nearer but badly offset ones. Lower is better.
func nudgeScore(src, dst model.Rect, dir model.Direction) int {
	sx, sy := src.Center()
	dx, dy := dst.Center()

	var gap, cross int
	switch dir {
	case model.DirUp:
		gap = src.Top() - dst.Bottom()
		cross = abs(dx - sx)
	case model.DirDown:
		gap = dst.Top() - src.Bottom()
		cross = abs(dx - sx)
	case model.DirLeft:
		gap = src.Left() - dst.Right()
		cross = abs(dy - sy)
	case model.DirRight:
		gap = dst.Left() - src.Right()
		cross = abs(dy - sy)
	}
	if gap < 0 {
		// Overlapping rects: no directional gap.
		gap = 0
	}
	return gap + 2*cross
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func filterWindows(windows []*model.Window, keep func(*model.Window) bool) []*model.Window {
	var out []*model.Window
	for _, w := range windows {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}
