package nav

import "github.com/mj1618/rotary-nav/internal/model"

// IsFocusable reports whether a node can hold visual focus right now:
// flagged focusable, enabled, visible on screen, with non-empty bounds.
// A node with empty bounds is never focusable regardless of its flag.
func IsFocusable(n *model.Node) bool {
	return n != nil && n.Focusable && n.Enabled && n.Visible && !n.Bounds.Empty()
}

// IsFocusArea reports whether the node is a focus-area boundary.
func IsFocusArea(n *model.Node) bool {
	return n != nil && n.Role == model.RoleFocusArea
}

// IsScrollable reports whether the node is a scrollable container.
func IsScrollable(n *model.Node) bool {
	return n != nil && n.Role == model.RoleScrollable
}

// IsFocusParking reports whether the node is a focus-parking marker.
func IsFocusParking(n *model.Node) bool {
	return n != nil && n.Role == model.RoleFocusParking
}

// CanTakeFocus reports whether the node is a legitimate navigation result:
// focusable and not a parking marker. Parking markers may hold system focus
// between queries but are never returned as a target.
func CanTakeFocus(n *model.Node) bool {
	return IsFocusable(n) && !IsFocusParking(n)
}
