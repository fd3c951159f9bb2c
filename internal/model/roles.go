package model

import "fmt"

// RoleTag classifies a node for navigation purposes. The provider adapter
// resolves raw role strings to tags once at snapshot decode time, so the
// navigation core never inspects class-name strings.
type RoleTag int

const (
	// RoleOrdinary is a plain node with no navigation semantics of its own.
	RoleOrdinary RoleTag = iota

	// RoleFocusArea marks a subtree boundary grouping related focusable nodes.
	RoleFocusArea

	// RoleScrollable marks a scrollable container treated as an atomic rotate
	// stop while focus is outside it.
	RoleScrollable

	// RoleFocusParking marks a zero-size placeholder that holds system focus
	// when nothing meaningful should be focused. Never a navigation result.
	RoleFocusParking
)

// roleNames maps serialized role strings to tags. Raw accessibility class
// names from the vehicle UI toolkit are normalized to these by the provider.
var roleNames = map[string]RoleTag{
	"":        RoleOrdinary,
	"node":    RoleOrdinary,
	"area":    RoleFocusArea,
	"scroll":  RoleScrollable,
	"parking": RoleFocusParking,
}

// String returns the serialized name of the tag.
func (t RoleTag) String() string {
	switch t {
	case RoleFocusArea:
		return "area"
	case RoleScrollable:
		return "scroll"
	case RoleFocusParking:
		return "parking"
	}
	return "node"
}

// ParseRoleTag converts a serialized role string to a RoleTag.
func ParseRoleTag(s string) (RoleTag, error) {
	if tag, ok := roleNames[s]; ok {
		return tag, nil
	}
	return RoleOrdinary, fmt.Errorf("unknown role: %q (expected node, area, scroll, or parking)", s)
}
