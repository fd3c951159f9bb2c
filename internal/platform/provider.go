// Package platform defines the tree-provider capability the navigation
// engine is built against. The engine consumes whatever Source is injected:
// a vehicle accessibility service in production, a snapshot file in tests
// and in the CLI.
package platform

import "github.com/mj1618/rotary-nav/internal/model"

// Source supplies the window/tree snapshot for one navigation query. The
// returned windows are valid only for the duration of that query; callers
// must not retain node references across queries.
type Source interface {
	// ListWindows returns the visible windows in provider z-order. Each
	// window's tree must already be linked (parent/window back-pointers).
	ListWindows() ([]*model.Window, error)

	// FocusedNodeID returns the ID of the node holding system focus, or ""
	// when the provider does not know.
	FocusedNodeID() string
}
