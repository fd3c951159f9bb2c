package nav

import "github.com/mj1618/rotary-nav/internal/model"

// Test fixtures are built with these helpers and linked via Window.Link so
// parent/window pointers behave exactly as provider-built snapshots do.

func btn(id string, x, y int) *model.Node {
	return &model.Node{
		ID:        id,
		Bounds:    model.Rect{X: x, Y: y, W: 100, H: 40},
		Focusable: true,
		Enabled:   true,
		Visible:   true,
	}
}

func group(id string, children ...*model.Node) *model.Node {
	return &model.Node{
		ID:       id,
		Bounds:   model.Rect{X: 0, Y: 0, W: 1280, H: 720},
		Enabled:  true,
		Visible:  true,
		Children: children,
	}
}

func area(id string, bounds model.Rect, meta *model.AreaMeta, children ...*model.Node) *model.Node {
	return &model.Node{
		ID:       id,
		Role:     model.RoleFocusArea,
		Bounds:   bounds,
		Enabled:  true,
		Visible:  true,
		Area:     meta,
		Children: children,
	}
}

func scroll(id string, focusable bool, children ...*model.Node) *model.Node {
	return &model.Node{
		ID:        id,
		Role:      model.RoleScrollable,
		Bounds:    model.Rect{X: 0, Y: 100, W: 400, H: 400},
		Focusable: focusable,
		Enabled:   true,
		Visible:   true,
		Children:  children,
	}
}

func parking(id string) *model.Node {
	return &model.Node{
		ID:        id,
		Role:      model.RoleFocusParking,
		Focusable: true,
		Enabled:   true,
		Visible:   true,
	}
}

func window(id string, layer int, hun bool, bounds model.Rect, root *model.Node) *model.Window {
	w := &model.Window{ID: id, Bounds: bounds, HUN: hun, Layer: layer, Root: root}
	w.Link()
	return w
}

// visitOrder runs Walk and records visited IDs.
func visitOrder(root *model.Node, opts WalkOptions) ([]string, error) {
	var ids []string
	err := Walk(root, opts, func(n *model.Node) bool {
		ids = append(ids, n.ID)
		return true
	})
	return ids, err
}

func sameIDs(got []string, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
