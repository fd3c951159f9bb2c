// Package snapshot implements a platform.Source backed by a serialized
// window/tree snapshot. It is the data source for the CLI and the MCP
// server, and the synthetic-tree harness the engine is tested with. YAML and
// JSON documents are both accepted (JSON is a YAML subset).
package snapshot

import (
	"fmt"
	"os"

	"github.com/mj1618/rotary-nav/internal/model"
	"gopkg.in/yaml.v3"
)

// doc is the top-level snapshot document.
type doc struct {
	// Focused is the ID of the node currently holding system focus.
	Focused string       `yaml:"focused,omitempty" json:"focused,omitempty"`
	Windows []windowSpec `yaml:"windows"           json:"windows"`
}

type windowSpec struct {
	ID     string    `yaml:"id"             json:"id"`
	Bounds [4]int    `yaml:"bounds"         json:"bounds"`
	Layer  int       `yaml:"layer"          json:"layer"`
	HUN    bool      `yaml:"hun,omitempty"  json:"hun,omitempty"`
	Root   *nodeSpec `yaml:"root"           json:"root"`
}

// nodeSpec is one serialized node. Enabled and visible default to true when
// omitted; focusable defaults to false. The area fields (wrap, default_focus,
// nudge) are only meaningful on role "area" nodes.
type nodeSpec struct {
	ID        string `yaml:"id"                  json:"id"`
	Role      string `yaml:"role,omitempty"      json:"role,omitempty"`
	Bounds    [4]int `yaml:"bounds"              json:"bounds"`
	Focusable bool   `yaml:"focusable,omitempty" json:"focusable,omitempty"`
	Enabled   *bool  `yaml:"enabled,omitempty"   json:"enabled,omitempty"`
	Visible   *bool  `yaml:"visible,omitempty"   json:"visible,omitempty"`

	Wrap         bool              `yaml:"wrap,omitempty"          json:"wrap,omitempty"`
	DefaultFocus string            `yaml:"default_focus,omitempty" json:"default_focus,omitempty"`
	Nudge        map[string]string `yaml:"nudge,omitempty"         json:"nudge,omitempty"`

	Children []*nodeSpec `yaml:"children,omitempty" json:"children,omitempty"`
}

// Provider is a platform.Source over a parsed snapshot document. Each
// ListWindows call materializes fresh model trees, so node references from
// one query never alias a later query's snapshot.
type Provider struct {
	d doc
}

// Load reads and parses a snapshot file.
func Load(path string) (*Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a snapshot document.
func Parse(data []byte) (*Provider, error) {
	var d doc
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if len(d.Windows) == 0 {
		return nil, fmt.Errorf("snapshot has no windows")
	}
	p := &Provider{d: d}
	// Materialize once up front so structural errors surface at load time
	// rather than mid-query.
	if _, err := p.ListWindows(); err != nil {
		return nil, err
	}
	return p, nil
}

// ListWindows builds the snapshot's windows as linked model trees.
func (p *Provider) ListWindows() ([]*model.Window, error) {
	seen := make(map[string]string)
	windows := make([]*model.Window, 0, len(p.d.Windows))
	for i := range p.d.Windows {
		ws := &p.d.Windows[i]
		if ws.Root == nil {
			return nil, fmt.Errorf("window %q: missing root node", ws.ID)
		}
		root, err := buildNode(ws.Root, ws.ID, seen)
		if err != nil {
			return nil, err
		}
		w := &model.Window{
			ID:     ws.ID,
			Bounds: model.RectFromArray(ws.Bounds),
			HUN:    ws.HUN,
			Layer:  ws.Layer,
			Root:   root,
		}
		w.Link()
		windows = append(windows, w)
	}
	return windows, nil
}

// FocusedNodeID returns the snapshot's declared focus holder, or "".
func (p *Provider) FocusedNodeID() string {
	return p.d.Focused
}

func buildNode(spec *nodeSpec, windowID string, seen map[string]string) (*model.Node, error) {
	if spec.ID == "" {
		return nil, fmt.Errorf("window %q: node with empty id", windowID)
	}
	if prev, dup := seen[spec.ID]; dup {
		return nil, fmt.Errorf("duplicate node id %q (windows %q and %q)", spec.ID, prev, windowID)
	}
	seen[spec.ID] = windowID

	role, err := model.ParseRoleTag(spec.Role)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", spec.ID, err)
	}

	n := &model.Node{
		ID:        spec.ID,
		Role:      role,
		Bounds:    model.RectFromArray(spec.Bounds),
		Focusable: spec.Focusable,
		Enabled:   spec.Enabled == nil || *spec.Enabled,
		Visible:   spec.Visible == nil || *spec.Visible,
	}

	if role == model.RoleFocusArea {
		meta, err := buildAreaMeta(spec)
		if err != nil {
			return nil, err
		}
		n.Area = meta
	} else if spec.Wrap || spec.DefaultFocus != "" || len(spec.Nudge) > 0 {
		return nil, fmt.Errorf("node %q: area metadata on non-area role %q", spec.ID, spec.Role)
	}

	for _, cs := range spec.Children {
		child, err := buildNode(cs, windowID, seen)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

func buildAreaMeta(spec *nodeSpec) (*model.AreaMeta, error) {
	meta := &model.AreaMeta{
		DefaultFocus: spec.DefaultFocus,
		Wrap:         spec.Wrap,
	}
	if len(spec.Nudge) > 0 {
		meta.Nudge = make(map[model.Direction]string, len(spec.Nudge))
		for dirName, target := range spec.Nudge {
			dir, err := model.ParseDirection(dirName)
			if err != nil {
				return nil, fmt.Errorf("area %q: %w", spec.ID, err)
			}
			meta.Nudge[dir] = target
		}
	}
	return meta, nil
}
