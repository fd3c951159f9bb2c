package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mj1618/rotary-nav/internal/config"
	"github.com/mj1618/rotary-nav/internal/model"
	"github.com/mj1618/rotary-nav/internal/nav"
	"github.com/mj1618/rotary-nav/internal/platform"
	"github.com/mj1618/rotary-nav/internal/platform/snapshot"
	"github.com/spf13/cobra"
)

// addSnapshotFlags adds the flags shared by all navigation commands.
func addSnapshotFlags(cmd *cobra.Command) {
	cmd.Flags().String("snapshot", "", "Window/tree snapshot file (YAML or JSON, \"-\" for stdin)")
	cmd.Flags().String("from", "", "Node ID to navigate from (default: the snapshot's focused node)")
	cmd.MarkFlagRequired("snapshot")
}

// loadSnapshot reads the snapshot from the --snapshot flag, supporting "-"
// for stdin.
func loadSnapshot(cmd *cobra.Command) (*snapshot.Provider, error) {
	path, _ := cmd.Flags().GetString("snapshot")
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read snapshot from stdin: %w", err)
		}
		return snapshot.Parse(data)
	}
	return snapshot.Load(path)
}

// sourceOverride hides the snapshot's declared focus so an explicit --from
// node wins the navigator's source-resolution chain.
type sourceOverride struct {
	*snapshot.Provider
}

func (s sourceOverride) FocusedNodeID() string { return "" }

// buildNavigator wires a Navigator from the --snapshot, --from, and --config
// flags. An explicit --from shadows the snapshot's focused node.
func buildNavigator(cmd *cobra.Command) (*nav.Navigator, error) {
	provider, err := loadSnapshot(cmd)
	if err != nil {
		return nil, err
	}

	cfgPath, _ := cmd.Root().PersistentFlags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	rules, err := cfg.Rules()
	if err != nil {
		return nil, err
	}

	var src platform.Source = provider
	from, _ := cmd.Flags().GetString("from")
	if from != "" {
		if err := checkNodeExists(provider, from); err != nil {
			return nil, err
		}
		src = sourceOverride{provider}
	}

	nv := nav.New(src, rules)
	nv.SetHUNBounds(cfg.HUNRect())
	if from != "" {
		nv.SetLastTouched(from)
	}
	return nv, nil
}

// checkNodeExists verifies an explicitly requested node ID is present in the
// snapshot, so a typo fails loudly instead of silently falling back.
func checkNodeExists(provider *snapshot.Provider, id string) error {
	windows, err := provider.ListWindows()
	if err != nil {
		return err
	}
	if model.BuildIndex(windows)[id] == nil {
		return fmt.Errorf("node %q not found in snapshot", id)
	}
	return nil
}

// NodeInfo is the compact representation of a node in command output.
type NodeInfo struct {
	ID     string `yaml:"id"               json:"id"`
	Role   string `yaml:"role"             json:"role"`
	Bounds [4]int `yaml:"bounds"           json:"bounds"`
	Window string `yaml:"window,omitempty" json:"window,omitempty"`
}

// nodeInfo converts a node to its output form. Returns nil for a nil node.
func nodeInfo(n *model.Node) *NodeInfo {
	if n == nil {
		return nil
	}
	info := &NodeInfo{
		ID:     n.ID,
		Role:   n.Role.String(),
		Bounds: n.Bounds.Array(),
	}
	if w := n.Window(); w != nil {
		info.Window = w.ID
	}
	return info
}
