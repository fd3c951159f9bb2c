package cmd

import (
	"github.com/mj1618/rotary-nav/internal/model"
	"github.com/mj1618/rotary-nav/internal/nav"
	"github.com/mj1618/rotary-nav/internal/output"
	"github.com/spf13/cobra"
)

var areasCmd = &cobra.Command{
	Use:   "areas",
	Short: "List the focus areas in a snapshot",
	Long: "List every focus area per window with its wrap flag, declared nudge\n" +
		"overrides, and resolved default/first/last focusable nodes.",
	RunE: runAreas,
}

func init() {
	rootCmd.AddCommand(areasCmd)
	areasCmd.Flags().String("snapshot", "", "Window/tree snapshot file (YAML or JSON, \"-\" for stdin)")
	areasCmd.MarkFlagRequired("snapshot")
	areasCmd.Flags().String("window", "", "Only show areas of this window ID")
}

// areaEntry is the output row for one focus area.
type areaEntry struct {
	ID       string            `yaml:"id"                 json:"id"`
	Window   string            `yaml:"window"             json:"window"`
	Bounds   [4]int            `yaml:"bounds"             json:"bounds"`
	Implicit bool              `yaml:"implicit,omitempty" json:"implicit,omitempty"`
	Wrap     bool              `yaml:"wrap,omitempty"     json:"wrap,omitempty"`
	Default  string            `yaml:"default,omitempty"  json:"default,omitempty"`
	First    string            `yaml:"first,omitempty"    json:"first,omitempty"`
	Last     string            `yaml:"last,omitempty"     json:"last,omitempty"`
	Nudge    map[string]string `yaml:"nudge,omitempty"    json:"nudge,omitempty"`
}

func runAreas(cmd *cobra.Command, args []string) error {
	provider, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}
	windowID, _ := cmd.Flags().GetString("window")

	windows, err := provider.ListWindows()
	if err != nil {
		return err
	}
	idx := model.BuildIndex(windows)

	entries := []areaEntry{}
	for _, w := range model.SortWindows(windows) {
		if windowID != "" && w.ID != windowID {
			continue
		}
		for _, area := range nav.AreasInWindow(w) {
			entry := areaEntry{
				ID:       area.ID,
				Window:   w.ID,
				Bounds:   area.Bounds.Array(),
				Implicit: !nav.IsFocusArea(area),
				Wrap:     area.Area != nil && area.Area.Wrap,
				Default:  nodeID(nav.DefaultFocus(area, idx)),
				First:    nodeID(nav.FirstFocusable(area)),
				Last:     nodeID(nav.LastFocusable(area)),
			}
			if area.Area != nil && len(area.Area.Nudge) > 0 {
				entry.Nudge = make(map[string]string, len(area.Area.Nudge))
				for dir, target := range area.Area.Nudge {
					entry.Nudge[dir.String()] = target
				}
			}
			entries = append(entries, entry)
		}
	}
	return output.Print(entries)
}

func nodeID(n *model.Node) string {
	if n == nil {
		return ""
	}
	return n.ID
}
