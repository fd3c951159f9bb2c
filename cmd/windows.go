package cmd

import (
	"github.com/mj1618/rotary-nav/internal/model"
	"github.com/mj1618/rotary-nav/internal/nav"
	"github.com/mj1618/rotary-nav/internal/output"
	"github.com/spf13/cobra"
)

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List the windows in a snapshot",
	Long:  "List a snapshot's windows with their layer, bounds, HUN flag, and focus-area count, foreground first.",
	RunE:  runWindows,
}

func init() {
	rootCmd.AddCommand(windowsCmd)
	windowsCmd.Flags().String("snapshot", "", "Window/tree snapshot file (YAML or JSON, \"-\" for stdin)")
	windowsCmd.MarkFlagRequired("snapshot")
	windowsCmd.Flags().Bool("hun", false, "Only show heads-up-notification windows")
}

// windowEntry is the output row for one window.
type windowEntry struct {
	ID     string `yaml:"id"            json:"id"`
	Layer  int    `yaml:"layer"         json:"layer"`
	Bounds [4]int `yaml:"bounds"        json:"bounds"`
	HUN    bool   `yaml:"hun,omitempty" json:"hun,omitempty"`
	Areas  int    `yaml:"areas"         json:"areas"`
}

func runWindows(cmd *cobra.Command, args []string) error {
	provider, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}
	hunOnly, _ := cmd.Flags().GetBool("hun")

	windows, err := provider.ListWindows()
	if err != nil {
		return err
	}

	entries := []windowEntry{}
	for _, w := range model.SortWindows(windows) {
		if hunOnly && !w.HUN {
			continue
		}
		entries = append(entries, windowEntry{
			ID:     w.ID,
			Layer:  w.Layer,
			Bounds: w.Bounds.Array(),
			HUN:    w.HUN,
			Areas:  len(nav.AreasInWindow(w)),
		})
	}
	return output.Print(entries)
}
