package cmd

import (
	"github.com/mj1618/rotary-nav/internal/output"
	"github.com/spf13/cobra"
)

// InitFocusResult is the output of the init-focus command. Changed reports
// whether applying the target would move system focus.
type InitFocusResult struct {
	OK      bool      `yaml:"ok"               json:"ok"`
	Action  string    `yaml:"action"           json:"action"`
	Target  *NodeInfo `yaml:"target,omitempty" json:"target,omitempty"`
	Changed bool      `yaml:"changed"          json:"changed"`
}

var initFocusCmd = &cobra.Command{
	Use:   "init-focus",
	Short: "Resolve the initial focus target for a snapshot",
	Long: "Run the focus-resolution chain (current focus, last touched node, area\n" +
		"default, first focusable) and report where focus should land.",
	RunE: runInitFocus,
}

func init() {
	rootCmd.AddCommand(initFocusCmd)
	addSnapshotFlags(initFocusCmd)
}

func runInitFocus(cmd *cobra.Command, args []string) error {
	nv, err := buildNavigator(cmd)
	if err != nil {
		return err
	}

	target, changed, err := nv.InitFocus()
	if err != nil {
		return err
	}

	return output.Print(InitFocusResult{
		OK:      target != nil,
		Action:  "init-focus",
		Target:  nodeInfo(target),
		Changed: changed,
	})
}
