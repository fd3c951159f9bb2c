package cmd

import (
	"github.com/mj1618/rotary-nav/internal/model"
	"github.com/mj1618/rotary-nav/internal/output"
	"github.com/spf13/cobra"
)

// NudgeResult is the output of the nudge command.
type NudgeResult struct {
	OK     bool      `yaml:"ok"               json:"ok"`
	Action string    `yaml:"action"           json:"action"`
	Target *NodeInfo `yaml:"target,omitempty" json:"target,omitempty"`
}

var nudgeCmd = &cobra.Command{
	Use:   "nudge",
	Short: "Jump focus to the nearest focus area in a direction",
	Long: "Compute the focus target for a directional nudge event, applying explicit\n" +
		"overrides, heads-up-notification entry/escape rules, and geometric\n" +
		"nearest-area search, in that order.",
	RunE: runNudge,
}

func init() {
	rootCmd.AddCommand(nudgeCmd)
	addSnapshotFlags(nudgeCmd)
	nudgeCmd.Flags().String("direction", "", "Nudge direction: up, down, left, right")
	nudgeCmd.MarkFlagRequired("direction")
}

func runNudge(cmd *cobra.Command, args []string) error {
	dirName, _ := cmd.Flags().GetString("direction")
	dir, err := model.ParseDirection(dirName)
	if err != nil {
		return err
	}

	nv, err := buildNavigator(cmd)
	if err != nil {
		return err
	}

	target, err := nv.Nudge(dir)
	if err != nil {
		return err
	}

	return output.Print(NudgeResult{
		OK:     target != nil,
		Action: "nudge",
		Target: nodeInfo(target),
	})
}
