package cmd

import (
	"github.com/mj1618/rotary-nav/internal/model"
	"github.com/mj1618/rotary-nav/internal/output"
	"github.com/spf13/cobra"
)

// RotateResult is the output of the rotate command. OK false means the event
// was not consumed and focus is unchanged.
type RotateResult struct {
	OK       bool      `yaml:"ok"                 json:"ok"`
	Action   string    `yaml:"action"             json:"action"`
	Target   *NodeInfo `yaml:"target,omitempty"   json:"target,omitempty"`
	Advanced int       `yaml:"advanced"           json:"advanced"`
}

var rotateCmd = &cobra.Command{
	Use:   "rotate",
	Short: "Advance focus sequentially within the current focus area",
	Long: "Compute the focus target for a rotary rotate event: advance up to --count\n" +
		"focusable stops in document order, honoring the area's wrap-around flag and\n" +
		"atomic scrollable containers.",
	RunE: runRotate,
}

func init() {
	rootCmd.AddCommand(rotateCmd)
	addSnapshotFlags(rotateCmd)
	rotateCmd.Flags().String("direction", "forward", "Rotate direction: forward, backward")
	rotateCmd.Flags().Int("count", 1, "Number of focusable stops to advance")
}

func runRotate(cmd *cobra.Command, args []string) error {
	dirName, _ := cmd.Flags().GetString("direction")
	dir, err := model.ParseRotateDirection(dirName)
	if err != nil {
		return err
	}
	count, _ := cmd.Flags().GetInt("count")

	nv, err := buildNavigator(cmd)
	if err != nil {
		return err
	}

	res, err := nv.Rotate(dir, count)
	if err != nil {
		return err
	}

	return output.Print(RotateResult{
		OK:       res.Target != nil,
		Action:   "rotate",
		Target:   nodeInfo(res.Target),
		Advanced: res.Advanced,
	})
}
