package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a learner's progress and round history",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, err := learnerFlag(cmd)
		if err != nil {
			return err
		}
		learner = strings.TrimSpace(learner)
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("this deletes all progress for %q; pass --yes to confirm", learner)
		}

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		if err := rt.services.Progress.Reset(ctx, learner); err != nil {
			return err
		}
		if err := rt.services.History.DeleteLearner(ctx, learner); err != nil {
			return fmt.Errorf("delete history: %w", err)
		}

		rt.logger.Info("learner reset", "learner", learner)
		fmt.Fprintf(cmd.OutOrStdout(), "Reset %s. Level 1 is waiting!\n", learner)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("learner", "", "Learner name")
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
