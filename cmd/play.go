package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start playing as a learner, skipping the login screen",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, err := learnerFlag(cmd)
		if err != nil {
			return err
		}
		return runApp(cmd, learner)
	},
}

func init() {
	playCmd.Flags().String("learner", "", "Learner name")
}
