package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathheroes/internal/screens/heroes"
)

var heroesCmd = &cobra.Command{
	Use:   "heroes",
	Short: "Show a learner's hero collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, err := learnerFlag(cmd)
		if err != nil {
			return err
		}
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		p, err := rt.services.Progress.LoadOrCreate(cmd.Context(), learner)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		all := rt.services.Catalog.Heroes()
		found := 0
		for _, h := range all {
			unlocked := p.IsRewardUnlocked(h.ID)
			mark := " "
			if unlocked {
				mark = "★"
				found++
			}
			fmt.Fprintf(out, "%s %s\n", mark, heroes.DisplayName(h, unlocked))
		}
		fmt.Fprintf(out, "\n%d of %d heroes found\n", found, len(all))
		return nil
	},
}

func init() {
	heroesCmd.Flags().String("learner", "", "Learner name")
}
