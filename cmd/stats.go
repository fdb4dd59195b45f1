package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathheroes/internal/round"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show round totals for every learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		learners, err := rt.services.Progress.Learners(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(learners) == 0 {
			fmt.Fprintln(out, "No learners yet.")
			return nil
		}

		fmt.Fprintf(out, "%-20s  %6s  %6s  %6s  %6s\n", "Learner", "Heroes", "Passed", "Failed", "Quit")
		fmt.Fprintln(out, strings.Repeat("─", 54))
		for _, name := range learners {
			p, err := rt.services.Progress.LoadOrCreate(ctx, name)
			if err != nil {
				return err
			}
			counts, err := rt.services.History.Counts(ctx, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-20s  %6d  %6d  %6d  %6d\n", name,
				len(p.UnlockedRewardIDs()),
				counts[round.OutcomePassed.String()],
				counts[round.OutcomeFailed.String()],
				counts[round.OutcomeQuit.String()])
		}
		return nil
	},
}
