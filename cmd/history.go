package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathheroes/internal/round"
	"github.com/abhisek/mathheroes/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List a learner's past rounds, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, err := learnerFlag(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		levelID, _ := cmd.Flags().GetInt("level")
		outcome, _ := cmd.Flags().GetString("outcome")
		if outcome != "" {
			if _, err := round.ParseOutcome(outcome); err != nil {
				return err
			}
		}

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		rounds, err := rt.services.History.List(cmd.Context(), strings.TrimSpace(learner), store.QueryOpts{
			Limit:   limit,
			LevelID: levelID,
			Outcome: outcome,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(rounds) == 0 {
			fmt.Fprintln(out, "No rounds yet.")
			return nil
		}

		fmt.Fprintf(out, "%-19s  %-5s  %-4s  %-7s  %s\n", "When", "Level", "Boss", "Score", "Outcome")
		fmt.Fprintln(out, strings.Repeat("─", 52))
		for _, r := range rounds {
			boss := ""
			if r.IsBoss {
				boss = "yes"
			}
			fmt.Fprintf(out, "%-19s  %-5d  %-4s  %-7s  %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"), r.LevelID, boss,
				fmt.Sprintf("%d/%d", r.Score, r.RequiredScore), r.Outcome)
		}
		fmt.Fprintf(out, "\n%d rounds\n", len(rounds))
		return nil
	},
}

func init() {
	historyCmd.Flags().String("learner", "", "Learner name")
	historyCmd.Flags().Int("limit", 20, "Maximum rounds to show (0 = all)")
	historyCmd.Flags().Int("level", 0, "Only show rounds of this level")
	historyCmd.Flags().String("outcome", "", "Only show rounds with this outcome (passed, failed, quit)")
}
