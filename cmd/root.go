package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathheroes",
	Short: "Arithmetic practice game for kids",
	Long: "Math Heroes: answer timed arithmetic questions, pass rounds, beat the boss\n" +
		"and unlock a new hero for every level.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, _ := cmd.Flags().GetString("learner")
		return runApp(cmd, learner)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHHEROES_DB env var)")
	rootCmd.Flags().String("learner", "", "Skip the login screen and play as this learner")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(heroesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// learnerFlag returns the required --learner value.
func learnerFlag(cmd *cobra.Command) (string, error) {
	name, _ := cmd.Flags().GetString("learner")
	if name == "" {
		return "", errLearnerRequired
	}
	return name, nil
}
