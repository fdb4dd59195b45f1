package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathheroes/internal/screens/levelselect"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels and a learner's progress through them",
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
		fmt.Fprintf(out, "%-3s  %-26s  %-28s  %-15s  %s\n", "ID", "Level", "Description", "Topic", "Status")
		fmt.Fprintln(out, strings.Repeat("─", 96))

		for _, l := range rt.services.Catalog.Levels() {
			fmt.Fprintf(out, "%-3d  %-26s  %-28s  %-15s  %s\n",
				l.ID, l.Name, l.Description, l.Topic, levelselect.StatusText(p, l))
		}
		return nil
	},
}

func init() {
	levelsCmd.Flags().String("learner", "", "Learner name")
}
