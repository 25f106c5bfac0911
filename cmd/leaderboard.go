package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/habitpet/habitpet/internal/config"
	"github.com/spf13/cobra"
)

var (
	boardLimit int
	boardFresh bool
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print the current ranking",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildServices(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer svc.close()

		if boardFresh {
			if err := svc.leaderboard.Invalidate(cmd.Context(), boardLimit); err != nil {
				return err
			}
		}
		entries, err := svc.leaderboard.TopUsers(cmd.Context(), boardLimit)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tUSER\tCOMPANION\tSTAGE\tLEVEL\tEXP")
		for i, e := range entries {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\n", i+1, e.UserName, e.KindName, e.Stage, e.Level, e.Exp)
		}
		return w.Flush()
	},
}

func init() {
	leaderboardCmd.Flags().BoolVar(&boardFresh, "fresh", false, "drop the cached snapshot and recompute")
	leaderboardCmd.Flags().IntVar(&boardLimit, "limit", config.DefaultTopLimit, "number of entries")
	rootCmd.AddCommand(leaderboardCmd)
}
