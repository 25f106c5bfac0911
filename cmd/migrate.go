package cmd

import (
	"github.com/habitpet/habitpet/internal/gateways/database"
	"github.com/spf13/cobra"
)

var skipSeed bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the schema and seed species and titles",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		db, err := database.New(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.InitializeSchema(ctx); err != nil {
			return err
		}
		if skipSeed {
			return nil
		}
		return db.SeedMasterData(ctx)
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "only create tables and indexes")
	rootCmd.AddCommand(migrateCmd)
}
