package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/habitpet/habitpet/backend/utils"
	"github.com/habitpet/habitpet/internal/config"
	"github.com/spf13/cobra"
)

var (
	tokenUserID int64
	tokenTTL    time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for a user (development only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Web.JWTSecret == "" {
			return errors.New("web.jwt_secret is not set")
		}
		token, err := utils.IssueToken(cfg.Web.JWTSecret, tokenUserID, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().Int64Var(&tokenUserID, "user", 0, "user id to put in the subject")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", config.TokenTTL, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(tokenCmd)
}
