package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/auth"
	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/config"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var subject string
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API token signed with TOKEN_KEY.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.TokenKey == "" {
				return errors.New("TOKEN_KEY environment variable is not set")
			}
			token, err := (&auth.Authenv{JWTkey: []byte(cfg.TokenKey)}).IssueToken(subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 720*time.Hour, "token lifetime")
	cmd.MarkFlagRequired("subject")
	return cmd
}
