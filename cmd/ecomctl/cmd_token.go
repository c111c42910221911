// cmd/ecomctl/cmd_token.go
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javajoker/ecom-backend/internal/config"
	"github.com/javajoker/ecom-backend/internal/middleware"
	"github.com/javajoker/ecom-backend/internal/utils"
)

var (
	tokenSubject string
	tokenRole    string
	tokenTTL     time.Duration
)

// ecomctl token
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the back-office routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.JWT.SecretKey == "" {
			return errors.New("JWT_SECRET is not set; the admin routes are open")
		}

		ttl := tokenTTL
		if ttl == 0 {
			ttl = time.Duration(cfg.JWT.AccessTokenTTL) * time.Hour
		}

		token, err := utils.GenerateJWT(cfg.JWT.SecretKey, tokenSubject, tokenRole, ttl)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "operator", "token subject")
	tokenCmd.Flags().StringVar(&tokenRole, "role", middleware.RoleAdmin, "token role")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (default JWT_ACCESS_TTL hours)")
}
