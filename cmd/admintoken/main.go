package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/config"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/pkg/auth"
)

var tokenFlags struct {
	subject string
	ttl     time.Duration
}

var rootCmd = &cobra.Command{
	Use:   "admintoken",
	Short: "Print a bearer token for the admin endpoints",
	RunE:  runToken,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&tokenFlags.subject, "subject", "admin", "Token subject, shown in the reseed log")
	f.DurationVar(&tokenFlags.ttl, "ttl", 0, "Token lifetime (default from config)")
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	if cfg.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}

	ttl := cfg.JWT.TokenTTL
	if tokenFlags.ttl > 0 {
		ttl = tokenFlags.ttl
	}

	token, err := auth.NewJWTService(cfg.JWT.Secret, ttl).Generate(tokenFlags.subject)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
