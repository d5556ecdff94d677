package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finchline/finchline/internal/config"
	"github.com/finchline/finchline/internal/xapi"
)

var statusConfigPath string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the configured credentials against the platform",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringVarP(&statusConfigPath, "config", "c", "", "Path to the YAML config file")
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(statusConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client := xapi.New(cfg.Credentials())
	me, err := client.Me(ctx)
	if err != nil {
		return fmt.Errorf("credential check failed: %w", err)
	}

	fmt.Printf("%s Authenticated as @%s (%s)\n", logo, me.Username, me.Name)
	fmt.Printf("  Followers: %d · Following: %d\n", me.Followers, me.Following)
	return nil
}
