package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/brogergvhs/postup/internal/config"
	"github.com/brogergvhs/postup/internal/ui"
	"github.com/brogergvhs/postup/internal/util"
	"github.com/brogergvhs/postup/internal/verify"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <url> [url...]",
	Short: "Check scraped album/image links over plain HTTP",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := config.LoadMerged(config.Options{
			IgnoreConfig: flagIgnoreConfig,
			Debug:        flagDebug,
		})
		if err != nil {
			return err
		}

		logSvc := ui.NewLogger(cfg.Debug)

		client, err := util.NewHTTPClient(util.HTTPClientOptions{
			Timeout:     30 * time.Second,
			UserAgent:   util.PickUserAgent(cfg.UserAgent),
			DebugLogger: logSvc,
		})
		if err != nil {
			return err
		}

		ctx := context.Background()
		failed := 0

		for _, target := range args {
			report, err := verify.Check(ctx, client, target)
			if err != nil {
				logSvc.Errorf("%s: %v\n", target, err)
				failed++
				continue
			}

			fmt.Println(report.Summary())
		}

		if failed > 0 {
			return fmt.Errorf("%d/%d links could not be checked", failed, len(args))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
