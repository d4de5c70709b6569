package cmd

import (
	"context"
	"time"

	gconfig "github.com/Laisky/go-config/v2"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	"github.com/lantern-cms/lantern/internal/web"
	cms "github.com/lantern-cms/lantern/internal/web/cms/controller"
	"github.com/lantern-cms/lantern/library/log"
)

const defaultSweepInterval = time.Minute

var apiCMD = &cobra.Command{
	Use:   "api",
	Short: "api",
	Long:  `REST API service of the lantern cms`,
	Args:  gcmd.NoExtraArgs,
	PreRun: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		if err := initialize(ctx, cmd); err != nil {
			log.Logger.Panic("init", zap.Error(err))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		interval := gconfig.Shared.GetDuration("settings.scheduler.interval")
		if interval <= 0 {
			interval = defaultSweepInterval
		}
		go cms.Instance.RunScheduledPublisher(ctx, interval)

		web.RunServer(gconfig.Shared.GetString("listen"))
	},
}

func init() {
	rootCMD.AddCommand(apiCMD)
}
