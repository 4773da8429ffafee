package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/recallo/recallo/internal/config"
	"github.com/recallo/recallo/internal/logger"
	"github.com/recallo/recallo/internal/notify"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the reminder watcher in the foreground",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log, err := logger.New(cfg)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		watcher := notify.New(
			notify.NewConsoleNotifier(os.Stdout),
			st.Items(),
			st.Patterns(),
			notify.Options{
				IntervalMinutes: cfg.Watch.IntervalMinutes,
				QuietStartHour:  cfg.Watch.QuietStartHour,
				QuietEndHour:    cfg.Watch.QuietEndHour,
			},
			log,
		)
		if err := watcher.Start(); err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}
		defer watcher.Stop()

		log.Info("watcher running",
			zap.Int("interval_minutes", cfg.Watch.IntervalMinutes),
			zap.Int("quiet_start", cfg.Watch.QuietStartHour),
			zap.Int("quiet_end", cfg.Watch.QuietEndHour),
		)

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Info("shutting down")
		return nil
	},
}
