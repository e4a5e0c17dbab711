package main

import (
	"fmt"
	"os"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/config"
	"github.com/diegoclair/channel-gatekeeper/internal/database"
	"github.com/diegoclair/channel-gatekeeper/internal/domain"
	"github.com/diegoclair/channel-gatekeeper/internal/export"
	"github.com/diegoclair/channel-gatekeeper/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCommand() *cobra.Command {
	var channelID int64
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the request history of a channel to an xlsx file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			loc, err := cfg.Scheduler.Location()
			if err != nil {
				return err
			}

			log, err := logger.New(cfg.Log)
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := openDatabase(cmd.Context(), cfg.Database.Path, log)
			if err != nil {
				return err
			}
			defer db.Close()

			dm := database.NewInstance(db)
			channel, err := dm.Channel().GetByID(cmd.Context(), channelID)
			if err != nil {
				return err
			}
			if channel == nil {
				return fmt.Errorf("channel %d: %w", channelID, domain.ErrChannelNotFound)
			}

			requests, err := dm.Request().ListAll(cmd.Context(), channelID)
			if err != nil {
				return err
			}

			if out == "" {
				out = export.FileName(channelID, time.Now().In(loc))
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			defer f.Close()

			if err := export.WriteRequests(f, channel, requests, loc); err != nil {
				return err
			}

			log.Info("requests exported",
				zap.Int64("channel_id", channelID),
				zap.Int("requests", len(requests)),
				zap.String("file", out),
			)
			return f.Close()
		},
	}

	cmd.Flags().Int64Var(&channelID, "channel", 0, "Telegram channel id")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default join_requests_<channel>_<time>.xlsx)")
	cmd.MarkFlagRequired("channel")

	return cmd
}
