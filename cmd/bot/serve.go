package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/cache"
	"github.com/diegoclair/channel-gatekeeper/internal/config"
	"github.com/diegoclair/channel-gatekeeper/internal/database"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/contract"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/service"
	"github.com/diegoclair/channel-gatekeeper/internal/handlers"
	"github.com/diegoclair/channel-gatekeeper/internal/report"
	"github.com/diegoclair/channel-gatekeeper/internal/telegram"
	"github.com/diegoclair/channel-gatekeeper/pkg/logger"
	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bot, the scheduler and the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := logger.New(cfg.Log)
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	loc, err := cfg.Scheduler.Location()
	if err != nil {
		return err
	}

	db, err := openDatabase(ctx, cfg.Database.Path, log)
	if err != nil {
		return err
	}
	defer db.Close()

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return fmt.Errorf("failed to connect to telegram: %w", err)
	}
	log.Info("telegram bot authorized", zap.String("username", api.Self.UserName))

	bot := telegram.New(api, cfg.Telegram.CallTimeout, log.Named("telegram"))

	var reporter contract.Reporter
	var slackHandler *handlers.SlackHandler
	if cfg.Slack.Enabled() {
		slackClient := slack.New(cfg.Slack.BotToken)
		if cfg.Slack.ReportChannel != "" {
			reporter = report.NewSlackReporter(slackClient, cfg.Slack.ReportChannel, log.Named("report"))
		}
	} else {
		log.Info("slack is not configured, admin commands are disabled")
	}

	channelInfo := cache.NewChannelInfo(bot, cfg.Cache.TTL)
	go channelInfo.RunJanitor(ctx, cfg.Cache.TTL)

	engine := service.NewInstance(service.Dependencies{
		DataManager: database.NewInstance(db),
		Gateway:     bot,
		Notifier:    bot,
		Reporter:    reporter,
		ChannelInfo: channelInfo,
		Logger:      log,
	}, service.Options{
		Location:              loc,
		OverdueDelay:          cfg.Scheduler.OverdueDelay,
		MaxConcurrentChannels: cfg.Scheduler.MaxConcurrentChannels,
	})

	if err := engine.Scheduler.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer engine.Scheduler.Stop()

	intake := telegram.NewIntake(api, engine.Admission, cfg.Telegram.PollTimeout, log.Named("intake"))
	go intake.Run(ctx)

	if cfg.Slack.Enabled() {
		slackHandler = handlers.NewSlackHandler(engine.Admin, cfg.Slack.SigningSecret, loc, log.Named("slack"))
	}
	var exportHandler *handlers.ExportHandler
	if cfg.Server.ExportToken != "" {
		exportHandler = handlers.NewExportHandler(engine.Admin, cfg.Server.ExportToken, loc, log.Named("export"))
	}

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handlers.NewRouter(slackHandler, exportHandler, log.Named("http")),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shut down server", zap.Error(err))
	}
	if slackHandler != nil {
		// accept batches keep the database open until they finish
		slackHandler.Wait()
	}

	return nil
}
