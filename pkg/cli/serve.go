package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hubsync/pkg/cli/config"
	controller "github.com/m-mizutani/hubsync/pkg/controller/http"
	"github.com/m-mizutani/hubsync/pkg/domain/interfaces"
	fsinfra "github.com/m-mizutani/hubsync/pkg/infra/firestore"
	ghinfra "github.com/m-mizutani/hubsync/pkg/infra/github"
	"github.com/m-mizutani/hubsync/pkg/infra/hub"
	"github.com/m-mizutani/hubsync/pkg/infra/memory"
	"github.com/m-mizutani/hubsync/pkg/infra/notify"
	"github.com/m-mizutani/hubsync/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		githubCfg    config.GitHub
		hubCfg       config.Hub
		rulesCfg     config.Rules
		firestoreCfg config.Firestore
		slackCfg     config.Slack
		sentryCfg    config.Sentry
	)

	flags := serverCfg.Flags()
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, hubCfg.Flags()...)
	flags = append(flags, rulesCfg.Flags()...)
	flags = append(flags, firestoreCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the webhook server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting hubsync server",
				slog.String("addr", serverCfg.Addr),
				slog.String("docker_username", hubCfg.Username),
			)

			if err := sentryCfg.Configure(); err != nil {
				return err
			}
			defer sentry.Flush(2 * time.Second)

			rules, err := rulesCfg.Load()
			if err != nil {
				return err
			}

			var history interfaces.HistoryRepository
			if firestoreCfg.Enabled() {
				history, err = fsinfra.NewClient(ctx, firestoreCfg.ProjectID, firestoreCfg.DatabaseID, firestoreCfg.CredentialsFile)
				if err != nil {
					return err
				}
			} else {
				history = memory.NewHistory()
			}

			syncOpts := []usecase.SyncOption{
				usecase.WithRules(rules),
				usecase.WithHistory(history),
			}
			if slackCfg.Enabled() {
				syncOpts = append(syncOpts, usecase.WithNotifier(notify.NewSlack(slackCfg.WebhookURL)))
			}

			syncUC := usecase.NewSync(
				hub.NewClient(hubCfg.Username, hubCfg.Token),
				ghinfra.NewClient(githubCfg.Token),
				hubCfg.Username,
				syncOpts...,
			)
			webhookUC := usecase.NewWebhook(syncUC, usecase.WithWebhookRules(rules))

			server, err := controller.NewServer(
				ctx,
				webhookUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithWebhookSecret(githubCfg.WebhookSecret),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
