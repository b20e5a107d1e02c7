package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hubsync/pkg/cli/config"
	"github.com/m-mizutani/hubsync/pkg/domain/model"
	ghinfra "github.com/m-mizutani/hubsync/pkg/infra/github"
	"github.com/m-mizutani/hubsync/pkg/infra/hub"
	"github.com/m-mizutani/hubsync/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdSync() *cli.Command {
	var (
		syncCfg   config.Sync
		hubCfg    config.Hub
		githubCfg config.GitHub
	)

	flags := syncCfg.Flags()
	flags = append(flags, hubCfg.Flags()...)
	// The one-shot command never receives webhooks; only the API token is
	// relevant here.
	flags = append(flags, &cli.StringFlag{
		Name:        "github-token",
		Usage:       "GitHub API token for README fetch (optional for public repositories)",
		Destination: &githubCfg.Token,
		Sources:     cli.EnvVars("HUBSYNC_GITHUB_TOKEN"),
	})

	return &cli.Command{
		Name:  "sync",
		Usage: "Sync one repository description and exit (for CI jobs)",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			repo, err := model.ParseRepository(syncCfg.Repository)
			if err != nil {
				return err
			}

			target := &model.SyncTarget{
				Repository:       repo,
				ShortDescription: syncCfg.ShortDescription,
			}

			if syncCfg.ReadmePath != "" {
				readme, err := os.ReadFile(syncCfg.ReadmePath)
				if err != nil {
					return goerr.Wrap(err, "failed to read README file", goerr.V("path", syncCfg.ReadmePath))
				}
				target.FullDescription = string(readme)
			}

			logger.Info("Running one-shot sync",
				slog.String("repository", repo.FullName()),
				slog.String("readme", syncCfg.ReadmePath),
			)

			syncUC := usecase.NewSync(
				hub.NewClient(hubCfg.Username, hubCfg.Token),
				ghinfra.NewClient(githubCfg.Token),
				hubCfg.Username,
			)

			if _, err := syncUC.Sync(ctx, target); err != nil {
				return err
			}

			return nil
		},
	}
}
