package config

import "github.com/urfave/cli/v3"

// Sync holds configuration for the one-shot sync command
type Sync struct {
	Repository       string
	ShortDescription string
	ReadmePath       string
}

// Flags returns CLI flags for the one-shot sync command
func (c *Sync) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository",
			Usage:       "GitHub repository slug (owner/name)",
			Required:    true,
			Destination: &c.Repository,
			Sources:     cli.EnvVars("HUBSYNC_REPOSITORY", "GITHUB_REPOSITORY"),
		},
		&cli.StringFlag{
			Name:        "short-description",
			Usage:       "Short description to publish (Docker Hub limits this to 100 characters)",
			Destination: &c.ShortDescription,
			Sources:     cli.EnvVars("HUBSYNC_SHORT_DESCRIPTION"),
		},
		&cli.StringFlag{
			Name:        "readme",
			Usage:       "Path to the README published as full description (empty fetches it via the GitHub API)",
			Value:       "README.md",
			Destination: &c.ReadmePath,
			Sources:     cli.EnvVars("HUBSYNC_README"),
		},
	}
}
