package config

import "github.com/urfave/cli/v3"

// Slack holds Slack notification configuration
type Slack struct {
	WebhookURL string
}

// Enabled reports whether sync results should be posted to Slack
func (c *Slack) Enabled() bool {
	return c.WebhookURL != ""
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL for sync notifications",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("HUBSYNC_SLACK_WEBHOOK_URL"),
		},
	}
}
