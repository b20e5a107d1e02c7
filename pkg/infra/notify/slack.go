package notify

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hubsync/pkg/domain/interfaces"
	"github.com/m-mizutani/hubsync/pkg/domain/model"
	"github.com/slack-go/slack"
)

type slackNotifier struct {
	webhookURL string
}

// NewSlack creates a Notifier that posts sync results to a Slack incoming
// webhook.
func NewSlack(webhookURL string) interfaces.Notifier {
	return &slackNotifier{webhookURL: webhookURL}
}

// Notify reports the result of a sync
func (n *slackNotifier) Notify(ctx context.Context, result *model.SyncResult) error {
	msg := &slack.WebhookMessage{
		Text: formatMessage(result),
	}

	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post Slack webhook")
	}

	return nil
}

func formatMessage(result *model.SyncResult) string {
	repo := result.Target.Repository.FullName()

	if result.Status == model.SyncStatusFailure {
		return fmt.Sprintf(":rotating_light: Failed to sync description of `%s` to `%s`: %v",
			repo, result.RegistryPath, result.Error)
	}

	return fmt.Sprintf(":whale: Synced description of `%s` to `%s`", repo, result.RegistryPath)
}
