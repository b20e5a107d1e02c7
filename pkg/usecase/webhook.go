package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/hubsync/pkg/domain/interfaces"
	"github.com/m-mizutani/hubsync/pkg/domain/model"
	"github.com/m-mizutani/hubsync/pkg/utils/async"
)

type webhookUseCase struct {
	syncUC interfaces.SyncUseCase
	rules  *model.RuleSet
}

// WebhookOption is a functional option for the webhook use case
type WebhookOption func(*webhookUseCase)

// WithWebhookRules sets per-repository sync rules for event filtering
func WithWebhookRules(rules *model.RuleSet) WebhookOption {
	return func(uc *webhookUseCase) {
		uc.rules = rules
	}
}

// NewWebhook creates a new instance of WebhookUseCase
func NewWebhook(syncUC interfaces.SyncUseCase, opts ...WebhookOption) interfaces.WebhookUseCase {
	uc := &webhookUseCase{
		syncUC: syncUC,
		rules:  model.DefaultRuleSet(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ProcessEvent filters a webhook event and dispatches a description sync
// for pushes that match the trigger conditions. The sync itself runs in the
// background so the webhook response does not wait on registry calls.
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) error {
	logger := ctxlog.From(ctx)

	logger.Info("Processing webhook event",
		"id", event.ID,
		"type", event.Type,
		"repository", event.Repository,
		"sender", event.Sender,
	)

	if !event.IsSupportedEvent() {
		logger.Debug("Ignoring unsupported event", "type", event.Type)
		return nil
	}

	push := event.Push
	repo, err := model.ParseRepository(push.Repository)
	if err != nil {
		logger.Warn("Ignoring push event with invalid repository slug",
			"repository", push.Repository,
			"error", err,
		)
		return nil
	}

	rule := uc.rules.Resolve(repo)
	if rule.Disabled {
		logger.Info("Sync disabled for repository", "repository", repo.FullName())
		return nil
	}

	if !push.ShouldSync(rule.Branch, rule.WatchPaths) {
		logger.Debug("Push does not match trigger conditions",
			"repository", repo.FullName(),
			"ref", push.Ref,
			"branch", rule.Branch,
			"watch_paths", rule.WatchPaths,
		)
		return nil
	}

	target := &model.SyncTarget{
		Repository:       repo,
		Ref:              push.HeadSHA,
		ShortDescription: push.Description,
		DeliveryID:       event.ID,
		Sender:           push.Sender,
	}

	async.Dispatch(ctx, func(ctx context.Context) error {
		_, err := uc.syncUC.Sync(ctx, target)
		return err
	})

	return nil
}
