package usecase

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hubsync/pkg/domain/interfaces"
	"github.com/m-mizutani/hubsync/pkg/domain/model"
)

// ShortDescriptionLimit is Docker Hub's maximum length for the short
// description field, in runes.
const ShortDescriptionLimit = 100

type syncUseCase struct {
	registry interfaces.RegistryClient
	github   interfaces.GitHubClient
	username string
	rules    *model.RuleSet
	history  interfaces.HistoryRepository
	notifier interfaces.Notifier
}

// SyncOption is a functional option for the sync use case
type SyncOption func(*syncUseCase)

// WithRules sets per-repository sync rules
func WithRules(rules *model.RuleSet) SyncOption {
	return func(uc *syncUseCase) {
		uc.rules = rules
	}
}

// WithHistory sets the sync history repository
func WithHistory(history interfaces.HistoryRepository) SyncOption {
	return func(uc *syncUseCase) {
		uc.history = history
	}
}

// WithNotifier sets the sync result notifier
func WithNotifier(notifier interfaces.Notifier) SyncOption {
	return func(uc *syncUseCase) {
		uc.notifier = notifier
	}
}

// NewSync creates a new instance of SyncUseCase. username is the Docker Hub
// namespace that derived registry paths are placed under.
func NewSync(registry interfaces.RegistryClient, github interfaces.GitHubClient, username string, opts ...SyncOption) interfaces.SyncUseCase {
	uc := &syncUseCase{
		registry: registry,
		github:   github,
		username: username,
		rules:    model.DefaultRuleSet(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Sync performs one description sync: derive the registry path, collect the
// short and full descriptions, and push them to the registry. The outcome is
// recorded and notified regardless of success.
func (uc *syncUseCase) Sync(ctx context.Context, target *model.SyncTarget) (*model.SyncResult, error) {
	logger := ctxlog.From(ctx)

	rule := uc.rules.Resolve(target.Repository)
	registryPath := rule.RegistryRepository
	if registryPath == "" {
		registryPath = target.Repository.RegistryPath(uc.username)
	}

	logger.Info("Syncing repository description",
		"repository", target.Repository.FullName(),
		"registry_path", registryPath,
		"ref", target.Ref,
		"delivery_id", target.DeliveryID,
	)

	result := &model.SyncResult{
		Target:       target,
		RegistryPath: registryPath,
		Status:       model.SyncStatusSuccess,
	}

	if err := uc.sync(ctx, target, registryPath); err != nil {
		result.Status = model.SyncStatusFailure
		result.Error = err
		sentry.CaptureException(err)
		uc.finish(ctx, result)
		return result, err
	}

	logger.Info("Synced repository description",
		"repository", target.Repository.FullName(),
		"registry_path", registryPath,
	)

	uc.finish(ctx, result)
	return result, nil
}

func (uc *syncUseCase) sync(ctx context.Context, target *model.SyncTarget, registryPath string) error {
	full := target.FullDescription
	if full == "" {
		readme, err := uc.github.GetReadme(ctx, target.Repository.Owner, target.Repository.Name, target.Ref)
		if err != nil {
			return goerr.Wrap(err, "failed to fetch README",
				goerr.V("repository", target.Repository.FullName()),
				goerr.V("ref", target.Ref),
			)
		}
		full = readme
	}

	short := TruncateShortDescription(target.ShortDescription)

	if err := uc.registry.UpdateDescription(ctx, registryPath, short, full); err != nil {
		return goerr.Wrap(err, "failed to update registry description",
			goerr.V("registry_path", registryPath),
		)
	}

	return nil
}

// finish records and notifies the sync result. Both are best-effort: the
// sync outcome itself is already decided.
func (uc *syncUseCase) finish(ctx context.Context, result *model.SyncResult) {
	logger := ctxlog.From(ctx)

	if uc.history != nil {
		record := &model.SyncRecord{
			ID:           uuid.NewString(),
			Repository:   result.Target.Repository.FullName(),
			RegistryPath: result.RegistryPath,
			DeliveryID:   result.Target.DeliveryID,
			Status:       string(result.Status),
			SyncedAt:     time.Now(),
		}
		if result.Error != nil {
			record.Error = result.Error.Error()
		}

		if err := uc.history.Put(ctx, record); err != nil {
			logger.Error("Failed to record sync history", "error", err, "record_id", record.ID)
		}
	}

	if uc.notifier != nil {
		if err := uc.notifier.Notify(ctx, result); err != nil {
			logger.Error("Failed to notify sync result", "error", err)
		}
	}
}

// TruncateShortDescription trims the short description to Docker Hub's
// 100-rune limit.
func TruncateShortDescription(s string) string {
	if utf8.RuneCountInString(s) <= ShortDescriptionLimit {
		return s
	}
	runes := []rune(s)
	return string(runes[:ShortDescriptionLimit])
}
