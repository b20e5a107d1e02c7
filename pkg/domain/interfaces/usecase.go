package interfaces

import (
	"context"

	"github.com/m-mizutani/hubsync/pkg/domain/model"
)

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// ProcessEvent processes a webhook event
	ProcessEvent(ctx context.Context, event *model.WebhookEvent) error
}

// SyncUseCase defines operations for description synchronization
type SyncUseCase interface {
	// Sync performs one description sync against the registry
	Sync(ctx context.Context, target *model.SyncTarget) (*model.SyncResult, error)
}
