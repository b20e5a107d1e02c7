package interfaces

import (
	"context"

	"github.com/m-mizutani/hubsync/pkg/domain/model"
)

// HistoryRepository persists sync records.
type HistoryRepository interface {
	// Put stores a sync record
	Put(ctx context.Context, record *model.SyncRecord) error

	// Latest returns the most recent sync record for the repository, or
	// nil when the repository has never been synced.
	Latest(ctx context.Context, repository string) (*model.SyncRecord, error)
}
