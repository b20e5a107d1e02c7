package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/hubsync/pkg/domain/interfaces"
	"github.com/m-mizutani/hubsync/pkg/domain/model"
)

type historyRepository struct {
	mu      sync.Mutex
	records []*model.SyncRecord
}

// NewHistory creates an in-memory history repository. Used when no
// Firestore project is configured, and in tests.
func NewHistory() interfaces.HistoryRepository {
	return &historyRepository{}
}

// Put stores a sync record
func (r *historyRepository) Put(_ context.Context, record *model.SyncRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *record
	r.records = append(r.records, &copied)
	return nil
}

// Latest returns the most recent sync record for the repository.
func (r *historyRepository) Latest(_ context.Context, repository string) (*model.SyncRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var latest *model.SyncRecord
	for _, record := range r.records {
		if record.Repository != repository {
			continue
		}
		if latest == nil || record.SyncedAt.After(latest.SyncedAt) {
			latest = record
		}
	}

	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}
