package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/hubsync/pkg/domain/model"
	"github.com/m-mizutani/hubsync/pkg/infra/memory"
)

func TestHistory(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewHistory()

	t.Run("latest of unknown repository is nil", func(t *testing.T) {
		record := gt.R1(repo.Latest(ctx, "owner/repo")).NoError(t)
		gt.Nil(t, record)
	})

	t.Run("latest returns the most recent record", func(t *testing.T) {
		base := time.Now()
		gt.NoError(t, repo.Put(ctx, &model.SyncRecord{
			ID: "r1", Repository: "owner/repo", Status: "failure", SyncedAt: base,
		}))
		gt.NoError(t, repo.Put(ctx, &model.SyncRecord{
			ID: "r2", Repository: "owner/repo", Status: "success", SyncedAt: base.Add(time.Minute),
		}))
		gt.NoError(t, repo.Put(ctx, &model.SyncRecord{
			ID: "r3", Repository: "other/repo", Status: "success", SyncedAt: base.Add(2 * time.Minute),
		}))

		record := gt.R1(repo.Latest(ctx, "owner/repo")).NoError(t)
		gt.NotNil(t, record)
		gt.Equal(t, record.ID, "r2")
		gt.Equal(t, record.Status, "success")
	})

	t.Run("returned record is a copy", func(t *testing.T) {
		record := gt.R1(repo.Latest(ctx, "owner/repo")).NoError(t)
		record.Status = "mutated"

		again := gt.R1(repo.Latest(ctx, "owner/repo")).NoError(t)
		gt.Equal(t, again.Status, "success")
	})
}
