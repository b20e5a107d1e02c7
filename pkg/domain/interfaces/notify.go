package interfaces

import (
	"context"

	"github.com/m-mizutani/hubsync/pkg/domain/model"
)

// Notifier sends sync outcomes to an external channel.
type Notifier interface {
	// Notify reports the result of a sync
	Notify(ctx context.Context, result *model.SyncResult) error
}
