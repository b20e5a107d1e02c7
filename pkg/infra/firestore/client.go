package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hubsync/pkg/domain/interfaces"
	"github.com/m-mizutani/hubsync/pkg/domain/model"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const collectionSyncRecords = "sync_records"

type client struct {
	firestore *firestore.Client
}

// NewClient creates a Firestore-backed history repository. credentialsFile
// may be empty to use application default credentials.
func NewClient(ctx context.Context, projectID, databaseID, credentialsFile string) (interfaces.HistoryRepository, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	fs, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("project_id", projectID),
			goerr.V("database_id", databaseID),
		)
	}

	return &client{firestore: fs}, nil
}

// Put stores a sync record
func (c *client) Put(ctx context.Context, record *model.SyncRecord) error {
	if _, err := c.firestore.Collection(collectionSyncRecords).Doc(record.ID).Set(ctx, record); err != nil {
		return goerr.Wrap(err, "failed to put sync record", goerr.V("record_id", record.ID))
	}
	return nil
}

// Latest returns the most recent sync record for the repository.
func (c *client) Latest(ctx context.Context, repository string) (*model.SyncRecord, error) {
	iter := c.firestore.Collection(collectionSyncRecords).
		Where("repository", "==", repository).
		OrderBy("synced_at", firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query sync records", goerr.V("repository", repository))
	}

	var record model.SyncRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, goerr.Wrap(err, "failed to decode sync record", goerr.V("doc_id", doc.Ref.ID))
	}

	return &record, nil
}
