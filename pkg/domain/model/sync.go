package model

import "time"

// SyncTarget represents one description sync to perform.
type SyncTarget struct {
	Repository       Repository // Normalized source repository
	Ref              string     // Git ref to fetch the README from ("" for default branch)
	ShortDescription string     // Short description from repository metadata
	FullDescription  string     // Full description; fetched from the README when empty
	DeliveryID       string     // Webhook delivery ID ("" for one-shot runs)
	Sender           string     // User who triggered the sync
}

// SyncStatus represents the outcome of a sync.
type SyncStatus string

const (
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusFailure SyncStatus = "failure"
)

// SyncResult represents the outcome of one description sync.
type SyncResult struct {
	Target       *SyncTarget
	RegistryPath string // Docker Hub repository path that was updated
	Status       SyncStatus
	Error        error // Set when Status is SyncStatusFailure
}

// SyncRecord is the persisted form of a SyncResult.
type SyncRecord struct {
	ID           string    `firestore:"id"`
	Repository   string    `firestore:"repository"`
	RegistryPath string    `firestore:"registry_path"`
	DeliveryID   string    `firestore:"delivery_id"`
	Status       string    `firestore:"status"`
	Error        string    `firestore:"error,omitempty"`
	SyncedAt     time.Time `firestore:"synced_at"`
}
