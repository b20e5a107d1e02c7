package model

import (
	"path"
	"strings"
	"time"
)

// WebhookEventType represents the type of webhook event received
type WebhookEventType string

const (
	EventTypePush    WebhookEventType = "push"
	EventTypeUnknown WebhookEventType = "unknown"
)

// WebhookEvent represents a webhook event received from GitHub
type WebhookEvent struct {
	ID         string           // Retrieved from X-GitHub-Delivery header
	Type       WebhookEventType // Retrieved from X-GitHub-Event header
	Repository string           // Repository full name
	Sender     string           // Sender username
	ReceivedAt time.Time        // Time when the event was received
	RawPayload []byte           // Raw JSON payload

	Push *PushEvent // Populated when Type is EventTypePush
}

// IsSupportedEvent checks if the event is supported
func (e *WebhookEvent) IsSupportedEvent() bool {
	return e.Type == EventTypePush && e.Push != nil
}

// PushEvent holds the fields of a GitHub push event that drive a
// description sync.
type PushEvent struct {
	Ref          string   // Git ref, e.g. "refs/heads/main"
	Repository   string   // Repository full name as sent by GitHub
	Description  string   // Repository description from event metadata
	HeadSHA      string   // Commit SHA after the push
	Sender       string   // User who pushed
	ChangedPaths []string // Added, modified and removed paths across all commits
}

const branchRefPrefix = "refs/heads/"

// Branch returns the branch name of the push, or "" for tag pushes.
func (e *PushEvent) Branch() string {
	if !strings.HasPrefix(e.Ref, branchRefPrefix) {
		return ""
	}
	return strings.TrimPrefix(e.Ref, branchRefPrefix)
}

// ShouldSync reports whether this push must trigger a description sync:
// the push targets the watched branch and at least one changed path matches
// the watch list. Watch entries are path.Match patterns; a plain file name
// like "README.md" matches exactly.
func (e *PushEvent) ShouldSync(branch string, watchPaths []string) bool {
	if e.Branch() != branch {
		return false
	}

	for _, changed := range e.ChangedPaths {
		for _, watch := range watchPaths {
			if matched, err := path.Match(watch, changed); err == nil && matched {
				return true
			}
		}
	}

	return false
}
