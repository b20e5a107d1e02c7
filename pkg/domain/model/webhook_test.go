package model_test

import (
	"testing"

	"github.com/m-mizutani/hubsync/pkg/domain/model"
)

func TestPushEvent_ShouldSync(t *testing.T) {
	tests := []struct {
		name       string
		ref        string
		changed    []string
		branch     string
		watchPaths []string
		expected   bool
	}{
		{
			name:       "push to main touching README",
			ref:        "refs/heads/main",
			changed:    []string{"README.md"},
			branch:     "main",
			watchPaths: []string{"README.md"},
			expected:   true,
		},
		{
			name:       "push to main touching README among other files",
			ref:        "refs/heads/main",
			changed:    []string{"src/main.rs", "README.md", "Cargo.toml"},
			branch:     "main",
			watchPaths: []string{"README.md"},
			expected:   true,
		},
		{
			name:       "push to other branch touching README",
			ref:        "refs/heads/feature",
			changed:    []string{"README.md"},
			branch:     "main",
			watchPaths: []string{"README.md"},
			expected:   false,
		},
		{
			name:       "push to main touching unrelated files",
			ref:        "refs/heads/main",
			changed:    []string{"src/main.rs"},
			branch:     "main",
			watchPaths: []string{"README.md"},
			expected:   false,
		},
		{
			name:       "tag push never triggers",
			ref:        "refs/tags/v1.0.0",
			changed:    []string{"README.md"},
			branch:     "main",
			watchPaths: []string{"README.md"},
			expected:   false,
		},
		{
			name:       "pattern matches workflow file",
			ref:        "refs/heads/main",
			changed:    []string{".github/workflows/dockerhub-description.yml"},
			branch:     "main",
			watchPaths: []string{"README.md", ".github/workflows/*.yml"},
			expected:   true,
		},
		{
			name:       "no changed paths",
			ref:        "refs/heads/main",
			changed:    nil,
			branch:     "main",
			watchPaths: []string{"README.md"},
			expected:   false,
		},
		{
			name:       "custom branch",
			ref:        "refs/heads/master",
			changed:    []string{"README.md"},
			branch:     "master",
			watchPaths: []string{"README.md"},
			expected:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			push := &model.PushEvent{
				Ref:          tt.ref,
				ChangedPaths: tt.changed,
			}
			if got := push.ShouldSync(tt.branch, tt.watchPaths); got != tt.expected {
				t.Errorf("ShouldSync() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPushEvent_Branch(t *testing.T) {
	tests := []struct {
		ref      string
		expected string
	}{
		{ref: "refs/heads/main", expected: "main"},
		{ref: "refs/heads/feature/x", expected: "feature/x"},
		{ref: "refs/tags/v1.0.0", expected: ""},
		{ref: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			push := &model.PushEvent{Ref: tt.ref}
			if got := push.Branch(); got != tt.expected {
				t.Errorf("Branch() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestWebhookEvent_IsSupportedEvent(t *testing.T) {
	tests := []struct {
		name     string
		event    *model.WebhookEvent
		expected bool
	}{
		{
			name: "push event with payload",
			event: &model.WebhookEvent{
				Type: model.EventTypePush,
				Push: &model.PushEvent{Ref: "refs/heads/main"},
			},
			expected: true,
		},
		{
			name: "push event without payload",
			event: &model.WebhookEvent{
				Type: model.EventTypePush,
			},
			expected: false,
		},
		{
			name: "unknown event type",
			event: &model.WebhookEvent{
				Type: model.EventTypeUnknown,
			},
			expected: false,
		},
		{
			name: "other event type",
			event: &model.WebhookEvent{
				Type: model.WebhookEventType("issues"),
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.IsSupportedEvent(); got != tt.expected {
				t.Errorf("IsSupportedEvent() = %v, want %v", got, tt.expected)
			}
		})
	}
}
