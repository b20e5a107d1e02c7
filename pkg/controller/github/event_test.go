package github_test

import (
	"testing"

	"github.com/google/go-github/v75/github"
	ghctrl "github.com/m-mizutani/hubsync/pkg/controller/github"
)

func TestExtractPushEvent(t *testing.T) {
	event := &github.PushEvent{
		Ref:   github.Ptr("refs/heads/main"),
		After: github.Ptr("abc123"),
		Repo: &github.PushEventRepository{
			FullName:    github.Ptr("Owner/Repo"),
			Description: github.Ptr("A test repository"),
		},
		Sender: &github.User{Login: github.Ptr("octocat")},
		Commits: []*github.HeadCommit{
			{
				Added:    []string{"docs/new.md"},
				Modified: []string{"README.md"},
			},
			{
				Modified: []string{"README.md", "src/lib.rs"},
				Removed:  []string{"old.txt"},
			},
		},
	}

	push, err := ghctrl.ExtractPushEvent(event)
	if err != nil {
		t.Fatalf("ExtractPushEvent() error = %v", err)
	}

	if push.Ref != "refs/heads/main" {
		t.Errorf("Ref = %q", push.Ref)
	}
	if push.Repository != "Owner/Repo" {
		t.Errorf("Repository = %q", push.Repository)
	}
	if push.Description != "A test repository" {
		t.Errorf("Description = %q", push.Description)
	}
	if push.HeadSHA != "abc123" {
		t.Errorf("HeadSHA = %q", push.HeadSHA)
	}
	if push.Sender != "octocat" {
		t.Errorf("Sender = %q", push.Sender)
	}

	// Changed paths are aggregated and deduplicated
	want := []string{"docs/new.md", "README.md", "src/lib.rs", "old.txt"}
	if len(push.ChangedPaths) != len(want) {
		t.Fatalf("ChangedPaths = %v, want %v", push.ChangedPaths, want)
	}
	for i, path := range want {
		if push.ChangedPaths[i] != path {
			t.Errorf("ChangedPaths[%d] = %q, want %q", i, push.ChangedPaths[i], path)
		}
	}
}

func TestExtractPushEvent_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		event *github.PushEvent
	}{
		{
			name:  "missing repository",
			event: &github.PushEvent{Ref: github.Ptr("refs/heads/main")},
		},
		{
			name: "missing ref",
			event: &github.PushEvent{
				Repo: &github.PushEventRepository{FullName: github.Ptr("owner/repo")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ghctrl.ExtractPushEvent(tt.event); err == nil {
				t.Error("ExtractPushEvent() should return error")
			}
		})
	}
}
