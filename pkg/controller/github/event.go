package github

import (
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hubsync/pkg/domain/model"
)

// ExtractPushEvent converts a GitHub push event payload into the domain
// push event, aggregating changed paths across all commits.
func ExtractPushEvent(event *github.PushEvent) (*model.PushEvent, error) {
	repo := event.GetRepo()
	if repo == nil || repo.GetFullName() == "" {
		return nil, goerr.New("missing repository information in push event")
	}

	push := &model.PushEvent{
		Ref:          event.GetRef(),
		Repository:   repo.GetFullName(),
		Description:  repo.GetDescription(),
		HeadSHA:      event.GetAfter(),
		Sender:       event.GetSender().GetLogin(),
		ChangedPaths: changedPaths(event.Commits),
	}

	if push.Ref == "" {
		return nil, goerr.New("missing ref in push event", goerr.V("repository", push.Repository))
	}

	return push, nil
}

// changedPaths collects added, modified and removed paths across commits,
// deduplicated in first-seen order.
func changedPaths(commits []*github.HeadCommit) []string {
	seen := map[string]bool{}
	var paths []string

	add := func(files []string) {
		for _, f := range files {
			if !seen[f] {
				seen[f] = true
				paths = append(paths, f)
			}
		}
	}

	for _, commit := range commits {
		add(commit.Added)
		add(commit.Modified)
		add(commit.Removed)
	}

	return paths
}
