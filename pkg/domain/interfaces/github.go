package interfaces

import "context"

// GitHubClient defines operations for interacting with the GitHub API
type GitHubClient interface {
	// GetReadme returns the decoded README content of the repository at
	// the given ref. An empty ref means the default branch.
	GetReadme(ctx context.Context, owner, repo, ref string) (string, error)
}
