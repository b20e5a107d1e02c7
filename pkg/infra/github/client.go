package github

import (
	"context"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hubsync/pkg/domain/interfaces"
)

type client struct {
	githubClient *github.Client
}

// NewClient creates a GitHub API client. token may be empty for public
// repositories; unauthenticated requests are rate-limited but sufficient
// for low-frequency README fetches.
func NewClient(token string) interfaces.GitHubClient {
	gh := github.NewClient(nil)
	if token != "" {
		gh = gh.WithAuthToken(token)
	}

	return &client{githubClient: gh}
}

// GetReadme fetches and decodes the repository README at the given ref.
func (c *client) GetReadme(ctx context.Context, owner, repo, ref string) (string, error) {
	var opts *github.RepositoryContentGetOptions
	if ref != "" {
		opts = &github.RepositoryContentGetOptions{Ref: ref}
	}

	readme, _, err := c.githubClient.Repositories.GetReadme(ctx, owner, repo, opts)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get README",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("ref", ref),
		)
	}

	content, err := readme.GetContent()
	if err != nil {
		return "", goerr.Wrap(err, "failed to decode README content",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	return content, nil
}
