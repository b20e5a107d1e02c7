package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Repository identifies a source repository by its owner and name.
// Both fields are normalized to lower case, matching Docker Hub's
// case handling for repository paths.
type Repository struct {
	Owner string
	Name  string
}

// ParseRepository parses a GitHub slug such as "Owner/Repo-Name" into a
// Repository. The slug must contain exactly one "/" with a non-empty owner
// and name; both parts are lower-cased.
func ParseRepository(slug string) (Repository, error) {
	parts := strings.Split(slug, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repository{}, goerr.New("invalid repository slug", goerr.V("slug", slug))
	}

	return Repository{
		Owner: strings.ToLower(parts[0]),
		Name:  strings.ToLower(parts[1]),
	}, nil
}

// FullName returns the "owner/name" form of the repository.
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// RegistryPath returns the Docker Hub repository path for this repository
// under the given registry namespace: "<username>/<name>".
func (r Repository) RegistryPath(username string) string {
	return strings.ToLower(username) + "/" + r.Name
}
