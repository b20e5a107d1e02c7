package interfaces

import "context"

// RegistryClient defines operations against a container registry's
// repository metadata API.
type RegistryClient interface {
	// UpdateDescription sets the short and full description of the
	// repository at path ("<namespace>/<name>").
	UpdateDescription(ctx context.Context, path, short, full string) error
}
