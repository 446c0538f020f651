package ports

import "context"

// ContainerRegistry defines the contract for the container registry REST API.
type ContainerRegistry interface {
	// ListTags returns the known tags of a repository within the configured
	// organization.
	ListTags(ctx context.Context, repository string) ([]string, error)
}
