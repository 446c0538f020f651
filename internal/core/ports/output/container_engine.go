package ports

import "context"

// ContainerEngine defines the contract for the local container engine.
type ContainerEngine interface {
	// Build builds contextDir with the named Dockerfile into image.
	Build(ctx context.Context, contextDir, dockerfile, image string) error

	// Push pushes the image and returns the push output.
	Push(ctx context.Context, image string) (string, error)

	// Pull pulls the image from the registry.
	Pull(ctx context.Context, image string) error

	// Prune removes dangling images and build cache.
	Prune(ctx context.Context) error
}
