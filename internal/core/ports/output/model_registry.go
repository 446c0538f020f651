package ports

import (
	"context"

	"mlflow-packer/internal/core/domain"
)

// ModelRegistry defines the contract for the MLflow model registry and its
// artifact tooling.
type ModelRegistry interface {
	// ListModels returns all registered models with their latest versions.
	ListModels(ctx context.Context) ([]domain.Model, error)

	// DownloadArtifacts downloads a version's artifacts into destDir.
	DownloadArtifacts(ctx context.Context, source, destDir string) error

	// BuildServingImage runs the artifact tool's native container builder
	// for the given environment manager (local, conda, virtualenv).
	BuildServingImage(ctx context.Context, source, image, envManager string) error
}
