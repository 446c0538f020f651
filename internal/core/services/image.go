package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"mlflow-packer/internal/core/domain"
	ports "mlflow-packer/internal/core/ports/output"
)

// ImageTags pairs a model with its known container tags.
type ImageTags struct {
	Name     string
	Versions []string
}

type ImageService struct {
	models *ModelService
	hub    ports.ContainerRegistry
}

func NewImageService(models *ModelService, hub ports.ContainerRegistry) *ImageService {
	return &ImageService{models: models, hub: hub}
}

// List returns the container tags for every allow-listed model. A repository
// whose tags cannot be listed is reported with no versions rather than
// failing the whole listing.
func (s *ImageService) List(ctx context.Context) ([]ImageTags, error) {
	models, err := s.models.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]ImageTags, 0, len(models))
	for _, m := range models {
		repo := domain.RepoName(m.Name)
		tags, err := s.hub.ListTags(ctx, repo)
		if err != nil {
			log.WithError(err).WithField("repository", repo).Warn("list tags failed")
			tags = []string{}
		}
		items = append(items, ImageTags{Name: m.Name, Versions: tags})
	}
	return items, nil
}
