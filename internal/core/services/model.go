package services

import (
	"context"

	"mlflow-packer/internal/core/domain"
	ports "mlflow-packer/internal/core/ports/output"
)

type ModelService struct {
	registry ports.ModelRegistry
	tags     []string
}

func NewModelService(registry ports.ModelRegistry, tags []string) *ModelService {
	return &ModelService{registry: registry, tags: tags}
}

// List returns the registered models matching the configured tag allow-list.
func (s *ModelService) List(ctx context.Context) ([]domain.Model, error) {
	models, err := s.registry.ListModels(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Model, 0, len(models))
	for _, m := range models {
		if m.HasAnyTag(s.tags) {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

// Find resolves a model by name and one of its latest versions.
func (s *ModelService) Find(ctx context.Context, name, version string) (*domain.Model, *domain.ModelVersion, error) {
	models, err := s.registry.ListModels(ctx)
	if err != nil {
		return nil, nil, err
	}

	for i := range models {
		if models[i].Name != name {
			continue
		}
		v, ok := models[i].Version(version)
		if !ok {
			return nil, nil, domain.ErrVersionNotFound
		}
		return &models[i], v, nil
	}
	return nil, nil, domain.ErrModelNotFound
}
