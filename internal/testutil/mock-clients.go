package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mlflow-packer/internal/core/domain"
)

// MockModelRegistry is a mock of ModelRegistry.
type MockModelRegistry struct {
	mock.Mock
}

func (m *MockModelRegistry) ListModels(ctx context.Context) ([]domain.Model, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Model), args.Error(1)
}

func (m *MockModelRegistry) DownloadArtifacts(ctx context.Context, source, destDir string) error {
	args := m.Called(ctx, source, destDir)
	return args.Error(0)
}

func (m *MockModelRegistry) BuildServingImage(ctx context.Context, source, image, envManager string) error {
	args := m.Called(ctx, source, image, envManager)
	return args.Error(0)
}

// MockContainerRegistry is a mock of ContainerRegistry.
type MockContainerRegistry struct {
	mock.Mock
}

func (m *MockContainerRegistry) ListTags(ctx context.Context, repository string) ([]string, error) {
	args := m.Called(ctx, repository)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockContainerEngine is a mock of ContainerEngine.
type MockContainerEngine struct {
	mock.Mock
}

func (m *MockContainerEngine) Build(ctx context.Context, contextDir, dockerfile, image string) error {
	args := m.Called(ctx, contextDir, dockerfile, image)
	return args.Error(0)
}

func (m *MockContainerEngine) Push(ctx context.Context, image string) (string, error) {
	args := m.Called(ctx, image)
	return args.String(0), args.Error(1)
}

func (m *MockContainerEngine) Pull(ctx context.Context, image string) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockContainerEngine) Prune(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
