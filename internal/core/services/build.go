package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	log "github.com/sirupsen/logrus"

	"mlflow-packer/internal/config"
	"mlflow-packer/internal/core/domain"
	ports "mlflow-packer/internal/core/ports/output"
)

type BuildService struct {
	models      *ModelService
	registry    ports.ModelRegistry
	hub         ports.ContainerRegistry
	engine      ports.ContainerEngine
	org         string
	baseImage   string
	templateDir string
}

func NewBuildService(
	models *ModelService,
	registry ports.ModelRegistry,
	hub ports.ContainerRegistry,
	engine ports.ContainerEngine,
	hubCfg config.HubConfig,
	buildCfg config.BuildConfig,
) *BuildService {
	return &BuildService{
		models:      models,
		registry:    registry,
		hub:         hub,
		engine:      engine,
		org:         hubCfg.Org,
		baseImage:   buildCfg.BaseImage,
		templateDir: buildCfg.TemplateDir,
	}
}

// Build resolves a model version and builds and pushes its serving image.
// The baseimage environment manager uses the content-addressed base layer;
// any other manager delegates to the artifact tool's native builder.
func (s *BuildService) Build(ctx context.Context, name, version, envManager string) (*domain.BuildResult, error) {
	// Reclaim engine space left over from earlier builds.
	if err := s.engine.Prune(ctx); err != nil {
		log.WithError(err).Warn("engine prune failed")
	}

	model, ver, err := s.models.Find(ctx, name, version)
	if err != nil {
		return nil, err
	}

	image := fmt.Sprintf("%s/%s:%s", s.org, domain.RepoName(model.Name), ver.Version)

	if envManager != domain.EnvManagerBaseImage {
		return s.buildNative(ctx, ver, image, envManager)
	}
	return s.buildWithBase(ctx, ver, image)
}

func (s *BuildService) buildNative(ctx context.Context, ver *domain.ModelVersion, image, envManager string) (*domain.BuildResult, error) {
	log.WithFields(log.Fields{
		"image":       image,
		"env_manager": envManager,
	}).Info("building with native builder")

	if err := s.registry.BuildServingImage(ctx, ver.Source, image, envManager); err != nil {
		return nil, err
	}

	out, err := s.engine.Push(ctx, image)
	if err != nil {
		return nil, err
	}
	return &domain.BuildResult{Image: image, Output: out}, nil
}

func (s *BuildService) buildWithBase(ctx context.Context, ver *domain.ModelVersion, image string) (*domain.BuildResult, error) {
	tmpDir, err := os.MkdirTemp("", "mlflow-packer-*")
	if err != nil {
		return nil, fmt.Errorf("create build dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	if err := s.registry.DownloadArtifacts(ctx, ver.Source, tmpDir); err != nil {
		return nil, err
	}

	modelDir, err := singleArtifactDir(tmpDir)
	if err != nil {
		return nil, err
	}
	modelDirName := filepath.Base(modelDir)

	pythonVersion, err := pythonVersionFromCondaFile(filepath.Join(modelDir, "conda.yaml"))
	if err != nil {
		return nil, err
	}

	fingerprint, err := FingerprintFile(filepath.Join(modelDir, "requirements.txt"))
	if err != nil {
		return nil, err
	}
	tag := BaseImageTag(pythonVersion, fingerprint)
	baseRef := fmt.Sprintf("%s/%s:%s", s.org, s.baseImage, tag)

	// A tag-list failure means the cache state is unknown; building anew is
	// always safe, so degrade to a rebuild instead of failing the request.
	known, err := s.hub.ListTags(ctx, s.baseImage)
	if err != nil {
		log.WithError(err).WithField("repository", s.baseImage).Warn("base tag lookup failed, rebuilding")
		known = nil
	}

	if slices.Contains(known, tag) {
		log.WithField("image", baseRef).Info("pulling cached base image")
		if err := s.engine.Pull(ctx, baseRef); err != nil {
			return nil, err
		}
	} else {
		log.WithField("image", baseRef).Info("building base image")
		if err := s.buildBaseImage(ctx, tmpDir, modelDirName, pythonVersion, baseRef); err != nil {
			return nil, err
		}
	}

	// Inject the serving entry point and setup script into the model dir.
	for _, f := range []string{"main.py", "setup.py"} {
		if err := copyFile(filepath.Join(s.templateDir, f), filepath.Join(modelDir, f)); err != nil {
			return nil, fmt.Errorf("copy build template %s: %w", f, err)
		}
	}

	dockerfile := filepath.Join(tmpDir, "Dockerfile")
	if err := os.WriteFile(dockerfile, []byte(renderOverlayDockerfile(baseRef, modelDirName)), 0o644); err != nil {
		return nil, fmt.Errorf("write dockerfile: %w", err)
	}

	if err := s.engine.Build(ctx, tmpDir, "Dockerfile", image); err != nil {
		return nil, err
	}

	out, err := s.engine.Push(ctx, image)
	if err != nil {
		return nil, err
	}
	return &domain.BuildResult{Image: image, Output: out}, nil
}

func (s *BuildService) buildBaseImage(ctx context.Context, contextDir, modelDirName, pythonVersion, baseRef string) error {
	dockerfile := filepath.Join(contextDir, "baseDockerfile")
	content := renderBaseDockerfile(pythonVersion, modelDirName)
	if err := os.WriteFile(dockerfile, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write base dockerfile: %w", err)
	}

	if err := s.engine.Build(ctx, contextDir, "baseDockerfile", baseRef); err != nil {
		return err
	}

	if _, err := s.engine.Push(ctx, baseRef); err != nil {
		return err
	}
	return nil
}

// singleArtifactDir expects the download to have produced exactly one entry.
func singleArtifactDir(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("scan artifacts: %w", err)
	}
	switch len(entries) {
	case 0:
		return "", domain.ErrNoArtifacts
	case 1:
		return filepath.Join(dir, entries[0].Name()), nil
	default:
		return "", domain.ErrMultipleArtifactDirs
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
