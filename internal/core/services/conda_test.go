package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mlflow-packer/internal/core/domain"
)

func TestPythonVersionFromConda(t *testing.T) {
	manifest := []byte(`name: mlflow-env
channels:
  - conda-forge
dependencies:
  - python=3.9.7
  - pip
  - pip:
    - -r requirements.txt
`)

	version, err := pythonVersionFromConda(manifest)
	assert.NoError(t, err)
	assert.Equal(t, "3.9.7", version)
}

func TestPythonVersionFromConda_NoPython(t *testing.T) {
	manifest := []byte("dependencies:\n  - pip\n")

	_, err := pythonVersionFromConda(manifest)
	assert.ErrorIs(t, err, domain.ErrPythonVersionNotFound)
}

func TestPythonVersionFromConda_InvalidYAML(t *testing.T) {
	_, err := pythonVersionFromConda([]byte("dependencies: [unclosed"))
	assert.ErrorIs(t, err, domain.ErrCondaManifest)
}

func TestPythonVersionFromConda_PipDictIgnored(t *testing.T) {
	// The pip block is a mapping, not a string, and must not be matched.
	manifest := []byte(`dependencies:
  - pip:
    - python-dateutil==2.8.2
  - python=3.10.4
`)

	version, err := pythonVersionFromConda(manifest)
	assert.NoError(t, err)
	assert.Equal(t, "3.10.4", version)
}

func TestPythonVersionFromCondaFile_Missing(t *testing.T) {
	_, err := pythonVersionFromCondaFile("/nonexistent/conda.yaml")
	assert.ErrorIs(t, err, domain.ErrCondaManifest)
}
