package services

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"mlflow-packer/internal/core/domain"
)

type condaManifest struct {
	Dependencies []interface{} `yaml:"dependencies"`
}

// pythonVersionFromConda extracts the Python version pinned in a conda.yaml
// dependency list ("python=3.9.7" yields "3.9.7").
func pythonVersionFromConda(data []byte) (string, error) {
	var manifest condaManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCondaManifest, err)
	}

	for _, dep := range manifest.Dependencies {
		s, ok := dep.(string)
		if !ok || !strings.Contains(s, "python") {
			continue
		}
		parts := strings.Split(s, "=")
		return parts[len(parts)-1], nil
	}
	return "", domain.ErrPythonVersionNotFound
}

func pythonVersionFromCondaFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCondaManifest, err)
	}
	return pythonVersionFromConda(data)
}
