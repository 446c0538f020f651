package domain

import "errors"

// Not found errors
var (
	ErrModelNotFound   = errors.New("model not found")
	ErrVersionNotFound = errors.New("version not found")
)

// Validation errors
var (
	ErrMissingModelName = errors.New("model name is required")
	ErrMissingVersion   = errors.New("model version is required")
)

// Artifact errors
var (
	ErrNoArtifacts           = errors.New("no artifacts downloaded")
	ErrMultipleArtifactDirs  = errors.New("multiple model dirs downloaded")
	ErrCondaManifest         = errors.New("problem parsing conda.yaml")
	ErrPythonVersionNotFound = errors.New("no python version in conda.yaml")
)
