package dto

import (
	"mlflow-packer/internal/core/domain"
	"mlflow-packer/internal/core/services"
)

// ModelResponse lists a registered model's latest versions and their stage.
type ModelResponse struct {
	Name           string            `json:"name"`
	LatestVersions map[string]string `json:"latest_versions"`
}

// ImageResponse lists the container tags known for a model.
type ImageResponse struct {
	Name     string   `json:"name"`
	Versions []string `json:"versions"`
}

// BuildResponse carries the push result of a build request, or the
// not-found message.
type BuildResponse struct {
	Result string `json:"result"`
}

func ToModelResponse(m domain.Model) ModelResponse {
	versions := make(map[string]string, len(m.LatestVersions))
	for _, v := range m.LatestVersions {
		versions[v.Version] = v.Stage
	}
	return ModelResponse{Name: m.Name, LatestVersions: versions}
}

func ToImageResponse(t services.ImageTags) ImageResponse {
	versions := t.Versions
	if versions == nil {
		versions = []string{}
	}
	return ImageResponse{Name: t.Name, Versions: versions}
}
