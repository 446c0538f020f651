package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mlflow-packer/internal/core/domain"
	"mlflow-packer/internal/core/services"
)

func TestToModelResponse(t *testing.T) {
	m := domain.Model{
		Name: "churn_model",
		LatestVersions: []domain.ModelVersion{
			{Version: "1", Stage: "Production"},
			{Version: "2", Stage: "Staging"},
		},
	}

	resp := ToModelResponse(m)
	assert.Equal(t, "churn_model", resp.Name)
	assert.Equal(t, map[string]string{"1": "Production", "2": "Staging"}, resp.LatestVersions)
}

func TestToImageResponse_NilVersions(t *testing.T) {
	resp := ToImageResponse(services.ImageTags{Name: "churn_model"})

	// Serializes as [] rather than null.
	assert.NotNil(t, resp.Versions)
	assert.Empty(t, resp.Versions)
}
