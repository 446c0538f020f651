package mlflow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mlflow-packer/internal/config"
)

func newTestClient(host string) *Client {
	return NewClient(config.RegistryConfig{
		Host:    host,
		Token:   "registry-token",
		User:    "packer",
		Timeout: 5 * time.Second,
	})
}

func TestListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, searchPath, r.URL.Path)
		assert.Equal(t, "Bearer registry-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"registered_models": []map[string]interface{}{
				{
					"name": "churn_model",
					"tags": []map[string]string{{"key": "packer", "value": "true"}},
					"latest_versions": []map[string]string{
						{"version": "1", "current_stage": "Production", "source": "s3://models/churn/1"},
						{"version": "2", "current_stage": "Staging", "source": "s3://models/churn/2"},
					},
				},
			},
		})
	}))
	defer srv.Close()

	models, err := newTestClient(srv.URL).ListModels(context.Background())
	assert.NoError(t, err)
	assert.Len(t, models, 1)
	assert.Equal(t, "churn_model", models[0].Name)
	assert.Equal(t, "true", models[0].Tags["packer"])
	assert.Len(t, models[0].LatestVersions, 2)
	assert.Equal(t, "Production", models[0].LatestVersions[0].Stage)
}

func TestListModels_Paginated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page_token") == "p2" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"registered_models": []map[string]interface{}{{"name": "forecast"}},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"registered_models": []map[string]interface{}{{"name": "churn_model"}},
			"next_page_token":   "p2",
		})
	}))
	defer srv.Close()

	models, err := newTestClient(srv.URL).ListModels(context.Background())
	assert.NoError(t, err)
	assert.Len(t, models, 2)
	assert.Equal(t, "forecast", models[1].Name)
}

func TestListModels_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ListModels(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestListModels_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{})
	}))
	defer srv.Close()

	models, err := newTestClient(srv.URL).ListModels(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, models)
}
