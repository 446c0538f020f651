package mlflow

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"

	"mlflow-packer/internal/config"
	"mlflow-packer/internal/core/domain"
)

const searchPath = "/api/2.0/mlflow/registered-models/search"

// Client talks to the MLflow model registry over its REST API and drives the
// mlflow CLI for artifact operations.
type Client struct {
	httpClient *http.Client
	host       string
	token      string
	bin        string
}

func NewClient(cfg config.RegistryConfig) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		host:  cfg.Host,
		token: cfg.Token,
		bin:   "mlflow",
	}
}

type registeredModelsPage struct {
	RegisteredModels []struct {
		Name string `json:"name"`
		Tags []struct {
			Key   string `json:"key"`
			Value string `json:"value"`
		} `json:"tags"`
		LatestVersions []struct {
			Version      string `json:"version"`
			CurrentStage string `json:"current_stage"`
			Source       string `json:"source"`
		} `json:"latest_versions"`
	} `json:"registered_models"`
	NextPageToken string `json:"next_page_token"`
}

// ListModels pages through the registered-models search endpoint.
func (c *Client) ListModels(ctx context.Context) ([]domain.Model, error) {
	var models []domain.Model
	pageToken := ""

	for {
		page, err := c.searchPage(ctx, pageToken)
		if err != nil {
			return nil, err
		}

		for _, rm := range page.RegisteredModels {
			m := domain.Model{
				Name: rm.Name,
				Tags: make(map[string]string, len(rm.Tags)),
			}
			for _, t := range rm.Tags {
				m.Tags[t.Key] = t.Value
			}
			for _, v := range rm.LatestVersions {
				m.LatestVersions = append(m.LatestVersions, domain.ModelVersion{
					Version: v.Version,
					Stage:   v.CurrentStage,
					Source:  v.Source,
				})
			}
			models = append(models, m)
		}

		if page.NextPageToken == "" {
			return models, nil
		}
		pageToken = page.NextPageToken
	}
}

func (c *Client) searchPage(ctx context.Context, pageToken string) (*registeredModelsPage, error) {
	u := c.host + searchPath
	if pageToken != "" {
		u += "?page_token=" + url.QueryEscape(pageToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create registry request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	log.WithField("url", u).Debug("listing registered models")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registry request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("registry returned %d: %s", resp.StatusCode, body)
	}

	var page registeredModelsPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode registry response: %w", err)
	}
	return &page, nil
}
