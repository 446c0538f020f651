package dockerhub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"mlflow-packer/internal/config"
)

// Client talks to the Docker Hub style registry REST API. The login and
// tag-list endpoints are Hub-specific, not part of the OCI distribution API.
type Client struct {
	httpClient *http.Client
	host       string
	user       string
	token      string
	org        string
}

func NewClient(cfg config.HubConfig) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		host:  cfg.Host,
		user:  cfg.User,
		token: cfg.Token,
		org:   cfg.Org,
	}
}

type loginResponse struct {
	Token string `json:"token"`
}

type tagsPage struct {
	Next    string `json:"next"`
	Results []struct {
		Name string `json:"name"`
	} `json:"results"`
}

// ListTags logs in and pages through the repository's tags.
func (c *Client) ListTags(ctx context.Context, repository string) ([]string, error) {
	jwt, err := c.login(ctx)
	if err != nil {
		return nil, err
	}

	tags := []string{}
	pageURL := fmt.Sprintf("%s/repositories/%s/%s/tags", c.host, c.org, repository)

	for pageURL != "" {
		page, err := c.tagsPage(ctx, pageURL, jwt)
		if err != nil {
			return nil, err
		}
		for _, r := range page.Results {
			tags = append(tags, r.Name)
		}
		pageURL = page.Next
	}
	return tags, nil
}

func (c *Client) login(ctx context.Context) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"username": c.user,
		"password": c.token,
	})
	if err != nil {
		return "", fmt.Errorf("encode login payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/users/login", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("registry login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("registry login returned %d: %s", resp.StatusCode, body)
	}

	var login loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	return login.Token, nil
}

func (c *Client) tagsPage(ctx context.Context, pageURL, jwt string) (*tagsPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create tags request: %w", err)
	}
	req.Header.Set("Authorization", "JWT "+jwt)

	log.WithField("url", pageURL).Debug("listing repository tags")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("list tags returned %d: %s", resp.StatusCode, body)
	}

	var page tagsPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode tags response: %w", err)
	}
	return &page, nil
}
