package dockerengine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/filters"
	imagetypes "github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/jsonmessage"
	"github.com/google/go-containerregistry/pkg/name"
	log "github.com/sirupsen/logrus"

	"mlflow-packer/internal/config"
)

// Client drives the local container engine: pushes, pulls and prunes go
// through the engine API, builds shell out to the docker CLI.
type Client struct {
	docker   *client.Client
	username string
	password string
}

func NewClient(cfg config.HubConfig) (*Client, error) {
	docker, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("create engine client: %w", err)
	}
	return &Client{
		docker:   docker,
		username: cfg.User,
		password: cfg.Token,
	}, nil
}

func (c *Client) registryAuth() (string, error) {
	auth, err := registry.EncodeAuthConfig(registry.AuthConfig{
		Username: c.username,
		Password: c.password,
	})
	if err != nil {
		return "", fmt.Errorf("encode registry auth: %w", err)
	}
	return auth, nil
}

// Build runs `docker build` with contextDir as the build context.
func (c *Client) Build(ctx context.Context, contextDir, dockerfile, image string) error {
	if _, err := name.ParseReference(image); err != nil {
		return fmt.Errorf("invalid image reference %q: %w", image, err)
	}

	cmd := exec.CommandContext(ctx, "docker", "build", "-f", dockerfile, "-t", image, ".")
	cmd.Dir = contextDir

	log.WithFields(log.Fields{
		"image":      image,
		"dockerfile": dockerfile,
	}).Info("building image")

	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("docker build %s: %w\noutput: %s", image, err, output)
	}
	return nil
}

// Push pushes the image and returns the decoded status stream.
func (c *Client) Push(ctx context.Context, image string) (string, error) {
	if _, err := name.ParseReference(image); err != nil {
		return "", fmt.Errorf("invalid image reference %q: %w", image, err)
	}

	auth, err := c.registryAuth()
	if err != nil {
		return "", err
	}

	out, err := c.docker.ImagePush(ctx, image, imagetypes.PushOptions{RegistryAuth: auth})
	if err != nil {
		return "", fmt.Errorf("push %s: %w", image, err)
	}
	defer out.Close()

	return drainStatusStream(out, image, "push")
}

// Pull pulls the image from the registry.
func (c *Client) Pull(ctx context.Context, image string) error {
	if _, err := name.ParseReference(image); err != nil {
		return fmt.Errorf("invalid image reference %q: %w", image, err)
	}

	auth, err := c.registryAuth()
	if err != nil {
		return err
	}

	out, err := c.docker.ImagePull(ctx, image, imagetypes.PullOptions{RegistryAuth: auth})
	if err != nil {
		return fmt.Errorf("pull %s: %w", image, err)
	}
	defer out.Close()

	_, err = drainStatusStream(out, image, "pull")
	return err
}

// Prune drops dangling images and the build cache.
func (c *Client) Prune(ctx context.Context) error {
	if _, err := c.docker.BuildCachePrune(ctx, types.BuildCachePruneOptions{}); err != nil {
		return fmt.Errorf("prune build cache: %w", err)
	}
	if _, err := c.docker.ImagesPrune(ctx, filters.NewArgs(filters.Arg("dangling", "true"))); err != nil {
		return fmt.Errorf("prune images: %w", err)
	}
	return nil
}

// drainStatusStream decodes an engine JSON status stream, surfacing any
// in-stream error as a failure.
func drainStatusStream(r io.Reader, image, op string) (string, error) {
	var statuses []string
	decoder := json.NewDecoder(r)
	for {
		var msg jsonmessage.JSONMessage
		if err := decoder.Decode(&msg); err != nil {
			if err == io.EOF {
				break
			}
			return "", fmt.Errorf("decode %s response for %s: %w", op, image, err)
		}
		if msg.Error != nil {
			return "", fmt.Errorf("%s %s: %s", op, image, msg.Error.Message)
		}
		if msg.Status != "" {
			statuses = append(statuses, msg.Status)
		}
	}
	return strings.Join(statuses, "\n"), nil
}
