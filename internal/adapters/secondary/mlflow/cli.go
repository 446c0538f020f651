package mlflow

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
)

// cliEnv injects the tracking credentials the mlflow CLI expects.
func (c *Client) cliEnv() []string {
	return append(os.Environ(),
		"DATABRICKS_HOST="+c.host,
		"DATABRICKS_TOKEN="+c.token,
		"MLFLOW_TRACKING_URI="+c.host,
		"MLFLOW_TRACKING_TOKEN="+c.token,
		"MLFLOW_TRACKING_INSECURE_TLS=true",
	)
}

// DownloadArtifacts fetches a version's artifacts into destDir via the CLI.
func (c *Client) DownloadArtifacts(ctx context.Context, source, destDir string) error {
	cmd := exec.CommandContext(ctx, c.bin, "artifacts", "download", "-u", source, "-d", destDir)
	cmd.Env = c.cliEnv()

	log.WithFields(log.Fields{
		"source": source,
		"dest":   destDir,
	}).Info("downloading artifacts")

	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("mlflow artifacts download: %w\noutput: %s", err, output)
	}
	return nil
}

// BuildServingImage runs the CLI's built-in container builder.
func (c *Client) BuildServingImage(ctx context.Context, source, image, envManager string) error {
	cmd := exec.CommandContext(ctx, c.bin, "models", "build-docker",
		"-m", source, "-n", image, "--env-manager", envManager)
	cmd.Env = c.cliEnv()

	log.WithFields(log.Fields{
		"image":       image,
		"env_manager": envManager,
	}).Info("running mlflow models build-docker")

	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("mlflow models build-docker: %w\noutput: %s", err, output)
	}
	return nil
}
