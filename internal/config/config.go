package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultConfigPath = "/default.cfg"

type Config struct {
	Server   ServerConfig
	Registry RegistryConfig
	Hub      HubConfig
	Models   ModelsConfig
	Build    BuildConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

// RegistryConfig holds the MLflow/Databricks model registry connection.
type RegistryConfig struct {
	Host    string
	Token   string
	User    string
	Timeout time.Duration
}

// HubConfig holds the container registry REST API connection.
type HubConfig struct {
	Host    string
	Token   string
	User    string
	Org     string
	Timeout time.Duration
}

type ModelsConfig struct {
	// Tags is the model tag allow-list. Empty means all models.
	Tags []string
}

type BuildConfig struct {
	// BaseImage is the repository name for cached serving base images.
	BaseImage string
	// TemplateDir holds the serving entry point and setup script copied
	// into every model image.
	TemplateDir string
}

type LoggerConfig struct {
	Level  string
	Format string
}

// Load reads the INI config file (CONFIG_PATH, default /default.cfg) and
// applies environment overrides.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("docker.host", "https://hub.docker.com/v2")
	v.SetDefault("docker.timeout", "30s")
	v.SetDefault("databricks.timeout", "30s")
	v.SetDefault("build.base_image", "mlflow-packer-base")
	v.SetDefault("build.template_dir", "/app/buildtemplate")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("server.host"),
			Port: v.GetInt("server.port"),
		},
		Registry: RegistryConfig{
			Host:    v.GetString("databricks.registry"),
			Token:   v.GetString("databricks.token"),
			User:    v.GetString("databricks.user"),
			Timeout: parseTimeout(v.GetString("databricks.timeout")),
		},
		Hub: HubConfig{
			Host:    v.GetString("docker.host"),
			Token:   v.GetString("docker.token"),
			User:    v.GetString("docker.user"),
			Org:     v.GetString("docker.org"),
			Timeout: parseTimeout(v.GetString("docker.timeout")),
		},
		Models: ModelsConfig{
			Tags: splitTags(v.GetString("models.tags")),
		},
		Build: BuildConfig{
			BaseImage:   v.GetString("build.base_image"),
			TemplateDir: v.GetString("build.template_dir"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("logger.level"),
			Format: v.GetString("logger.format"),
		},
	}

	return cfg, nil
}

func parseTimeout(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

func splitTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
