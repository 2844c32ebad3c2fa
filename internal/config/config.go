package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vango-dev/docnav/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "docnav.json"

	// DefaultPort is the default query service port.
	DefaultPort = 4000

	// DefaultHost is the default query service host.
	DefaultHost = "localhost"

	// DefaultManifest is the default manifest file path.
	DefaultManifest = "nav/sidebar.json"

	// DefaultContentDir is the default authored content directory.
	DefaultContentDir = "content"
)

// Config represents the complete docnav.json configuration.
type Config struct {
	// Name is the documentation site name.
	Name string `json:"name,omitempty"`

	// Manifest locates the sidebar manifest.
	Manifest ManifestConfig `json:"manifest,omitempty"`

	// Content locates authored page bodies.
	Content ContentConfig `json:"content,omitempty"`

	// Serve contains query service settings.
	Serve ServeConfig `json:"serve,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ManifestConfig locates the sidebar manifest. File and S3 are mutually
// exclusive; when both are set, S3 wins (the deploy pipeline is the source
// of truth in production).
type ManifestConfig struct {
	// File is the path to the manifest JSON file.
	File string `json:"file,omitempty"`

	// S3 names a manifest object in a deploy bucket.
	S3 S3Config `json:"s3,omitempty"`
}

// S3Config names an S3 object.
type S3Config struct {
	// Bucket is the S3 bucket name.
	Bucket string `json:"bucket,omitempty"`

	// Key is the object key.
	Key string `json:"key,omitempty"`
}

// ContentConfig locates authored page content.
type ContentConfig struct {
	// Dir is the directory containing markdown/MDX page bodies.
	Dir string `json:"dir,omitempty"`
}

// ServeConfig contains query service settings.
type ServeConfig struct {
	// Port is the port to bind.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Watch rebuilds the index when the manifest file changes.
	Watch bool `json:"watch,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Manifest: ManifestConfig{
			File: DefaultManifest,
		},
		Content: ContentConfig{
			Dir: DefaultContentDir,
		},
		Serve: ServeConfig{
			Port:  DefaultPort,
			Host:  DefaultHost,
			Watch: true,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for docnav.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("N040").
				WithDetail("No docnav.json found in " + filepath.Dir(path)).
				WithSuggestion("Create docnav.json next to your docs content")
		}
		return nil, errors.New("N041").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("N041").
			WithDetail("Failed to parse docnav.json: " + err.Error()).
			WithSuggestion("Check that docnav.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Manifest.File == "" && !c.HasS3() {
		c.Manifest.File = DefaultManifest
	}
	if c.Content.Dir == "" {
		c.Content.Dir = DefaultContentDir
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return errors.New("N041").
			WithDetail("Port must be between 0 and 65535")
	}
	if c.Manifest.File == "" && !c.HasS3() {
		return errors.New("N042")
	}
	if c.HasS3() && (c.Manifest.S3.Bucket == "" || c.Manifest.S3.Key == "") {
		return errors.New("N042").
			WithDetail("S3 manifest requires both bucket and key")
	}
	return nil
}

// HasS3 returns true when the manifest is sourced from S3.
func (c *Config) HasS3() bool {
	return c.Manifest.S3.Bucket != "" || c.Manifest.S3.Key != ""
}

// ManifestPath returns the absolute path to the manifest file.
func (c *Config) ManifestPath() string {
	if filepath.IsAbs(c.Manifest.File) {
		return c.Manifest.File
	}
	return filepath.Join(c.Dir(), c.Manifest.File)
}

// ContentPath returns the absolute path to the content directory.
func (c *Config) ContentPath() string {
	if filepath.IsAbs(c.Content.Dir) {
		return c.Content.Dir
	}
	return filepath.Join(c.Dir(), c.Content.Dir)
}

// ServeAddress returns the address string for the query service.
func (c *Config) ServeAddress() string {
	return c.Serve.Host + ":" + strconv.Itoa(c.Serve.Port)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the docs checkout root.
// Returns the directory containing docnav.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("N040").
				WithDetail("No docnav.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
