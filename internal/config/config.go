package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config location relative to the project root.
const DefaultFile = ".crudgen/config.yaml"

// Config holds the namespace and output locations for a generation pass.
// Paths are relative to the project root unless absolute.
type Config struct {
	Namespace  string            `yaml:"namespace"`
	Paths      Paths             `yaml:"paths"`
	StubsPath  string            `yaml:"stubs_path"`
	SampleData map[string]string `yaml:"sample_data,omitempty"`
}

// Paths lists where each artifact kind is written.
type Paths struct {
	Models         string `yaml:"models"`
	Repositories   string `yaml:"repositories"`
	Interfaces     string `yaml:"interfaces"`
	Services       string `yaml:"services"`
	Controllers    string `yaml:"controllers"`
	APIControllers string `yaml:"api_controllers"`
	Requests       string `yaml:"requests"`
	Migrations     string `yaml:"migrations"`
	Views          string `yaml:"views"`
	WebRoutes      string `yaml:"web_routes"`
	APIRoutes      string `yaml:"api_routes"`
}

// Default returns the stock Laravel layout.
func Default() *Config {
	return &Config{
		Namespace: "App",
		Paths: Paths{
			Models:         "app/Models",
			Repositories:   "app/Repositories",
			Interfaces:     "app/Repositories/Contracts",
			Services:       "app/Services",
			Controllers:    "app/Http/Controllers",
			APIControllers: "app/Http/Controllers/API",
			Requests:       "app/Http/Requests",
			Migrations:     "database/migrations",
			Views:          "resources/views",
			WebRoutes:      "routes/web.php",
			APIRoutes:      "routes/api.php",
		},
		StubsPath: "stubs/crud-generator",
		SampleData: map[string]string{
			"name":        "Sample Name",
			"email":       "sample@example.com",
			"description": "This is a sample description",
			"status":      "active",
		},
	}
}

// Load reads a YAML config file and overlays it on the defaults.
// A missing file is not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.merge(&overlay)
	return cfg, nil
}

// Save writes cfg as YAML, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// merge copies every non-blank value of o onto c.
func (c *Config) merge(o *Config) {
	set := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = v
		}
	}

	set(&c.Namespace, o.Namespace)
	set(&c.StubsPath, o.StubsPath)
	set(&c.Paths.Models, o.Paths.Models)
	set(&c.Paths.Repositories, o.Paths.Repositories)
	set(&c.Paths.Interfaces, o.Paths.Interfaces)
	set(&c.Paths.Services, o.Paths.Services)
	set(&c.Paths.Controllers, o.Paths.Controllers)
	set(&c.Paths.APIControllers, o.Paths.APIControllers)
	set(&c.Paths.Requests, o.Paths.Requests)
	set(&c.Paths.Migrations, o.Paths.Migrations)
	set(&c.Paths.Views, o.Paths.Views)
	set(&c.Paths.WebRoutes, o.Paths.WebRoutes)
	set(&c.Paths.APIRoutes, o.Paths.APIRoutes)

	if len(o.SampleData) > 0 {
		c.SampleData = o.SampleData
	}
}

// ClassNamespace turns a source directory into a PHP namespace rooted at
// c.Namespace. The leading "app" segment maps onto the root namespace:
//
//	app/Repositories/Contracts -> App\Repositories\Contracts
func (c *Config) ClassNamespace(dir string) string {
	segments := strings.FieldsFunc(filepath.ToSlash(dir), func(r rune) bool { return r == '/' })
	if len(segments) > 0 && strings.EqualFold(segments[0], "app") {
		segments = segments[1:]
	}

	parts := append([]string{c.Namespace}, segments...)
	return strings.Join(parts, `\`)
}

// Resolve joins p onto root unless p is already absolute.
func Resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
