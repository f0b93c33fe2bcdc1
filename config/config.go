package config

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// SysConfig system configuration
type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
	Debug    bool   `yaml:"debug"`
}

// WebConfig web server configuration
type WebConfig struct {
	Host        string   `yaml:"host"`
	Port        int      `yaml:"port"`
	CorsOrigins []string `yaml:"cors_origins"`
	DocsEnabled bool     `yaml:"docs_enabled"`
}

// Addr returns the listen address
func (c WebConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig logging configuration
type LogConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

// CatalogConfig controls the in-memory collections
type CatalogConfig struct {
	Seed          bool   `yaml:"seed"`
	StatsInterval string `yaml:"stats_interval"`
}

type AppConfig struct {
	System  SysConfig     `yaml:"system"`
	Web     WebConfig     `yaml:"web"`
	Logger  LogConfig     `yaml:"logger"`
	Catalog CatalogConfig `yaml:"catalog"`
}

// GetLogDir returns the log directory under the workdir
func (c *AppConfig) GetLogDir() string {
	return path.Join(c.System.Workdir, "logs")
}

// DefaultAppConfig returns the configuration used when no file is given
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Appid:    "catalogd",
			Location: "Local",
			Workdir:  "/var/catalogd",
			Debug:    false,
		},
		Web: WebConfig{
			Host:        "0.0.0.0",
			Port:        3000,
			CorsOrigins: []string{"http://localhost:3001"},
			DocsEnabled: true,
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "/var/catalogd/logs/catalogd.log",
		},
		Catalog: CatalogConfig{
			Seed:          true,
			StatsInterval: "@every 5m",
		},
	}
}

// LoadConfig reads the YAML file at cfile on top of the defaults, then
// applies CATALOGD_* environment overrides. An empty or missing cfile
// yields the defaults.
func LoadConfig(cfile string) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if cfile != "" {
		data, err := os.ReadFile(cfile)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parse config %s", cfile)
			}
		case os.IsNotExist(err):
		default:
			return nil, errors.Wrapf(err, "read config %s", cfile)
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *AppConfig) error {
	setString("CATALOGD_APPID", &cfg.System.Appid)
	setString("CATALOGD_LOCATION", &cfg.System.Location)
	setString("CATALOGD_WORKDIR", &cfg.System.Workdir)
	setString("CATALOGD_WEB_HOST", &cfg.Web.Host)
	setString("CATALOGD_LOGGER_MODE", &cfg.Logger.Mode)
	setString("CATALOGD_LOGGER_FILENAME", &cfg.Logger.Filename)
	setString("CATALOGD_STATS_INTERVAL", &cfg.Catalog.StatsInterval)

	if v := os.Getenv("CATALOGD_WEB_PORT"); v != "" {
		port, err := cast.ToIntE(v)
		if err != nil || port <= 0 || port > 65535 {
			return errors.Errorf("invalid CATALOGD_WEB_PORT %q", v)
		}
		cfg.Web.Port = port
	}
	if v := os.Getenv("CATALOGD_WEB_CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.Web.CorsOrigins = origins
	}
	for name, dst := range map[string]*bool{
		"CATALOGD_DEBUG":              &cfg.System.Debug,
		"CATALOGD_WEB_DOCS_ENABLED":   &cfg.Web.DocsEnabled,
		"CATALOGD_LOGGER_FILE_ENABLE": &cfg.Logger.FileEnable,
		"CATALOGD_SEED":               &cfg.Catalog.Seed,
	} {
		if v := os.Getenv(name); v != "" {
			b, err := cast.ToBoolE(v)
			if err != nil {
				return errors.Errorf("invalid %s %q", name, v)
			}
			*dst = b
		}
	}
	return nil
}

func setString(name string, dst *string) {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		*dst = v
	}
}
