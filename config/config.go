package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// SysConfig system-level settings
type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
}

// WebConfig web server settings
type WebConfig struct {
	Host  string `yaml:"host" json:"host"`
	Port  int    `yaml:"port" json:"port"`
	Debug bool   `yaml:"debug" json:"debug"`
}

// LogConfig logger settings
type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System SysConfig `yaml:"system" json:"system"`
	Web    WebConfig `yaml:"web" json:"web"`
	Logger LogConfig `yaml:"logger" json:"logger"`
}

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Appid:    "cloudwatchr",
			Location: "UTC",
			Workdir:  "/var/cloudwatchr",
		},
		Web: WebConfig{
			Host:  "0.0.0.0",
			Port:  8080,
			Debug: false,
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "/var/cloudwatchr/cloudwatchr.log",
		},
	}
}

// LoadConfig reads the configuration file if it exists and applies
// environment overrides on top of it. A missing file is not an error,
// the defaults are used instead.
func LoadConfig(cfile string) *AppConfig {
	cfg := DefaultAppConfig()
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				panic(errors.Wrapf(err, "parse config file %s", cfile))
			}
		}
	}
	setEnvValues(cfg)
	if cfg.Logger.Filename == "" {
		cfg.Logger.Filename = filepath.Join(cfg.System.Workdir, "cloudwatchr.log")
	}
	return cfg
}

// setEnvValues overrides configuration with CLOUDWATCHR_* environment variables
func setEnvValues(cfg *AppConfig) {
	setEnvString(&cfg.System.Appid, "CLOUDWATCHR_SYSTEM_APPID")
	setEnvString(&cfg.System.Location, "CLOUDWATCHR_SYSTEM_LOCATION")
	setEnvString(&cfg.System.Workdir, "CLOUDWATCHR_SYSTEM_WORKDIR")
	setEnvString(&cfg.Web.Host, "CLOUDWATCHR_WEB_HOST")
	setEnvInt(&cfg.Web.Port, "CLOUDWATCHR_WEB_PORT")
	setEnvBool(&cfg.Web.Debug, "CLOUDWATCHR_WEB_DEBUG")
	setEnvString(&cfg.Logger.Mode, "CLOUDWATCHR_LOGGER_MODE")
	setEnvBool(&cfg.Logger.FileEnable, "CLOUDWATCHR_LOGGER_FILE_ENABLE")
	setEnvString(&cfg.Logger.Filename, "CLOUDWATCHR_LOGGER_FILENAME")
}

func setEnvString(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

func setEnvInt(dst *int, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = cast.ToInt(v)
	}
}

func setEnvBool(dst *bool, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = cast.ToBool(v)
	}
}
