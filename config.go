package main

import (
	"io/ioutil"
	"os"

	"github.com/jbeshir/referral-predictor-frontend/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const configPath = "referral.yaml"

type Config struct {
	Port         string `yaml:"port"`
	ModelPath    string `yaml:"model_path"`
	ExposeErrors bool   `yaml:"expose_errors"`
	// Zero leaves submissions unthrottled.
	SubmissionsPerSecond float64   `yaml:"submissions_per_second"`
	Log                  LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

func defaultConfig() *Config {
	return &Config{
		Port:      "8080",
		ModelPath: model.DefaultArtifactPath,
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// loadConfig reads path over the defaults. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	content, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "couldn't read config")
	}

	if err := yaml.UnmarshalStrict(content, config); err != nil {
		return nil, errors.Wrapf(err, "couldn't parse config %s", path)
	}
	if config.ModelPath == "" {
		config.ModelPath = model.DefaultArtifactPath
	}
	return config, nil
}
