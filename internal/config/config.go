// Package config loads mskctl settings from defaults, a YAML file and MSKCTL_
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/kirsle/configdir"
	"github.com/spf13/viper"
)

// AppName names the config file and its directories
const AppName = "mskctl"

// Config represents the mskctl configuration
type Config struct {
	AWS    AWSConfig    `yaml:"aws" mapstructure:"aws"`
	Client ClientConfig `yaml:"client" mapstructure:"client"`
	Wait   WaitConfig   `yaml:"wait" mapstructure:"wait"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// AWSConfig selects the account, region and endpoint requests go to
type AWSConfig struct {
	Region          string `yaml:"region" mapstructure:"region"`
	Profile         string `yaml:"profile" mapstructure:"profile"`
	Endpoint        string `yaml:"endpoint" mapstructure:"endpoint"`
	AccessKeyID     string `yaml:"accessKeyID" mapstructure:"accessKeyID"`
	SecretAccessKey string `yaml:"secretAccessKey" mapstructure:"secretAccessKey"`
	SessionToken    string `yaml:"sessionToken" mapstructure:"sessionToken"`
}

// ClientConfig tunes the HTTP client
type ClientConfig struct {
	Timeout            time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxRetries         int           `yaml:"maxRetries" mapstructure:"maxRetries"`
	RateLimit          float64       `yaml:"rateLimit" mapstructure:"rateLimit"`
	RateBurst          int           `yaml:"rateBurst" mapstructure:"rateBurst"`
	InsecureSkipVerify bool          `yaml:"insecureSkipVerify" mapstructure:"insecureSkipVerify"`
}

// WaitConfig tunes the waiters behind --wait and "clusters wait"
type WaitConfig struct {
	PollInterval time.Duration `yaml:"pollInterval" mapstructure:"pollInterval"`
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// OutputConfig controls rendering and logging
type OutputConfig struct {
	Format    string `yaml:"format" mapstructure:"format"`
	LogLevel  string `yaml:"logLevel" mapstructure:"logLevel"`
	LogFormat string `yaml:"logFormat" mapstructure:"logFormat"`
}

var (
	v        *viper.Viper
	instance *Config
	initOnce sync.Once
	mu       sync.RWMutex
)

// ResetConfig resets the configuration instance (for testing)
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	v = nil
	instance = nil
	initOnce = sync.Once{}
}

// InitConfig initializes the configuration with Viper
func InitConfig() error {
	initOnce.Do(func() {
		mu.Lock()
		defer mu.Unlock()

		v = viper.New()

		v.SetDefault("aws.region", "")
		v.SetDefault("aws.profile", "")
		v.SetDefault("aws.endpoint", "")
		v.SetDefault("aws.accessKeyID", "")
		v.SetDefault("aws.secretAccessKey", "")
		v.SetDefault("aws.sessionToken", "")

		v.SetDefault("client.timeout", 30*time.Second)
		v.SetDefault("client.maxRetries", 3)
		v.SetDefault("client.rateLimit", 0)
		v.SetDefault("client.rateBurst", 1)
		v.SetDefault("client.insecureSkipVerify", false)

		v.SetDefault("wait.pollInterval", 30*time.Second)
		v.SetDefault("wait.timeout", 2*time.Hour)

		v.SetDefault("output.format", "table")
		v.SetDefault("output.logLevel", "warn")
		v.SetDefault("output.logFormat", "text")

		v.SetEnvPrefix("MSKCTL")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		bindAWSEnvVars()
	})

	return nil
}

// bindAWSEnvVars lets the standard AWS variables fill in when no MSKCTL_ one is set
func bindAWSEnvVars() {
	v.BindEnv("aws.region", "MSKCTL_AWS_REGION", "AWS_REGION", "AWS_DEFAULT_REGION")
	v.BindEnv("aws.profile", "MSKCTL_AWS_PROFILE", "AWS_PROFILE")
	v.BindEnv("aws.endpoint", "MSKCTL_AWS_ENDPOINT", "AWS_ENDPOINT_URL_KAFKA", "AWS_ENDPOINT_URL")
	v.BindEnv("aws.accessKeyID", "MSKCTL_AWS_ACCESSKEYID", "AWS_ACCESS_KEY_ID")
	v.BindEnv("aws.secretAccessKey", "MSKCTL_AWS_SECRETACCESSKEY", "AWS_SECRET_ACCESS_KEY")
	v.BindEnv("aws.sessionToken", "MSKCTL_AWS_SESSIONTOKEN", "AWS_SESSION_TOKEN")
}

// SearchPaths returns the directories searched for mskctl.yaml, in order
func SearchPaths() []string {
	paths := []string{"."}
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, "."+AppName))
	}
	return append(paths, configdir.LocalConfig(AppName))
}

// LoadConfig loads configuration from a file. An empty path searches
// SearchPaths and accepts a missing file.
func LoadConfig(configPath string) (*Config, error) {
	if err := InitConfig(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("config file does not exist: %s", configPath)
			}
			return nil, fmt.Errorf("failed to access config file: %w", err)
		}

		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		for _, p := range SearchPaths() {
			v.AddConfigPath(p)
		}

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	instance = cfg
	return cfg, nil
}

// ConfigFileUsed returns the file the last LoadConfig read, if any
func ConfigFileUsed() string {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		return ""
	}
	return v.ConfigFileUsed()
}

// GetConfig returns the current configuration instance
func GetConfig() *Config {
	mu.RLock()
	cfg := instance
	mu.RUnlock()
	if cfg != nil {
		return cfg
	}

	cfg, err := LoadConfig("")
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// DefaultConfig returns the built-in defaults without reading files or the environment
func DefaultConfig() *Config {
	return &Config{
		Client: ClientConfig{
			Timeout:    30 * time.Second,
			MaxRetries: 3,
			RateBurst:  1,
		},
		Wait: WaitConfig{
			PollInterval: 30 * time.Second,
			Timeout:      2 * time.Hour,
		},
		Output: OutputConfig{
			Format:    "table",
			LogLevel:  "warn",
			LogFormat: "text",
		},
	}
}

// Set overrides a configuration value; it takes effect on the next LoadConfig
func Set(key string, value interface{}) {
	ensureInitialized()
	mu.Lock()
	defer mu.Unlock()
	v.Set(key, value)
}

func ensureInitialized() {
	mu.RLock()
	initialized := v != nil
	mu.RUnlock()

	if !initialized {
		InitConfig()
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format: %s (supported: table, json, yaml)", c.Output.Format)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(c.Output.LogLevel)] {
		return fmt.Errorf("invalid log level: %s", c.Output.LogLevel)
	}

	if c.Output.LogFormat != "text" && c.Output.LogFormat != "json" {
		return fmt.Errorf("invalid log format: %s", c.Output.LogFormat)
	}

	if c.Client.MaxRetries < -1 {
		return fmt.Errorf("maxRetries must be -1 (disabled) or greater: %d", c.Client.MaxRetries)
	}
	if c.Client.RateLimit < 0 {
		return fmt.Errorf("rateLimit cannot be negative: %v", c.Client.RateLimit)
	}
	if c.Client.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative: %s", c.Client.Timeout)
	}
	if c.Wait.PollInterval <= 0 || c.Wait.Timeout <= 0 {
		return fmt.Errorf("wait pollInterval and timeout must be positive")
	}

	if (c.AWS.AccessKeyID == "") != (c.AWS.SecretAccessKey == "") {
		return fmt.Errorf("accessKeyID and secretAccessKey must be set together")
	}

	return nil
}
