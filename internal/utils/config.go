package utils

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Log    LoggerConfig `yaml:"log" mapstructure:"log"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// OutputConfig holds result output configuration
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
}

const envPrefix = "READBYTE"

var validOutputFormats = []string{"text", "json"}

// ConfigManager handles configuration loading and management
type ConfigManager struct {
	config *Config
	viper  *viper.Viper
	logger *Logger
}

// NewConfigManager creates a new configuration manager
func NewConfigManager() *ConfigManager {
	return &ConfigManager{
		config: &Config{},
		viper:  viper.New(),
		logger: NewDefaultLogger(),
	}
}

// LoadConfig loads configuration from defaults, an optional YAML file and
// READBYTE_* environment variables, in increasing order of precedence.
func (c *ConfigManager) LoadConfig(configFile string) error {
	c.setDefaults()

	c.viper.SetEnvPrefix(envPrefix)
	c.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	c.viper.AutomaticEnv()

	if configFile != "" {
		c.viper.SetConfigType("yaml")
		c.viper.SetConfigFile(configFile)
		if err := c.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		c.logger.WithComponent("config").Debugf("Loaded config from: %s", c.viper.ConfigFileUsed())
	} else {
		c.viper.SetConfigName("readbyte")
		c.viper.AddConfigPath(".")
		c.viper.AddConfigPath("$HOME/.readbyte")

		if err := c.viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("failed to read config file: %w", err)
			}
			c.logger.WithComponent("config").Debug("No config file found, using defaults and environment variables")
		} else {
			c.logger.WithComponent("config").Debugf("Loaded config from: %s", c.viper.ConfigFileUsed())
		}
	}

	if err := c.viper.Unmarshal(c.config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := c.validateConfig(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// setDefaults sets default configuration values
func (c *ConfigManager) setDefaults() {
	c.viper.SetDefault("log.level", string(LogLevelWarn))
	c.viper.SetDefault("log.format", string(LogFormatText))
	c.viper.SetDefault("output.format", "text")
}

// validateConfig validates and normalizes the loaded configuration
func (c *ConfigManager) validateConfig() error {
	level, ok := ParseLogLevel(string(c.config.Log.Level))
	if !ok {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.config.Log.Level)
	}
	c.config.Log.Level = level

	format, ok := ParseLogFormat(string(c.config.Log.Format))
	if !ok {
		return fmt.Errorf("invalid log format: %s (valid: text, json)", c.config.Log.Format)
	}
	c.config.Log.Format = format

	c.config.Output.Format = strings.ToLower(c.config.Output.Format)
	if !contains(validOutputFormats, c.config.Output.Format) {
		return fmt.Errorf("invalid output format: %s (valid: %v)", c.config.Output.Format, validOutputFormats)
	}

	return nil
}

// GetConfig returns the loaded configuration
func (c *ConfigManager) GetConfig() *Config {
	return c.config
}

// SetLogger sets the logger for the config manager
func (c *ConfigManager) SetLogger(logger *Logger) {
	c.logger = logger
}

// SetConfigValue sets a configuration value by key, overriding every other source
func (c *ConfigManager) SetConfigValue(key string, value interface{}) {
	c.viper.Set(key, value)
}

// contains checks if a slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// LoadConfig loads configuration from configFile, or from the standard
// locations when configFile is empty. Overrides are keyed like the config file
// ("output.format") and win over every other source; they are validated with it.
// Config loading diagnostics go to logOutput.
func LoadConfig(configFile string, logOutput io.Writer, overrides map[string]interface{}) (*Config, error) {
	manager := NewConfigManager()
	manager.SetLogger(NewLogger(LoggerConfig{Level: LogLevelWarn, Output: logOutput}))
	for key, value := range overrides {
		manager.SetConfigValue(key, value)
	}
	if err := manager.LoadConfig(configFile); err != nil {
		return nil, err
	}
	return manager.GetConfig(), nil
}
