package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the registry.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Log  LogConfig  `mapstructure:"log"`
	Seed SeedConfig `mapstructure:"seed"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text or json
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// log.level -> LOG_LEVEL
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	err = v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// No file: run on defaults and env vars with an empty seed.
		err = nil
	} else if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
