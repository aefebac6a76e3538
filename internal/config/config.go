// Package config initializes viper with hyperbench's defaults, config
// file and environment variables.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes the configuration from file and environment
// variables. Flags bound by the CLI take precedence over both.
func Load(cfgFile string) error {
	// Optional .env loading; a missing file is not an error.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("hyperbench")
	}

	viper.SetEnvPrefix("HYPERBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else (e.g. a
		// malformed file) is reported.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("warmup", 0)
	viper.SetDefault("runs", 0)
	viper.SetDefault("min_runs", 10)
	viper.SetDefault("max_runs", 0)
	viper.SetDefault("min_benchmarking_time", 3.0)
	viper.SetDefault("shell", "")
	viper.SetDefault("style", "auto")
	viper.SetDefault("history_path", ".hyperbench/history.db")
	viper.SetDefault("show_output", false)
	viper.SetDefault("ignore_failure", false)
}
