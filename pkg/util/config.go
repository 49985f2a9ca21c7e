package util

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/viper"
)

// SetConfigDefaults. defaults used when neither config file nor environment set a key.
func SetConfigDefaults() {
	viper.SetDefault("ROUTES_FILE", "./data/routes.json")
	viper.SetDefault("HOME_LOCATION", "Tarjan's Home")
	viper.SetDefault("CRITERION", "time")
	viper.SetDefault("SOLVER_WORKERS", runtime.NumCPU())
	viper.SetDefault("SOLVER_MAX_NODES", 20)
	viper.SetDefault("ALLPAIRS_RESOLVER", "floyd-warshall")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("PLAN_CACHE_SIZE", 256)
	viper.SetDefault("RATE_LIMIT", 0)
	viper.SetDefault("SPATIAL_INDEX_RADIUS", 0.05)
}

// ReadConfig. read config.yaml from path, environment variables override file values.
// a missing config file is not an error, defaults apply.
func ReadConfig(path string) error {
	SetConfigDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
