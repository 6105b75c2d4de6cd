package config

import (
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	InputFile             string
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once and
// caches the result. A missing file is fine; defaults apply.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		viper.SetDefault("port", 9095)
		viper.SetDefault("scheduler.round_robin.time_quantum", 3)
		viper.SetDefault("scheduler.input_file", "datos.txt")

		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")
		// keep defaults when no config file is present
		_ = viper.ReadInConfig()

		config = &SchedulerConfig{}
		config.Port = viper.GetInt("port")
		config.RoundRobinTimeQuantum = viper.GetInt("scheduler.round_robin.time_quantum")
		config.InputFile = viper.GetString("scheduler.input_file")
	})

	return config
}
