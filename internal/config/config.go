package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the parameters of the container scenarios and of the logging around them
type Config struct {
	ArraySize    int    `split_words:"true" default:"16"`
	NDShape      []int  `envconfig:"ND_SHAPE" default:"1,2,3,4,5"`
	ListCapacity int    `split_words:"true" default:"16"`
	MapBuckets   uint   `split_words:"true" default:"16"`
	MapEntries   int    `split_words:"true" default:"13"`
	LogLevel     string `split_words:"true" default:"info"`
	Pretty       bool   `default:"true"`
}

// LoadFromEnv loads a new configuration structure using environment variables prefixed with WLIB_ and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Load()

	config := new(Config)
	if err := envconfig.Process("wlib", config); err != nil {
		return nil, err
	}
	return config, nil
}
