package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	Tournament Tournament
	Redis      Redis
}

type Tournament struct {
	Name string `envconfig:"TOURNAMENT_NAME" default:"IPL Mini Tournament"`
	Seed int64  `envconfig:"SIMULATION_SEED" default:"0"`
}

type Redis struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
