package config

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server  Server
	Storage Storage
}

type Server struct {
	Port string
}

type Storage struct {
	DataDir string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("DATA_DIR", "./data")

	if err := viper.ReadInConfig(); err != nil {
		// Running without a .env file is the normal case; only a present but
		// unreadable file is worth a warning.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Warn().Err(err).Msg("Error reading config file")
		}
	}

	var config Config
	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Storage.DataDir = viper.GetString("DATA_DIR")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
