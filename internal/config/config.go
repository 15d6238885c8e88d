package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	StoragePath string
	LogLevel    string
}

func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BARBEARIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("storage.path", "barbearia.db")
	v.SetDefault("log.level", "info")

	_ = v.BindEnv("storage.path", "BARBEARIA_STORAGE_PATH", "STORAGE_PATH")
	_ = v.BindEnv("log.level", "BARBEARIA_LOG_LEVEL", "LOG_LEVEL")

	return Config{
		StoragePath: strings.TrimSpace(v.GetString("storage.path")),
		LogLevel:    v.GetString("log.level"),
	}, nil
}
