package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// ProductConfig holds settings for the product service.
type ProductConfig struct {
	AppName      string `mapstructure:"APP_NAME"`
	HTTPPort     int    `mapstructure:"HTTP_PORT"`
	DBPath       string `mapstructure:"DB_PATH"`
	InventoryURL string `mapstructure:"INVENTORY_URL"`
	AllowOrigins string `mapstructure:"ALLOW_ORIGINS"`
}

// InventoryConfig holds settings for the inventory service.
type InventoryConfig struct {
	AppName  string `mapstructure:"APP_NAME"`
	HTTPPort int    `mapstructure:"HTTP_PORT"`
	DBPath   string `mapstructure:"DB_PATH"`
}

// LoadProduct reads product-service configuration from app.env in path,
// falling back to environment variables and defaults.
func LoadProduct(path string) (config ProductConfig, err error) {
	v := newViper(path)

	v.SetDefault("APP_NAME", "product-service")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("DB_PATH", "products.db")
	v.SetDefault("INVENTORY_URL", "http://localhost:8081")
	v.SetDefault("ALLOW_ORIGINS", "http://localhost:4200")

	if err = readConfig(v); err != nil {
		return
	}
	err = v.Unmarshal(&config)
	return
}

// LoadInventory reads inventory-service configuration from app.env in
// path, falling back to environment variables and defaults.
func LoadInventory(path string) (config InventoryConfig, err error) {
	v := newViper(path)

	v.SetDefault("APP_NAME", "inventory-service")
	v.SetDefault("HTTP_PORT", 8081)
	v.SetDefault("DB_PATH", "inventory.db")

	if err = readConfig(v); err != nil {
		return
	}
	err = v.Unmarshal(&config)
	return
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()
	return v
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Info().Msg("No config file found, using environment variables and defaults.")
			return nil
		}
		log.Error().Err(err).Msg("Error reading config file")
		return err
	}
	return nil
}
