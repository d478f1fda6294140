package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// MemoryConfig holds in-memory/JSON storage backend settings
type MemoryConfig struct {
	OutputDir      string `json:"outputDir" mapstructure:"outputDir"`
	CompressOutput bool   `json:"compressOutput" mapstructure:"compressOutput"`
}

// StorageConfig selects and configures the chart storage backend.
type StorageConfig struct {
	Type   string       `json:"type" mapstructure:"type"`
	Memory MemoryConfig `json:"memory" mapstructure:"memory"`
}

// Storage returns the storage section of the loaded configuration.
func Storage() StorageConfig {
	return StorageConfig{
		Type: viper.GetString("storage.type"),
		Memory: MemoryConfig{
			OutputDir:      viper.GetString("storage.memory.outputDir"),
			CompressOutput: viper.GetBool("storage.memory.compressOutput"),
		},
	}
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file. A missing
// config file is not an error, defaults then apply everywhere.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./chartlogs")

	viper.SetDefault("data.starCatalog", "./data/raw/hip_main.dat")
	viper.SetDefault("data.bayerNames", "./data/raw/name.fab")
	viper.SetDefault("data.properNames", "./data/raw/iau_star_names.csv")
	viper.SetDefault("data.figures", "./data/raw/constellationship.fab")
	viper.SetDefault("data.figureNames", "./data/raw/constellation_names.json")
	viper.SetDefault("data.boundaries", "")

	viper.SetDefault("storage.type", "memory")
	viper.SetDefault("storage.memory.outputDir", "./data/generated")
	viper.SetDefault("storage.memory.compressOutput", false)

	viper.SetDefault("export.boundaryGeoJSON", "")

	viper.SetDefault("gallery.outputDir", "./data/gallery")
	viper.SetDefault("gallery.width", 70)
	viper.SetDefault("gallery.height", 45)

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "chartgen")

	viper.SetDefault("influx.enabled", false)
	viper.SetDefault("influx.host", "localhost")
	viper.SetDefault("influx.port", "8086")
	viper.SetDefault("influx.protocol", "http")
	viper.SetDefault("influx.token", "supersecrettoken")
	viper.SetDefault("influx.org", "chartgen-metrics")

	viper.SetConfigName("chartgen.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return nil
		}
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
