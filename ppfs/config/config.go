package config

import (
	"fmt"
	"strings"

	internal "github.com/ZanzyTHEbar/portable-pathfs/ppfs"

	"github.com/spf13/viper"
)

// Config stores all configuration of the library.
// The values are read by viper from a config file or environment variables.
type Config struct {
	PPFS PPFSConfig `mapstructure:"ppfs"`
}

// PPFSConfig stores path/filesystem layer configurations.
type PPFSConfig struct {
	// TempDir overrides the platform temp-directory resolution when non-empty.
	TempDir string `mapstructure:"tempDir"`
	// DirPerms is the permission mode applied to directories created by Mkdir/Mkdirs.
	DirPerms int `mapstructure:"dirPerms"`
	// IgnoreFileName is the per-directory ignore file honored by the traverser.
	IgnoreFileName string `mapstructure:"ignoreFileName"`
	// WorkerCount bounds traverser concurrency; 0 derives it from CPU count.
	WorkerCount int `mapstructure:"workerCount"`
}

var AppConfig Config

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath(internal.DefaultConfigPath)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Set default values
	viper.SetDefault("ppfs.tempDir", "")
	viper.SetDefault("ppfs.dirPerms", internal.DefaultDirPerms)
	viper.SetDefault("ppfs.ignoreFileName", internal.DefaultIgnoreFileName)
	viper.SetDefault("ppfs.workerCount", internal.DefaultWorkerCount)

	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // e.g. ppfs.tempDir becomes PPFS_TEMPDIR

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; defaults will be used. This is not an error
			// for the library to halt on.
			logger := internal.GetLogger()
			logger.Debug().Msg("no config file found, using defaults")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &AppConfig, nil
}
