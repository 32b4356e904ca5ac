package providers

import (
	"fitviz/internal/structures"
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"strings"
)

const (
	AppName             = "FitViz"
	defaultSleepLogSize = 30
	defaultCacheTTL     = 60
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("storage.driver", "file")
	v.SetDefault("clock.timezone", "Local")
	v.SetDefault("tracker.sleepLogLimit", defaultSleepLogSize)
	v.SetDefault("cache.ttl", fmt.Sprintf("%ds", defaultCacheTTL))

	v.BindEnv("logger.level", "FITVIZ_LOG_LEVEL")
	v.BindEnv("storage.driver", "FITVIZ_STORAGE_DRIVER")
	v.BindEnv("storage.dir", "FITVIZ_STORAGE_DIR")
	v.BindEnv("clock.timezone", "FITVIZ_TIMEZONE")
	v.BindEnv("cache.enabled", "FITVIZ_CACHE_ENABLED")
	v.BindEnv("cache.size", "FITVIZ_CACHE_SIZE")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
