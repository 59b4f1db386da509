// Package config loads tool settings from prefixed environment
// variables with optional overrides from a config file
package config

import (
	"os"
	"strings"

	pkgerr "github.com/pkg/errors"
	"github.com/spf13/viper"
)

// New returns a config with environment variables selected by name prefix
func New(prefix string, trimPrefix bool) *viper.Viper {

	v := viper.New()
	prefix = strings.ToUpper(prefix) + "_"

	for _, pair := range os.Environ() {
		pos := strings.Index(pair, "=")
		if pos == -1 {
			continue
		}

		key := pair[:pos]
		if !strings.HasPrefix(key, prefix) {
			continue
		}

		newKey := key
		if trimPrefix {
			newKey = strings.TrimPrefix(newKey, prefix)
		}
		v.SetDefault(newKey, os.Getenv(key))
	}

	return v
}

// SetSub inserts map to config
func SetSub(dest, sub *viper.Viper, key string) {
	dest.Set(key, sub.AllSettings())
}

// MergeFile overlays settings from a config file
func MergeFile(dest *viper.Viper, path string) error {

	if _, err := os.Stat(path); err != nil {
		return pkgerr.Wrap(err, "config file")
	}

	dest.SetConfigFile(path)
	if err := dest.MergeInConfig(); err != nil {
		return pkgerr.Wrap(err, "failed to parse config")
	}

	return nil
}
