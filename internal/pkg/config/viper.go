package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Viper is a Config implementation backed by github.com/spf13/viper.
//
// Keys are dotted (e.g. "smtp.host") and resolve from the process environment
// with dots replaced by underscores (SMTP_HOST), then from the registered
// defaults. An optional dotenv file is folded into the environment at startup
// without overriding variables that are already set, and is reloaded when it
// changes on disk.
type Viper struct {
	v       *viper.Viper
	watcher *fsnotify.Watcher
	owned   map[string]bool
}

// NewViper builds a Viper-backed Config. pathFile points at an optional
// dotenv-style file (the deployment convention is a config.env next to the
// binary); a missing file is not an error since every key can come from the
// environment. defaults are registered as the lowest-priority source.
func NewViper(pathFile string, defaults map[string]any) (*Viper, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	vc := &Viper{v: v, owned: map[string]bool{}}

	if pathFile != "" {
		if _, err := os.Stat(pathFile); err == nil {
			if err := vc.loadEnvFile(pathFile); err != nil {
				return nil, err
			}
			if err := vc.watchEnvFile(pathFile); err != nil {
				return nil, err
			}
		}
	}

	return vc, nil
}

// loadEnvFile folds the file's variables into the process environment. A
// variable already present in the real environment keeps its value unless it
// came from a previous load of the same file.
func (vc *Viper) loadEnvFile(pathFile string) error {
	fv := viper.New()
	fv.SetConfigFile(pathFile)
	fv.SetConfigType("env")
	if err := fv.ReadInConfig(); err != nil {
		return err
	}

	for _, key := range fv.AllKeys() {
		name := strings.ToUpper(key)
		if _, exists := os.LookupEnv(name); exists && !vc.owned[name] {
			continue
		}
		if err := os.Setenv(name, fv.GetString(key)); err != nil {
			return err
		}
		vc.owned[name] = true
	}

	return nil
}

func (vc *Viper) watchEnvFile(pathFile string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(pathFile); err != nil {
		watcher.Close()
		return err
	}
	vc.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
					continue
				}
				if err := vc.loadEnvFile(pathFile); err != nil {
					slog.Error("config reload failed", "path", pathFile, "err", err)
					continue
				}
				slog.Info("config success reloaded", "path", pathFile)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("config watcher error", "path", pathFile, "err", err)
			}
		}
	}()

	return nil
}

// NewViperFromBytes loads configuration from memory and returns a Viper-backed
// Config. configType should be a format supported by Viper (e.g. "env", "yaml").
func NewViperFromBytes(configType string, data []byte) (*Viper, error) {
	if strings.TrimSpace(configType) == "" {
		return nil, errors.New("config type is required")
	}

	v := viper.New()
	v.SetConfigType(configType)

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	return &Viper{v: v}, nil
}

// GetBool returns the value for key as bool.
func (vc *Viper) GetBool(key string) bool {
	return vc.v.GetBool(key)
}

// GetInt returns the value for key as int.
func (vc *Viper) GetInt(key string) int {
	return vc.v.GetInt(key)
}

// GetString returns the value for key as string.
func (vc *Viper) GetString(key string) string {
	return strings.TrimSpace(vc.v.GetString(key))
}

// GetSecond returns the value for key as seconds.
func (vc *Viper) GetSecond(key string) time.Duration {
	return time.Duration(vc.v.GetInt64(key)) * time.Second
}

// GetArray returns the value for key split by commas.
func (vc *Viper) GetArray(key string) []string {
	return strings.Split(vc.v.GetString(key), ",")
}

// Close stops the config file watcher.
func (vc *Viper) Close() error {
	if vc.watcher != nil {
		return vc.watcher.Close()
	}
	return nil
}
