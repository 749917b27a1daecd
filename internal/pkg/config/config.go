package config

import (
	"io"
	"time"
)

// Config defines a set of methods for retrieving configuration values of
// various types. Implementations handle retrieval and type conversion,
// returning zero values for absent keys unless a default was registered.
type Config interface {
	io.Closer

	// GetBool retrieves the configuration value associated with the given key as a bool.
	GetBool(key string) bool

	// GetInt retrieves the configuration value associated with the given key as an int.
	GetInt(key string) int

	// GetString retrieves the configuration value associated with the given key as a string.
	GetString(key string) string

	// GetSecond retrieves the configuration value associated with the given key as seconds.
	GetSecond(key string) time.Duration

	// GetArray retrieves the configuration value associated with the given key as a
	// slice of strings. Configuration value is stored with format <element1>,<element2>,...
	GetArray(key string) []string
}
