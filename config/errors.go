package config

import "errors"

// ErrInvalidConfig indicates a configuration value that cannot be used.
// It is wrapped with the offending key.
var ErrInvalidConfig = errors.New("config: invalid configuration")
