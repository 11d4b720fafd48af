package config

import "errors"

// Error kinds returned by Load and Validate. A bad file or env provider wraps
// ErrLoadConfig; an out-of-range caltrack setting wraps ErrInvalidConfig.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
