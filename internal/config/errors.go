package config

import "errors"

// Validation errors returned by [Config.Validate].
var (
	ErrPasswordRequired   = errors.New("password required (set -password or SFDL_PASSWORD)")
	ErrInvalidParallelism = errors.New("parallelism must be at least 1")
	ErrUnknownFormat      = errors.New("unknown format")
	ErrInvalidLogLevel    = errors.New("invalid log level")
)
