package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrInvalidOutput is returned when the output format is not yaml, json or text.
	ErrInvalidOutput = errors.New("invalid output format: must be yaml, json or text")

	// ErrInvalidConcurrency is returned when the concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidCharset is returned when the default charset has no decoder.
	ErrInvalidCharset = errors.New("invalid default charset")

	// ErrInvalidLogFormat is returned when the log format is not text or json.
	ErrInvalidLogFormat = errors.New("invalid log format: must be text or json")
)
