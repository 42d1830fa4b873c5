package config

import (
	"runtime"

	"github.com/carlblock/rtf-parser/charset"
)

// Output formats for interpreted documents.
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
	OutputText = "text"
)

// Default configuration values.
const (
	// DefaultOutput is the document output format.
	DefaultOutput = OutputYAML

	// DefaultLogFormat is the format of diagnostic logs on stderr.
	DefaultLogFormat = "text"
)

// DefaultConcurrency is the number of files interpreted at once. Each file
// is independent, so one per CPU keeps every core busy.
var DefaultConcurrency = runtime.NumCPU()

// Config holds all configuration options for rtfdump.
type Config struct {
	// Output is the document format written to stdout: yaml, json or text.
	Output string `yaml:"output"`

	// Concurrency is the maximum number of files interpreted at once.
	Concurrency int `yaml:"concurrency"`

	// DefaultCharset is the encoding for hex escapes in streams that
	// never declare one.
	DefaultCharset string `yaml:"default_charset"`

	// Strict turns interpreter warnings into a failing exit status.
	Strict bool `yaml:"strict"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`
}

// NewConfig returns a Config populated with default values.
func NewConfig() *Config {
	return &Config{
		Output:         DefaultOutput,
		Concurrency:    DefaultConcurrency,
		DefaultCharset: charset.ASCII,
		LogFormat:      DefaultLogFormat,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputYAML, OutputJSON, OutputText:
	default:
		return ErrInvalidOutput
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if _, ok := charset.Lookup(c.DefaultCharset); !ok {
		return ErrInvalidCharset
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return ErrInvalidLogFormat
	}

	return nil
}
