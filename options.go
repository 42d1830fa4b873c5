package rtfparser

import (
	"context"
	"log/slog"

	"github.com/carlblock/rtf-parser/interpreter"
)

// ExtractOptions holds configuration for interpretation.
type ExtractOptions struct {
	logger         *slog.Logger // nil means discard
	defaultCharset string       // empty means the interpreter default
	ctx            context.Context
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		ctx: context.Background(),
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		logger:         o.logger,
		defaultCharset: o.defaultCharset,
		ctx:            o.ctx,
	}
}

// interpreterOptions converts the options for interpreter.New.
func (o ExtractOptions) interpreterOptions() []interpreter.Option {
	opts := make([]interpreter.Option, 0, 2)
	if o.logger != nil {
		opts = append(opts, interpreter.WithLogger(o.logger))
	}
	if o.defaultCharset != "" {
		opts = append(opts, interpreter.WithDefaultCharset(o.defaultCharset))
	}
	return opts
}
