// Package rtfparser provides a fluent API for interpreting RTF command
// streams into structured documents.
//
// Basic usage:
//
//	doc, warnings, err := rtfparser.FromFile("letter.jsonl").Document()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", rtfparser.FormatWarnings(warnings))
//	}
//
// With options:
//
//	text, _, err := rtfparser.FromCommands(cmds).
//	    Logger(logger).
//	    DefaultCharset("CP1252").
//	    Text()
//
// For incremental use, the lower-level interpreter package is also available.
package rtfparser

import (
	"io"

	"github.com/carlblock/rtf-parser/command"
)

// FromFile returns an Extractor that reads a stored command stream (JSON
// array or JSON lines) from filename. The file is opened by the terminal
// operation and closed before it returns.
//
// Example:
//
//	doc, warnings, err := rtfparser.FromFile("letter.json").Document()
func FromFile(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader returns an Extractor that reads a stored command stream from r.
// The caller is responsible for closing r.
func FromReader(r io.Reader) *Extractor {
	return &Extractor{
		source:  r,
		options: defaultOptions(),
	}
}

// FromCommands returns an Extractor over commands that are already in memory,
// typically the output of a tokenizer.
//
// Example:
//
//	doc, _, err := rtfparser.FromCommands([]command.Command{
//	    command.GroupStart(),
//	    command.Word("rtf", 1),
//	    command.Text("Hello"),
//	    command.GroupEnd(),
//	}).Document()
func FromCommands(cmds []command.Command) *Extractor {
	return &Extractor{
		cmds:     append([]command.Command(nil), cmds...),
		inMemory: true,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to Text() or Document() and panics
// if the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	text := rtfparser.MustText(rtfparser.FromFile("letter.jsonl").Text())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
