package rtfparser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/carlblock/rtf-parser/charset"
	"github.com/carlblock/rtf-parser/command"
	"github.com/carlblock/rtf-parser/internal/filters"
	"github.com/carlblock/rtf-parser/interpreter"
	"github.com/carlblock/rtf-parser/model"
)

// Extractor provides a fluent interface for interpreting a command stream.
// Each configuration method returns a new Extractor instance, making it
// safe to share a configured Extractor and allowing method chaining.
type Extractor struct {
	// Source (exactly one is set)
	filename string
	source   io.Reader
	cmds     []command.Command
	inMemory bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		source:   e.source,
		cmds:     e.cmds,
		inMemory: e.inMemory,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Logger sets the logger that receives interpreter diagnostics.
//
// Example:
//
//	doc, _, err := rtfparser.FromFile("letter.json").Logger(slog.Default()).Document()
func (e *Extractor) Logger(logger *slog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = logger
	return newExt
}

// DefaultCharset sets the encoding used for hex escapes until the stream
// declares one. Unknown names are reported by the terminal operation.
//
// Example:
//
//	text, _, err := rtfparser.FromFile("legacy.jsonl").DefaultCharset(charset.MacRoman).Text()
func (e *Extractor) DefaultCharset(name string) *Extractor {
	newExt := e.clone()
	if _, ok := charset.Lookup(name); !ok && newExt.err == nil {
		newExt.err = fmt.Errorf("default charset: %w: %q", charset.ErrUnsupportedEncoding, name)
	}
	newExt.options.defaultCharset = name
	return newExt
}

// Context sets a context that cancels interpretation between commands.
func (e *Extractor) Context(ctx context.Context) *Extractor {
	newExt := e.clone()
	if ctx != nil {
		newExt.options.ctx = ctx
	}
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Document interprets the command stream and returns the document, the
// warnings collected along the way, and an error if interpretation failed.
// Warnings indicate non-fatal issues (unknown control words, undecodable
// bytes, tokenizer errors) where a document was still produced.
//
// Example:
//
//	doc, warnings, err := rtfparser.FromFile("letter.jsonl").Document()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", rtfparser.FormatWarnings(warnings))
//	}
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	in := interpreter.New(e.options.interpreterOptions()...)

	if e.inMemory {
		doc, err := in.Run(e.options.ctx, e.cmds)
		if err != nil {
			return nil, in.Warnings(), err
		}
		return doc, in.Warnings(), nil
	}

	r, err := e.openStream()
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	if err := e.stream(in, command.NewParser(r)); err != nil {
		return nil, in.Warnings(), err
	}
	doc, err := in.Finish()
	if err != nil {
		return nil, in.Warnings(), err
	}
	return doc, in.Warnings(), nil
}

// Text interprets the command stream and returns the plain text, one line
// per paragraph.
//
// Example:
//
//	text, _, err := rtfparser.FromCommands(cmds).Text()
func (e *Extractor) Text() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", warnings, err
	}
	return doc.ExtractText(), warnings, nil
}

// Commands returns the commands the Extractor would interpret. Stored
// streams are decoded fully; the file is not interpreted.
func (e *Extractor) Commands() ([]command.Command, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.inMemory {
		return append([]command.Command(nil), e.cmds...), nil
	}

	r, err := e.openStream()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return command.NewParser(r).Parse()
}

// openStream opens the stored stream and undoes any compression. Closing
// the result also closes a file opened here.
func (e *Extractor) openStream() (io.ReadCloser, error) {
	var (
		src   io.Reader = e.source
		owned io.Closer
	)
	if src == nil {
		if e.filename == "" {
			return nil, fmt.Errorf("no filename specified")
		}
		f, err := os.Open(e.filename)
		if err != nil {
			return nil, fmt.Errorf("failed to open command stream: %w", err)
		}
		src, owned = f, f
	}

	rc, filter, err := filters.Decompress(src)
	if err != nil {
		if owned != nil {
			owned.Close()
		}
		return nil, fmt.Errorf("failed to decompress command stream: %w", err)
	}
	if filter != filters.None && e.options.logger != nil {
		e.options.logger.Debug("decompressing command stream", "filter", filter.String(), "file", e.filename)
	}
	return &closingReader{ReadCloser: rc, owned: owned}, nil
}

// closingReader closes the decoder and then the file it reads from
type closingReader struct {
	io.ReadCloser
	owned io.Closer
}

func (s *closingReader) Close() error {
	err := s.ReadCloser.Close()
	if s.owned != nil {
		if cerr := s.owned.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// stream feeds commands from p to in without holding the whole stream
func (e *Extractor) stream(in *interpreter.Interpreter, p *command.Parser) error {
	for {
		if err := e.options.ctx.Err(); err != nil {
			return err
		}

		cmd, err := p.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read command stream: %w", err)
		}

		if err := in.Process(cmd); err != nil {
			return err
		}
	}
}
