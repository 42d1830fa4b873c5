package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	rtfparser "github.com/carlblock/rtf-parser"
	"github.com/carlblock/rtf-parser/internal/config"
	"github.com/carlblock/rtf-parser/internal/logging"
	"github.com/carlblock/rtf-parser/model"
)

// stdinName is the file argument that reads standard input.
const stdinName = "-"

// fileReport is the result for one input file, in output order.
type fileReport struct {
	File     string              `json:"file" yaml:"file"`
	Error    string              `json:"error,omitempty" yaml:"error,omitempty"`
	Warnings []rtfparser.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Document *model.Document     `json:"document,omitempty" yaml:"document,omitempty"`

	err error
}

// addDumpFlags registers the flags that override configuration values.
func addDumpFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", config.DefaultOutput,
		"Output format: yaml, json or text")
	cmd.Flags().IntP("concurrency", "j", config.DefaultConcurrency,
		"Maximum number of files interpreted at once")
	cmd.Flags().String("charset", "",
		"Encoding for hex escapes until a stream declares one (default: ASCII)")
	cmd.Flags().Bool("strict", false,
		"Exit with an error when any file produces warnings")
	cmd.Flags().String("log-format", config.DefaultLogFormat,
		"Diagnostic log format on stderr: text or json")
}

// loadConfig merges the configuration file with the flags that were set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		if cfg.Output, err = flags.GetString("output"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("concurrency") {
		if cfg.Concurrency, err = flags.GetInt("concurrency"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("charset") {
		if cfg.DefaultCharset, err = flags.GetString("charset"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("strict") {
		if cfg.Strict, err = flags.GetBool("strict"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("verbose") {
		if cfg.Verbose, err = flags.GetBool("verbose"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("log-format") {
		if cfg.LogFormat, err = flags.GetString("log-format"); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runDump executes the root command.
func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logFormat, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}
	logger := logging.NewCLI(cmd.ErrOrStderr(), cfg.Verbose, logFormat)

	reports, err := dumpFiles(cmd.Context(), cmd.InOrStdin(), args, cfg, logger)
	if err != nil {
		return err
	}

	if err := writeReports(cmd.OutOrStdout(), cfg.Output, reports); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return summarize(reports, cfg.Strict, logger)
}

// dumpFiles interprets every file concurrently, each with its own
// interpreter. A failing file is recorded in its report and does not stop
// the others; only cancellation does.
func dumpFiles(ctx context.Context, stdin io.Reader, files []string, cfg *config.Config, logger *slog.Logger) ([]*fileReport, error) {
	logger.Info("starting interpretation",
		"files", len(files),
		"concurrency", cfg.Concurrency,
	)
	startTime := time.Now()

	// Pre-allocate results slice to maintain order
	reports := make([]*fileReport, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)

	for i, file := range files {
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			fileLogger := logger.With("file", file)

			var ext *rtfparser.Extractor
			if file == stdinName {
				ext = rtfparser.FromReader(stdin)
			} else {
				ext = rtfparser.FromFile(file)
			}

			doc, warnings, err := ext.
				Logger(fileLogger).
				DefaultCharset(cfg.DefaultCharset).
				Context(ctx).
				Document()

			report := &fileReport{File: file, Document: doc, Warnings: warnings, err: err}
			if err != nil {
				report.Error = err.Error()
				report.Document = nil
				fileLogger.Warn("interpretation failed", "error", err)
			} else {
				fileLogger.Debug("interpreted",
					"paragraphs", doc.ParagraphCount(),
					"warnings", len(warnings),
				)
			}
			reports[i] = report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("interpretation complete",
		"files", len(files),
		"elapsed", time.Since(startTime),
	)
	return reports, nil
}

// writeReports prints the reports in the configured format.
func writeReports(w io.Writer, output string, reports []*fileReport) error {
	switch output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)

	case config.OutputText:
		for i, r := range reports {
			if len(reports) > 1 {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "==> %s <==\n", r.File)
			}
			if r.Document == nil {
				fmt.Fprintf(w, "error: %s\n", r.Error)
				continue
			}
			fmt.Fprint(w, r.Document.ExtractText())
		}
		return nil

	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, r := range reports {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return enc.Close()
	}
}

// summarize reports warnings on the logger and turns failures, and in
// strict mode warnings, into the command error.
func summarize(reports []*fileReport, strict bool, logger *slog.Logger) error {
	var failed []string
	warnings := 0
	for _, r := range reports {
		if r.err != nil {
			failed = append(failed, r.File)
		}
		warnings += len(r.Warnings)
		for _, w := range r.Warnings {
			logger.Debug("warning", "file", r.File, "kind", w.Kind.String(), "message", w.Message)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", ErrFilesFailed, strings.Join(failed, ", "))
	}
	if strict && warnings > 0 {
		return fmt.Errorf("%w: %d warnings", ErrWarnings, warnings)
	}
	return nil
}
