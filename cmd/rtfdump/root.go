package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// ErrWarnings is returned in strict mode when any file produced warnings.
var ErrWarnings = errors.New("interpretation produced warnings")

// ErrFilesFailed is returned when at least one file could not be interpreted.
var ErrFilesFailed = errors.New("some files could not be interpreted")

// NewRootCmd creates the root command for rtfdump.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rtfdump [files...]",
		Short: "Interpret RTF command streams and print the documents",
		Long: `rtfdump interprets tokenized RTF command streams and prints the
resulting documents: paragraphs of styled spans, font and color tables,
and page setup.

Input files hold one command per JSON object, either as a JSON array or as
JSON lines, and may be gzip- or zlib-compressed. Use "-" to read standard
input. Files are interpreted concurrently.

Settings are read from .rtfdump.yaml in the current or home directory, or
from --config. Flags override the file.

Examples:
  # Print a document as YAML
  rtfdump letter.jsonl

  # Plain text of several files, failing on any warning
  rtfdump --output text --strict *.json`,
		Version:       getVersion(),
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDump,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (default: .rtfdump.yaml)")

	addDumpFlags(cmd)

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
