package rtfparser

import (
	"strings"

	"github.com/carlblock/rtf-parser/interpreter"
)

// Warning is a non-fatal issue found while interpreting a document.
type Warning = interpreter.Warning

// Warning kinds, re-exported for callers that filter warnings.
const (
	WarningUnsupported = interpreter.WarningUnsupported
	WarningCharset     = interpreter.WarningCharset
	WarningSource      = interpreter.WarningSource
)

// FormatWarnings joins warnings into a single human-readable line.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// FilterWarnings returns the warnings of the given kind, in order.
func FilterWarnings(warnings []Warning, kind interpreter.WarningKind) []Warning {
	var out []Warning
	for _, w := range warnings {
		if w.Kind == kind {
			out = append(out, w)
		}
	}
	return out
}
