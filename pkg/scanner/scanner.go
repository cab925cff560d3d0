// Package scanner is the public face of the template-splitting automaton. It
// turns a document mixing literal markup with {{ ... }} embedded-code regions
// into an alternating piece sequence, while staying blind to }} occurrences
// inside single/double-quoted strings, backtick-quoted identifiers, #-to-EOL
// comments, and %...% operator tokens of the embedded language.
//
// The scanner is byte-oriented (see internal/scan for why that is safe for
// UTF-8 input), allocates only the piece list it returns, and keeps no state
// across calls, so concurrent scans of independent documents need no
// coordination.
package scanner

import (
	"github.com/goliatone/go-tmplscan/internal/scan"
	"github.com/goliatone/go-tmplscan/pkg/model"
)

// ErrUnterminatedCode is returned when the document ends inside a code
// region, a quoted string/identifier, a comment, or immediately after a lone
// unmatched }. A lone trailing { is not an error; it scans as literal text.
var ErrUnterminatedCode = scan.ErrUnterminatedCode

// ErrInvalidInput is returned by entry points that accept untyped input (the
// CLI, fixture loaders) when the supplied value is not exactly one document.
var ErrInvalidInput = scan.ErrInvalidInput

// Scan splits document into its ordered piece sequence. The result always has
// odd length, starts and ends with a markup piece (either may be empty), and
// round-trips: reinserting {{ and }} at each boundary reproduces document
// exactly. On error no pieces are returned.
func Scan(document string) (model.Sequence, error) {
	return scan.Document(document)
}

// ScanBytes is Scan for callers holding the document as a byte slice.
func ScanBytes(document []byte) (model.Sequence, error) {
	return scan.Document(string(document))
}
