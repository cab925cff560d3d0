// Package tmplscan splits template documents that mix literal markup with
// {{ ... }} embedded-code regions into an ordered, alternating piece
// sequence, and re-interleaves evaluated code pieces with the markup.
//
// The scanner is the heart of the module: a single-pass byte automaton that
// recognises the two-byte delimiters while staying blind to }} occurrences
// inside the embedded language's strings, backtick identifiers, comments, and
// %...% operator tokens. Evaluation of code pieces is always injected by the
// caller; the module never interprets the embedded language itself.
//
// Example:
//
//	pieces, err := tmplscan.Scan("<p>{{ user.name }}</p>")
//	// pieces: markup "<p>", code " user.name ", markup "</p>"
//
//	out, err := tmplscan.Render(ctx, document, evaluator, tmplscan.RenderOptions{})
package tmplscan

import (
	"context"

	"github.com/goliatone/go-tmplscan/pkg/model"
	"github.com/goliatone/go-tmplscan/pkg/render"
	"github.com/goliatone/go-tmplscan/pkg/scanner"
)

// Kind re-exports the piece classification via the root package.
type Kind = model.Kind

const (
	KindMarkup = model.KindMarkup
	KindCode   = model.KindCode
)

// Piece is one scanned segment of a document.
type Piece = model.Piece

// Sequence is the ordered, alternating piece list a scan produces.
type Sequence = model.Sequence

// Evaluator produces replacement text for code pieces during rendering.
type Evaluator = render.Evaluator

// EvaluatorFunc adapts a function to the Evaluator interface.
type EvaluatorFunc = render.EvaluatorFunc

// RenderOptions carries per-render knobs such as markup sanitisation.
type RenderOptions = render.RenderOptions

// ErrUnterminatedCode re-exports the scanner's structural error.
var ErrUnterminatedCode = scanner.ErrUnterminatedCode

// ErrInvalidInput re-exports the scanner's caller error for untyped entry
// points.
var ErrInvalidInput = scanner.ErrInvalidInput

// Scan splits document into its piece sequence. See pkg/scanner for the full
// contract.
func Scan(document string) (Sequence, error) {
	return scanner.Scan(document)
}

// ScanBytes is Scan for callers holding a byte slice.
func ScanBytes(document []byte) (Sequence, error) {
	return scanner.ScanBytes(document)
}

// Render scans document and interleaves evaluator output with the literal
// markup. It is the simplest entry point for callers that just want the
// rendered text.
func Render(ctx context.Context, document string, evaluator Evaluator, options RenderOptions) ([]byte, error) {
	sequence, err := Scan(document)
	if err != nil {
		return nil, err
	}
	renderer, err := render.NewInterleave(evaluator)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, sequence, options)
}
