package render

import (
	"context"

	"github.com/goliatone/go-tmplscan/pkg/model"
)

// Evaluator produces the replacement text for one code piece. The scanner
// never parses or executes the embedded language itself; evaluation is always
// injected through this seam. Implementations receive the full piece so they
// can report the byte offset of anything they reject.
type Evaluator interface {
	Evaluate(ctx context.Context, piece model.Piece) (string, error)
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(ctx context.Context, piece model.Piece) (string, error)

// Evaluate calls fn.
func (fn EvaluatorFunc) Evaluate(ctx context.Context, piece model.Piece) (string, error) {
	return fn(ctx, piece)
}

// Renderer converts a scanned piece sequence into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, sequence model.Sequence, options RenderOptions) ([]byte, error)
}
