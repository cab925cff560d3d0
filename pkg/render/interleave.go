package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-tmplscan/pkg/model"
)

// Interleave is the reference renderer: it copies markup pieces verbatim (or
// sanitised, per options) and replaces each code piece with its evaluator's
// output, preserving document order.
type Interleave struct {
	evaluator Evaluator
}

// NewInterleave constructs the renderer around the supplied evaluator.
func NewInterleave(evaluator Evaluator) (*Interleave, error) {
	if evaluator == nil {
		return nil, fmt.Errorf("render: evaluator is required")
	}
	return &Interleave{evaluator: evaluator}, nil
}

// Name identifies the renderer inside a Registry.
func (r *Interleave) Name() string { return "interleave" }

// ContentType reports the produced media type.
func (r *Interleave) ContentType() string { return "text/html; charset=utf-8" }

// Render walks the sequence once. Evaluator failures abort the render and
// carry the offending piece's byte offset; nothing partial is returned.
func (r *Interleave) Render(ctx context.Context, sequence model.Sequence, options RenderOptions) ([]byte, error) {
	if err := sequence.Validate(); err != nil {
		return nil, fmt.Errorf("render: invalid sequence: %w", err)
	}

	var policy *bluemonday.Policy
	if options.SanitizeMarkup {
		policy = options.policy()
	}

	var buf bytes.Buffer
	for _, piece := range sequence {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		switch piece.Kind {
		case model.KindMarkup:
			text := piece.Text
			if options.SanitizeMarkup {
				text = policy.Sanitize(text)
			}
			buf.WriteString(text)
		case model.KindCode:
			replacement, err := r.evaluator.Evaluate(ctx, piece)
			if err != nil {
				return nil, fmt.Errorf("render: evaluate code piece at byte %d: %w", piece.Offset, err)
			}
			buf.WriteString(replacement)
		}
	}
	return buf.Bytes(), nil
}
