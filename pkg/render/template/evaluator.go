package template

import (
	"io"

	"github.com/goliatone/go-tmplscan/pkg/render"
)

// TemplateRenderer mirrors the github.com/goliatone/go-template engine
// contract, providing the seam evaluator adapters rely on.
type TemplateRenderer interface {
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}

// Evaluator is a render.Evaluator that additionally exposes the underlying
// template engine surface, so callers can seed globals or filters after
// construction.
type Evaluator interface {
	render.Evaluator
	TemplateRenderer
}
