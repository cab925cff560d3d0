package render

import "github.com/microcosm-cc/bluemonday"

// RenderOptions describe per-request knobs that renderers can honour without
// mutating the scanned sequence.
type RenderOptions struct {
	// SanitizeMarkup runs every markup piece through a bluemonday policy
	// before it is copied to the output. Code-piece replacements are the
	// evaluator's responsibility and are never sanitised here.
	SanitizeMarkup bool
	// Policy overrides the sanitisation policy. Ignored unless SanitizeMarkup
	// is set; when nil, bluemonday.UGCPolicy() is used.
	Policy *bluemonday.Policy
}

func (o RenderOptions) policy() *bluemonday.Policy {
	if o.Policy != nil {
		return o.Policy
	}
	return bluemonday.UGCPolicy()
}
