package model

import (
	"fmt"
	"strings"
)

// Kind classifies a scanned piece. Pieces strictly alternate Markup, Code,
// Markup, ... so the kind is recoverable from position alone; it is stored
// explicitly so downstream consumers never have to track indices.
type Kind int

const (
	// KindMarkup marks literal text copied verbatim to the output.
	KindMarkup Kind = iota
	// KindCode marks embedded code extracted from a {{ ... }} region.
	KindCode
)

// String returns the lowercase name used in JSON/YAML output.
func (k Kind) String() string {
	switch k {
	case KindMarkup:
		return "markup"
	case KindCode:
		return "code"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText encodes the kind as its lowercase name.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindMarkup, KindCode:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("model: unknown piece kind %d", int(k))
	}
}

// UnmarshalText decodes "markup" or "code" (case-insensitive).
func (k *Kind) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "markup":
		*k = KindMarkup
	case "code":
		*k = KindCode
	default:
		return fmt.Errorf("model: unknown piece kind %q", string(text))
	}
	return nil
}

// MarshalYAML mirrors MarshalText so YAML output stays readable.
func (k Kind) MarshalYAML() (any, error) {
	text, err := k.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML accepts the same names UnmarshalText does.
func (k *Kind) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	return k.UnmarshalText([]byte(raw))
}

// Piece is one contiguous, non-overlapping segment of the scanned document.
// Text excludes the {{ and }} delimiter bytes; Offset is the byte position of
// the first text byte in the original document (for an empty piece, the
// position the text would occupy).
type Piece struct {
	Kind   Kind   `json:"kind" yaml:"kind"`
	Text   string `json:"text" yaml:"text"`
	Offset int    `json:"offset" yaml:"offset"`
}

// Sequence is an ordered piece list produced by a single scan. A valid
// sequence has odd length, starts and ends with a KindMarkup piece, and
// alternates kinds throughout; Validate enforces exactly that.
type Sequence []Piece

// Validate checks the alternation invariants. Sequences returned by the
// scanner always pass; the check exists for sequences rebuilt from tooling
// output or fixtures.
func (s Sequence) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("model: sequence is empty")
	}
	if len(s)%2 == 0 {
		return fmt.Errorf("model: sequence has even length %d", len(s))
	}
	for i, piece := range s {
		want := KindMarkup
		if i%2 == 1 {
			want = KindCode
		}
		if piece.Kind != want {
			return fmt.Errorf("model: piece %d has kind %s, want %s", i, piece.Kind, want)
		}
	}
	return nil
}

// Reassemble rebuilds the original document by reinserting the two-byte
// delimiters consumed at every markup/code boundary.
func (s Sequence) Reassemble() string {
	var b strings.Builder
	for i, piece := range s {
		if i > 0 {
			if piece.Kind == KindCode {
				b.WriteString("{{")
			} else {
				b.WriteString("}}")
			}
		}
		b.WriteString(piece.Text)
	}
	return b.String()
}

// Code returns the code pieces in document order.
func (s Sequence) Code() []Piece {
	return s.filter(KindCode)
}

// Markup returns the markup pieces in document order.
func (s Sequence) Markup() []Piece {
	return s.filter(KindMarkup)
}

func (s Sequence) filter(kind Kind) []Piece {
	out := make([]Piece, 0, (len(s)+1)/2)
	for _, piece := range s {
		if piece.Kind == kind {
			out = append(out, piece)
		}
	}
	return out
}

// Texts returns just the piece texts, preserving order. Handy for compact
// fixtures and diffs where offsets and kinds are implied.
func (s Sequence) Texts() []string {
	out := make([]string, 0, len(s))
	for _, piece := range s {
		out = append(out, piece.Text)
	}
	return out
}
