// Package model re-exports the piece types produced by the scanner so
// downstream packages depend on a stable public path.
package model

import internalmodel "github.com/goliatone/go-tmplscan/internal/model"

// Kind re-exports the internal Kind enumeration.
type Kind = internalmodel.Kind

const (
	KindMarkup = internalmodel.KindMarkup
	KindCode   = internalmodel.KindCode
)

type Piece = internalmodel.Piece
type Sequence = internalmodel.Sequence
