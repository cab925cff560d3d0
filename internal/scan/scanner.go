// Package scan implements the byte-level automaton that splits a template
// document into alternating markup and code pieces.
//
// Scanning is byte-oriented on purpose: every delimiter and quote character
// the automaton dispatches on ({, }, ', ", `, %, #, \, newline) is single-byte
// ASCII, and none of them can appear as a UTF-8 continuation byte, so interior
// multi-byte sequences flow through the state machine untouched and piece
// boundaries always fall on character boundaries.
package scan

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-tmplscan/internal/model"
)

// ErrUnterminatedCode reports a document that ended inside a {{ ... }} region,
// a quoted string or identifier, a comment, or just after a lone } that was
// never completed to }}.
var ErrUnterminatedCode = errors.New("scan: template did not return to markup (missing closing \"}}\")")

// ErrInvalidInput reports a caller that supplied something other than exactly
// one document to scan.
var ErrInvalidInput = errors.New("scan: input must be a single template document")

// state is the automaton's lexical mode. Initial state is stateMarkup, which
// is also the only mode (besides stateMarkupOpenBrace) the document may end in.
type state int

const (
	stateMarkup state = iota
	stateMarkupOpenBrace
	stateCode
	stateCodeCloseBrace
	stateString1
	stateString1Escape
	stateString2
	stateString2Escape
	stateBacktick
	stateBacktickEscape
	statePercentOp
	stateComment
	stateCommentCloseBrace
)

// context names the lexical region a state sits in, for error messages.
func (s state) context() string {
	switch s {
	case stateMarkup, stateMarkupOpenBrace:
		return "markup"
	case stateCode, stateCodeCloseBrace:
		return "a code region"
	case stateString1, stateString1Escape:
		return "a single-quoted string"
	case stateString2, stateString2Escape:
		return "a double-quoted string"
	case stateBacktick, stateBacktickEscape:
		return "a backtick-quoted identifier"
	case statePercentOp:
		return "a %...% operator"
	case stateComment, stateCommentCloseBrace:
		return "a comment"
	default:
		return "an unknown state"
	}
}

// step is the pure transition function. It returns the successor state and
// whether the consumed byte completed a two-byte delimiter, i.e. whether the
// current piece ends just before the delimiter. step never inspects anything
// but its two arguments, which keeps the automaton trivially reentrant.
func step(s state, c byte) (state, bool) {
	switch s {
	case stateMarkup:
		if c == '{' {
			return stateMarkupOpenBrace, false
		}
		return stateMarkup, false

	case stateMarkupOpenBrace:
		if c == '{' {
			return stateCode, true
		}
		// The lone { was ordinary markup, not a delimiter.
		return stateMarkup, false

	case stateCode:
		switch c {
		case '}':
			return stateCodeCloseBrace, false
		case '\'':
			return stateString1, false
		case '"':
			return stateString2, false
		case '`':
			return stateBacktick, false
		case '%':
			return statePercentOp, false
		case '#':
			return stateComment, false
		}
		return stateCode, false

	case stateCodeCloseBrace:
		if c == '}' {
			return stateMarkup, true
		}
		// The lone } was ordinary code text. The byte that follows it is
		// consumed here without re-dispatch, so a quote immediately after a
		// single } does not open a string.
		return stateCode, false

	case stateString1:
		switch c {
		case '\\':
			return stateString1Escape, false
		case '\'':
			return stateCode, false
		}
		return stateString1, false

	case stateString1Escape:
		return stateString1, false

	case stateString2:
		switch c {
		case '\\':
			return stateString2Escape, false
		case '"':
			return stateCode, false
		}
		return stateString2, false

	case stateString2Escape:
		return stateString2, false

	case stateBacktick:
		switch c {
		case '\\':
			return stateBacktickEscape, false
		case '`':
			return stateCode, false
		}
		return stateBacktick, false

	case stateBacktickEscape:
		return stateBacktick, false

	case statePercentOp:
		// No escape handling inside %...%; a backslash is an ordinary byte.
		if c == '%' {
			return stateCode, false
		}
		return statePercentOp, false

	case stateComment:
		switch c {
		case '}':
			return stateCommentCloseBrace, false
		case '\n':
			return stateCode, false
		}
		return stateComment, false

	case stateCommentCloseBrace:
		if c == '}' {
			// A comment that reaches }} still closes the code block.
			return stateMarkup, true
		}
		return stateComment, false
	}

	return s, false
}

// Document scans a full template and returns its ordered piece sequence.
//
// The scan is a single left-to-right pass: each byte feeds step once, a piece
// is emitted whenever a two-byte delimiter completes, and one final markup
// piece (possibly empty) covers everything after the last boundary. On any
// failure no pieces are returned.
func Document(document string) (model.Sequence, error) {
	pieces := make(model.Sequence, 0, 8)
	pieceStart := 0
	current := stateMarkup

	for i := 0; i < len(document); i++ {
		next, boundary := step(current, document[i])
		if boundary {
			kind := model.KindMarkup
			if current != stateMarkupOpenBrace {
				kind = model.KindCode
			}
			// i is the second delimiter byte; the piece text stops before
			// the first one.
			pieces = append(pieces, model.Piece{
				Kind:   kind,
				Text:   document[pieceStart : i-1],
				Offset: pieceStart,
			})
			pieceStart = i + 1
		}
		current = next
	}

	if current != stateMarkup && current != stateMarkupOpenBrace {
		return nil, fmt.Errorf("scan: document ends inside %s: %w", current.context(), ErrUnterminatedCode)
	}

	// A trailing lone { (stateMarkupOpenBrace) is tolerated as literal text;
	// the final piece below picks it up.
	pieces = append(pieces, model.Piece{
		Kind:   model.KindMarkup,
		Text:   document[pieceStart:],
		Offset: pieceStart,
	})
	return pieces, nil
}
