package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-tmplscan/pkg/model"
	"github.com/goliatone/go-tmplscan/pkg/render"
)

// Evaluator asks the driver for each code piece's replacement, defaulting to
// the raw code text so the operator can accept a piece unchanged.
type Evaluator struct {
	driver PromptDriver
}

// Ensure Evaluator satisfies the render seam.
var _ render.Evaluator = (*Evaluator)(nil)

// NewEvaluator wires the evaluator to a PromptDriver; a nil driver falls back
// to the survey implementation.
func NewEvaluator(driver PromptDriver) *Evaluator {
	if driver == nil {
		driver = NewSurveyDriver()
	}
	return &Evaluator{driver: driver}
}

// Evaluate prompts for one code piece. Multi-line code opens a text area,
// single-line code a plain input. Context cancellation is honoured between
// prompts; an interrupt surfaces as ErrAborted.
func (e *Evaluator) Evaluate(ctx context.Context, piece model.Piece) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	message := fmt.Sprintf("Replacement for code at byte %d:", piece.Offset)
	help := "The template's code text is offered as the default."

	if strings.Contains(piece.Text, "\n") {
		return e.driver.TextArea(ctx, TextAreaConfig{
			Message: message,
			Default: piece.Text,
			Help:    help,
		})
	}
	return e.driver.Input(ctx, InputConfig{
		Message: message,
		Default: piece.Text,
		Help:    help,
	})
}
