package gotemplate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-tmplscan/pkg/model"
	"github.com/goliatone/go-tmplscan/pkg/scanner"
)

func TestEngine_EvaluateUsesGlobals(t *testing.T) {
	engine, err := New(WithGlobalData(map[string]any{"name": "world"}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.Evaluate(context.Background(), model.Piece{
		Kind: model.KindCode, Text: " name ", Offset: 7,
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if got != "world" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_EvaluateScannedPieces(t *testing.T) {
	engine, err := New(WithGlobalData(map[string]any{"user": map[string]any{"name": "ada"}}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	sequence, err := scanner.Scan("<p>{{ user.name }}</p>")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	code := sequence.Code()
	if len(code) != 1 {
		t.Fatalf("expected one code piece, got %d", len(code))
	}
	got, err := engine.Evaluate(context.Background(), code[0])
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if got != "ada" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_EvaluateRejectsMarkup(t *testing.T) {
	engine, err := New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if _, err := engine.Evaluate(context.Background(), model.Piece{Kind: model.KindMarkup, Text: "x"}); err == nil {
		t.Fatal("expected markup piece to be rejected")
	}
}

func TestEngine_EvaluateHonoursContext(t *testing.T) {
	engine, err := New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := engine.Evaluate(ctx, model.Piece{Kind: model.KindCode, Text: "1"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestEngine_RenderStringWithData(t *testing.T) {
	engine, err := New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderString("{{ greeting }}!", map[string]any{"greeting": "hi"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "hi!" {
		t.Fatalf("unexpected output %q", got)
	}

	if _, err := engine.RenderString("{{ x }}", 42); err == nil {
		t.Fatal("expected unsupported context type to be rejected")
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine, err := New(WithGlobalData(map[string]any{"word": "loud"}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		s, _ := input.(string)
		return strings.ToUpper(s), nil
	}); err != nil {
		t.Fatalf("register filter: %v", err)
	}

	got, err := engine.RenderString("{{ word|shout }}", nil)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "LOUD" {
		t.Fatalf("unexpected output %q", got)
	}

	if err := engine.RegisterFilter("upper", func(input any, _ any) (any, error) {
		return input, nil
	}); err == nil {
		t.Fatal("expected builtin filter name to be rejected")
	}
	if err := engine.RegisterFilter("", nil); err == nil {
		t.Fatal("expected empty filter registration to be rejected")
	}
}
