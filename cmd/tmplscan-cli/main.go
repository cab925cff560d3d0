package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-tmplscan/pkg/model"
	"github.com/goliatone/go-tmplscan/pkg/render"
	"github.com/goliatone/go-tmplscan/pkg/renderers/tui"
	"github.com/goliatone/go-tmplscan/pkg/scanner"
)

func main() {
	input := flag.String("input", "", "template path, or - for stdin")
	format := flag.String("format", "json", "piece output format: json, yaml or text")
	doRender := flag.Bool("render", false, "render interactively instead of printing pieces")
	rendererName := flag.String("renderer", "interleave", "renderer to use with -render")
	sanitize := flag.Bool("sanitize", false, "sanitize markup pieces while rendering")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	document, err := readDocument(*input, flag.Args())
	if err != nil {
		log.Fatalf("Failed to read template: %v", err)
	}

	ctx := context.Background()

	sequence, err := scanner.Scan(document)
	if err != nil {
		log.Fatalf("Failed to scan template: %v", err)
	}

	var payload []byte
	if *doRender {
		driver := tui.NewSurveyDriver()
		registry, err := newRegistry(tui.NewEvaluator(driver))
		if err != nil {
			log.Fatalf("Failed to wire renderers: %v", err)
		}
		payload, err = renderSequence(ctx, sequence, registry, *rendererName, *sanitize, driver)
		if err != nil {
			log.Fatalf("Failed to render template: %v", err)
		}
	} else {
		payload, err = formatSequence(sequence, *format)
		if err != nil {
			log.Fatalf("Failed to format pieces: %v", err)
		}
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
		return
	}
	fmt.Println(string(payload))
}

// readDocument enforces the single-document contract: exactly one template,
// named by -input or one positional argument, never both and never several.
func readDocument(input string, args []string) (string, error) {
	if input != "" && len(args) > 0 {
		return "", fmt.Errorf("both -input and positional arguments given: %w", scanner.ErrInvalidInput)
	}
	if len(args) > 1 {
		return "", fmt.Errorf("%d templates given: %w", len(args), scanner.ErrInvalidInput)
	}
	if input == "" && len(args) == 1 {
		input = args[0]
	}
	if input == "" {
		return "", fmt.Errorf("no template given: %w", scanner.ErrInvalidInput)
	}

	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", input, err)
	}
	return string(data), nil
}

// newRegistry wires the built-in renderers around the supplied evaluator.
func newRegistry(evaluator render.Evaluator) (*render.Registry, error) {
	registry := render.NewRegistry()
	interleave, err := render.NewInterleave(evaluator)
	if err != nil {
		return nil, err
	}
	if err := registry.Register(interleave); err != nil {
		return nil, err
	}
	return registry, nil
}

// renderSequence announces the workload, resolves the named renderer from the
// registry, and renders the scanned sequence.
func renderSequence(ctx context.Context, sequence model.Sequence, registry *render.Registry, name string, sanitize bool, driver tui.PromptDriver) ([]byte, error) {
	msg := fmt.Sprintf("Rendering %d code piece(s) interactively", len(sequence.Code()))
	if err := driver.Info(ctx, msg); err != nil {
		return nil, err
	}

	renderer, err := registry.Get(name)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, sequence, render.RenderOptions{SanitizeMarkup: sanitize})
}

func formatSequence(sequence model.Sequence, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(sequence, "", "  ")
	case "yaml":
		return yaml.Marshal(sequence)
	case "text":
		var out []byte
		for i, piece := range sequence {
			out = append(out, fmt.Sprintf("%3d %-6s %4d %q\n", i, piece.Kind, piece.Offset, piece.Text)...)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want json, yaml or text)", format)
	}
}
