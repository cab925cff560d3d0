// Package testsupport loads the shared YAML scan corpus and provides diff
// helpers so scanner and renderer tests stay declarative.
package testsupport

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-tmplscan/pkg/model"
)

// Case is one corpus entry. Pieces holds the expected piece texts in document
// order (kinds are implied by alternation); Error names the expected failure,
// currently only "unterminated".
type Case struct {
	Name     string   `yaml:"name"`
	Document string   `yaml:"document"`
	Pieces   []string `yaml:"pieces"`
	Error    string   `yaml:"error"`
}

// Corpus is a named set of scan cases.
type Corpus struct {
	Cases []Case `yaml:"cases"`
}

// LoadCorpus reads a corpus fixture, failing the test on any problem.
func LoadCorpus(t *testing.T, path string) Corpus {
	t.Helper()

	corpus, err := LoadCorpusFromPath(path)
	if err != nil {
		t.Fatalf("load corpus: %v", err)
	}
	return corpus
}

// LoadCorpusFromPath returns a corpus without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadCorpusFromPath(path string) (Corpus, error) {
	if path == "" {
		return Corpus{}, errors.New("testsupport: corpus path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("testsupport: read corpus: %w", err)
	}
	var corpus Corpus
	if err := yaml.Unmarshal(data, &corpus); err != nil {
		return Corpus{}, fmt.Errorf("testsupport: unmarshal corpus: %w", err)
	}
	for i, c := range corpus.Cases {
		if c.Name == "" {
			return Corpus{}, fmt.Errorf("testsupport: corpus case %d has no name (file %s)", i, path)
		}
	}
	return corpus, nil
}

// DiffPieces returns a diff string if the scanned texts differ from want.
func DiffPieces(want []string, got model.Sequence) string {
	return cmp.Diff(want, got.Texts())
}

// RequireValid fails the test when a sequence breaks the alternation or
// round-trip invariants for the given document.
func RequireValid(t *testing.T, document string, got model.Sequence) {
	t.Helper()

	if err := got.Validate(); err != nil {
		t.Fatalf("sequence invariants: %v", err)
	}
	if rebuilt := got.Reassemble(); rebuilt != document {
		t.Fatalf("round trip mismatch:\n%s", cmp.Diff(document, rebuilt))
	}
}
