package scanner

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-tmplscan/pkg/model"
	"github.com/goliatone/go-tmplscan/pkg/testsupport"
)

func TestScan_DelimiterBlindness(t *testing.T) {
	got, err := Scan("a{{1}}b{{2}}c")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if diff := testsupport.DiffPieces([]string{"a", "1", "b", "2", "c"}, got); diff != "" {
		t.Fatalf("pieces mismatch (-want +got):\n%s", diff)
	}

	got, err = Scan("x{{ `}}` }}y")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if diff := testsupport.DiffPieces([]string{"x", " `}}` ", "y"}, got); diff != "" {
		t.Fatalf("pieces mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_LiteralOnlyIsSinglePiece(t *testing.T) {
	document := "<html><body>no code</body></html>"
	got, err := Scan(document)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(got) != 1 || got[0].Kind != model.KindMarkup || got[0].Text != document {
		t.Fatalf("expected single markup piece, got %v", got)
	}
}

func TestScan_UnterminatedFailsAtomically(t *testing.T) {
	got, err := Scan("a{{b")
	if !errors.Is(err, ErrUnterminatedCode) {
		t.Fatalf("expected ErrUnterminatedCode, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil sequence on failure, got %v", got)
	}
}

func TestScanBytes_MatchesScan(t *testing.T) {
	document := "a{{ 'b}}' }}c"
	fromString, err := Scan(document)
	if err != nil {
		t.Fatalf("scan string: %v", err)
	}
	fromBytes, err := ScanBytes([]byte(document))
	if err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if diff := testsupport.DiffPieces(fromString.Texts(), fromBytes); diff != "" {
		t.Fatalf("variants disagree (-want +got):\n%s", diff)
	}
}

func TestScan_RoundTripLargeDocument(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 500; i++ {
		b.WriteString("<li>item</li>{{ render(item) # per-row }}\n")
	}
	document := b.String()

	got, err := Scan(document)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	testsupport.RequireValid(t, document, got)
	if len(got) != 2*500+1 {
		t.Fatalf("expected %d pieces, got %d", 2*500+1, len(got))
	}
}
