package model

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func validSequence() Sequence {
	return Sequence{
		{Kind: KindMarkup, Text: "a", Offset: 0},
		{Kind: KindCode, Text: "1", Offset: 3},
		{Kind: KindMarkup, Text: "b", Offset: 6},
	}
}

func TestSequence_Validate(t *testing.T) {
	if err := validSequence().Validate(); err != nil {
		t.Fatalf("valid sequence rejected: %v", err)
	}

	cases := []struct {
		name     string
		sequence Sequence
	}{
		{"empty", Sequence{}},
		{"even-length", validSequence()[:2]},
		{"code-first", Sequence{{Kind: KindCode, Text: "1"}}},
		{"broken-alternation", Sequence{
			{Kind: KindMarkup, Text: "a"},
			{Kind: KindMarkup, Text: "b"},
			{Kind: KindMarkup, Text: "c"},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.sequence.Validate(); err == nil {
				t.Fatalf("expected validation failure for %v", tc.sequence)
			}
		})
	}
}

func TestSequence_Reassemble(t *testing.T) {
	got := validSequence().Reassemble()
	if got != "a{{1}}b" {
		t.Fatalf("reassemble mismatch: %q", got)
	}

	single := Sequence{{Kind: KindMarkup, Text: "no code here"}}
	if got := single.Reassemble(); got != "no code here" {
		t.Fatalf("reassemble mismatch: %q", got)
	}
}

func TestSequence_Selectors(t *testing.T) {
	s := validSequence()

	if diff := cmp.Diff([]string{"a", "1", "b"}, s.Texts()); diff != "" {
		t.Fatalf("texts mismatch (-want +got):\n%s", diff)
	}
	if got := s.Code(); len(got) != 1 || got[0].Text != "1" {
		t.Fatalf("code selector mismatch: %v", got)
	}
	if got := s.Markup(); len(got) != 2 || got[0].Text != "a" || got[1].Text != "b" {
		t.Fatalf("markup selector mismatch: %v", got)
	}
}

func TestKind_TextRoundTrip(t *testing.T) {
	for _, kind := range []Kind{KindMarkup, KindCode} {
		text, err := kind.MarshalText()
		if err != nil {
			t.Fatalf("marshal %s: %v", kind, err)
		}
		var back Kind
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %q: %v", text, err)
		}
		if back != kind {
			t.Fatalf("round trip mismatch: %s != %s", back, kind)
		}
	}

	var k Kind
	if err := k.UnmarshalText([]byte("partial")); err == nil {
		t.Fatal("expected unknown kind to be rejected")
	}
	if _, err := Kind(42).MarshalText(); err == nil {
		t.Fatal("expected unknown kind to fail marshalling")
	}
}

func TestPiece_JSONUsesKindNames(t *testing.T) {
	payload, err := json.Marshal(Piece{Kind: KindCode, Text: "x", Offset: 4})
	if err != nil {
		t.Fatalf("marshal piece: %v", err)
	}
	want := `{"kind":"code","text":"x","offset":4}`
	if string(payload) != want {
		t.Fatalf("json mismatch: got %s want %s", payload, want)
	}
}
