package musicians

import (
	"errors"
	"testing"

	"twohtsounds/apperrors"
)

func TestNormalizeTrimsPair(t *testing.T) {
	in := memberInput{Name: " Jane ", Instrument: " Guitar "}
	if err := in.normalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Name != "Jane" || in.Instrument != "Guitar" {
		t.Fatalf("pair not trimmed: %q / %q", in.Name, in.Instrument)
	}
}

func TestNormalizeEquivalentInputsCollapse(t *testing.T) {
	a := memberInput{Name: " Jane ", Instrument: " Guitar "}
	b := memberInput{Name: "Jane", Instrument: "Guitar"}
	if err := a.normalize(); err != nil {
		t.Fatal(err)
	}
	if err := b.normalize(); err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("trimmed pairs must be identical upsert keys: %v vs %v", a, b)
	}
}

func TestNormalizeRejectsEmptyAfterTrim(t *testing.T) {
	cases := []memberInput{
		{Name: "", Instrument: "Guitar"},
		{Name: "Jane", Instrument: ""},
		{Name: "   ", Instrument: "Guitar"},
		{Name: "Jane", Instrument: "\t"},
		{},
	}
	for _, in := range cases {
		err := in.normalize()
		var ve *apperrors.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("expected ValidationError for %+v, got %v", in, err)
		}
	}
}
