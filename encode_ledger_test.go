package pocket

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeLedger(t *testing.T) {
	stream := "1000\nmeal breakfast -50\n\nsalary june 3000\n"

	ledger, err := DecodeLedger(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	if got := ledger.Start().String(); got != "1000" {
		t.Errorf("DecodeLedger() start = %s, want 1000", got)
	}
	want := []string{"1000", "meal breakfast -50", "salary june 3000"}
	if diff := cmp.Diff(want, ledger.Serialize()); diff != "" {
		t.Errorf("DecodeLedger() mismatch (-want +got):\n%s", diff)
	}
	if got := ledger.Balance().String(); got != "3950" {
		t.Errorf("Balance() = %s, want 3950", got)
	}
}

func TestDecodeLedger_Empty(t *testing.T) {
	ledger, err := DecodeLedger(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	if ledger.Len() != 0 || !ledger.Start().IsZero() {
		t.Errorf("DecodeLedger(\"\") = %v, want an empty ledger starting from 0", ledger.Serialize())
	}
}

func TestDecodeLedger_BadStartingBalance(t *testing.T) {
	_, err := DecodeLedger(strings.NewReader("a lot\nmeal breakfast -50"))
	if !errors.Is(err, ErrInvalidStartingBalance) {
		t.Errorf("DecodeLedger() error = %v, want %v", err, ErrInvalidStartingBalance)
	}
}

// TestDecodeLedger_Verbatim checks that records are loaded and written back as they
// were stored, valid or not.
func TestDecodeLedger_Verbatim(t *testing.T) {
	stream := "1000\nmeal  breakfast   -50\nmeal -50\nmeal lunch 1.5\nsalary june 3000"

	ledger, err := DecodeLedger(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	if got := ledger.Balance().String(); got != "3950" {
		t.Errorf("Balance() = %s, want 3950", got)
	}

	var buffer bytes.Buffer
	if err := EncodeLedger(&buffer, ledger); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}
	if got := buffer.String(); got != stream {
		t.Errorf("EncodeLedger() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, stream)
	}
}

func TestEncodeLedger(t *testing.T) {
	l := NewLedger(NewAmount(500))
	for _, raw := range []string{"meal breakfast -50", "bonus gift +100"} {
		if err := l.Add(raw, DefaultTree()); err != nil {
			t.Fatalf("Add(%q) returned an unexpected error: %v", raw, err)
		}
	}

	var buffer bytes.Buffer
	if err := EncodeLedger(&buffer, l); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}

	want := "500\nmeal breakfast -50\nbonus gift +100"
	if got := buffer.String(); got != want {
		t.Errorf("EncodeLedger() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

// TestEncodeDecodeLedger verifies that a saved ledger loads back with identical lines.
func TestEncodeDecodeLedger(t *testing.T) {
	l := NewLedger(MustParseAmount("-20"))
	for _, raw := range []string{"meal meal -5", "meal meal -5", "salary june 00300", "food lunch -99999999999999999999"} {
		if err := l.Add(raw, DefaultTree()); err != nil {
			t.Fatalf("Add(%q) returned an unexpected error: %v", raw, err)
		}
	}

	var buffer bytes.Buffer
	if err := EncodeLedger(&buffer, l); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}
	reloaded, err := DecodeLedger(&buffer)
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	if diff := cmp.Diff(l.Serialize(), reloaded.Serialize()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if !l.Balance().Equal(reloaded.Balance()) {
		t.Errorf("round trip balance = %s, want %s", reloaded.Balance(), l.Balance())
	}
}

func TestParseStartingBalance(t *testing.T) {
	testCases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "1000", want: "1000"},
		{input: " 250\n", want: "250"},
		{input: "-3", want: "-3"},
		{input: "much", want: "0", wantErr: true},
		{input: "", want: "0", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseStartingBalance(tc.input)
			if tc.wantErr != errors.Is(err, ErrInvalidStartingBalance) {
				t.Fatalf("ParseStartingBalance(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got.String() != tc.want {
				t.Errorf("ParseStartingBalance(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}
