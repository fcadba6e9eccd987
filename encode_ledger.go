package pocket

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// EncodeLedger writes the ledger in its flat file format: the starting balance on the
// first line, then one "category item amount" record per line.
//
// Lines are separated by "\n" and there is no trailing newline.
func EncodeLedger(w io.Writer, l *Ledger) error {
	_, err := io.WriteString(w, strings.Join(l.Serialize(), "\n"))
	return err
}

// DecodeLedger reads a ledger written by EncodeLedger.
//
// Only the starting balance is parsed. Records are kept verbatim and parsed when the
// ledger lists them, so a hand-edited bad record does not prevent loading.
// Blank lines are ignored. An empty input is an empty ledger starting from 0.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	scanner := bufio.NewScanner(r)

	var ledger *Ledger
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue // Skip empty lines
		}

		if ledger == nil {
			start, err := ParseAmount(strings.TrimSpace(line))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %q", lineNumber, ErrInvalidStartingBalance, line)
			}
			ledger = NewLedger(start)
			continue
		}

		ledger.Append(line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	if ledger == nil {
		ledger = NewLedger(NewAmount(0))
	}
	return ledger, nil
}

// ParseStartingBalance parses the answer to the initial balance question.
//
// An invalid answer returns a zero amount along with ErrInvalidStartingBalance.
func ParseStartingBalance(s string) (Amount, error) {
	a, err := ParseAmount(strings.TrimSpace(s))
	if err != nil {
		return NewAmount(0), errors.Join(ErrInvalidStartingBalance, err)
	}
	return a, nil
}
