package pocket

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Ledger is an ordered list of records and the balance they started from.
//
// Records are kept as text, the way they were stored or added, and parsed into
// entries when they are listed. A record that does not parse is never fatal: it is
// reported as Skipped by View and Find and left out of the balance.
//
// Records are identified by their 1-based line number. Identical records are allowed.
type Ledger struct {
	start   Amount
	records []string
}

// NewLedger creates an empty ledger with a starting balance.
func NewLedger(start Amount) *Ledger {
	return &Ledger{start: start, records: make([]string, 0)}
}

// Start returns the balance before any entry.
func (l *Ledger) Start() Amount { return l.start }

// Len returns the number of records.
func (l *Ledger) Len() int { return len(l.records) }

// Records iterates over the records as text, with their line number.
func (l *Ledger) Records() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, r := range l.records {
			if !yield(i+1, r) {
				return
			}
		}
	}
}

// Skipped is a record that could not be parsed into an entry.
type Skipped struct {
	Number int
	Record string
	Err    error
}

// parse returns the entries of the ledger, numbered by their line, and the records
// that are not valid entries.
func (l *Ledger) parse() ([]Line, []Skipped) {
	lines := make([]Line, 0, len(l.records))
	var skipped []Skipped
	for n, r := range l.Records() {
		e, err := ParseEntry(r)
		if err != nil {
			skipped = append(skipped, Skipped{Number: n, Record: r, Err: err})
			continue
		}
		lines = append(lines, Line{Number: n, Entry: e})
	}
	return lines, skipped
}

// Balance returns the starting balance plus every entry amount.
//
// Records that do not parse count for nothing.
func (l *Ledger) Balance() Amount {
	lines, _ := l.parse()
	return l.start.Add(total(lines))
}

func total(lines []Line) Amount {
	amounts := make([]Amount, len(lines))
	for i, line := range lines {
		amounts[i] = line.Amount
	}
	return Sum(amounts...)
}

// Add parses raw as "category item amount" and appends it to the ledger.
//
// The category must be valid in tree and the amount must be an integer. The record is
// stored with single spaces between its fields.
func (l *Ledger) Add(raw string, tree *Tree) error {
	fields := strings.Fields(raw)
	if len(fields) != 3 {
		return fmt.Errorf("%w: %q", ErrMalformedInput, raw)
	}
	if !tree.IsValid(fields[0]) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, fields[0])
	}
	amount, err := ParseAmount(fields[2])
	if err != nil {
		return err
	}
	l.records = append(l.records, Entry{Category: fields[0], Item: fields[1], Amount: amount}.String())
	return nil
}

// Append appends records as they are, without validating them.
//
// It is meant for decoders: stored records are kept verbatim.
func (l *Ledger) Append(records ...string) {
	l.records = append(l.records, records...)
}

// View is the full listing of a ledger.
type View struct {
	Lines   []Line
	Balance Amount
	Skipped []Skipped
}

// View lists all entries and the current balance.
//
// Lines keep their line number in the ledger, even when some records are skipped.
func (l *Ledger) View() View {
	lines, skipped := l.parse()
	return View{Lines: lines, Balance: l.start.Add(total(lines)), Skipped: skipped}
}

// LinePicker chooses which line to delete among several identical records.
//
// It returns the answer as typed by the user, it is validated by Delete.
type LinePicker func(record string, lines []int) (string, error)

// Delete removes the record matching raw "category item amount".
//
// The amount is not parsed: raw is compared to the records as text, spacing aside.
// When several records match, pick is asked for the line to delete.
func (l *Ledger) Delete(raw string, pick LinePicker) error {
	fields := strings.Fields(raw)
	if len(fields) != 3 {
		return fmt.Errorf("%w: %q", ErrMalformedInput, raw)
	}
	record := strings.Join(fields, " ")

	var matches []int
	for n, r := range l.Records() {
		if strings.Join(strings.Fields(r), " ") == record {
			matches = append(matches, n)
		}
	}

	switch len(matches) {
	case 0:
		return fmt.Errorf("%w: %q", ErrNotFound, record)
	case 1:
		l.remove(matches[0])
		return nil
	}

	if pick == nil {
		return fmt.Errorf("%w: %q matches lines %v", ErrInvalidLineInput, record, matches)
	}
	answer, err := pick(record, matches)
	if err != nil {
		return fmt.Errorf("cannot choose the line of %q: %w", record, err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLineInput, answer)
	}
	if !slices.Contains(matches, n) {
		return fmt.Errorf("%w: no record of %q in line %d", ErrLineNotInSet, record, n)
	}
	l.remove(n)
	return nil
}

// remove deletes the record at 1-based line n.
func (l *Ledger) remove(n int) {
	l.records = slices.Delete(l.records, n-1, n)
}

// Report is the result of a search.
type Report struct {
	Lines   []Line
	Total   Amount
	Skipped []Skipped
}

// Find lists the entries whose category is one of subcats, numbered from 1.
//
// An empty subcats means the searched category does not exist. Records that do not
// parse but start with one of subcats are reported as Skipped, even along with
// ErrNoRecords.
func (l *Ledger) Find(subcats []string) (Report, error) {
	if len(subcats) == 0 {
		return Report{}, ErrUnknownCategory
	}
	lines, skipped := l.parse()

	var r Report
	for _, line := range lines {
		if !slices.Contains(subcats, line.Category) {
			continue
		}
		r.Lines = append(r.Lines, Line{Number: len(r.Lines) + 1, Entry: line.Entry})
	}
	for _, s := range skipped {
		if fields := strings.Fields(s.Record); len(fields) > 0 && slices.Contains(subcats, fields[0]) {
			r.Skipped = append(r.Skipped, s)
		}
	}
	if len(r.Lines) == 0 {
		return Report{Skipped: r.Skipped}, ErrNoRecords
	}
	r.Total = total(r.Lines)
	return r, nil
}

// Serialize returns the persisted lines: the starting balance, then one record per line.
func (l *Ledger) Serialize() []string {
	lines := make([]string, 0, len(l.records)+1)
	lines = append(lines, l.start.String())
	return append(lines, l.records...)
}
