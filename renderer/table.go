package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/pocket"
)

const (
	columnsHeader = "   Category       Description    Amount"
	rowFormat     = "%-3d%-15s%-15s%s\n"
)

var rule = strings.Repeat("=", 40)

// Records writes the whole ledger as a fixed column table followed by the balance.
func Records(w io.Writer, v pocket.View) error {
	r := &tableRenderer{w: w}
	r.Printf("Here's your expense and income records:\n")
	r.table(v.Lines)
	r.Printf("Now you have %s dollars.\n", v.Balance)
	return r.err
}

// Found writes the result of a search in category as a fixed column table followed by its total.
func Found(w io.Writer, category string, rep pocket.Report) error {
	r := &tableRenderer{w: w}
	r.Printf("Here's your expense and income records under category \"%s\":\n", category)
	r.table(rep.Lines)
	r.Printf("The total amount above is %s.\n", rep.Total)
	return r.err
}

// tableRenderer keeps the first write error so that callers check it once.
type tableRenderer struct {
	w   io.Writer
	err error
}

func (r *tableRenderer) Printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *tableRenderer) table(lines []pocket.Line) {
	r.Printf("%s\n%s\n", columnsHeader, rule)
	for _, l := range lines {
		r.Printf(rowFormat, l.Number, l.Category, l.Item, l.Amount)
	}
	r.Printf("%s\n", rule)
}
