package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/pocket"
	md "github.com/nao1215/markdown"
)

// RecordsMarkdown renders the whole ledger as a markdown report.
func RecordsMarkdown(v pocket.View) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Records")
	if len(v.Lines) == 0 {
		doc.PlainText("No records yet.\n")
	} else {
		doc.Table(linesTable(v.Lines))
	}
	doc.PlainText(fmt.Sprintf("Now you have %s dollars.", md.Bold(v.Balance.String())))
	return doc.String()
}

// FoundMarkdown renders the records under category as a markdown report.
func FoundMarkdown(category string, rep pocket.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Records under \"%s\"", category))
	doc.Table(linesTable(rep.Lines))
	doc.PlainText(fmt.Sprintf("The total amount above is %s.", md.Bold(rep.Total.String())))
	return doc.String()
}

// CategoriesMarkdown renders the category tree as a nested markdown list.
func CategoriesMarkdown(tree *pocket.Tree) string {
	var list strings.Builder
	// Print writes "- name" lines indented by two spaces per level,
	// which is already a nested markdown list.
	if err := tree.Print(&list); err != nil {
		return fmt.Sprintf("error rendering categories: %v", err)
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Categories")
	doc.PlainText(strings.TrimSuffix(list.String(), "\n"))
	return doc.String()
}

func linesTable(lines []pocket.Line) md.TableSet {
	table := md.TableSet{
		Header: []string{"#", "Category", "Description", "Amount"},
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
	}
	for _, l := range lines {
		table.Rows = append(table.Rows, []string{
			fmt.Sprint(l.Number),
			l.Category,
			l.Item,
			l.Amount.String(),
		})
	}
	return table
}
