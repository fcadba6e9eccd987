package pocket

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTree_IsValid(t *testing.T) {
	tree := DefaultTree()

	testCases := []struct {
		name     string
		category string
		want     bool
	}{
		{name: "leaf", category: "meal", want: true},
		{name: "deep leaf", category: "railway", want: true},
		{name: "income leaf", category: "bonus", want: true},
		// group names are plain categories too, records can be filed under "food".
		{name: "group", category: "food", want: true},
		{name: "top-level group", category: "expense", want: true},
		{name: "unknown", category: "rent", want: false},
		{name: "empty", category: "", want: false},
		{name: "case sensitive", category: "Meal", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tree.IsValid(tc.category); got != tc.want {
				t.Errorf("IsValid(%q) = %v, want %v", tc.category, got, tc.want)
			}
		})
	}
}

func TestTree_Subcategories(t *testing.T) {
	tree := DefaultTree()

	testCases := []struct {
		category string
		want     []string
	}{
		{category: "expense", want: []string{"expense", "food", "meal", "snack", "drink", "transportation", "bus", "railway"}},
		{category: "food", want: []string{"food", "meal", "snack", "drink"}},
		{category: "transportation", want: []string{"transportation", "bus", "railway"}},
		{category: "income", want: []string{"income", "salary", "bonus"}},
		{category: "meal", want: []string{"meal"}},
		{category: "salary", want: []string{"salary"}},
		{category: "rent", want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.category, func(t *testing.T) {
			got := tree.Subcategories(tc.category)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Subcategories(%q) mismatch (-want +got):\n%s", tc.category, diff)
			}
		})
	}
}

func TestTree_Print(t *testing.T) {
	var buf bytes.Buffer
	if err := DefaultTree().Print(&buf); err != nil {
		t.Fatalf("Print() returned an unexpected error: %v", err)
	}

	want := `- expense
  - food
    - meal
    - snack
    - drink
  - transportation
    - bus
    - railway
- income
  - salary
  - bonus
`
	if got := buf.String(); got != want {
		t.Errorf("Print() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestTree_Names(t *testing.T) {
	want := []string{"expense", "food", "meal", "snack", "drink", "transportation", "bus", "railway", "income", "salary", "bonus"}
	if diff := cmp.Diff(want, DefaultTree().Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewTree_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		nodes []*Category
	}{
		{name: "duplicate leaf", nodes: []*Category{Group("a", Leaf("x")), Group("b", Leaf("x"))}},
		{name: "leaf named like a group", nodes: []*Category{Group("a", Leaf("a"))}},
		{name: "empty name", nodes: []*Category{Group("a", Leaf(""))}},
		{name: "name with space", nodes: []*Category{Leaf("fast food")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewTree(tc.nodes...); err == nil {
				t.Errorf("NewTree() expected an error, got nil")
			}
		})
	}
}
