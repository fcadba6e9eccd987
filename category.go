package pocket

import (
	"fmt"
	"io"
	"strings"
)

// Category is a node of the category hierarchy.
//
// A Category without children is a leaf, otherwise it is a group.
type Category struct {
	Name     string
	Children []*Category
}

// Leaf returns a category without subcategories.
func Leaf(name string) *Category { return &Category{Name: name} }

// Group returns a category containing children.
func Group(name string, children ...*Category) *Category {
	return &Category{Name: name, Children: children}
}

// walk visits c and its descendants depth-first. depth is 0 for c.
// It stops as soon as visit returns false, and reports whether the walk completed.
func (c *Category) walk(depth int, visit func(c *Category, depth int) bool) bool {
	if !visit(c, depth) {
		return false
	}
	for _, child := range c.Children {
		if !child.walk(depth+1, visit) {
			return false
		}
	}
	return true
}

// Tree is an immutable category hierarchy.
//
// The tree root is an unnamed group, every other node is named, and names are unique
// across the whole tree since categories are looked up by name.
type Tree struct {
	root *Category
}

// NewTree returns a tree whose top-level categories are nodes.
func NewTree(nodes ...*Category) (*Tree, error) {
	root := Group("", nodes...)
	seen := make(map[string]bool)
	var err error
	for _, n := range nodes {
		n.walk(1, func(c *Category, _ int) bool {
			switch {
			case strings.TrimSpace(c.Name) == "":
				err = fmt.Errorf("category with an empty name")
			case strings.ContainsAny(c.Name, " \t\n"):
				err = fmt.Errorf("category %q contains spaces", c.Name)
			case seen[c.Name]:
				err = fmt.Errorf("duplicate category %q", c.Name)
			}
			seen[c.Name] = true
			return err == nil
		})
		if err != nil {
			return nil, err
		}
	}
	return &Tree{root: root}, nil
}

// DefaultTree returns the built-in category hierarchy.
func DefaultTree() *Tree {
	t, err := NewTree(
		Group("expense",
			Group("food", Leaf("meal"), Leaf("snack"), Leaf("drink")),
			Group("transportation", Leaf("bus"), Leaf("railway")),
		),
		Group("income", Leaf("salary"), Leaf("bonus")),
	)
	if err != nil {
		panic(err)
	}
	return t
}

// find returns the category named name, or nil.
func (t *Tree) find(name string) *Category {
	var found *Category
	for _, n := range t.root.Children {
		n.walk(1, func(c *Category, _ int) bool {
			if c.Name == name {
				found = c
			}
			return found == nil
		})
		if found != nil {
			break
		}
	}
	return found
}

// IsValid reports whether name is a category of the tree.
//
// Group names are valid categories too: "food" is as good as "meal".
func (t *Tree) IsValid(name string) bool {
	return name != "" && t.find(name) != nil
}

// Subcategories returns name followed by all the categories below it, depth-first.
//
// It returns nil if name is not in the tree.
func (t *Tree) Subcategories(name string) []string {
	c := t.find(name)
	if c == nil {
		return nil
	}
	var names []string
	c.walk(0, func(c *Category, _ int) bool {
		names = append(names, c.Name)
		return true
	})
	return names
}

// Names returns every category name, depth-first.
func (t *Tree) Names() []string {
	var names []string
	for _, n := range t.root.Children {
		n.walk(1, func(c *Category, _ int) bool {
			names = append(names, c.Name)
			return true
		})
	}
	return names
}

// Print writes the tree as an indented list, one "- name" line per category.
func (t *Tree) Print(w io.Writer) error {
	var err error
	for _, n := range t.root.Children {
		n.walk(1, func(c *Category, depth int) bool {
			_, err = fmt.Fprintf(w, "%s- %s\n", strings.Repeat("  ", depth-1), c.Name)
			return err == nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
