// Package html builds directory trees from nested-list HTML documents,
// i.e. the <ul>/<li> index listings produced by many static file servers.
package html

import (
	"io"
	"strings"

	"github.com/npillmayer/dtree"
	"golang.org/x/net/html"
)

// TreeFromHTML creates a directory tree from a nested-list HTML fragment.
//
// Every <li> element contributes one node; its label is the element's
// first own text content, trimmed of whitespace. Nesting of lists maps to
// nesting of directories:
//
//	<ul><li>root
//	  <ul><li>a</li><li>b</li></ul>
//	</li></ul>
//
// yields the paths "root", "root/a" and "root/b". List items with an
// empty label are skipped, together with their sublists. A document with
// more than one top-level item cannot form a single hierarchy and is
// rejected with dtree.ErrConflictingPath.
func TreeFromHTML(input io.Reader) (*dtree.Tree, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	t := dtree.New()
	for _, n := range nodes {
		if err := collectItems(n, nil, t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// collectItems walks the HTML node tree and inserts a path for every
// labeled list item, carrying the enclosing item labels as path prefix.
func collectItems(n *html.Node, prefix []string, t *dtree.Tree) error {
	if n.Type == html.ElementNode && n.Data == "li" {
		label := itemLabel(n)
		if label == "" {
			return nil
		}
		comps := append(append([]string(nil), prefix...), label)
		pathname := strings.Join(comps, "/")
		if err := t.Insert(pathname); err != nil && err != dtree.ErrAlreadyInTree {
			return err
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := collectItems(c, comps, t); err != nil {
				return err
			}
		}
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectItems(c, prefix, t); err != nil {
			return err
		}
	}
	return nil
}

// itemLabel returns the trimmed text content directly below a list item,
// not descending into nested lists.
func itemLabel(li *html.Node) string {
	var bf strings.Builder
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			bf.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(bf.String())
}
