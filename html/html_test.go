package html

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func setupTracing(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

func TestTreeFromNestedList(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	input := `<ul><li>root
	  <ul>
	    <li>a</li>
	    <li>b</li>
	  </ul>
	</li></ul>`
	tree, err := TreeFromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("cannot build tree from listing: %v", err)
	}
	if tree.Len() != 3 {
		t.Errorf("expected 3 nodes, have %d", tree.Len())
	}
	for _, pathname := range []string{"root", "root/a", "root/b"} {
		if !tree.Contains(pathname) {
			t.Errorf("expected tree to contain %q, does not", pathname)
		}
	}
	if !tree.Valid() {
		t.Errorf("expected parsed tree to be valid, is not")
	}
}

func TestTreeFromDeeplyNestedList(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	input := `<ul><li>top<ul><li>mid<ul><li>leaf</li></ul></li></ul></li></ul>`
	tree, err := TreeFromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("cannot build tree from listing: %v", err)
	}
	if !tree.Contains("top/mid/leaf") {
		t.Errorf("expected tree to contain top/mid/leaf, does not:\n%s", tree)
	}
}

func TestTreeFromConflictingList(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	input := `<ul><li>one</li><li>two</li></ul>`
	if _, err := TreeFromHTML(strings.NewReader(input)); err == nil {
		t.Errorf("expected two top-level items to be rejected, are not")
	}
}
