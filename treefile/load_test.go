package treefile

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// readerFunc lets tests control when the loader goroutine may proceed.
type readerFunc func(p []byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) {
	return f(p)
}

func setupTracing(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

const listing = `# example listing
root
root/a
root/a/x

root/b
root/a
`

func TestLoadListing(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree, err := Load(strings.NewReader(listing))
	if err != nil {
		t.Fatalf("cannot load listing: %v", err)
	}
	if tree.Len() != 4 {
		t.Errorf("expected 4 nodes, have %d", tree.Len())
	}
	for _, pathname := range []string{"root", "root/a", "root/a/x", "root/b"} {
		if !tree.Contains(pathname) {
			t.Errorf("expected tree to contain %q, does not", pathname)
		}
	}
	if !tree.Valid() {
		t.Errorf("expected loaded tree to be valid, is not")
	}
}

func TestLoadReportsBadPaths(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree, err := Load(strings.NewReader("root\nroot//a\n"))
	if err == nil {
		t.Errorf("expected malformed pathname to be reported, is not")
	}
	if tree == nil || tree.Len() != 1 {
		t.Errorf("expected partially loaded tree with 1 node")
	}
}

func TestLoadFile(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	name := filepath.Join(t.TempDir(), "listing.txt")
	if err := os.WriteFile(name, []byte(listing), 0644); err != nil {
		t.Fatal(err)
	}
	tree, err := LoadFile(name)
	if err != nil {
		t.Fatalf("cannot load listing file: %v", err)
	}
	if tree.Len() != 4 {
		t.Errorf("expected 4 nodes, have %d", tree.Len())
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "no-such-file")); err == nil {
		t.Errorf("expected missing file to be reported, is not")
	}
}

func TestLoaderBroadcastsEvents(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	blocker := make(chan struct{})
	reader := readerFunc(func(p []byte) (int, error) {
		<-blocker
		return copy(p, []byte(listing)), io.EOF
	})
	ld := StartLoading(reader)
	events, ok := ld.Events(context.Background())
	if !ok {
		t.Fatalf("cannot subscribe to loader events")
	}
	close(blocker)
	seen := 0
	for ev := range events {
		event, isEvent := ev.(Event)
		if !isEvent {
			t.Fatalf("unexpected event type %T", ev)
		}
		if event.Err != nil {
			t.Errorf("unexpected event error for %q: %v", event.Pathname, event.Err)
		}
		seen++
	}
	if seen != 5 {
		t.Errorf("expected 5 progress events, saw %d", seen)
	}
	tree, err := ld.Wait()
	if err != nil {
		t.Fatalf("loader failed: %v", err)
	}
	if tree.Len() != 4 {
		t.Errorf("expected 4 nodes, have %d", tree.Len())
	}
}
