package treefile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/dtree"
)

// Event is broadcast for every line of a listing which the loader has
// processed. Err is nil for a successful insertion.
type Event struct {
	Pathname string
	Err      error
}

// Loader loads a path listing into a directory tree in the background.
//
// The tree under construction is private to the loader goroutine; clients
// obtain it from Wait after loading has finished. Progress may be observed
// through Events while loading is in flight.
type Loader struct {
	tree      *dtree.Tree
	cast      *caster.Caster // broadcaster for per-path progress events
	done      chan struct{}
	lastError error // remember last insertion or I/O error
}

// Load reads a path listing (one pathname per line, blank lines and
// '#'-comments ignored) and loads it into a directory tree.
//
// Pathnames already present in the tree are silently accepted, so
// listings may contain a directory both explicitly and implicitly via a
// descendant.
func Load(r io.Reader) (*dtree.Tree, error) {
	return StartLoading(r).Wait()
}

// LoadFile reads a path listing from an OS file, which must be a regular
// file, and loads it into a directory tree.
func LoadFile(name string) (*dtree.Tree, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Load(file)
}

// StartLoading starts loading a path listing asynchronously.
//
// Every processed line is broadcast to all subscribers of Events. The
// broadcaster is closed when the listing is exhausted.
func StartLoading(r io.Reader) *Loader {
	ld := &Loader{
		tree: dtree.New(),
		cast: caster.New(nil), // we will broadcast events as paths are inserted
		done: make(chan struct{}),
	}
	go ld.loadAllLines(r)
	return ld
}

// Events subscribes to the loader's progress broadcast. The returned
// channel carries Event values and is closed when loading finishes.
// ok is false if loading has already finished.
func (ld *Loader) Events(ctx context.Context) (ch <-chan interface{}, ok bool) {
	return ld.cast.Sub(ctx, 10)
}

// Wait blocks until loading has finished and returns the completed tree.
// The error is the last insertion or I/O failure encountered; the tree is
// returned in any case, holding every path inserted so far.
func (ld *Loader) Wait() (*dtree.Tree, error) {
	<-ld.done
	return ld.tree, ld.lastError
}

// loadAllLines is the loader goroutine: it scans the listing line by
// line, inserts every pathname and publishes an event per line.
func (ld *Loader) loadAllLines(r io.Reader) {
	defer close(ld.done)
	defer ld.cast.Close()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		err := ld.tree.Insert(line)
		if errors.Is(err, dtree.ErrAlreadyInTree) {
			err = nil // re-listing a known path is not an error
		}
		if err != nil {
			ld.lastError = fmt.Errorf("cannot insert %q: %w", line, err)
		}
		ld.cast.Pub(Event{Pathname: line, Err: err})
	}
	if err := scanner.Err(); err != nil {
		ld.lastError = fmt.Errorf("error loading path listing: %w", err)
	}
	tracer().Debugf("loaded path listing, tree holds %d nodes", ld.tree.Len())
}
