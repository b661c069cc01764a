// Package watch polls theme files and reports content changes.
package watch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/unkn0wn-root/themekit/internal/errdef"
)

type Kind int

const (
	Changed Kind = iota
	Removed
)

func (k Kind) String() string {
	if k == Removed {
		return "removed"
	}
	return "changed"
}

// Event carries the new content for Changed and nothing for Removed.
type Event struct {
	Path string
	Kind Kind
	Data []byte
}

type Options struct {
	// Interval between polls. Zero means one second.
	Interval time.Duration
	// Buffer is the event channel capacity. Zero means 16.
	Buffer int
}

type fingerprint struct {
	mod  time.Time
	size int64
	sum  string
}

type file struct {
	fp   fingerprint
	gone bool
}

type Watcher struct {
	mu       sync.Mutex
	files    map[string]*file
	out      chan Event
	interval time.Duration
}

const (
	defaultInterval = time.Second
	defaultBuffer   = 16
)

func New(opts Options) *Watcher {
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	buf := opts.Buffer
	if buf <= 0 {
		buf = defaultBuffer
	}
	return &Watcher{
		files:    make(map[string]*file),
		out:      make(chan Event, buf),
		interval: interval,
	}
}

func (w *Watcher) Events() <-chan Event {
	return w.out
}

// Add starts tracking path and returns its current content. Later polls
// report changes relative to that content.
func (w *Watcher) Add(path string) ([]byte, error) {
	clean, ok := cleanPath(path)
	if !ok {
		return nil, errdef.New(errdef.CodeFilesystem, "watch: empty path")
	}
	info, err := os.Stat(clean)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeFilesystem, err, "watch %s", clean)
	}
	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeFilesystem, err, "watch %s", clean)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[clean] = &file{fp: fingerprintOf(info, data)}
	return data, nil
}

func (w *Watcher) Remove(path string) {
	clean, ok := cleanPath(path)
	if !ok {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, clean)
}

// Paths lists the tracked files, sorted.
func (w *Watcher) Paths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	paths := make([]string, 0, len(w.files))
	for p := range w.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Run polls until ctx is done, then closes the event channel.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.out)
	t := time.NewTicker(w.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			for _, evt := range w.Poll() {
				select {
				case w.out <- evt:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

// Poll checks every tracked file once and returns the resulting events in
// path order. A file that disappears is reported once until it returns.
func (w *Watcher) Poll() []Event {
	var events []Event
	for _, path := range w.Paths() {
		if evt, ok := w.check(path); ok {
			events = append(events, evt)
		}
	}
	return events
}

func (w *Watcher) check(path string) (Event, bool) {
	w.mu.Lock()
	f, ok := w.files[path]
	var prev file
	if ok {
		prev = *f
	}
	w.mu.Unlock()
	if !ok {
		return Event{}, false
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !prev.gone {
			w.update(path, prev.fp, true)
			return Event{Path: path, Kind: Removed}, true
		}
		return Event{}, false
	}
	if !prev.gone && info.ModTime().Equal(prev.fp.mod) && info.Size() == prev.fp.size {
		return Event{}, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if prev.gone {
			return Event{}, false
		}
		w.update(path, prev.fp, true)
		return Event{Path: path, Kind: Removed}, true
	}
	next := fingerprintOf(info, data)
	w.update(path, next, false)
	if !prev.gone && next.sum == prev.fp.sum {
		return Event{}, false
	}
	return Event{Path: path, Kind: Changed, Data: data}, true
}

func (w *Watcher) update(path string, fp fingerprint, gone bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if f, ok := w.files[path]; ok {
		f.fp = fp
		f.gone = gone
	}
}

func cleanPath(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	clean := filepath.Clean(path)
	if clean == "." {
		return "", false
	}
	return clean, true
}

func fingerprintOf(info fs.FileInfo, data []byte) fingerprint {
	sum := sha256.Sum256(data)
	return fingerprint{
		mod:  info.ModTime(),
		size: int64(len(data)),
		sum:  hex.EncodeToString(sum[:]),
	}
}
