package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/unkn0wn-root/themekit/internal/errdef"
)

// Journal persists audit records across runs as a JSON array, newest first.
type Journal struct {
	path       string
	maxEntries int
	mu         sync.Mutex
	entries    []Record
	loaded     bool
}

func NewJournal(path string, maxEntries int) *Journal {
	if maxEntries <= 0 {
		maxEntries = defaultHistorySize
	}
	return &Journal{path: path, maxEntries: maxEntries}
}

func (j *Journal) Path() string {
	return j.path
}

func (j *Journal) Load() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.ensureLoadedLocked()
}

// Append adds records, trims the journal to its bound and writes it out.
func (j *Journal) Append(records ...Record) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.ensureLoadedLocked(); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	j.entries = append(append([]Record(nil), records...), j.entries...)
	sortNewestFirst(j.entries)
	if len(j.entries) > j.maxEntries {
		j.entries = j.entries[:j.maxEntries]
	}
	return j.persist()
}

// Entries returns up to limit records, newest first. A non-positive limit
// returns all of them.
func (j *Journal) Entries(limit int) []Record {
	j.mu.Lock()
	defer j.mu.Unlock()
	n := len(j.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Record, n)
	copy(out, j.entries[:n])
	return out
}

// Clear removes every record and the journal file.
func (j *Journal) Clear() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = []Record{}
	j.loaded = true
	if err := os.Remove(j.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errdef.Wrap(errdef.CodeFilesystem, err, "remove journal")
	}
	return nil
}

func (j *Journal) persist() error {
	if err := os.MkdirAll(filepath.Dir(j.path), 0o755); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "create journal dir")
	}

	data, err := json.MarshalIndent(j.entries, "", "  ")
	if err != nil {
		return errdef.Wrap(errdef.CodeStore, err, "encode journal")
	}

	tmp := j.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "write journal tmp")
	}
	if err := os.Rename(tmp, j.path); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "replace journal file")
	}
	return nil
}

func (j *Journal) ensureLoadedLocked() error {
	if j.loaded {
		return nil
	}

	data, err := os.ReadFile(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			j.entries = []Record{}
			j.loaded = true
			return nil
		}
		return errdef.Wrap(errdef.CodeFilesystem, err, "read journal")
	}
	if len(data) == 0 {
		j.entries = []Record{}
		j.loaded = true
		return nil
	}
	if err := json.Unmarshal(data, &j.entries); err != nil {
		return errdef.Wrap(errdef.CodeStore, err, "parse journal")
	}
	sortNewestFirst(j.entries)
	j.loaded = true
	return nil
}

// sortNewestFirst orders by time, keeping the given order for equal times.
func sortNewestFirst(records []Record) {
	sort.SliceStable(records, func(a, b int) bool {
		return records[a].At.After(records[b].At)
	})
}
