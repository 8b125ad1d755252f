// Package mirror keeps a flat JSON array of every classification result on
// disk. It is an advisory audit sink: the relational row is the source of
// truth and mirror failures never fail a request.
package mirror

import (
	"encoding/json"
	"os"
	"sync"
)

type Entry struct {
	Original       string   `json:"original"`
	Tokens         []string `json:"tokens"`
	FilteredTokens []string `json:"filtered_tokens"`
	Category       string   `json:"category"`
}

type Log struct {
	path string
	mu   sync.Mutex
}

// New returns a mirror log backed by path. An empty path disables the log.
func New(path string) *Log {
	return &Log{path: path}
}

func (l *Log) Enabled() bool {
	return l.path != ""
}

// Append reads the whole file, adds the entry and writes it back. Writes are
// serialized in-process; a malformed existing file is treated as empty and
// rebuilt rather than surfaced.
func (l *Log) Append(entry Entry) error {
	if !l.Enabled() {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.readAll()
	entries = append(entries, entry)

	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return err
	}

	return os.WriteFile(l.path, data, 0o644)
}

// Entries returns every recorded entry. A missing or malformed file reads as
// empty.
func (l *Log) Entries() []Entry {
	if !l.Enabled() {
		return []Entry{}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.readAll()
}

func (l *Log) readAll() []Entry {
	entries := []Entry{}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return entries
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return []Entry{}
	}

	return entries
}
