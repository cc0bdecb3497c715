// Package store persists branch records for git-linear-branch.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/mrbonezy/git-linear-branch/branch"
)

// FileName is created at the repository top level.
const FileName = ".git-linear-branch-meta.json"

type document struct {
	Branches []entry `json:"branches"`
}

type entry struct {
	Prefix        string `json:"prefix"`
	Name          string `json:"name"`
	LastUsed      int64  `json:"last_used"`
	OriginalTitle string `json:"original_title"`
}

// JSON keeps records in a single JSON document. The file is read on every
// call and rewritten whole on every mutation.
type JSON struct {
	path string
}

var _ branch.Store = (*JSON)(nil)

func NewJSON(path string) *JSON {
	return &JSON{path: path}
}

// ForRepo returns the store for the repository rooted at repoRoot.
func ForRepo(repoRoot string) *JSON {
	return NewJSON(filepath.Join(repoRoot, FileName))
}

func (s *JSON) List() ([]branch.Record, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	records := make([]branch.Record, 0, len(doc.Branches))
	for _, e := range doc.Branches {
		records = append(records, e.record())
	}
	return records, nil
}

func (s *JSON) Get(prefix string) (branch.Record, bool, error) {
	records, err := s.List()
	if err != nil {
		return branch.Record{}, false, err
	}
	r, ok := branch.Find(records, prefix)
	return r, ok, nil
}

// Upsert stores r as the newest record, replacing any record with the same
// prefix.
func (s *JSON) Upsert(r branch.Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	records, err := s.List()
	if err != nil {
		return err
	}
	return s.write(upsert(records, r))
}

// Trim keeps the n most recently used records.
func (s *JSON) Trim(n int) error {
	records, err := s.List()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	return s.write(trim(records, n))
}

func (s *JSON) read() (document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return document{}, nil
		}
		return document{}, newError(KindIO, s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return document{}, nil
	}
	if !utf8.Valid(data) {
		return document{}, newError(KindUTF8, s.path, errors.New("invalid utf-8 in store file"))
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}, newError(KindJSON, s.path, err)
	}
	return doc, nil
}

func (s *JSON) write(records []branch.Record) error {
	doc := document{Branches: make([]entry, 0, len(records))}
	for _, r := range records {
		doc.Branches = append(doc.Branches, newEntry(r))
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return newError(KindJSON, s.path, err)
	}
	data = append(data, '\n')
	if err := writeFileAtomic(s.path, data); err != nil {
		return newError(KindIO, s.path, err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	done := false
	defer func() {
		if !done {
			os.Remove(tmp.Name())
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return err
	}
	done = true
	return nil
}

func newEntry(r branch.Record) entry {
	return entry{
		Prefix:        r.Prefix,
		Name:          r.Name,
		LastUsed:      r.LastUsed.Unix(),
		OriginalTitle: r.OriginalTitle,
	}
}

func (e entry) record() branch.Record {
	return branch.Record{
		Prefix:        e.Prefix,
		Name:          e.Name,
		LastUsed:      time.Unix(e.LastUsed, 0).UTC(),
		OriginalTitle: e.OriginalTitle,
	}
}

// upsert puts r at the front of records, dropping any older record with the
// same prefix. Timestamps only have second precision, so list order is what
// ranks records written within the same second.
func upsert(records []branch.Record, r branch.Record) []branch.Record {
	out := make([]branch.Record, 0, len(records)+1)
	out = append(out, r)
	for _, existing := range records {
		if existing.Prefix != r.Prefix {
			out = append(out, existing)
		}
	}
	return out
}

func trim(records []branch.Record, n int) []branch.Record {
	if n < 0 {
		n = 0
	}
	branch.SortByLastUsed(records)
	if len(records) > n {
		records = records[:n]
	}
	return records
}
