// Package branch holds the naming rules and the resolution logic for
// linear-style branch names such as owner/BAR-123-some-slug.
package branch

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Retention is the number of records kept after each successful checkout.
const Retention = 5

// Record is the remembered state for one prefix.
type Record struct {
	Prefix        string
	Name          string
	LastUsed      time.Time
	OriginalTitle string
}

var (
	ErrNoArguments     = errors.New("no arguments for branch")
	ErrNoBranchesSaved = errors.New("no branches saved")
)

// Validate reports whether r can be written to a store.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Prefix) == "" {
		return errors.New("branch record has empty prefix")
	}
	if p, ok := Recognize(r.Prefix); !ok || p != r.Prefix {
		return fmt.Errorf("invalid branch prefix %q", r.Prefix)
	}
	if r.Name == "" {
		return fmt.Errorf("branch record for %q has empty name", r.Prefix)
	}
	if !strings.HasPrefix(r.Name, r.Prefix) {
		return fmt.Errorf("branch name %q does not start with prefix %q", r.Name, r.Prefix)
	}
	return nil
}

// Store is the set of operations the resolver and the CLI need from branch
// memory. Implementations decide where records live.
type Store interface {
	List() ([]Record, error)
	Get(prefix string) (Record, bool, error)
	Upsert(r Record) error
	Trim(n int) error
}

// SortByLastUsed orders records most recent first. Records with equal
// timestamps keep their relative order.
func SortByLastUsed(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].LastUsed.After(records[j].LastUsed)
	})
}

// Latest returns the most recently used record. Ties go to the record that
// appears first in records.
func Latest(records []Record) (Record, bool) {
	if len(records) == 0 {
		return Record{}, false
	}
	latest := records[0]
	for _, r := range records[1:] {
		if r.LastUsed.After(latest.LastUsed) {
			latest = r
		}
	}
	return latest, true
}

// Find does a linear scan for prefix.
func Find(records []Record, prefix string) (Record, bool) {
	for _, r := range records {
		if r.Prefix == prefix {
			return r, true
		}
	}
	return Record{}, false
}
