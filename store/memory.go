package store

import (
	"github.com/mrbonezy/git-linear-branch/branch"
)

// Memory is a Store that never touches disk.
type Memory struct {
	records []branch.Record
	writes  int
}

var _ branch.Store = (*Memory)(nil)

func NewMemory(records ...branch.Record) *Memory {
	m := &Memory{}
	m.records = append(m.records, records...)
	return m
}

func (m *Memory) List() ([]branch.Record, error) {
	out := make([]branch.Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *Memory) Get(prefix string) (branch.Record, bool, error) {
	r, ok := branch.Find(m.records, prefix)
	return r, ok, nil
}

func (m *Memory) Upsert(r branch.Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	m.records = upsert(m.records, r)
	m.writes++
	return nil
}

func (m *Memory) Trim(n int) error {
	if len(m.records) == 0 {
		return nil
	}
	m.records = trim(m.records, n)
	m.writes++
	return nil
}

// Writes counts mutations, which tests use to check that failed checkouts
// leave the store alone.
func (m *Memory) Writes() int {
	return m.writes
}
