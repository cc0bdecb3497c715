package branch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordValidate(t *testing.T) {
	valid := Record{Prefix: "owner/BAR-1", Name: "owner/BAR-1-init", OriginalTitle: "BAR-1: init"}
	require.NoError(t, valid.Validate())

	testCases := []struct {
		name   string
		record Record
	}{
		{name: "empty prefix", record: Record{Name: "owner/BAR-1"}},
		{name: "prefix with slug", record: Record{Prefix: "owner/BAR-1-x", Name: "owner/BAR-1-x"}},
		{name: "malformed prefix", record: Record{Prefix: "owner", Name: "owner"}},
		{name: "empty name", record: Record{Prefix: "owner/BAR-1"}},
		{name: "name without prefix", record: Record{Prefix: "owner/BAR-1", Name: "other/BAR-1"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.record.Validate())
		})
	}
}

func TestLatestBreaksTiesByListOrder(t *testing.T) {
	at := time.Unix(1700000000, 0).UTC()
	records := []Record{
		{Prefix: "a/A-1", LastUsed: at},
		{Prefix: "b/B-1", LastUsed: at.Add(time.Minute)},
		{Prefix: "c/C-1", LastUsed: at.Add(time.Minute)},
	}
	latest, ok := Latest(records)
	require.True(t, ok)
	assert.Equal(t, "b/B-1", latest.Prefix)

	_, ok = Latest(nil)
	assert.False(t, ok)
}

func TestSortByLastUsedIsStableAndDescending(t *testing.T) {
	at := time.Unix(1700000000, 0).UTC()
	records := []Record{
		{Prefix: "a/A-1", LastUsed: at},
		{Prefix: "b/B-1", LastUsed: at.Add(2 * time.Second)},
		{Prefix: "c/C-1", LastUsed: at},
		{Prefix: "d/D-1", LastUsed: at.Add(time.Second)},
	}
	SortByLastUsed(records)

	got := make([]string, 0, len(records))
	for _, r := range records {
		got = append(got, r.Prefix)
	}
	assert.Equal(t, []string{"b/B-1", "d/D-1", "a/A-1", "c/C-1"}, got)
}
