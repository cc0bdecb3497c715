package branch

import (
	"fmt"
	"time"
)

// Resolve decides which branch to create for args and how its record should
// look afterwards. It only reads from s.
//
// When args[0] starts with a prefix, that prefix is used: a lone argument is
// taken as the full branch name, otherwise the remaining words are appended
// to the prefix. A known prefix keeps its stored title.
//
// Otherwise every argument is appended to the most recently used prefix and
// the title is rebuilt from the new name.
func Resolve(args []string, s Store, now time.Time) (Record, error) {
	if len(args) == 0 {
		return Record{}, ErrNoArguments
	}
	now = now.UTC().Truncate(time.Second)
	first := args[0]

	if prefix, ok := Recognize(first); ok {
		name := first
		if len(args) > 1 {
			name = Join(prefix, args[1:]...)
		}
		stored, found, err := s.Get(prefix)
		if err != nil {
			return Record{}, err
		}
		if found {
			return Record{
				Prefix:        stored.Prefix,
				Name:          name,
				LastUsed:      notBefore(now, stored.LastUsed),
				OriginalTitle: stored.OriginalTitle,
			}, nil
		}
		return Record{
			Prefix:        prefix,
			Name:          name,
			LastUsed:      now,
			OriginalTitle: Title(first),
		}, nil
	}

	records, err := s.List()
	if err != nil {
		return Record{}, err
	}
	latest, ok := Latest(records)
	if !ok {
		return Record{}, ErrNoBranchesSaved
	}
	name := Join(latest.Prefix, args...)
	return Record{
		Prefix:        latest.Prefix,
		Name:          name,
		LastUsed:      notBefore(now, latest.LastUsed),
		OriginalTitle: Title(name),
	}, nil
}

// ResolveWithPrefix is Resolve for a prefix chosen outside of args, such as
// from an interactive picker.
func ResolveWithPrefix(prefix string, words []string, s Store, now time.Time) (Record, error) {
	p, ok := Recognize(prefix)
	if !ok || p != prefix {
		return Record{}, fmt.Errorf("invalid branch prefix %q", prefix)
	}
	args := make([]string, 0, len(words)+1)
	args = append(args, prefix)
	args = append(args, words...)
	return Resolve(args, s, now)
}

func notBefore(now, previous time.Time) time.Time {
	if previous.After(now) {
		return previous.UTC().Truncate(time.Second)
	}
	return now
}
