package service

import (
	"context"
	"fmt"
	"strings"
)

const sortKeyPrefix = "sort:"

// SortState is the active column sort of one table. The zero value means unsorted.
type SortState struct {
	Key  string
	Desc bool
}

// Active reports whether a sort key is set.
func (s SortState) Active() bool { return s.Key != "" }

// Direction returns 1 for ascending and -1 for descending.
func (s SortState) Direction() int {
	if s.Desc {
		return -1
	}
	return 1
}

// Next applies one header click on key: a new key sorts ascending, a second
// click on the same key sorts descending, a third clears the sort.
func (s SortState) Next(key string) SortState {
	switch {
	case s.Key != key:
		return SortState{Key: key}
	case !s.Desc:
		return SortState{Key: key, Desc: true}
	default:
		return SortState{}
	}
}

// String encodes the state as "key:asc" or "key:desc". Unsorted is "".
func (s SortState) String() string {
	if !s.Active() {
		return ""
	}
	if s.Desc {
		return s.Key + ":desc"
	}
	return s.Key + ":asc"
}

// ParseSortState decodes String output. Malformed input is unsorted.
func ParseSortState(raw string) SortState {
	key, dir, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok || key == "" {
		return SortState{}
	}
	switch dir {
	case "asc":
		return SortState{Key: key}
	case "desc":
		return SortState{Key: key, Desc: true}
	default:
		return SortState{}
	}
}

// SortStore persists per-tab values. session.Holder satisfies it.
type SortStore interface {
	Load(ctx context.Context, key string) (string, bool)
	Store(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// SortToggle keeps the three-state column sort of each table in tab storage
// under "sort:<table>".
type SortToggle struct {
	store SortStore
}

// NewSortToggle binds a toggle to a tab's storage. A nil store keeps every table unsorted.
func NewSortToggle(store SortStore) *SortToggle {
	return &SortToggle{store: store}
}

// Current returns the stored sort for table.
func (t *SortToggle) Current(ctx context.Context, table string) SortState {
	if t == nil || t.store == nil {
		return SortState{}
	}
	raw, ok := t.store.Load(ctx, sortKeyPrefix+table)
	if !ok {
		return SortState{}
	}
	return ParseSortState(raw)
}

// Toggle advances the sort of table for a click on key and persists the result.
func (t *SortToggle) Toggle(ctx context.Context, table, key string) (SortState, error) {
	next := t.Current(ctx, table).Next(key)
	if t == nil || t.store == nil {
		return next, nil
	}

	storageKey := sortKeyPrefix + table
	if !next.Active() {
		if err := t.store.Remove(ctx, storageKey); err != nil {
			return next, fmt.Errorf("clear sort %s: %w", table, err)
		}
		return next, nil
	}
	if err := t.store.Store(ctx, storageKey, next.String()); err != nil {
		return next, fmt.Errorf("store sort %s: %w", table, err)
	}
	return next, nil
}
