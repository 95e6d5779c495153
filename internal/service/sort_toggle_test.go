package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapSortStore struct {
	values   map[string]string
	storeErr error
}

func newMapSortStore() *mapSortStore { return &mapSortStore{values: map[string]string{}} }

func (m *mapSortStore) Load(_ context.Context, key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mapSortStore) Store(_ context.Context, key, value string) error {
	if m.storeErr != nil {
		return m.storeErr
	}
	m.values[key] = value
	return nil
}

func (m *mapSortStore) Remove(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func TestSortState_NextCycles(t *testing.T) {
	var s SortState

	s = s.Next("name")
	assert.Equal(t, SortState{Key: "name"}, s)
	assert.Equal(t, 1, s.Direction())

	s = s.Next("name")
	assert.Equal(t, SortState{Key: "name", Desc: true}, s)
	assert.Equal(t, -1, s.Direction())

	s = s.Next("name")
	assert.False(t, s.Active())

	s = s.Next("name")
	assert.Equal(t, SortState{Key: "name"}, s, "cycle restarts after clearing")
}

func TestSortState_NewKeyStartsAscending(t *testing.T) {
	s := SortState{Key: "name", Desc: true}.Next("location")
	assert.Equal(t, SortState{Key: "location"}, s)
}

func TestParseSortState(t *testing.T) {
	tests := []struct {
		raw  string
		want SortState
	}{
		{"name:asc", SortState{Key: "name"}},
		{"start:desc", SortState{Key: "start", Desc: true}},
		{"", SortState{}},
		{"name", SortState{}},
		{"name:sideways", SortState{}},
		{":asc", SortState{}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseSortState(tt.raw)
			assert.Equal(t, tt.want, got)
			if got.Active() {
				assert.Equal(t, tt.raw, got.String())
			}
		})
	}
}

func TestSortToggle_PersistsPerTable(t *testing.T) {
	store := newMapSortStore()
	toggle := NewSortToggle(store)
	ctx := context.Background()

	s, err := toggle.Toggle(ctx, "registered", "name")
	require.NoError(t, err)
	assert.Equal(t, "name:asc", store.values["sort:registered"])
	assert.Equal(t, s, toggle.Current(ctx, "registered"))
	assert.False(t, toggle.Current(ctx, "available").Active())

	_, err = toggle.Toggle(ctx, "registered", "name")
	require.NoError(t, err)
	assert.Equal(t, "name:desc", store.values["sort:registered"])

	s, err = toggle.Toggle(ctx, "registered", "name")
	require.NoError(t, err)
	assert.False(t, s.Active())
	_, present := store.values["sort:registered"]
	assert.False(t, present)
}

func TestSortToggle_StoreError(t *testing.T) {
	store := newMapSortStore()
	store.storeErr = errors.New("redis down")

	_, err := NewSortToggle(store).Toggle(context.Background(), "available", "name")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store sort available")
}

func TestSortToggle_NilStore(t *testing.T) {
	toggle := NewSortToggle(nil)
	s, err := toggle.Toggle(context.Background(), "available", "name")
	require.NoError(t, err)
	assert.Equal(t, SortState{Key: "name"}, s)
	assert.False(t, toggle.Current(context.Background(), "available").Active())
}
