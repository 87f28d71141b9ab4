package store

import (
	"testing"

	"twa-synth/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetStore_PutGet(t *testing.T) {
	s := NewDatasetStore()
	ds := &domain.Dataset{DatasetID: "d1"}
	s.Put(ds)

	got, err := s.Get("d1")
	require.NoError(t, err)
	assert.Same(t, ds, got)
}

func TestDatasetStore_GetMissing(t *testing.T) {
	s := NewDatasetStore()
	_, err := s.Get("nope")
	assert.ErrorIs(t, err, domain.ErrDatasetNotFound)
}

func TestDatasetStore_ListInsertionOrder(t *testing.T) {
	s := NewDatasetStore()
	s.Put(&domain.Dataset{DatasetID: "a"})
	s.Put(&domain.Dataset{DatasetID: "b"})
	s.Put(&domain.Dataset{DatasetID: "c"})

	all := s.List()
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].DatasetID)
	assert.Equal(t, "b", all[1].DatasetID)
	assert.Equal(t, "c", all[2].DatasetID)
}

func TestDatasetStore_OverwriteKeepsPosition(t *testing.T) {
	s := NewDatasetStore()
	s.Put(&domain.Dataset{DatasetID: "a"})
	s.Put(&domain.Dataset{DatasetID: "b"})
	replacement := &domain.Dataset{DatasetID: "a", Records: []domain.MonthlyRecord{{SubjectID: "x"}}}
	s.Put(replacement)

	all := s.List()
	require.Len(t, all, 2)
	assert.Same(t, replacement, all[0])
}

func TestDatasetStore_DeleteIdempotent(t *testing.T) {
	s := NewDatasetStore()
	s.Put(&domain.Dataset{DatasetID: "a"})
	s.Delete("a")
	s.Delete("a")

	_, err := s.Get("a")
	assert.ErrorIs(t, err, domain.ErrDatasetNotFound)
	assert.Empty(t, s.List())
}
