package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	t.Run("Total23Limit10MakesThreePages", func(t *testing.T) {
		params := PaginationParams{Page: 3, Limit: 10}
		meta := NewPaginationMeta(params, 23)

		assert.Equal(t, 3, meta.Page)
		assert.Equal(t, 10, meta.Limit)
		assert.Equal(t, int64(23), meta.Total)
		assert.Equal(t, 3, meta.Pages)
	})

	t.Run("ExactMultiple", func(t *testing.T) {
		meta := NewPaginationMeta(PaginationParams{Page: 1, Limit: 10}, 20)
		assert.Equal(t, 2, meta.Pages)
	})

	t.Run("EmptyCollection", func(t *testing.T) {
		meta := NewPaginationMeta(PaginationParams{Page: 1, Limit: 10}, 0)
		assert.Equal(t, 0, meta.Pages)
		assert.Equal(t, int64(0), meta.Total)
	})
}

func TestGetSkip(t *testing.T) {
	p := PaginationParams{Page: 3, Limit: 10}
	assert.Equal(t, int64(20), p.GetSkip())

	p = PaginationParams{Page: 1, Limit: 25}
	assert.Equal(t, int64(0), p.GetSkip())
}

func TestNormalize(t *testing.T) {
	p := PaginationParams{Page: 0, Limit: -5}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)

	p = PaginationParams{Page: 4, Limit: 50}
	p.Normalize()
	assert.Equal(t, 4, p.Page)
	assert.Equal(t, 50, p.Limit)
}

func TestDefaultPagination(t *testing.T) {
	p := DefaultPagination()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
}
