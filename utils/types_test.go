package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Name  string
	Price float64
	Tags  []string
}

func TestToPointer(t *testing.T) {
	p := ToPointer(42)
	require.NotNil(t, p)
	assert.Equal(t, 42, *p)
}

func TestDiffFields(t *testing.T) {
	old := widget{Name: "VIP", Price: 5, Tags: []string{"a"}}

	t.Run("no changes", func(t *testing.T) {
		assert.Empty(t, DiffFields(old, old))
	})

	t.Run("changed fields only", func(t *testing.T) {
		updated := widget{Name: "VIP", Price: 7.5, Tags: []string{"a", "b"}}
		diffs := DiffFields(old, updated)
		require.Len(t, diffs, 2)
		assert.Contains(t, diffs[0], "Price")
		assert.Contains(t, diffs[1], "Tags")
	})
}
