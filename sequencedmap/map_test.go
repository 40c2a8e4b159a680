package sequencedmap_test

import (
	"slices"
	"testing"

	"github.com/speakeasy-api/gamexml/sequencedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_Set_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		keys           []string
		expectedKeys   []string
		expectedValues []int
	}{
		{
			name:           "keeps insertion order",
			keys:           []string{"widget", "mesh", "sub_widget"},
			expectedKeys:   []string{"widget", "mesh", "sub_widget"},
			expectedValues: []int{0, 1, 2},
		},
		{
			name:           "existing key keeps its position",
			keys:           []string{"a", "b", "a"},
			expectedKeys:   []string{"a", "b"},
			expectedValues: []int{2, 1},
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := sequencedmap.New[string, int]()
			for i, k := range tt.keys {
				m.Set(k, i)
			}

			assert.Equal(t, tt.expectedKeys, slices.Collect(m.Keys()))
			assert.Equal(t, tt.expectedValues, slices.Collect(m.Values()))
			assert.Equal(t, len(tt.expectedKeys), m.Len())
		})
	}
}

func TestMap_Getters_Success(t *testing.T) {
	t.Parallel()

	m := sequencedmap.New(sequencedmap.NewElem("a", 1), sequencedmap.NewElem("b", 2))

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, m.Has("b"))
	assert.False(t, m.Has("c"))
	assert.Equal(t, 0, m.GetOrZero("c"))

	m.Set("a", 3)
	assert.Equal(t, []string{"a", "b"}, slices.Collect(m.Keys()))
	assert.Equal(t, 3, m.GetOrZero("a"))

	var nilMap *sequencedmap.Map[string, int]
	assert.Equal(t, 0, nilMap.Len())
	assert.False(t, nilMap.Has("a"))
	assert.Empty(t, slices.Collect(nilMap.Keys()))
	_, ok = nilMap.Get("a")
	assert.False(t, ok)

	var zero sequencedmap.Map[string, int]
	zero.Set("x", 1)
	assert.Equal(t, 1, zero.Len())
}

func TestMap_All_AddDuringIteration_Success(t *testing.T) {
	t.Parallel()

	m := sequencedmap.New[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)

	var seen []string
	for k := range m.All() {
		seen = append(seen, k)
		if k == "a" {
			m.Set("c", 3)
		}
	}

	assert.Equal(t, []string{"a", "b"}, seen)
	assert.True(t, m.Has("c"))
}
