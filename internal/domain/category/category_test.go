package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	m := NewDefaultMapping()

	t.Run("maps known raw labels", func(t *testing.T) {
		assert.Equal(t, "Road", m.Normalize("road damage or potholes"))
		assert.Equal(t, "Water", m.Normalize("water supply or leakage issue"))
		assert.Equal(t, "Road", m.Normalize("Road"))
	})

	t.Run("unknown label maps to default", func(t *testing.T) {
		assert.Equal(t, "Other", m.Normalize("alien invasion"))
		assert.Equal(t, "Other", m.Normalize(""))
	})

	t.Run("matching is case-sensitive", func(t *testing.T) {
		assert.Equal(t, "Other", m.Normalize("ROAD"))
		assert.Equal(t, "Other", m.Normalize("road"))
	})
}

func TestCandidateLabels(t *testing.T) {
	m := NewMapping(map[string]string{
		"b": "Beta",
		"a": "Alpha",
		"c": "Beta",
	}, "Other")

	labels := m.CandidateLabels()
	assert.Equal(t, []string{"a", "b", "c"}, labels)
}

func TestCanonical(t *testing.T) {
	m := NewMapping(map[string]string{
		"b": "Beta",
		"a": "Alpha",
		"c": "Beta",
	}, "Other")

	cats := m.Canonical()
	assert.Equal(t, []string{"Alpha", "Beta"}, cats)
}

func TestMappingIsImmutable(t *testing.T) {
	table := map[string]string{"x": "X"}
	m := NewMapping(table, "Other")

	table["x"] = "Y"
	assert.Equal(t, "X", m.Normalize("x"))
}
