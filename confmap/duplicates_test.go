package confmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlmostDuplicatesCollision(t *testing.T) {
	t.Parallel()

	got := AlmostDuplicates([]string{"Team", "Other", "team"})
	assert.Equal(t, []string{"Team", "team"}, got)
}

func TestAlmostDuplicatesNone(t *testing.T) {
	t.Parallel()

	assert.Empty(t, AlmostDuplicates([]string{"Team", "Other"}))
	assert.Empty(t, AlmostDuplicates(nil))
}

func TestAlmostDuplicatesVerbatimRepeatIsNotACollision(t *testing.T) {
	t.Parallel()

	assert.Empty(t, AlmostDuplicates([]string{"team", "team"}))
}

func TestAlmostDuplicatesMultipleGroups(t *testing.T) {
	t.Parallel()

	got := AlmostDuplicates([]string{"a/b", "A/B", "x", "y", "X"})
	assert.Equal(t, []string{"a/b", "A/B", "x", "X"}, got)
}
