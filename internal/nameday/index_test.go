package nameday

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFixed() []*Entry {
	return []*Entry{
		{Name: "Георги", Variants: []string{"Гергана", "Гошо"}, Latin: []string{"Georgi", "Gergana"}, Month: 5, Day: 6, Holiday: "Гергьовден", Tradition: TraditionBoth},
		{Name: "Никола", Variants: []string{"Николай"}, Latin: []string{"Nikola", "Nikolay"}, Month: 12, Day: 6, Holiday: "Никулден", Tradition: TraditionBoth},
	}
}

func TestBuildIndexNameKeys(t *testing.T) {
	idx := buildIndex(testFixed(), NewResolver(testCatalogue(), nil), 2026)

	// Canonical, variant and Latin forms all reach the same entry.
	for _, key := range []string{"георги", "гергана", "гошо", "georgi", "gergana"} {
		entries := idx.byName[key]
		require.Len(t, entries, 1, "key %q", key)
		assert.Equal(t, "Георги", entries[0].Name)
	}
}

func TestBuildIndexDateKeys(t *testing.T) {
	idx := buildIndex(testFixed(), NewResolver(testCatalogue(), nil), 2026)

	require.Len(t, idx.byDate["05-06"], 1)
	assert.Equal(t, "Георги", idx.byDate["05-06"][0].Name)

	// Movable entries land on their resolved date for the year.
	require.Len(t, idx.byDate["04-12"], 1)
	assert.Equal(t, "Велика", idx.byDate["04-12"][0].Name)

	assert.Empty(t, idx.byDate["05-07"])
}

func TestBuildIndexHolidayKeys(t *testing.T) {
	idx := buildIndex(testFixed(), NewResolver(testCatalogue(), nil), 2026)

	require.Len(t, idx.byHoliday["гергьовден"], 1)
	require.Len(t, idx.byHoliday["великден"], 1)
}

func TestBuildIndexInsertionOrder(t *testing.T) {
	idx := buildIndex(testFixed(), NewResolver(testCatalogue(), nil), 2026)

	// Fixed entries first, then movable in catalogue order.
	require.Len(t, idx.entries, 7)
	assert.Equal(t, "Георги", idx.entries[0].Name)
	assert.Equal(t, "Никола", idx.entries[1].Name)
	assert.Equal(t, "Тодор", idx.entries[2].Name)
	assert.Equal(t, "Спас", idx.entries[6].Name)
}

func TestIndexYear(t *testing.T) {
	idx := buildIndex(testFixed(), NewResolver(testCatalogue(), nil), 2031)
	assert.Equal(t, 2031, idx.Year())
}
