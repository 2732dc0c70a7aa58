package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemHeaderMapping(t *testing.T) {
	raw := "Item Name,Sub Group,Group,Barcode,Unit\n" +
		"Corro Sheet,Fluted Jointer,Board,8901234,PCS\n"

	result, err := ParseItemCSV(raw)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)

	row := result.Rows[0]
	assert.Equal(t, "Corro Sheet", row.ItemName)
	// "group" must not steal the "Sub Group" column.
	assert.Equal(t, "Board", row.Group)
	assert.Equal(t, "Fluted Jointer", row.SubGroup)
	assert.Equal(t, "8901234", row.Barcode)
	assert.Equal(t, "PCS", row.Unit)
}

func TestItemPositionalFallback(t *testing.T) {
	raw := "Corro Sheet|Board|Fluted Jointer|8901234|PCS|CS\n"

	result, err := ParseItemCSV(raw)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)

	row := result.Rows[0]
	assert.Equal(t, "Corro Sheet", row.ItemName)
	assert.Equal(t, "Board", row.Group)
	assert.Equal(t, "Fluted Jointer", row.SubGroup)
	assert.Equal(t, "CS", row.Short)
}

func TestItemStripsQuotesAndNonPrintables(t *testing.T) {
	raw := "Item Name,Group\n\"Corro\x07 Sheet\",'Board'\n"

	result, err := ParseItemCSV(raw)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "Corro Sheet", result.Rows[0].ItemName)
	assert.Equal(t, "Board", result.Rows[0].Group)
}

func TestItemRowsCarrySourceIndex(t *testing.T) {
	raw := "Item Name,Group\n" +
		",A\n" +
		"Board,B\n"

	result, err := ParseItemCSV(raw)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	require.Len(t, result.Skipped, 1)

	assert.Equal(t, 1, result.Rows[0].Index)
	assert.Equal(t, 0, result.Skipped[0].Index)
}

func TestItemSkipsEmptyNames(t *testing.T) {
	raw := "Item Name,Group\n,Board\nWidget,Board\n"

	result, err := ParseItemCSV(raw)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 0, result.Skipped[0].Index)
}
