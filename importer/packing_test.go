package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"packing-app/models"
)

func TestPackingHeaderMapping(t *testing.T) {
	raw := "Qty,Item Name,Packer,Status,Packing Type\n" +
		"25,Widget,ramesh,Approved,Gatta\n" +
		"10,Gadget,suresh,,Box\n"

	result, err := ParsePackingCSV(raw)
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)
	assert.Empty(t, result.Skipped)

	first := result.Rows[0]
	assert.Equal(t, "Widget", first.ItemName)
	assert.Equal(t, 25.0, first.Qty)
	assert.Equal(t, "ramesh", first.SubmittedBy)
	assert.Equal(t, models.StatusApproved, first.Status)
	assert.Equal(t, models.PackingTypeGatta, first.PackingType)
	// Approved rows carry the whole quantity as approved.
	assert.Equal(t, 25.0, first.ApprovedQty)
	assert.Equal(t, 0.0, first.NotApprovedQty)

	second := result.Rows[1]
	assert.Equal(t, models.StatusPending, second.Status)
	assert.Equal(t, 0.0, second.ApprovedQty)
}

func TestPackingPositionalFallback(t *testing.T) {
	raw := "1,15/01/2024,Widget,25,ramesh,,Approved,,,Gatta\n" +
		"2,7-3-2024,Gadget,10,suresh,,Rejected,,,Box\n"

	result, err := ParsePackingCSV(raw)
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)

	first := result.Rows[0]
	assert.Equal(t, "Widget", first.ItemName)
	assert.Equal(t, 25.0, first.Qty)
	assert.Equal(t, "ramesh", first.SubmittedBy)
	assert.Equal(t, "2024-01-15", first.Date)
	assert.Equal(t, models.PackingTypeGatta, first.PackingType)

	second := result.Rows[1]
	assert.Equal(t, "2024-03-07", second.Date)
	assert.Equal(t, models.StatusRejected, second.Status)
	assert.Equal(t, 10.0, second.NotApprovedQty)
}

func TestPackingRowSkipPolicy(t *testing.T) {
	raw := "Item Name,Qty\n" +
		"Widget,25\n" +
		",10\n" +
		"Gadget,plenty\n"

	result, err := ParsePackingCSV(raw)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	require.Len(t, result.Skipped, 2)
	assert.Equal(t, 1, result.Skipped[0].Index)
	assert.Contains(t, result.Skipped[0].Reason, "empty item name")
	assert.Equal(t, 2, result.Skipped[1].Index)
	assert.Contains(t, result.Skipped[1].Reason, "invalid qty")
}

func TestPackingRowsCarrySourceIndex(t *testing.T) {
	raw := "Item Name,Qty\n" +
		"Widget,25\n" +
		",10\n" +
		"Gadget,5\n"

	result, err := ParsePackingCSV(raw)
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)
	require.Len(t, result.Skipped, 1)

	// Surviving rows and skips share one numbering, so an insert
	// failure on "Gadget" reports the same index the file shows.
	assert.Equal(t, 0, result.Rows[0].Index)
	assert.Equal(t, 2, result.Rows[1].Index)
	assert.Equal(t, 1, result.Skipped[0].Index)
}

func TestPackingAbortListsHeaders(t *testing.T) {
	raw := "foo,bar\n1,2\n"

	_, err := ParsePackingCSV(raw)
	require.Error(t, err)

	var headerErr *HeaderError
	require.ErrorAs(t, err, &headerErr)
	assert.Equal(t, []string{"foo", "bar"}, headerErr.Headers)
	assert.Contains(t, err.Error(), "foo, bar")
}

func TestPackingUnknownStatusDefaultsToPending(t *testing.T) {
	raw := "Item Name,Qty,Status\nWidget,5,whatever\n"

	result, err := ParsePackingCSV(raw)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, models.StatusPending, result.Rows[0].Status)
}

func TestPackingSemicolonDelimiter(t *testing.T) {
	raw := "Item Name;Qty\nWidget;12,5\n"

	result, err := ParsePackingCSV(raw)
	require.NoError(t, err)
	// "12,5" does not parse as a float, so the row is skipped rather
	// than split on the comma.
	assert.Empty(t, result.Rows)
	require.Len(t, result.Skipped, 1)
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2024-01-15", normalizeDate("15/01/2024"))
	assert.Equal(t, "2024-03-07", normalizeDate("7-3-2024"))
	assert.Equal(t, "2024-03-07T00:00:00Z", normalizeDate("2024-03-07T00:00:00Z"))
	assert.Equal(t, "not a date", normalizeDate("not a date"))
}
