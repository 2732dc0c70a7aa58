package billing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeLines(n int) []Line {
	lines := make([]Line, n)
	for i := range lines {
		lines[i] = Line{Sr: i + 1, ItemName: fmt.Sprintf("Item %d", i+1), Qty: 1}
	}
	return lines
}

func TestPaginateSingleFullPage(t *testing.T) {
	doc := Paginate(makeLines(RowsPerPage), Result{}, ModeSlip)

	require.Len(t, doc.Pages, 1)
	assert.Equal(t, HeaderFull, doc.Pages[0].Header)
	assert.Len(t, doc.Pages[0].Lines, RowsPerPage)
}

func TestPaginateOverflowGetsAbbreviatedHeader(t *testing.T) {
	doc := Paginate(makeLines(RowsPerPage+1), Result{}, ModeSlip)

	require.Len(t, doc.Pages, 2)
	assert.Equal(t, HeaderFull, doc.Pages[0].Header)
	assert.Equal(t, HeaderAbbreviated, doc.Pages[1].Header)
	assert.Len(t, doc.Pages[1].Lines, 1)
}

func TestPaginateBillModeAppendsSummaryPage(t *testing.T) {
	res := Result{Rows: []SummaryRow{{ID: "GRP-A", Type: RowTypeGroup, Name: "A", Qty: 3}}}
	doc := Paginate(makeLines(5), res, ModeBill)

	require.Len(t, doc.Pages, 2)
	last := doc.Pages[1]
	assert.True(t, last.SummaryOnly)
	assert.Empty(t, last.Lines)
	require.Len(t, last.Summary, 1)
	assert.Equal(t, "GRP-A", last.Summary[0].ID)
}

func TestPaginateSlipModeHasNoSummaryPage(t *testing.T) {
	doc := Paginate(makeLines(5), Result{}, ModeSlip)

	require.Len(t, doc.Pages, 1)
	assert.False(t, doc.Pages[0].SummaryOnly)
}

func TestPaginateEmptyStillPrintsHeaderPage(t *testing.T) {
	doc := Paginate(nil, Result{}, ModeBill)

	require.Len(t, doc.Pages, 2)
	assert.Equal(t, HeaderFull, doc.Pages[0].Header)
	assert.Empty(t, doc.Pages[0].Lines)
	assert.True(t, doc.Pages[1].SummaryOnly)
}

func TestPageNumbersAreSequential(t *testing.T) {
	doc := Paginate(makeLines(3*RowsPerPage), Result{}, ModeBill)

	require.Len(t, doc.Pages, 4)
	for i, page := range doc.Pages {
		assert.Equal(t, i+1, page.Number)
	}
}
