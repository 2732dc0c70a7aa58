package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowByID(t *testing.T, res Result, id string) SummaryRow {
	t.Helper()
	for _, row := range res.Rows {
		if row.ID == id {
			return row
		}
	}
	t.Fatalf("summary row %q not found", id)
	return SummaryRow{}
}

func TestGroupSummaryAccumulation(t *testing.T) {
	s := NewSession()
	s.AddLine(Line{ItemName: "Item 1", Group: "A", Qty: 5})
	s.AddLine(Line{ItemName: "Item 2", Group: "A", Qty: 3})
	s.AddLine(Line{ItemName: "Item 3", Group: "", Qty: 2})

	res := s.Recompute()

	assert.Equal(t, 8.0, rowByID(t, res, "GRP-A").Qty)
	assert.Equal(t, 2.0, rowByID(t, res, "GRP-General").Qty)
	assert.True(t, res.QtyMatch)
	assert.Equal(t, StatusOK, res.Status)
}

func TestGroupSummarySkipsEmptyItemNames(t *testing.T) {
	s := NewSession()
	s.AddLine(Line{ItemName: "Item 1", Group: "A", Qty: 5})
	s.AddLine(Line{ItemName: "", Group: "A", Qty: 2})

	res := s.Recompute()

	// The nameless row still counts toward the entry total, so the two
	// views disagree and the quantity check fires.
	assert.Equal(t, 5.0, rowByID(t, res, "GRP-A").Qty)
	assert.Equal(t, 7.0, res.TotalItemQty)
	assert.False(t, res.QtyMatch)
	assert.Equal(t, StatusQtyErr, res.Status)
}

func TestFlutedJointerSplitWithoutJointerLine(t *testing.T) {
	s := NewSession()
	s.AddLine(Line{ItemName: "Sheet", SubGroup: "Fluted Jointer", UCap: 4, LCap: 6})

	res := s.Recompute()

	assert.Equal(t, 4.0, rowByID(t, res, "SUB-Fluted Jointer").Qty)
	assert.Equal(t, 6.0, rowByID(t, res, "SUB-Jointer").Qty)
	assert.True(t, res.CapMatch)
}

func TestFlutedJointerSplitUsesExistingJointerSpelling(t *testing.T) {
	s := NewSession()
	s.AddLine(Line{ItemName: "Plain", SubGroup: "JOINTER", UCap: 1, LCap: 1})
	s.AddLine(Line{ItemName: "Sheet", SubGroup: "Fluted Jointer", UCap: 4, LCap: 6})

	res := s.Recompute()

	// LCap lands in the bucket of the first line spelled "jointer",
	// whatever its casing.
	assert.Equal(t, 8.0, rowByID(t, res, "SUB-JOINTER").Qty)
	assert.Equal(t, 4.0, rowByID(t, res, "SUB-Fluted Jointer").Qty)
	assert.True(t, res.CapMatch)
}

func TestJointerAccumulatesBothCaps(t *testing.T) {
	s := NewSession()
	s.AddLine(Line{ItemName: "Plain", SubGroup: "Jointer", UCap: 2, LCap: 3})

	res := s.Recompute()

	assert.Equal(t, 5.0, rowByID(t, res, "SUB-Jointer").Qty)
}

func TestCapMismatchDetected(t *testing.T) {
	s := NewSession()
	s.AddLine(Line{ItemName: "Item 1", Group: "A", Qty: 5, UCap: 2, LCap: 1})
	// Caps on a line with no subgroup never reach the subgroup summary.
	res := s.Recompute()

	assert.True(t, res.QtyMatch)
	assert.False(t, res.CapMatch)
	assert.Equal(t, StatusCapErr, res.Status)
}

func TestQtyErrorReportedBeforeCapError(t *testing.T) {
	s := NewSession()
	s.AddLine(Line{ItemName: "", Qty: 1, UCap: 2})

	res := s.Recompute()

	assert.False(t, res.QtyMatch)
	assert.False(t, res.CapMatch)
	assert.Equal(t, StatusQtyErr, res.Status)
}

func TestAlertLatchClearsWhenResolved(t *testing.T) {
	s := NewSession()
	s.AddLine(Line{ItemName: "", Qty: 2})

	res := s.Recompute()
	require.True(t, res.AlertActive)
	require.True(t, s.AlertActive())

	require.NoError(t, s.UpdateLine(0, Line{ItemName: "Fixed", Qty: 2}))
	res = s.Recompute()
	assert.False(t, res.AlertActive)
	assert.False(t, s.AlertActive())
}

func TestGrandTotalWithAdjustments(t *testing.T) {
	s := NewSession()
	s.AddLine(Line{ItemName: "X", Qty: 5})
	s.SetRate("GRP-General", 2)
	_, err := s.AddAdjustment("add", "freight", 5)
	require.NoError(t, err)

	res := s.Recompute()

	assert.Equal(t, 10.0, res.SumOfItems)
	assert.Equal(t, 5.0, res.AdjustmentTotal)
	assert.Equal(t, 15.0, res.CalculatedTotal)
	assert.Equal(t, 15.0, res.GrandTotal)
	assert.False(t, res.ManualOverride)
}

func TestDeductAdjustment(t *testing.T) {
	s := NewSession()
	s.AddLine(Line{ItemName: "X", Qty: 10})
	s.SetRate("GRP-General", 1)
	_, err := s.AddAdjustment("deduct", "damage", 3)
	require.NoError(t, err)

	res := s.Recompute()

	assert.Equal(t, -3.0, res.AdjustmentTotal)
	assert.Equal(t, 7.0, res.GrandTotal)
}

func TestManualOverrideKeepsCalculatedSubTotal(t *testing.T) {
	s := NewSession()
	s.AddLine(Line{ItemName: "X", Qty: 5})
	s.SetRate("GRP-General", 2)
	override := 20.0
	s.SetManualTotal(&override)

	res := s.Recompute()

	assert.Equal(t, 10.0, res.CalculatedTotal)
	assert.Equal(t, 20.0, res.GrandTotal)
	assert.True(t, res.ManualOverride)

	s.SetManualTotal(nil)
	res = s.Recompute()
	assert.Equal(t, 10.0, res.GrandTotal)
	assert.False(t, res.ManualOverride)
}

func TestBadAdjustmentTypeRejected(t *testing.T) {
	s := NewSession()
	_, err := s.AddAdjustment("bonus", "nope", 5)
	assert.ErrorIs(t, err, ErrBadAdjustmentType)
}

func TestRemoveLineRenumbersSerials(t *testing.T) {
	s := NewSession()
	s.AddLine(Line{ItemName: "A", Qty: 1})
	s.AddLine(Line{ItemName: "B", Qty: 1})
	s.AddLine(Line{ItemName: "C", Qty: 1})

	require.NoError(t, s.RemoveLine(1))

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "A", lines[0].ItemName)
	assert.Equal(t, 1, lines[0].Sr)
	assert.Equal(t, "C", lines[1].ItemName)
	assert.Equal(t, 2, lines[1].Sr)

	assert.ErrorIs(t, s.RemoveLine(5), ErrLineOutOfRange)
}

func TestGroupRowsPrecedeSubgroupRows(t *testing.T) {
	s := NewSession()
	s.AddLine(Line{ItemName: "X", Group: "A", SubGroup: "Jointer", Qty: 1, UCap: 1})

	res := s.Recompute()

	require.Len(t, res.Rows, 2)
	assert.Equal(t, RowTypeGroup, res.Rows[0].Type)
	assert.Equal(t, RowTypeSubgroup, res.Rows[1].Type)
}
