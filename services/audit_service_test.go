package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"packing-app/models"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name        string
		approvedQty float64
		qty         float64
		current     string
		want        string
	}{
		{"untouched pending", 0, 10, models.StatusPending, models.StatusPending},
		{"partial", 3, 10, models.StatusPending, models.StatusPartiallyApproved},
		{"exact", 10, 10, models.StatusPartiallyApproved, models.StatusApproved},
		{"over", 12, 10, models.StatusApproved, models.StatusApproved},
		{"rejected stays rejected", 0, 10, models.StatusRejected, models.StatusRejected},
		{"zero qty never auto-approves", 5, 0, models.StatusPending, models.StatusPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.approvedQty, tt.qty, tt.current))
		})
	}
}

func TestApplyAuditIsCumulative(t *testing.T) {
	now := time.Date(2024, 3, 7, 10, 30, 0, 0, time.Local)
	entry := &models.PackingEntry{Qty: 10, Status: models.StatusPending}

	require.NoError(t, ApplyAuditEntry(entry, 3, "asha", now))
	assert.Equal(t, 3.0, entry.ApprovedQty)
	assert.Equal(t, models.StatusPartiallyApproved, entry.Status)

	require.NoError(t, ApplyAuditEntry(entry, 7, "asha", now.Add(time.Hour)))
	assert.Equal(t, 10.0, entry.ApprovedQty)
	assert.Equal(t, models.StatusApproved, entry.Status)

	// Further approvals never reduce quantity or status.
	require.NoError(t, ApplyAuditEntry(entry, 2, "asha", now.Add(2*time.Hour)))
	assert.Equal(t, 12.0, entry.ApprovedQty)
	assert.Equal(t, models.StatusApproved, entry.Status)
}

func TestApplyAuditRejectsNegativeQty(t *testing.T) {
	entry := &models.PackingEntry{Qty: 10, Status: models.StatusPending}
	err := ApplyAuditEntry(entry, -1, "asha", time.Now())
	assert.ErrorIs(t, err, ErrNegativeAuditQty)
	assert.Equal(t, 0.0, entry.ApprovedQty)
	assert.Equal(t, models.StatusPending, entry.Status)
}

func TestApplyAuditRefusesRejectedEntry(t *testing.T) {
	entry := &models.PackingEntry{Qty: 10, NotApprovedQty: 10, Status: models.StatusRejected}

	err := ApplyAuditEntry(entry, 3, "asha", time.Now())

	assert.ErrorIs(t, err, ErrEntryRejected)
	assert.Equal(t, models.StatusRejected, entry.Status)
	assert.Equal(t, 0.0, entry.ApprovedQty)
	assert.Equal(t, 10.0, entry.NotApprovedQty)
}

func TestApplyAuditKeepsNotApprovedQty(t *testing.T) {
	entry := &models.PackingEntry{Qty: 10, NotApprovedQty: 4, Status: models.StatusPending}
	require.NoError(t, ApplyAuditEntry(entry, 2, "asha", time.Now()))
	assert.Equal(t, 4.0, entry.NotApprovedQty)
}

func TestAuditRemarksTrail(t *testing.T) {
	now := time.Date(2024, 3, 7, 10, 30, 0, 0, time.Local)
	entry := &models.PackingEntry{Qty: 10, Status: models.StatusPending}

	require.NoError(t, ApplyAuditEntry(entry, 3, "asha", now))
	assert.Equal(t, "2024-03-07 10:30 Added 3", entry.AuditorRemarks)

	require.NoError(t, ApplyAuditEntry(entry, 2.5, "ravi", now.Add(time.Minute)))
	assert.Equal(t, "2024-03-07 10:30 Added 3 | 2024-03-07 10:31 Added 2.5", entry.AuditorRemarks)

	// Only the most recent auditor is retained.
	assert.Equal(t, "ravi", entry.AuditedBy)
	require.NotNil(t, entry.AuditedAt)
}

func TestRejectEntry(t *testing.T) {
	now := time.Date(2024, 3, 7, 11, 0, 0, 0, time.Local)
	entry := &models.PackingEntry{Qty: 10, ApprovedQty: 3, Status: models.StatusPartiallyApproved}

	RejectEntry(entry, "asha", now)

	assert.Equal(t, models.StatusRejected, entry.Status)
	assert.Equal(t, 7.0, entry.NotApprovedQty)
	assert.Equal(t, 3.0, entry.ApprovedQty)
	assert.Contains(t, entry.AuditorRemarks, "Rejected")
	assert.Equal(t, "asha", entry.AuditedBy)
}

func TestRejectOverApprovedEntry(t *testing.T) {
	entry := &models.PackingEntry{Qty: 10, ApprovedQty: 12, Status: models.StatusApproved}

	RejectEntry(entry, "asha", time.Now())

	assert.Equal(t, models.StatusRejected, entry.Status)
	assert.Equal(t, 0.0, entry.NotApprovedQty)
	assert.Equal(t, 12.0, entry.ApprovedQty)
}

func TestEntryEditRederivesStatus(t *testing.T) {
	entry := &models.PackingEntry{
		ItemName:    "Widget",
		Qty:         10,
		ApprovedQty: 5,
		PackingType: models.PackingTypeBox,
		Status:      models.StatusPartiallyApproved,
	}

	// Lowering the claim below what is already approved completes it.
	ApplyEntryEdit(entry, "Widget", 3, models.PackingTypeBox, "")
	assert.Equal(t, 3.0, entry.Qty)
	assert.Equal(t, models.StatusApproved, entry.Status)

	// Raising it again reopens the partial state.
	ApplyEntryEdit(entry, "Widget", 12, models.PackingTypeBox, "")
	assert.Equal(t, models.StatusPartiallyApproved, entry.Status)
}
