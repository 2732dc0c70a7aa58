package services

import (
	"errors"
	"strconv"
	"time"

	"packing-app/models"
	"packing-app/repositories"
)

var (
	ErrNegativeAuditQty = errors.New("approved quantity must not be negative")
	ErrEntryRejected    = errors.New("entry is rejected; no further approvals are allowed")
)

// DeriveStatus is the single place the (approvedQty, qty) → status rule
// lives. Approved once the approved quantity covers the claim, Partially
// Approved while it is a proper prefix, otherwise whatever was
// explicitly set (Pending or Rejected).
func DeriveStatus(approvedQty, qty float64, current string) string {
	if qty > 0 && approvedQty >= qty {
		return models.StatusApproved
	}
	if approvedQty > 0 && approvedQty < qty {
		return models.StatusPartiallyApproved
	}
	return current
}

type AuditService struct {
	repo *repositories.PackingRepository
}

func NewAuditService(repo *repositories.PackingRepository) *AuditService {
	return &AuditService{repo: repo}
}

// ApplyAuditEntry applies one cumulative partial approval to the entry in
// memory. Prior approvals are added to, never overwritten, and the
// remarks field grows an audit trail line per action. NotApprovedQty is
// carried forward untouched; nothing in this flow reduces it.
func ApplyAuditEntry(entry *models.PackingEntry, addedQty float64, auditor string, now time.Time) error {
	if addedQty < 0 {
		return ErrNegativeAuditQty
	}
	// Rejected is terminal; approving on top of it would leave
	// approved+notApproved exceeding the claim.
	if entry.Status == models.StatusRejected {
		return ErrEntryRejected
	}

	entry.ApprovedQty += addedQty
	entry.Status = DeriveStatus(entry.ApprovedQty, entry.Qty, entry.Status)
	entry.AuditorRemarks = appendRemark(entry.AuditorRemarks, now,
		"Added "+strconv.FormatFloat(addedQty, 'f', -1, 64))
	entry.AuditedBy = auditor
	entry.AuditedAt = &now
	return nil
}

// RejectEntry is the explicit full reject: whatever is not yet approved
// is recorded as not approved. There is no partial-reject path.
func RejectEntry(entry *models.PackingEntry, auditor string, now time.Time) {
	entry.Status = models.StatusRejected
	// Over-approved entries have nothing left to reject; the remainder
	// never goes negative.
	remaining := entry.Qty - entry.ApprovedQty
	if remaining < 0 {
		remaining = 0
	}
	entry.NotApprovedQty = remaining
	entry.AuditorRemarks = appendRemark(entry.AuditorRemarks, now, "Rejected")
	entry.AuditedBy = auditor
	entry.AuditedAt = &now
}

// ApplyEntryEdit applies a general edit and rederives the status, since
// changing the claimed quantity can complete or reopen an approval.
func ApplyEntryEdit(entry *models.PackingEntry, itemName string, qty float64, packingType, packingStatus string) {
	entry.ItemName = CleanName(itemName)
	entry.Qty = qty
	entry.PackingType = packingType
	if packingStatus != "" {
		entry.PackingStatus = packingStatus
	}
	entry.Status = DeriveStatus(entry.ApprovedQty, entry.Qty, entry.Status)
}

func appendRemark(existing string, now time.Time, text string) string {
	line := now.Format("2006-01-02 15:04") + " " + text
	if existing == "" {
		return line
	}
	return existing + " | " + line
}

// ApplyAudit loads the entry, applies the approval and persists it with
// the optimistic version check. On repositories.ErrVersionConflict the
// caller should surface a conflict and let the auditor retry against
// fresh data; nothing is committed.
func (s *AuditService) ApplyAudit(id uint, addedQty float64, auditor string) (*models.PackingEntry, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := ApplyAuditEntry(entry, addedQty, auditor, time.Now()); err != nil {
		return nil, err
	}
	if err := s.repo.SaveAudited(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Reject loads the entry and records the explicit full reject.
func (s *AuditService) Reject(id uint, auditor string) (*models.PackingEntry, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	RejectEntry(entry, auditor, time.Now())
	if err := s.repo.SaveAudited(entry); err != nil {
		return nil, err
	}
	return entry, nil
}
