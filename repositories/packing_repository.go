package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"packing-app/models"
)

// ErrVersionConflict is returned when a versioned update matches no row,
// meaning another auditor got there first.
var ErrVersionConflict = errors.New("packing entry was modified by someone else")

type PackingRepository struct {
	DB *gorm.DB
}

func NewPackingRepository(db *gorm.DB) *PackingRepository {
	return &PackingRepository{DB: db}
}

type PackingFilter struct {
	SubmittedBy string
	StartDate   string
	EndDate     string
}

// ParseRangeBound interprets one bound of the creation-time filter. A
// bare date is taken as a local-day boundary; a full ISO timestamp is
// used verbatim. Both forms are accepted on the same endpoint.
func ParseRangeBound(value string, end bool) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		if end {
			return t.Add(24*time.Hour - time.Nanosecond), nil
		}
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD or RFC3339", value)
}

// List returns the ledger filtered by submitter and/or creation-time
// range, newest first. Clients re-read the whole list after every audit
// action instead of merging incrementally.
func (r *PackingRepository) List(filter PackingFilter) ([]models.PackingEntry, error) {
	query := r.DB.Model(&models.PackingEntry{})

	if filter.SubmittedBy != "" {
		query = query.Where("submitted_by = ?", filter.SubmittedBy)
	}
	if filter.StartDate != "" {
		start, err := ParseRangeBound(filter.StartDate, false)
		if err != nil {
			return nil, err
		}
		query = query.Where("created_at >= ?", start)
	}
	if filter.EndDate != "" {
		end, err := ParseRangeBound(filter.EndDate, true)
		if err != nil {
			return nil, err
		}
		query = query.Where("created_at <= ?", end)
	}

	var entries []models.PackingEntry
	if err := query.Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PackingRepository) GetByID(id uint) (*models.PackingEntry, error) {
	var entry models.PackingEntry
	if err := r.DB.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *PackingRepository) Create(entry *models.PackingEntry) error {
	return r.DB.Create(entry).Error
}

func (r *PackingRepository) BulkCreate(entries []models.PackingEntry) error {
	return r.DB.Create(&entries).Error
}

func (r *PackingRepository) Delete(id uint) error {
	return r.DB.Delete(&models.PackingEntry{}, id).Error
}

// SaveAudited persists the result of an audit action with an optimistic
// version check. A stale write returns ErrVersionConflict instead of
// silently overwriting a concurrent audit.
func (r *PackingRepository) SaveAudited(entry *models.PackingEntry) error {
	res := r.DB.Model(&models.PackingEntry{}).
		Where("id = ? AND version = ?", entry.ID, entry.Version).
		Updates(map[string]interface{}{
			"status":           entry.Status,
			"approved_qty":     entry.ApprovedQty,
			"not_approved_qty": entry.NotApprovedQty,
			"auditor_remarks":  entry.AuditorRemarks,
			"audited_by":       entry.AuditedBy,
			"audited_at":       entry.AuditedAt,
			"version":          entry.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	entry.Version++
	return nil
}

// SaveEdited persists a general edit with the same optimistic version
// check the audit path uses.
func (r *PackingRepository) SaveEdited(entry *models.PackingEntry) error {
	res := r.DB.Model(&models.PackingEntry{}).
		Where("id = ? AND version = ?", entry.ID, entry.Version).
		Updates(map[string]interface{}{
			"item_name":      entry.ItemName,
			"qty":            entry.Qty,
			"packing_type":   entry.PackingType,
			"packing_status": entry.PackingStatus,
			"status":         entry.Status,
			"version":        entry.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	entry.Version++
	return nil
}

// SetPrintFlags toggles the print request/confirm pair together.
func (r *PackingRepository) SetPrintFlags(id uint, requested, confirmed bool) error {
	return r.DB.Model(&models.PackingEntry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_print_requested": requested,
			"is_print_confirmed": confirmed,
		}).Error
}

// BulkSetPrintConfirmed flips the confirmed flag on every currently
// requested entry (the print queue).
func (r *PackingRepository) BulkSetPrintConfirmed(confirmed bool) (int64, error) {
	res := r.DB.Model(&models.PackingEntry{}).
		Where("is_print_requested = ?", true).
		Update("is_print_confirmed", confirmed)
	return res.RowsAffected, res.Error
}

// ClearPrintQueue clears both flags on all confirmed entries.
func (r *PackingRepository) ClearPrintQueue() (int64, error) {
	res := r.DB.Model(&models.PackingEntry{}).
		Where("is_print_confirmed = ?", true).
		Updates(map[string]interface{}{
			"is_print_requested": false,
			"is_print_confirmed": false,
		})
	return res.RowsAffected, res.Error
}
