package controllers

import (
	"errors"
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"packing-app/importer"
	"packing-app/models"
	"packing-app/repositories"
	"packing-app/services"
)

type PackingController struct {
	DB    *gorm.DB
	Repo  *repositories.PackingRepository
	Audit *services.AuditService
}

func NewPackingController(DB *gorm.DB) *PackingController {
	repo := repositories.NewPackingRepository(DB)
	return &PackingController{
		DB:    DB,
		Repo:  repo,
		Audit: services.NewAuditService(repo),
	}
}

type packingInput struct {
	ItemName      string  `json:"itemName" validate:"required,min=2"`
	Qty           float64 `json:"qty" validate:"required,gt=0"`
	PackingType   string  `json:"packingType" validate:"required,oneof=Box Gatta"`
	PackingStatus string  `json:"packingStatus" validate:"omitempty,oneof=New Repack"`
}

// GetAllPacking lists the ledger newest first, filtered by submitter
// and/or creation-time range. Range bounds accept bare dates (local-day
// boundaries) or full ISO timestamps (used verbatim).
func (c *PackingController) GetAllPacking(ctx *fiber.Ctx) error {
	filter := repositories.PackingFilter{
		SubmittedBy: ctx.Query("submittedBy"),
		StartDate:   ctx.Query("startDate"),
		EndDate:     ctx.Query("endDate"),
	}

	entries, err := c.Repo.List(filter)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": entries})
}

func (c *PackingController) CreatePacking(ctx *fiber.Ctx) error {
	var input packingInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	packingStatus := input.PackingStatus
	if packingStatus == "" {
		packingStatus = models.PackingStatusNew
	}

	entry := models.PackingEntry{
		ItemName:      services.CleanName(input.ItemName),
		Qty:           input.Qty,
		PackingType:   input.PackingType,
		PackingStatus: packingStatus,
		SubmittedBy:   ctx.Locals("username").(string),
		Status:        models.StatusPending,
	}

	if err := c.Repo.Create(&entry); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Packing entry created successfully", "data": entry})
}

func (c *PackingController) UpdatePacking(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	entry, err := c.Repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Packing entry not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input packingInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	services.ApplyEntryEdit(entry, input.ItemName, input.Qty, input.PackingType, input.PackingStatus)

	if err := c.Repo.SaveEdited(entry); err != nil {
		if errors.Is(err, repositories.ErrVersionConflict) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Packing entry updated successfully", "data": entry})
}

// AuditPacking records one audit action: either a cumulative partial
// approval or the explicit full reject. Stale versions are rejected with
// a conflict so concurrent auditors cannot silently overwrite each other.
func (c *PackingController) AuditPacking(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		AddedQty float64 `json:"addedQty"`
		Reject   bool    `json:"reject"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	auditor := ctx.Locals("username").(string)

	var entry *models.PackingEntry
	if input.Reject {
		entry, err = c.Audit.Reject(uint(id), auditor)
	} else {
		entry, err = c.Audit.ApplyAudit(uint(id), input.AddedQty, auditor)
	}

	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Packing entry not found"})
		case errors.Is(err, services.ErrNegativeAuditQty), errors.Is(err, services.ErrEntryRejected):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, repositories.ErrVersionConflict):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Audit recorded successfully", "data": entry})
}

func (c *PackingController) DeletePacking(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.Repo.Delete(uint(id)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Packing entry deleted successfully"})
}

// TogglePrint flips isPrintRequested and isPrintConfirmed together.
func (c *PackingController) TogglePrint(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	entry, err := c.Repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Packing entry not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	value := !entry.IsPrintRequested
	if err := c.Repo.SetPrintFlags(entry.ID, value, value); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	entry.IsPrintRequested = value
	entry.IsPrintConfirmed = value
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Print flags updated", "data": entry})
}

func (c *PackingController) BulkPrintConfirm(ctx *fiber.Ctx) error {
	count, err := c.Repo.BulkSetPrintConfirmed(true)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "confirmed": count})
}

func (c *PackingController) BulkPrintClear(ctx *fiber.Ctx) error {
	count, err := c.Repo.ClearPrintQueue()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "cleared": count})
}

// BulkImport ingests raw CSV text of packing entries. Imported dates
// become the entry's creation time so the date-range filter sees them.
func (c *PackingController) BulkImport(ctx *fiber.Ctx) error {
	var input struct {
		Data string `json:"data"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := importer.ParsePackingCSV(input.Data)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	submitter := ctx.Locals("username").(string)
	failed := append([]importer.RowError{}, result.Skipped...)
	imported := 0
	for _, row := range result.Rows {
		entry := models.PackingEntry{
			ItemName:       services.CleanName(row.ItemName),
			Qty:            row.Qty,
			PackingType:    row.PackingType,
			Status:         row.Status,
			ApprovedQty:    row.ApprovedQty,
			NotApprovedQty: row.NotApprovedQty,
			SubmittedBy:    row.SubmittedBy,
		}
		if entry.SubmittedBy == "" {
			entry.SubmittedBy = submitter
		}
		if row.Date != "" {
			if t, err := time.ParseInLocation("2006-01-02", row.Date, time.Local); err == nil {
				entry.CreatedAt = t
			}
		}
		if err := c.Repo.Create(&entry); err != nil {
			failed = append(failed, importer.RowError{Index: row.Index, Reason: err.Error()})
			continue
		}
		imported++
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"imported": imported,
		"failed":   failed,
	})
}
