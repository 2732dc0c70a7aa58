package controllers

import (
	"errors"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"packing-app/importer"
	"packing-app/models"
	"packing-app/services"
)

type ItemController struct {
	DB *gorm.DB
}

func NewItemController(DB *gorm.DB) *ItemController {
	return &ItemController{DB: DB}
}

type itemInput struct {
	ID       uint   `json:"id"`
	Barcode  string `json:"barcode"`
	ItemName string `json:"itemName" validate:"required,min=2"`
	Group    string `json:"group"`
	SubGroup string `json:"subGroup"`
	Short    string `json:"short"`
	Unit     string `json:"unit" validate:"required"`
}

func (c *ItemController) GetAllItems(ctx *fiber.Ctx) error {
	var items []models.Item
	if err := c.DB.Order("item_name asc").Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": items})
}

func (c *ItemController) GetItemByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var item models.Item
	if err := c.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": item})
}

func (c *ItemController) CreateItem(ctx *fiber.Ctx) error {

	var input itemInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Duplicate item names are allowed on purpose; the master is not
	// name-unique.
	item := models.Item{
		Barcode:   input.Barcode,
		ItemName:  services.CleanName(input.ItemName),
		Group:     services.CleanName(input.Group),
		SubGroup:  services.CleanName(input.SubGroup),
		Short:     input.Short,
		Unit:      input.Unit,
		CreatedBy: int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Item created successfully", "data": item})
}

func (c *ItemController) UpdateItem(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var item models.Item
	if err := c.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input itemInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item.Barcode = input.Barcode
	item.ItemName = services.CleanName(input.ItemName)
	item.Group = services.CleanName(input.Group)
	item.SubGroup = services.CleanName(input.SubGroup)
	item.Short = input.Short
	item.Unit = input.Unit
	item.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item updated successfully", "data": item})
}

func (c *ItemController) DeleteItem(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.DB.Delete(&models.Item{}, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item deleted successfully"})
}

// BulkImport ingests raw CSV text through the tolerant normalizer and
// reports per-row results verbatim.
func (c *ItemController) BulkImport(ctx *fiber.Ctx) error {
	var input struct {
		Data string `json:"data"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := importer.ParseItemCSV(input.Data)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))
	failed := append([]importer.RowError{}, result.Skipped...)
	imported := 0
	for _, row := range result.Rows {
		item := models.Item{
			Barcode:   row.Barcode,
			ItemName:  services.CleanName(row.ItemName),
			Group:     services.CleanName(row.Group),
			SubGroup:  services.CleanName(row.SubGroup),
			Short:     row.Short,
			Unit:      row.Unit,
			CreatedBy: userID,
		}
		if err := c.DB.Create(&item).Error; err != nil {
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

// Upload imports an Excel sheet of items, first row headers:
// ItemName, Group, SubGroup, Barcode, Unit, Short.
func (c *ItemController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing file"})
	}

	fileContent, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to open file"})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to read Excel file"})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No sheets found in Excel file"})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read rows"})
	}
	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File has no data rows"})
	}

	userID := int(ctx.Locals("userID").(float64))
	var failed []importer.RowError
	imported := 0
	for i, row := range rows[1:] {
		get := func(idx int) string {
			if idx < len(row) {
				return row[idx]
			}
			return ""
		}
		name := services.CleanName(get(0))
		if name == "" {
			failed = append(failed, importer.RowError{Index: i, Reason: "empty item name"})
			continue
		}
		item := models.Item{
			ItemName:  name,
			Group:     services.CleanName(get(1)),
			SubGroup:  services.CleanName(get(2)),
			Barcode:   get(3),
			Unit:      get(4),
			Short:     get(5),
			CreatedBy: userID,
		}
		if err := c.DB.Create(&item).Error; err != nil {
			failed = append(failed, importer.RowError{Index: i, Reason: err.Error()})
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
