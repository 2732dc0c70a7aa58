package controllers

import (
	"errors"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"packing-app/importer"
	"packing-app/models"
	"packing-app/services"
)

type PartyController struct {
	DB *gorm.DB
}

func NewPartyController(DB *gorm.DB) *PartyController {
	return &PartyController{DB: DB}
}

type partyInput struct {
	ID      uint   `json:"id"`
	Name    string `json:"name" validate:"required,min=2"`
	Station string `json:"station"`
	Mobile  string `json:"mobile"`
}

func (c *PartyController) GetAllParties(ctx *fiber.Ctx) error {
	var parties []models.Party
	if err := c.DB.Order("name asc").Find(&parties).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": parties})
}

func (c *PartyController) CreateParty(ctx *fiber.Ctx) error {
	var input partyInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	party := models.Party{
		Name:      services.CleanName(input.Name),
		Station:   input.Station,
		Mobile:    input.Mobile,
		CreatedBy: int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&party).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Party created successfully", "data": party})
}

func (c *PartyController) UpdateParty(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var party models.Party
	if err := c.DB.First(&party, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Party not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input partyInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	party.Name = services.CleanName(input.Name)
	party.Station = input.Station
	party.Mobile = input.Mobile
	party.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&party).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Party updated successfully", "data": party})
}

func (c *PartyController) DeleteParty(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.DB.Delete(&models.Party{}, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Party deleted successfully"})
}

func (c *PartyController) BulkImport(ctx *fiber.Ctx) error {
	var input struct {
		Data string `json:"data"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := importer.ParsePartyCSV(input.Data)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))
	failed := append([]importer.RowError{}, result.Skipped...)
	imported := 0
	for _, row := range result.Rows {
		party := models.Party{
			Name:      services.CleanName(row.Name),
			Station:   row.Station,
			Mobile:    row.Mobile,
			CreatedBy: userID,
		}
		if err := c.DB.Create(&party).Error; err != nil {
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
