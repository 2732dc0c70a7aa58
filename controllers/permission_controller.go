package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"packing-app/models"
)

type PermissionController struct {
	DB *gorm.DB
}

func NewPermissionController(DB *gorm.DB) *PermissionController {
	return &PermissionController{DB: DB}
}

// GetByRole returns the table columns the role's client may render.
func (c *PermissionController) GetByRole(ctx *fiber.Ctx) error {
	role := ctx.Params("role")

	var perm models.RolePermission
	if err := c.DB.Where("role = ?", role).First(&perm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No permissions for role"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": perm})
}

// Upsert replaces the role's allowed column list.
func (c *PermissionController) Upsert(ctx *fiber.Ctx) error {
	role := ctx.Params("role")

	var input struct {
		AllowedColumns []string `json:"allowedColumns"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var perm models.RolePermission
	err := c.DB.Where("role = ?", role).First(&perm).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		perm = models.RolePermission{Role: role, AllowedColumns: input.AllowedColumns}
		if err := c.DB.Create(&perm).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	case err != nil:
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	default:
		perm.AllowedColumns = input.AllowedColumns
		if err := c.DB.Save(&perm).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Permissions saved", "data": perm})
}
