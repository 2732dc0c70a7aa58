package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"packing-app/models"
	"packing-app/services"
)

// GroupController serves both classification axes: groups and subgroups.
type GroupController struct {
	DB *gorm.DB
}

func NewGroupController(DB *gorm.DB) *GroupController {
	return &GroupController{DB: DB}
}

func (c *GroupController) GetAllGroups(ctx *fiber.Ctx) error {
	var groups []models.Group
	if err := c.DB.Order("name asc").Find(&groups).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": groups})
}

func (c *GroupController) CreateGroup(ctx *fiber.Ctx) error {
	var input struct {
		Name string `json:"name"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	name := services.CleanName(input.Name)
	if name == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	var existing models.Group
	if err := c.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Group already exists"})
	}

	group := models.Group{Name: name}
	if err := c.DB.Create(&group).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Group created successfully", "data": group})
}

func (c *GroupController) DeleteGroup(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	if err := c.DB.Delete(&models.Group{}, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Group deleted successfully"})
}

func (c *GroupController) GetAllSubGroups(ctx *fiber.Ctx) error {
	var subGroups []models.SubGroup
	if err := c.DB.Order("name asc").Find(&subGroups).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": subGroups})
}

func (c *GroupController) CreateSubGroup(ctx *fiber.Ctx) error {
	var input struct {
		Name string `json:"name"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	name := services.CleanName(input.Name)
	if name == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	var existing models.SubGroup
	if err := c.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "SubGroup already exists"})
	}

	subGroup := models.SubGroup{Name: name}
	if err := c.DB.Create(&subGroup).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "SubGroup created successfully", "data": subGroup})
}

func (c *GroupController) DeleteSubGroup(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	if err := c.DB.Delete(&models.SubGroup{}, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "SubGroup deleted successfully"})
}
