package handlers

import (
	"prep-scheduler/domain"
	"prep-scheduler/internal/api/presenters"
	"prep-scheduler/pkg/inventory"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InventoryHandler interface {
		GetInventory(c *fiber.Ctx) error
		UpdateInventory(c *fiber.Ctx) error
		UpdateDangerLevels(c *fiber.Ctx) error
	}

	inventoryHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewInventoryHandler(inventoryService inventory.InventoryService, validator *validator.Validate) InventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *inventoryHandler) GetInventory(c *fiber.Ctx) error {
	inv, err := h.inventoryService.GetInventory(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetInventory, err)
	}

	return presenters.SuccessResponse(c, inv, fiber.StatusOK, domain.MessageSuccessGetInventory)
}

func (h *inventoryHandler) UpdateInventory(c *fiber.Ctx) error {
	req := new(domain.UpdateInventoryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateInventory, err)
	}

	inv, err := h.inventoryService.UpdateQuantities(c.Context(), req.Updates)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateInventory, err)
	}

	return presenters.SuccessResponse(c, inv, fiber.StatusOK, domain.MessageSuccessUpdateInventory)
}

func (h *inventoryHandler) UpdateDangerLevels(c *fiber.Ctx) error {
	req := new(domain.UpdateDangerLevelsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDangerLevels, err)
	}

	inv, err := h.inventoryService.UpdateDangerLevels(c.Context(), req.DangerLevels)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateDangerLevels, err)
	}

	return presenters.SuccessResponse(c, inv, fiber.StatusOK, domain.MessageSuccessUpdateDangerLevels)
}
