package handlers

import (
	"prep-scheduler/domain"
	"prep-scheduler/internal/api/presenters"
	"prep-scheduler/pkg/leftover"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	LeftoverHandler interface {
		GetLeftovers(c *fiber.Ctx) error
		UpsertLeftovers(c *fiber.Ctx) error
	}

	leftoverHandler struct {
		leftoverService leftover.LeftoverService
		validator       *validator.Validate
	}
)

func NewLeftoverHandler(leftoverService leftover.LeftoverService, validator *validator.Validate) LeftoverHandler {
	return &leftoverHandler{
		leftoverService: leftoverService,
		validator:       validator,
	}
}

func (h *leftoverHandler) GetLeftovers(c *fiber.Ctx) error {
	leftovers, err := h.leftoverService.GetLeftovers(c.Context(), c.Params("day"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetLeftovers, err)
	}

	return presenters.SuccessResponse(c, leftovers, fiber.StatusOK, domain.MessageSuccessGetLeftovers)
}

func (h *leftoverHandler) UpsertLeftovers(c *fiber.Ctx) error {
	req := new(domain.UpsertLeftoversRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpsertLeftovers, err)
	}

	leftovers, err := h.leftoverService.UpsertLeftovers(c.Context(), req.Day, req.Leftovers)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpsertLeftovers, err)
	}

	return presenters.SuccessResponse(c, leftovers, fiber.StatusOK, domain.MessageSuccessUpsertLeftovers)
}
