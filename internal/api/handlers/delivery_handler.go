package handlers

import (
	"prep-scheduler/domain"
	"prep-scheduler/internal/api/presenters"
	"prep-scheduler/pkg/delivery"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DeliveryHandler interface {
		ComputeDelivery(c *fiber.Ctx) error
		ConfirmDelivery(c *fiber.Ctx) error
	}

	deliveryHandler struct {
		deliveryService delivery.DeliveryService
		validator       *validator.Validate
	}
)

func NewDeliveryHandler(deliveryService delivery.DeliveryService, validator *validator.Validate) DeliveryHandler {
	return &deliveryHandler{
		deliveryService: deliveryService,
		validator:       validator,
	}
}

func (h *deliveryHandler) ComputeDelivery(c *fiber.Ctx) error {
	req := new(domain.DeliveryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedComputeDelivery, err)
	}

	plan, err := h.deliveryService.ComputeDelivery(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedComputeDelivery, err)
	}

	return presenters.SuccessResponse(c, plan, fiber.StatusOK, domain.MessageSuccessComputeDelivery)
}

func (h *deliveryHandler) ConfirmDelivery(c *fiber.Ctx) error {
	req := new(domain.ConfirmDeliveryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConfirmDelivery, err)
	}

	inv, err := h.deliveryService.ConfirmDelivery(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedConfirmDelivery, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"inventory": inv}, fiber.StatusOK, domain.MessageSuccessConfirmDelivery)
}
