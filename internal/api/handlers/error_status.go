package handlers

import (
	"errors"
	"prep-scheduler/domain"

	"github.com/gofiber/fiber/v2"
)

func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrWeatherUnavailable):
		return fiber.StatusBadGateway
	case errors.Is(err, domain.ErrEmptyPayload),
		errors.Is(err, domain.ErrInvalidDay),
		errors.Is(err, domain.ErrInvalidWeekday),
		errors.Is(err, domain.ErrCompositeItem):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
