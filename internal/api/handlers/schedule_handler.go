package handlers

import (
	"prep-scheduler/domain"
	"prep-scheduler/internal/api/presenters"
	"prep-scheduler/internal/utils/export"
	"prep-scheduler/pkg/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ScheduleHandler interface {
		GetSchedule(c *fiber.Ctx) error
		ExportSchedule(c *fiber.Ctx) error
		GetTaskHistory(c *fiber.Ctx) error
		CompleteTask(c *fiber.Ctx) error
		DeleteTask(c *fiber.Ctx) error
		MoveTask(c *fiber.Ctx) error
		UpdateTaskQty(c *fiber.Ctx) error
	}

	scheduleHandler struct {
		scheduleService schedule.ScheduleService
		validator       *validator.Validate
	}
)

func NewScheduleHandler(scheduleService schedule.ScheduleService, validator *validator.Validate) ScheduleHandler {
	return &scheduleHandler{
		scheduleService: scheduleService,
		validator:       validator,
	}
}

func (h *scheduleHandler) GetSchedule(c *fiber.Ctx) error {
	tasks, err := h.scheduleService.GetSchedule(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetSchedule, err)
	}

	return presenters.SuccessResponse(c, tasks, fiber.StatusOK, domain.MessageSuccessGetSchedule)
}

func (h *scheduleHandler) ExportSchedule(c *fiber.Ctx) error {
	buf, err := h.scheduleService.ExportSchedule(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedExportSchedule, err)
	}

	c.Set(fiber.HeaderContentType, export.ContentTypeXLSX)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="schedule.xlsx"`)
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}

func (h *scheduleHandler) GetTaskHistory(c *fiber.Ctx) error {
	events, err := h.scheduleService.ListTaskEvents(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetTaskHistory, err)
	}

	return presenters.SuccessResponse(c, events, fiber.StatusOK, domain.MessageSuccessGetTaskHistory)
}

func (h *scheduleHandler) CompleteTask(c *fiber.Ctx) error {
	resp, err := h.scheduleService.CompleteTask(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCompleteTask, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessCompleteTask)
}

func (h *scheduleHandler) DeleteTask(c *fiber.Ctx) error {
	task, err := h.scheduleService.DeleteTask(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteTask, err)
	}

	return presenters.SuccessResponse(c, task, fiber.StatusOK, domain.MessageSuccessDeleteTask)
}

func (h *scheduleHandler) MoveTask(c *fiber.Ctx) error {
	req := new(domain.MoveTaskRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMoveTask, domain.ErrInvalidWeekday)
	}

	resp, err := h.scheduleService.MoveTask(c.Context(), c.Params("id"), req.NewWeekday)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedMoveTask, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessMoveTask)
}

func (h *scheduleHandler) UpdateTaskQty(c *fiber.Ctx) error {
	req := new(domain.UpdateTaskQtyRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTaskQty, err)
	}

	resp, err := h.scheduleService.UpdateTaskQty(c.Context(), c.Params("id"), *req.NewQty)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateTaskQty, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessUpdateTaskQty)
}
