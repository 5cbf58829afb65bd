// file: internals/features/discussions/reports/controller/report_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"studenthub_backend/internals/features/discussions/reports/dto"
	"studenthub_backend/internals/features/discussions/reports/model"
	"studenthub_backend/internals/features/discussions/reports/service"
	helper "studenthub_backend/internals/helpers"
)

type ReportController struct {
	Service service.ModerationService
}

func NewReportController(svc service.ModerationService) *ReportController {
	return &ReportController{Service: svc}
}

var validate = validator.New()

// =========================================================
// FILE - POST /reports
// =========================================================
func (ctl *ReportController) File(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Service.File(c.Context(), req.ToInput(userID))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Report filed successfully", dto.ToReportResponse(m))
}

// =========================================================
// LIST - GET /reports?status=pending|processed|all (staff)
// =========================================================
func (ctl *ReportController) List(c *fiber.Ctx) error {
	rows, err := ctl.Service.List(c.Context(), c.Query("status"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Reports fetched successfully", dto.ToEnrichedReportResponses(rows), nil)
}

// =========================================================
// PROCESS - PUT/PATCH /reports/:id (staff)
// =========================================================
func (ctl *ReportController) Process(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report ID")
	}

	var req dto.ProcessReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Service.Process(c.Context(), id, model.ReportStatus(req.ReportAction), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Report processed successfully", dto.ToReportResponse(m))
}
