// file: internals/features/courses/materials/controller/material_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseDto "studenthub_backend/internals/features/courses/courses/dto"
	courseModel "studenthub_backend/internals/features/courses/courses/model"
	dto "studenthub_backend/internals/features/courses/materials/dto"
	model "studenthub_backend/internals/features/courses/materials/model"
	helper "studenthub_backend/internals/helpers"
)

type MaterialController struct {
	DB *gorm.DB
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{DB: db}
}

var validate = validator.New()

func (ctl *MaterialController) courseExists(code string) (bool, error) {
	var cnt int64
	err := ctl.DB.Model(&courseModel.CourseModel{}).
		Where("course_code = ?", code).
		Count(&cnt).Error
	return cnt > 0, err
}

// =========================================================
// LIST - GET /courses/:code/materials
// =========================================================
func (ctl *MaterialController) ListByCourse(c *fiber.Ctx) error {
	code := courseDto.NormalizeCourseCode(c.Params("code"))

	ok, err := ctl.courseExists(code)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check course")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.MaterialModel{}).
		Where("material_course_code = ?", code)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count materials")
	}

	var rows []model.MaterialModel
	if err := tx.
		Order("material_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch materials")
	}

	pagination := helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit)
	return helper.JsonList(c, "Materials fetched successfully", dto.ToMaterialResponses(rows), pagination)
}

// =========================================================
// DETAIL - GET /materials/:id
// =========================================================
func (ctl *MaterialController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.MaterialModel
	if err := ctl.DB.First(&m, "material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch material")
	}
	return helper.JsonOK(c, "Material fetched successfully", dto.ToMaterialResponse(&m))
}

// =========================================================
// REGISTER - POST /courses/:code/materials
// (the file itself is already in storage; this records it)
// =========================================================
func (ctl *MaterialController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	code := courseDto.NormalizeCourseCode(c.Params("code"))

	ok, err := ctl.courseExists(code)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check course")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	var req dto.CreateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(code, userID)
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register material")
	}
	return helper.JsonCreated(c, "Material registered successfully", dto.ToMaterialResponse(m))
}

// =========================================================
// DELETE (soft) - DELETE /materials/:id
// owner or staff; also reached by the moderation cascade
// =========================================================
func (ctl *MaterialController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.MaterialModel
	if err := ctl.DB.First(&m, "material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch material")
	}

	if m.MaterialUserID != userID && !helper.IsStaff(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the uploader or staff may delete this material")
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete material")
	}

	return helper.JsonDeleted(c, "Material deleted successfully", fiber.Map{
		"material_id": id,
	})
}
