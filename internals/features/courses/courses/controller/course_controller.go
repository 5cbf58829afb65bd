// file: internals/features/courses/courses/controller/course_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dto "studenthub_backend/internals/features/courses/courses/dto"
	model "studenthub_backend/internals/features/courses/courses/model"
	helper "studenthub_backend/internals/helpers"
)

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

var validate = validator.New()

// =========================================================
// LIST - GET /courses?q=&tag=&active=
// =========================================================
func (ctl *CourseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.CourseModel{})

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("lower(course_name) LIKE ? OR lower(course_code) LIKE ?", like, like)
	}
	if tag := strings.ToLower(strings.TrimSpace(c.Query("tag"))); tag != "" {
		tx = tx.Where("course_tags @> ?", pq.StringArray{tag})
	}
	if active := strings.TrimSpace(c.Query("active")); active != "" {
		tx = tx.Where("course_is_active = ?", active == "true" || active == "1")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count courses")
	}

	var rows []model.CourseModel
	if err := tx.
		Order("course_code ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	pagination := helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit)
	return helper.JsonList(c, "Courses fetched successfully", dto.ToCourseResponses(rows), pagination)
}

// =========================================================
// DETAIL - GET /courses/:code
// =========================================================
func (ctl *CourseController) GetByCode(c *fiber.Ctx) error {
	code := dto.NormalizeCourseCode(c.Params("code"))
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course code is required")
	}

	var m model.CourseModel
	if err := ctl.DB.First(&m, "course_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}
	return helper.JsonOK(c, "Course fetched successfully", dto.ToCourseResponse(&m))
}

// =========================================================
// CREATE - POST /courses (admin)
// =========================================================
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()

	// unique course_code check (soft-delete aware)
	var cnt int64
	if err := ctl.DB.Model(&model.CourseModel{}).
		Where("course_code = ? AND course_deleted_at IS NULL", m.CourseCode).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check course code")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Course code already in use")
	}

	if err := ctl.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Course code already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.JsonCreated(c, "Course created successfully", dto.ToCourseResponse(m))
}

// =========================================================
// PATCH - PATCH /courses/:code (admin)
// =========================================================
func (ctl *CourseController) Patch(c *fiber.Ctx) error {
	code := dto.NormalizeCourseCode(c.Params("code"))
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course code is required")
	}

	var req dto.PatchCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	var m model.CourseModel
	if err := ctl.DB.First(&m, "course_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "No changes", dto.ToCourseResponse(&m))
	}

	if err := ctl.DB.Model(&m).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}

	// re-read so the response carries fresh values
	if err := ctl.DB.First(&m, "course_id = ?", m.CourseID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}
	return helper.JsonUpdated(c, "Course updated successfully", dto.ToCourseResponse(&m))
}

// =========================================================
// DELETE (soft) - DELETE /courses/:code (admin)
// =========================================================
func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	code := dto.NormalizeCourseCode(c.Params("code"))
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course code is required")
	}

	var m model.CourseModel
	if err := ctl.DB.First(&m, "course_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	// soft delete keeps the discussion history reachable for audits
	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}

	return helper.JsonDeleted(c, "Course deleted successfully", fiber.Map{
		"course_code": code,
	})
}
