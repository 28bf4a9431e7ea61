package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/penshopx/PUB-Latih-LMS1/internal/app_errors"
	"github.com/penshopx/PUB-Latih-LMS1/internal/models"
	"github.com/penshopx/PUB-Latih-LMS1/internal/service/course"
	"github.com/penshopx/PUB-Latih-LMS1/pkg/logger"
)

const (
	defaultPreviewCount = 20
	maxPreviewCount     = 100
)

type CourseService interface {
	CourseByID(ctx context.Context, id uuid.UUID) (*course.CourseDetail, error)
	CoursesPreview(ctx context.Context, count, offset int) ([]models.CoursePreview, int, error)
	SearchCoursesPreview(ctx context.Context, query string, count, offset int) ([]models.CoursePreview, int, error)
	CreateCourse(ctx context.Context, course models.Course) (uuid.UUID, error)
	UpdateCourse(ctx context.Context, course models.Course) error
	DeleteCourse(ctx context.Context, id uuid.UUID) error
	UploadThumbnail(ctx context.Context, courseID uuid.UUID, filename string,
		reader io.Reader, size int64, contentType string) error
}

type CourseHandler struct {
	log     logger.Log
	service CourseService
}

func NewCourseHandler(log logger.Log, s CourseService) *CourseHandler {
	return &CourseHandler{
		log:     log,
		service: s,
	}
}

func pagination(c *gin.Context) (count int, offset int) {
	count, err := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(defaultPreviewCount)))
	if err != nil || count <= 0 || count > maxPreviewCount {
		count = defaultPreviewCount
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return count, offset
}

func (h *CourseHandler) ListCourses(c *gin.Context) {
	count, offset := pagination(c)

	previews, total, err := h.service.CoursesPreview(c.Request.Context(), count, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": previews, "total": total})
}

func (h *CourseHandler) SearchCourses(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query param q is required"})
		return
	}
	count, offset := pagination(c)

	previews, total, err := h.service.SearchCoursesPreview(c.Request.Context(), query, count, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": previews, "total": total})
}

func (h *CourseHandler) CourseByID(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}

	detail, err := h.service.CourseByID(c.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, app_errors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

type courseModuleRequest struct {
	Title    string `json:"title" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=video quiz text live"`
	Duration string `json:"duration"`
}

type courseRequest struct {
	Title       string                `json:"title" binding:"required"`
	Description string                `json:"description"`
	Instructor  string                `json:"instructor" binding:"required"`
	Category    string                `json:"category" binding:"required"`
	Modules     []courseModuleRequest `json:"modules"`
}

func (r courseRequest) toModel() models.Course {
	modules := make([]models.CourseModule, 0, len(r.Modules))
	for _, m := range r.Modules {
		modules = append(modules, models.CourseModule{
			Title:    m.Title,
			Type:     m.Type,
			Duration: m.Duration,
		})
	}
	return models.Course{
		Title:       r.Title,
		Description: r.Description,
		Instructor:  r.Instructor,
		Category:    r.Category,
		Modules:     modules,
	}
}

func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.service.CreateCourse(c.Request.Context(), req.toModel())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"course_id": id})
}

func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}

	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course := req.toModel()
	course.ID = courseID
	if err := h.service.UpdateCourse(c.Request.Context(), course); err != nil {
		if errors.Is(err, app_errors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}

	if err := h.service.DeleteCourse(c.Request.Context(), courseID); err != nil {
		if errors.Is(err, app_errors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CourseHandler) UploadThumbnail(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}

	fileHeader, err := c.FormFile("thumbnail")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "thumbnail file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	err = h.service.UploadThumbnail(c.Request.Context(), courseID, fileHeader.Filename,
		file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrFileSize), errors.Is(err, app_errors.ErrNotImage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.Status(http.StatusOK)
}
