package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/penshopx/PUB-Latih-LMS1/internal/app_errors"
	"github.com/penshopx/PUB-Latih-LMS1/internal/models"
	"github.com/penshopx/PUB-Latih-LMS1/pkg/logger"
)

type LedgerService interface {
	Enroll(ctx context.Context, studentID, courseID uuid.UUID)
	CompleteModule(ctx context.Context, studentID, courseID, moduleID uuid.UUID, quizScore *int)
	Progress(studentID, courseID uuid.UUID) (models.Enrollment, bool)
	EnrollmentsByStudent(studentID uuid.UUID) []models.Enrollment
	EnrollmentsByCourse(courseID uuid.UUID) []models.Enrollment
	Certificates() []models.Certificate
}

type ProgressHandler struct {
	log     logger.Log
	service LedgerService
}

func NewProgressHandler(log logger.Log, s LedgerService) *ProgressHandler {
	return &ProgressHandler{
		log:     log,
		service: s,
	}
}

func (h *ProgressHandler) Enroll(c *gin.Context) {
	studentID, ok := clientID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}

	h.service.Enroll(c.Request.Context(), studentID, courseID)

	enrollment, ok := h.service.Progress(studentID, courseID)
	if !ok {
		// unknown course or student, the ledger skipped the write
		c.JSON(http.StatusNotFound, gin.H{"error": app_errors.ErrCourseNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

type completeModuleRequest struct {
	QuizScore *int `json:"quiz_score" binding:"omitempty,min=0,max=100"`
}

func (h *ProgressHandler) CompleteModule(c *gin.Context) {
	studentID, ok := clientID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}
	moduleID, err := uuid.Parse(c.Param("module_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid module_id"})
		return
	}

	// body is optional, only quiz modules carry a score
	var req completeModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.service.CompleteModule(c.Request.Context(), studentID, courseID, moduleID, req.QuizScore)

	enrollment, ok := h.service.Progress(studentID, courseID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": app_errors.ErrNotEnrolled.Error()})
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

func (h *ProgressHandler) MyCourseProgress(c *gin.Context) {
	studentID, ok := clientID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}

	enrollment, ok := h.service.Progress(studentID, courseID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": app_errors.ErrNotEnrolled.Error()})
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

func (h *ProgressHandler) MyProgress(c *gin.Context) {
	studentID, ok := clientID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrollments": h.service.EnrollmentsByStudent(studentID)})
}

func (h *ProgressHandler) CourseProgress(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrollments": h.service.EnrollmentsByCourse(courseID)})
}

func (h *ProgressHandler) StudentProgress(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("student_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student_id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrollments": h.service.EnrollmentsByStudent(studentID)})
}

func (h *ProgressHandler) Certificates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"certificates": h.service.Certificates()})
}
