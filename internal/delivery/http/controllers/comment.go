package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/penshopx/PUB-Latih-LMS1/internal/app_errors"
	"github.com/penshopx/PUB-Latih-LMS1/internal/models"
	"github.com/penshopx/PUB-Latih-LMS1/pkg/logger"
)

type DiscussionService interface {
	AddComment(ctx context.Context, userID, courseID uuid.UUID, moduleID *uuid.UUID, text string) (*models.Comment, error)
	CourseComments(ctx context.Context, courseID uuid.UUID, moduleID *uuid.UUID) ([]models.Comment, error)
}

type CommentHandler struct {
	log     logger.Log
	service DiscussionService
}

func NewCommentHandler(log logger.Log, s DiscussionService) *CommentHandler {
	return &CommentHandler{
		log:     log,
		service: s,
	}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}

	var moduleID *uuid.UUID
	if raw := c.Query("module_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid module_id"})
			return
		}
		moduleID = &id
	}

	comments, err := h.service.CourseComments(c.Request.Context(), courseID, moduleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

type addCommentRequest struct {
	ModuleID *uuid.UUID `json:"module_id"`
	Text     string     `json:"text" binding:"required"`
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	userID, ok := clientID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}

	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), userID, courseID, req.ModuleID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrEmptyComment):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrCourseNotFound), errors.Is(err, app_errors.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, comment)
}
