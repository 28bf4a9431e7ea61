package discussion

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/penshopx/PUB-Latih-LMS1/internal/app_errors"
	"github.com/penshopx/PUB-Latih-LMS1/internal/models"
	"github.com/penshopx/PUB-Latih-LMS1/pkg/logger"
)

type commentRepo interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	CommentsByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Comment, error)
}

type catalog interface {
	CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
}

type directory interface {
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type DiscussionService struct {
	log       logger.Log
	comments  commentRepo
	catalog   catalog
	directory directory
}

func NewDiscussionService(log logger.Log, comments commentRepo, c catalog, d directory) *DiscussionService {
	return &DiscussionService{
		log:       log,
		comments:  comments,
		catalog:   c,
		directory: d,
	}
}

// AddComment posts a comment to a course discussion, snapshotting the
// author's name and avatar. New comments start with zero likes.
func (s *DiscussionService) AddComment(ctx context.Context, userID, courseID uuid.UUID,
	moduleID *uuid.UUID, text string) (*models.Comment, error) {

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, app_errors.ErrEmptyComment
	}
	if _, err := s.catalog.CourseByID(ctx, courseID); err != nil {
		return nil, err
	}
	user, err := s.directory.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		CourseID:   courseID,
		ModuleID:   moduleID,
		UserID:     userID,
		UserName:   user.Name,
		UserAvatar: user.Avatar,
		Text:       text,
		Likes:      0,
	}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// CourseComments lists a course's discussion newest-first, optionally
// narrowed to a single module.
func (s *DiscussionService) CourseComments(ctx context.Context, courseID uuid.UUID,
	moduleID *uuid.UUID) ([]models.Comment, error) {

	all, err := s.comments.CommentsByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if moduleID == nil {
		return all, nil
	}

	filtered := make([]models.Comment, 0, len(all))
	for _, c := range all {
		if c.ModuleID != nil && *c.ModuleID == *moduleID {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}
