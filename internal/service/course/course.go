package course

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/penshopx/PUB-Latih-LMS1/internal/models"
	"github.com/penshopx/PUB-Latih-LMS1/pkg/logger"
)

type courseRepo interface {
	NewCourse(ctx context.Context, course *models.Course) (uuid.UUID, error)
	CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	ListCourses(ctx context.Context, limit int, offset int) ([]models.Course, error)
	CountCourses(ctx context.Context) (int, error)
	UpdateCourseThumbnail(ctx context.Context, courseID uuid.UUID, thumbnailKey string) error
	DeleteCourse(ctx context.Context, id uuid.UUID) error
}

type searchRepo interface {
	Index(ctx context.Context, course models.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, query string, size int) ([]uuid.UUID, error)
	Count(ctx context.Context, query string) (int, error)
}

type thumbnailRepo interface {
	GetThumbnailURL(ctx context.Context, objectKey string) (string, error)
	UploadThumbnail(ctx context.Context, courseID uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (objectKey string, err error)
	DeleteThumbnail(ctx context.Context, objectKey string) error
}

type CourseService struct {
	log           logger.Log
	courseRepo    courseRepo
	searchRepo    searchRepo
	thumbnailRepo thumbnailRepo
}

func NewCourseService(log logger.Log, courseRepo courseRepo, searchRepo searchRepo, thumbnailRepo thumbnailRepo) *CourseService {
	return &CourseService{
		log:           log,
		courseRepo:    courseRepo,
		searchRepo:    searchRepo,
		thumbnailRepo: thumbnailRepo,
	}
}
