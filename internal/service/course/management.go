package course

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/penshopx/PUB-Latih-LMS1/internal/app_errors"
	"github.com/penshopx/PUB-Latih-LMS1/internal/models"
)

const maxThumbnailSizeBytes = 5 << 20

func (s *CourseService) CreateCourse(ctx context.Context, course models.Course) (uuid.UUID, error) {
	for i := range course.Modules {
		if course.Modules[i].ID == uuid.Nil {
			course.Modules[i].ID = uuid.New()
		}
	}
	id, err := s.courseRepo.NewCourse(ctx, &course)
	if err != nil {
		return uuid.Nil, err
	}
	if err := s.searchRepo.Index(ctx, course); err != nil {
		s.log.ErrorErr("failed to index course", err, "course_id", id)
	}
	return id, nil
}

func (s *CourseService) UpdateCourse(ctx context.Context, course models.Course) error {
	for i := range course.Modules {
		if course.Modules[i].ID == uuid.Nil {
			course.Modules[i].ID = uuid.New()
		}
	}
	if err := s.courseRepo.UpdateCourse(ctx, &course); err != nil {
		return err
	}
	if err := s.searchRepo.Index(ctx, course); err != nil {
		s.log.ErrorErr("failed to reindex course", err, "course_id", course.ID)
	}
	return nil
}

// DeleteCourse removes the catalog row first; search and thumbnail cleanup
// failures are logged, not surfaced, since the course is already gone.
func (s *CourseService) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	course, err := s.courseRepo.CourseByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.courseRepo.DeleteCourse(ctx, id); err != nil {
		return err
	}
	if err := s.searchRepo.Delete(ctx, id); err != nil {
		s.log.ErrorErr("failed to remove course from index", err, "course_id", id)
	}
	if course.ThumbnailKey != "" {
		if err := s.thumbnailRepo.DeleteThumbnail(ctx, course.ThumbnailKey); err != nil {
			s.log.ErrorErr("failed to remove course thumbnail", err, "course_id", id)
		}
	}
	return nil
}

func (s *CourseService) UploadThumbnail(ctx context.Context, courseID uuid.UUID, filename string,
	reader io.Reader, size int64, contentType string) error {

	if size > maxThumbnailSizeBytes {
		return app_errors.ErrFileSize
	}
	if !strings.HasPrefix(contentType, "image/") {
		return app_errors.ErrNotImage
	}
	if _, err := s.courseRepo.CourseByID(ctx, courseID); err != nil {
		return err
	}

	objectKey, err := s.thumbnailRepo.UploadThumbnail(ctx, courseID, filename, reader, size, contentType)
	if err != nil {
		return err
	}
	return s.courseRepo.UpdateCourseThumbnail(ctx, courseID, objectKey)
}
