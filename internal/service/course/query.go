package course

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/penshopx/PUB-Latih-LMS1/internal/models"
)

// CourseDetail is the full course plus a presigned thumbnail URL, used by
// the player and the course detail page.
type CourseDetail struct {
	models.Course
	ThumbnailURL string `json:"thumbnail_url"`
}

func (s *CourseService) CourseByID(ctx context.Context, id uuid.UUID) (*CourseDetail, error) {
	course, err := s.courseRepo.CourseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CourseDetail{Course: *course, ThumbnailURL: s.thumbnailURL(ctx, course.ThumbnailKey)}, nil
}

func (s *CourseService) CoursesPreview(ctx context.Context, count int, offset int) ([]models.CoursePreview, int, error) {
	courses, err := s.courseRepo.ListCourses(ctx, count, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.courseRepo.CountCourses(ctx)
	if err != nil {
		return nil, 0, err
	}

	previews := make([]models.CoursePreview, 0, len(courses))
	for _, c := range courses {
		previews = append(previews, s.preview(ctx, c))
	}
	return previews, total, nil
}

func (s *CourseService) SearchCoursesPreview(ctx context.Context, query string, count int, offset int) ([]models.CoursePreview, int, error) {
	ids, err := s.searchRepo.Search(ctx, query, count+offset)
	if err != nil {
		return nil, 0, fmt.Errorf("course search failed: %w", err)
	}

	if len(ids) > offset {
		ids = ids[offset:]
	} else {
		ids = nil
	}
	if len(ids) > count {
		ids = ids[:count]
	}
	if len(ids) == 0 {
		return []models.CoursePreview{}, 0, nil
	}

	total, err := s.searchRepo.Count(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("course search count failed: %w", err)
	}

	previews := make([]models.CoursePreview, 0, len(ids))
	for _, id := range ids {
		course, err := s.courseRepo.CourseByID(ctx, id)
		if err != nil {
			s.log.ErrorErr("search preview: failed to load course by id", err, "course_id", id)
			continue
		}
		previews = append(previews, s.preview(ctx, *course))
	}
	return previews, total, nil
}

func (s *CourseService) preview(ctx context.Context, c models.Course) models.CoursePreview {
	desc := c.Description
	if len(desc) > 200 {
		desc = desc[:200] + "…"
	}
	return models.CoursePreview{
		ID:               c.ID,
		Title:            c.Title,
		Description:      desc,
		Instructor:       c.Instructor,
		Category:         c.Category,
		ThumbnailURL:     s.thumbnailURL(ctx, c.ThumbnailKey),
		StudentsEnrolled: c.StudentsEnrolled,
		Rating:           c.Rating,
	}
}

func (s *CourseService) thumbnailURL(ctx context.Context, objectKey string) string {
	if objectKey == "" {
		return ""
	}
	url, err := s.thumbnailRepo.GetThumbnailURL(ctx, objectKey)
	if err != nil {
		s.log.ErrorErr("failed to get thumbnail URL", err)
		return ""
	}
	return url
}
