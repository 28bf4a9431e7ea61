package discussion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/penshopx/PUB-Latih-LMS1/internal/app_errors"
	"github.com/penshopx/PUB-Latih-LMS1/internal/models"
	"github.com/penshopx/PUB-Latih-LMS1/pkg/logger"
)

type fakeCommentRepo struct {
	comments []models.Comment
}

func (f *fakeCommentRepo) CreateComment(_ context.Context, c *models.Comment) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	f.comments = append([]models.Comment{*c}, f.comments...)
	return nil
}

func (f *fakeCommentRepo) CommentsByCourse(_ context.Context, courseID uuid.UUID) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range f.comments {
		if c.CourseID == courseID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeCatalog struct {
	courses map[uuid.UUID]*models.Course
}

func (f *fakeCatalog) CourseByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, app_errors.ErrCourseNotFound
	}
	return c, nil
}

type fakeDirectory struct {
	users map[uuid.UUID]*models.User
}

func (f *fakeDirectory) UserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, app_errors.ErrUserNotFound
	}
	return u, nil
}

var testAuthor = &models.User{
	ID:     uuid.New(),
	Name:   "Siti Engineer",
	Avatar: "https://picsum.photos/100/100?random=7",
	Role:   models.LearnerRole,
}

func newTestService(courses ...*models.Course) (*DiscussionService, *fakeCommentRepo) {
	cat := &fakeCatalog{courses: map[uuid.UUID]*models.Course{}}
	for _, c := range courses {
		cat.courses[c.ID] = c
	}
	dir := &fakeDirectory{users: map[uuid.UUID]*models.User{testAuthor.ID: testAuthor}}
	repo := &fakeCommentRepo{}
	return NewDiscussionService(logger.New("local"), repo, cat, dir), repo
}

func TestAddCommentSnapshotsAuthor(t *testing.T) {
	ctx := context.Background()
	course := &models.Course{ID: uuid.New(), Title: "Teknologi Perkerasan Jalan"}
	moduleID := uuid.New()
	s, _ := newTestService(course)

	comment, err := s.AddComment(ctx, testAuthor.ID, course.ID, &moduleID, "Apakah suhu harus 25 derajat?")
	if err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}
	if comment.UserName != testAuthor.Name || comment.UserAvatar != testAuthor.Avatar {
		t.Errorf("author not snapshotted: %+v", comment)
	}
	if comment.Likes != 0 {
		t.Errorf("new comment likes = %d, want 0", comment.Likes)
	}
	if comment.ModuleID == nil || *comment.ModuleID != moduleID {
		t.Errorf("moduleID = %v, want %s", comment.ModuleID, moduleID)
	}
	if comment.ID == uuid.Nil || comment.CreatedAt.IsZero() {
		t.Errorf("id/timestamp not assigned: %+v", comment)
	}
}

func TestAddCommentRejectsEmptyText(t *testing.T) {
	ctx := context.Background()
	course := &models.Course{ID: uuid.New(), Title: "K3"}
	s, repo := newTestService(course)

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := s.AddComment(ctx, testAuthor.ID, course.ID, nil, text); !errors.Is(err, app_errors.ErrEmptyComment) {
			t.Errorf("AddComment(%q) error = %v, want %v", text, err, app_errors.ErrEmptyComment)
		}
	}
	if len(repo.comments) != 0 {
		t.Errorf("empty comments stored: %d", len(repo.comments))
	}
}

func TestAddCommentUnknownCourse(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService()

	_, err := s.AddComment(ctx, testAuthor.ID, uuid.New(), nil, "halo")
	if !errors.Is(err, app_errors.ErrCourseNotFound) {
		t.Errorf("AddComment() error = %v, want %v", err, app_errors.ErrCourseNotFound)
	}
}

func TestCourseCommentsModuleFilter(t *testing.T) {
	ctx := context.Background()
	course := &models.Course{ID: uuid.New(), Title: "Teknologi Perkerasan Jalan"}
	m1 := uuid.New()
	m2 := uuid.New()
	s, _ := newTestService(course)

	if _, err := s.AddComment(ctx, testAuthor.ID, course.ID, &m1, "pertanyaan modul satu"); err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}
	if _, err := s.AddComment(ctx, testAuthor.ID, course.ID, &m2, "pertanyaan modul dua"); err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}
	if _, err := s.AddComment(ctx, testAuthor.ID, course.ID, nil, "diskusi umum"); err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}

	all, err := s.CourseComments(ctx, course.ID, nil)
	if err != nil {
		t.Fatalf("CourseComments() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all comments = %d, want 3", len(all))
	}

	onlyM1, err := s.CourseComments(ctx, course.ID, &m1)
	if err != nil {
		t.Fatalf("CourseComments() error = %v", err)
	}
	if len(onlyM1) != 1 || onlyM1[0].Text != "pertanyaan modul satu" {
		t.Errorf("module filter returned %+v", onlyM1)
	}
}
