package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/penshopx/PUB-Latih-LMS1/internal/app_errors"
	"github.com/penshopx/PUB-Latih-LMS1/internal/models"
	"github.com/penshopx/PUB-Latih-LMS1/pkg/logger"
)

// Every seed account logs in with this password in local runs.
const demoPassword = "pub-latih-demo"

type directoryWriter interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
}

type catalogWriter interface {
	CountCourses(ctx context.Context) (int, error)
	NewCourse(ctx context.Context, course *models.Course) (uuid.UUID, error)
}

type discussionWriter interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
}

// Bootstrap loads the demo dataset into empty storage so a fresh local
// install has the same catalog and directory the ledger's seed enrollments
// reference. A non-empty course table means an earlier run already seeded
// (or real data exists) and nothing is written.
func Bootstrap(ctx context.Context, log logger.Log, users directoryWriter,
	courses catalogWriter, comments discussionWriter) error {

	count, err := courses.CountCourses(ctx)
	if err != nil {
		return fmt.Errorf("seed bootstrap: count courses: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bootstrap: hash demo password: %w", err)
	}

	for _, u := range Users() {
		u.PasswordHash = string(hash)
		if _, err := users.CreateUser(ctx, u); err != nil {
			if errors.Is(err, app_errors.ErrUserExists) {
				continue
			}
			return fmt.Errorf("seed bootstrap: user %s: %w", u.Email, err)
		}
	}
	for _, c := range Courses() {
		course := c
		if _, err := courses.NewCourse(ctx, &course); err != nil {
			return fmt.Errorf("seed bootstrap: course %q: %w", c.Title, err)
		}
	}
	for _, cm := range Comments() {
		comment := cm
		if err := comments.CreateComment(ctx, &comment); err != nil {
			return fmt.Errorf("seed bootstrap: comment %s: %w", cm.ID, err)
		}
	}

	log.Info("seed dataset loaded",
		"users", len(Users()), "courses", len(Courses()), "comments", len(Comments()))
	return nil
}
