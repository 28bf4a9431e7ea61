package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/penshopx/PUB-Latih-LMS1/internal/app_errors"
	"github.com/penshopx/PUB-Latih-LMS1/internal/models"
)

type CoursePostgres struct {
	db *pgxpool.Pool
}

func NewCoursePostgres(db *pgxpool.Pool) *CoursePostgres {
	return &CoursePostgres{db: db}
}

func (r *CoursePostgres) NewCourse(ctx context.Context, course *models.Course) (uuid.UUID, error) {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now

	modules, err := json.Marshal(course.Modules)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal modules: %w", err)
	}

	const query = `
		INSERT INTO courses (
			id, title, description, instructor, category, thumbnail_key,
			modules, students_enrolled, rating, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11
		)
		RETURNING id
	`
	var returnedID uuid.UUID
	err = r.db.QueryRow(
		ctx,
		query,
		course.ID,
		course.Title,
		course.Description,
		course.Instructor,
		course.Category,
		course.ThumbnailKey,
		modules,
		course.StudentsEnrolled,
		course.Rating,
		course.CreatedAt,
		course.UpdatedAt,
	).Scan(&returnedID)
	if err != nil {
		return uuid.Nil, err
	}
	return returnedID, nil
}

func (r *CoursePostgres) CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	const query = `
        SELECT
            id,
            title,
            description,
            instructor,
            category,
            thumbnail_key,
            modules,
            students_enrolled,
            rating,
            created_at,
            updated_at
        FROM courses
        WHERE id = $1
    `
	course := &models.Course{}
	var modules []byte
	row := r.db.QueryRow(ctx, query, id)
	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Instructor,
		&course.Category,
		&course.ThumbnailKey,
		&modules,
		&course.StudentsEnrolled,
		&course.Rating,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrCourseNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(modules, &course.Modules); err != nil {
		return nil, fmt.Errorf("failed to unmarshal modules: %w", err)
	}

	return course, nil
}

func (r *CoursePostgres) UpdateCourse(ctx context.Context, course *models.Course) error {
	modules, err := json.Marshal(course.Modules)
	if err != nil {
		return fmt.Errorf("failed to marshal modules: %w", err)
	}
	const query = `
		UPDATE courses
		   SET title       = $2,
		       description = $3,
		       instructor  = $4,
		       category    = $5,
		       modules     = $6,
		       rating      = $7,
		       updated_at  = NOW()
		 WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, course.ID, course.Title, course.Description,
		course.Instructor, course.Category, modules, course.Rating)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrCourseNotFound
	}
	return nil
}

func (r *CoursePostgres) ListCourses(ctx context.Context, limit int, offset int) ([]models.Course, error) {
	const query = `
        SELECT id, title, description, instructor, category, thumbnail_key,
               modules, students_enrolled, rating, created_at, updated_at
        FROM courses
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var c models.Course
		var modules []byte
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Instructor, &c.Category,
			&c.ThumbnailKey, &modules, &c.StudentsEnrolled, &c.Rating, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(modules, &c.Modules); err != nil {
			return nil, fmt.Errorf("failed to unmarshal modules: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *CoursePostgres) CountCourses(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count)
	return count, err
}

func (r *CoursePostgres) IncrementEnrolled(ctx context.Context, courseID uuid.UUID) error {
	const query = `
		UPDATE courses
		   SET students_enrolled = students_enrolled + 1,
		       updated_at        = NOW()
		 WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, courseID)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrCourseNotFound
	}
	return nil
}

func (r *CoursePostgres) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrCourseNotFound
	}
	return nil
}

func (r *CoursePostgres) UpdateCourseThumbnail(ctx context.Context, courseID uuid.UUID, thumbnailKey string) error {
	const query = `
		UPDATE courses
		   SET thumbnail_key = $2,
		       updated_at    = NOW()
		 WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, courseID, thumbnailKey)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrCourseNotFound
	}
	return nil
}
