package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/penshopx/PUB-Latih-LMS1/internal/models"
)

type CommentPostgres struct {
	db *pgxpool.Pool
}

func NewCommentPostgres(db *pgxpool.Pool) *CommentPostgres {
	return &CommentPostgres{db: db}
}

func (r *CommentPostgres) CreateComment(ctx context.Context, comment *models.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO comments (id, course_id, module_id, user_id, user_name, user_avatar, text, likes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query, comment.ID, comment.CourseID, comment.ModuleID,
		comment.UserID, comment.UserName, comment.UserAvatar, comment.Text, comment.Likes, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

// CommentsByCourse returns the course discussion newest-first.
func (r *CommentPostgres) CommentsByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Comment, error) {
	const query = `
		SELECT id, course_id, module_id, user_id, user_name, user_avatar, text, likes, created_at
		FROM comments
		WHERE course_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.CourseID, &c.ModuleID, &c.UserID, &c.UserName,
			&c.UserAvatar, &c.Text, &c.Likes, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
