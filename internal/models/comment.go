package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a course discussion entry shown in the player. Author name and
// avatar are snapshots taken at posting time, same as enrollment identity.
// ModuleID is nil for course-level comments.
type Comment struct {
	ID         uuid.UUID  `json:"id"`
	CourseID   uuid.UUID  `json:"course_id"`
	ModuleID   *uuid.UUID `json:"module_id,omitempty"`
	UserID     uuid.UUID  `json:"user_id"`
	UserName   string     `json:"user_name"`
	UserAvatar string     `json:"user_avatar"`
	Text       string     `json:"text"`
	Likes      int        `json:"likes"`
	CreatedAt  time.Time  `json:"timestamp"`
}
