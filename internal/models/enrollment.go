package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	EnrollmentActive    = "Active"
	EnrollmentAtRisk    = "At Risk"
	EnrollmentCompleted = "Completed"
)

// Enrollment is the per-student-per-course progress record. Student name,
// avatar and course title are snapshots taken at enrollment time and are
// never re-synced with the directory or the catalog.
type Enrollment struct {
	ID                 uuid.UUID   `json:"id"`
	StudentID          uuid.UUID   `json:"student_id"`
	StudentName        string      `json:"student_name"`
	StudentAvatar      string      `json:"student_avatar"`
	CourseID           uuid.UUID   `json:"course_id"`
	CourseTitle        string      `json:"course_title"`
	Progress           int         `json:"progress"`
	CompletedModuleIDs []uuid.UUID `json:"completed_module_ids"`
	QuizAverage        int         `json:"quiz_average"`
	Status             string      `json:"status"`
	LastActive         time.Time   `json:"last_active"`
}

func (e *Enrollment) ModuleCompleted(moduleID uuid.UUID) bool {
	for _, id := range e.CompletedModuleIDs {
		if id == moduleID {
			return true
		}
	}
	return false
}
