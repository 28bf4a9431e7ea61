package models

import (
	"time"

	"github.com/google/uuid"
)

// Certificate is issued once per completed course. Certificates are
// deduplicated by the (StudentName, CourseTitle) snapshot pair, so a renamed
// student or a retitled course can receive a second one.
type Certificate struct {
	ID           uuid.UUID `json:"id"`
	CourseTitle  string    `json:"course_title"`
	StudentName  string    `json:"student_name"`
	Instructor   string    `json:"instructor"`
	IssueDate    time.Time `json:"issue_date"`
	SerialNumber string    `json:"serial_number"`
}
