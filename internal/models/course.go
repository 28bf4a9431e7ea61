package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ModuleTypeVideo = "video"
	ModuleTypeQuiz  = "quiz"
	ModuleTypeText  = "text"
	ModuleTypeLive  = "live"
)

// CourseModule is an indivisible unit of course content. Module ids are
// stable within their course; completion state lives on the enrollment,
// not here.
type CourseModule struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Type     string    `json:"type"`
	Duration string    `json:"duration"`
}

type Course struct {
	ID               uuid.UUID      `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Instructor       string         `json:"instructor"`
	Category         string         `json:"category"`
	ThumbnailKey     string         `json:"thumbnail_key"`
	Modules          []CourseModule `json:"modules"`
	StudentsEnrolled int            `json:"students_enrolled"`
	Rating           float64        `json:"rating"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func (c *Course) ModuleByID(id uuid.UUID) (CourseModule, bool) {
	for _, m := range c.Modules {
		if m.ID == id {
			return m, true
		}
	}
	return CourseModule{}, false
}

func (c *Course) IsQuizModule(id uuid.UUID) bool {
	m, ok := c.ModuleByID(id)
	return ok && m.Type == ModuleTypeQuiz
}

type CoursePreview struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Instructor       string    `json:"instructor"`
	Category         string    `json:"category"`
	ThumbnailURL     string    `json:"thumbnail_url"`
	StudentsEnrolled int       `json:"students_enrolled"`
	Rating           float64   `json:"rating"`
}
