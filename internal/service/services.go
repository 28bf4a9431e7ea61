package service

import (
	"github.com/penshopx/PUB-Latih-LMS1/internal/service/auth"
	"github.com/penshopx/PUB-Latih-LMS1/internal/service/course"
	"github.com/penshopx/PUB-Latih-LMS1/internal/service/discussion"
	"github.com/penshopx/PUB-Latih-LMS1/internal/service/ledger"
)

type Collection struct {
	*auth.AuthService
	*course.CourseService
	*discussion.DiscussionService
	*ledger.Ledger
}
