// Package ledger owns the per-student-per-course enrollment records and the
// issued certificates. All progress mutations go through Enroll and
// CompleteModule; readers only ever get copies.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/penshopx/PUB-Latih-LMS1/internal/models"
	"github.com/penshopx/PUB-Latih-LMS1/internal/storage/docstore"
	"github.com/penshopx/PUB-Latih-LMS1/internal/storage/seed"
	"github.com/penshopx/PUB-Latih-LMS1/pkg/logger"
)

const (
	progressDocument     = "pub_latih_progress"
	certificatesDocument = "pub_latih_certificates"
)

// Instructor printed on a certificate when the course has been removed from
// the catalog before issuance.
const fallbackInstructor = "PUB-Latih AI Instructor"

var nowFunc = time.Now

type catalog interface {
	CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	IncrementEnrolled(ctx context.Context, courseID uuid.UUID) error
}

type directory interface {
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type Ledger struct {
	log       logger.Log
	catalog   catalog
	directory directory
	store     docstore.Store

	mu           sync.Mutex
	enrollments  []models.Enrollment
	certificates []models.Certificate
}

func New(log logger.Log, c catalog, d directory, store docstore.Store) *Ledger {
	return &Ledger{
		log:       log,
		catalog:   c,
		directory: d,
		store:     store,
	}
}

// Load restores both persisted documents, falling back to the seed dataset
// when a document is missing or unparsable. A crash between a completion and
// its certificate write can leave a completed enrollment without a
// certificate; the issuance sweep at the end repairs that.
func (l *Ledger) Load(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.enrollments = l.loadEnrollments(ctx)
	l.certificates = l.loadCertificates(ctx)

	if l.issueCertificatesLocked(ctx) {
		l.saveCertificatesLocked(ctx)
	}
}

func (l *Ledger) loadEnrollments(ctx context.Context) []models.Enrollment {
	data, err := l.store.Load(ctx, progressDocument)
	if err != nil {
		if !errors.Is(err, docstore.ErrNotFound) {
			l.log.ErrorErr("ledger: failed to load progress document, using seed data", err)
		}
		return seed.Enrollments()
	}

	var enrollments []models.Enrollment
	if err := json.Unmarshal(data, &enrollments); err != nil {
		l.log.ErrorErr("ledger: malformed progress document, using seed data", err)
		return seed.Enrollments()
	}

	for i := range enrollments {
		e := &enrollments[i]
		if e.CompletedModuleIDs == nil {
			e.CompletedModuleIDs = []uuid.UUID{}
		}
		if e.Status == "" {
			e.Status = models.EnrollmentActive
		}
		if e.LastActive.IsZero() {
			e.LastActive = nowFunc()
		}
	}
	return enrollments
}

func (l *Ledger) loadCertificates(ctx context.Context) []models.Certificate {
	data, err := l.store.Load(ctx, certificatesDocument)
	if err != nil {
		if !errors.Is(err, docstore.ErrNotFound) {
			l.log.ErrorErr("ledger: failed to load certificates document, using seed data", err)
		}
		return seed.Certificates()
	}

	var certificates []models.Certificate
	if err := json.Unmarshal(data, &certificates); err != nil {
		l.log.ErrorErr("ledger: malformed certificates document, using seed data", err)
		return seed.Certificates()
	}

	for i := range certificates {
		if certificates[i].IssueDate.IsZero() {
			certificates[i].IssueDate = nowFunc()
		}
	}
	return certificates
}

// Enroll creates the enrollment record for (studentID, courseID), snapshots
// the student's name/avatar and the course title, and bumps the course's
// enrolled counter. Enrolling twice is a no-op, as is enrolling with an
// unknown student or course.
func (l *Ledger) Enroll(ctx context.Context, studentID, courseID uuid.UUID) {
	course, err := l.catalog.CourseByID(ctx, courseID)
	if err != nil {
		l.log.Warn("ledger: enroll skipped, course lookup failed",
			"course_id", courseID, logger.Err(err))
		return
	}
	student, err := l.directory.UserByID(ctx, studentID)
	if err != nil {
		l.log.Warn("ledger: enroll skipped, student lookup failed",
			"student_id", studentID, logger.Err(err))
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.findLocked(studentID, courseID); ok {
		return
	}

	l.enrollments = append(l.enrollments, models.Enrollment{
		ID:                 uuid.New(),
		StudentID:          studentID,
		StudentName:        student.Name,
		StudentAvatar:      student.Avatar,
		CourseID:           courseID,
		CourseTitle:        course.Title,
		Progress:           0,
		CompletedModuleIDs: []uuid.UUID{},
		QuizAverage:        0,
		Status:             models.EnrollmentActive,
		LastActive:         nowFunc(),
	})

	if err := l.catalog.IncrementEnrolled(ctx, courseID); err != nil {
		l.log.ErrorErr("ledger: failed to bump enrolled counter", err, "course_id", courseID)
	}

	l.saveProgressLocked(ctx)
}

// CompleteModule records a first-time completion of moduleID for the
// student's enrollment in courseID. Completing a module that is already
// recorded is a replay: nothing changes, including the quiz average, so a
// retake of an already-passed quiz cannot move committed aggregates.
// quizScore, when non-nil, is folded into the running weighted average.
func (l *Ledger) CompleteModule(ctx context.Context, studentID, courseID, moduleID uuid.UUID, quizScore *int) {
	course, err := l.catalog.CourseByID(ctx, courseID)
	if err != nil {
		l.log.Warn("ledger: completion skipped, course lookup failed",
			"course_id", courseID, logger.Err(err))
		return
	}
	if _, ok := course.ModuleByID(moduleID); !ok {
		l.log.Warn("ledger: completion skipped, module not in course",
			"course_id", courseID, "module_id", moduleID)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx, ok := l.findLocked(studentID, courseID)
	if !ok {
		return
	}
	e := &l.enrollments[idx]

	if e.ModuleCompleted(moduleID) {
		return
	}

	if quizScore != nil {
		prevQuizzes := 0
		for _, id := range e.CompletedModuleIDs {
			if course.IsQuizModule(id) {
				prevQuizzes++
			}
		}
		e.QuizAverage = int(math.Round(float64(e.QuizAverage*prevQuizzes+*quizScore) / float64(prevQuizzes+1)))
	}

	e.CompletedModuleIDs = append(e.CompletedModuleIDs, moduleID)
	if total := len(course.Modules); total > 0 {
		e.Progress = int(math.Round(float64(len(e.CompletedModuleIDs)) * 100 / float64(total)))
	} else {
		e.Progress = 0
	}
	// At Risk is an externally assigned flag; completion only ever promotes
	// a record to Completed, it never resets the flag.
	if e.Progress == 100 {
		e.Status = models.EnrollmentCompleted
	}
	e.LastActive = nowFunc()

	if l.issueCertificatesLocked(ctx) {
		l.saveCertificatesLocked(ctx)
	}
	l.saveProgressLocked(ctx)
}

// Progress returns a copy of the enrollment record, or ok=false when the
// student is not enrolled.
func (l *Ledger) Progress(studentID, courseID uuid.UUID) (models.Enrollment, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx, ok := l.findLocked(studentID, courseID)
	if !ok {
		return models.Enrollment{}, false
	}
	return cloneEnrollment(l.enrollments[idx]), true
}

func (l *Ledger) Enrollments() []models.Enrollment {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Enrollment, 0, len(l.enrollments))
	for _, e := range l.enrollments {
		out = append(out, cloneEnrollment(e))
	}
	return out
}

func (l *Ledger) EnrollmentsByStudent(studentID uuid.UUID) []models.Enrollment {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []models.Enrollment
	for _, e := range l.enrollments {
		if e.StudentID == studentID {
			out = append(out, cloneEnrollment(e))
		}
	}
	return out
}

func (l *Ledger) EnrollmentsByCourse(courseID uuid.UUID) []models.Enrollment {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []models.Enrollment
	for _, e := range l.enrollments {
		if e.CourseID == courseID {
			out = append(out, cloneEnrollment(e))
		}
	}
	return out
}

func (l *Ledger) Certificates() []models.Certificate {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Certificate, len(l.certificates))
	copy(out, l.certificates)
	return out
}

func (l *Ledger) findLocked(studentID, courseID uuid.UUID) (int, bool) {
	for i := range l.enrollments {
		if l.enrollments[i].StudentID == studentID && l.enrollments[i].CourseID == courseID {
			return i, true
		}
	}
	return -1, false
}

// issueCertificatesLocked makes sure every completed enrollment has exactly
// one certificate, keyed by the (studentName, courseTitle) snapshot pair.
// Reports whether anything was issued.
func (l *Ledger) issueCertificatesLocked(ctx context.Context) bool {
	issued := false
	for _, e := range l.enrollments {
		if e.Status != models.EnrollmentCompleted && e.Progress != 100 {
			continue
		}
		if l.certificateExistsLocked(e.StudentName, e.CourseTitle) {
			continue
		}

		instructor := fallbackInstructor
		if course, err := l.catalog.CourseByID(ctx, e.CourseID); err == nil {
			instructor = course.Instructor
		}

		cert := models.Certificate{
			ID:           uuid.New(),
			CourseTitle:  e.CourseTitle,
			StudentName:  e.StudentName,
			Instructor:   instructor,
			IssueDate:    nowFunc(),
			SerialNumber: newSerialNumber(),
		}
		l.certificates = append([]models.Certificate{cert}, l.certificates...)
		issued = true
	}
	return issued
}

func (l *Ledger) certificateExistsLocked(studentName, courseTitle string) bool {
	for _, c := range l.certificates {
		if c.StudentName == studentName && c.CourseTitle == courseTitle {
			return true
		}
	}
	return false
}

// Persistence is fire-and-forget: an in-memory mutation is never rolled back
// because a write failed. The load-time issuance sweep covers the one gap
// where this matters.
func (l *Ledger) saveProgressLocked(ctx context.Context) {
	data, err := json.Marshal(l.enrollments)
	if err != nil {
		l.log.ErrorErr("ledger: failed to marshal progress document", err)
		return
	}
	if err := l.store.Save(ctx, progressDocument, data); err != nil {
		l.log.ErrorErr("ledger: failed to save progress document", err)
	}
}

func (l *Ledger) saveCertificatesLocked(ctx context.Context) {
	data, err := json.Marshal(l.certificates)
	if err != nil {
		l.log.ErrorErr("ledger: failed to marshal certificates document", err)
		return
	}
	if err := l.store.Save(ctx, certificatesDocument, data); err != nil {
		l.log.ErrorErr("ledger: failed to save certificates document", err)
	}
}

func cloneEnrollment(e models.Enrollment) models.Enrollment {
	e.CompletedModuleIDs = append(make([]uuid.UUID, 0, len(e.CompletedModuleIDs)), e.CompletedModuleIDs...)
	return e
}
