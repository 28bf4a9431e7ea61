package ledger

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/penshopx/PUB-Latih-LMS1/internal/app_errors"
	"github.com/penshopx/PUB-Latih-LMS1/internal/models"
	"github.com/penshopx/PUB-Latih-LMS1/internal/storage/docstore"
	"github.com/penshopx/PUB-Latih-LMS1/pkg/logger"
)

type fakeCatalog struct {
	courses       map[uuid.UUID]*models.Course
	enrolledBumps int
}

func (f *fakeCatalog) CourseByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, app_errors.ErrCourseNotFound
	}
	return c, nil
}

func (f *fakeCatalog) IncrementEnrolled(_ context.Context, _ uuid.UUID) error {
	f.enrolledBumps++
	return nil
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

type memStore struct {
	docs map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{docs: map[string][]byte{}}
}

func (s *memStore) Load(_ context.Context, name string) ([]byte, error) {
	doc, ok := s.docs[name]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	return doc, nil
}

func (s *memStore) Save(_ context.Context, name string, doc []byte) error {
	s.docs[name] = doc
	return nil
}

func newModules(types ...string) []models.CourseModule {
	modules := make([]models.CourseModule, 0, len(types))
	for _, t := range types {
		modules = append(modules, models.CourseModule{ID: uuid.New(), Title: t, Type: t, Duration: "10:00"})
	}
	return modules
}

func intPtr(v int) *int { return &v }

var (
	testStudent = &models.User{
		ID:     uuid.New(),
		Name:   "Ahmad Teknisi",
		Avatar: "https://picsum.photos/100/100?random=3",
		Role:   models.LearnerRole,
	}
	testLog = logger.New("local")
)

// newTestLedger starts from empty persisted documents so tests do not pick
// up the seed fallback.
func newTestLedger(courses ...*models.Course) (*Ledger, *fakeCatalog, *memStore) {
	cat := &fakeCatalog{courses: map[uuid.UUID]*models.Course{}}
	for _, c := range courses {
		cat.courses[c.ID] = c
	}
	dir := &fakeDirectory{users: map[uuid.UUID]*models.User{testStudent.ID: testStudent}}
	store := newMemStore()
	store.docs[progressDocument] = []byte("[]")
	store.docs[certificatesDocument] = []byte("[]")

	l := New(testLog, cat, dir, store)
	l.Load(context.Background())
	return l, cat, store
}

func TestEnrollIdempotent(t *testing.T) {
	ctx := context.Background()
	course := &models.Course{ID: uuid.New(), Title: "Teknologi Perkerasan Jalan", Modules: newModules("video", "quiz")}
	l, cat, _ := newTestLedger(course)

	l.Enroll(ctx, testStudent.ID, course.ID)
	l.Enroll(ctx, testStudent.ID, course.ID)

	all := l.EnrollmentsByStudent(testStudent.ID)
	if len(all) != 1 {
		t.Fatalf("expected 1 enrollment, got %d", len(all))
	}
	e := all[0]
	if e.Progress != 0 || e.QuizAverage != 0 || e.Status != models.EnrollmentActive {
		t.Errorf("unexpected initial record: %+v", e)
	}
	if e.StudentName != testStudent.Name || e.CourseTitle != course.Title {
		t.Errorf("identity not snapshotted: %+v", e)
	}
	if cat.enrolledBumps != 1 {
		t.Errorf("enrolled counter bumped %d times, want 1", cat.enrolledBumps)
	}
}

func TestEnrollUnknownIDs(t *testing.T) {
	ctx := context.Background()
	course := &models.Course{ID: uuid.New(), Title: "K3", Modules: newModules("video")}
	l, _, _ := newTestLedger(course)

	// unknown student, then unknown course
	l.Enroll(ctx, uuid.New(), course.ID)
	l.Enroll(ctx, testStudent.ID, uuid.New())

	if got := len(l.Enrollments()); got != 0 {
		t.Fatalf("expected no enrollments, got %d", got)
	}
}

func TestCompletionProgressAndCertificate(t *testing.T) {
	ctx := context.Background()
	course := &models.Course{
		ID:         uuid.New(),
		Title:      "Ahli K3 & 4KL Konstruksi Berkelanjutan",
		Instructor: "Ir. Budi Santoso, MT",
		Modules:    newModules("video", "text", "live"),
	}
	l, _, _ := newTestLedger(course)
	l.Enroll(ctx, testStudent.ID, course.ID)

	wantProgress := []int{33, 67, 100}
	for i, m := range course.Modules {
		l.CompleteModule(ctx, testStudent.ID, course.ID, m.ID, nil)

		e, ok := l.Progress(testStudent.ID, course.ID)
		if !ok {
			t.Fatal("enrollment disappeared")
		}
		if e.Progress != wantProgress[i] {
			t.Errorf("after module %d: progress = %d, want %d", i+1, e.Progress, wantProgress[i])
		}
		if i < len(course.Modules)-1 && e.Status != models.EnrollmentActive {
			t.Errorf("after module %d: status = %q, want Active", i+1, e.Status)
		}
	}

	e, _ := l.Progress(testStudent.ID, course.ID)
	if e.Status != models.EnrollmentCompleted {
		t.Errorf("status = %q, want Completed", e.Status)
	}

	certs := l.Certificates()
	if len(certs) != 1 {
		t.Fatalf("expected 1 certificate, got %d", len(certs))
	}
	cert := certs[0]
	if cert.StudentName != testStudent.Name || cert.CourseTitle != course.Title {
		t.Errorf("certificate identity wrong: %+v", cert)
	}
	if cert.Instructor != course.Instructor {
		t.Errorf("instructor = %q, want %q", cert.Instructor, course.Instructor)
	}
	if cert.SerialNumber == "" {
		t.Error("serial number not generated")
	}
}

func TestQuizAverage(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   []int
	}{
		{name: "two quizzes", scores: []int{90, 70}, want: []int{90, 80}},
		{name: "three quizzes", scores: []int{80, 60, 100}, want: []int{80, 70, 80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			types := make([]string, len(tt.scores))
			for i := range types {
				types[i] = "quiz"
			}
			course := &models.Course{ID: uuid.New(), Title: "Kuis", Modules: newModules(types...)}
			l, _, _ := newTestLedger(course)
			l.Enroll(ctx, testStudent.ID, course.ID)

			for i, score := range tt.scores {
				l.CompleteModule(ctx, testStudent.ID, course.ID, course.Modules[i].ID, intPtr(score))
				e, _ := l.Progress(testStudent.ID, course.ID)
				if e.QuizAverage != tt.want[i] {
					t.Errorf("after score %d: quizAverage = %d, want %d", score, e.QuizAverage, tt.want[i])
				}
			}
		})
	}
}

func TestReplayNeutrality(t *testing.T) {
	ctx := context.Background()
	course := &models.Course{ID: uuid.New(), Title: "Kuis", Modules: newModules("quiz", "quiz")}
	l, _, _ := newTestLedger(course)
	l.Enroll(ctx, testStudent.ID, course.ID)

	quiz := course.Modules[0].ID
	l.CompleteModule(ctx, testStudent.ID, course.ID, quiz, intPtr(90))
	before, _ := l.Progress(testStudent.ID, course.ID)

	// retake with a different score must not move anything
	l.CompleteModule(ctx, testStudent.ID, course.ID, quiz, intPtr(50))
	after, _ := l.Progress(testStudent.ID, course.ID)

	if after.QuizAverage != before.QuizAverage {
		t.Errorf("quizAverage changed on replay: %d -> %d", before.QuizAverage, after.QuizAverage)
	}
	if after.Progress != before.Progress {
		t.Errorf("progress changed on replay: %d -> %d", before.Progress, after.Progress)
	}
	if len(after.CompletedModuleIDs) != len(before.CompletedModuleIDs) {
		t.Errorf("completed set changed on replay: %d -> %d",
			len(before.CompletedModuleIDs), len(after.CompletedModuleIDs))
	}
}

func TestCompleteModuleNoops(t *testing.T) {
	ctx := context.Background()
	course := &models.Course{ID: uuid.New(), Title: "K3", Modules: newModules("video")}
	l, _, _ := newTestLedger(course)
	l.Enroll(ctx, testStudent.ID, course.ID)

	tests := []struct {
		name     string
		courseID uuid.UUID
		moduleID uuid.UUID
	}{
		{name: "unknown course", courseID: uuid.New(), moduleID: course.Modules[0].ID},
		{name: "module not in course", courseID: course.ID, moduleID: uuid.New()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l.CompleteModule(ctx, testStudent.ID, tt.courseID, tt.moduleID, nil)
			e, ok := l.Progress(testStudent.ID, course.ID)
			if !ok {
				t.Fatal("enrollment disappeared")
			}
			if e.Progress != 0 || len(e.CompletedModuleIDs) != 0 {
				t.Errorf("record mutated: %+v", e)
			}
		})
	}

	// not enrolled at all: must not create a record
	other := uuid.New()
	l.CompleteModule(ctx, other, course.ID, course.Modules[0].ID, nil)
	if _, ok := l.Progress(other, course.ID); ok {
		t.Error("completion created an enrollment")
	}
}

func TestAtRiskOnlyPromoted(t *testing.T) {
	ctx := context.Background()
	course := &models.Course{ID: uuid.New(), Title: "Bisnis", Modules: newModules("video", "text")}

	atRisk := models.Enrollment{
		ID:                 uuid.New(),
		StudentID:          testStudent.ID,
		StudentName:        testStudent.Name,
		CourseID:           course.ID,
		CourseTitle:        course.Title,
		CompletedModuleIDs: []uuid.UUID{},
		Status:             models.EnrollmentAtRisk,
		LastActive:         time.Now(),
	}
	doc, _ := json.Marshal([]models.Enrollment{atRisk})

	cat := &fakeCatalog{courses: map[uuid.UUID]*models.Course{course.ID: course}}
	dir := &fakeDirectory{users: map[uuid.UUID]*models.User{testStudent.ID: testStudent}}
	store := newMemStore()
	store.docs[progressDocument] = doc
	store.docs[certificatesDocument] = []byte("[]")

	l := New(testLog, cat, dir, store)
	l.Load(ctx)

	l.CompleteModule(ctx, testStudent.ID, course.ID, course.Modules[0].ID, nil)
	e, _ := l.Progress(testStudent.ID, course.ID)
	if e.Status != models.EnrollmentAtRisk {
		t.Errorf("partial completion changed status to %q, want At Risk kept", e.Status)
	}

	l.CompleteModule(ctx, testStudent.ID, course.ID, course.Modules[1].ID, nil)
	e, _ = l.Progress(testStudent.ID, course.ID)
	if e.Status != models.EnrollmentCompleted {
		t.Errorf("full completion left status %q, want Completed", e.Status)
	}
}

func TestCertificateUniqueness(t *testing.T) {
	ctx := context.Background()
	course := &models.Course{ID: uuid.New(), Title: "SCM", Instructor: "Ir. Budi Santoso, MT", Modules: newModules("text")}
	l, _, store := newTestLedger(course)
	l.Enroll(ctx, testStudent.ID, course.ID)
	l.CompleteModule(ctx, testStudent.ID, course.ID, course.Modules[0].ID, nil)
	// replay after completion re-runs the issuance sweep
	l.CompleteModule(ctx, testStudent.ID, course.ID, course.Modules[0].ID, nil)

	if got := len(l.Certificates()); got != 1 {
		t.Fatalf("expected 1 certificate, got %d", got)
	}

	// a restart over the same persisted state must not issue a duplicate
	restarted := New(testLog, &fakeCatalog{courses: map[uuid.UUID]*models.Course{course.ID: course}},
		&fakeDirectory{users: map[uuid.UUID]*models.User{testStudent.ID: testStudent}}, store)
	restarted.Load(ctx)
	if got := len(restarted.Certificates()); got != 1 {
		t.Fatalf("after reload: expected 1 certificate, got %d", got)
	}
}

func TestCertificateSelfHeal(t *testing.T) {
	ctx := context.Background()
	course := &models.Course{ID: uuid.New(), Title: "SCM", Instructor: "Ir. Budi Santoso, MT", Modules: newModules("text")}

	completed := models.Enrollment{
		ID:                 uuid.New(),
		StudentID:          testStudent.ID,
		StudentName:        testStudent.Name,
		CourseID:           course.ID,
		CourseTitle:        course.Title,
		Progress:           100,
		CompletedModuleIDs: []uuid.UUID{course.Modules[0].ID},
		Status:             models.EnrollmentCompleted,
		LastActive:         time.Now(),
	}
	doc, _ := json.Marshal([]models.Enrollment{completed})

	store := newMemStore()
	store.docs[progressDocument] = doc
	store.docs[certificatesDocument] = []byte("[]")

	l := New(testLog, &fakeCatalog{courses: map[uuid.UUID]*models.Course{course.ID: course}},
		&fakeDirectory{users: map[uuid.UUID]*models.User{}}, store)
	l.Load(ctx)

	certs := l.Certificates()
	if len(certs) != 1 {
		t.Fatalf("expected self-healed certificate, got %d", len(certs))
	}
	if certs[0].Instructor != course.Instructor {
		t.Errorf("instructor = %q, want %q", certs[0].Instructor, course.Instructor)
	}

	// the repaired document must have been written back
	saved, err := store.Load(ctx, certificatesDocument)
	if err != nil {
		t.Fatalf("certificates document not saved: %v", err)
	}
	var persisted []models.Certificate
	if err := json.Unmarshal(saved, &persisted); err != nil || len(persisted) != 1 {
		t.Errorf("persisted certificates document wrong: %s", saved)
	}
}

func TestCertificateInstructorFallback(t *testing.T) {
	ctx := context.Background()
	gone := uuid.New() // course no longer in catalog

	completed := models.Enrollment{
		ID:          uuid.New(),
		StudentID:   testStudent.ID,
		StudentName: testStudent.Name,
		CourseID:    gone,
		CourseTitle: "Kursus Terhapus",
		Progress:    100,
		Status:      models.EnrollmentCompleted,
		LastActive:  time.Now(),
	}
	doc, _ := json.Marshal([]models.Enrollment{completed})

	store := newMemStore()
	store.docs[progressDocument] = doc
	store.docs[certificatesDocument] = []byte("[]")

	l := New(testLog, &fakeCatalog{courses: map[uuid.UUID]*models.Course{}},
		&fakeDirectory{users: map[uuid.UUID]*models.User{}}, store)
	l.Load(ctx)

	certs := l.Certificates()
	if len(certs) != 1 {
		t.Fatalf("expected 1 certificate, got %d", len(certs))
	}
	if certs[0].Instructor != fallbackInstructor {
		t.Errorf("instructor = %q, want fallback %q", certs[0].Instructor, fallbackInstructor)
	}
}

func TestLoadDefaultsMissingFields(t *testing.T) {
	ctx := context.Background()
	raw := []byte(`[{"id":"` + uuid.NewString() + `","student_id":"` + testStudent.ID.String() +
		`","student_name":"Ahmad Teknisi","course_id":"` + uuid.NewString() + `","course_title":"K3","progress":33}]`)

	store := newMemStore()
	store.docs[progressDocument] = raw
	store.docs[certificatesDocument] = []byte("[]")

	fixed := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return fixed }
	defer func() { nowFunc = time.Now }()

	l := New(testLog, &fakeCatalog{courses: map[uuid.UUID]*models.Course{}},
		&fakeDirectory{users: map[uuid.UUID]*models.User{}}, store)
	l.Load(ctx)

	all := l.Enrollments()
	if len(all) != 1 {
		t.Fatalf("expected 1 enrollment, got %d", len(all))
	}
	e := all[0]
	if e.CompletedModuleIDs == nil || len(e.CompletedModuleIDs) != 0 {
		t.Errorf("completedModuleIDs not defaulted: %v", e.CompletedModuleIDs)
	}
	if e.Status != models.EnrollmentActive {
		t.Errorf("status = %q, want Active", e.Status)
	}
	if e.QuizAverage != 0 {
		t.Errorf("quizAverage = %d, want 0", e.QuizAverage)
	}
	if !e.LastActive.Equal(fixed) {
		t.Errorf("lastActive = %v, want %v", e.LastActive, fixed)
	}
}

func TestLoadFallsBackToSeed(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		docs map[string][]byte
	}{
		{name: "missing documents", docs: map[string][]byte{}},
		{name: "malformed documents", docs: map[string][]byte{
			progressDocument:     []byte("{not json"),
			certificatesDocument: []byte("also not json"),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memStore{docs: tt.docs}
			l := New(testLog, &fakeCatalog{courses: map[uuid.UUID]*models.Course{}},
				&fakeDirectory{users: map[uuid.UUID]*models.User{}}, store)
			l.Load(ctx)

			if len(l.Enrollments()) == 0 {
				t.Error("expected seed enrollments")
			}
			if len(l.Certificates()) == 0 {
				t.Error("expected seed certificates")
			}
		})
	}
}

func TestZeroModuleCourse(t *testing.T) {
	ctx := context.Background()
	course := &models.Course{ID: uuid.New(), Title: "Kosong", Modules: []models.CourseModule{}}
	l, _, _ := newTestLedger(course)
	l.Enroll(ctx, testStudent.ID, course.ID)

	e, ok := l.Progress(testStudent.ID, course.ID)
	if !ok {
		t.Fatal("not enrolled")
	}
	if e.Progress != 0 {
		t.Errorf("progress = %d, want 0 for a course without modules", e.Progress)
	}
}

func TestReadViewsReturnCopies(t *testing.T) {
	ctx := context.Background()
	course := &models.Course{ID: uuid.New(), Title: "K3", Modules: newModules("video", "text")}
	l, _, _ := newTestLedger(course)
	l.Enroll(ctx, testStudent.ID, course.ID)
	l.CompleteModule(ctx, testStudent.ID, course.ID, course.Modules[0].ID, nil)

	e, _ := l.Progress(testStudent.ID, course.ID)
	e.CompletedModuleIDs[0] = uuid.New()
	e.Progress = 999

	fresh, _ := l.Progress(testStudent.ID, course.ID)
	if fresh.Progress != 50 {
		t.Errorf("ledger state mutated through a returned copy: progress = %d", fresh.Progress)
	}
	if fresh.CompletedModuleIDs[0] != course.Modules[0].ID {
		t.Error("ledger completed set mutated through a returned copy")
	}
}

func TestProgressMonotonic(t *testing.T) {
	ctx := context.Background()
	course := &models.Course{ID: uuid.New(), Title: "K3", Modules: newModules("video", "text", "quiz", "live")}
	l, _, _ := newTestLedger(course)
	l.Enroll(ctx, testStudent.ID, course.ID)

	// completions in arbitrary order with replays sprinkled in
	order := []int{2, 2, 0, 3, 0, 1}
	last := 0
	for _, i := range order {
		l.CompleteModule(ctx, testStudent.ID, course.ID, course.Modules[i].ID, nil)
		e, _ := l.Progress(testStudent.ID, course.ID)
		if e.Progress < last {
			t.Fatalf("progress regressed: %d -> %d", last, e.Progress)
		}
		last = e.Progress
	}
	if last != 100 {
		t.Errorf("final progress = %d, want 100", last)
	}
}
