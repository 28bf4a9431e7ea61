// Package seed holds the built-in demo dataset. The ledger falls back to it
// when a persisted document is missing or unparsable, and fresh local
// installs bootstrap from it.
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/penshopx/PUB-Latih-LMS1/internal/models"
)

var (
	AdminID      = uuid.MustParse("00000000-0000-4000-8000-000000000001")
	BudiID       = uuid.MustParse("00000000-0000-4000-8000-000000000002")
	AhmadID      = uuid.MustParse("00000000-0000-4000-8000-000000000003")
	SitiID       = uuid.MustParse("00000000-0000-4000-8000-000000000004")
	DediID       = uuid.MustParse("00000000-0000-4000-8000-000000000005")
	RatnaID      = uuid.MustParse("00000000-0000-4000-8000-000000000006")
	CourseK3ID   = uuid.MustParse("00000000-0000-4000-8000-0000000000c1")
	CourseRoadID = uuid.MustParse("00000000-0000-4000-8000-0000000000c2")
	CourseBizID  = uuid.MustParse("00000000-0000-4000-8000-0000000000c3")
	CourseSCMID  = uuid.MustParse("00000000-0000-4000-8000-0000000000c4")

	moduleM1  = uuid.MustParse("00000000-0000-4000-8000-0000000000a1")
	moduleM2  = uuid.MustParse("00000000-0000-4000-8000-0000000000a2")
	moduleM3  = uuid.MustParse("00000000-0000-4000-8000-0000000000a3")
	moduleM4  = uuid.MustParse("00000000-0000-4000-8000-0000000000a4")
	moduleM5  = uuid.MustParse("00000000-0000-4000-8000-0000000000a5")
	moduleM6  = uuid.MustParse("00000000-0000-4000-8000-0000000000a6")
	moduleM7  = uuid.MustParse("00000000-0000-4000-8000-0000000000a7")
	moduleM8  = uuid.MustParse("00000000-0000-4000-8000-0000000000a8")
	moduleM9  = uuid.MustParse("00000000-0000-4000-8000-0000000000a9")
	moduleM10 = uuid.MustParse("00000000-0000-4000-8000-0000000000aa")
)

func Users() []models.User {
	return []models.User{
		{
			ID:        AdminID,
			Name:      "Admin Diklat",
			Email:     "admin@pub-latih.id",
			Avatar:    "https://picsum.photos/100/100?random=1",
			Role:      models.AdminRole,
			Status:    models.UserActive,
			LastLogin: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:        BudiID,
			Name:      "Ir. Budi Santoso, MT",
			Email:     "budi.s@pu.go.id",
			Avatar:    "https://picsum.photos/100/100?random=2",
			Role:      models.InstructorRole,
			Status:    models.UserActive,
			LastLogin: time.Date(2024, 3, 11, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:        AhmadID,
			Name:      "Ahmad Teknisi",
			Email:     "ahmad.t@konstruksi.id",
			Avatar:    "https://picsum.photos/100/100?random=3",
			Role:      models.LearnerRole,
			Status:    models.UserActive,
			LastLogin: time.Date(2024, 3, 12, 10, 15, 0, 0, time.UTC),
		},
		{
			ID:        SitiID,
			Name:      "Siti Engineer",
			Email:     "siti.eng@wika.co.id",
			Avatar:    "https://picsum.photos/100/100?random=7",
			Role:      models.LearnerRole,
			Status:    models.UserActive,
			LastLogin: time.Date(2024, 3, 11, 18, 45, 0, 0, time.UTC),
		},
		{
			ID:        DediID,
			Name:      "Dedi Surveyor",
			Email:     "dedi.s@pp.co.id",
			Avatar:    "https://picsum.photos/100/100?random=8",
			Role:      models.LearnerRole,
			Status:    models.UserInactive,
			LastLogin: time.Date(2024, 2, 28, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:        RatnaID,
			Name:      "Dr. Eng. Ratna Sari",
			Email:     "ratna.sari@akademisi.id",
			Avatar:    "https://picsum.photos/100/100?random=9",
			Role:      models.InstructorRole,
			Status:    models.UserActive,
			LastLogin: time.Date(2024, 3, 12, 8, 30, 0, 0, time.UTC),
		},
	}
}

func Courses() []models.Course {
	return []models.Course{
		{
			ID:          CourseK3ID,
			Title:       "Ahli K3 & 4KL Konstruksi Berkelanjutan",
			Description: "Penerapan Kesehatan, Keselamatan, Keberlanjutan, dan Lingkungan (4KL) pada proyek konstruksi modern sesuai standar global.",
			Instructor:  "Ir. Budi Santoso, MT",
			Category:    "K3 & 4KL",
			Modules: []models.CourseModule{
				{ID: moduleM1, Title: "Pengantar 4KL dalam Konstruksi", Type: models.ModuleTypeVideo, Duration: "15:00"},
				{ID: moduleM2, Title: "Identifikasi Bahaya & Dampak Lingkungan", Type: models.ModuleTypeText, Duration: "20:00"},
				{ID: moduleM3, Title: "Uji Kompetensi Dasar 4KL", Type: models.ModuleTypeQuiz, Duration: "30:00"},
			},
			StudentsEnrolled: 1240,
			Rating:           4.8,
		},
		{
			ID:          CourseRoadID,
			Title:       "Teknologi Perkerasan Jalan",
			Description: "Metode pelaksanaan dan pengendalian mutu perkerasan lentur dan kaku untuk jalan nasional.",
			Instructor:  "Dr. Eng. Ratna Sari",
			Category:    "Teknik Sipil",
			Modules: []models.CourseModule{
				{ID: moduleM4, Title: "Material Perkerasan", Type: models.ModuleTypeVideo, Duration: "18:00"},
				{ID: moduleM5, Title: "Kuis Material", Type: models.ModuleTypeQuiz, Duration: "25:00"},
				{ID: moduleM6, Title: "Sesi Langsung: Studi Kasus Lapangan", Type: models.ModuleTypeLive, Duration: "60:00"},
			},
			StudentsEnrolled: 860,
			Rating:           4.6,
		},
		{
			ID:          CourseBizID,
			Title:       "Manajemen Bisnis & Kewirausahaan Konstruksi",
			Description: "Dasar-dasar pengelolaan badan usaha jasa konstruksi dan strategi pengembangan bisnis.",
			Instructor:  "Ir. Budi Santoso, MT",
			Category:    "Bisnis & Tender",
			Modules: []models.CourseModule{
				{ID: moduleM7, Title: "Ekosistem Usaha Konstruksi", Type: models.ModuleTypeVideo, Duration: "12:00"},
				{ID: moduleM8, Title: "Evaluasi Kelayakan Usaha", Type: models.ModuleTypeQuiz, Duration: "20:00"},
			},
			StudentsEnrolled: 430,
			Rating:           4.4,
		},
		{
			ID:          CourseSCMID,
			Title:       "Strategi Tender & Rantai Pasok (SCM)",
			Description: "Penyusunan penawaran tender dan pengelolaan rantai pasok material proyek.",
			Instructor:  "Ir. Budi Santoso, MT",
			Category:    "SCM & Logistik",
			Modules: []models.CourseModule{
				{ID: moduleM9, Title: "Dokumen Tender", Type: models.ModuleTypeText, Duration: "22:00"},
				{ID: moduleM10, Title: "Ujian Strategi Tender", Type: models.ModuleTypeQuiz, Duration: "30:00"},
			},
			StudentsEnrolled: 515,
			Rating:           4.7,
		},
	}
}

func Enrollments() []models.Enrollment {
	return []models.Enrollment{
		{
			ID:                 uuid.MustParse("00000000-0000-4000-8000-0000000000e1"),
			StudentID:          AhmadID,
			StudentName:        "Ahmad Teknisi",
			StudentAvatar:      "https://picsum.photos/100/100?random=3",
			CourseID:           CourseK3ID,
			CourseTitle:        "Ahli K3 & 4KL Konstruksi Berkelanjutan",
			Progress:           33,
			CompletedModuleIDs: []uuid.UUID{moduleM1},
			QuizAverage:        0,
			Status:             models.EnrollmentActive,
			LastActive:         time.Date(2024, 3, 12, 10, 15, 0, 0, time.UTC),
		},
		{
			ID:                 uuid.MustParse("00000000-0000-4000-8000-0000000000e2"),
			StudentID:          SitiID,
			StudentName:        "Siti Engineer",
			StudentAvatar:      "https://picsum.photos/100/100?random=7",
			CourseID:           CourseRoadID,
			CourseTitle:        "Teknologi Perkerasan Jalan",
			Progress:           67,
			CompletedModuleIDs: []uuid.UUID{moduleM4, moduleM5},
			QuizAverage:        85,
			Status:             models.EnrollmentActive,
			LastActive:         time.Date(2024, 3, 11, 18, 45, 0, 0, time.UTC),
		},
		{
			ID:                 uuid.MustParse("00000000-0000-4000-8000-0000000000e3"),
			StudentID:          DediID,
			StudentName:        "Dedi Surveyor",
			StudentAvatar:      "https://picsum.photos/100/100?random=8",
			CourseID:           CourseBizID,
			CourseTitle:        "Manajemen Bisnis & Kewirausahaan Konstruksi",
			Progress:           0,
			CompletedModuleIDs: []uuid.UUID{},
			QuizAverage:        0,
			Status:             models.EnrollmentAtRisk,
			LastActive:         time.Date(2024, 2, 28, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:                 uuid.MustParse("00000000-0000-4000-8000-0000000000e4"),
			StudentID:          AhmadID,
			StudentName:        "Ahmad Teknisi",
			StudentAvatar:      "https://picsum.photos/100/100?random=3",
			CourseID:           CourseSCMID,
			CourseTitle:        "Strategi Tender & Rantai Pasok (SCM)",
			Progress:           100,
			CompletedModuleIDs: []uuid.UUID{moduleM9, moduleM10},
			QuizAverage:        92,
			Status:             models.EnrollmentCompleted,
			LastActive:         time.Date(2023, 12, 15, 11, 20, 0, 0, time.UTC),
		},
	}
}

func Comments() []models.Comment {
	roadModule := moduleM4
	k3Module := moduleM2
	return []models.Comment{
		{
			ID:         uuid.MustParse("00000000-0000-4000-8000-0000000000d1"),
			CourseID:   CourseRoadID,
			ModuleID:   &roadModule,
			UserID:     SitiID,
			UserName:   "Siti Engineer",
			UserAvatar: "https://picsum.photos/100/100?random=7",
			Text:       "Pak, untuk tes penetrasi aspal apakah harus suhu tepat 25 derajat Celcius?",
			Likes:      12,
			CreatedAt:  time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:         uuid.MustParse("00000000-0000-4000-8000-0000000000d2"),
			CourseID:   CourseRoadID,
			ModuleID:   &roadModule,
			UserID:     BudiID,
			UserName:   "Ir. Budi Santoso, MT",
			UserAvatar: "https://picsum.photos/100/100?random=2",
			Text:       "Betul Bu Siti. Toleransi suhu sangat ketat karena aspal sangat sensitif termal. Gunakan waterbath yang stabil.",
			Likes:      8,
			CreatedAt:  time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:         uuid.MustParse("00000000-0000-4000-8000-0000000000d3"),
			CourseID:   CourseK3ID,
			ModuleID:   &k3Module,
			UserID:     DediID,
			UserName:   "Dedi Surveyor",
			UserAvatar: "https://picsum.photos/100/100?random=8",
			Text:       "Mohon share format JSA (Job Safety Analysis) untuk limbah B3 Pak.",
			Likes:      5,
			CreatedAt:  time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC),
		},
	}
}

func Certificates() []models.Certificate {
	return []models.Certificate{
		{
			ID:           uuid.MustParse("00000000-0000-4000-8000-0000000000f1"),
			CourseTitle:  "Strategi Tender & Rantai Pasok (SCM)",
			StudentName:  "Ahmad Teknisi",
			Instructor:   "Ir. Budi Santoso, MT",
			IssueDate:    time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC),
			SerialNumber: "PUPR-2023-8492-XJ",
		},
		{
			ID:           uuid.MustParse("00000000-0000-4000-8000-0000000000f2"),
			CourseTitle:  "Ahli K3 & 4KL Konstruksi Berkelanjutan",
			StudentName:  "Ahmad Teknisi",
			Instructor:   "Dr. Eng. Ratna Sari",
			IssueDate:    time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
			SerialNumber: "BNSP-2024-1102-AB",
		},
	}
}
