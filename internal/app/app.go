package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/penshopx/PUB-Latih-LMS1/internal/app/server"
	"github.com/penshopx/PUB-Latih-LMS1/internal/config"
	"github.com/penshopx/PUB-Latih-LMS1/internal/delivery/http"
	"github.com/penshopx/PUB-Latih-LMS1/internal/service"
	"github.com/penshopx/PUB-Latih-LMS1/internal/service/auth"
	"github.com/penshopx/PUB-Latih-LMS1/internal/service/course"
	"github.com/penshopx/PUB-Latih-LMS1/internal/service/discussion"
	"github.com/penshopx/PUB-Latih-LMS1/internal/service/ledger"
	"github.com/penshopx/PUB-Latih-LMS1/internal/storage/docstore"
	"github.com/penshopx/PUB-Latih-LMS1/internal/storage/elastic"
	"github.com/penshopx/PUB-Latih-LMS1/internal/storage/minio_storage"
	"github.com/penshopx/PUB-Latih-LMS1/internal/storage/postgres"
	"github.com/penshopx/PUB-Latih-LMS1/internal/storage/seed"
	"github.com/penshopx/PUB-Latih-LMS1/pkg/logger"
)

func Run(cfg *config.Config) {

	log := logger.New(cfg.Env)
	log.Info("Starting with Env: " + cfg.Env)

	pg, err := postgres.NewPostgresPool(cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
	if err != nil {
		log.FatalErr("error connecting to database", err)
	}
	defer pg.Close()

	minioStorage, err := minio_storage.NewMinioStorage(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL)
	if err != nil {
		log.FatalErr("error connecting to minio", err)
	}
	thumbnails := cfg.Minio.Buckets["thumbnails"]
	thumbnailRepo, err := minio_storage.NewThumbnailStorage(minioStorage, thumbnails.Name, thumbnails.PresignTTL)
	if err != nil {
		log.FatalErr("error preparing thumbnail bucket", err)
	}

	esClient, err := elastic.NewElasticClient(cfg.ES.Password, cfg.ES.Hosts)
	if err != nil {
		log.FatalErr("error connecting to elasticsearch", err)
	}
	searchRepo := elastic.NewCourseSearchRepository(esClient, cfg.ES.Index)
	if err := searchRepo.CreateIndexIfNotExist(context.Background()); err != nil {
		log.FatalErr("error creating course index", err)
	}

	var documents docstore.Store
	if cfg.Ledger.Dir != "" {
		documents, err = docstore.NewFileStore(cfg.Ledger.Dir)
		if err != nil {
			log.FatalErr("error preparing ledger directory", err)
		}
	} else {
		documents = postgres.NewDocumentsPostgres(pg.Pool)
	}

	tokenRepo := postgres.NewTokensPostgres(pg.Pool)
	userRepo := postgres.NewUserPostgres(pg.Pool)
	courseRepo := postgres.NewCoursePostgres(pg.Pool)
	commentRepo := postgres.NewCommentPostgres(pg.Pool)

	if cfg.Env == "local" {
		if err := seed.Bootstrap(context.Background(), log, userRepo, courseRepo, commentRepo); err != nil {
			log.FatalErr("seed bootstrap failed", err)
		}
	}

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, "//", cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	authService := auth.NewAuthService(log, jwtManager, userRepo, tokenRepo)
	courseService := course.NewCourseService(log, courseRepo, searchRepo, thumbnailRepo)
	discussionService := discussion.NewDiscussionService(log, commentRepo, courseRepo, userRepo)

	progressLedger := ledger.New(log, courseRepo, userRepo, documents)
	progressLedger.Load(context.Background())

	u := service.Collection{
		AuthService:       authService,
		CourseService:     courseService,
		DiscussionService: discussionService,
		Ledger:            progressLedger,
	}

	r := http.InitRoutes(log, u)

	srv := server.New(cfg.HTTPServer.Address, cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal: " + s.String())
	case err := <-srv.Notify():
		log.ErrorErr("server stopped", err)
	}
	if err := srv.Shutdown(); err != nil {
		log.ErrorErr("shutdown error", err)
	}
}
