package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/trackademic-api/api/swagger"
	"github.com/noah-isme/trackademic-api/internal/handler"
	internalmiddleware "github.com/noah-isme/trackademic-api/internal/middleware"
	"github.com/noah-isme/trackademic-api/internal/repository"
	"github.com/noah-isme/trackademic-api/internal/service"
	"github.com/noah-isme/trackademic-api/pkg/config"
	"github.com/noah-isme/trackademic-api/pkg/database"
	"github.com/noah-isme/trackademic-api/pkg/export"
	"github.com/noah-isme/trackademic-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/trackademic-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/trackademic-api/pkg/middleware/requestid"
)

const shutdownTimeout = 10 * time.Second

// @title TrackAcademic API
// @version 1.0.0
// @description Course catalog, evaluation plans, enrollments and grades
// @BasePath /
// @schemes http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := database.NewMongo(ctx, cfg.Mongo)
	if err != nil {
		logr.Fatal("failed to connect to mongo", zap.Error(err))
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.Timeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logr.Warn("mongo disconnect failed", zap.Error(err))
		}
	}()
	logr.Info("mongo connected", zap.String("database", cfg.Mongo.Database))

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	stores := service.Stores{
		Courses:         repository.NewCollection(db, repository.CoursesCollection, metricsSvc),
		StudentCourses:  repository.NewCollection(db, repository.StudentCoursesCollection, metricsSvc),
		EvaluationPlans: repository.NewCollection(db, repository.EvaluationPlansCollection, metricsSvc),
		StudentGrades:   repository.NewCollection(db, repository.StudentGradesCollection, metricsSvc),
		PlanComments:    repository.NewCollection(db, repository.PlanCommentsCollection, metricsSvc),
	}

	validate := validator.New()
	courseSvc := service.NewCourseService(stores.Courses, logr)
	planSvc := service.NewEvaluationPlanService(stores.EvaluationPlans, stores.Courses, stores.StudentCourses, logr)
	enrollmentSvc := service.NewStudentCourseService(stores.StudentCourses, logr)
	gradeSvc := service.NewStudentGradeService(stores.StudentGrades, stores.StudentCourses, logr)
	commentSvc := service.NewPlanCommentService(stores.PlanComments, logr)
	reportSvc := service.NewReportService(stores, export.NewCSVExporter(), export.NewPDFExporter(), logr)
	seedSvc := service.NewSeedService(stores, validate, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	handler.Register(r, handler.Handlers{
		Courses:         handler.NewCourseHandler(courseSvc),
		EvaluationPlans: handler.NewEvaluationPlanHandler(planSvc),
		StudentCourses:  handler.NewStudentCourseHandler(enrollmentSvc),
		StudentGrades:   handler.NewStudentGradeHandler(gradeSvc, reportSvc),
		PlanComments:    handler.NewPlanCommentHandler(commentSvc),
		Seed:            handler.NewSeedHandler(seedSvc),
		Metrics:         handler.NewMetricsHandler(metricsSvc, client),
	}, handler.RouterOptions{
		APIPrefix:     cfg.APIPrefix,
		AdminSecret:   cfg.Admin.Secret,
		EnableMetrics: cfg.Metrics.Enabled,
	})

	if cfg.Docs.Enabled {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Errorw("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
