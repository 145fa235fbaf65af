package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/trackademic-api/internal/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Courses         *CourseHandler
	EvaluationPlans *EvaluationPlanHandler
	StudentCourses  *StudentCourseHandler
	StudentGrades   *StudentGradeHandler
	PlanComments    *PlanCommentHandler
	Seed            *SeedHandler
	Metrics         *MetricsHandler
}

// RouterOptions controls the optional parts of the route table.
type RouterOptions struct {
	APIPrefix     string
	AdminSecret   string
	EnableMetrics bool
}

// Register mounts the API on r.
func Register(r gin.IRouter, h Handlers, opts RouterOptions) {
	prefix := opts.APIPrefix
	if prefix == "" {
		prefix = "/api"
	}

	r.GET("/", h.Metrics.Welcome)
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	if opts.EnableMetrics {
		r.GET("/metrics", h.Metrics.Prometheus)
	}

	api := r.Group(prefix)

	courses := api.Group("/courses")
	courses.GET("", h.Courses.List)
	courses.POST("", h.Courses.Create)
	courses.GET("/:code", h.Courses.Get)
	courses.PUT("/:code", h.Courses.Update)
	courses.DELETE("/:code", h.Courses.Delete)

	plans := api.Group("/evaluation-plans")
	plans.GET("", h.EvaluationPlans.List)
	plans.POST("", h.EvaluationPlans.Create)
	plans.GET("/:id", h.EvaluationPlans.Get)
	plans.PUT("/:id", h.EvaluationPlans.Update)
	plans.DELETE("/:id", h.EvaluationPlans.Delete)

	enrollments := api.Group("/student-courses")
	enrollments.GET("", h.StudentCourses.List)
	enrollments.POST("", h.StudentCourses.Create)
	enrollments.GET("/:code", h.StudentCourses.Get)
	enrollments.PUT("/:code", h.StudentCourses.Update)
	enrollments.DELETE("/:code", h.StudentCourses.Delete)

	grades := api.Group("/student-grades")
	grades.GET("", h.StudentGrades.List)
	grades.POST("", h.StudentGrades.Create)
	grades.GET("/semester/:student_id/:semester", h.StudentGrades.BySemester)
	grades.GET("/semester/:student_id/:semester/report", h.StudentGrades.SemesterReport)
	grades.GET("/:id", h.StudentGrades.Get)
	grades.PUT("/:id", h.StudentGrades.Update)
	grades.DELETE("/:id", h.StudentGrades.Delete)

	comments := api.Group("/plan-comments")
	comments.GET("", h.PlanComments.List)
	comments.POST("", h.PlanComments.Create)
	comments.GET("/:id", h.PlanComments.Get)
	comments.PUT("/:id", h.PlanComments.Update)
	comments.DELETE("/:id", h.PlanComments.Delete)

	api.POST("/seed-data", middleware.AdminKey(opts.AdminSecret), h.Seed.Seed)
	api.POST("/initialize-student-data", h.Seed.InitializeStudent)
}
