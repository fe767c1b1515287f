package main

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"exam-service/internal/assistant"
	"exam-service/internal/config"
	"exam-service/internal/db"
	"exam-service/internal/event"
	"exam-service/internal/handlers"
	"exam-service/internal/middleware"
	"exam-service/internal/models"
	"exam-service/internal/repository"
	"exam-service/internal/service"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	gin.SetMode(cfg.GinMode)

	client, err := db.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	database := client.Database(cfg.MongoDatabase)

	// RabbitMQ event publisher; nil disables publishing.
	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" && cfg.EventExchange != "" {
		publisher, err = event.NewEventPublisher(cfg.RabbitMQURI, cfg.EventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, domain events will not be published")
	}

	// Assistant grading client; nil disables AI grading service-wide.
	var ai *assistant.Client
	if cfg.AIAPIKey != "" {
		ai = assistant.New(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel)
	} else {
		log.Println("AI grading not configured, essay grading falls back to expected-answer matching")
	}

	auth := middleware.NewAuth(cfg.JWTSecret)

	userRepo := repository.NewUserRepository(database)
	bankRepo := repository.NewBankRepository(database)
	examRepo := repository.NewExaminationRepository(database)
	scheduleRepo := repository.NewScheduleRepository(database)
	subRepo := repository.NewSubmissionRepository(database)
	courseRepo := repository.NewCourseRepository(database)

	userService := service.NewUserService(userRepo)
	bankService := service.NewBankService(bankRepo, examRepo, userRepo)
	examService := service.NewExaminationService(examRepo, bankService)
	scheduleService := service.NewScheduleService(scheduleRepo, examRepo, subRepo)
	submissionService := service.NewSubmissionService(subRepo, scheduleRepo, ai)
	courseService := service.NewCourseService(courseRepo)

	userHandler := handlers.NewUserHandler(userService, auth)
	bankHandler := handlers.NewBankHandler(bankService)
	examHandler := handlers.NewExaminationHandler(examService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	courseHandler := handlers.NewCourseHandler(courseService)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORSOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes
	public := r.Group("/public")
	{
		public.POST("/auth/register", userHandler.Register)
		public.POST("/auth/login", userHandler.Login)
		public.GET("/courses", courseHandler.ListCourses)
		public.GET("/courses/:id", courseHandler.GetCourse)
	}

	// Authenticated routes
	protected := r.Group("/protected", auth.RequireAuth())
	protected.GET("/me", userHandler.Me)

	instructorOnly := middleware.RequireRole(models.RoleInstructor, models.RoleAdmin)

	bank := protected.Group("/banks", instructorOnly)
	{
		bank.POST("/", func(c *gin.Context) {
			bankHandler.CreateBank(c)
			publisher.Publish("bank.created", gin.H{"instructor_id": middleware.UserID(c)})
		})
		bank.GET("/", bankHandler.ListBanks)
		bank.GET("/:id", bankHandler.GetBank)
		bank.DELETE("/:id", func(c *gin.Context) {
			bankHandler.DeleteBank(c)
			publisher.Publish("bank.deleted", gin.H{"bank_id": c.Param("id")})
		})
		bank.POST("/:id/can-create", bankHandler.CanCreateSubBank)
		bank.GET("/:id/sub-banks/:subBankId/can-create", bankHandler.CanCreateSubBankInSubBank)
		bank.POST("/:id/sub-banks", bankHandler.CreateSubBank)
		bank.POST("/:id/sub-banks/nested", bankHandler.CreateNestedSubBank)
		bank.POST("/:id/sub-banks/:subBankId/children", bankHandler.CreateSubBankInSubBank)
		bank.POST("/:id/exams", bankHandler.AddExamToSubBank)
		bank.DELETE("/:id/exams", func(c *gin.Context) {
			bankHandler.RemoveExamFromSubBank(c)
			publisher.Publish("bank.exam_removed", gin.H{"bank_id": c.Param("id")})
		})
		bank.DELETE("/:id/sub-banks/:subBankId", func(c *gin.Context) {
			bankHandler.DeleteSubBank(c)
			publisher.Publish("bank.sub_bank_deleted", gin.H{"bank_id": c.Param("id"), "sub_bank_id": c.Param("subBankId")})
		})
		bank.PUT("/:id/sub-banks/:subBankId/rename", bankHandler.RenameSubBank)
		bank.PUT("/:id/sub-banks/:subBankId", bankHandler.UpdateSubBank)
	}

	exam := protected.Group("/examinations", instructorOnly)
	{
		exam.POST("/", examHandler.CreateExamination)
		exam.GET("/", examHandler.ListExaminations)
		exam.GET("/:id", examHandler.GetExamination)
		exam.PUT("/:id", examHandler.UpdateExamination)
		exam.DELETE("/:id", func(c *gin.Context) {
			examHandler.DeleteExamination(c)
			publisher.Publish("exam.deleted", gin.H{"examination_id": c.Param("id")})
		})
	}

	schedule := protected.Group("/schedules")
	{
		schedule.POST("/", instructorOnly, func(c *gin.Context) {
			scheduleHandler.CreateSchedule(c)
			publisher.Publish("schedule.created", gin.H{"instructor_id": middleware.UserID(c)})
		})
		schedule.GET("/", instructorOnly, scheduleHandler.ListSchedules)
		schedule.GET("/:id", scheduleHandler.GetSchedule)
		schedule.PUT("/:id", instructorOnly, scheduleHandler.UpdateSchedule)
		schedule.DELETE("/:id", instructorOnly, func(c *gin.Context) {
			scheduleHandler.DeleteSchedule(c)
			publisher.Publish("schedule.deleted", gin.H{"schedule_id": c.Param("id")})
		})
		schedule.GET("/:id/questions", scheduleHandler.GetDeliveryQuestions)
		schedule.POST("/:id/access", scheduleHandler.CheckAccess)
	}

	submission := protected.Group("/submissions")
	{
		submission.POST("/", func(c *gin.Context) {
			submissionHandler.SubmitExam(c)
			publisher.Publish("submission.created", gin.H{"student_id": middleware.UserID(c)})
		})
		submission.GET("/mine", submissionHandler.ListMySubmissions)
		submission.GET("/:id", submissionHandler.GetSubmission)
		submission.GET("/schedule/:scheduleId", instructorOnly, submissionHandler.ListBySchedule)
		submission.GET("/schedule/:scheduleId/can-attempt", submissionHandler.CanAttempt)
		submission.POST("/:id/grade", instructorOnly, func(c *gin.Context) {
			submissionHandler.GradeSubmission(c)
			publisher.Publish("submission.graded", gin.H{"submission_id": c.Param("id"), "graded_by": middleware.UserID(c)})
		})
		submission.POST("/:id/manual-grade", instructorOnly, submissionHandler.ManualGradeQuestion)
		submission.POST("/:id/review", instructorOnly, submissionHandler.MarkReviewed)
	}

	course := protected.Group("/courses", instructorOnly)
	{
		course.POST("/", courseHandler.CreateCourse)
		course.PUT("/:id", courseHandler.UpdateCourse)
		course.DELETE("/:id", courseHandler.DeleteCourse)
		course.POST("/:id/enroll", courseHandler.EnrollStudent)
		course.POST("/:id/unenroll", courseHandler.UnenrollStudent)
		course.POST("/:id/groups", courseHandler.AddGroup)
		course.POST("/:id/groups/:groupId/students", courseHandler.AddStudentToGroup)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
