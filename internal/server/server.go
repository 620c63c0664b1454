package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studytask/internal/clock"
	"studytask/internal/config"
	"studytask/internal/handler"
	"studytask/internal/logger"
	"studytask/internal/middleware"
	"studytask/internal/migrate"
	"studytask/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Log    *logrus.Logger
}

func Init(cfg *config.Config) (*Server, error) {
	log := logger.Init(cfg.LogLevel)

	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Info("✅ Connected to database")

	if err := migrate.Up(db); err != nil {
		return nil, fmt.Errorf("❌ failed to migrate schema: %w", err)
	}
	log.Info("✅ Schema is up to date")

	// Setup Gin
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	clk := clock.Real()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userRepo, log)
	subjectHandler := handler.NewSubjectHandler(subjectRepo, log)
	taskHandler := handler.NewTaskHandler(taskRepo, historyRepo, userRepo, clk, log)
	calendarHandler := handler.NewCalendarHandler(taskRepo, clk, log)
	studyHandler := handler.NewStudyHandler(sessionRepo, subjectRepo, clk, log)

	// Public routes
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// Subject routes
		authorized.POST("/subjects", subjectHandler.Create)
		authorized.GET("/subjects", subjectHandler.GetAll)
		authorized.DELETE("/subjects/:id", subjectHandler.Delete)

		// Task routes
		authorized.GET("/tasks", taskHandler.List)
		authorized.POST("/tasks", taskHandler.Create)
		authorized.POST("/tasks/quick", taskHandler.Quick)
		authorized.GET("/tasks/export", taskHandler.Export)
		authorized.GET("/tasks/:id", taskHandler.GetByID)
		authorized.POST("/tasks/:id/complete", taskHandler.Complete)
		authorized.POST("/tasks/:id/notes", taskHandler.AddNote)
		authorized.POST("/tasks/:id/due-date", taskHandler.UpdateDueDate)
		authorized.DELETE("/tasks/:id", taskHandler.Delete)

		// Calendar routes
		authorized.GET("/calendar/:year/:month", calendarHandler.Month)
		authorized.GET("/calendar/day/:date", calendarHandler.Day)

		// Study timer routes
		authorized.POST("/study/sessions", studyHandler.CreateSession)
		authorized.GET("/study/timer", studyHandler.Timer)
		authorized.GET("/study/stats", studyHandler.Stats)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
		Log:    log,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		s.Log.Infof("🚀 Server running on port %s", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Log.Fatalf("❌ Failed to listen: %s", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.Log.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	s.Log.Info("✅ Server exited properly")
}
