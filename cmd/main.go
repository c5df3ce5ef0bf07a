package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"github.com/adarshgupta/exam-portal/config"
	_ "github.com/adarshgupta/exam-portal/docs" // Swagger docs - auto-generated
	adminctrl "github.com/adarshgupta/exam-portal/internal/controller/admin"
	studentctrl "github.com/adarshgupta/exam-portal/internal/controller/student"
	"github.com/adarshgupta/exam-portal/internal/logger"
	"github.com/adarshgupta/exam-portal/internal/repository"
	"github.com/adarshgupta/exam-portal/internal/service"
	"github.com/adarshgupta/exam-portal/internal/store"
)

// @title Exam Portal API
// @version 1.0
// @description API backing the exam-taking application: student registration, test papers, submissions and admin results.
// @host localhost:5000
// @BasePath /api
// @schemes http
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			NewStore, // Provides *store.Store
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewStudentRepository,
			repository.NewTestRepository,
			repository.NewAttemptRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewStudentService,
			service.NewAdminService,
		),

		// API Controllers Layer
		fx.Provide(
			studentctrl.NewStudentController,
			adminctrl.NewAdminController,
		),

		fx.Invoke(InitStorage),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewStore(cfg *config.Config) *store.Store {
	return store.New(afero.NewOsFs(), cfg.Storage.DataDir)
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	// Any origin may call the API; only GET/POST with a JSON body are served.
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	// Swagger UI: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// InitStorage creates the data directory and empty collection documents on
// first run.
func InitStorage(st *store.Store) error {
	log.Info().Msg("Ensuring storage collections exist...")
	if err := st.Init(store.Students, store.Tests, store.Attempts); err != nil {
		log.Error().Err(err).Msg("Storage initialization failed")
		return err
	}
	log.Info().Msg("Storage collections ready")
	return nil
}

func registerRoutes(
	router *gin.Engine,
	studentCtrl *studentctrl.StudentController,
	adminCtrl *adminctrl.AdminController,
) {
	studentGroup := router.Group("/api/student")
	{
		studentGroup.POST("/login", studentCtrl.Login)
		studentGroup.GET("/tests/:studentId", studentCtrl.ListAvailableTests)
		studentGroup.GET("/test/:testId", studentCtrl.GetTestPaper)
		studentGroup.POST("/submit", studentCtrl.Submit)
	}

	adminGroup := router.Group("/api/admin")
	{
		adminGroup.POST("/test", adminCtrl.CreateTest)
		adminGroup.GET("/results", adminCtrl.ListResults)
	}
}

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	studentCtrl *studentctrl.StudentController,
	adminCtrl *adminctrl.AdminController,
) {
	registerRoutes(router, studentCtrl, adminCtrl)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam portal server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
