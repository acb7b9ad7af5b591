package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Yaswanth6303/Timetable-Project/api/swagger"
	"github.com/Yaswanth6303/Timetable-Project/internal/handler"
	"github.com/Yaswanth6303/Timetable-Project/internal/middleware"
	"github.com/Yaswanth6303/Timetable-Project/internal/models"
	"github.com/Yaswanth6303/Timetable-Project/internal/repository"
	"github.com/Yaswanth6303/Timetable-Project/internal/service"
	"github.com/Yaswanth6303/Timetable-Project/pkg/config"
	"github.com/Yaswanth6303/Timetable-Project/pkg/database"
	"github.com/Yaswanth6303/Timetable-Project/pkg/logger"
	corsmiddleware "github.com/Yaswanth6303/Timetable-Project/pkg/middleware/cors"
	reqidmiddleware "github.com/Yaswanth6303/Timetable-Project/pkg/middleware/requestid"
)

// @title Timetable Project API
// @version 1.0.0
// @description Institutional timetable management backend
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if missing := cfg.MissingSecrets(); len(missing) > 0 {
		logr.Sugar().Warnw("JWT secrets not configured, signin will fail for these roles", "missing", missing)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	validate := validator.New()

	adminRepo := repository.NewIdentityRepository(db, repository.TableAdmins)
	facultyRepo := repository.NewIdentityRepository(db, repository.TableFacultyAccounts)
	studentRepo := repository.NewStudentRepository(db)
	directoryRepo := repository.NewFacultyDirectoryRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	timetableRepo := repository.NewTimetableRepository(db)
	scheduleRepo := repository.NewFacultyTimetableRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)

	adminAuth := service.NewAuthService(adminRepo, adminRepo, validate, logr, service.AuthConfig{
		Role:        models.RoleAdmin,
		Secret:      cfg.JWT.AdminSecret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      cfg.JWT.Issuer,
	})
	facultyAuth := service.NewAuthService(facultyRepo, facultyRepo, validate, logr, service.AuthConfig{
		Role:        models.RoleFaculty,
		Secret:      cfg.JWT.FacultySecret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      cfg.JWT.Issuer,
	})
	studentAuth := service.NewStudentAuthService(studentRepo, validate, logr, service.AuthConfig{
		Role:        models.RoleStudent,
		Secret:      cfg.JWT.StudentSecret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      cfg.JWT.Issuer,
	})
	catalogSvc := service.NewCatalogService(directoryRepo, courseRepo, roomRepo, validate, logr)
	timetableSvc := service.NewTimetableService(timetableRepo, scheduleRepo, assignmentRepo, courseRepo, roomRepo, facultyRepo, validate, logr)
	metricsSvc := service.NewMetricsService()

	adminAuthHandler := handler.NewAuthHandler(adminAuth)
	facultyAuthHandler := handler.NewAuthHandler(facultyAuth)
	studentHandler := handler.NewStudentHandler(studentAuth)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	timetableHandler := handler.NewTimetableHandler(timetableSvc, metricsSvc, cfg.Imports)
	facultyHandler := handler.NewFacultyHandler(timetableSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	admin := api.Group("/admin")
	admin.POST("/signup", adminAuthHandler.Signup)
	admin.POST("/signin", adminAuthHandler.Signin)
	adminProtected := admin.Group("", middleware.TokenAuth(adminAuth))
	adminProtected.POST("/addFaculty", catalogHandler.AddFaculty)
	adminProtected.POST("/addCourse", catalogHandler.AddCourse)
	adminProtected.POST("/addRoom", catalogHandler.AddRoom)
	adminProtected.POST("/master-timetable/upload", timetableHandler.Upload)
	adminProtected.POST("/master-timetable/manual", timetableHandler.ManualEntry)
	adminProtected.GET("/master-timetable/export", timetableHandler.Export)

	faculty := api.Group("/faculty")
	faculty.POST("/signup", facultyAuthHandler.Signup)
	faculty.POST("/signin", facultyAuthHandler.Signin)
	facultyProtected := faculty.Group("", middleware.TokenAuth(facultyAuth))
	facultyProtected.GET("/mytimetable", facultyHandler.MyTimetable)
	facultyProtected.PUT("/updateMyProfile", facultyAuthHandler.UpdateProfile)
	facultyProtected.PUT("/change-password", facultyAuthHandler.ChangePassword)
	facultyProtected.GET("/masterTimetable", facultyHandler.MasterTimetable)
	facultyProtected.GET("/courses", facultyHandler.AssignedCourses)

	student := api.Group("/student")
	student.POST("/signup", studentHandler.Signup)
	student.POST("/signin", studentHandler.Signin)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
