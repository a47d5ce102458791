package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/hrmspro/hrms-backend-go/internal/config"
	appHTTP "github.com/hrmspro/hrms-backend-go/internal/handler/http"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/database"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/letter"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/sse"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/storage"
	"github.com/hrmspro/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrmspro/hrms-backend-go/internal/service/attendance"
	authService "github.com/hrmspro/hrms-backend-go/internal/service/auth"
	communicationService "github.com/hrmspro/hrms-backend-go/internal/service/communication"
	dashboardService "github.com/hrmspro/hrms-backend-go/internal/service/dashboard"
	employeeService "github.com/hrmspro/hrms-backend-go/internal/service/employee"
	leaveService "github.com/hrmspro/hrms-backend-go/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	chatRepo := postgresql.NewChatRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	letterTimeout, err := time.ParseDuration(cfg.Letter.Timeout)
	if err != nil {
		log.Fatal("Invalid LETTER_TIMEOUT: ", err)
	}
	letterClient := letter.New(cfg.Letter.BaseURL, cfg.Letter.Model, letterTimeout)

	hub := sse.NewHub()

	authSvc := authService.NewAuthService(db, userRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, location)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, letterClient)
	employeeSvc := employeeService.NewEmployeeService(db, userRepo, fileStorage)
	chatSvc := communicationService.NewChatService(db, chatRepo, userRepo, hub)
	announcementSvc := communicationService.NewAnnouncementService(db, announcementRepo, hub)
	dashboardSvc := dashboardService.NewDashboardService(db, dashboardRepo, location)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:          appHTTP.NewAuthHandler(jwtService, authSvc),
		Attendance:    appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:         appHTTP.NewLeaveHandler(leaveSvc),
		Employee:      appHTTP.NewEmployeeHandler(employeeSvc),
		Communication: appHTTP.NewCommunicationHandler(chatSvc, announcementSvc, jwtService, hub),
		Dashboard:     appHTTP.NewDashboardHandler(dashboardSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
