package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dayflow-hq/hrms-backend-go/internal/config"
	appHTTP "github.com/dayflow-hq/hrms-backend-go/internal/handler/http"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/database"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/realtime"
	"github.com/dayflow-hq/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/dayflow-hq/hrms-backend-go/internal/service/attendance"
	authService "github.com/dayflow-hq/hrms-backend-go/internal/service/auth"
	dashboardService "github.com/dayflow-hq/hrms-backend-go/internal/service/dashboard"
	employeeService "github.com/dayflow-hq/hrms-backend-go/internal/service/employee"
	leaveService "github.com/dayflow-hq/hrms-backend-go/internal/service/leave"
	notificationService "github.com/dayflow-hq/hrms-backend-go/internal/service/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.StreamExpiration)

	registry := realtime.NewRegistry(cfg.Realtime.ConnBufferSize)
	emitter := realtime.NewEmitter(registry)

	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, emitter)
	notificationSvc := notificationService.NewNotificationService(notificationRepo, emitter)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, employeeRepo, userRepo, notificationSvc, emitter)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo, leaveRequestRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Realtime:     appHTTP.NewRealtimeHandler(authSvc, registry, emitter, cfg.Realtime.KeepAliveInterval),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
