package http

import (
	"log/slog"
	"os"

	"github.com/dayflow-hq/hrms-backend-go/internal/config"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hq/hrms-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth         AuthHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Employee     EmployeeHandler
	Notification NotificationHandler
	Dashboard    DashboardHandler
	Realtime     RealtimeHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "dayflow-hrms"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Auth.Signup)
			r.Post("/signin", h.Auth.Signin)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", h.Auth.Me)
				r.Post("/stream-token", h.Auth.StreamToken)
			})
		})

		// The SSE handshake carries a stream token in the query string, so
		// it sits outside the access-token group
		r.Get("/realtime/stream", h.Realtime.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/realtime/typing", h.Realtime.Typing)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/checkin", h.Attendance.CheckIn)
				r.Post("/checkout", h.Attendance.CheckOut)
				r.Get("/", h.Attendance.List)
				r.Get("/summary", h.Attendance.Summary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.ResourceAttendance, user.ActionUpdate))
					r.Put("/{id}", h.Attendance.Update)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Apply)
				r.Get("/", h.Leave.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.ResourceLeave, user.ActionApprove))
					r.Put("/{id}/status", h.Leave.Review)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", h.Employee.GetMyProfile)
				r.Put("/me", h.Employee.UpdateMyProfile)
				r.Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.ResourceEmployee, user.ActionViewAll))
					r.Get("/", h.Employee.List)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.ResourceEmployee, user.ActionViewAll))
					r.Use(middleware.RequirePermission(user.ResourceEmployee, user.ActionUpdate))
					r.Put("/{id}", h.Employee.Update)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.ResourceEmployee, user.ActionDeactivate))
					r.Delete("/{id}", h.Employee.Deactivate)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Put("/{id}/read", h.Notification.MarkAsRead)
				r.Put("/read-all", h.Notification.MarkAllAsRead)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/me", h.Dashboard.Employee)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.ResourceDashboard, user.ActionViewAll))
					r.Get("/admin", h.Dashboard.Admin)
				})
			})
		})
	})

	return r
}
