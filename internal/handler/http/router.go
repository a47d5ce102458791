package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/hrmspro/hrms-backend-go/internal/config"
	"github.com/hrmspro/hrms-backend-go/internal/domain/user"
	"github.com/hrmspro/hrms-backend-go/internal/handler/http/middleware"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth          AuthHandler
	Attendance    AttendanceHandler
	Leave         LeaveHandler
	Employee      EmployeeHandler
	Communication CommunicationHandler
	Dashboard     DashboardHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(metrics.Middleware)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
		Skip: func(req *http.Request, respStatus int) bool {
			return req.URL.Path == "/metrics" || req.URL.Path == "/"
		},
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Uploaded files (profile pictures) are served statically.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// The event stream authenticates with its own short-lived token
		// in the query string, not the Authorization header.
		r.Get("/stream", h.Communication.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/punch-in", h.Attendance.PunchIn)
				r.Post("/punch-out", h.Attendance.PunchOut)
				r.Get("/today", h.Attendance.Today)
				r.Get("/history", h.Attendance.History)
				r.Get("/summary", h.Attendance.Summary)
				r.With(middleware.RequireReviewer).
					Get("/summary/{employeeID}", h.Attendance.Summary)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Submit)
				r.Get("/", h.Leave.List)
				r.Post("/draft-reason", h.Leave.DraftReason)
				r.Get("/balance", h.Leave.Balance)
				r.With(middleware.RequireReviewer).
					Post("/{requestID}/review", h.Leave.Review)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.Directory)
				r.Get("/departments", h.Employee.Departments)
				r.Get("/me", h.Employee.Me)
				r.Put("/me", h.Employee.UpdateProfile)
				r.Post("/me/picture", h.Employee.UploadProfilePicture)
				r.Get("/{employeeID}", h.Employee.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Employee.Create)
					r.Put("/{userID}/role", h.Employee.ChangeRole)
					r.Delete("/{userID}", h.Employee.Delete)
				})
			})

			r.Route("/chat", func(r chi.Router) {
				r.Post("/messages", h.Communication.SendMessage)
				r.Get("/contacts", h.Communication.Contacts)
				r.Get("/history/{employeeID}", h.Communication.ChatHistory)
				r.Post("/stream-token", h.Communication.StreamToken)
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/latest", h.Communication.LatestAnnouncement)
				r.With(middleware.RequirePermission(user.PermissionAnnouncementPost)).
					Post("/", h.Communication.PostAnnouncement)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/me", h.Dashboard.Employee)
				r.With(middleware.RequireReviewer).
					Get("/company", h.Dashboard.Company)
			})
		})
	})
	return r
}
