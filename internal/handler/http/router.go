package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/techdigi/hr-backoffice/internal/domain/user"
	"github.com/techdigi/hr-backoffice/internal/handler/http/middleware"
	"github.com/techdigi/hr-backoffice/internal/pkg/jwt"
)

// Handlers groups every HTTP surface mounted by NewRouter.
type Handlers struct {
	Auth        AuthHandler
	Attendance  AttendanceHandler
	Employee    EmployeeHandler
	Profile     ProfileHandler
	Salary      SalaryHandler
	Certificate CertificateHandler
	Letter      LetterHandler
	Job         JobHandler
	Application ApplicationHandler
	Inquiry     InquiryHandler
	Testimonial TestimonialHandler
	Technology  TechnologyHandler
	Offering    OfferingHandler
}

type RouterConfig struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
	// UploadsDir is served at UploadsURL when files are stored locally. Empty disables it.
	UploadsDir string
	UploadsURL string
}

func NewRouter(cfg RouterConfig, jwtService jwt.Service, users user.UserRepository, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  cfg.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	if cfg.UploadsDir != "" {
		prefix := "/" + strings.Trim(cfg.UploadsURL, "/")
		fs := http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.UploadsDir)))
		r.Get(prefix+"/*", fs.ServeHTTP)
	}

	authenticated := func(r chi.Router) {
		r.Use(middleware.Verifier(jwtService))
		r.Use(middleware.AuthRequired(users))
	}
	adminOnly := func(r chi.Router) {
		authenticated(r)
		r.Use(middleware.AdminOnly)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Auth.Signup)
			r.Post("/login", h.Auth.Login)
			r.Post("/forgot-password", h.Auth.ForgotPassword)
			r.Post("/reset-password/{token}", h.Auth.ResetPassword)

			r.Group(func(r chi.Router) {
				authenticated(r)
				r.Post("/logout", h.Auth.Logout)
				r.Get("/me", h.Auth.Me)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				authenticated(r)
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Post("/request-leave", h.Attendance.RequestLeave)
				r.Get("/today", h.Attendance.GetToday)
				r.Get("/me", h.Attendance.GetMyMonth)
			})

			r.Route("/admin", func(r chi.Router) {
				adminOnly(r)
				r.Get("/all", h.Attendance.ListByDate)
				r.Get("/employee/{id}", h.Attendance.ListForEmployee)
				r.Put("/update/{id}", h.Attendance.Correct)
				r.Get("/summary/{id}", h.Attendance.Summary)
				r.Get("/export/all", h.Attendance.ExportAll)
				r.Get("/export/employee/{id}", h.Attendance.ExportEmployee)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			adminOnly(r)
			r.Get("/employees", h.Employee.List)
			r.Get("/employees/count", h.Employee.Count)
			r.Post("/employees", h.Employee.Create)
			r.Delete("/employees/{id}", h.Employee.Delete)
			r.Get("/admins", h.Employee.ListAdmins)
			r.Post("/create-admin", h.Employee.CreateAdmin)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				authenticated(r)
				r.Get("/me", h.Profile.GetMine)
				r.Put("/me", h.Profile.UpdateMine)
			})
			r.Group(func(r chi.Router) {
				adminOnly(r)
				r.Get("/user/{userId}", h.Profile.GetByUserID)
			})
		})

		r.Route("/salary", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				authenticated(r)
				r.Get("/employee/my-slips", h.Salary.MySlips)
			})
			r.Group(func(r chi.Router) {
				adminOnly(r)
				r.Get("/details/{userId}/{month}/{year}", h.Salary.Details)
				r.Post("/create-manual/{userId}", h.Salary.CreateManual)
				r.Patch("/publish/{slipId}", h.Salary.Publish)
				r.Get("/admin/history", h.Salary.History)
				r.Get("/admin/{userId}", h.Salary.ListForUser)
			})
		})

		r.Route("/certificates", func(r chi.Router) {
			r.Post("/verify", h.Certificate.Verify)
			r.Group(func(r chi.Router) {
				authenticated(r)
				r.Post("/request", h.Certificate.Submit)
				r.Get("/my-requests", h.Certificate.MyRequests)
			})
			r.Route("/admin", func(r chi.Router) {
				adminOnly(r)
				r.Get("/all", h.Certificate.ListAll)
				r.Put("/update/{id}", h.Certificate.Review)
				r.Delete("/delete/{id}", h.Certificate.Delete)
			})
		})

		r.Route("/letters", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				authenticated(r)
				r.Get("/my-letters", h.Letter.MyLetters)
			})
			r.Group(func(r chi.Router) {
				adminOnly(r)
				r.Post("/offer", h.Letter.CreateOffer)
				r.Post("/experience", h.Letter.CreateExperience)
			})
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", h.Job.ListActive)
			r.Get("/{id}", h.Job.GetActive)
			r.Group(func(r chi.Router) {
				adminOnly(r)
				r.Get("/admin/all", h.Job.ListAll)
				r.Post("/", h.Job.Create)
				r.Put("/{id}", h.Job.Update)
				r.Delete("/{id}", h.Job.Delete)
			})
		})

		r.Route("/applications", func(r chi.Router) {
			r.Post("/", h.Application.Submit)
			r.Group(func(r chi.Router) {
				adminOnly(r)
				r.Get("/", h.Application.List)
				r.Put("/{id}/status", h.Application.UpdateStatus)
				r.Delete("/{id}", h.Application.Delete)
			})
		})

		r.Route("/queries", func(r chi.Router) {
			r.Post("/", h.Inquiry.Submit)
			r.Group(func(r chi.Router) {
				adminOnly(r)
				r.Get("/", h.Inquiry.List)
				r.Post("/{id}/reply", h.Inquiry.Reply)
				r.Delete("/{id}", h.Inquiry.Delete)
			})
		})

		r.Route("/testimonials", func(r chi.Router) {
			r.Get("/", h.Testimonial.ListPublished)
			r.Group(func(r chi.Router) {
				adminOnly(r)
				r.Get("/admin/all", h.Testimonial.ListAll)
				r.Post("/", h.Testimonial.Create)
				r.Put("/{id}", h.Testimonial.Update)
				r.Delete("/{id}", h.Testimonial.Delete)
			})
		})

		r.Route("/technologies", func(r chi.Router) {
			r.Get("/", h.Technology.List)
			r.Group(func(r chi.Router) {
				adminOnly(r)
				r.Post("/", h.Technology.Create)
				r.Patch("/{id}", h.Technology.Update)
				r.Delete("/{id}", h.Technology.Delete)
			})
		})

		r.Route("/services", func(r chi.Router) {
			r.Get("/", h.Offering.List)
			r.Get("/slug/{slug}", h.Offering.GetBySlug)
			r.Get("/{id}", h.Offering.GetByID)
			r.Group(func(r chi.Router) {
				adminOnly(r)
				r.Post("/", h.Offering.Create)
				r.Put("/{id}", h.Offering.Update)
				r.Delete("/{id}", h.Offering.Delete)
			})
		})
	})
	return r
}
