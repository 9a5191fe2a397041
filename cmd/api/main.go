package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/go-chi/httplog/v3"

	"github.com/techdigi/hr-backoffice/internal/config"
	appHTTP "github.com/techdigi/hr-backoffice/internal/handler/http"
	"github.com/techdigi/hr-backoffice/internal/pkg/cron"
	"github.com/techdigi/hr-backoffice/internal/pkg/database"
	"github.com/techdigi/hr-backoffice/internal/pkg/email"
	"github.com/techdigi/hr-backoffice/internal/pkg/jwt"
	"github.com/techdigi/hr-backoffice/internal/pkg/notify"
	"github.com/techdigi/hr-backoffice/internal/pkg/storage"
	"github.com/techdigi/hr-backoffice/internal/repository/postgresql"
	applicationService "github.com/techdigi/hr-backoffice/internal/service/application"
	attendanceService "github.com/techdigi/hr-backoffice/internal/service/attendance"
	serviceAuth "github.com/techdigi/hr-backoffice/internal/service/auth"
	certificateService "github.com/techdigi/hr-backoffice/internal/service/certificate"
	employeeService "github.com/techdigi/hr-backoffice/internal/service/employee"
	"github.com/techdigi/hr-backoffice/internal/service/file"
	inquiryService "github.com/techdigi/hr-backoffice/internal/service/inquiry"
	jobService "github.com/techdigi/hr-backoffice/internal/service/job"
	letterService "github.com/techdigi/hr-backoffice/internal/service/letter"
	offeringService "github.com/techdigi/hr-backoffice/internal/service/offering"
	profileService "github.com/techdigi/hr-backoffice/internal/service/profile"
	salaryService "github.com/techdigi/hr-backoffice/internal/service/salary"
	technologyService "github.com/techdigi/hr-backoffice/internal/service/technology"
	testimonialService "github.com/techdigi/hr-backoffice/internal/service/testimonial"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logLevel := parseLogLevel(cfg.App.LogLevel)
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backoffice"),
		slog.String("version", version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx := context.Background()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	slipRepo := postgresql.NewSlipRepository(db)
	certificateRepo := postgresql.NewCertificateRepository(db)
	letterRepo := postgresql.NewLetterRepository(db)
	sequencer := postgresql.NewCounterRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	applicationRepo := postgresql.NewApplicationRepository(db)
	inquiryRepo := postgresql.NewInquiryRepository(db)
	testimonialRepo := postgresql.NewTestimonialRepository(db)
	technologyRepo := postgresql.NewTechnologyRepository(db)
	offeringRepo := postgresql.NewOfferingRepository(db)

	expiration, err := time.ParseDuration(cfg.JWT.Expiration)
	if err != nil {
		return fmt.Errorf("parse JWT_EXPIRES_IN: %w", err)
	}
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, expiration, cfg.JWT.CookieName, cfg.App.Env == "production")

	var fileStorage storage.FileStorage
	var uploadsDir string
	switch cfg.Storage.Type {
	case "local":
		local, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			return fmt.Errorf("initialize local storage: %w", err)
		}
		fileStorage = local
		uploadsDir = cfg.Storage.BasePath
	case "s3":
		s3, err := storage.NewS3Storage(ctx, cfg.Storage.Bucket, cfg.Storage.Region, cfg.Storage.PublicURL)
		if err != nil {
			return fmt.Errorf("initialize s3 storage: %w", err)
		}
		fileStorage = s3
	default:
		return fmt.Errorf("unsupported storage type: %s", cfg.Storage.Type)
	}
	fileService := file.NewFileService(fileStorage)

	var sender email.Sender
	switch cfg.Mail.Driver {
	case "ses":
		sender, err = email.NewSESSender(ctx, cfg.Mail.Region, cfg.Mail.From, cfg.Mail.FromName)
		if err != nil {
			return fmt.Errorf("initialize ses sender: %w", err)
		}
	default:
		sender = email.NewSMTPSender(cfg.Mail)
	}
	emailService, err := email.NewEmailService(sender, cfg.Mail.AdminEmail)
	if err != nil {
		return fmt.Errorf("initialize email service: %w", err)
	}

	notifier := notify.New(cfg.Slack.Token, cfg.Slack.InfoChannelID, cfg.Slack.ErrorChannelID)
	loc := cfg.App.Location

	authSvc := serviceAuth.NewAuthService(userRepo, jwtService, emailService, cfg.App.ClientURL)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo, loc)
	adminSvc := employeeService.NewEmployeeService(userRepo, profileRepo, fileService)
	profileSvc := profileService.NewProfileService(db, profileRepo, userRepo, fileService, loc)
	salarySvc := salaryService.NewSalaryService(slipRepo, userRepo, profileRepo, attendanceSvc)
	certificateSvc := certificateService.NewCertificateService(db, certificateRepo, sequencer, loc)
	letterSvc := letterService.NewLetterService(db, letterRepo, userRepo, sequencer, loc)
	jobSvc := jobService.NewJobService(jobRepo)
	applicationSvc := applicationService.NewApplicationService(applicationRepo, fileService, emailService)
	inquirySvc := inquiryService.NewInquiryService(inquiryRepo, emailService)
	testimonialSvc := testimonialService.NewTestimonialService(testimonialRepo, fileService)
	technologySvc := technologyService.NewTechnologyService(technologyRepo)
	offeringSvc := offeringService.NewOfferingService(offeringRepo, fileService)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:         logger,
		LogLevel:       logLevel,
		AllowedOrigins: cfg.App.AllowedOrigins,
		UploadsDir:     uploadsDir,
		UploadsURL:     cfg.Storage.BaseURL,
	}, jwtService, userRepo, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(jwtService, authSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:    appHTTP.NewEmployeeHandler(adminSvc),
		Profile:     appHTTP.NewProfileHandler(profileSvc),
		Salary:      appHTTP.NewSalaryHandler(salarySvc),
		Certificate: appHTTP.NewCertificateHandler(certificateSvc),
		Letter:      appHTTP.NewLetterHandler(letterSvc),
		Job:         appHTTP.NewJobHandler(jobSvc),
		Application: appHTTP.NewApplicationHandler(applicationSvc),
		Inquiry:     appHTTP.NewInquiryHandler(inquirySvc),
		Testimonial: appHTTP.NewTestimonialHandler(testimonialSvc),
		Technology:  appHTTP.NewTechnologyHandler(technologySvc),
		Offering:    appHTTP.NewOfferingHandler(offeringSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc, notifier, cfg.Cron.AbsenceJobHour, cfg.Cron.AbsenceJobMinute, loc).RegisterJobs(scheduler)
	cron.NewMaintenanceJobs(authSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", srv.Addr, "timezone", loc.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("http server: %w", err)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
