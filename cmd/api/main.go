package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"meeting-scheduler/config"
	_ "meeting-scheduler/docs" // Swagger docs
	authUC "meeting-scheduler/internal/auth/usecase"
	"meeting-scheduler/internal/httpserver"
	meetingMemory "meeting-scheduler/internal/meeting/repository/memory"
	meetingUC "meeting-scheduler/internal/meeting/usecase"
	"meeting-scheduler/internal/session"
	"meeting-scheduler/pkg/datemath"
	"meeting-scheduler/pkg/gcalendar"
	"meeting-scheduler/pkg/googleauth"
	"meeting-scheduler/pkg/log"
)

// @title       Meeting Scheduler API
// @description Google sign-in and instant or scheduled Google Meet meetings backed by Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey SessionToken
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Meeting Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Base URL: %s", cfg.App.BaseURL)

	// 3. Sessions
	sessions, err := session.NewManager(session.Config{
		SigningSecret: cfg.Session.SigningSecret,
		TTL:           cfg.Session.TTL,
		Cookie: session.CookieConfig{
			Name:   cfg.Session.CookieName,
			Domain: cfg.Session.CookieDomain,
			Secure: cfg.Session.CookieSecure,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize sessions: ", err)
		return
	}

	// 4. Google OAuth client
	google, err := googleauth.New(googleauth.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Google OAuth: ", err)
		return
	}

	// 5. DateMath parser
	timezone := cfg.Meeting.Timezone
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		timezone = "UTC"
		dateMathParser, _ = datemath.NewParser(timezone)
	}

	// 6. Meeting domain
	meetingRepo := meetingMemory.New(meetingMemory.Config{
		MaxOwners: cfg.Store.MaxUsers,
		TTL:       cfg.Store.TTL,
	})
	calendars := meetingUC.NewCalendarProvider(gcalendar.NewFactory())
	meetings := meetingUC.New(logger, meetingRepo, calendars, google, dateMathParser, cfg.Google.CalendarID, timezone)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Sessions:        sessions,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		MeetingUseCase:  meetings,
		AuthUseCase:     authUC.New(logger, google),
		BaseURL:         cfg.App.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
