package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pharmapath/backend/internal/config"
	"github.com/pharmapath/backend/internal/handler"
	"github.com/pharmapath/backend/internal/logging"
	"github.com/pharmapath/backend/internal/notify"
	"github.com/pharmapath/backend/internal/repository"
	"github.com/pharmapath/backend/internal/service"
	"github.com/pharmapath/backend/internal/storage"
	"github.com/pharmapath/backend/pkg/auth"
)

func main() {
	logging.Setup("pharmapath-api")

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("load config failed", "error", err)
	}

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	contactRepo := repository.NewPgContactRepository(pool)
	enrollmentRepo := repository.NewPgEnrollmentRepository(pool)
	sessionRepo := repository.NewPgSessionRepository(pool)

	sessionService := service.NewSessionService(sessionRepo)
	authService := service.NewAuthService(userRepo, sessionService)
	contactService := service.NewContactService(contactRepo)
	dispatcher := notify.NewHTTPDispatcher(cfg.NotifyEndpoint)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, dispatcher, cfg.NotifyTo)

	assets := storage.NewLocalStorage(cfg.AssetsDir, "/assets")

	h := handler.New(userRepo, cfg.FrontendURL)
	authHandler := handler.NewAuthHandler(authService, cfg.Production())
	meHandler := handler.NewMeHandler(userRepo, sessionService)
	contactHandler := handler.NewContactHandler(contactService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)
	notificationHandler := handler.NewNotificationHandler()
	brochureHandler := handler.NewBrochureHandler(assets, cfg.BrochureFile)

	// フォーム送信はレート制限をかける
	formLimiter := handler.NewRateLimiter(cfg.RateLimitPerMinute)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)

	mux.HandleFunc("POST /api/auth/signup", authHandler.SignUp)
	mux.HandleFunc("POST /api/auth/signin", authHandler.SignIn)
	mux.HandleFunc("POST /api/auth/signout", authHandler.SignOut)
	mux.HandleFunc("GET /api/auth/session", authHandler.Session)
	mux.HandleFunc("GET /api/me", meHandler.Me)

	mux.Handle("POST /api/contact", formLimiter.Middleware(http.HandlerFunc(contactHandler.Submit)))
	mux.Handle("POST /api/enrollments", formLimiter.Middleware(http.HandlerFunc(enrollmentHandler.Submit)))

	mux.HandleFunc("POST /api/internal/send-notification", notificationHandler.Send)

	mux.HandleFunc("HEAD /api/brochure", brochureHandler.Probe)
	mux.HandleFunc("GET /api/brochure", brochureHandler.Download)

	// 認証必要エンドポイント
	wrapAuth := func(next http.Handler) http.Handler {
		if cfg.AuthRequired {
			adminGate := auth.AdminFlag(func(ctx context.Context, userID string) (string, error) {
				u, err := userRepo.FindByID(ctx, userID)
				if err != nil {
					return "", err
				}
				return u.Email, nil
			}, cfg.AdminEmails)
			return auth.RequireAuth(sessionService)(adminGate(next))
		}
		return auth.DevAuth(next)
	}
	mux.Handle("GET /api/admin/contacts", wrapAuth(http.HandlerFunc(contactHandler.AdminList)))
	mux.Handle("GET /api/admin/enrollments", wrapAuth(http.HandlerFunc(enrollmentHandler.AdminList)))

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler.SecurityHeaders(handler.RequestLogger(h.CORS(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
