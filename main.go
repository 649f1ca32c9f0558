package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pollwise/newsvote-be/internal/api"
	"github.com/pollwise/newsvote-be/internal/auth"
	"github.com/pollwise/newsvote-be/internal/config"
	"github.com/pollwise/newsvote-be/internal/database"
	"github.com/pollwise/newsvote-be/internal/logger"
	"github.com/pollwise/newsvote-be/internal/monitoring"
	"github.com/pollwise/newsvote-be/internal/services"
	"github.com/pollwise/newsvote-be/internal/websocket"
	mail "github.com/wneessen/go-mail"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.LogLevel)

	// Ensure the upload directory exists
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply database migrations: %v", err)
	}
	if err := database.SeedOptions(db); err != nil {
		log.Fatalf("Failed to seed voting options: %v", err)
	}

	// Set up WebSocket Hub for the live tally feed
	hub := websocket.NewHub()
	go hub.Run()

	// Set up services
	optionService := services.NewOptionService(db, hub)
	reviewService := services.NewReviewService(db)
	userService := services.NewUserService(db)
	profileService, err := services.NewProfileService(db, cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize profile service: %v", err)
	}

	// Outbound mail worker
	var sender services.SMTPSender = services.UnconfiguredSender{}
	if cfg.SMTPHost != "" {
		client, err := mail.NewClient(cfg.SMTPHost,
			mail.WithPort(cfg.SMTPPort),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUsername),
			mail.WithPassword(cfg.SMTPPassword),
		)
		if err != nil {
			log.Fatalf("Failed to initialize mail client: %v", err)
		}
		sender = client
	}
	mailService := services.NewMailService(sender, cfg.MailFrom, cfg.MailTo)
	go mailService.Run()

	// Session store for logged-in browsers
	sessions := auth.NewSessionStore(cfg.SessionTTL)

	// Optional scheduled tally digest
	var digest *monitoring.Digest
	if cfg.DigestCron != "" {
		digest, err = monitoring.NewDigest(optionService, mailService, cfg.DigestCron)
		if err != nil {
			log.Fatalf("Failed to initialize tally digest: %v", err)
		}
		go digest.Run()
	}

	// Set up router
	router := api.NewRouter(cfg.StaticDir, sessions, hub, optionService, reviewService, userService, profileService, mailService)

	// Set up server
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on %s\n", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if digest != nil {
		digest.Stop()
	}
	mailService.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
