package api

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/pollwise/newsvote-be/internal/api/handlers"
	"github.com/pollwise/newsvote-be/internal/auth"
	"github.com/pollwise/newsvote-be/internal/services"
	"github.com/pollwise/newsvote-be/internal/websocket"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	staticDir string,
	sessions *auth.SessionStore,
	hub *websocket.Hub,
	optionService services.OptionServiceProvider,
	reviewService services.ReviewServiceProvider,
	userService services.UserServiceProvider,
	profileService services.ProfileServiceProvider,
	mailService services.MailServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	optionHandler := handlers.NewOptionHandler(optionService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	userHandler := handlers.NewUserHandler(userService, sessions)
	profileHandler := handlers.NewProfileHandler(profileService)
	mailHandler := handlers.NewMailHandler(mailService)
	wsHandler := handlers.NewWebSocketHandler(hub)

	// Static pages
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
	})
	r.Get("/review", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(staticDir, "review.html"))
	})
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	// Poll and form routes, mounted at root like the original pages expect
	r.Get("/options", optionHandler.GetAll)
	r.Post("/vote", optionHandler.Vote)
	r.Post("/submit-review", reviewHandler.Submit)
	r.Post("/send-email", mailHandler.Send)
	r.Post("/signup", userHandler.Signup)
	r.Post("/login", userHandler.Login)
	r.Post("/saveProfile", profileHandler.Save)

	r.Route("/api/v1", func(r chi.Router) {
		// WebSocket endpoint for the live tally feed
		r.Get("/ws", wsHandler.Serve)

		r.Get("/me", userHandler.Me)
		r.Get("/reviews", reviewHandler.GetAll)
	})

	return r
}
