package api

import (
	"net/http"
	"time"

	"blogapi/internal/api/handler"
	"blogapi/internal/api/middleware"
	"blogapi/internal/app/service"
	"blogapi/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
	"go.uber.org/zap"
)

func NewRouter(
	authService *service.AuthService,
	userService *service.UserService,
	postService *service.PostService,
	tokens *security.TokenManager,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// Decodes a bearer token, if present, and puts it in the request context.
	// Enforcement happens per route group via middleware.Authenticator.
	r.Use(jwtauth.Verifier(tokens.JWTAuth()))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(apiRouter chi.Router) {
		authHandler := handler.NewAuthHandler(authService, logger)
		userHandler := handler.NewUserHandler(userService, logger)
		apiRouter.Route("/users", func(usersRouter chi.Router) {
			authHandler.RegisterRoutes(usersRouter)
			userHandler.RegisterRoutes(usersRouter)
		})

		postHandler := handler.NewPostHandler(postService, logger)
		apiRouter.Route("/posts", postHandler.RegisterRoutes)
	})

	return r
}
