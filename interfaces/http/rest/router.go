package rest

import (
	"net/http"

	"todoapi/application/services"
	"todoapi/interfaces/http/rest/handlers"
	"todoapi/interfaces/http/rest/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	todoService *services.TodoService
	logger      *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(todoService *services.TodoService, logger *zap.Logger) *Router {
	return &Router{
		todoService: todoService,
		logger:      logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Recoverer(rt.logger))
	router.Use(middleware.Logger(rt.logger))

	// CORS preflight handling; actual responses carry the same header
	// set via the envelope writer.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"OPTIONS", "POST", "GET", "PUT", "DELETE"},
		AllowedHeaders: []string{"Content-Type", "X-Amz-Date", "Authorization", "X-Api-Key"},
		MaxAge:         300,
	}))

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// Todo endpoints
	router.Route("/todos", func(r chi.Router) {
		todoHandler := handlers.NewTodoHandler(rt.todoService, rt.logger)
		r.Post("/", todoHandler.CreateTodo)
		r.Get("/", todoHandler.ListTodos)
		r.Get("/{todoID}", todoHandler.GetTodo)
		r.Put("/{todoID}", todoHandler.UpdateTodo)
		r.Delete("/{todoID}", todoHandler.DeleteTodo)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
