package http

import (
	"net/http"

	"go-doctor-directory/internal/delivery/http/handler"
	"go-doctor-directory/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	directoryHandler  *handler.DirectoryHandler
	sessionHandler    *handler.SessionHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	directoryHandler *handler.DirectoryHandler,
	sessionHandler *handler.SessionHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		directoryHandler:  directoryHandler,
		sessionHandler:    sessionHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Directory (stateless, state travels in the query string)
	api.HandleFunc("/doctors", r.directoryHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/suggestions", r.directoryHandler.GetSuggestions).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id:[0-9]+}", r.directoryHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id:[0-9]+}/book", r.directoryHandler.BookDoctor).Methods(http.MethodPost)
	api.HandleFunc("/specialties", r.directoryHandler.GetSpecialties).Methods(http.MethodGet)

	// Browse sessions (navigation history kept server side)
	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.HandleFunc("", r.sessionHandler.CreateSession).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}", r.sessionHandler.GetSession).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}", r.sessionHandler.DeleteSession).Methods(http.MethodDelete)
	sessions.HandleFunc("/{id}/search", r.sessionHandler.Search).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/filters", r.sessionHandler.ChangeFilters).Methods(http.MethodPatch)
	sessions.HandleFunc("/{id}/specialties/toggle", r.sessionHandler.ToggleSpecialty).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/clear", r.sessionHandler.ClearFilters).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/back", r.sessionHandler.Back).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/forward", r.sessionHandler.Forward).Methods(http.MethodPost)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
