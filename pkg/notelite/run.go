package notelite

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Run starts the HTTP server.
//
// # API endpoints
//
//	POST   /notes        - Create a note
//	GET    /notes        - List all notes
//	GET    /notes/{id}   - Get a note by ID
//	PATCH  /notes/{id}   - Partially update a note
//	PUT    /notes/{id}   - Update a note
//	DELETE /notes/{id}   - Delete a note
//	GET    /health       - Service health status
//
// The method blocks until the context is cancelled or a fatal server error
// occurs. On shutdown it allows up to 5 seconds for in-flight requests to
// complete before closing.
func (a *App) Run(ctx context.Context, cmd *RunCommand) error {
	router := a.routes()

	addr := fmt.Sprintf(":%s", a.config.ServerPort)
	a.log.Info().Str("addr", addr).Msg("starting notelite server")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}

// routes builds the router. Separated from Run so handler tests can mount
// the full routing table on an httptest server.
func (a *App) routes() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", a.handleHealth).Methods("GET")

	router.HandleFunc("/notes", a.handleCreateNote).Methods("POST")
	router.HandleFunc("/notes", a.handleListNotes).Methods("GET")
	router.HandleFunc("/notes/{id}", a.handleGetNote).Methods("GET")
	router.HandleFunc("/notes/{id}", a.handleUpdateNote).Methods("PATCH", "PUT")
	router.HandleFunc("/notes/{id}", a.handleDeleteNote).Methods("DELETE")

	router.Use(a.requestLogger)

	return router
}

// requestLogger logs one structured line per request, tagged with a
// generated request id.
func (a *App) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		a.log.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", recorder.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
