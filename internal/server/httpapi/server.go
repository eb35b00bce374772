// Package httpapi binds the users REST surface: a declarative route table
// over gorilla/mux, envelope-shaped handlers and the HTTP server lifecycle.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/usersvc/internal/logging"
	"github.com/dmitrijs2005/usersvc/internal/server/config"
)

type Server struct {
	config  *config.Config
	handler *Handler
	logger  logging.Logger
}

func NewServer(cfg *config.Config, handler *Handler, logger logging.Logger) *Server {
	return &Server{
		config:  cfg,
		handler: handler,
		logger:  logger.With("module", "http_server"),
	}
}

// NewRouter builds the route table. Path ids stay untyped strings here:
// integer coercion and range checks belong to the handlers, so that
// GET /usuarios/abc produces an explanatory 400 instead of a router 404.
func NewRouter(h *Handler, logger logging.Logger) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", handle(h.SystemInfo)).Methods(http.MethodGet)

	// /usuarios/paginado must precede /usuarios/{id} or the id route
	// would swallow it.
	r.HandleFunc("/usuarios/paginado", handle(h.PaginateUsers)).Methods(http.MethodGet)

	r.HandleFunc("/usuarios", handle(h.ListUsers)).Methods(http.MethodGet)
	r.HandleFunc("/usuarios", handle(h.CreateUser)).Methods(http.MethodPost)

	r.HandleFunc("/usuarios/{id}", handle(h.GetUser)).Methods(http.MethodGet)
	r.HandleFunc("/usuarios/{id}", handle(h.ReplaceUser)).Methods(http.MethodPut)
	r.HandleFunc("/usuarios/{id}", handle(h.MergeUser)).Methods(http.MethodPatch)
	r.HandleFunc("/usuarios/{id}", handle(h.DeleteUser)).Methods(http.MethodDelete)

	// Unmatched routes and wrong methods still answer with the envelope.
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusNotFound, fail("Ruta no encontrada"))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, fail("Método no permitido"))
	})

	r.Use(requestLogger(logger))

	return r
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      NewRouter(s.handler, s.logger),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.config.Address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
