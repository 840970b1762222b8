// Package web serves a local implementation of the remote todo service contract.
//
// It exists for development and testing of the client: point --base-url at
// `todo serve` and the TUI behaves as it would against the deployed service.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"todo-cli/internal/model"
	"todo-cli/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Todos is the storage the server needs. *store.TodoDB implements it.
type Todos interface {
	List(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, title string, completed bool) (model.Task, error)
	Update(ctx context.Context, id model.TaskID, patch model.TaskPatch) (model.Task, error)
	Delete(ctx context.Context, id model.TaskID) error
}

type ServerConfig struct {
	Addr string
	// Prefix is prepended to every route (e.g. "/dev" to mimic an API gateway stage).
	Prefix string
}

type Server struct {
	cfg      ServerConfig
	todos    Todos
	log      *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics
	validate *validator.Validate
}

func NewServer(cfg ServerConfig, todos Todos, log *slog.Logger) (*Server, error) {
	cfg.Addr = strings.TrimSpace(cfg.Addr)
	cfg.Prefix = "/" + strings.Trim(strings.TrimSpace(cfg.Prefix), "/")
	if cfg.Prefix == "/" {
		cfg.Prefix = ""
	}
	if cfg.Addr == "" {
		return nil, errors.New("web: addr is empty")
	}
	if todos == nil {
		return nil, errors.New("web: no todo storage")
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	reg := prometheus.NewRegistry()
	return &Server{
		cfg:      cfg,
		todos:    todos,
		log:      log,
		registry: reg,
		metrics:  newMetrics(reg),
		validate: validator.New(),
	}, nil
}

func (s *Server) Addr() string { return s.cfg.Addr }

func (s *Server) Handler() http.Handler {
	p := s.cfg.Prefix
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+p+"/todos", s.instrument("/todos", s.handleList))
	mux.HandleFunc("POST "+p+"/todos", s.instrument("/todos", s.handleCreate))
	mux.HandleFunc("PUT "+p+"/todos/{id}", s.instrument("/todos/{id}", s.handleUpdate))
	mux.HandleFunc("DELETE "+p+"/todos/{id}", s.instrument("/todos/{id}", s.handleDelete))
	mux.HandleFunc("OPTIONS "+p+"/todos", s.handlePreflight)
	mux.HandleFunc("OPTIONS "+p+"/todos/{id}", s.handlePreflight)
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return mux
}

// ListenAndServe listens on the configured address and serves until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info("dev server listening", "addr", ln.Addr().String(), "prefix", s.cfg.Prefix)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type createRequest struct {
	Title     string `json:"title" validate:"required"`
	Completed bool   `json:"completed"`
}

type updateRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.todos.List(r.Context())
	if err != nil {
		s.storageError(w, "list", err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := s.validate.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Missing required field: title")
		return
	}
	task, err := s.todos.Create(r.Context(), req.Title, req.Completed)
	if err != nil {
		s.storageError(w, "create", err)
		return
	}
	s.log.Info("todo created", "id", task.ID)
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := model.TaskID(r.PathValue("id"))
	if id == "" {
		writeMessage(w, http.StatusBadRequest, "Missing path parameter: id")
		return
	}
	var req updateRequest
	if err := decodeBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	patch := model.TaskPatch{Title: req.Title, Completed: req.Completed}
	if patch.Empty() {
		writeMessage(w, http.StatusBadRequest, "No updatable fields provided (title, completed)")
		return
	}
	if patch.Title != nil {
		title, err := model.NormalizeTitle(*patch.Title)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Title cannot be empty")
			return
		}
		patch.Title = &title
	}

	task, err := s.todos.Update(r.Context(), id, patch)
	if errors.Is(err, store.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Todo not found: "+string(id))
		return
	}
	if err != nil {
		s.storageError(w, "update", err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := model.TaskID(r.PathValue("id"))
	if err := s.todos.Delete(r.Context(), id); err != nil {
		s.storageError(w, "delete", err)
		return
	}
	setCORS(w)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePreflight(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.WriteHeader(http.StatusNoContent)
}

type pinger interface {
	Ping(ctx context.Context) error
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if p, ok := s.todos.(pinger); ok {
		if err := p.Ping(r.Context()); err != nil {
			s.log.Error("health check", "err", err)
			writeMessage(w, http.StatusServiceUnavailable, "Storage unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) storageError(w http.ResponseWriter, op string, err error) {
	s.log.Error("storage error", "op", op, "err", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"message": "Storage error",
		"error":   err.Error(),
	})
}

func decodeBody(r *http.Request, v any) error {
	b, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return err
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		b = []byte("{}")
	}
	return json.Unmarshal(b, v)
}

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	setCORS(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
