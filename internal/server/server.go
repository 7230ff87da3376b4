package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"bank-account/internal/config"
	"bank-account/internal/errors"
	"bank-account/internal/handler"
	"bank-account/internal/service"

	"github.com/gorilla/mux"
)

// Server represents the HTTP server
type Server struct {
	router  *mux.Router
	server  *http.Server
	service *service.AccountService
	logger  *slog.Logger
	port    string
}

// NewServer opens the process's account and wires it to the router
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	account, err := service.OpenAccount(cfg.OpeningBalance)
	if err != nil {
		return nil, err
	}

	accountService := service.NewAccountService(account, logger)
	logger.Info("Account opened", "account_id", accountService.ID(), "balance", account.Balance())

	accountHandler := handler.NewAccountHandler(accountService)

	router := mux.NewRouter()
	router.Use(loggingMiddleware(logger))
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	router.HandleFunc("/account", accountHandler.GetAccount).Methods("GET")
	router.HandleFunc("/account/deposit", accountHandler.Deposit).Methods("POST")
	router.HandleFunc("/account/withdraw", accountHandler.Withdraw).Methods("POST")

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}).Methods("GET")

	return &Server{
		router:  router,
		service: accountService,
		logger:  logger,
	}, nil
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	appErr := errors.NewAppErrorf(errors.MethodNotAllowed, "method %s not allowed on %s", r.Method, r.URL.Path)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.HTTPStatus())
	json.NewEncoder(w).Encode(map[string]*errors.AppError{"error": appErr})
}

// loggingMiddleware adds request logging
func loggingMiddleware(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(ww, r)

			logger.Info("request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.statusCode,
				"duration", time.Since(start),
				"user_agent", r.UserAgent(),
			)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Start starts the HTTP server on the specified port
func (s *Server) Start(port string) (string, error) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return "", err
	}

	addr := listener.Addr().(*net.TCPAddr)
	s.port = strconv.Itoa(addr.Port)

	s.server = &http.Server{
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server", "port", s.port)

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Server failed", "error", err)
		}
	}()

	return s.port, nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server", "account_id", s.service.ID(), "balance", s.service.Balance())

	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// GetBaseURL returns the base URL for the server
func (s *Server) GetBaseURL() string {
	return "http://localhost:" + s.port
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *mux.Router {
	return s.router
}

// StartServer starts the server with the given configuration
func StartServer(cfg *config.Config) (*Server, string, error) {
	var logger *slog.Logger
	if cfg.ServerPort == "0" {
		// Test environment - use discard logger
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	server, err := NewServer(cfg, logger)
	if err != nil {
		return nil, "", err
	}

	port, err := server.Start(cfg.ServerPort)
	if err != nil {
		return nil, "", err
	}

	return server, port, nil
}
