package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dzahariev/hellocafe/cfg"
	"github.com/dzahariev/hellocafe/domain"
	"github.com/gorilla/mux"
)

// Server represent current API server
type Server struct {
	ServerConfig cfg.Server
	Router       *mux.Router
	Catalog      *domain.Catalog
}

func NewServer(serverConfig cfg.Server, logConfig cfg.Logger, catalog *domain.Catalog) (*Server, error) {
	if catalog == nil {
		return nil, errors.New("catalog is required")
	}
	// Initialise server instance
	server := &Server{}
	// Keep configuration
	server.ServerConfig = serverConfig
	// Initialise logger
	server.initLogger(logConfig)
	// Store the drink catalog, it is read only from now on
	server.Catalog = catalog
	// Initialise router and register all routes
	server.initRouter()
	slog.Info("Server initialized", "port", server.ServerConfig.Port, "drinks", catalog.Len())
	return server, nil
}

func (server *Server) initLogger(logConfig cfg.Logger) {
	var logLevel slog.Leveler
	switch logConfig.Level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelDebug
	}
	var logHandler slog.Handler
	if logConfig.Format == "json" {
		logHandler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	} else {
		logHandler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	}
	slog.SetDefault(slog.New(logHandler))
	slog.Info("Logger initialized", "level", logConfig.Level, "format", logConfig.Format)
}

// initRouter is used to register routes
func (server *Server) initRouter() {
	server.Router = mux.NewRouter()
	server.Router.Use(loggerMiddleware)
	// mux skips Use middleware when no route matches
	server.Router.NotFoundHandler = loggerMiddleware(ContentTypeJSON(notFound))
	server.Router.MethodNotAllowedHandler = loggerMiddleware(ContentTypeJSON(methodNotAllowed))

	apiPath := fmt.Sprintf("/%s", server.ServerConfig.APIPath)
	assortmentPath := fmt.Sprintf("/%s/assortment", server.ServerConfig.APIPath)
	for _, path := range []string{apiPath, apiPath + "/"} {
		server.Router.HandleFunc(path, ContentTypeJSON(server.Home)).Methods(http.MethodGet)
	}
	for _, path := range []string{assortmentPath, assortmentPath + "/"} {
		server.Router.HandleFunc(path, ContentTypeJSON(server.Assortment)).Methods(http.MethodGet)
	}
	// Healthcheck Route
	server.Router.HandleFunc("/healthz", ContentTypeJSON(server.Health())).Methods(http.MethodGet)
	err := server.Router.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		path, err := route.GetPathTemplate()
		if err != nil {
			return err
		}
		methods, err := route.GetMethods()
		if err != nil {
			return err
		}
		slog.Info("Registered route", "path", path, "methods", methods)
		return nil
	})
	if err != nil {
		slog.Error("Cannot list registered routes", "error", err)
	}
}

// Run binds the configured port and serves until SIGINT or SIGTERM
func (server *Server) Run() error {
	addr := fmt.Sprintf("0.0.0.0:%s", server.ServerConfig.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("cannot listen on %s: %w", addr, err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.Serve(ctx, listener)
}

// Serve handles requests on listener until ctx is done, then shuts down
// within the configured deadline
func (server *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		WriteTimeout: server.ServerConfig.WriteTimeout,
		ReadTimeout:  server.ServerConfig.ReadTimeout,
		IdleTimeout:  server.ServerConfig.IdleTimeout,
		Handler:      server.Router,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Listening", "address", listener.Addr().String())
		serveErr <- srv.Serve(listener)
	}()

	// Block until we receive termination signal.
	select {
	case err := <-serveErr:
		return fmt.Errorf("error while serving: %w", err)
	case <-ctx.Done():
	}

	// Wait for a deadline for termination.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ServerConfig.DeadlineOnInterrupt)
	defer cancel()
	slog.Info("Shutting down")
	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("cannot shut down gracefully: %w", err)
	}
	return nil
}
