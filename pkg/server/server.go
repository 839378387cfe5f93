package server

import (
	"context"
	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rycus86/mbta-route-tables/pkg/tables"
	"net/http"
	"time"
)

// Tables builds the three table views the server exposes.
type Tables interface {
	StyledRoutes(ctx context.Context) tables.Result
	LinkedRoutes(ctx context.Context) tables.Result
	ScheduleTable(ctx context.Context, routeID string) tables.Result
}

type Server struct {
	router   *mux.Router
	renderer *Renderer
	tables   Tables
}

func New(t Tables) (*Server, error) {
	s := &Server{
		router: mux.NewRouter(),
		tables: t,
	}

	renderer, err := NewRenderer(s.scheduleURL)
	if err != nil {
		return nil, err
	}
	s.renderer = renderer

	s.router.HandleFunc("/", func(writer http.ResponseWriter, request *http.Request) {
		http.Redirect(writer, request, "/routes", http.StatusFound)
	}).Methods(http.MethodGet)

	s.router.HandleFunc("/routes", s.TableHandler("routes_linked",
		func(*http.Request) string { return "Routes" },
		func(request *http.Request) tables.Result { return s.tables.LinkedRoutes(request.Context()) },
	)).Methods(http.MethodGet)

	s.router.HandleFunc("/routes/colors", s.TableHandler("routes_styled",
		func(*http.Request) string { return "Route colors" },
		func(request *http.Request) tables.Result { return s.tables.StyledRoutes(request.Context()) },
	)).Methods(http.MethodGet)

	s.router.HandleFunc("/routes/{id}/schedule", s.TableHandler("schedule",
		func(request *http.Request) string { return "Schedule for " + mux.Vars(request)["id"] },
		func(request *http.Request) tables.Result {
			return s.tables.ScheduleTable(request.Context(), mux.Vars(request)["id"])
		},
	)).Methods(http.MethodGet).Name("schedule")

	s.router.HandleFunc("/health", handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler())

	return s, nil
}

func (s *Server) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	s.router.ServeHTTP(writer, request)
}

func (s *Server) scheduleURL(routeID string) string {
	u, err := s.router.Get("schedule").URL("id", routeID)
	if err != nil {
		glog.Warningf("No schedule link for route %q: %v", routeID, err)
		return "#"
	}
	return u.String()
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		glog.Infof("Starting HTTP server on %s ...", addr)
		errs <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	glog.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return httpServer.Shutdown(shutdownCtx)
}
