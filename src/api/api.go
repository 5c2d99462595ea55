// Package api exposes the elevator over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"elevsim/src/elev"
	"elevsim/src/types"
)

const shutdownTimeout = 5 * time.Second

// Elevator is the part of the controller the HTTP layer needs.
type Elevator interface {
	TotalFloors() int
	RegisterCall(floor int) error
	Status() types.Status
	TicksUntilServed(floor int) (int, error)
}

type Server struct {
	httpServer *http.Server
}

// NewHandler builds the routes. stepPeriod is only used to turn tick estimates into seconds.
func NewHandler(elevator Elevator, stepPeriod time.Duration, allowedOrigins []string) http.Handler {
	h := &handler{elevator: elevator, stepPeriod: stepPeriod}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.root)
	mux.HandleFunc("GET /ping", h.ping)
	mux.HandleFunc("GET /status", h.status)
	mux.HandleFunc("POST /call", h.call)
	mux.HandleFunc("GET /eta", h.eta)

	return logRequests(cors(allowedOrigins, mux))
}

func NewServer(addr string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", s.httpServer.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	slog.Info("HTTP server stopped")
	return nil
}

type handler struct {
	elevator   Elevator
	stepPeriod time.Duration
}

func (h *handler) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Virtual elevator online",
		"floors":  h.elevator.TotalFloors(),
	})
}

func (h *handler) ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *handler) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.elevator.Status())
}

func (h *handler) call(w http.ResponseWriter, r *http.Request) {
	var call types.Call
	if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if call.Floor == nil {
		writeError(w, http.StatusBadRequest, "missing floor")
		return
	}

	if err := h.elevator.RegisterCall(*call.Floor); err != nil {
		if errors.Is(err, elev.ErrInvalidFloor) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		slog.Error("Register call failed", "floor", *call.Floor, "err", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Call registered for floor %d", *call.Floor),
	})
}

func (h *handler) eta(w http.ResponseWriter, r *http.Request) {
	floor, err := strconv.Atoi(r.URL.Query().Get("floor"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "floor must be an integer")
		return
	}

	ticks, err := h.elevator.TicksUntilServed(floor)
	switch {
	case errors.Is(err, elev.ErrInvalidFloor):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, elev.ErrNotPending):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		slog.Error("ETA estimate failed", "floor", floor, "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"floor":   floor,
		"ticks":   ticks,
		"seconds": (time.Duration(ticks) * h.stepPeriod).Seconds(),
	})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("Write response failed", "err", err)
	}
}

func writeError(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, map[string]string{"detail": detail})
}
