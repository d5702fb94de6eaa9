// Package web serves a read-only HTTP view over the checkpoint store so a
// long scrape can be inspected while it runs: which rosters exist, how far
// each has progressed, and the standardized addresses per person.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/govpost/internal/checkpoint"
	"github.com/govpost/internal/directory"
	"github.com/govpost/internal/models"
)

// Server exposes the checkpoint store over HTTP.
type Server struct {
	store      *checkpoint.Store
	httpServer *http.Server
	router     *mux.Router
}

// NewServer creates a server reading checkpoints from store.
func NewServer(addr string, store *checkpoint.Store) *Server {
	s := &Server{store: store}
	s.setupRoutes()
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()
	s.router.Use(requestLogger)

	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/rosters", s.handleRosters).Methods("GET")
	api.HandleFunc("/rosters/{name}", s.handleRoster).Methods("GET")
	api.HandleFunc("/rosters/{name}/stats", s.handleRosterStats).Methods("GET")
	api.HandleFunc("/rosters/{name}/persons/{last}", s.handlePerson).Methods("GET")
}

// Handler returns the route tree, for serving without signal handling.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	go func() {
		log.Printf("listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// rosterSummary is the list-view shape: progress counters without persons.
type rosterSummary struct {
	Checkpoint string `json:"checkpoint"`
	Name       string `json:"name"`
	Persons    int    `json:"persons"`
	Resolved   int    `json:"resolved"`
	Addresses  int    `json:"addresses"`
}

func summarize(checkpointName string, roster *directory.Roster) rosterSummary {
	sum := rosterSummary{
		Checkpoint: checkpointName,
		Name:       roster.Name,
		Persons:    len(roster.Persons),
		Resolved:   roster.Resolved(),
	}
	for i := range roster.Persons {
		sum.Addresses += len(roster.Persons[i].Addresses)
	}
	return sum
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRosters(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.Names()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	summaries := []rosterSummary{}
	for _, name := range names {
		roster := &directory.Roster{}
		if err := s.store.Load(name, roster); err != nil {
			// Checkpoints that are not rosters (the mailing file) are skipped
			// silently; a corrupt roster file is not.
			if isShapeMismatch(err) {
				continue
			}
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		if roster.Name == "" {
			continue
		}
		summaries = append(summaries, summarize(name, roster))
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleRoster(w http.ResponseWriter, r *http.Request) {
	roster, ok := s.loadRoster(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, roster)
}

func (s *Server) handleRosterStats(w http.ResponseWriter, r *http.Request) {
	roster, ok := s.loadRoster(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, summarize(mux.Vars(r)["name"], roster))
}

func (s *Server) handlePerson(w http.ResponseWriter, r *http.Request) {
	roster, ok := s.loadRoster(w, r)
	if !ok {
		return
	}
	last := mux.Vars(r)["last"]
	var matched []models.Person
	for i := range roster.Persons {
		if strings.EqualFold(roster.Persons[i].LastName, last) {
			matched = append(matched, roster.Persons[i])
		}
	}
	if matched == nil {
		writeError(w, http.StatusNotFound, errors.New("no person with last name "+last))
		return
	}
	writeJSON(w, http.StatusOK, matched)
}

func (s *Server) loadRoster(w http.ResponseWriter, r *http.Request) (*directory.Roster, bool) {
	name := mux.Vars(r)["name"]
	roster := &directory.Roster{}
	if err := s.store.Load(name, roster); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			writeError(w, http.StatusNotFound, errors.New("no checkpoint named "+name))
		} else {
			writeError(w, http.StatusInternalServerError, err)
		}
		return nil, false
	}
	return roster, true
}

// isShapeMismatch reports whether loading failed because the JSON does not
// decode into a roster, as opposed to an IO or syntax failure.
func isShapeMismatch(err error) bool {
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
