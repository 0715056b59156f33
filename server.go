package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/transitlab/sitp-routing/router"
	"github.com/transitlab/sitp-routing/router/algo"
)

// PlannerServer exposes the route planner as an HTTP JSON API.
type PlannerServer struct {
	router *router.Router

	// request gate: false while suspended
	ok   bool
	cond *sync.Cond
}

func NewPlannerServer(r *router.Router) *PlannerServer {
	return &PlannerServer{
		router: r,
		ok:     true, cond: sync.NewCond(&sync.Mutex{})}
}

func (s *PlannerServer) RegisterRoutes(m *mux.Router) {
	m.HandleFunc("/api/routes", s.PlanRoute).Methods("POST")
	m.HandleFunc("/api/stops", s.ListStops).Methods("GET")
	m.HandleFunc("/api/links/times", s.SetLinkTimes).Methods("POST")
	m.HandleFunc("/api/links/times", s.GetLinkTime).Methods("GET")
	m.HandleFunc("/api/suspend", s.HandleSuspend).Methods("POST")
	m.HandleFunc("/api/resume", s.HandleResume).Methods("POST")
}

type routeRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Criterion string `json:"criterion"`
}

type linkTime struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Line string  `json:"line"`
	Time float64 `json:"time"`
}

type linkTimesRequest struct {
	Times []linkTime `json:"times"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, router.ErrUnknownStop),
		errors.Is(err, router.ErrUnsupportedCriterion),
		errors.Is(err, router.ErrInvalidData):
		status = http.StatusBadRequest
	case errors.Is(err, algo.ErrNoEdge):
		status = http.StatusNotFound
	case errors.Is(err, algo.ErrSearchExhausted):
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// wait blocks while the server is suspended.
func (s *PlannerServer) wait() {
	s.cond.L.Lock()
	for !s.ok {
		s.cond.Wait()
	}
	s.cond.L.Unlock()
}

func (s *PlannerServer) PlanRoute(w http.ResponseWriter, r *http.Request) {
	s.wait()
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	criterion, err := router.ParseCriterion(req.Criterion)
	if err != nil {
		writeError(w, err)
		return
	}
	log.Debugf("search %s route from %q to %q", criterion, req.From, req.To)
	it, err := s.router.Search(req.From, req.To, criterion)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (s *PlannerServer) ListStops(w http.ResponseWriter, r *http.Request) {
	s.wait()
	network := s.router.Network()
	type stopInfo struct {
		Name        string   `json:"name"`
		Lines       []string `json:"lines"`
		Interchange bool     `json:"interchange"`
	}
	stops := make([]stopInfo, 0)
	for _, name := range s.router.Stops() {
		stops = append(stops, stopInfo{
			Name:        name,
			Lines:       network.Lines(name),
			Interchange: network.IsInterchange(name),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"stops": stops,
		"count": len(stops),
	})
}

func (s *PlannerServer) SetLinkTimes(w http.ResponseWriter, r *http.Request) {
	var req linkTimesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	for _, t := range req.Times {
		if err := s.router.SetLinkTime(t.From, t.To, t.Line, t.Time); err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]int{"updated": len(req.Times)})
}

func (s *PlannerServer) GetLinkTime(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	time, err := s.router.LinkTime(q.Get("from"), q.Get("to"), q.Get("line"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, linkTime{
		From: q.Get("from"),
		To:   q.Get("to"),
		Line: q.Get("line"),
		Time: time,
	})
}

func (s *PlannerServer) HandleSuspend(w http.ResponseWriter, r *http.Request) {
	s.Suspend()
	writeJSON(w, http.StatusOK, map[string]bool{"suspended": true})
}

func (s *PlannerServer) HandleResume(w http.ResponseWriter, r *http.Request) {
	s.Resume()
	writeJSON(w, http.StatusOK, map[string]bool{"suspended": false})
}

// Suspend pauses query handling.
func (s *PlannerServer) Suspend() {
	s.cond.L.Lock()
	defer s.cond.L.Unlock()
	s.ok = false
}

// Resume resumes query handling.
func (s *PlannerServer) Resume() {
	s.cond.L.Lock()
	defer s.cond.L.Unlock()
	s.ok = true
	s.cond.Broadcast()
}

// Close shuts the planner down.
func (s *PlannerServer) Close() {
	s.router.Close()
}
