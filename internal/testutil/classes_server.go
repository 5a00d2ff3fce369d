package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/akyairhashvil/proffy/internal/models"
	"github.com/gorilla/mux"
)

// RecordedRequest is what the fake backend saw for one search.
type RecordedRequest struct {
	Subject    string
	WeekDay    string
	Time       string
	HasSubject bool
	HasWeekDay bool
	HasTime    bool
	RequestID  string
}

// ClassesServer is an httptest backend exposing GET /classes. It serves a
// canned response and records every query it receives. It does no
// filtering of its own.
type ClassesServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	teachers []models.Teacher
	status   int
	rawBody  string
	gate     chan struct{}
}

func NewClassesServer(t testing.TB, teachers []models.Teacher) *ClassesServer {
	t.Helper()
	s := &ClassesServer{teachers: teachers, status: http.StatusOK}
	r := mux.NewRouter()
	r.HandleFunc("/classes", s.handleClasses).Methods(http.MethodGet)
	s.Server = httptest.NewServer(r)
	t.Cleanup(func() {
		s.Release()
		s.Close()
	})
	return s
}

// SetTeachers replaces the canned response.
func (s *ClassesServer) SetTeachers(teachers []models.Teacher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teachers = teachers
	s.rawBody = ""
}

// Fail makes every following request answer with status and body.
func (s *ClassesServer) Fail(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.rawBody = body
}

// RespondRaw answers 200 with body verbatim.
func (s *ClassesServer) RespondRaw(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = http.StatusOK
	s.rawBody = body
}

// Hold makes requests block until Release is called or the client gives up.
func (s *ClassesServer) Hold() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gate = make(chan struct{})
}

func (s *ClassesServer) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gate != nil {
		close(s.gate)
		s.gate = nil
	}
}

func (s *ClassesServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *ClassesServer) handleClasses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rec := RecordedRequest{
		Subject:   q.Get("subject"),
		WeekDay:   q.Get("week_day"),
		Time:      q.Get("time"),
		RequestID: r.Header.Get("X-Request-ID"),
	}
	_, rec.HasSubject = q["subject"]
	_, rec.HasWeekDay = q["week_day"]
	_, rec.HasTime = q["time"]

	s.mu.Lock()
	s.requests = append(s.requests, rec)
	gate := s.gate
	status, raw, teachers := s.status, s.rawBody, s.teachers
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if raw != "" {
		_, _ = w.Write([]byte(raw))
		return
	}
	if teachers == nil {
		teachers = []models.Teacher{}
	}
	_ = json.NewEncoder(w).Encode(teachers)
}
