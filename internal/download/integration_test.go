package download

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap/zaptest"

	"github.com/ytget/ytfetch/internal/api"
	"github.com/ytget/ytfetch/internal/model"
)

// jobServer serves one job whose status follows a fixed sequence
type jobServer struct {
	mu       sync.Mutex
	creates  []model.DownloadRequest
	statuses []string
	polls    int
}

func (s *jobServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/api/download", func(w http.ResponseWriter, r *http.Request) {
		var req model.DownloadRequest
		json.NewDecoder(r.Body).Decode(&req)
		s.mu.Lock()
		s.creates = append(s.creates, req)
		s.mu.Unlock()
		w.Write([]byte(`{"download_id":"abc","message":"Download started","title":"Song","author":"unknown","length":215}`))
	})
	r.Get("/api/status/{downloadID}", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		idx := s.polls
		if idx >= len(s.statuses) {
			idx = len(s.statuses) - 1
		}
		s.polls++
		s.mu.Unlock()
		w.Write([]byte(s.statuses[idx]))
	})
	r.Get("/api/download/{downloadID}", func(w http.ResponseWriter, r *http.Request) {
		t := "unexpected fetch of " + chi.URLParam(r, "downloadID")
		http.Error(w, t, http.StatusTeapot)
	})
	return r
}

func (s *jobServer) counts() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.creates), s.polls
}

func TestController_AgainstServer(t *testing.T) {
	server := &jobServer{statuses: []string{
		`{"status":"processing"}`,
		`{"status":"completed","title":"Song","author":"Artist"}`,
	}}
	srv := httptest.NewServer(server.routes())
	defer srv.Close()

	logger := zaptest.NewLogger(t)
	client, err := api.NewClient(srv.URL, api.WithLogger(logger))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	view := &fakeView{}
	button := &fakeButton{}
	ctrl := NewController(client, fakeForm{req: validRequest}, view, button, logger, Options{PollInterval: 20 * time.Millisecond})

	if err := ctrl.Submit(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	creates, polls := server.counts()
	if creates != 1 || polls != 2 {
		t.Errorf("Expected 1 create and 2 polls, got %d and %d", creates, polls)
	}

	_, results := view.snapshot()
	if len(results) != 1 {
		t.Fatalf("Expected one result, got %d", len(results))
	}
	if results[0].Link != srv.URL+"/api/download/abc" {
		t.Errorf("Unexpected link %q", results[0].Link)
	}
	if results[0].Author != "Artist" {
		t.Errorf("Expected author from the completed snapshot, got %q", results[0].Author)
	}
	assertButtonCycle(t, button)
}

func TestController_AgainstServer_BadRequest(t *testing.T) {
	r := chi.NewRouter()
	var polled bool
	r.Post("/api/download", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"bad url"}`))
	})
	r.Get("/api/status/{downloadID}", func(w http.ResponseWriter, r *http.Request) {
		polled = true
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	client, _ := api.NewClient(srv.URL)
	view := &fakeView{}
	ctrl := NewController(client, fakeForm{req: validRequest}, view, &fakeButton{}, nil, DefaultOptions())

	ctrl.Submit(context.Background())

	if view.last() != "Error: bad url" {
		t.Errorf("Expected 'Error: bad url', got %q", view.last())
	}
	if polled {
		t.Error("Expected no status poll after a failed create")
	}
}
