package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ytget/ytfetch/internal/model"
)

// fakeServer records create calls
type fakeServer struct {
	mu         sync.Mutex
	created    []model.DownloadRequest
	requestIDs []string
}

func (f *fakeServer) createdRequests() ([]model.DownloadRequest, []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.DownloadRequest(nil), f.created...), append([]string(nil), f.requestIDs...)
}

func newFakeServer(t *testing.T, f *fakeServer) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Post("/api/download", func(w http.ResponseWriter, r *http.Request) {
		var req model.DownloadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"detail":"bad json"}`, http.StatusUnprocessableEntity)
			return
		}
		f.mu.Lock()
		f.created = append(f.created, req)
		f.requestIDs = append(f.requestIDs, r.Header.Get(RequestIDHeader))
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.Contains(req.URL, "bad"):
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"detail":"bad url"}`))
		case strings.Contains(req.URL, "validation"):
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"detail":[{"loc":["body","url"],"msg":"field required","type":"value_error.missing"}]}`))
		case strings.Contains(req.URL, "html"):
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`<html>bad gateway</html>`))
		default:
			w.Write([]byte(`{"download_id":"abc","message":"Download started","title":"Song","author":"Artist","length":215}`))
		}
	})
	r.Get("/api/status/{downloadID}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "downloadID")
		if id != "abc" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Not Found"}`))
			return
		}
		w.Write([]byte(`{"status":"completed","title":"Song","author":"Artist"}`))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		baseURL  string
		expected string
		wantErr  bool
	}{
		{"http://localhost:8000", "http://localhost:8000", false},
		{"http://localhost:8000/", "http://localhost:8000", false},
		{" https://dl.example.com/prefix/ ", "https://dl.example.com/prefix", false},
		{"localhost:8000", "", true},
		{"ftp://example.com", "", true},
		{"http://", "", true},
	}

	for _, test := range tests {
		client, err := NewClient(test.baseURL)
		if (err != nil) != test.wantErr {
			t.Errorf("NewClient(%q) error = %v, wantErr %v", test.baseURL, err, test.wantErr)
			continue
		}
		if err == nil && client.BaseURL() != test.expected {
			t.Errorf("NewClient(%q).BaseURL() = %q, expected %q", test.baseURL, client.BaseURL(), test.expected)
		}
	}
}

func TestCreateJob(t *testing.T) {
	fake := &fakeServer{}
	srv := newFakeServer(t, fake)

	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	req := model.DownloadRequest{URL: "https://youtube.com/watch?v=1", Quality: model.QualityMedium, FileType: model.FileTypeMP3}
	handle, err := client.CreateJob(context.Background(), req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if handle.DownloadID != "abc" || handle.Title != "Song" || handle.Author != "Artist" {
		t.Errorf("Unexpected handle: %+v", handle)
	}
	if handle.Length != 215 {
		t.Errorf("Expected length 215, got %v", handle.Length)
	}

	created, requestIDs := fake.createdRequests()
	if len(created) != 1 {
		t.Fatalf("Expected 1 create call, got %d", len(created))
	}
	if created[0] != req {
		t.Errorf("Server received %+v, expected %+v", created[0], req)
	}
	if requestIDs[0] == "" {
		t.Error("Expected request ID header to be set")
	}
}

func TestCreateJob_WireBody(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected JSON content type, got %q", ct)
		}
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{"download_id":"abc","title":"Song"}`))
	}))
	defer srv.Close()

	client, _ := NewClient(srv.URL)
	_, err := client.CreateJob(context.Background(), model.DownloadRequest{URL: "https://x.test/v", Quality: "highest", FileType: "mp4"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := map[string]any{"url": "https://x.test/v", "quality": "highest", "file_type": "mp4"}
	if len(body) != len(expected) {
		t.Fatalf("Expected %d fields, got %v", len(expected), body)
	}
	for k, v := range expected {
		if body[k] != v {
			t.Errorf("Field %s = %v, expected %v", k, body[k], v)
		}
	}
}

func TestCreateJob_RequestError(t *testing.T) {
	srv := newFakeServer(t, &fakeServer{})
	client, _ := NewClient(srv.URL)

	tests := []struct {
		url        string
		statusCode int
		message    string
	}{
		{"https://bad.example/v", http.StatusBadRequest, "bad url"},
		{"https://validation.example/v", http.StatusUnprocessableEntity, "field required"},
		{"https://html.example/v", http.StatusBadGateway, FallbackDetail},
	}

	for _, test := range tests {
		_, err := client.CreateJob(context.Background(), model.DownloadRequest{URL: test.url})
		if err == nil {
			t.Errorf("Expected error for %s", test.url)
			continue
		}

		var re *RequestError
		if !errors.As(err, &re) {
			t.Errorf("Expected RequestError for %s, got %T", test.url, err)
			continue
		}
		if re.StatusCode != test.statusCode {
			t.Errorf("Expected status %d, got %d", test.statusCode, re.StatusCode)
		}
		if err.Error() != test.message {
			t.Errorf("Expected message %q, got %q", test.message, err.Error())
		}
	}
}

func TestCreateJob_UndecodedErrorBody(t *testing.T) {
	srv := newFakeServer(t, &fakeServer{})
	client, _ := NewClient(srv.URL)

	_, err := client.CreateJob(context.Background(), model.DownloadRequest{URL: "https://html.example/v"})

	var re *RequestError
	if !errors.As(err, &re) {
		t.Fatalf("Expected RequestError, got %T", err)
	}
	if re.Cause == nil {
		t.Fatal("Expected the decode failure to be kept as cause")
	}
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Errorf("Expected errors.As to reach the json syntax error, got %v", errors.Unwrap(err))
	}

	_, err = client.CreateJob(context.Background(), model.DownloadRequest{URL: "https://bad.example/v"})
	if errors.Unwrap(err) != nil {
		t.Errorf("Expected no cause for a decoded error body, got %v", errors.Unwrap(err))
	}
}

func TestStatus(t *testing.T) {
	fake := &fakeServer{}
	srv := newFakeServer(t, fake)
	client, _ := NewClient(srv.URL)

	snapshot, err := client.Status(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if snapshot.Status != model.JobStatusCompleted || snapshot.Title != "Song" || snapshot.Author != "Artist" {
		t.Errorf("Unexpected snapshot: %+v", snapshot)
	}

	_, err = client.Status(context.Background(), "missing")
	if StatusCode(err) != http.StatusNotFound {
		t.Errorf("Expected 404 RequestError, got %v", err)
	}
}

func TestStatus_ContextCancelled(t *testing.T) {
	srv := newFakeServer(t, &fakeServer{})
	client, _ := NewClient(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Status(ctx, "abc")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestDownloadURL(t *testing.T) {
	client, _ := NewClient("http://localhost:8000/")

	if got := client.DownloadURL("abc"); got != "http://localhost:8000/api/download/abc" {
		t.Errorf("Unexpected download URL: %s", got)
	}
	if got := client.DownloadURL("a/b"); got != "http://localhost:8000/api/download/a%2Fb" {
		t.Errorf("Expected download ID to be escaped, got %s", got)
	}
}
