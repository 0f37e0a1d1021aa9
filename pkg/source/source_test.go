package source

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JustBeyond/packedbubble/pkg/errors"
	"github.com/JustBeyond/packedbubble/pkg/httputil"
)

const fruitJSON = `{
	"title": "Fruit Consumption",
	"series": [
		{"id": "fruit", "points": [
			{"name": "Apples", "value": 5},
			{"name": "Pears", "value": 3}
		]}
	]
}`

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	hc, err := httputil.NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error: %v", err)
	}
	client := NewClient(hc)
	client.http = server.Client()
	return client
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"https://example.com/fruit.json", true},
		{"http://localhost:8080/data", true},
		{"fruit.json", false},
		{"./data/fruit.json", false},
		{"-", false},
		{"ftp://example.com/fruit.json", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsURL(tt.ref); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.ref, got, tt.want)
		}
	}
}

func TestResolve_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fruit.json")
	if err := os.WriteFile(path, []byte(fruitJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := Resolve(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if ds.Title != "Fruit Consumption" {
		t.Errorf("Title = %q, want %q", ds.Title, "Fruit Consumption")
	}
	if len(ds.Series) != 1 || len(ds.Series[0].Points) != 2 {
		t.Errorf("unexpected dataset shape: %+v", ds)
	}
}

func TestResolve_LocalFileMissing(t *testing.T) {
	_, err := Resolve(context.Background(), filepath.Join(t.TempDir(), "nope.json"), Options{})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Resolve() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestFetchDataset(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(fruitJSON))
	}))
	defer server.Close()

	client := newTestClient(t, server)

	// First fetch goes to the network
	ds, err := client.FetchDataset(context.Background(), server.URL, false)
	if err != nil {
		t.Fatalf("FetchDataset() error: %v", err)
	}
	if ds.Title != "Fruit Consumption" {
		t.Errorf("Title = %q, want %q", ds.Title, "Fruit Consumption")
	}
	if hits != 1 {
		t.Fatalf("server hits = %d, want 1", hits)
	}

	// Second fetch is served from cache
	if _, err := client.FetchDataset(context.Background(), server.URL, false); err != nil {
		t.Fatalf("FetchDataset() cached error: %v", err)
	}
	if hits != 1 {
		t.Errorf("server hits after cached fetch = %d, want 1", hits)
	}

	// Refresh bypasses the cache
	if _, err := client.FetchDataset(context.Background(), server.URL, true); err != nil {
		t.Fatalf("FetchDataset() refresh error: %v", err)
	}
	if hits != 2 {
		t.Errorf("server hits after refresh = %d, want 2", hits)
	}
}

func TestFetchDataset_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	_, err := client.FetchDataset(context.Background(), server.URL, false)
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("FetchDataset() error = %v, want NOT_FOUND", err)
	}
}

func TestFetchDataset_InvalidPayloadNotCached(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("not a dataset"))
	}))
	defer server.Close()

	client := newTestClient(t, server)

	if _, err := client.FetchDataset(context.Background(), server.URL, false); err == nil {
		t.Fatal("FetchDataset() should fail on malformed payload")
	}

	// The bad payload must not have been cached
	if _, err := client.FetchDataset(context.Background(), server.URL, false); err == nil {
		t.Fatal("FetchDataset() should fail again on malformed payload")
	}
	if hits != 2 {
		t.Errorf("server hits = %d, want 2 (bad payloads must not be cached)", hits)
	}
}

func TestFetchDataset_RejectsNonHTTP(t *testing.T) {
	hc, err := httputil.NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	client := NewClient(hc)

	_, err = client.FetchDataset(context.Background(), "ftp://example.com/fruit.json", false)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("FetchDataset() error = %v, want INVALID_INPUT", err)
	}
}

func TestCheckStatus(t *testing.T) {
	isRetryable := func(err error) bool {
		var re *httputil.RetryableError
		return stderrors.As(err, &re)
	}

	tests := []struct {
		name      string
		code      int
		header    http.Header
		wantErr   bool
		wantCode  errors.Code
		retryable bool
	}{
		{name: "200 OK", code: 200},
		{name: "404 Not Found", code: 404, wantErr: true, wantCode: errors.ErrCodeNotFound},
		{name: "429 Too Many Requests", code: 429, header: http.Header{"Retry-After": []string{"30"}}, wantErr: true, retryable: true},
		{name: "500 Internal Server Error", code: 500, wantErr: true, wantCode: errors.ErrCodeNetwork, retryable: true},
		{name: "502 Bad Gateway", code: 502, wantErr: true, wantCode: errors.ErrCodeNetwork, retryable: true},
		{name: "400 Bad Request", code: 400, wantErr: true, wantCode: errors.ErrCodeNetwork},
		{name: "403 Forbidden", code: 403, wantErr: true, wantCode: errors.ErrCodeNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{StatusCode: tt.code, Header: tt.header}
			err := checkStatus(resp, "https://example.com/fruit.json")

			if !tt.wantErr {
				if err != nil {
					t.Errorf("checkStatus() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("checkStatus() should return error")
			}
			if tt.wantCode != "" && !errors.Is(err, tt.wantCode) {
				t.Errorf("checkStatus() error = %v, want code %s", err, tt.wantCode)
			}
			if got := isRetryable(err); got != tt.retryable {
				t.Errorf("checkStatus() retryable = %v, want %v", got, tt.retryable)
			}
		})
	}
}

func TestCheckStatus_RateLimited(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusTooManyRequests,
		Header:     http.Header{"Retry-After": []string{"30"}},
	}
	err := checkStatus(resp, "https://example.com/fruit.json")

	var rl *errors.RateLimitedError
	if !stderrors.As(err, &rl) {
		t.Fatalf("checkStatus() error = %T, want RateLimitedError", err)
	}
	if rl.RetryAfter != 30 {
		t.Errorf("RetryAfter = %d, want 30", rl.RetryAfter)
	}
}
