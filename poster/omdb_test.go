package poster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aniruddha-beep/movie-suggestion/store"
)

func TestFetch(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{
			name: "poster url returned",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("t") == "" {
					t.Error("missing title parameter")
				}
				w.Write([]byte(`{"Poster": "http://img.test/alpha.jpg"}`))
			},
			want: "http://img.test/alpha.jpg",
		},
		{
			name: "service reports N/A",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"Poster": "N/A"}`))
			},
			want: DefaultPlaceholder,
		},
		{
			name: "missing field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"Title": "Alpha"}`))
			},
			want: DefaultPlaceholder,
		},
		{
			name: "malformed response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{not json`))
			},
			want: DefaultPlaceholder,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: DefaultPlaceholder,
		},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(tt.handler)
		c := &Client{APIKey: "test", Endpoint: srv.URL}
		got := c.Fetch(context.Background(), "Alpha")
		srv.Close()
		if got != tt.want {
			t.Errorf("%s: Fetch = %q, want %q", tt.name, got, tt.want)
		}
	}
}

// 超时折叠为占位图，不拖慢调用方超过自身超时。
func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"Poster": "http://img.test/slow.jpg"}`))
	}))
	defer srv.Close()

	c := &Client{APIKey: "test", Endpoint: srv.URL, Timeout: 20 * time.Millisecond}

	start := time.Now()
	got := c.Fetch(context.Background(), "Slow")
	if got != DefaultPlaceholder {
		t.Errorf("Fetch = %q, want placeholder on timeout", got)
	}
	if elapsed := time.Since(start); elapsed > 150*time.Millisecond {
		t.Errorf("Fetch took %v, should be bounded by its timeout", elapsed)
	}
}

func TestFetch_CustomPlaceholder(t *testing.T) {
	c := &Client{APIKey: "test", Endpoint: "http://127.0.0.1:0", Placeholder: "http://static.test/none.png", Timeout: 50 * time.Millisecond}
	if got := c.Fetch(context.Background(), "Alpha"); got != "http://static.test/none.png" {
		t.Errorf("Fetch = %q, want custom placeholder", got)
	}
}

func TestFetch_Cache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"Poster": "http://img.test/cached.jpg"}`))
	}))
	defer srv.Close()

	cache := store.NewMemoryStore()
	defer cache.Close()

	c := &Client{APIKey: "test", Endpoint: srv.URL, Cache: cache}
	for i := 0; i < 3; i++ {
		if got := c.Fetch(context.Background(), "Alpha"); got != "http://img.test/cached.jpg" {
			t.Fatalf("Fetch = %q", got)
		}
	}
	if calls != 1 {
		t.Errorf("upstream called %d times, want 1 (cache hit)", calls)
	}
}
