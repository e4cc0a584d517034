package netx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestProbe(t *testing.T) {
	t.Run("200 OK", func(t *testing.T) {
		var gotMethod string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		if err := Probe(context.Background(), ts.Client(), ts.URL+"/locagri/Agriculteur_PP/AB1.png"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotMethod != http.MethodHead {
			t.Fatalf("method = %q, want HEAD", gotMethod)
		}
	})

	t.Run("404 -> error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		err := Probe(context.Background(), nil, ts.URL)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "probe failed: 404") {
			t.Fatalf("error = %q, want to contain 404", err.Error())
		}
	})

	t.Run("bad URL -> error", func(t *testing.T) {
		if err := Probe(context.Background(), nil, "http://[::1]:namedport"); err == nil {
			t.Fatal("expected error for malformed URL")
		}
	})

	t.Run("cancelled context -> error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer ts.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := Probe(ctx, nil, ts.URL); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}
