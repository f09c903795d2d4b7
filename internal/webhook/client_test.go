package webhook

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestAddContact(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		got = r.URL.Query()
		_, _ = w.Write([]byte(`{"status":"success"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/hook?token=abc", 0)
	resp, err := c.AddContact(context.Background(), "req", "John Doe", "john@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.OK() {
		t.Errorf("expected OK response")
	}
	if got.Get("name") != "John Doe" || got.Get("email") != "john@example.com" {
		t.Errorf("unexpected query: %v", got)
	}
	if got.Get("token") != "abc" {
		t.Errorf("existing query parameter dropped: %v", got)
	}
}

func TestAddContactStatus(t *testing.T) {
	cases := []struct {
		name   string
		code   int
		body   string
		ok     bool
		errors bool
	}{
		{name: "failure status", code: http.StatusOK, body: `{"status":"error"}`, ok: false},
		{name: "missing status", code: http.StatusOK, body: `{}`, ok: false},
		{name: "numeric zero is not success", code: http.StatusOK, body: `{"status":"0"}`, ok: false},
		{name: "server error", code: http.StatusInternalServerError, body: `{"status":"success"}`, errors: true},
		{name: "not json", code: http.StatusOK, body: `<html>`, errors: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.code)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			resp, err := NewClient(srv.URL, 0).AddContact(context.Background(), "req", "a", "b")
			if tc.errors {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.OK() != tc.ok {
				t.Errorf("expected OK()=%v, got %v", tc.ok, resp.OK())
			}
		})
	}

	t.Run("non-2xx wraps sentinel", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, 0).AddContact(context.Background(), "req", "a", "b")
		if !errors.Is(err, ErrUnexpectedStatus) {
			t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
		}
	})
}
