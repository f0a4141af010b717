package yclients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"salonbot/pkg/logger"
)

func newTestManager(serverURL string) *Manager {
	return &Manager{
		logger:       logger.New("error"),
		client:       &http.Client{Timeout: 5 * time.Second},
		apiURL:       serverURL,
		partnerToken: "partner-token",
		userToken:    "user-token",
		language:     "ru-RU",
	}
}

func TestMakeRequestHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	m := newTestManager(srv.URL)
	if _, err := m.makeRequest(context.Background(), http.MethodPost, "records/1", nil, map[string]string{"a": "b"}, false); err != nil {
		t.Fatalf("makeRequest: %v", err)
	}

	if got.Get("Accept") != "application/vnd.yclients.v2+json" {
		t.Fatalf("Accept = %q", got.Get("Accept"))
	}
	if got.Get("Accept-Language") != "ru-RU" {
		t.Fatalf("Accept-Language = %q", got.Get("Accept-Language"))
	}
	if got.Get("Cache-Control") != "no-cache" {
		t.Fatalf("Cache-Control = %q", got.Get("Cache-Control"))
	}
	if got.Get("Content-Type") != "application/json" {
		t.Fatalf("Content-Type = %q", got.Get("Content-Type"))
	}
	if got.Get("Authorization") != "Bearer partner-token" {
		t.Fatalf("Authorization = %q", got.Get("Authorization"))
	}
}

func TestMakeRequestUserTokenTier(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	m := newTestManager(srv.URL)
	if _, err := m.makeRequest(context.Background(), http.MethodGet, "user/records/1/abc", nil, nil, true); err != nil {
		t.Fatalf("makeRequest: %v", err)
	}
	if auth != "Bearer partner-token, User user-token" {
		t.Fatalf("Authorization = %q", auth)
	}

	// Without a user token the partner tier is the fallback.
	m.SetUserToken("")
	if _, err := m.makeRequest(context.Background(), http.MethodGet, "user/records/1/abc", nil, nil, true); err != nil {
		t.Fatalf("makeRequest: %v", err)
	}
	if auth != "Bearer partner-token" {
		t.Fatalf("Authorization after SetUserToken = %q", auth)
	}
}

func TestMakeRequestQueryEncoding(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	m := newTestManager(srv.URL)
	query := url.Values{}
	query.Set("page", "2")
	query.Set("count", "50")
	if _, err := m.makeRequest(context.Background(), http.MethodGet, "book_services/1", query, nil, false); err != nil {
		t.Fatalf("makeRequest: %v", err)
	}
	if gotQuery.Get("page") != "2" || gotQuery.Get("count") != "50" {
		t.Fatalf("query = %v", gotQuery)
	}
}

func TestMakeRequestErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		wantKind ErrorKind
		wantMsg  string
	}{
		{"not found", http.StatusNotFound, `{"meta":{"message":"Запись не найдена"}}`, ErrKindNotFound, "Запись не найдена"},
		{"unprocessable", http.StatusUnprocessableEntity, `{"meta":{"message":"Недостаточно параметров"}}`, ErrKindUnprocessableEntity, "Недостаточно параметров"},
		{"unauthorized", http.StatusUnauthorized, `{"meta":{"message":"Необходима авторизация"}}`, ErrKindUnauthorized, "Необходима авторизация"},
		{"server error no meta", http.StatusInternalServerError, `whoops`, ErrKindUnknown, "Unknown error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			m := newTestManager(srv.URL)
			_, err := m.makeRequest(context.Background(), http.MethodGet, "record/1/2", nil, nil, true)
			if err == nil {
				t.Fatalf("expected error for status %d", tc.status)
			}
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error type = %T", err)
			}
			if apiErr.Kind != tc.wantKind {
				t.Fatalf("kind = %v, want %v", apiErr.Kind, tc.wantKind)
			}
			if apiErr.StatusCode != tc.status {
				t.Fatalf("status = %d, want %d", apiErr.StatusCode, tc.status)
			}
			if apiErr.Message != tc.wantMsg {
				t.Fatalf("message = %q, want %q", apiErr.Message, tc.wantMsg)
			}
		})
	}
}

func TestMakeRequestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	m := newTestManager(srv.URL)
	_, err := m.makeRequest(context.Background(), http.MethodGet, "visits/1", nil, nil, false)
	if err == nil {
		t.Fatalf("expected transport error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.Kind != ErrKindUnknown || apiErr.StatusCode != 0 {
		t.Fatalf("kind = %v, status = %d", apiErr.Kind, apiErr.StatusCode)
	}
}

func TestNormalizeBody(t *testing.T) {
	if got := string(normalizeBody("application/json", []byte(`{"success":true}`))); got != `{"success":true}` {
		t.Fatalf("json body changed: %s", got)
	}
	if got := string(normalizeBody("text/plain", []byte("ok"))); got != `{"text":"ok"}` {
		t.Fatalf("plain body = %s", got)
	}
	if got := string(normalizeBody("application/json", nil)); got != `{}` {
		t.Fatalf("empty body = %s", got)
	}
	if got := string(normalizeBody("application/json", []byte("{broken"))); got != `{}` {
		t.Fatalf("invalid json = %s", got)
	}
}
