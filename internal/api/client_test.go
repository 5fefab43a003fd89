package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/commercia/backoffice/internal/domain/user"
	"github.com/commercia/backoffice/internal/session"
)

func newTestClient(t *testing.T, serverURL, token string) *Client {
	t.Helper()
	store := session.NewMemory()
	if token != "" {
		if err := store.SetCredentials(token, user.Profile{ID: 1}); err != nil {
			t.Fatal(err)
		}
	}
	client, err := New(Config{
		BaseURL: serverURL,
		Session: store,
		Retry:   NoRetry(),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func envelopeHandler(t *testing.T, wantMethod, wantPath string, body string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != wantMethod {
			t.Errorf("Method = %s, want %s", r.Method, wantMethod)
		}
		if r.URL.Path != wantPath {
			t.Errorf("Path = %s, want %s", r.URL.Path, wantPath)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func TestNew_RequiredFields(t *testing.T) {
	if _, err := New(Config{Session: session.NewMemory()}); err == nil {
		t.Error("New() without BaseURL should fail")
	}
	if _, err := New(Config{BaseURL: "http://localhost"}); err == nil {
		t.Error("New() without Session should fail")
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	client := newTestClient(t, "http://localhost:3000/", "")
	if client.baseURL != "http://localhost:3000" {
		t.Errorf("baseURL = %s, want without trailing slash", client.baseURL)
	}
}

func TestSetHeaders_BearerToken(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"success":true,"message":"ok","data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "tok-abc")
	if _, err := client.Buyers().List(context.Background()); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if auth := got.Get("Authorization"); auth != "Bearer tok-abc" {
		t.Errorf("Authorization = %q, want Bearer tok-abc", auth)
	}
	if got.Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
	if ct := got.Get("Content-Type"); ct != "" {
		t.Errorf("Content-Type on a bodyless GET = %q, want unset", ct)
	}
}

// Tokens persisted by the old web console carry literal JSON quotes;
// the header builder must shed them.
func TestSetHeaders_StripsStoredQuotes(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"message":"ok","data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, `"tok-quoted"`)
	if _, err := client.Buyers().List(context.Background()); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if auth != "Bearer tok-quoted" {
		t.Errorf("Authorization = %q, want Bearer tok-quoted", auth)
	}
}

func TestSetHeaders_NoTokenNoHeader(t *testing.T) {
	var hasAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{"success":true,"message":"ok","data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")
	if _, err := client.Buyers().List(context.Background()); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if hasAuth {
		t.Error("Authorization header should be omitted without a session")
	}
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Error("login must not send an Authorization header")
		}
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		if creds["email"] != "admin@example.com" || creds["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid credentials"}`))
			return
		}
		w.Write([]byte(`{"token":"tok-1","user":{"id":1,"name":"Admin","email":"admin@example.com"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")

	resp, err := client.Auth().Login(context.Background(), "admin@example.com", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.Token != "tok-1" {
		t.Errorf("Token = %q, want tok-1", resp.Token)
	}
	if resp.User.Name != "Admin" {
		t.Errorf("User.Name = %q, want Admin", resp.User.Name)
	}
}

func TestLogin_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid credentials"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")

	_, err := client.Auth().Login(context.Background(), "admin@example.com", "wrong")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Login() error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", apiErr.StatusCode)
	}
	if apiErr.Message != "invalid credentials" {
		t.Errorf("Message = %q, want the server's error text", apiErr.Message)
	}
}

func TestBuyers_GetByDocument(t *testing.T) {
	server := httptest.NewServer(envelopeHandler(t, http.MethodGet, "/buyer/getBuyerByDocument/123456",
		`{"success":true,"message":"Buyer found","data":{"id":9,"document":"123456","first_name":"Ana"}}`))
	defer server.Close()

	client := newTestClient(t, server.URL, "tok")
	resp, err := client.Buyers().GetByDocument(context.Background(), "123456")
	if err != nil {
		t.Fatalf("GetByDocument() error = %v", err)
	}
	if resp.Data == nil {
		t.Fatal("Data = nil, want the buyer")
	}
	if resp.Data.ID != 9 || resp.Data.FirstName != "Ana" {
		t.Errorf("Data = %+v", resp.Data)
	}
}

// A document with no match is a successful envelope with a null payload,
// never an error.
func TestBuyers_GetByDocument_NotFound(t *testing.T) {
	server := httptest.NewServer(envelopeHandler(t, http.MethodGet, "/buyer/getBuyerByDocument/999",
		`{"success":true,"message":"No buyer registered with that document","data":null}`))
	defer server.Close()

	client := newTestClient(t, server.URL, "tok")
	resp, err := client.Buyers().GetByDocument(context.Background(), "999")
	if err != nil {
		t.Fatalf("GetByDocument() error = %v", err)
	}
	if !resp.Success {
		t.Error("Success = false, want true")
	}
	if resp.Data != nil {
		t.Errorf("Data = %+v, want nil", resp.Data)
	}
}

func TestBuyers_ServerReportedFailureIsNotAnError(t *testing.T) {
	server := httptest.NewServer(envelopeHandler(t, http.MethodDelete, "/buyer/deleteBuyer/4",
		`{"success":false,"message":"Buyer not found"}`))
	defer server.Close()

	client := newTestClient(t, server.URL, "tok")
	st, err := client.Buyers().Delete(context.Background(), 4)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if st.Success {
		t.Error("Success = true, want false")
	}
	if st.Message != "Buyer not found" {
		t.Errorf("Message = %q", st.Message)
	}
}

func TestProducts_UpdateStock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("Method = %s, want PATCH", r.Method)
		}
		if r.URL.Path != "/product/updateStock/3" {
			t.Errorf("Path = %s", r.URL.Path)
		}
		var body map[string]int
		json.NewDecoder(r.Body).Decode(&body)
		if body["stock"] != 7 {
			t.Errorf("stock = %d, want 7", body["stock"])
		}
		w.Write([]byte(`{"success":true,"message":"Stock updated"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "tok")
	st, err := client.Products().UpdateStock(context.Background(), 3, 7)
	if err != nil {
		t.Fatalf("UpdateStock() error = %v", err)
	}
	if !st.Success {
		t.Error("Success = false, want true")
	}
}

func TestRetry_GetRetriesTransientStatus(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"success":true,"message":"ok","data":[]}`))
	}))
	defer server.Close()

	store := session.NewMemory()
	store.SetCredentials("tok", user.Profile{})
	client, err := New(Config{
		BaseURL: server.URL,
		Session: store,
		Retry: RetryConfig{
			MaxRetries:           2,
			InitialBackoff:       time.Millisecond,
			MaxBackoff:           5 * time.Millisecond,
			BackoffMultiplier:    2,
			RetryableStatusCodes: []int{http.StatusServiceUnavailable},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := client.Buyers().List(context.Background()); err != nil {
		t.Fatalf("List() error after retries = %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

// Mutations never retry; replaying one on an ambiguous failure could
// double-apply it.
func TestRetry_MutationsAreNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	store := session.NewMemory()
	store.SetCredentials("tok", user.Profile{})
	client, err := New(Config{
		BaseURL: server.URL,
		Session: store,
		Retry: RetryConfig{
			MaxRetries:           3,
			InitialBackoff:       time.Millisecond,
			MaxBackoff:           5 * time.Millisecond,
			BackoffMultiplier:    2,
			RetryableStatusCodes: []int{http.StatusServiceUnavailable},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = client.Buyers().Delete(context.Background(), 1)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Delete() error = %v, want *APIError", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}
