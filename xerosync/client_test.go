package xerosync

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/config"
)

func TestGetCollectionSendsAuthHeaders(t *testing.T) {
	var gotTenant, gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTenant = r.Header.Get("xero-tenant-id")
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Accounts":[{"AccountID":"a1"}]}`))
	}))
	defer srv.Close()

	client := newXeroClient(config.XeroConfig{
		BaseURL:     srv.URL,
		TenantID:    "tenant-1",
		BearerToken: "token-1",
	})

	payload, err := client.getCollection(context.Background(), "Accounts")
	if err != nil {
		t.Fatalf("getCollection error: %v", err)
	}
	if gotTenant != "tenant-1" {
		t.Fatalf("expected tenant header, got %q", gotTenant)
	}
	if gotAuth != "Bearer token-1" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotPath != "/Accounts" {
		t.Fatalf("expected /Accounts path, got %q", gotPath)
	}
	if _, ok := payload["Accounts"]; !ok {
		t.Fatalf("expected Accounts key in payload, got %v", payload)
	}
}

func TestGetCollectionRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newXeroClient(config.XeroConfig{BaseURL: srv.URL})
	_, err := client.getCollection(context.Background(), "Accounts")
	if err == nil {
		t.Fatal("expected error on non-2xx response")
	}
	if errors.Is(err, errMalformedPayload) {
		t.Fatal("status errors must not be classified as malformed payload")
	}
}

func TestGetCollectionTruncatedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1000")
		w.Write([]byte(`{"Accounts":[`))
	}))
	defer srv.Close()

	client := newXeroClient(config.XeroConfig{BaseURL: srv.URL})
	_, err := client.getCollection(context.Background(), "Accounts")
	if err == nil {
		t.Fatal("expected error for truncated body")
	}
	if errors.Is(err, errMalformedPayload) {
		t.Fatalf("a cut connection is a transport fault, not a malformed payload: %v", err)
	}
}

func TestGetCollectionMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>login page</html>`))
	}))
	defer srv.Close()

	client := newXeroClient(config.XeroConfig{BaseURL: srv.URL})
	_, err := client.getCollection(context.Background(), "Accounts")
	if !errors.Is(err, errMalformedPayload) {
		t.Fatalf("expected malformed payload error, got %v", err)
	}
}
