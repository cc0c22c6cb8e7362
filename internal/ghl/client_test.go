package ghl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestClient_Headers(t *testing.T) {
	var gotAuth, gotVersion, gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Version")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"locations":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, testLogger())
	if _, err := client.ListLocations(context.Background(), "pit-abc123"); err != nil {
		t.Fatalf("ListLocations() failed: %v", err)
	}

	if gotAuth != "Bearer pit-abc123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer pit-abc123")
	}
	if gotVersion != APIVersion {
		t.Errorf("Version = %q, want %q", gotVersion, APIVersion)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
}

func TestClient_Paths(t *testing.T) {
	var gotMethod, gotURI string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotURI = r.URL.RequestURI()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, testLogger())
	ctx := context.Background()

	tests := []struct {
		name       string
		call       func() (*Result, error)
		wantMethod string
		wantURI    string
	}{
		{"locations", func() (*Result, error) { return client.ListLocations(ctx, "t") }, "GET", "/locations/"},
		{"location by id", func() (*Result, error) { return client.GetLocation(ctx, "t", "loc1") }, "GET", "/locations/loc1"},
		{"users", func() (*Result, error) { return client.ListUsers(ctx, "t") }, "GET", "/users/"},
		{"tags", func() (*Result, error) { return client.ListTags(ctx, "t", "loc1") }, "GET", "/locations/loc1/tags"},
		{"custom fields", func() (*Result, error) { return client.ListCustomFields(ctx, "t", "loc1") }, "GET", "/locations/loc1/customFields"},
		{"pipelines", func() (*Result, error) { return client.ListPipelines(ctx, "t", "loc1") }, "GET", "/opportunities/pipelines?locationId=loc1"},
		{"contacts", func() (*Result, error) { return client.SearchContacts(ctx, "t", "loc1", 5) }, "GET", "/contacts/?limit=5&locationId=loc1"},
		{"opportunities", func() (*Result, error) { return client.SearchOpportunities(ctx, "t", "loc1", 5) }, "GET", "/opportunities/search?limit=5&location_id=loc1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.call(); err != nil {
				t.Fatalf("call failed: %v", err)
			}
			if gotMethod != tt.wantMethod {
				t.Errorf("method = %s, want %s", gotMethod, tt.wantMethod)
			}
			if gotURI != tt.wantURI {
				t.Errorf("uri = %s, want %s", gotURI, tt.wantURI)
			}
		})
	}
}

func TestClient_CreateTag(t *testing.T) {
	var gotBody map[string]string
	var gotMethod string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"tag":{"id":"t1","name":"vip"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, testLogger())
	result, err := client.CreateTag(context.Background(), "tok", "loc1", "vip")
	if err != nil {
		t.Fatalf("CreateTag() failed: %v", err)
	}

	if gotMethod != "POST" {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotBody["name"] != "vip" {
		t.Errorf("body name = %q, want vip", gotBody["name"])
	}
	if !result.OK() {
		t.Errorf("result not OK: %d", result.StatusCode)
	}
}

func TestClient_NonOKResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid token"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, testLogger())
	result, err := client.ListLocations(context.Background(), "bad-token")
	if err != nil {
		t.Fatalf("ListLocations() transport error: %v", err)
	}

	if result.OK() {
		t.Error("result.OK() = true for 401")
	}

	statusErr := result.Err()
	if statusErr == nil {
		t.Fatal("result.Err() = nil for 401")
	}
	if se, ok := statusErr.(*StatusError); !ok || se.StatusCode != http.StatusUnauthorized {
		t.Errorf("Err() = %v, want StatusError with 401", statusErr)
	}
}

func TestClient_TransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", nil, testLogger())
	if _, err := client.ListLocations(context.Background(), "t"); err == nil {
		t.Error("ListLocations() error = nil, want transport error")
	}
}
