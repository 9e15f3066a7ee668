package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPClient_Request_Success(t *testing.T) {
	// Mock server setup
	mockResponse := map[string]string{"name": "Taper Hall", "code": "THH"}
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/buildings/THH" {
			t.Errorf("Expected endpoint '/buildings/THH', got '%s'", r.URL.Path)
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(mockResponse)
	}))
	defer mockServer.Close()

	// Test setup
	client := NewHTTPClient(mockServer.URL)
	var response map[string]string

	// Act
	err := client.Request("GET", "/buildings/THH", nil, nil, &response)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if response["code"] != "THH" {
		t.Errorf("Expected response code to be 'THH', got '%s'", response["code"])
	}
	if response["name"] != "Taper Hall" {
		t.Errorf("Expected response name to be 'Taper Hall', got '%s'", response["name"])
	}
}

func TestHTTPClient_RequestRaw_HTML(t *testing.T) {
	// Catalog pages come back as HTML, not JSON; RequestRaw must hand the
	// body over untouched.
	mockBody := `<html><body><div class="course"><h3 class="course-id">CSCI-104</h3></div></body></html>`
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Courses" {
			t.Errorf("Expected endpoint '/Courses', got '%s'", r.URL.Path)
		}
		if r.Header.Get("Cookie") != "session=abc123" {
			t.Errorf("Expected Cookie header to be forwarded, got '%s'", r.Header.Get("Cookie"))
		}

		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockBody))
	}))
	defer mockServer.Close()

	// Test setup
	client := NewHTTPClient(mockServer.URL)

	// Act
	body, err := client.RequestRaw("GET", "/Courses", map[string]string{"Cookie": "session=abc123"}, nil)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if string(body) != mockBody {
		t.Errorf("Expected raw body %q, got %q", mockBody, string(body))
	}
}

func TestHTTPClient_Request_Failure(t *testing.T) {
	// Mock server setup
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "bad request"}`))
	}))
	defer mockServer.Close()

	// Test setup
	client := NewHTTPClient(mockServer.URL)
	var response map[string]string

	// Act
	err := client.Request("POST", "/buildings", nil, map[string]string{"code": "THH"}, &response)

	// Assert
	if err == nil {
		t.Fatalf("Expected an error, got nil")
	}

	expectedError := "unexpected status code: 400 Bad Request"
	if err.Error() != expectedError {
		t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
	}
}
