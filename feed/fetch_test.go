package feed

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSnapshotURL(t *testing.T) {
	if expected, actual := BaseURL+"/20130801.as-rel.txt.gz", SnapshotURL("20130801"); actual != expected {
		t.Errorf("Expected url=%v but actual=%v", expected, actual)
	}
}

func TestFetch(t *testing.T) {
	payload := []byte("pretend this is a gzip stream")

	var gotPath, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		gotAgent = req.Header.Get("User-Agent")
		w.Write(payload)
	}))
	defer server.Close()

	origBaseURL := BaseURL
	BaseURL = server.URL
	defer func() { BaseURL = origBaseURL }()

	var buf bytes.Buffer
	if err := Fetch("20130801", &buf); err != nil {
		t.Fatalf("%s", err)
	}
	if expected, actual := "/20130801.as-rel.txt.gz", gotPath; actual != expected {
		t.Errorf("Expected request path=%v but actual=%v", expected, actual)
	}
	if expected, actual := UserAgent, gotAgent; actual != expected {
		t.Errorf("Expected user agent=%v but actual=%v", expected, actual)
	}
	if expected, actual := string(payload), buf.String(); actual != expected {
		t.Errorf("Expected body=%q but actual=%q", expected, actual)
	}
}

func TestFetchBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, fmt.Sprintf("no such snapshot: %v", req.URL.Path), http.StatusNotFound)
	}))
	defer server.Close()

	origBaseURL := BaseURL
	BaseURL = server.URL
	defer func() { BaseURL = origBaseURL }()

	var buf bytes.Buffer
	if err := Fetch("19700101", &buf); err == nil {
		t.Error("Expected error for missing snapshot but got nil")
	}
}
