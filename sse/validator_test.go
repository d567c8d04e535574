package sse

import (
	"net/http"
	"testing"
)

func TestIsValidRequest(t *testing.T) {
	tests := []struct {
		name   string
		method string
		accept string
		want   bool
	}{
		{"plain event-stream", http.MethodGet, "text/event-stream", true},
		{"among other types", http.MethodGet, "text/html, text/event-stream, */*", true},
		{"with quality param", http.MethodGet, "text/event-stream;q=0.9", true},
		{"uppercase", http.MethodGet, "TEXT/EVENT-STREAM", true},
		{"post rejected", http.MethodPost, "text/event-stream", false},
		{"lowercase method rejected", "get", "text/event-stream", false},
		{"missing accept", http.MethodGet, "", false},
		{"wrong type", http.MethodGet, "application/json", false},
		{"substring not enough", http.MethodGet, "text/event-streamish", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			header := http.Header{}
			if tc.accept != "" {
				header.Set("Accept", tc.accept)
			}
			if got := IsValidRequest(tc.method, header); got != tc.want {
				t.Errorf("IsValidRequest(%q, Accept=%q) = %v, want %v", tc.method, tc.accept, got, tc.want)
			}
		})
	}
}

func TestIsValidResponse(t *testing.T) {
	tests := []struct {
		name         string
		contentType  string
		cacheControl string
		want         bool
	}{
		{"exact", "text/event-stream", "no-cache", true},
		{"with charset", "text/event-stream; charset=utf-8", "no-cache, no-store", true},
		{"case insensitive", "Text/Event-Stream", "No-Cache", true},
		{"wrong content type", "application/json", "no-cache", false},
		{"missing cache control", "text/event-stream", "", false},
		{"cacheable", "text/event-stream", "max-age=60", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			header := http.Header{}
			if tc.contentType != "" {
				header.Set("Content-Type", tc.contentType)
			}
			if tc.cacheControl != "" {
				header.Set("Cache-Control", tc.cacheControl)
			}
			if got := IsValidResponse(header); got != tc.want {
				t.Errorf("IsValidResponse(CT=%q, CC=%q) = %v, want %v", tc.contentType, tc.cacheControl, got, tc.want)
			}
		})
	}
}
