package sse

import (
	"net/http"
	"strings"
)

// IsValidRequest reports whether method and headers constitute a valid SSE
// request: the method must be exactly "GET" and the Accept header, split on
// commas, must list "text/event-stream" (case-insensitive) among its media
// types. Media type parameters such as ";q=0.9" are ignored.
//
// The check is advisory: a gatekeeper should log a failure rather than
// necessarily reject, since intermediate proxies sometimes mutate headers.
func IsValidRequest(method string, header http.Header) bool {
	if method != http.MethodGet {
		return false
	}
	accept := header.Get("Accept")
	if accept == "" {
		return false
	}
	for _, part := range strings.Split(accept, ",") {
		mediaType := strings.TrimSpace(part)
		if i := strings.IndexByte(mediaType, ';'); i >= 0 {
			mediaType = strings.TrimSpace(mediaType[:i])
		}
		if strings.EqualFold(mediaType, MimeEventStream) {
			return true
		}
	}
	return false
}

// IsValidResponse reports whether response headers constitute a valid SSE
// response: Content-Type must contain "text/event-stream" and Cache-Control
// must contain "no-cache" (both substring matches, case-insensitive, so
// parameters and additional directives are acceptable).
func IsValidResponse(header http.Header) bool {
	contentType := strings.ToLower(header.Get("Content-Type"))
	if !strings.Contains(contentType, MimeEventStream) {
		return false
	}
	cacheControl := strings.ToLower(header.Get("Cache-Control"))
	return strings.Contains(cacheControl, "no-cache")
}
