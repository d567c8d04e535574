// Package client provides the consuming side of an SSE exchange: a
// streaming reader that reassembles a chunked HTTP response body into an
// ordered sequence of events under a per-read timeout, and an HTTP client
// that issues the SSE GET request and drives the reader.
//
// # Usage
//
//	c := client.New(client.Config{ReadTimeoutSeconds: 60})
//	err := c.Subscribe(ctx, "http://host/events", func(ev sse.Event) bool {
//	    fmt.Println(ev.Data)
//	    return true // false stops the stream cleanly
//	})
//
// A clean end of stream and a callback-requested stop both return nil;
// timeouts and transport failures return distinguishing errors so callers
// can decide whether to reconnect.
package client
