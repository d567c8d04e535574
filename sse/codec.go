package sse

import (
	"bytes"
	"strconv"
	"strings"
)

// Encode serializes an event into one SSE text frame: a sequence of
// "\n"-terminated field lines followed by the blank line that marks the
// frame boundary. Unset fields emit no line. Field order is id, event,
// data (one line per newline-separated segment), retry.
func Encode(e Event) []byte {
	var b bytes.Buffer
	if e.ID != "" {
		b.WriteString("id: ")
		b.WriteString(e.ID)
		b.WriteByte('\n')
	}
	if e.Type != "" {
		b.WriteString("event: ")
		b.WriteString(e.Type)
		b.WriteByte('\n')
	}
	if e.Data != "" {
		for _, line := range strings.Split(e.Data, "\n") {
			b.WriteString("data: ")
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	if e.Retry > 0 {
		b.WriteString("retry: ")
		b.WriteString(strconv.FormatUint(uint64(e.Retry), 10))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.Bytes()
}

// Comment serializes an SSE comment frame (": <text>\n\n"). Comments carry
// no fields and are used as keep-alive probes through proxies.
func Comment(text string) []byte {
	var b bytes.Buffer
	b.WriteString(": ")
	b.WriteString(text)
	b.WriteString("\n\n")
	return b.Bytes()
}

// Decoder incrementally parses an SSE byte stream of arbitrary chunking
// back into discrete events. Bytes that do not yet form a complete frame
// are buffered until the next Feed call, so feeding a stream one byte at a
// time yields the same event sequence as feeding it whole.
//
// A Decoder must not be shared across streams; use one per connection or
// response. The zero value is ready to use.
type Decoder struct {
	pending []byte
}

// Feed appends p to the pending buffer and returns all events whose frame
// boundary (blank line) is now complete, in order. It never fails:
// malformed lines inside a frame are skipped, and the absence of a
// boundary simply means more input is needed. Frames carrying no fields,
// such as keep-alive comments, are consumed silently.
func (d *Decoder) Feed(p []byte) []Event {
	d.pending = append(d.pending, p...)

	var events []Event
	for {
		frame, rest, ok := splitFrame(d.pending)
		if !ok {
			break
		}
		d.pending = rest
		if e := parseFrame(frame); !e.IsEmpty() {
			events = append(events, e)
		}
	}
	return events
}

// Residue returns a copy of the bytes received but not yet resolved into a
// complete frame.
func (d *Decoder) Residue() []byte {
	if len(d.pending) == 0 {
		return nil
	}
	out := make([]byte, len(d.pending))
	copy(out, d.pending)
	return out
}

// Flush parses any pending bytes as a terminal frame that never received
// its blank-line boundary, clearing the buffer. It reports false when the
// residue is empty or carries no fields, so trailing newlines and comments
// do not surface as spurious events.
func (d *Decoder) Flush() (Event, bool) {
	if len(d.pending) == 0 {
		return Event{}, false
	}
	e := parseFrame(d.pending)
	d.pending = nil
	return e, !e.IsEmpty()
}

// splitFrame extracts the first complete frame from buf. It recognises
// both "\n\n" and the tolerated "\r\n\r\n" boundary, picking whichever
// terminates the earliest frame.
func splitFrame(buf []byte) (frame, rest []byte, ok bool) {
	lf := bytes.Index(buf, []byte("\n\n"))
	crlf := bytes.Index(buf, []byte("\r\n\r\n"))

	switch {
	case lf < 0 && crlf < 0:
		return nil, nil, false
	case crlf < 0 || (lf >= 0 && lf < crlf):
		return buf[:lf], buf[lf+2:], true
	default:
		return buf[:crlf], buf[crlf+4:], true
	}
}

// parseFrame parses the lines of one frame into an Event per the SSE field
// rules. Comment lines and lines without a "key: value" structure are
// skipped rather than failing the frame. Field names match
// case-insensitively and tolerate surrounding whitespace; values lose
// exactly one leading space so payload whitespace survives a round trip.
func parseFrame(frame []byte) Event {
	var e Event
	var dataLines []string
	var hasData bool

	for _, raw := range bytes.Split(frame, []byte("\n")) {
		line := strings.TrimSuffix(string(raw), "\r")
		if line == "" {
			continue
		}
		if line[0] == ':' {
			continue // comment
		}

		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			continue // no field structure, skip
		}
		field := strings.ToLower(strings.TrimSpace(line[:idx]))
		value := strings.TrimPrefix(line[idx+1:], " ")

		switch field {
		case "id":
			e.ID = value
		case "event":
			e.Type = value
		case "data":
			dataLines = append(dataLines, value)
			hasData = true
		case "retry":
			if ms, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32); err == nil {
				e.Retry = uint32(ms)
			}
		}
	}

	if hasData {
		e.Data = strings.Join(dataLines, "\n")
	}
	return e
}
