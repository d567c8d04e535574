package sse

import (
	"bytes"
	"reflect"
	"testing"
)

func TestEncodeBasic(t *testing.T) {
	got := Encode(Event{Type: "welcome", Data: "hi"})
	want := "event: welcome\ndata: hi\n\n"
	if string(got) != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestEncodeAllFields(t *testing.T) {
	got := Encode(Event{ID: "42", Type: "tick", Data: "a", Retry: 3000})
	want := "id: 42\nevent: tick\ndata: a\nretry: 3000\n\n"
	if string(got) != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestEncodeMultiLineData(t *testing.T) {
	got := Encode(Event{Data: "line1\nline2"})
	want := "data: line1\ndata: line2\n\n"
	if string(got) != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestEncodeEmptyEvent(t *testing.T) {
	got := Encode(Event{})
	if string(got) != "\n" {
		t.Errorf("empty event should encode to bare boundary, got %q", got)
	}
}

func TestComment(t *testing.T) {
	got := Comment("keepalive 123")
	want := ": keepalive 123\n\n"
	if string(got) != want {
		t.Errorf("Comment = %q, want %q", got, want)
	}
}

func TestDecoderSingleFrame(t *testing.T) {
	var d Decoder
	events := d.Feed([]byte("event: tick\ndata: 41\n\n"))
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Type != "tick" || events[0].Data != "41" {
		t.Errorf("unexpected event: %+v", events[0])
	}
	if d.Residue() != nil {
		t.Errorf("expected empty residue, got %q", d.Residue())
	}
}

func TestDecoderMultipleFramesOneChunk(t *testing.T) {
	var d Decoder
	events := d.Feed([]byte("data: a\n\ndata: b\n\ndata: c\n\n"))
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, want := range []string{"a", "b", "c"} {
		if events[i].Data != want {
			t.Errorf("event %d: data = %q, want %q", i, events[i].Data, want)
		}
	}
}

func TestDecoderChunkInvariance(t *testing.T) {
	stream := []byte("id: 1\nevent: tick\ndata: first\n\n: comment\n\nid: 2\ndata: second\ndata: more\n\n")

	var whole Decoder
	wantEvents := whole.Feed(stream)

	var byByte Decoder
	var gotEvents []Event
	for _, b := range stream {
		gotEvents = append(gotEvents, byByte.Feed([]byte{b})...)
	}

	if !reflect.DeepEqual(gotEvents, wantEvents) {
		t.Errorf("byte-by-byte feed diverged:\ngot  %+v\nwant %+v", gotEvents, wantEvents)
	}
	if len(wantEvents) != 2 {
		t.Errorf("expected 2 events (comment frame is consumed), got %d", len(wantEvents))
	}
}

func TestDecoderPartialThenComplete(t *testing.T) {
	var d Decoder
	if events := d.Feed([]byte("data: par")); len(events) != 0 {
		t.Fatalf("incomplete frame must not produce events, got %d", len(events))
	}
	if !bytes.Equal(d.Residue(), []byte("data: par")) {
		t.Errorf("unexpected residue: %q", d.Residue())
	}

	events := d.Feed([]byte("tial\n\n"))
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Data != "partial" {
		t.Errorf("data = %q, want %q", events[0].Data, "partial")
	}
}

func TestDecoderCRLFBoundary(t *testing.T) {
	var d Decoder
	events := d.Feed([]byte("event: tick\r\ndata: x\r\n\r\n"))
	if len(events) != 1 {
		t.Fatalf("expected 1 event from CRLF stream, got %d", len(events))
	}
	if events[0].Type != "tick" || events[0].Data != "x" {
		t.Errorf("unexpected event: %+v", events[0])
	}
}

func TestDecoderCommentOnlyFrame(t *testing.T) {
	var d Decoder
	events := d.Feed([]byte(": ping\n\n"))
	if len(events) != 0 {
		t.Fatalf("comment frame must not surface as an event, got %d", len(events))
	}
	if d.Residue() != nil {
		t.Errorf("comment frame must be consumed, residue %q", d.Residue())
	}
}

func TestDecoderFieldCaseAndWhitespace(t *testing.T) {
	var d Decoder
	events := d.Feed([]byte(" EVENT : tick\ndata:bare\ndata:  padded\n\n"))
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Type != "tick" {
		t.Errorf("type = %q, want %q", events[0].Type, "tick")
	}
	// Exactly one leading space is stripped from a value; everything
	// beyond it belongs to the payload.
	if events[0].Data != "bare\n padded" {
		t.Errorf("data = %q, want %q", events[0].Data, "bare\n padded")
	}
}

func TestDecoderMalformedLinesSkipped(t *testing.T) {
	var d Decoder
	events := d.Feed([]byte("garbage without colon\ndata: ok\nunknown: field\n\n"))
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Data != "ok" {
		t.Errorf("data = %q, want %q", events[0].Data, "ok")
	}
}

func TestDecoderRetryParsing(t *testing.T) {
	var d Decoder
	events := d.Feed([]byte("retry: 5000\ndata: x\n\nretry: not-a-number\ndata: y\n\n"))
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Retry != 5000 {
		t.Errorf("retry = %d, want 5000", events[0].Retry)
	}
	if events[1].Retry != 0 {
		t.Errorf("invalid retry should stay unset, got %d", events[1].Retry)
	}
}

func TestDecoderFlush(t *testing.T) {
	var d Decoder
	d.Feed([]byte("data: trailing"))

	e, ok := d.Flush()
	if !ok {
		t.Fatal("expected boundary-less terminal frame to flush")
	}
	if e.Data != "trailing" {
		t.Errorf("data = %q, want %q", e.Data, "trailing")
	}
	if d.Residue() != nil {
		t.Error("flush must clear the pending buffer")
	}

	if _, ok := d.Flush(); ok {
		t.Error("second flush on empty decoder must report false")
	}
}

func TestDecoderFlushFieldless(t *testing.T) {
	var d Decoder
	d.Feed([]byte(": comment without boundary"))
	if _, ok := d.Flush(); ok {
		t.Error("fieldless residue must not surface as an event")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := Event{ID: "7", Type: "update", Data: "x\ny", Retry: 1500}

	var d Decoder
	events := d.Feed(Encode(in))
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if !reflect.DeepEqual(events[0], in) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", events[0], in)
	}
}

func TestEncodeDecodeRoundTripPreservesWhitespace(t *testing.T) {
	in := Event{ID: "9", Type: "raw", Data: "trailing  \n  leading\n\ttabbed "}

	var d Decoder
	events := d.Feed(Encode(in))
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Data != in.Data {
		t.Errorf("data = %q, want payload whitespace intact %q", events[0].Data, in.Data)
	}
	if !reflect.DeepEqual(events[0], in) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", events[0], in)
	}
}
