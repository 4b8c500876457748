package ipc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacketRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		packet *Packet
	}{
		{
			name:   "request with body",
			packet: NewRequest(VerbSetWallpaper, "/home/me/Pictures/wall.png"),
		},
		{
			name:   "request with empty body",
			packet: NewRequest(VerbGetWallpaper, ""),
		},
		{
			name:   "response with body",
			packet: NewResponse(StatusOK, "pong"),
		},
		{
			name:   "body with embedded newlines",
			packet: NewRequest(VerbSetDir, "true\n\n/tmp/walls"),
		},
		{
			name: "multiple headers",
			packet: &Packet{
				Status: "POST / HTTP/1.1",
				Headers: map[string]string{
					ControlHeader:  "PING",
					"Content-Type": "text/plain",
				},
				Body: "hello",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := Decode(tt.packet.Encode())
			require.NoError(t, err)
			assert.Equal(t, tt.packet, decoded)
		})
	}
}

func TestDecodeWire(t *testing.T) {
	raw := []byte("POST / HTTP/1.1\r\nWallpaperControl: SETWP\r\n\r\n/tmp/a.png")

	packet, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, "POST / HTTP/1.1", packet.Status)
	assert.Equal(t, "SETWP", packet.Headers[ControlHeader])
	assert.Equal(t, "/tmp/a.png", packet.Body)
}

func TestDecodeBodyTakenVerbatim(t *testing.T) {
	// Everything after the first separator belongs to the body, even
	// another separator.
	raw := []byte("200\r\n\r\nline one\r\n\r\nline two")

	packet, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "line one\r\n\r\nline two", packet.Body)
}

func TestDecodeNoHeaders(t *testing.T) {
	packet, err := Decode([]byte("200\r\n\r\npong"))
	require.NoError(t, err)

	assert.Equal(t, "200", packet.Status)
	assert.Empty(t, packet.Headers)
	assert.Equal(t, "pong", packet.Body)
}

func TestDecodeBadFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"empty buffer", []byte{}},
		{"nil buffer", nil},
		{"no separator", []byte("POST / HTTP/1.1\r\nWallpaperControl: PING\r\n")},
		{"plain text", []byte("hello there")},
		{"header line without separator", []byte("POST / HTTP/1.1\r\nWallpaperControl\r\n\r\nbody")},
		{"colon without space", []byte("POST / HTTP/1.1\r\nWallpaperControl:PING\r\n\r\nbody")},
		{"not utf8", []byte{0xff, 0xfe, 0xfd, '\r', '\n', '\r', '\n'}},
		{"empty status line", []byte("\r\n\r\nbody")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.raw)
			require.ErrorIs(t, err, ErrBadFormat)
		})
	}
}

func TestDecodeMissingControlHeaderIsWellFormed(t *testing.T) {
	// A packet without the control header decodes fine; rejecting it is
	// the server's job, not the codec's.
	packet, err := Decode([]byte("POST / HTTP/1.1\r\nContent-Type: text/plain\r\n\r\n"))
	require.NoError(t, err)

	_, ok := packet.Headers[ControlHeader]
	assert.False(t, ok)
}

func TestResponseStatusRenderedDecimal(t *testing.T) {
	assert.Equal(t, "400", NewResponse(StatusBadRequest, "").Status)
	assert.Equal(t, "300", NewResponse(StatusInternalError, "").Status)
}
