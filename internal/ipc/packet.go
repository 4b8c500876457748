package ipc

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Header carrying the command verb on every request.
const ControlHeader = "WallpaperControl"

// Response status codes. Not real HTTP; 300 is what the original protocol
// uses for "internal server error" and clients expect it.
const (
	StatusOK            = 200
	StatusBadRequest    = 400
	StatusInternalError = 300
)

// requestLine is the status line sent on every request packet. The daemon
// never inspects it; it exists because the wire grammar requires a first line.
const requestLine = "POST / HTTP/1.1"

// ErrBadFormat is returned by Decode when the buffer does not match the wire
// grammar.
var ErrBadFormat = errors.New("packet has bad format")

// Packet is one self-contained request or response on the control socket:
// a status line, a set of headers, and a verbatim body.
//
// The wire format is `<status-line>\r\n(<key>: <value>\r\n)*\r\n<body>`.
// There is no escaping mechanism; header keys and values must not contain
// "\r\n" or ": ". Everything this daemon emits is verb names and decimal
// status codes, which are safe.
type Packet struct {
	Status  string
	Headers map[string]string
	Body    string
}

// NewRequest builds a request packet for the given command verb.
func NewRequest(verb, body string) *Packet {
	return &Packet{
		Status:  requestLine,
		Headers: map[string]string{ControlHeader: verb},
		Body:    body,
	}
}

// NewResponse builds a response packet. The status code is rendered in
// decimal on the status line.
func NewResponse(status int, body string) *Packet {
	return &Packet{
		Status:  strconv.Itoa(status),
		Headers: map[string]string{},
		Body:    body,
	}
}

// Encode serializes the packet. It never fails.
func (p *Packet) Encode() []byte {
	var b strings.Builder
	b.WriteString(p.Status)
	b.WriteString("\r\n")
	for key, value := range p.Headers {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\r\n")
	}
	b.WriteString("\r\n")
	b.WriteString(p.Body)
	return []byte(b.String())
}

// Decode parses a packet from raw bytes. The body is everything after the
// first "\r\n\r\n", taken verbatim. A missing ControlHeader is not a decode
// failure; the caller checks for it.
func Decode(raw []byte) (*Packet, error) {
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: not valid UTF-8", ErrBadFormat)
	}

	head, body, found := bytes.Cut(raw, []byte("\r\n\r\n"))
	if !found {
		return nil, fmt.Errorf("%w: missing header/body separator", ErrBadFormat)
	}

	status, headerBlock, _ := strings.Cut(string(head), "\r\n")
	if status == "" {
		return nil, fmt.Errorf("%w: empty status line", ErrBadFormat)
	}

	headers := map[string]string{}
	if headerBlock != "" {
		for _, line := range strings.Split(headerBlock, "\r\n") {
			key, value, found := strings.Cut(line, ": ")
			if !found {
				return nil, fmt.Errorf("%w: bad header line %q", ErrBadFormat, line)
			}
			headers[key] = value
		}
	}

	return &Packet{Status: status, Headers: headers, Body: string(body)}, nil
}
