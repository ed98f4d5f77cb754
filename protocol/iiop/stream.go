/*
 * Copyright 2024 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package iiop frames GIOP messages over a TCP connection and implements the
// request/reply envelope on top of the framing: submit a request and parse
// its reply, or read an inbound request and send a reply back.
package iiop

import (
	"io"
	"net"
	"time"

	"github.com/m-lab/go/logx"

	"github.com/corbalite/giopkg/protocol/cdr"
	"github.com/corbalite/giopkg/protocol/giop"
)

// Stream is a GIOP message stream over a single connection. A stream is
// single-owner: per-message state (the request ID counter, partial reads) is
// not guarded, and two goroutines must not share one.
type Stream struct {
	conn         net.Conn
	name         string
	version      cdr.Version
	littleEndian bool
	lastID       uint32
}

// NewStream wraps an established connection. The stream encodes outbound
// messages little-endian at the library default GIOP version; use SetVersion
// and SetByteOrder before the first message to choose otherwise.
func NewStream(conn net.Conn) *Stream {
	name := ""
	if addr := conn.RemoteAddr(); addr != nil {
		name = addr.String()
	}
	return &Stream{
		conn:         conn,
		name:         name,
		version:      giop.DefaultVersion(),
		littleEndian: true,
	}
}

// Name identifies the peer, for diagnostics.
func (s *Stream) Name() string { return s.name }

// Version returns the GIOP version used for outbound messages.
func (s *Stream) Version() cdr.Version { return s.version }

// SetVersion changes the GIOP version used for outbound messages.
func (s *Stream) SetVersion(v cdr.Version) { s.version = v }

// LittleEndian reports the outbound byte order.
func (s *Stream) LittleEndian() bool { return s.littleEndian }

// SetByteOrder selects the outbound byte order.
func (s *Stream) SetByteOrder(littleEndian bool) { s.littleEndian = littleEndian }

// RequestID allocates the next request ID on this stream. IDs are strictly
// monotonic for the stream's lifetime.
func (s *Stream) RequestID() uint32 {
	s.lastID++
	return s.lastID
}

// Close closes the underlying connection.
func (s *Stream) Close() error { return s.conn.Close() }

func (s *Stream) flags() byte {
	if s.littleEndian {
		return giop.EndianMask
	}
	return 0
}

// deadline maps the timeout convention of the stream operations (seconds;
// negative = wait forever, zero = poll) onto a connection deadline.
func deadline(timeout float64) time.Time {
	switch {
	case timeout < 0:
		return time.Time{}
	case timeout == 0:
		return time.Now()
	}
	return time.Now().Add(time.Duration(timeout * float64(time.Second)))
}

func streamError(op string, err error) error {
	if ne, ok := err.(net.Error); ok && ne.Timeout() {
		ErrorCount.WithLabelValues("timeout").Inc()
		return cdr.NewMarshalExceptionWithErr(cdr.TIMEOUT, op+": timeout", err)
	}
	ErrorCount.WithLabelValues("connection").Inc()
	return cdr.NewMarshalExceptionWithErr(cdr.CONNECTION_LOST, op+": "+err.Error(), err)
}

// ReadMessage reads one framed GIOP message: the 12-octet header, validated,
// then the complete body. The body buffer is owned by the caller.
func (s *Stream) ReadMessage(timeout float64) (giop.MessageHeader, []byte, error) {
	var hdr giop.MessageHeader
	if err := s.conn.SetReadDeadline(deadline(timeout)); err != nil {
		return hdr, nil, streamError("ReadMessage", err)
	}
	raw := make([]byte, 12)
	if _, err := io.ReadFull(s.conn, raw); err != nil {
		return hdr, nil, streamError("ReadMessage", err)
	}
	// The endian bit governs the size field; pull it from the raw flags
	// octet before decoding.
	ch := cdr.NewDecoder(cdr.Version{Major: raw[4], Minor: raw[5]}, raw[6]&giop.EndianMask != 0, 0, raw)
	if err := giop.MarshalMessageHeader(ch, &hdr); err != nil {
		return hdr, nil, err
	}
	if err := hdr.Validate(); err != nil {
		ErrorCount.WithLabelValues("protocol").Inc()
		return hdr, nil, err
	}
	body := make([]byte, hdr.Size)
	if _, err := io.ReadFull(s.conn, body); err != nil {
		return hdr, nil, streamError("ReadMessage", err)
	}
	MessageReadCount.WithLabelValues(hdr.Type.String()).Inc()
	logx.Debug.Printf("ReadMessage: %s (%d octets) from %s", hdr.Type, hdr.Size, s.name)
	return hdr, body, nil
}

// WriteMessage frames and sends one GIOP message. The header's magic and
// size are filled in; header and body go out in a single write.
func (s *Stream) WriteMessage(timeout float64, hdr giop.MessageHeader, body []byte) error {
	hdr.Magic = giop.Magic
	hdr.Size = uint32(len(body))
	ch := cdr.NewEncoder(hdr.Version, hdr.LittleEndian(), 0)
	if err := ch.Extend(12 + len(body)); err != nil {
		return err
	}
	if err := giop.MarshalMessageHeader(ch, &hdr); err != nil {
		return err
	}
	if err := s.conn.SetWriteDeadline(deadline(timeout)); err != nil {
		return streamError("WriteMessage", err)
	}
	if _, err := s.conn.Write(append(ch.Bytes(), body...)); err != nil {
		return streamError("WriteMessage", err)
	}
	MessageWriteCount.WithLabelValues(hdr.Type.String()).Inc()
	logx.Debug.Printf("WriteMessage: %s (%d octets) to %s", hdr.Type, hdr.Size, s.name)
	return nil
}
