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

// Package cdr implements the Common Data Representation marshaling channel
// and the codecs for every CDR primitive type defined by GIOP 1.0 - 1.2.
//
// A Channel is a cursor over an octet buffer. In Decode mode the buffer is
// caller-provided and immutable; in Encode mode it grows on demand. Alignment
// is computed against the channel's origin, which is the stream coordinate of
// the first buffer octet: a GIOP message body is created with origin 12 so
// that padding is counted from the start of the message, and an encapsulation
// is created with origin 0 so that padding restarts at its endian flag.
package cdr

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// Mode selects the data flow direction of a marshaling channel.
//
// The original CORBA C runtimes carry a third "erase" mode that walks a
// decoded value and frees its owned fields; the garbage collector makes
// that pass unnecessary here.
type Mode int

const (
	Decode Mode = iota
	Encode
)

// Version is a GIOP protocol version.
type Version struct {
	Major uint8
	Minor uint8
}

// GE reports whether v is at least major.minor.
func (v Version) GE(major, minor uint8) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseVersion parses a "M.m" version string.
func ParseVersion(s string) (Version, error) {
	major, minor, ok := strings.Cut(s, ".")
	if !ok {
		return Version{}, NewMarshalException(INVALID_URL, "ParseVersion: missing '.' in "+strconv.Quote(s))
	}
	maj, err1 := strconv.ParseUint(major, 10, 8)
	min, err2 := strconv.ParseUint(minor, 10, 8)
	if err1 != nil || err2 != nil {
		return Version{}, NewMarshalException(INVALID_URL, "ParseVersion: malformed version "+strconv.Quote(s))
	}
	return Version{Major: uint8(maj), Minor: uint8(min)}, nil
}

var (
	errTruncatedBuffer  = NewMarshalException(TRUNCATED_BUFFER, "read past end of buffer")
	errInvalidAlignment = NewMarshalException(INVALID_ALIGNMENT, "alignment not one of 0/1/2/4/8/16")
)

// Channel is an endian- and alignment-aware cursor over an octet buffer.
// A channel is single-owner: it must not be shared across goroutines.
type Channel struct {
	buf          []byte
	cursor       int // stream coordinate; the buffer index is cursor-origin
	origin       int
	version      Version
	littleEndian bool
	mode         Mode
}

// NewEncoder creates an empty encode channel. The origin is the stream
// coordinate assigned to the first octet written; a GIOP message body uses 12
// so that alignment accounts for the message header.
func NewEncoder(version Version, littleEndian bool, origin int) *Channel {
	return &Channel{
		cursor:       origin,
		origin:       origin,
		version:      version,
		littleEndian: littleEndian,
		mode:         Encode,
	}
}

// NewDecoder creates a decode channel over a caller-provided buffer, which
// must not be modified for the lifetime of the channel.
func NewDecoder(version Version, littleEndian bool, origin int, buf []byte) *Channel {
	return &Channel{
		buf:          buf,
		cursor:       origin,
		origin:       origin,
		version:      version,
		littleEndian: littleEndian,
		mode:         Decode,
	}
}

// Mode returns the channel's data flow direction.
func (ch *Channel) Mode() Mode { return ch.mode }

// SetMode switches the channel's data flow direction. The usual use is
// re-decoding an encode buffer in place.
func (ch *Channel) SetMode(m Mode) { ch.mode = m }

// Version returns the GIOP version the channel was created with.
func (ch *Channel) Version() Version { return ch.version }

// LittleEndian reports the channel's byte order.
func (ch *Channel) LittleEndian() bool { return ch.littleEndian }

// Len returns the number of octets between the origin and the cursor. On a
// completed encode this is the logical message length.
func (ch *Channel) Len() int { return ch.cursor - ch.origin }

// Bytes returns the channel's buffer. The slice aliases the channel's own
// storage in Encode mode and the caller's buffer in Decode mode.
func (ch *Channel) Bytes() []byte { return ch.buf }

// Reset moves the cursor back to the origin.
func (ch *Channel) Reset() { ch.cursor = ch.origin }

// Skip first advances the cursor to the next multiple of alignment relative
// to the channel origin, then by n further octets, and returns the effective
// advance. Skipped octets are zero on encode and ignored on decode.
// Skip(0, 0) is a no-op probe that always succeeds.
func (ch *Channel) Skip(n, alignment int) (int, error) {
	pad, err := padding(ch.cursor, alignment)
	if err != nil {
		return 0, err
	}
	advance := pad + n
	if _, err := ch.next(advance); err != nil {
		return 0, err
	}
	return advance, nil
}

// Extend grows the encode buffer so that at least n more octets can be
// written without reallocation. In Decode mode it is a no-op.
func (ch *Channel) Extend(n int) error {
	if ch.mode != Encode || n <= 0 {
		return nil
	}
	idx := ch.cursor - ch.origin
	if cap(ch.buf)-idx >= n {
		return nil
	}
	grown := make([]byte, len(ch.buf), idx+n)
	copy(grown, ch.buf)
	ch.buf = grown
	return nil
}

func padding(cursor, alignment int) (int, error) {
	switch alignment {
	case 0, 1:
		return 0, nil
	case 2, 4, 8, 16:
		return (alignment - cursor%alignment) % alignment, nil
	}
	return 0, errInvalidAlignment
}

// next aligns nothing; it moves the cursor by n and returns the buffer window
// covered by the move. In Encode mode the window is freshly zeroed storage.
func (ch *Channel) next(n int) ([]byte, error) {
	idx := ch.cursor - ch.origin
	if n < 0 {
		if idx+n < 0 {
			return nil, errTruncatedBuffer
		}
		ch.cursor += n
		return nil, nil
	}
	if ch.mode == Decode {
		if idx+n > len(ch.buf) {
			return nil, errTruncatedBuffer
		}
		ch.cursor += n
		return ch.buf[idx : idx+n], nil
	}
	if need := idx + n - len(ch.buf); need > 0 {
		ch.buf = append(ch.buf, make([]byte, need)...)
	}
	ch.cursor += n
	return ch.buf[idx : idx+n], nil
}

// field aligns on the primitive's natural boundary and returns the n-octet
// window for it.
func (ch *Channel) field(n, alignment int) ([]byte, error) {
	pad, err := padding(ch.cursor, alignment)
	if err != nil {
		return nil, err
	}
	if _, err := ch.next(pad); err != nil {
		return nil, err
	}
	return ch.next(n)
}

// remaining reports the undecoded octet count of a decode buffer. Sequence
// decoders check claimed element counts against it before allocating.
func (ch *Channel) remaining() int {
	if ch.mode != Decode {
		return 0
	}
	return len(ch.buf) - (ch.cursor - ch.origin)
}

func (ch *Channel) byteOrder() binary.ByteOrder {
	if ch.littleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// wcharAlignment is 2 from GIOP 1.2 on; earlier versions marshal wide
// characters unaligned.
func (ch *Channel) wcharAlignment() int {
	if ch.version.GE(1, 2) {
		return 2
	}
	return 0
}
