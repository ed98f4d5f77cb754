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

package cdr

import (
	"math"
)

// A Func marshals one value through a channel: in Decode mode the wire octets
// fill *v, in Encode mode *v is appended to the buffer. Every codec in this
// package and in protocol/giop has this shape so that sequence, array and
// encapsulation codecs can recurse through a caller-supplied element codec.
type Func[T any] func(ch *Channel, v *T) error

// Param is a codec bound to its value, the unit the request/reply envelope
// consumes. Argument order is wire order.
type Param func(ch *Channel) error

// Bind pairs a codec with the value it marshals.
func Bind[T any](f Func[T], v *T) Param {
	return func(ch *Channel) error { return f(ch, v) }
}

// LongDouble is the 16-octet IEEE binary128 wire image of a CDR long double,
// held in big-endian order.
type LongDouble [16]byte

// Boolean marshals a CDR boolean (1 octet, no alignment).
func Boolean(ch *Channel, v *bool) error {
	b, err := ch.field(1, 0)
	if err != nil {
		return err
	}
	if ch.mode == Decode {
		*v = b[0] != 0
	} else if *v {
		b[0] = 1
	}
	return nil
}

// Octet marshals a raw octet.
func Octet(ch *Channel, v *byte) error {
	b, err := ch.field(1, 0)
	if err != nil {
		return err
	}
	if ch.mode == Decode {
		*v = b[0]
	} else {
		b[0] = *v
	}
	return nil
}

// Char marshals an 8-bit character.
func Char(ch *Channel, v *byte) error {
	return Octet(ch, v)
}

// Short marshals a 16-bit signed integer (2-aligned).
func Short(ch *Channel, v *int16) error {
	b, err := ch.field(2, 2)
	if err != nil {
		return err
	}
	if ch.mode == Decode {
		*v = int16(ch.byteOrder().Uint16(b))
	} else {
		ch.byteOrder().PutUint16(b, uint16(*v))
	}
	return nil
}

// UShort marshals a 16-bit unsigned integer (2-aligned).
func UShort(ch *Channel, v *uint16) error {
	b, err := ch.field(2, 2)
	if err != nil {
		return err
	}
	if ch.mode == Decode {
		*v = ch.byteOrder().Uint16(b)
	} else {
		ch.byteOrder().PutUint16(b, *v)
	}
	return nil
}

// Long marshals a 32-bit signed integer (4-aligned).
func Long(ch *Channel, v *int32) error {
	b, err := ch.field(4, 4)
	if err != nil {
		return err
	}
	if ch.mode == Decode {
		*v = int32(ch.byteOrder().Uint32(b))
	} else {
		ch.byteOrder().PutUint32(b, uint32(*v))
	}
	return nil
}

// ULong marshals a 32-bit unsigned integer (4-aligned).
func ULong(ch *Channel, v *uint32) error {
	b, err := ch.field(4, 4)
	if err != nil {
		return err
	}
	if ch.mode == Decode {
		*v = ch.byteOrder().Uint32(b)
	} else {
		ch.byteOrder().PutUint32(b, *v)
	}
	return nil
}

// Enum marshals an enumeration code, which CDR represents as an unsigned
// long.
func Enum(ch *Channel, v *uint32) error {
	return ULong(ch, v)
}

// LongLong marshals a 64-bit signed integer (8-aligned).
func LongLong(ch *Channel, v *int64) error {
	b, err := ch.field(8, 8)
	if err != nil {
		return err
	}
	if ch.mode == Decode {
		*v = int64(ch.byteOrder().Uint64(b))
	} else {
		ch.byteOrder().PutUint64(b, uint64(*v))
	}
	return nil
}

// ULongLong marshals a 64-bit unsigned integer (8-aligned).
func ULongLong(ch *Channel, v *uint64) error {
	b, err := ch.field(8, 8)
	if err != nil {
		return err
	}
	if ch.mode == Decode {
		*v = ch.byteOrder().Uint64(b)
	} else {
		ch.byteOrder().PutUint64(b, *v)
	}
	return nil
}

// Float marshals an IEEE binary32 (4-aligned).
func Float(ch *Channel, v *float32) error {
	b, err := ch.field(4, 4)
	if err != nil {
		return err
	}
	if ch.mode == Decode {
		*v = math.Float32frombits(ch.byteOrder().Uint32(b))
	} else {
		ch.byteOrder().PutUint32(b, math.Float32bits(*v))
	}
	return nil
}

// Double marshals an IEEE binary64 (8-aligned).
func Double(ch *Channel, v *float64) error {
	b, err := ch.field(8, 8)
	if err != nil {
		return err
	}
	if ch.mode == Decode {
		*v = math.Float64frombits(ch.byteOrder().Uint64(b))
	} else {
		ch.byteOrder().PutUint64(b, math.Float64bits(*v))
	}
	return nil
}

// LongDoubleCodec marshals a 16-octet long double (16-aligned). The value is
// carried as its big-endian wire image; a little-endian channel reverses it.
func LongDoubleCodec(ch *Channel, v *LongDouble) error {
	b, err := ch.field(16, 16)
	if err != nil {
		return err
	}
	if ch.mode == Decode {
		copy(v[:], b)
		if ch.littleEndian {
			reverse(v[:])
		}
	} else {
		copy(b, v[:])
		if ch.littleEndian {
			reverse(b)
		}
	}
	return nil
}

// WChar marshals a wide character as one UTF-16 code unit. GIOP 1.2 aligns
// it on 2 octets; 1.0 and 1.1 marshal it unaligned.
func WChar(ch *Channel, v *uint16) error {
	b, err := ch.field(2, ch.wcharAlignment())
	if err != nil {
		return err
	}
	if ch.mode == Decode {
		*v = ch.byteOrder().Uint16(b)
	} else {
		ch.byteOrder().PutUint16(b, *v)
	}
	return nil
}

// VersionCodec marshals a GIOP version as two octets.
func VersionCodec(ch *Channel, v *Version) error {
	if err := Octet(ch, &v.Major); err != nil {
		return err
	}
	return Octet(ch, &v.Minor)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
