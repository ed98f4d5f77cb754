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
	"unicode/utf16"

	"github.com/bytedance/gopkg/lang/span"

	"github.com/corbalite/giopkg/internal/hack"
)

var (
	spanCache            = span.NewSpanCache(1024 * 1024)
	spanCacheEnable bool = false
)

// SetSpanCache enable/disable the decode-side bytes/string allocator
func SetSpanCache(enable bool) {
	spanCacheEnable = enable
}

func copyDecoded(b []byte) []byte {
	if spanCacheEnable {
		return spanCache.Copy(b)
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// String marshals a CDR string: a 4-aligned unsigned long length that counts
// the trailing NUL, the characters, then the NUL itself. The empty string is
// length 1 plus a lone NUL.
func String(ch *Channel, v *string) error {
	if ch.mode == Decode {
		var length uint32
		if err := ULong(ch, &length); err != nil {
			return err
		}
		if length == 0 {
			*v = ""
			return nil
		}
		b, err := ch.next(int(length))
		if err != nil {
			return err
		}
		*v = hack.ByteSliceToString(copyDecoded(b[:length-1]))
		return nil
	}
	length := uint32(len(*v) + 1)
	if err := ULong(ch, &length); err != nil {
		return err
	}
	b, err := ch.next(int(length))
	if err != nil {
		return err
	}
	copy(b, *v)
	b[length-1] = 0
	return nil
}

// WString marshals a CDR wide string as UTF-16 code units. From GIOP 1.2 on
// the length prefix is the octet count of the data with no terminator; in
// 1.0 and 1.1 it is the wide-character count including a terminating wide
// NUL.
func WString(ch *Channel, v *string) error {
	if ch.mode == Decode {
		var length uint32
		if err := ULong(ch, &length); err != nil {
			return err
		}
		if length == 0 {
			*v = ""
			return nil
		}
		var count int
		if ch.version.GE(1, 2) {
			count = int(length) / 2
		} else {
			count = int(length) - 1 // drop the wide NUL
		}
		if count*2 > ch.remaining() {
			return errTruncatedBuffer
		}
		units := make([]uint16, count)
		for i := range units {
			if err := WChar(ch, &units[i]); err != nil {
				return err
			}
		}
		if !ch.version.GE(1, 2) {
			var nul uint16
			if err := WChar(ch, &nul); err != nil {
				return err
			}
		}
		*v = string(utf16.Decode(units))
		return nil
	}
	units := utf16.Encode([]rune(*v))
	var length uint32
	if ch.version.GE(1, 2) {
		length = uint32(len(units) * 2)
	} else {
		length = uint32(len(units) + 1)
	}
	if err := ULong(ch, &length); err != nil {
		return err
	}
	for i := range units {
		if err := WChar(ch, &units[i]); err != nil {
			return err
		}
	}
	if !ch.version.GE(1, 2) {
		var nul uint16
		return WChar(ch, &nul)
	}
	return nil
}
