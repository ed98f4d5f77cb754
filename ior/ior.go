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

// Package ior converts Interoperable Object References between their binary
// form, the stringified "IOR:<hex>" form, and the corbaloc: URL form.
package ior

import (
	"fmt"
	"strings"

	"github.com/corbalite/giopkg/protocol/cdr"
	"github.com/corbalite/giopkg/protocol/giop"
)

// Make builds an IOR with a single TAG_INTERNET_IOP profile for the given
// endpoint and object key.
func Make(objectKey []byte, host string, port uint16, version cdr.Version, typeID string) *giop.IOR {
	return &giop.IOR{
		TypeID: typeID,
		Profiles: []giop.TaggedProfile{{
			Tag: giop.TAG_INTERNET_IOP,
			IIOP: &giop.ProfileBody{
				IIOPVersion: version,
				Host:        host,
				Port:        port,
				ObjectKey:   objectKey,
			},
		}},
	}
}

// Profile returns the index-th TAG_INTERNET_IOP profile body of the IOR.
// The index counts IIOP profiles only, skipping profiles of other tags.
// nil is returned when there is no such profile.
func Profile(ref *giop.IOR, index int) *giop.ProfileBody {
	if ref == nil {
		return nil
	}
	for i := range ref.Profiles {
		if ref.Profiles[i].Tag == giop.TAG_INTERNET_IOP {
			if index == 0 {
				return ref.Profiles[i].IIOP
			}
			index--
		}
	}
	return nil
}

const hexDigits = "0123456789ABCDEF"

// ToString converts an IOR to its stringified form: "IOR:" followed by the
// uppercase hex dump of a little-endian CDR encapsulation of the IOR.
func ToString(ref *giop.IOR) (string, error) {
	var enc []byte
	if err := cdr.Encapsule(giop.DefaultVersion(), cdr.Encode, &enc,
		cdr.Bind(giop.MarshalIOR, ref)); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(len("IOR:") + len(enc)*2)
	sb.WriteString("IOR:")
	for _, b := range enc {
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0x0F])
	}
	return sb.String(), nil
}

func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	}
	return -1
}

// FromString converts a stringified reference back to an IOR, honoring the
// endian marker embedded in the encapsulation.
func FromString(s string) (*giop.IOR, error) {
	const prefix = "IOR:"
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return nil, cdr.NewMarshalException(cdr.INVALID_STRINGIFIED_IOR,
			"FromString: missing IOR: prefix")
	}
	hex := s[len(prefix):]
	if len(hex)%2 != 0 {
		return nil, cdr.NewMarshalException(cdr.INVALID_STRINGIFIED_IOR,
			"FromString: odd hex digit count")
	}
	enc := make([]byte, len(hex)/2)
	for i := range enc {
		hi, lo := hexValue(hex[2*i]), hexValue(hex[2*i+1])
		if hi < 0 || lo < 0 {
			return nil, cdr.NewMarshalException(cdr.INVALID_STRINGIFIED_IOR,
				fmt.Sprintf("FromString: invalid hex near %q", hex[2*i:]))
		}
		enc[i] = byte(hi<<4 | lo)
	}
	ref := new(giop.IOR)
	if err := cdr.Encapsule(giop.DefaultVersion(), cdr.Decode, &enc,
		cdr.Bind(giop.MarshalIOR, ref)); err != nil {
		return nil, err
	}
	return ref, nil
}
