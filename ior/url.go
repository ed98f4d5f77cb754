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

package ior

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/corbalite/giopkg/protocol/cdr"
	"github.com/corbalite/giopkg/protocol/giop"
)

// corbaloc URLs (CORBA 13.6.10): one iiop address per TAG_INTERNET_IOP
// profile, comma-separated, then the object key of the first profile:
//
//	corbaloc:iiop:[<major>.<minor>@][<host>][:<port>][/<key>]
//
// Version 1.0 and port 2809 are omitted as defaults; the host is omitted only
// when it is empty.

// keyLiteral reports whether an object-key octet may appear unescaped.
func keyLiteral(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte(";/:?@&=+$,-_!~*'()", c) >= 0 && c != 0
}

// ToURL converts an IOR with at least one TAG_INTERNET_IOP profile to a
// corbaloc: URL.
func ToURL(ref *giop.IOR) (string, error) {
	first := Profile(ref, 0)
	if first == nil {
		return "", cdr.NewMarshalException(cdr.INVALID_URL,
			"ToURL: IOR has no TAG_INTERNET_IOP profile")
	}
	var sb strings.Builder
	sb.WriteString("corbaloc:")
	for i := 0; ; i++ {
		profile := Profile(ref, i)
		if profile == nil {
			break
		}
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString("iiop:")
		if profile.IIOPVersion != (cdr.Version{Major: 1, Minor: 0}) {
			fmt.Fprintf(&sb, "%d.%d@", profile.IIOPVersion.Major, profile.IIOPVersion.Minor)
		}
		sb.WriteString(profile.Host)
		if profile.Port != giop.DefaultPort {
			fmt.Fprintf(&sb, ":%d", profile.Port)
		}
	}
	if len(first.ObjectKey) > 0 {
		sb.WriteByte('/')
		for _, c := range first.ObjectKey {
			if keyLiteral(c) {
				sb.WriteByte(c)
			} else {
				fmt.Fprintf(&sb, "%%%02X", c)
			}
		}
	}
	return sb.String(), nil
}

// FromURL converts a corbaloc: URL to an IOR with one TAG_INTERNET_IOP
// profile per address. Missing fields take their defaults: version 1.0,
// port 2809, the local host's name. The percent-decoded key, if present,
// becomes the object key of every profile.
func FromURL(url string) (*giop.IOR, error) {
	const scheme = "corbaloc:"
	if !strings.HasPrefix(url, scheme) {
		return nil, cdr.NewMarshalException(cdr.INVALID_URL,
			fmt.Sprintf("FromURL: not a corbaloc URL: %q", url))
	}
	addresses, rawKey, hasKey := strings.Cut(url[len(scheme):], "/")

	var key []byte
	if hasKey {
		var err error
		if key, err = decodeKey(rawKey); err != nil {
			return nil, err
		}
	}

	ref := new(giop.IOR)
	for _, address := range strings.Split(addresses, ",") {
		protocol, rest, ok := strings.Cut(address, ":")
		if !ok {
			return nil, cdr.NewMarshalException(cdr.INVALID_URL,
				fmt.Sprintf("FromURL: missing protocol ID in %q", address))
		}
		if protocol != "" && !strings.EqualFold(protocol, "iiop") {
			return nil, cdr.NewMarshalException(cdr.INVALID_URL,
				fmt.Sprintf("FromURL: unsupported protocol %q", protocol))
		}
		profile := &giop.ProfileBody{
			IIOPVersion: cdr.Version{Major: 1, Minor: 0},
			Port:        giop.DefaultPort,
			ObjectKey:   key,
		}
		if versionPart, hostPart, ok := strings.Cut(rest, "@"); ok {
			v, err := cdr.ParseVersion(versionPart)
			if err != nil {
				return nil, cdr.NewMarshalException(cdr.INVALID_URL,
					fmt.Sprintf("FromURL: invalid version in %q", address))
			}
			profile.IIOPVersion = v
			rest = hostPart
		}
		host, portPart, hasPort := strings.Cut(rest, ":")
		if hasPort {
			port, err := strconv.ParseUint(portPart, 10, 16)
			if err != nil {
				return nil, cdr.NewMarshalException(cdr.INVALID_URL,
					fmt.Sprintf("FromURL: invalid port in %q", address))
			}
			profile.Port = uint16(port)
		}
		if host == "" {
			host, _ = os.Hostname()
		}
		profile.Host = host
		ref.Profiles = append(ref.Profiles, giop.TaggedProfile{
			Tag:  giop.TAG_INTERNET_IOP,
			IIOP: profile,
		})
	}
	return ref, nil
}

func decodeKey(raw string) ([]byte, error) {
	key := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] != '%' {
			key = append(key, raw[i])
			continue
		}
		if i+2 >= len(raw) {
			return nil, cdr.NewMarshalException(cdr.INVALID_URL,
				fmt.Sprintf("FromURL: truncated escape near %q", raw[i:]))
		}
		hi, lo := hexValue(raw[i+1]), hexValue(raw[i+2])
		if hi < 0 || lo < 0 {
			return nil, cdr.NewMarshalException(cdr.INVALID_URL,
				fmt.Sprintf("FromURL: invalid escape near %q", raw[i:]))
		}
		key = append(key, byte(hi<<4|lo))
		i += 2
	}
	return key, nil
}

// StringToURL converts a stringified reference directly to a corbaloc: URL.
func StringToURL(s string) (string, error) {
	ref, err := FromString(s)
	if err != nil {
		return "", err
	}
	return ToURL(ref)
}
