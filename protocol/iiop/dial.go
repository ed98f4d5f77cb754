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

package iiop

import (
	"net"
	"strconv"

	"github.com/m-lab/go/logx"

	"github.com/corbalite/giopkg/protocol/cdr"
	"github.com/corbalite/giopkg/protocol/giop"
)

// Dial returns a stream for the object the IOR refers to. When the IOR's
// first TAG_INTERNET_IOP profile names the endpoint old is already connected
// to, old is returned; otherwise a new TCP connection is established. The
// caller distinguishes the two by comparing the result against old and owns
// closing a newly created stream.
func Dial(ref *giop.IOR, old *Stream) (*Stream, error) {
	var profile *giop.ProfileBody
	for i := range ref.Profiles {
		if ref.Profiles[i].Tag == giop.TAG_INTERNET_IOP {
			profile = ref.Profiles[i].IIOP
			break
		}
	}
	if profile == nil {
		return nil, cdr.NewMarshalException(cdr.INVALID_URL,
			"Dial: IOR has no TAG_INTERNET_IOP profile")
	}
	endpoint := net.JoinHostPort(profile.Host, strconv.Itoa(int(profile.Port)))

	if old != nil && old.Name() == endpoint {
		logx.Debug.Printf("Dial: reusing stream %s", endpoint)
		return old, nil
	}
	conn, err := net.Dial("tcp", endpoint)
	if err != nil {
		return nil, streamError("Dial", err)
	}
	s := NewStream(conn)
	s.name = endpoint
	logx.Debug.Printf("Dial: new stream %s", endpoint)
	return s, nil
}
