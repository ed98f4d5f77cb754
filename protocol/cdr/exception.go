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
	"errors"
	"fmt"
)

const ( // MarshalException codes
	UNKNOWN_MARSHAL_EXCEPTION = 0
	TRUNCATED_BUFFER          = 1
	INVALID_ALIGNMENT         = 2
	INVALID_DISCRIMINATOR     = 3
	UNSUPPORTED_TYPECODE      = 4
	OUT_OF_MEMORY             = 5
	INVALID_STRINGIFIED_IOR   = 6
	INVALID_URL               = 7
	PROTOCOL_ERROR            = 8
	REMOTE_REPLY_STATUS       = 9
	REMOTE_EXCEPTION          = 10
	TIMEOUT                   = 11
	CONNECTION_LOST           = 12
)

// MarshalException is the error type shared by the CDR, GIOP and IIOP layers.
// The code identifies one of the failure kinds above; the message carries the
// per-site detail.
type MarshalException struct {
	t int32
	m string

	err error
}

// NewMarshalException creates a MarshalException instance
func NewMarshalException(t int32, m string) *MarshalException {
	return &MarshalException{t: t, m: m}
}

// NewMarshalExceptionWithErr wraps err, preserving an existing MarshalException.
func NewMarshalExceptionWithErr(t int32, m string, err error) *MarshalException {
	e, ok := err.(*MarshalException)
	if ok {
		return e
	}
	ret := NewMarshalException(t, m)
	ret.err = err
	return ret
}

// TypeID ...
func (e *MarshalException) TypeID() int32 { return e.t }

// Msg ...
func (e *MarshalException) Msg() string { return e.m }

var defaultMarshalExceptionMessage = map[int32]string{
	UNKNOWN_MARSHAL_EXCEPTION: "unknown marshaling exception",
	TRUNCATED_BUFFER:          "read past end of buffer",
	INVALID_ALIGNMENT:         "invalid alignment",
	INVALID_DISCRIMINATOR:     "invalid union discriminator",
	UNSUPPORTED_TYPECODE:      "unsupported TypeCode",
	OUT_OF_MEMORY:             "buffer growth failure",
	INVALID_STRINGIFIED_IOR:   "invalid stringified IOR",
	INVALID_URL:               "invalid corbaloc URL",
	PROTOCOL_ERROR:            "GIOP protocol error",
	REMOTE_REPLY_STATUS:       "reply status other than NO_EXCEPTION",
	REMOTE_EXCEPTION:          "system exception from peer",
	TIMEOUT:                   "stream timeout",
	CONNECTION_LOST:           "stream connection lost",
}

// Error ...
func (e *MarshalException) Error() string {
	if e.m != "" {
		return e.m
	}
	if m, ok := defaultMarshalExceptionMessage[e.t]; ok {
		return m
	}
	return fmt.Sprintf("unknown exception type [%d]", e.t)
}

// String ...
func (e *MarshalException) String() string {
	return fmt.Sprintf("MarshalException(%d): %q", e.t, e.m)
}

// Unwrap ... for errors pkg
func (e *MarshalException) Unwrap() error { return e.err }

// Is ... for errors pkg
func (e *MarshalException) Is(err error) bool {
	t, ok := err.(*MarshalException)
	if ok && t.t == e.t && t.m == e.m {
		return true
	}
	return errors.Is(e.err, err)
}

// PrependError prepends additional information to an error without losing
// the exception code.
func PrependError(prepend string, err error) error {
	if t, ok := err.(*MarshalException); ok {
		return NewMarshalException(t.TypeID(), prepend+t.Error())
	}
	return errors.New(prepend + err.Error())
}
