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

package giop

import (
	"fmt"

	"github.com/corbalite/giopkg/protocol/cdr"
)

// MessageHeader is the 12-octet prefix of every GIOP message. Size is
// encoded in the byte order named by the flags' endian bit.
type MessageHeader struct {
	Magic   [4]byte
	Version cdr.Version
	Flags   byte
	Type    MsgType
	Size    uint32
}

// LittleEndian reports the endian bit of the flags octet.
func (h *MessageHeader) LittleEndian() bool { return h.Flags&EndianMask != 0 }

// MoreFragments reports the fragment bit, meaningful for GIOP 1.1 and later.
func (h *MessageHeader) MoreFragments() bool {
	return h.Version.GE(1, 1) && h.Flags&FragmentMask != 0
}

// Validate checks the magic and message type of a received header.
func (h *MessageHeader) Validate() error {
	if h.Magic != Magic {
		return cdr.NewMarshalException(cdr.PROTOCOL_ERROR,
			fmt.Sprintf("MessageHeader: bad magic %x", h.Magic))
	}
	if h.Type > Fragment {
		return cdr.NewMarshalException(cdr.PROTOCOL_ERROR,
			fmt.Sprintf("MessageHeader: unknown message type %d", h.Type))
	}
	return nil
}

// MarshalMessageHeader marshals the 12-octet message header. The channel's
// byte order must match the header's endian bit.
func MarshalMessageHeader(ch *cdr.Channel, v *MessageHeader) error {
	for i := range v.Magic {
		if err := cdr.Octet(ch, &v.Magic[i]); err != nil {
			return err
		}
	}
	if err := cdr.VersionCodec(ch, &v.Version); err != nil {
		return err
	}
	if err := cdr.Octet(ch, &v.Flags); err != nil {
		return err
	}
	if err := cdr.Octet(ch, (*byte)(&v.Type)); err != nil {
		return err
	}
	return cdr.ULong(ch, &v.Size)
}

// AddressingDisposition selects the arm of a TargetAddress.
type AddressingDisposition int16

const (
	KeyAddr       AddressingDisposition = 0
	ProfileAddr   AddressingDisposition = 1
	ReferenceAddr AddressingDisposition = 2
)

// TargetAddress is the discriminated target union of a GIOP 1.2 request.
type TargetAddress struct {
	Which     AddressingDisposition
	ObjectKey []byte             // KeyAddr
	Profile   *TaggedProfile     // ProfileAddr
	IOR       *IORAddressingInfo // ReferenceAddr
}

// MarshalTargetAddress ...
func MarshalTargetAddress(ch *cdr.Channel, v *TargetAddress) error {
	if err := cdr.Short(ch, (*int16)(&v.Which)); err != nil {
		return err
	}
	switch v.Which {
	case KeyAddr:
		return cdr.OctetSeq(ch, &v.ObjectKey)
	case ProfileAddr:
		if v.Profile == nil {
			v.Profile = new(TaggedProfile)
		}
		return MarshalTaggedProfile(ch, v.Profile)
	case ReferenceAddr:
		if v.IOR == nil {
			v.IOR = new(IORAddressingInfo)
		}
		return MarshalIORAddressingInfo(ch, v.IOR)
	}
	return cdr.NewMarshalException(cdr.INVALID_DISCRIMINATOR,
		fmt.Sprintf("MarshalTargetAddress: invalid disposition %d", v.Which))
}

// RequestHeader_1_0 is the GIOP 1.0 request header.
type RequestHeader_1_0 struct {
	ServiceContext      ServiceContextList
	RequestID           uint32
	ResponseExpected    bool
	ObjectKey           []byte
	Operation           string
	RequestingPrincipal []byte
}

// MarshalRequestHeader_1_0 ...
func MarshalRequestHeader_1_0(ch *cdr.Channel, v *RequestHeader_1_0) error {
	if err := MarshalServiceContextList(ch, &v.ServiceContext); err != nil {
		return err
	}
	if err := cdr.ULong(ch, &v.RequestID); err != nil {
		return err
	}
	if err := cdr.Boolean(ch, &v.ResponseExpected); err != nil {
		return err
	}
	if err := cdr.OctetSeq(ch, &v.ObjectKey); err != nil {
		return err
	}
	if err := cdr.String(ch, &v.Operation); err != nil {
		return err
	}
	return cdr.OctetSeq(ch, &v.RequestingPrincipal)
}

// RequestHeader_1_1 is the GIOP 1.1 request header, 1.0 plus three reserved
// octets.
type RequestHeader_1_1 struct {
	ServiceContext      ServiceContextList
	RequestID           uint32
	ResponseExpected    bool
	Reserved            [3]byte
	ObjectKey           []byte
	Operation           string
	RequestingPrincipal []byte
}

// MarshalRequestHeader_1_1 ...
func MarshalRequestHeader_1_1(ch *cdr.Channel, v *RequestHeader_1_1) error {
	if err := MarshalServiceContextList(ch, &v.ServiceContext); err != nil {
		return err
	}
	if err := cdr.ULong(ch, &v.RequestID); err != nil {
		return err
	}
	if err := cdr.Boolean(ch, &v.ResponseExpected); err != nil {
		return err
	}
	for i := range v.Reserved {
		if err := cdr.Octet(ch, &v.Reserved[i]); err != nil {
			return err
		}
	}
	if err := cdr.OctetSeq(ch, &v.ObjectKey); err != nil {
		return err
	}
	if err := cdr.String(ch, &v.Operation); err != nil {
		return err
	}
	return cdr.OctetSeq(ch, &v.RequestingPrincipal)
}

// RequestHeader is the GIOP 1.2 request header. The message body that
// follows it is aligned to 8 octets; the envelope in protocol/iiop performs
// that skip.
type RequestHeader struct {
	RequestID      uint32
	ResponseFlags  byte
	Reserved       [3]byte
	Target         TargetAddress
	Operation      string
	ServiceContext ServiceContextList
}

// MarshalRequestHeader ...
func MarshalRequestHeader(ch *cdr.Channel, v *RequestHeader) error {
	if err := cdr.ULong(ch, &v.RequestID); err != nil {
		return err
	}
	if err := cdr.Octet(ch, &v.ResponseFlags); err != nil {
		return err
	}
	for i := range v.Reserved {
		if err := cdr.Octet(ch, &v.Reserved[i]); err != nil {
			return err
		}
	}
	if err := MarshalTargetAddress(ch, &v.Target); err != nil {
		return err
	}
	if err := cdr.String(ch, &v.Operation); err != nil {
		return err
	}
	return MarshalServiceContextList(ch, &v.ServiceContext)
}

// ReplyHeader_1_0 is the GIOP 1.0/1.1 reply header.
type ReplyHeader_1_0 struct {
	ServiceContext ServiceContextList
	RequestID      uint32
	ReplyStatus    ReplyStatus
}

// ReplyHeader_1_1 has the same wire format as 1.0.
type ReplyHeader_1_1 = ReplyHeader_1_0

// MarshalReplyHeader_1_0 ...
func MarshalReplyHeader_1_0(ch *cdr.Channel, v *ReplyHeader_1_0) error {
	if err := MarshalServiceContextList(ch, &v.ServiceContext); err != nil {
		return err
	}
	if err := cdr.ULong(ch, &v.RequestID); err != nil {
		return err
	}
	return cdr.Enum(ch, (*uint32)(&v.ReplyStatus))
}

// ReplyHeader is the GIOP 1.2 reply header; the service contexts moved to
// the end and the body that follows is 8-aligned.
type ReplyHeader struct {
	RequestID      uint32
	ReplyStatus    ReplyStatus
	ServiceContext ServiceContextList
}

// MarshalReplyHeader ...
func MarshalReplyHeader(ch *cdr.Channel, v *ReplyHeader) error {
	if err := cdr.ULong(ch, &v.RequestID); err != nil {
		return err
	}
	if err := cdr.Enum(ch, (*uint32)(&v.ReplyStatus)); err != nil {
		return err
	}
	return MarshalServiceContextList(ch, &v.ServiceContext)
}

// SystemExceptionReplyBody is the body of a SYSTEM_EXCEPTION reply.
type SystemExceptionReplyBody struct {
	ExceptionID      string
	MinorCodeValue   uint32
	CompletionStatus uint32
}

// MarshalSystemExceptionReplyBody ...
func MarshalSystemExceptionReplyBody(ch *cdr.Channel, v *SystemExceptionReplyBody) error {
	if err := cdr.String(ch, &v.ExceptionID); err != nil {
		return err
	}
	if err := cdr.ULong(ch, &v.MinorCodeValue); err != nil {
		return err
	}
	return cdr.ULong(ch, &v.CompletionStatus)
}

// CancelRequestHeader ...
type CancelRequestHeader struct {
	RequestID uint32
}

// MarshalCancelRequestHeader ...
func MarshalCancelRequestHeader(ch *cdr.Channel, v *CancelRequestHeader) error {
	return cdr.ULong(ch, &v.RequestID)
}

// LocateRequestHeader_1_0 is the GIOP 1.0/1.1 locate request header.
type LocateRequestHeader_1_0 struct {
	RequestID uint32
	ObjectKey []byte
}

// LocateRequestHeader_1_1 has the same wire format as 1.0.
type LocateRequestHeader_1_1 = LocateRequestHeader_1_0

// MarshalLocateRequestHeader_1_0 ...
func MarshalLocateRequestHeader_1_0(ch *cdr.Channel, v *LocateRequestHeader_1_0) error {
	if err := cdr.ULong(ch, &v.RequestID); err != nil {
		return err
	}
	return cdr.OctetSeq(ch, &v.ObjectKey)
}

// LocateRequestHeader is the GIOP 1.2 locate request header.
type LocateRequestHeader struct {
	RequestID uint32
	Target    TargetAddress
}

// MarshalLocateRequestHeader ...
func MarshalLocateRequestHeader(ch *cdr.Channel, v *LocateRequestHeader) error {
	if err := cdr.ULong(ch, &v.RequestID); err != nil {
		return err
	}
	return MarshalTargetAddress(ch, &v.Target)
}

// LocateReplyHeader is the locate reply header; all GIOP versions share the
// wire format.
type LocateReplyHeader struct {
	RequestID    uint32
	LocateStatus LocateStatus
}

// MarshalLocateReplyHeader ...
func MarshalLocateReplyHeader(ch *cdr.Channel, v *LocateReplyHeader) error {
	if err := cdr.ULong(ch, &v.RequestID); err != nil {
		return err
	}
	return cdr.Enum(ch, (*uint32)(&v.LocateStatus))
}

// FragmentHeader is the GIOP 1.2 fragment header.
type FragmentHeader struct {
	RequestID uint32
}

// MarshalFragmentHeader ...
func MarshalFragmentHeader(ch *cdr.Channel, v *FragmentHeader) error {
	return cdr.ULong(ch, &v.RequestID)
}
