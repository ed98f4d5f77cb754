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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corbalite/giopkg/protocol/cdr"
)

func TestMessageHeaderWire(t *testing.T) {
	in := MessageHeader{
		Magic:   Magic,
		Version: v12,
		Flags:   EndianMask,
		Type:    Request,
		Size:    0x10,
	}
	buf := encode(t, v12, cdr.Bind(MarshalMessageHeader, &in))
	require.Equal(t, []byte{
		0x47, 0x49, 0x4F, 0x50, // "GIOP"
		1, 2,
		0x01,
		0x00,
		0x10, 0x00, 0x00, 0x00,
	}, buf)

	var got MessageHeader
	decode(t, v12, buf, cdr.Bind(MarshalMessageHeader, &got))
	require.Equal(t, in, got)
	require.NoError(t, got.Validate())
	require.True(t, got.LittleEndian())
	require.False(t, got.MoreFragments())
}

func TestMessageHeaderValidate(t *testing.T) {
	bad := MessageHeader{Magic: [4]byte{'X', 'I', 'O', 'P'}, Type: Request}
	err := bad.Validate()
	require.Error(t, err)
	require.Equal(t, int32(cdr.PROTOCOL_ERROR), err.(*cdr.MarshalException).TypeID())

	unknown := MessageHeader{Magic: Magic, Type: MsgType(12)}
	require.Error(t, unknown.Validate())
}

func TestMessageHeaderFragmentBit(t *testing.T) {
	h := MessageHeader{Magic: Magic, Version: v11, Flags: EndianMask | FragmentMask, Type: Fragment}
	require.True(t, h.MoreFragments())

	// GIOP 1.0 has no fragment bit; the flags octet is a pure byte-order flag
	h.Version = v10
	require.False(t, h.MoreFragments())
}

func TestRequestHeader10RoundTrip(t *testing.T) {
	in := RequestHeader_1_0{
		ServiceContext:      ServiceContextList{{ContextID: CodeSets, ContextData: []byte{1}}},
		RequestID:           3,
		ResponseExpected:    true,
		ObjectKey:           []byte("obj"),
		Operation:           "ping",
		RequestingPrincipal: []byte{},
	}
	buf := encode(t, v10, cdr.Bind(MarshalRequestHeader_1_0, &in))
	var got RequestHeader_1_0
	decode(t, v10, buf, cdr.Bind(MarshalRequestHeader_1_0, &got))
	require.Equal(t, in, got)
}

func TestRequestHeader11RoundTrip(t *testing.T) {
	in := RequestHeader_1_1{
		RequestID:           9,
		ResponseExpected:    false,
		ObjectKey:           []byte{0xAA},
		Operation:           "op",
		RequestingPrincipal: []byte{},
	}
	buf := encode(t, v11, cdr.Bind(MarshalRequestHeader_1_1, &in))
	var got RequestHeader_1_1
	decode(t, v11, buf, cdr.Bind(MarshalRequestHeader_1_1, &got))
	require.Equal(t, got.RequestID, in.RequestID)
	require.Equal(t, got.ObjectKey, in.ObjectKey)
	require.Equal(t, got.Operation, in.Operation)
	require.Equal(t, got.Reserved, in.Reserved)
}

func TestRequestHeader12RoundTrip(t *testing.T) {
	in := RequestHeader{
		RequestID:     7,
		ResponseFlags: SYNC_WITH_TARGET,
		Target:        TargetAddress{Which: KeyAddr, ObjectKey: []byte("k")},
		Operation:     "ping",
	}
	buf := encode(t, v12, cdr.Bind(MarshalRequestHeader, &in))
	var got RequestHeader
	decode(t, v12, buf, cdr.Bind(MarshalRequestHeader, &got))
	require.Equal(t, in.RequestID, got.RequestID)
	require.Equal(t, in.ResponseFlags, got.ResponseFlags)
	require.Equal(t, in.Target.Which, got.Target.Which)
	require.Equal(t, in.Target.ObjectKey, got.Target.ObjectKey)
	require.Equal(t, in.Operation, got.Operation)
}

func TestTargetAddressArms(t *testing.T) {
	profile := TargetAddress{
		Which: ProfileAddr,
		Profile: &TaggedProfile{
			Tag:  TAG_INTERNET_IOP,
			IIOP: &ProfileBody{IIOPVersion: v10, Host: "h", Port: 1, ObjectKey: []byte{1}},
		},
	}
	buf := encode(t, v12, cdr.Bind(MarshalTargetAddress, &profile))
	var gotProfile TargetAddress
	decode(t, v12, buf, cdr.Bind(MarshalTargetAddress, &gotProfile))
	require.Equal(t, profile, gotProfile)

	reference := TargetAddress{
		Which: ReferenceAddr,
		IOR: &IORAddressingInfo{
			SelectedProfileIndex: 0,
			IOR: IOR{
				TypeID: "IDL:X:1.0",
				Profiles: []TaggedProfile{
					{Tag: TAG_INTERNET_IOP, IIOP: &ProfileBody{IIOPVersion: v10, Host: "h", Port: 2, ObjectKey: []byte{2}}},
				},
			},
		},
	}
	buf = encode(t, v12, cdr.Bind(MarshalTargetAddress, &reference))
	var gotReference TargetAddress
	decode(t, v12, buf, cdr.Bind(MarshalTargetAddress, &gotReference))
	require.Equal(t, reference, gotReference)
}

func TestTargetAddressInvalidDiscriminator(t *testing.T) {
	in := TargetAddress{Which: 9}
	ch := cdr.NewEncoder(v12, true, 0)
	err := MarshalTargetAddress(ch, &in)
	require.Error(t, err)
	require.Equal(t, int32(cdr.INVALID_DISCRIMINATOR), err.(*cdr.MarshalException).TypeID())
}

func TestReplyHeaderRoundTrip(t *testing.T) {
	in10 := ReplyHeader_1_0{RequestID: 5, ReplyStatus: LOCATION_FORWARD}
	buf := encode(t, v10, cdr.Bind(MarshalReplyHeader_1_0, &in10))
	var got10 ReplyHeader_1_0
	decode(t, v10, buf, cdr.Bind(MarshalReplyHeader_1_0, &got10))
	require.Equal(t, in10.RequestID, got10.RequestID)
	require.Equal(t, in10.ReplyStatus, got10.ReplyStatus)

	in12 := ReplyHeader{RequestID: 6, ReplyStatus: SYSTEM_EXCEPTION}
	buf = encode(t, v12, cdr.Bind(MarshalReplyHeader, &in12))
	var got12 ReplyHeader
	decode(t, v12, buf, cdr.Bind(MarshalReplyHeader, &got12))
	require.Equal(t, in12.RequestID, got12.RequestID)
	require.Equal(t, in12.ReplyStatus, got12.ReplyStatus)
}

func TestSystemExceptionReplyBody(t *testing.T) {
	in := SystemExceptionReplyBody{
		ExceptionID:      "IDL:CORBA/BAD_PARAM:1.0",
		MinorCodeValue:   0,
		CompletionStatus: 0,
	}
	buf := encode(t, v12, cdr.Bind(MarshalSystemExceptionReplyBody, &in))
	var got SystemExceptionReplyBody
	decode(t, v12, buf, cdr.Bind(MarshalSystemExceptionReplyBody, &got))
	require.Equal(t, in, got)
}

func TestLocateHeaders(t *testing.T) {
	in10 := LocateRequestHeader_1_0{RequestID: 1, ObjectKey: []byte("k")}
	buf := encode(t, v10, cdr.Bind(MarshalLocateRequestHeader_1_0, &in10))
	var got10 LocateRequestHeader_1_0
	decode(t, v10, buf, cdr.Bind(MarshalLocateRequestHeader_1_0, &got10))
	require.Equal(t, in10, got10)

	in12 := LocateRequestHeader{
		RequestID: 2,
		Target:    TargetAddress{Which: KeyAddr, ObjectKey: []byte("k")},
	}
	buf = encode(t, v12, cdr.Bind(MarshalLocateRequestHeader, &in12))
	var got12 LocateRequestHeader
	decode(t, v12, buf, cdr.Bind(MarshalLocateRequestHeader, &got12))
	require.Equal(t, in12, got12)

	reply := LocateReplyHeader{RequestID: 2, LocateStatus: OBJECT_FORWARD}
	buf = encode(t, v12, cdr.Bind(MarshalLocateReplyHeader, &reply))
	var gotReply LocateReplyHeader
	decode(t, v12, buf, cdr.Bind(MarshalLocateReplyHeader, &gotReply))
	require.Equal(t, reply, gotReply)

	cancel := CancelRequestHeader{RequestID: 3}
	buf = encode(t, v12, cdr.Bind(MarshalCancelRequestHeader, &cancel))
	var gotCancel CancelRequestHeader
	decode(t, v12, buf, cdr.Bind(MarshalCancelRequestHeader, &gotCancel))
	require.Equal(t, cancel, gotCancel)

	fragment := FragmentHeader{RequestID: 4}
	buf = encode(t, v12, cdr.Bind(MarshalFragmentHeader, &fragment))
	var gotFragment FragmentHeader
	decode(t, v12, buf, cdr.Bind(MarshalFragmentHeader, &gotFragment))
	require.Equal(t, fragment, gotFragment)
}

func TestNames(t *testing.T) {
	require.Equal(t, "Request", Request.String())
	require.Equal(t, "Fragment", Fragment.String())
	require.Equal(t, "9", MsgType(9).String())
	require.Equal(t, "NO_EXCEPTION", NO_EXCEPTION.String())
	require.Equal(t, "SYSTEM_EXCEPTION", SYSTEM_EXCEPTION.String())
	require.Equal(t, "OBJECT_HERE", OBJECT_HERE.String())
	require.Equal(t, "TAG_INTERNET_IOP", ProfileTagName(TAG_INTERNET_IOP))
	require.Equal(t, "TAG_CODE_SETS", ComponentTagName(TAG_CODE_SETS))
	require.Equal(t, "BI_DIR_IIOP", ServiceIDName(BI_DIR_IIOP))
	require.Equal(t, "99", ProfileTagName(99))
}
