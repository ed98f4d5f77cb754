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

func TestSASContextBodyArms(t *testing.T) {
	for _, in := range []SASContextBody{
		{
			Which: MTEstablishContext,
			Establish: &EstablishContext{
				ClientContextID: 77,
				AuthorizationToken: AuthorizationToken{
					{TheType: 1, TheElement: []byte{0xA1}},
				},
				IdentityToken:             IdentityToken{Which: ITTAnonymous, Anonymous: true},
				ClientAuthenticationToken: []byte{0x60, 0x01},
			},
		},
		{
			Which: MTCompleteEstablishContext,
			Complete: &CompleteEstablishContext{
				ClientContextID:   77,
				ContextStateful:   true,
				FinalContextToken: []byte{0x60},
			},
		},
		{
			Which: MTContextError,
			Error: &ContextError{
				ClientContextID: 77,
				MajorStatus:     1,
				MinorStatus:     2,
				ErrorToken:      []byte{0xFF},
			},
		},
		{
			Which:     MTMessageInContext,
			InContext: &MessageInContext{ClientContextID: 77, DiscardContext: true},
		},
	} {
		buf := encode(t, v12, cdr.Bind(MarshalSASContextBody, &in))
		got := SASContextBody{}
		decode(t, v12, buf, cdr.Bind(MarshalSASContextBody, &got))
		require.Equal(t, in, got, "message type %d", in.Which)
	}
}

func TestSASContextBodyInvalidDiscriminator(t *testing.T) {
	in := SASContextBody{Which: 3}
	ch := cdr.NewEncoder(v12, true, 0)
	err := MarshalSASContextBody(ch, &in)
	require.Error(t, err)
	require.Equal(t, int32(cdr.INVALID_DISCRIMINATOR), err.(*cdr.MarshalException).TypeID())
}

func TestValueArms(t *testing.T) {
	for _, in := range []Value{
		{Which: TypeBoolean, VBoolean: true},
		{Which: TypeChar, VChar: 'q'},
		{Which: TypeOctet, VOctet: 0x7F},
		{Which: TypeShort, VShort: -3},
		{Which: TypeUShort, VUShort: 9},
		{Which: TypeLong, VLong: -70000},
		{Which: TypeULong, VULong: 70000},
		{Which: TypeFloat, VFloat: 1.5},
		{Which: TypeDouble, VDouble: -0.25},
		{Which: TypeString, VString: "row"},
		{Which: TypeAny, VAny: Any{Kind: TkLong, VLong: 11}},
		{Which: TypeSmallInt, VSmallInt: 4},
		{Which: TypeInteger, VInteger: 5},
		{Which: TypeReal, VReal: 6.5},
		{Which: TypeDoublePrecision, VDoublePrecision: 7.5},
		{Which: TypeCharacter, VCharacter: "ch"},
		{Which: TypeDecimal, VDecimal: Decimal{Precision: 10, Scale: 2, Value: []byte{1, 2}}},
		{Which: TypeNumeric, VNumeric: Decimal{Precision: 5, Scale: 0, Value: []byte{9}}},
	} {
		buf := encode(t, v12, cdr.Bind(MarshalValue, &in))
		got := Value{}
		decode(t, v12, buf, cdr.Bind(MarshalValue, &got))
		require.Equal(t, in, got, "value type %d", in.Which)
	}
}

func TestValueObjectArm(t *testing.T) {
	in := Value{
		Which: TypeObject,
		VObject: IOR{
			TypeID: "IDL:X:1.0",
			Profiles: []TaggedProfile{
				{Tag: TAG_INTERNET_IOP, IIOP: &ProfileBody{IIOPVersion: v10, Host: "h", Port: 1, ObjectKey: []byte{1}}},
			},
		},
	}
	buf := encode(t, v12, cdr.Bind(MarshalValue, &in))
	got := Value{}
	decode(t, v12, buf, cdr.Bind(MarshalValue, &got))
	require.Equal(t, in, got)
}

func TestRecord(t *testing.T) {
	in := Record{
		{Null: false, Value: Value{Which: TypeLong, VLong: 1}},
		{Null: false, Value: Value{Which: TypeString, VString: "two"}},
	}
	buf := encode(t, v12, cdr.Bind(MarshalRecord, &in))
	var got Record
	decode(t, v12, buf, cdr.Bind(MarshalRecord, &got))
	require.Equal(t, in, got)

	// the null arm carries no data and is rejected, matching the generated
	// union codecs
	null := FieldValue{Null: true}
	ch := cdr.NewEncoder(v12, true, 0)
	err := MarshalFieldValue(ch, &null)
	require.Error(t, err)
	require.Equal(t, int32(cdr.INVALID_DISCRIMINATOR), err.(*cdr.MarshalException).TypeID())
}

func TestSpecifiedProps(t *testing.T) {
	in := SpecifiedProps{Which: PropsSome, PropNames: []string{"cost", "latency"}}
	buf := encode(t, v12, cdr.Bind(MarshalSpecifiedProps, &in))
	got := SpecifiedProps{}
	decode(t, v12, buf, cdr.Bind(MarshalSpecifiedProps, &got))
	require.Equal(t, in, got)

	for _, which := range []HowManyProps{PropsNone, PropsAll} {
		bad := SpecifiedProps{Which: which}
		ch := cdr.NewEncoder(v12, true, 0)
		err := MarshalSpecifiedProps(ch, &bad)
		require.Error(t, err)
		require.Equal(t, int32(cdr.INVALID_DISCRIMINATOR), err.(*cdr.MarshalException).TypeID())
	}
}

func TestSpecifiedServiceTypes(t *testing.T) {
	in := SpecifiedServiceTypes{Which: ListSince, Incarnation: IncarnationNumber{High: 1, Low: 2}}
	buf := encode(t, v12, cdr.Bind(MarshalSpecifiedServiceTypes, &in))
	got := SpecifiedServiceTypes{}
	decode(t, v12, buf, cdr.Bind(MarshalSpecifiedServiceTypes, &got))
	require.Equal(t, in, got)

	bad := SpecifiedServiceTypes{Which: ListAll}
	ch := cdr.NewEncoder(v12, true, 0)
	err := MarshalSpecifiedServiceTypes(ch, &bad)
	require.Error(t, err)
	require.Equal(t, int32(cdr.INVALID_DISCRIMINATOR), err.(*cdr.MarshalException).TypeID())
}
