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

func TestAnyPrimitives(t *testing.T) {
	for _, in := range []Any{
		{Kind: TkNull},
		{Kind: TkVoid},
		{Kind: TkShort, VShort: -7},
		{Kind: TkLong, VLong: 1 << 20},
		{Kind: TkUShort, VUShort: 0xFFFF},
		{Kind: TkULong, VULong: 0xCAFEBABE},
		{Kind: TkFloat, VFloat: 0.5},
		{Kind: TkDouble, VDouble: -2.25},
		{Kind: TkBoolean, VBoolean: true},
		{Kind: TkChar, VChar: 'c'},
		{Kind: TkOctet, VOctet: 0xA0},
		{Kind: TkTypeCode, VTypeCode: TkLong},
		{Kind: TkPrincipal, VPrincipal: []byte("root")},
		{Kind: TkString, VString: "hi"},
		{Kind: TkLongLong, VLongLong: -1 << 40},
		{Kind: TkULongLong, VULongLong: 1 << 60},
		{Kind: TkWChar, VWChar: 0x42},
		{Kind: TkWString, VWString: "wide"},
		{Kind: TkIndirection, VIndirect: -4},
	} {
		buf := encode(t, v12, cdr.Bind(MarshalAny, &in))
		got := Any{}
		decode(t, v12, buf, cdr.Bind(MarshalAny, &got))
		require.Equal(t, in, got, "kind %d", in.Kind)
	}
}

func TestAnyUnsupported(t *testing.T) {
	for _, kind := range []TCKind{TkAny, TkObjref, TkStruct, TkUnion, TkEnum,
		TkSequence, TkArray, TkAlias, TkExcept, TkFixed, TkValue, TkValueBox,
		TkNative, TkAbstractInterface, TkLocalInterface} {
		in := Any{Kind: kind}
		ch := cdr.NewEncoder(v12, true, 0)
		err := MarshalAny(ch, &in)
		require.Error(t, err)
		require.Equal(t, int32(cdr.UNSUPPORTED_TYPECODE), err.(*cdr.MarshalException).TypeID())
	}
}

func TestAnySeq(t *testing.T) {
	in := AnySeq{
		{Kind: TkLong, VLong: 1},
		{Kind: TkString, VString: "two"},
	}
	buf := encode(t, v12, cdr.Bind(MarshalAnySeq, &in))
	var got AnySeq
	decode(t, v12, buf, cdr.Bind(MarshalAnySeq, &got))
	require.Equal(t, in, got)
}

func TestDefaultVersion(t *testing.T) {
	prev := DefaultVersion()
	defer SetDefaultVersion(prev)

	SetDefaultVersion(v11)
	require.Equal(t, v11, DefaultVersion())
	SetDefaultVersion(v12)
	require.Equal(t, v12, DefaultVersion())
}
