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

// TCKind is a TypeCode kind code.
type TCKind uint32

const (
	TkNull TCKind = iota
	TkVoid
	TkShort
	TkLong
	TkUShort
	TkULong
	TkFloat
	TkDouble
	TkBoolean
	TkChar
	TkOctet
	TkAny
	TkTypeCode
	TkPrincipal
	TkObjref
	TkStruct
	TkUnion
	TkEnum
	TkString
	TkSequence
	TkArray
	TkAlias
	TkExcept
	TkLongLong
	TkULongLong
	TkLongDouble
	TkWChar
	TkWString
	TkFixed
	TkValue
	TkValueBox
	TkNative
	TkAbstractInterface
	TkLocalInterface

	// TkIndirection is the CDR indirection marker, not a real kind.
	TkIndirection TCKind = 0xFFFFFFFF
)

// Any carries one value of any primitive TypeCode. Complex TypeCodes
// (struct, union, sequence, array, value, ...) need a TypeCode
// representation this runtime does not have and fail with
// UNSUPPORTED_TYPECODE.
type Any struct {
	Kind TCKind

	// Bound is the bound parameter of a string or wstring TypeCode
	// (0 = unbounded); unused for other kinds.
	Bound uint32

	VShort      int16
	VLong       int32
	VUShort     uint16
	VULong      uint32
	VFloat      float32
	VDouble     float64
	VBoolean    bool
	VChar       byte
	VOctet      byte
	VTypeCode   TCKind
	VPrincipal  []byte
	VString     string
	VLongLong   int64
	VULongLong  uint64
	VLongDouble cdr.LongDouble
	VWChar      uint16
	VWString    string
	VIndirect   int32
}

// MarshalAny marshals the TypeCode kind and the one value it selects.
func MarshalAny(ch *cdr.Channel, v *Any) error {
	if err := cdr.Enum(ch, (*uint32)(&v.Kind)); err != nil {
		return err
	}
	switch v.Kind {
	case TkNull, TkVoid:
		return nil
	case TkShort:
		return cdr.Short(ch, &v.VShort)
	case TkLong:
		return cdr.Long(ch, &v.VLong)
	case TkUShort:
		return cdr.UShort(ch, &v.VUShort)
	case TkULong:
		return cdr.ULong(ch, &v.VULong)
	case TkFloat:
		return cdr.Float(ch, &v.VFloat)
	case TkDouble:
		return cdr.Double(ch, &v.VDouble)
	case TkBoolean:
		return cdr.Boolean(ch, &v.VBoolean)
	case TkChar:
		return cdr.Char(ch, &v.VChar)
	case TkOctet:
		return cdr.Octet(ch, &v.VOctet)
	case TkTypeCode:
		return cdr.Enum(ch, (*uint32)(&v.VTypeCode))
	case TkPrincipal:
		return cdr.OctetSeq(ch, &v.VPrincipal)
	case TkString:
		if err := cdr.ULong(ch, &v.Bound); err != nil {
			return err
		}
		return cdr.String(ch, &v.VString)
	case TkLongLong:
		return cdr.LongLong(ch, &v.VLongLong)
	case TkULongLong:
		return cdr.ULongLong(ch, &v.VULongLong)
	case TkLongDouble:
		return cdr.LongDoubleCodec(ch, &v.VLongDouble)
	case TkWChar:
		return cdr.WChar(ch, &v.VWChar)
	case TkWString:
		if err := cdr.ULong(ch, &v.Bound); err != nil {
			return err
		}
		return cdr.WString(ch, &v.VWString)
	case TkIndirection:
		return cdr.Long(ch, &v.VIndirect)
	}
	return cdr.NewMarshalException(cdr.UNSUPPORTED_TYPECODE,
		fmt.Sprintf("MarshalAny: unsupported TypeCode %d", uint32(v.Kind)))
}

// AnySeq ...
type AnySeq []Any

// MarshalAnySeq ...
func MarshalAnySeq(ch *cdr.Channel, v *AnySeq) error {
	return cdr.Sequence(ch, (*[]Any)(v), MarshalAny)
}
