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

// Query-collection and trading-service types: the remaining discriminated
// unions of the IDL set, all following the same marshal-the-discriminant,
// marshal-one-arm pattern.

import (
	"fmt"

	"github.com/corbalite/giopkg/protocol/cdr"
)

// ValueType selects the arm of a Value.
type ValueType uint32

const (
	TypeBoolean ValueType = iota
	TypeChar
	TypeOctet
	TypeShort
	TypeUShort
	TypeLong
	TypeULong
	TypeFloat
	TypeDouble
	TypeString
	TypeObject
	TypeAny
	TypeSmallInt
	TypeInteger
	TypeReal
	TypeDoublePrecision
	TypeCharacter
	TypeDecimal
	TypeNumeric
)

// Decimal is an arbitrary-precision decimal carried as raw digits.
type Decimal struct {
	Precision int32
	Scale     int32
	Value     []byte
}

// MarshalDecimal ...
func MarshalDecimal(ch *cdr.Channel, v *Decimal) error {
	if err := cdr.Long(ch, &v.Precision); err != nil {
		return err
	}
	if err := cdr.Long(ch, &v.Scale); err != nil {
		return err
	}
	return cdr.OctetSeq(ch, &v.Value)
}

// Value is the query-collection value union.
type Value struct {
	Which ValueType

	VBoolean         bool
	VChar            byte
	VOctet           byte
	VShort           int16
	VUShort          uint16
	VLong            int32
	VULong           uint32
	VFloat           float32
	VDouble          float64
	VString          string
	VObject          IOR
	VAny             Any
	VSmallInt        int16
	VInteger         int32
	VReal            float32
	VDoublePrecision float64
	VCharacter       string
	VDecimal         Decimal
	VNumeric         Decimal
}

// MarshalValue ...
func MarshalValue(ch *cdr.Channel, v *Value) error {
	if err := cdr.Enum(ch, (*uint32)(&v.Which)); err != nil {
		return err
	}
	switch v.Which {
	case TypeBoolean:
		return cdr.Boolean(ch, &v.VBoolean)
	case TypeChar:
		return cdr.Char(ch, &v.VChar)
	case TypeOctet:
		return cdr.Octet(ch, &v.VOctet)
	case TypeShort:
		return cdr.Short(ch, &v.VShort)
	case TypeUShort:
		return cdr.UShort(ch, &v.VUShort)
	case TypeLong:
		return cdr.Long(ch, &v.VLong)
	case TypeULong:
		return cdr.ULong(ch, &v.VULong)
	case TypeFloat:
		return cdr.Float(ch, &v.VFloat)
	case TypeDouble:
		return cdr.Double(ch, &v.VDouble)
	case TypeString:
		return cdr.String(ch, &v.VString)
	case TypeObject:
		return MarshalIOR(ch, &v.VObject)
	case TypeAny:
		return MarshalAny(ch, &v.VAny)
	case TypeSmallInt:
		return cdr.Short(ch, &v.VSmallInt)
	case TypeInteger:
		return cdr.Long(ch, &v.VInteger)
	case TypeReal:
		return cdr.Float(ch, &v.VReal)
	case TypeDoublePrecision:
		return cdr.Double(ch, &v.VDoublePrecision)
	case TypeCharacter:
		return cdr.String(ch, &v.VCharacter)
	case TypeDecimal:
		return MarshalDecimal(ch, &v.VDecimal)
	case TypeNumeric:
		return MarshalDecimal(ch, &v.VNumeric)
	}
	return cdr.NewMarshalException(cdr.INVALID_DISCRIMINATOR,
		fmt.Sprintf("MarshalValue: invalid value type %d", uint32(v.Which)))
}

// FieldValue is a nullable record field: a boolean discriminant where false
// selects a Value and true, the null field, has no arm.
type FieldValue struct {
	Null  bool
	Value Value
}

// MarshalFieldValue ...
func MarshalFieldValue(ch *cdr.Channel, v *FieldValue) error {
	if err := cdr.Boolean(ch, &v.Null); err != nil {
		return err
	}
	if v.Null {
		return cdr.NewMarshalException(cdr.INVALID_DISCRIMINATOR,
			"MarshalFieldValue: null field has no arm")
	}
	return MarshalValue(ch, &v.Value)
}

// Record ...
type Record []FieldValue

// MarshalRecord ...
func MarshalRecord(ch *cdr.Channel, v *Record) error {
	return cdr.Sequence(ch, (*[]FieldValue)(v), MarshalFieldValue)
}

// HowManyProps selects the arm of a SpecifiedProps.
type HowManyProps uint32

const (
	PropsNone HowManyProps = iota
	PropsSome
	PropsAll
)

// SpecifiedProps names the properties a trading query should return; only
// the props_some arm carries data.
type SpecifiedProps struct {
	Which     HowManyProps
	PropNames []string
}

// MarshalSpecifiedProps ...
func MarshalSpecifiedProps(ch *cdr.Channel, v *SpecifiedProps) error {
	if err := cdr.Enum(ch, (*uint32)(&v.Which)); err != nil {
		return err
	}
	if v.Which != PropsSome {
		return cdr.NewMarshalException(cdr.INVALID_DISCRIMINATOR,
			fmt.Sprintf("MarshalSpecifiedProps: option %d has no arm", uint32(v.Which)))
	}
	return cdr.StringSeq(ch, &v.PropNames)
}

// IncarnationNumber ...
type IncarnationNumber struct {
	High uint32
	Low  uint32
}

// MarshalIncarnationNumber ...
func MarshalIncarnationNumber(ch *cdr.Channel, v *IncarnationNumber) error {
	if err := cdr.ULong(ch, &v.High); err != nil {
		return err
	}
	return cdr.ULong(ch, &v.Low)
}

// ListOption selects the arm of a SpecifiedServiceTypes.
type ListOption uint32

const (
	ListAll ListOption = iota
	ListSince
)

// SpecifiedServiceTypes limits a service-type listing; only the since arm
// carries data.
type SpecifiedServiceTypes struct {
	Which       ListOption
	Incarnation IncarnationNumber
}

// MarshalSpecifiedServiceTypes ...
func MarshalSpecifiedServiceTypes(ch *cdr.Channel, v *SpecifiedServiceTypes) error {
	if err := cdr.Enum(ch, (*uint32)(&v.Which)); err != nil {
		return err
	}
	if v.Which != ListSince {
		return cdr.NewMarshalException(cdr.INVALID_DISCRIMINATOR,
			fmt.Sprintf("MarshalSpecifiedServiceTypes: option %d has no arm", uint32(v.Which)))
	}
	return MarshalIncarnationNumber(ch, &v.Incarnation)
}
