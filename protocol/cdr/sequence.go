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

// OctetSeq marshals an octet sequence: an unsigned long count followed by the
// raw octets, with no per-element alignment.
func OctetSeq(ch *Channel, v *[]byte) error {
	if ch.mode == Decode {
		var count uint32
		if err := ULong(ch, &count); err != nil {
			return err
		}
		b, err := ch.next(int(count))
		if err != nil {
			return err
		}
		*v = copyDecoded(b)
		return nil
	}
	count := uint32(len(*v))
	if err := ULong(ch, &count); err != nil {
		return err
	}
	b, err := ch.next(int(count))
	if err != nil {
		return err
	}
	copy(b, *v)
	return nil
}

// Sequence marshals an unsigned long count followed by count elements, each
// through the supplied element codec.
func Sequence[T any](ch *Channel, v *[]T, elem Func[T]) error {
	if ch.mode == Decode {
		var count uint32
		if err := ULong(ch, &count); err != nil {
			return err
		}
		// every element takes at least one octet
		if int(count) > ch.remaining() {
			return errTruncatedBuffer
		}
		s := make([]T, int(count))
		for i := range s {
			if err := elem(ch, &s[i]); err != nil {
				return err
			}
		}
		*v = s
		return nil
	}
	count := uint32(len(*v))
	if err := ULong(ch, &count); err != nil {
		return err
	}
	for i := range *v {
		if err := elem(ch, &(*v)[i]); err != nil {
			return err
		}
	}
	return nil
}

// Array marshals a fixed-count element run with no length prefix. The slice
// length must already equal count on encode; on decode the slice is resized
// to count.
func Array[T any](ch *Channel, v *[]T, elem Func[T], count int) error {
	if ch.mode == Decode && len(*v) != count {
		*v = make([]T, count)
	}
	for i := 0; i < count; i++ {
		if err := elem(ch, &(*v)[i]); err != nil {
			return err
		}
	}
	return nil
}

// Sequences of primitive CDR data types.

func BooleanSeq(ch *Channel, v *[]bool) error     { return Sequence(ch, v, Boolean) }
func CharSeq(ch *Channel, v *[]byte) error        { return Sequence(ch, v, Char) }
func ShortSeq(ch *Channel, v *[]int16) error      { return Sequence(ch, v, Short) }
func UShortSeq(ch *Channel, v *[]uint16) error    { return Sequence(ch, v, UShort) }
func LongSeq(ch *Channel, v *[]int32) error       { return Sequence(ch, v, Long) }
func ULongSeq(ch *Channel, v *[]uint32) error     { return Sequence(ch, v, ULong) }
func LongLongSeq(ch *Channel, v *[]int64) error   { return Sequence(ch, v, LongLong) }
func ULongLongSeq(ch *Channel, v *[]uint64) error { return Sequence(ch, v, ULongLong) }
func FloatSeq(ch *Channel, v *[]float32) error    { return Sequence(ch, v, Float) }
func DoubleSeq(ch *Channel, v *[]float64) error   { return Sequence(ch, v, Double) }
func EnumSeq(ch *Channel, v *[]uint32) error      { return Sequence(ch, v, Enum) }
func WCharSeq(ch *Channel, v *[]uint16) error     { return Sequence(ch, v, WChar) }
func StringSeq(ch *Channel, v *[]string) error    { return Sequence(ch, v, String) }
func WStringSeq(ch *Channel, v *[]string) error   { return Sequence(ch, v, WString) }
