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

// Encapsule marshals a CDR encapsulation: a self-contained octet stream whose
// first octet is a boolean endian marker (1 = little-endian) and whose
// alignment restarts at the marker. Encapsulations are how tagged profiles
// and components nest CDR data inside an outer octet sequence without
// inheriting the outer alignment frame.
//
// In Encode mode the params are marshaled little-endian into *enc; in Decode
// mode *enc is consumed, honoring its embedded endian marker.
func Encapsule(version Version, mode Mode, enc *[]byte, params ...Param) error {
	var inner *Channel
	switch mode {
	case Decode:
		if len(*enc) == 0 {
			return errTruncatedBuffer
		}
		inner = NewDecoder(version, (*enc)[0]&0x01 != 0, 0, *enc)
	default:
		inner = NewEncoder(version, true, 0)
	}
	endian := inner.littleEndian
	if err := Boolean(inner, &endian); err != nil {
		return err
	}
	for _, p := range params {
		if err := p(inner); err != nil {
			return err
		}
	}
	if mode == Encode {
		*enc = inner.Bytes()
	}
	return nil
}
